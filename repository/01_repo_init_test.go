// /home/krylon/go/src/github.com/blicero/ariadne/repository/01_repo_init_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-18 19:02:14 krylon>

package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/ariadne/calendar"
	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/database"
	"github.com/blicero/ariadne/notify"
)

var (
	pool  *database.Pool
	sched *notify.Dummy
	repo  *Repo
)

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("ariadne_repository_test_%d",
				time.Now().Unix()))
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot set BaseDir to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	}

	result = m.Run()

	os.RemoveAll(baseDir) // nolint: errcheck
	os.Exit(result)
} // func TestMain(m *testing.M)

func TestCreateRepo(t *testing.T) {
	var err error

	if pool, err = database.NewPool(2); err != nil {
		pool = nil
		t.Fatalf("Cannot create database pool: %s",
			err.Error())
	}

	sched = &notify.Dummy{}

	if repo, err = NewRepo(pool, sched, calendar.Disabled{}); err != nil {
		repo = nil
		t.Fatalf("Cannot create Repo: %s",
			err.Error())
	}
} // func TestCreateRepo(t *testing.T)
