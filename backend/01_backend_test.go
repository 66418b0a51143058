// /home/krylon/go/src/github.com/blicero/ariadne/backend/01_backend_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-19 21:44:19 krylon>

package backend

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/notify"
	"github.com/blicero/ariadne/objects"
	"github.com/pquerna/ffjson/ffjson"
)

var (
	dmn      *Daemon
	testAddr string
)

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("ariadne_backend_test_%d",
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

	testAddr = fmt.Sprintf("localhost:%d",
		common.DefaultPort+os.Getpid()%1000)

	result = m.Run()

	os.RemoveAll(baseDir) // nolint: errcheck
	os.Exit(result)
} // func TestMain(m *testing.M)

func TestSummonDaemon(t *testing.T) {
	var err error

	if dmn, err = Summon(testAddr, &notify.Dummy{}); err != nil {
		dmn = nil
		t.Fatalf("Cannot summon Daemon: %s",
			err.Error())
	} else if !dmn.IsAlive() {
		t.Fatal("Freshly summoned Daemon is not alive")
	}

	// Give the web server a moment to come up.
	time.Sleep(time.Millisecond * 50)
} // func TestSummonDaemon(t *testing.T)

func TestWebApplicationAdd(t *testing.T) {
	if dmn == nil {
		t.SkipNow()
	}

	var (
		err      error
		reply    *http.Response
		response objects.Response
		addr     = fmt.Sprintf("http://%s/application/add", testAddr)
		form     = url.Values{
			"company":  []string{"Attica Software"},
			"position": []string{"Backend Developer"},
			"source":   []string{"job board"},
		}
	)

	if reply, err = http.PostForm(addr, form); err != nil {
		t.Fatalf("Cannot POST to %s: %s",
			addr,
			err.Error())
	}

	defer reply.Body.Close() // nolint: errcheck

	var dec = ffjson.NewDecoder()

	if err = dec.DecodeReader(reply.Body, &response); err != nil {
		t.Fatalf("Cannot decode Response: %s",
			err.Error())
	} else if !response.Status {
		t.Fatalf("Adding an Application failed: %s",
			response.Message)
	} else if response.Message == "" {
		t.Fatal("Adding an Application did not return its ID")
	}

	var app *objects.Application

	if app, err = dmn.Repo().ApplicationGetByID(response.Message); err != nil {
		t.Fatalf("Cannot fetch Application %s: %s",
			response.Message,
			err.Error())
	} else if app == nil {
		t.Fatalf("Application %s was not found in the repository",
			response.Message)
	} else if app.Company != "Attica Software" {
		t.Errorf("Application company is %q, expected %q",
			app.Company,
			"Attica Software")
	}
} // func TestWebApplicationAdd(t *testing.T)
