// /home/krylon/go/src/github.com/blicero/ariadne/backend/99_backend_shutdown_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-19 21:47:05 krylon>

package backend

import "testing"

func TestBanishDaemon(t *testing.T) {
	if dmn == nil {
		t.SkipNow()
	}

	var err error

	if err = dmn.Banish(); err != nil {
		t.Errorf("Cannot banish Daemon: %s",
			err.Error())
	} else if dmn.IsAlive() {
		t.Error("Daemon is still alive after being banished")
	}
} // func TestBanishDaemon(t *testing.T)
