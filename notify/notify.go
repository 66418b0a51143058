// /home/krylon/go/src/github.com/blicero/ariadne/notify/notify.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-02 18:40:13 krylon>

// Package notify provides the scheduling of fire-once local alerts at
// absolute points in time. Delivery to the desktop happens in the
// backend, which drains the queue the scheduler fires into.
package notify

import "time"

// Scheduler arms and cancels fire-once alerts. Schedule returns an
// opaque handle, or the empty string if the given instant is already in
// the past - that is not an error. Cancel is idempotent and ignores
// handles it does not know.
type Scheduler interface {
	Schedule(title, body string, due time.Time) (string, error)
	Cancel(handle string)
}
