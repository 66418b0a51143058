// /home/krylon/go/src/github.com/blicero/ariadne/notify/dummy.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-12 17:05:12 krylon>

package notify

import (
	"sync"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/objects"
)

// Dummy is a Scheduler for testing. It never touches a clock it was not
// given and never delivers anything, it just records what was armed and
// cancelled.
type Dummy struct {
	Clock     func() time.Time
	lock      sync.Mutex
	Armed     map[string]objects.Alert
	Cancelled []string
}

// Schedule records an alert for the given instant.
func (d *Dummy) Schedule(title, body string, due time.Time) (string, error) {
	var now time.Time

	if d.Clock != nil {
		now = d.Clock()
	} else {
		now = time.Now()
	}

	if !due.After(now) {
		return "", nil
	}

	var alert = objects.Alert{
		ID:    common.GetUUID(),
		Title: title,
		Body:  body,
		Stamp: due,
	}

	d.lock.Lock()
	if d.Armed == nil {
		d.Armed = make(map[string]objects.Alert)
	}
	d.Armed[alert.ID] = alert
	d.lock.Unlock()

	return alert.ID, nil
} // func (d *Dummy) Schedule(title, body string, due time.Time) (string, error)

// Cancel removes the alert with the given handle and records the
// cancellation.
func (d *Dummy) Cancel(handle string) {
	d.lock.Lock()
	delete(d.Armed, handle)
	d.Cancelled = append(d.Cancelled, handle)
	d.lock.Unlock()
} // func (d *Dummy) Cancel(handle string)

// IsArmed returns true if an alert with the given handle is currently
// armed.
func (d *Dummy) IsArmed(handle string) bool {
	d.lock.Lock()
	var _, ok = d.Armed[handle]
	d.lock.Unlock()

	return ok
} // func (d *Dummy) IsArmed(handle string) bool
