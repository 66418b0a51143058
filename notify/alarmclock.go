// /home/krylon/go/src/github.com/blicero/ariadne/notify/alarmclock.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-12 17:02:31 krylon>

package notify

import (
	"log"
	"sync"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
)

// Alarmclock schedules alerts with in-process timers and fires them into
// the queue it was given. Handles do not survive a restart; the backend
// re-arms pending alerts when it is summoned.
type Alarmclock struct {
	log    *log.Logger
	lock   sync.Mutex
	queue  chan<- objects.Notification
	timers map[string]*time.Timer
}

// NewAlarmclock creates an Alarmclock firing into the given queue.
func NewAlarmclock(queue chan<- objects.Notification) (*Alarmclock, error) {
	var (
		err error
		a   = &Alarmclock{
			queue:  queue,
			timers: make(map[string]*time.Timer),
		}
	)

	if a.log, err = common.GetLogger(logdomain.Notify); err != nil {
		return nil, err
	}

	return a, nil
} // func NewAlarmclock(queue chan<- objects.Notification) (*Alarmclock, error)

// Schedule arms an alert for the given instant. If the instant is
// already in the past, no alert is armed and the empty handle is
// returned.
func (a *Alarmclock) Schedule(title, body string, due time.Time) (string, error) {
	var delay = time.Until(due)

	if delay <= 0 {
		a.log.Printf("[DEBUG] Not arming alert %q, %s is in the past\n",
			title,
			due.Format(common.TimestampFormat))
		return "", nil
	}

	var alert = &objects.Alert{
		ID:    common.GetUUID(),
		Title: title,
		Body:  body,
		Stamp: due,
	}

	a.lock.Lock()
	a.timers[alert.ID] = time.AfterFunc(delay, func() { a.fire(alert) })
	a.lock.Unlock()

	a.log.Printf("[DEBUG] Alert %q armed for %s\n",
		title,
		due.Format(common.TimestampFormat))

	return alert.ID, nil
} // func (a *Alarmclock) Schedule(title, body string, due time.Time) (string, error)

// Cancel disarms the alert with the given handle. Unknown handles are
// ignored.
func (a *Alarmclock) Cancel(handle string) {
	a.lock.Lock()
	if t, ok := a.timers[handle]; ok {
		t.Stop()
		delete(a.timers, handle)
	}
	a.lock.Unlock()
} // func (a *Alarmclock) Cancel(handle string)

// Shutdown disarms all pending alerts.
func (a *Alarmclock) Shutdown() {
	a.lock.Lock()
	for handle, t := range a.timers {
		t.Stop()
		delete(a.timers, handle)
	}
	a.lock.Unlock()
} // func (a *Alarmclock) Shutdown()

func (a *Alarmclock) fire(alert *objects.Alert) {
	a.lock.Lock()
	delete(a.timers, alert.ID)
	a.lock.Unlock()

	a.queue <- alert
} // func (a *Alarmclock) fire(alert *objects.Alert)
