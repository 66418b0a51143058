// /home/krylon/go/src/github.com/blicero/ariadne/repository/repository.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-17 21:40:12 krylon>

// Package repository implements the coordination layer that keeps job
// applications, calendar events and follow-up reminders consistent with
// one another: bidirectional linking, the thank-you note state machine,
// cascading completion of follow-ups, and the bookkeeping of alert
// handles.
//
// All operations live on a single Repo so the cross-entity fix-ups need
// no mutual references between per-entity repositories. There is no
// optimistic concurrency control; every fix-up re-reads the counterpart
// entity right before mutating it.
package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/blicero/ariadne/calendar"
	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/database"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/notify"
	"github.com/pquerna/ffjson/ffjson"
)

// Keys in the store are the entity prefix followed by the entity's
// UUID. Per entity type there is one index key holding the list of all
// IDs of that type.
const (
	prefixApplication = "application_"
	prefixEvent       = "event_"
	prefixFollowUp    = "followup_"
	indexApplication  = "application_index"
	indexEvent        = "event_index"
	indexFollowUp     = "followup_index"
)

// ErrInvalidOperation indicates an operation that is not defined for
// the entity it was invoked on, like setting a thank-you note state on
// an Event that is not an interview.
var ErrInvalidOperation = errors.New("operation is not valid for this entity")

// ErrNotFound indicates that the entity an operation was meant to
// modify does not exist. Read-side aggregate queries never return it;
// they treat missing entities as absent.
var ErrNotFound = errors.New("entity was not found in the store")

// SideEffectError wraps the failure of a best-effort side channel -
// notification scheduling, calendar sync, a cascading fix-up. The
// primary operation logs it and carries on.
type SideEffectError struct {
	Op  string
	Err error
}

func (e *SideEffectError) Error() string {
	return fmt.Sprintf("side effect %q failed: %s",
		e.Op,
		e.Err.Error())
} // func (e *SideEffectError) Error() string

func (e *SideEffectError) Unwrap() error {
	return e.Err
} // func (e *SideEffectError) Unwrap() error

// Repo is the coordination engine. It owns the store, the notification
// scheduler and the calendar mirror, and it is the only place where the
// three entity families get modified.
type Repo struct {
	log       *log.Logger
	pool      *database.Pool
	sched     notify.Scheduler
	cal       calendar.Sync
	GraceDays int // days after an interview before the thank-you note is due
}

// NewRepo creates a Repo using the given database pool, notification
// scheduler and calendar mirror. Passing nil for the scheduler or the
// calendar disables the respective side channel.
func NewRepo(pool *database.Pool, sched notify.Scheduler, cal calendar.Sync) (*Repo, error) {
	var (
		err error
		r   = &Repo{
			pool:      pool,
			sched:     sched,
			cal:       cal,
			GraceDays: common.ThankYouGraceDays,
		}
	)

	if pool == nil {
		return nil, errors.New("database pool must not be nil")
	} else if r.log, err = common.GetLogger(logdomain.Repository); err != nil {
		return nil, err
	}

	if r.sched == nil {
		r.sched = &notify.Dummy{}
	}

	if r.cal == nil {
		r.cal = calendar.Disabled{}
	}

	return r, nil
} // func NewRepo(pool *database.Pool, sched notify.Scheduler, cal calendar.Sync) (*Repo, error)

// sideEffect logs a best-effort failure and discards it. The primary
// operation is not affected.
func (r *Repo) sideEffect(op string, err error) {
	if err == nil {
		return
	}

	var se = &SideEffectError{Op: op, Err: err}

	r.log.Printf("[WARN] %s\n", se.Error())
} // func (r *Repo) sideEffect(op string, err error)

func (r *Repo) indexGet(db *database.Database, key string) ([]string, error) {
	var (
		err error
		raw []byte
		ids []string
	)

	if raw, err = db.Get(key); err != nil {
		return nil, err
	} else if raw == nil {
		return nil, nil
	} else if err = ffjson.Unmarshal(raw, &ids); err != nil {
		r.log.Printf("[ERROR] Cannot de-serialize index %s: %s\n",
			key,
			err.Error())
		return nil, err
	}

	return ids, nil
} // func (r *Repo) indexGet(db *database.Database, key string) ([]string, error)

func (r *Repo) indexStore(db *database.Database, key string, ids []string) error {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(ids); err != nil {
		r.log.Printf("[ERROR] Cannot serialize index %s: %s\n",
			key,
			err.Error())
		return err
	}

	defer ffjson.Pool(buf)

	return db.Set(key, buf)
} // func (r *Repo) indexStore(db *database.Database, key string, ids []string) error

func (r *Repo) indexAdd(db *database.Database, key, id string) error {
	var (
		err error
		ids []string
	)

	if ids, err = r.indexGet(db, key); err != nil {
		return err
	}

	for _, i := range ids {
		if i == id {
			return nil
		}
	}

	return r.indexStore(db, key, append(ids, id))
} // func (r *Repo) indexAdd(db *database.Database, key, id string) error

func (r *Repo) indexRemove(db *database.Database, key, id string) error {
	var (
		err error
		ids []string
	)

	if ids, err = r.indexGet(db, key); err != nil {
		return err
	}

	for idx, i := range ids {
		if i == id {
			return r.indexStore(db, key, append(ids[:idx], ids[idx+1:]...))
		}
	}

	return nil
} // func (r *Repo) indexRemove(db *database.Database, key, id string)  error
