// /home/krylon/go/src/github.com/blicero/ariadne/repository/queries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 17. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-18 17:36:02 krylon>

// The derived views are recomputed from the current state of all three
// record kinds on every call; nothing in here is cached or stored.

package repository

import (
	"time"

	"github.com/blicero/ariadne/database"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/evtype"
	"github.com/blicero/ariadne/objects/status"
	"github.com/blicero/ariadne/objects/tystate"
)

// dayOf truncates a timestamp to midnight, local time.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
} // func dayOf(t time.Time) time.Time

// applicationRejected tells if the given Event is linked to an
// Application that has been rejected. A dangling ApplicationID counts
// as not-rejected.
func (r *Repo) applicationRejected(db *database.Database, ev *objects.Event) bool {
	if ev.ApplicationID == "" {
		return false
	}

	var (
		err error
		app *objects.Application
	)

	if app, err = r.applicationFetch(db, ev.ApplicationID); err != nil {
		r.log.Printf("[ERROR] Cannot load Application %s linked from Event %s: %s\n",
			ev.ApplicationID,
			ev.ID,
			err.Error())
		return false
	} else if app == nil {
		return false
	}

	return app.Status == status.Rejected
} // func (r *Repo) applicationRejected(db *database.Database, ev *objects.Event) bool

// ThankYouPending returns the interview Events whose thank-you note is
// still owed, skipping Events whose Application has been rejected.
func (r *Repo) ThankYouPending() ([]objects.Event, error) {
	var (
		err error
		all []objects.Event
		db  = r.pool.Get()
	)
	defer r.pool.Put(db)

	if all, err = r.eventFetchAll(db); err != nil {
		return nil, err
	}

	var pending = make([]objects.Event, 0, len(all))

	for _, ev := range all {
		if ev.Kind != evtype.Interview || ev.ThankYouNote.Terminal() {
			continue
		} else if r.applicationRejected(db, &ev) {
			continue
		}

		pending = append(pending, ev)
	}

	return pending, nil
} // func (r *Repo) ThankYouPending() ([]objects.Event, error)

// ThankYouOverdue returns the pending thank-you Events whose interview
// lies before the given reference day AND whose grace period has run
// out as well.
func (r *Repo) ThankYouOverdue(ref time.Time) ([]objects.Event, error) {
	var (
		err     error
		pending []objects.Event
		day     = dayOf(ref)
	)

	if pending, err = r.ThankYouPending(); err != nil {
		return nil, err
	}

	var overdue = make([]objects.Event, 0, len(pending))

	for _, ev := range pending {
		var evDay time.Time

		if evDay, err = ev.Date(); err != nil {
			r.log.Printf("[ERROR] Cannot parse date %q of Event %s: %s\n",
				ev.Day,
				ev.ID,
				err.Error())
			continue
		}

		if evDay.Before(day) && evDay.AddDate(0, 0, r.GraceDays).Before(day) {
			overdue = append(overdue, ev)
		}
	}

	return overdue, nil
} // func (r *Repo) ThankYouOverdue(ref time.Time) ([]objects.Event, error)

// thankYouOnFile tells if any interview Event of the given Application
// carries a thank-you note that is owed or already sent. A skipped
// note does not count.
func (r *Repo) thankYouOnFile(db *database.Database, appID string) bool {
	var (
		err error
		all []objects.Event
	)

	if all, err = r.eventFetchAll(db); err != nil {
		r.log.Printf("[ERROR] Cannot load Events checking for thank-you notes on Application %s: %s\n",
			appID,
			err.Error())
		return false
	}

	for _, ev := range all {
		if ev.ApplicationID != appID || ev.Kind != evtype.Interview {
			continue
		}

		switch ev.ThankYouNote {
		case tystate.None, tystate.Pending, tystate.Sent:
			return true
		}
	}

	return false
} // func (r *Repo) thankYouOnFile(db *database.Database, appID string) bool

// FollowUpsActive returns the FollowUps that call for attention on the
// given day: not completed, due on or before that day, Application not
// rejected, and no thank-you note pending or sent for the Application.
// A thank-you note in flight always takes precedence over a generic
// follow-up.
func (r *Repo) FollowUpsActive(ref time.Time) ([]objects.FollowUp, error) {
	var (
		err error
		all []objects.FollowUp
		db  = r.pool.Get()
		day = dayOf(ref)
	)
	defer r.pool.Put(db)

	if all, err = r.followUpFetchAll(db); err != nil {
		return nil, err
	}

	var active = make([]objects.FollowUp, 0, len(all))

	for _, f := range all {
		if f.Completed || dayOf(f.DueDate).After(day) {
			continue
		}

		if f.ApplicationID != "" {
			var app *objects.Application

			if app, err = r.applicationFetch(db, f.ApplicationID); err != nil {
				r.log.Printf("[ERROR] Cannot load Application %s for FollowUp %s: %s\n",
					f.ApplicationID,
					f.ID,
					err.Error())
				continue
			} else if app != nil && app.Status == status.Rejected {
				continue
			}

			if r.thankYouOnFile(db, f.ApplicationID) {
				continue
			}
		}

		active = append(active, f)
	}

	return active, nil
} // func (r *Repo) FollowUpsActive(ref time.Time) ([]objects.FollowUp, error)
