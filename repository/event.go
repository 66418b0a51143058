// /home/krylon/go/src/github.com/blicero/ariadne/repository/event.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-17 22:01:14 krylon>

package repository

import (
	"fmt"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/database"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/evtype"
	"github.com/blicero/ariadne/objects/status"
	"github.com/blicero/ariadne/objects/tystate"
	"github.com/pquerna/ffjson/ffjson"
)

func (r *Repo) eventFetch(db *database.Database, id string) (*objects.Event, error) {
	var (
		err error
		raw []byte
		ev  objects.Event
	)

	if raw, err = db.Get(prefixEvent + id); err != nil {
		return nil, err
	} else if raw == nil {
		return nil, nil
	} else if err = ffjson.Unmarshal(raw, &ev); err != nil {
		r.log.Printf("[ERROR] Cannot de-serialize Event %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	return &ev, nil
} // func (r *Repo) eventFetch(db *database.Database, id string) (*objects.Event, error)

func (r *Repo) eventStore(db *database.Database, ev *objects.Event) error {
	var (
		err error
		buf []byte
	)

	ev.Changed = time.Now()

	if buf, err = ffjson.Marshal(ev); err != nil {
		r.log.Printf("[ERROR] Cannot serialize Event %q: %s\n",
			ev.Title,
			err.Error())
		return err
	}

	defer ffjson.Pool(buf)

	if err = db.Set(prefixEvent+ev.ID, buf); err != nil {
		return err
	}

	return r.indexAdd(db, indexEvent, ev.ID)
} // func (r *Repo) eventStore(db *database.Database, ev *objects.Event) error

// thankYouDue computes the instant the thank-you note for the given
// interview Event is due: the interview date plus the grace period, at
// a fixed time of day.
func (r *Repo) thankYouDue(ev *objects.Event) (time.Time, error) {
	var (
		err error
		day time.Time
	)

	if day, err = ev.Date(); err != nil {
		return time.Time{}, err
	}

	day = day.AddDate(0, 0, r.GraceDays)

	return time.Date(day.Year(), day.Month(), day.Day(),
		common.ThankYouAlertHour, 0, 0, 0, time.Local), nil
} // func (r *Repo) thankYouDue(ev *objects.Event) (time.Time, error)

// EventSave persists the given Event and performs the bookkeeping
// around it: mirroring it into the calendar, arming alerts, setting up
// the thank-you note obligation for a brand-new interview, retiring
// follow-ups made moot by it, advancing the linked Application from
// Applied to Interview, and keeping the Application's event set in sync
// with the Event's back-reference.
//
// Every side channel is best-effort; only a failure to persist the
// Event itself is reported to the caller. skipLink suppresses the
// back-reference fix-up; it is used by callers that adjust the
// Application themselves.
func (r *Repo) EventSave(ev *objects.Event, skipLink bool) error {
	var (
		err  error
		prev *objects.Event
		db   = r.pool.Get()
	)
	defer r.pool.Put(db)

	if ev.ID == "" {
		ev.ID = common.GetUUID()
	}

	if prev, err = r.eventFetch(db, ev.ID); err != nil {
		return err
	}

	// Mirror into the calendar before anything else, so a freshly
	// assigned CalendarID gets persisted below.
	if ev.CalendarID != "" {
		r.sideEffect("calendar update", r.cal.Update(ev.CalendarID, ev))
	} else {
		var (
			calID string
			cerr  error
		)

		if calID, cerr = r.cal.Create(ev); cerr != nil {
			r.sideEffect("calendar create", cerr)
		} else if calID != "" {
			ev.CalendarID = calID
		}
	}

	if prev == nil {
		r.armStartAlert(ev)
	}

	var isNewInterview = prev == nil && ev.Kind == evtype.Interview

	if isNewInterview {
		ev.ThankYouNote = tystate.Pending

		var due time.Time

		if due, err = r.thankYouDue(ev); err != nil {
			r.sideEffect("compute thank-you due time", err)
		} else {
			var (
				handle string
				serr   error
				title  = fmt.Sprintf("Thank-you note: %s", ev.Title)
				body   = fmt.Sprintf("Send a thank-you note for your interview on %s.",
					ev.Day)
			)

			if handle, serr = r.sched.Schedule(title, body, due); serr != nil {
				r.sideEffect("schedule thank-you alert", serr)
			} else if handle != "" {
				ev.ThankYouAlertID = handle
			}
		}

		if ev.ApplicationID != "" {
			// The user is clearly engaged with this employer;
			// generic follow-ups are superseded by the thank-you
			// obligation.
			r.sideEffect("retire follow-ups",
				r.completeFollowUps(db, ev.ApplicationID, futypeAny))
			r.sideEffect("advance application to Interview",
				r.advanceToInterview(db, ev.ApplicationID))
		}
	}

	if err = r.eventStore(db, ev); err != nil {
		return err
	}

	if !skipLink {
		var prevApp string

		if prev != nil {
			prevApp = prev.ApplicationID
		}

		if prevApp != ev.ApplicationID {
			if prevApp != "" {
				r.sideEffect("unlink Event from old Application",
					r.unlinkFromApplication(db, prevApp, ev.ID))
			}

			if ev.ApplicationID != "" {
				r.sideEffect("link Event to Application",
					r.linkToApplication(db, ev.ApplicationID, ev.ID))
			}
		}
	}

	return nil
} // func (r *Repo) EventSave(ev *objects.Event, skipLink bool) error

// armStartAlert arms the "heads up, this is about to start" alert for a
// brand-new Event.
func (r *Repo) armStartAlert(ev *objects.Event) {
	if ev.Start.IsZero() {
		return
	}

	var (
		handle      string
		err         error
		title, body = ev.Payload()
		due         = ev.Start.Add(-common.EventAlertLead)
	)

	if handle, err = r.sched.Schedule(title, body, due); err != nil {
		r.sideEffect("schedule event alert", err)
	} else if handle != "" {
		ev.NotificationID = handle
	}
} // func (r *Repo) armStartAlert(ev *objects.Event)

func (r *Repo) linkToApplication(db *database.Database, appID, eventID string) error {
	var (
		err error
		app *objects.Application
	)

	if app, err = r.applicationFetch(db, appID); err != nil {
		return err
	} else if app == nil || !app.LinkEvent(eventID) {
		return nil
	}

	return r.applicationStore(db, app)
} // func (r *Repo) linkToApplication(db *database.Database, appID, eventID string) error

func (r *Repo) unlinkFromApplication(db *database.Database, appID, eventID string) error {
	var (
		err error
		app *objects.Application
	)

	if app, err = r.applicationFetch(db, appID); err != nil {
		return err
	} else if app == nil || !app.UnlinkEvent(eventID) {
		return nil
	}

	return r.applicationStore(db, app)
} // func (r *Repo) unlinkFromApplication(db *database.Database, appID, eventID string) error

func (r *Repo) advanceToInterview(db *database.Database, appID string) error {
	var (
		err error
		app *objects.Application
	)

	if app, err = r.applicationFetch(db, appID); err != nil {
		return err
	} else if app == nil || app.Status != status.Applied {
		return nil
	}

	return r.applicationSetStatus(db, app, status.Interview)
} // func (r *Repo) advanceToInterview(db *database.Database, appID string) error

// EventDelete removes the Event with the given ID, unlinking it from
// its Application first and cancelling its alerts and calendar entry.
// Deleting an Event that does not exist is not an error.
func (r *Repo) EventDelete(id string) error {
	var (
		err error
		ev  *objects.Event
		db  = r.pool.Get()
	)
	defer r.pool.Put(db)

	if ev, err = r.eventFetch(db, id); err != nil {
		return err
	} else if ev == nil {
		return nil
	}

	if ev.ApplicationID != "" {
		r.sideEffect("unlink Event from Application",
			r.unlinkFromApplication(db, ev.ApplicationID, ev.ID))
	}

	if ev.CalendarID != "" {
		r.sideEffect("calendar delete", r.cal.Delete(ev.CalendarID))
	}

	if ev.ThankYouAlertID != "" {
		r.sched.Cancel(ev.ThankYouAlertID)
	}

	if ev.NotificationID != "" {
		r.sched.Cancel(ev.NotificationID)
	}

	if err = db.Begin(); err != nil {
		return err
	} else if err = db.Remove(prefixEvent + id); err != nil {
		db.Rollback() // nolint: errcheck
		return err
	} else if err = r.indexRemove(db, indexEvent, id); err != nil {
		db.Rollback() // nolint: errcheck
		return err
	}

	return db.Commit()
} // func (r *Repo) EventDelete(id string) error

// EventSetThankYouState sets the thank-you note state of the given
// interview Event. On a non-interview Event this is an invalid
// operation. Sent and Skipped are terminal; once one of them is
// reached, the only accepted call is a repeat of the same value, which
// is a no-op. Marking the note Sent completes all remaining follow-ups
// of the linked Application; a sent note supersedes any pending nudge.
func (r *Repo) EventSetThankYouState(id string, st tystate.State) error {
	var (
		err error
		ev  *objects.Event
		db  = r.pool.Get()
	)
	defer r.pool.Put(db)

	if ev, err = r.eventFetch(db, id); err != nil {
		return err
	} else if ev == nil {
		return fmt.Errorf("%w: Event %s",
			ErrNotFound,
			id)
	} else if ev.Kind != evtype.Interview {
		return fmt.Errorf("%w: cannot set a thank-you note state on a %s Event",
			ErrInvalidOperation,
			ev.Kind)
	} else if ev.ThankYouNote.Terminal() {
		if ev.ThankYouNote == st {
			return nil
		}
		return fmt.Errorf("%w: thank-you note state is already %s",
			ErrInvalidOperation,
			ev.ThankYouNote)
	}

	ev.ThankYouNote = st

	if st.Terminal() && ev.ThankYouAlertID != "" {
		r.sched.Cancel(ev.ThankYouAlertID)
		ev.ThankYouAlertID = ""
	}

	if st == tystate.Sent && ev.ApplicationID != "" {
		r.sideEffect("retire follow-ups",
			r.completeFollowUps(db, ev.ApplicationID, futypeAny))
	}

	return r.eventStore(db, ev)
} // func (r *Repo) EventSetThankYouState(id string, st tystate.State) error

// EventGetByID fetches the Event with the given ID. A missing Event is
// not an error; the result is nil in that case.
func (r *Repo) EventGetByID(id string) (*objects.Event, error) {
	var db = r.pool.Get()
	defer r.pool.Put(db)

	return r.eventFetch(db, id)
} // func (r *Repo) EventGetByID(id string) (*objects.Event, error)

// EventGetAll fetches all Events.
func (r *Repo) EventGetAll() ([]objects.Event, error) {
	var db = r.pool.Get()
	defer r.pool.Put(db)

	return r.eventFetchAll(db)
} // func (r *Repo) EventGetAll() ([]objects.Event, error)

func (r *Repo) eventFetchAll(db *database.Database) ([]objects.Event, error) {
	var (
		err error
		ids []string
	)

	if ids, err = r.indexGet(db, indexEvent); err != nil {
		return nil, err
	}

	var events = make([]objects.Event, 0, len(ids))

	for _, id := range ids {
		var ev *objects.Event

		if ev, err = r.eventFetch(db, id); err != nil {
			return nil, err
		} else if ev != nil {
			events = append(events, *ev)
		}
	}

	return events, nil
} // func (r *Repo) eventFetchAll(db *database.Database) ([]objects.Event, error)

// EventGetByApplication fetches all Events linked to the given
// Application.
func (r *Repo) EventGetByApplication(appID string) ([]objects.Event, error) {
	var (
		err error
		all []objects.Event
		db  = r.pool.Get()
	)
	defer r.pool.Put(db)

	if all, err = r.eventFetchAll(db); err != nil {
		return nil, err
	}

	var events = make([]objects.Event, 0, len(all))

	for _, ev := range all {
		if ev.ApplicationID == appID {
			events = append(events, ev)
		}
	}

	return events, nil
} // func (r *Repo) EventGetByApplication(appID string) ([]objects.Event, error)
