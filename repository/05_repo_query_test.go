// /home/krylon/go/src/github.com/blicero/ariadne/repository/05_repo_query_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-18 21:40:37 krylon>

package repository

import (
	"testing"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/notify"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/evtype"
	"github.com/blicero/ariadne/objects/status"
)

func eventInList(events []objects.Event, id string) bool {
	for _, ev := range events {
		if ev.ID == id {
			return true
		}
	}

	return false
} // func eventInList(events []objects.Event, id string) bool

func followUpInList(fus []objects.FollowUp, id string) bool {
	for _, f := range fus {
		if f.ID == id {
			return true
		}
	}

	return false
} // func followUpInList(fus []objects.FollowUp, id string) bool

func mkApplication(t *testing.T, company, position string) *objects.Application {
	t.Helper()

	var (
		err error
		app = &objects.Application{
			Company:  company,
			Position: position,
			Applied:  time.Now(),
			Status:   status.Applied,
		}
	)

	if err = repo.ApplicationSave(app); err != nil {
		t.Fatalf("Cannot save Application: %s",
			err.Error())
	}

	return app
} // func mkApplication(t *testing.T, company, position string) *objects.Application

func mkInterview(t *testing.T, appID string, day time.Time) *objects.Event {
	t.Helper()

	var (
		err error
		ev  = &objects.Event{
			Title:         "Interview",
			Day:           day.Format(common.TimestampFormatDate),
			Start:         day.Add(time.Hour * 10),
			Kind:          evtype.Interview,
			ApplicationID: appID,
		}
	)

	if err = repo.EventSave(ev, false); err != nil {
		t.Fatalf("Cannot save Event: %s",
			err.Error())
	}

	return ev
} // func mkInterview(t *testing.T, appID string, day time.Time) *objects.Event

// An interview with the note still owed is pending; rejecting the
// Application suppresses the obligation.
func TestThankYouPending(t *testing.T) {
	if repo == nil {
		t.SkipNow()
	}

	var (
		err     error
		pending []objects.Event
		day     = time.Now().AddDate(0, 0, 5)
		app1    = mkApplication(t, "Theseus Logistics", "Backend Developer")
		app2    = mkApplication(t, "Aegean Ferries", "Backend Developer")
		ev1     = mkInterview(t, app1.ID, day)
		ev2     = mkInterview(t, app2.ID, day)
	)

	if err = repo.ApplicationSetStatus(app2.ID, status.Rejected); err != nil {
		t.Fatalf("Cannot reject Application %s: %s",
			app2.ID,
			err.Error())
	}

	if pending, err = repo.ThankYouPending(); err != nil {
		t.Fatalf("Cannot query pending thank-you notes: %s",
			err.Error())
	} else if !eventInList(pending, ev1.ID) {
		t.Errorf("Event %s is missing from the pending thank-you notes",
			ev1.ID)
	} else if eventInList(pending, ev2.ID) {
		t.Errorf("Event %s of a rejected Application shows up as a pending thank-you note",
			ev2.ID)
	}
} // func TestThankYouPending(t *testing.T)

// An interview dated yesterday with a 2-day grace period is not overdue
// today, but it is overdue the day after tomorrow.
func TestThankYouOverdue(t *testing.T) {
	if repo == nil {
		t.SkipNow()
	}

	var (
		err       error
		overdue   []objects.Event
		yesterday = time.Now().AddDate(0, 0, -1)
		app       = mkApplication(t, "Naxos Digital", "Go Developer")
		ev        = mkInterview(t, app.ID, yesterday)
		grace     = repo.GraceDays
	)

	repo.GraceDays = 2
	defer func() { repo.GraceDays = grace }()

	if overdue, err = repo.ThankYouOverdue(time.Now()); err != nil {
		t.Fatalf("Cannot query overdue thank-you notes: %s",
			err.Error())
	} else if eventInList(overdue, ev.ID) {
		t.Errorf("Event %s is overdue before its grace period has elapsed",
			ev.ID)
	}

	if overdue, err = repo.ThankYouOverdue(time.Now().AddDate(0, 0, 2)); err != nil {
		t.Fatalf("Cannot query overdue thank-you notes: %s",
			err.Error())
	} else if !eventInList(overdue, ev.ID) {
		t.Errorf("Event %s is not overdue after its grace period has elapsed",
			ev.ID)
	}
} // func TestThankYouOverdue(t *testing.T)

// A thank-you note in flight suppresses the Application's FollowUps in
// the active view; an Application without one keeps its FollowUps
// visible.
func TestFollowUpSuppression(t *testing.T) {
	if repo == nil {
		t.SkipNow()
	}

	var (
		err      error
		active   []objects.FollowUp
		day      = time.Now().AddDate(0, 0, 3)
		muted    = mkApplication(t, "Minotaur Security", "Security Engineer")
		loud     = mkApplication(t, "Icarus Aviation", "Security Engineer")
		_        = mkInterview(t, muted.ID, day)
		fMuted   *objects.FollowUp
		fVisible *objects.FollowUp
	)

	if fMuted, err = repo.FollowUpCreateApplication(muted.ID, muted.Company, muted.Position, 0); err != nil {
		t.Fatalf("Cannot create FollowUp: %s",
			err.Error())
	} else if fVisible, err = repo.FollowUpCreateApplication(loud.ID, loud.Company, loud.Position, 0); err != nil {
		t.Fatalf("Cannot create FollowUp: %s",
			err.Error())
	}

	if active, err = repo.FollowUpsActive(time.Now()); err != nil {
		t.Fatalf("Cannot query active FollowUps: %s",
			err.Error())
	} else if followUpInList(active, fMuted.ID) {
		t.Errorf("FollowUp %s shows up although a thank-you note is in flight for its Application",
			fMuted.ID)
	} else if !followUpInList(active, fVisible.ID) {
		t.Errorf("FollowUp %s is missing from the active view",
			fVisible.ID)
	}

	// A FollowUp due in the future stays out of today's view.
	var fLater *objects.FollowUp

	if fLater, err = repo.FollowUpCreateApplication(loud.ID, loud.Company, loud.Position, 14); err != nil {
		t.Fatalf("Cannot create FollowUp: %s",
			err.Error())
	} else if active, err = repo.FollowUpsActive(time.Now()); err != nil {
		t.Fatalf("Cannot query active FollowUps: %s",
			err.Error())
	} else if followUpInList(active, fLater.ID) {
		t.Errorf("FollowUp %s due in two weeks shows up in today's view",
			fLater.ID)
	}
} // func TestFollowUpSuppression(t *testing.T)

// Deleting an Application takes its FollowUps with it and detaches its
// Events, which survive.
func TestApplicationDeleteCascade(t *testing.T) {
	if repo == nil {
		t.SkipNow()
	}

	var (
		err error
		day = time.Now().AddDate(0, 0, 4)
		app = mkApplication(t, "Crete Systems", "Backend Developer")
		ev  = mkInterview(t, app.ID, day)
	)

	if _, err = repo.FollowUpCreateApplication(app.ID, app.Company, app.Position, 2); err != nil {
		t.Fatalf("Cannot create FollowUp: %s",
			err.Error())
	}

	if err = repo.ApplicationDelete(app.ID); err != nil {
		t.Fatalf("Cannot delete Application %s: %s",
			app.ID,
			err.Error())
	}

	var (
		fus  []objects.FollowUp
		evnt *objects.Event
	)

	if fus, err = repo.FollowUpGetByApplication(app.ID); err != nil {
		t.Fatalf("Cannot fetch FollowUps for Application %s: %s",
			app.ID,
			err.Error())
	} else if len(fus) != 0 {
		t.Errorf("Deleted Application still has %d FollowUps",
			len(fus))
	}

	if evnt, err = repo.EventGetByID(ev.ID); err != nil {
		t.Fatalf("Cannot fetch Event %s: %s",
			ev.ID,
			err.Error())
	} else if evnt == nil {
		t.Errorf("Event %s did not survive the deletion of its Application",
			ev.ID)
	} else if evnt.ApplicationID != "" {
		t.Errorf("Event %s still references deleted Application %s",
			evnt.ID,
			evnt.ApplicationID)
	}
} // func TestApplicationDeleteCascade(t *testing.T)

func TestRearmAlerts(t *testing.T) {
	if repo == nil {
		t.SkipNow()
	}

	var (
		err   error
		cnt   int
		fresh = repo.sched
	)

	// A restart means a fresh scheduler with no armed alerts.
	repo.sched = &notify.Dummy{}

	defer func() { repo.sched = fresh }()

	if cnt, err = repo.RearmAlerts(); err != nil {
		t.Fatalf("Cannot re-arm alerts: %s",
			err.Error())
	} else if cnt == 0 {
		t.Error("Re-arming alerts armed nothing although future events exist")
	}
} // func TestRearmAlerts(t *testing.T)
