// /home/krylon/go/src/github.com/blicero/ariadne/repository/04_repo_followup_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-18 20:55:10 krylon>

package repository

import (
	"testing"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/evtype"
	"github.com/blicero/ariadne/objects/futype"
	"github.com/blicero/ariadne/objects/status"
	"github.com/blicero/ariadne/objects/tystate"
)

var (
	fuApp *objects.Application
	fup   *objects.FollowUp
)

func TestFollowUpCreate(t *testing.T) {
	if repo == nil {
		t.SkipNow()
	}

	var err error

	fuApp = &objects.Application{
		Company:  "Labyrinth Consulting",
		Position: "Go Developer",
		Applied:  time.Now(),
		Status:   status.Applied,
	}

	if err = repo.ApplicationSave(fuApp); err != nil {
		t.Fatalf("Cannot save Application: %s",
			err.Error())
	}

	if fup, err = repo.FollowUpCreateApplication(fuApp.ID, fuApp.Company, fuApp.Position, 3); err != nil {
		t.Fatalf("Cannot create FollowUp: %s",
			err.Error())
	} else if fup.ID == "" {
		t.Fatal("Creating a FollowUp did not fill in its ID")
	} else if fup.Completed {
		t.Error("A fresh FollowUp must not be completed")
	} else if fup.DueDate.Hour() != common.FollowUpAlertHour {
		t.Errorf("FollowUp due time is %s, expected %02d:00",
			fup.DueDate.Format(common.TimestampFormatMinute),
			common.FollowUpAlertHour)
	} else if fup.NotificationID == "" {
		t.Error("No alert was armed for a FollowUp due in the future")
	} else if !sched.IsArmed(fup.NotificationID) {
		t.Errorf("FollowUp alert %s is not armed with the scheduler",
			fup.NotificationID)
	}
} // func TestFollowUpCreate(t *testing.T)

// Completing a FollowUp is idempotent; the second call must not move
// CompletedAt.
func TestFollowUpComplete(t *testing.T) {
	if repo == nil || fup == nil {
		t.SkipNow()
	}

	var (
		err   error
		f     *objects.FollowUp
		stamp time.Time
	)

	if err = repo.FollowUpComplete(fup.ID); err != nil {
		t.Fatalf("Cannot complete FollowUp %s: %s",
			fup.ID,
			err.Error())
	}

	var fus []objects.FollowUp

	if fus, err = repo.FollowUpGetByApplication(fuApp.ID); err != nil {
		t.Fatalf("Cannot fetch FollowUps for Application %s: %s",
			fuApp.ID,
			err.Error())
	} else if len(fus) != 1 {
		t.Fatalf("Application has %d FollowUps, expected 1",
			len(fus))
	}

	f = &fus[0]

	if !f.Completed {
		t.Fatal("FollowUp is not completed")
	} else if f.CompletedAt.IsZero() {
		t.Fatal("Completing a FollowUp did not set its completion time")
	} else if f.NotificationID != "" {
		t.Error("Completing a FollowUp did not clear its alert handle")
	} else if sched.IsArmed(fup.NotificationID) {
		t.Errorf("FollowUp alert %s is still armed after completion",
			fup.NotificationID)
	}

	stamp = f.CompletedAt

	if err = repo.FollowUpComplete(fup.ID); err != nil {
		t.Fatalf("Completing a FollowUp twice should be safe: %s",
			err.Error())
	} else if fus, err = repo.FollowUpGetByApplication(fuApp.ID); err != nil {
		t.Fatalf("Cannot fetch FollowUps for Application %s: %s",
			fuApp.ID,
			err.Error())
	} else if !fus[0].CompletedAt.Equal(stamp) {
		t.Errorf("Completing a FollowUp twice moved its completion time from %s to %s",
			stamp.Format(common.TimestampFormat),
			fus[0].CompletedAt.Format(common.TimestampFormat))
	}
} // func TestFollowUpComplete(t *testing.T)

// Rejecting an Application completes its application-type FollowUps but
// leaves interview-type FollowUps alone.
func TestRejectionCascade(t *testing.T) {
	if repo == nil {
		t.SkipNow()
	}

	var (
		err error
		app = &objects.Application{
			Company:  "Daedalus Works",
			Position: "Platform Engineer",
			Applied:  time.Now(),
			Status:   status.Applied,
		}
	)

	if err = repo.ApplicationSave(app); err != nil {
		t.Fatalf("Cannot save Application: %s",
			err.Error())
	}

	if _, err = repo.FollowUpCreateApplication(app.ID, app.Company, app.Position, 2); err != nil {
		t.Fatalf("Cannot create FollowUp: %s", err.Error())
	} else if _, err = repo.FollowUpCreateApplication(app.ID, app.Company, app.Position, 5); err != nil {
		t.Fatalf("Cannot create FollowUp: %s", err.Error())
	} else if _, err = repo.FollowUpCreateInterview(app.ID, app.Company, app.Position, 2); err != nil {
		t.Fatalf("Cannot create FollowUp: %s", err.Error())
	}

	if err = repo.ApplicationSetStatus(app.ID, status.Rejected); err != nil {
		t.Fatalf("Cannot reject Application %s: %s",
			app.ID,
			err.Error())
	}

	var fus []objects.FollowUp

	if fus, err = repo.FollowUpGetByApplication(app.ID); err != nil {
		t.Fatalf("Cannot fetch FollowUps for Application %s: %s",
			app.ID,
			err.Error())
	} else if len(fus) != 3 {
		t.Fatalf("Application has %d FollowUps, expected 3",
			len(fus))
	}

	for _, f := range fus {
		switch f.Kind {
		case futype.Application:
			if !f.Completed {
				t.Errorf("Application-type FollowUp %s was not completed by the rejection",
					f.ID)
			}
		case futype.Interview:
			if f.Completed {
				t.Errorf("Interview-type FollowUp %s was completed by the rejection",
					f.ID)
			}
		}
	}
} // func TestRejectionCascade(t *testing.T)

// Marking a thank-you note sent retires any stale FollowUp of the
// linked Application, regardless of its kind.
func TestSentRetiresFollowUps(t *testing.T) {
	if repo == nil {
		t.SkipNow()
	}

	var (
		err error
		day = time.Now().AddDate(0, 0, 2)
		app = &objects.Application{
			Company:  "Ariadne Textiles",
			Position: "Data Engineer",
			Applied:  time.Now(),
			Status:   status.Applied,
		}
	)

	if err = repo.ApplicationSave(app); err != nil {
		t.Fatalf("Cannot save Application: %s",
			err.Error())
	}

	var ev = &objects.Event{
		Title:         "Interview at Ariadne Textiles",
		Day:           day.Format(common.TimestampFormatDate),
		Start:         day.Add(time.Hour * 11),
		Kind:          evtype.Interview,
		ApplicationID: app.ID,
	}

	if err = repo.EventSave(ev, false); err != nil {
		t.Fatalf("Cannot save Event: %s",
			err.Error())
	}

	var stale *objects.FollowUp

	if stale, err = repo.FollowUpCreateInterview(app.ID, app.Company, app.Position, 4); err != nil {
		t.Fatalf("Cannot create FollowUp: %s",
			err.Error())
	}

	if err = repo.EventSetThankYouState(ev.ID, tystate.Sent); err != nil {
		t.Fatalf("Cannot mark thank-you note sent on Event %s: %s",
			ev.ID,
			err.Error())
	}

	var fus []objects.FollowUp

	if fus, err = repo.FollowUpGetByApplication(app.ID); err != nil {
		t.Fatalf("Cannot fetch FollowUps for Application %s: %s",
			app.ID,
			err.Error())
	}

	for _, f := range fus {
		if f.ID == stale.ID && !f.Completed {
			t.Errorf("FollowUp %s was not retired by the sent thank-you note",
				f.ID)
		}
	}
} // func TestSentRetiresFollowUps(t *testing.T)
