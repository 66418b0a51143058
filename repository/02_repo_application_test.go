// /home/krylon/go/src/github.com/blicero/ariadne/repository/02_repo_application_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-18 19:21:48 krylon>

package repository

import (
	"testing"
	"time"

	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/status"
)

var sampleApp *objects.Application

func TestApplicationSave(t *testing.T) {
	if repo == nil {
		t.SkipNow()
	}

	var err error

	sampleApp = &objects.Application{
		Company:  "Minos Shipping",
		Position: "Backend Developer",
		Source:   "word of mouth",
		Applied:  time.Now(),
		Status:   status.Applied,
	}

	if err = repo.ApplicationSave(sampleApp); err != nil {
		t.Fatalf("Cannot save Application: %s",
			err.Error())
	} else if sampleApp.ID == "" {
		t.Fatal("Saving an Application did not fill in its ID")
	} else if sampleApp.StatusChanged[status.Applied].IsZero() {
		t.Error("Saving a fresh Application did not record the timestamp of its initial status")
	}
} // func TestApplicationSave(t *testing.T)

func TestApplicationGetByID(t *testing.T) {
	if repo == nil || sampleApp == nil {
		t.SkipNow()
	}

	var (
		err error
		app *objects.Application
	)

	if app, err = repo.ApplicationGetByID(sampleApp.ID); err != nil {
		t.Fatalf("Cannot fetch Application %s: %s",
			sampleApp.ID,
			err.Error())
	} else if app == nil {
		t.Fatalf("Application %s was not found", sampleApp.ID)
	} else if app.Company != sampleApp.Company || app.Position != sampleApp.Position {
		t.Errorf("Fetched Application does not match: got %q / %q, expected %q / %q",
			app.Company,
			app.Position,
			sampleApp.Company,
			sampleApp.Position)
	}

	if app, err = repo.ApplicationGetByID("this-id-does-not-exist"); err != nil {
		t.Errorf("Fetching a non-existent Application should not fail: %s",
			err.Error())
	} else if app != nil {
		t.Error("Fetching a non-existent Application should yield nil")
	}
} // func TestApplicationGetByID(t *testing.T)

func TestApplicationSetStatus(t *testing.T) {
	if repo == nil || sampleApp == nil {
		t.SkipNow()
	}

	var (
		err error
		app *objects.Application
	)

	if err = repo.ApplicationSetStatus(sampleApp.ID, status.NoResponse); err != nil {
		t.Fatalf("Cannot set status of Application %s: %s",
			sampleApp.ID,
			err.Error())
	} else if app, err = repo.ApplicationGetByID(sampleApp.ID); err != nil {
		t.Fatalf("Cannot fetch Application %s: %s",
			sampleApp.ID,
			err.Error())
	} else if app.Status != status.NoResponse {
		t.Errorf("Application status is %s, expected %s",
			app.Status,
			status.NoResponse)
	} else if app.StatusChanged[status.NoResponse].IsZero() {
		t.Error("Status change did not record a timestamp")
	}
} // func TestApplicationSetStatus(t *testing.T)

func TestApplicationAddNote(t *testing.T) {
	if repo == nil || sampleApp == nil {
		t.SkipNow()
	}

	var (
		err  error
		app  *objects.Application
		body = "Called the office, they said to check back next week."
	)

	if err = repo.ApplicationAddNote(sampleApp.ID, body); err != nil {
		t.Fatalf("Cannot add note to Application %s: %s",
			sampleApp.ID,
			err.Error())
	} else if app, err = repo.ApplicationGetByID(sampleApp.ID); err != nil {
		t.Fatalf("Cannot fetch Application %s: %s",
			sampleApp.ID,
			err.Error())
	} else if len(app.Notes) != 1 {
		t.Fatalf("Application has %d notes, expected 1",
			len(app.Notes))
	} else if app.Notes[0].Body != body {
		t.Errorf("Note body is %q, expected %q",
			app.Notes[0].Body,
			body)
	}
} // func TestApplicationAddNote(t *testing.T)

func TestApplicationAddEmail(t *testing.T) {
	if repo == nil || sampleApp == nil {
		t.SkipNow()
	}

	var (
		err  error
		app  *objects.Application
		mail = objects.Email{
			Kind:      "follow-up",
			Recipient: "hr@minos.example",
		}
	)

	if err = repo.ApplicationAddEmail(sampleApp.ID, mail); err != nil {
		t.Fatalf("Cannot add email to Application %s: %s",
			sampleApp.ID,
			err.Error())
	} else if app, err = repo.ApplicationGetByID(sampleApp.ID); err != nil {
		t.Fatalf("Cannot fetch Application %s: %s",
			sampleApp.ID,
			err.Error())
	} else if len(app.SentEmails) != 1 {
		t.Fatalf("Application has %d emails, expected 1",
			len(app.SentEmails))
	} else if app.SentEmails[0].SentDate.IsZero() {
		t.Error("Recording an email did not fill in its send date")
	}
} // func TestApplicationAddEmail(t *testing.T)
