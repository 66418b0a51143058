// /home/krylon/go/src/github.com/blicero/ariadne/objects/application.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-08 18:34:19 krylon>

package objects

import (
	"time"

	"github.com/blicero/ariadne/objects/status"
)

//go:generate ffjson application.go

// Note is one entry in an Application's append-only log of notes.
type Note struct {
	Stamp time.Time
	Body  string
}

// Email records one message the user has sent regarding an Application.
type Email struct {
	Kind      string
	SentDate  time.Time
	Recipient string
}

// Application represents one job application the user wants to keep
// track of. It weakly references the Events linked to it by ID; the
// counterpart reference lives in Event.ApplicationID.
type Application struct {
	ID            string
	Company       string
	Position      string
	Source        string
	Applied       time.Time
	Status        status.Status
	EventIDs      []string
	Notes         []Note
	SentEmails    []Email
	StatusChanged map[status.Status]time.Time
	Changed       time.Time
}

// HasEvent returns true if the Event with the given ID is linked to the
// Application.
func (app *Application) HasEvent(id string) bool {
	for _, eid := range app.EventIDs {
		if eid == id {
			return true
		}
	}

	return false
} // func (app *Application) HasEvent(id string) bool

// LinkEvent adds the given Event ID to the Application's set of linked
// Events. It returns true if the set was modified.
func (app *Application) LinkEvent(id string) bool {
	if app.HasEvent(id) {
		return false
	}

	app.EventIDs = append(app.EventIDs, id)
	return true
} // func (app *Application) LinkEvent(id string) bool

// UnlinkEvent removes the given Event ID from the Application's set of
// linked Events. It returns true if the set was modified.
func (app *Application) UnlinkEvent(id string) bool {
	for idx, eid := range app.EventIDs {
		if eid == id {
			app.EventIDs = append(app.EventIDs[:idx], app.EventIDs[idx+1:]...)
			return true
		}
	}

	return false
} // func (app *Application) UnlinkEvent(id string) bool

// AddNote appends a note to the Application's log. The log is
// append-only, notes are never edited or removed.
func (app *Application) AddNote(body string) {
	app.Notes = append(app.Notes, Note{
		Stamp: time.Now(),
		Body:  body,
	})
} // func (app *Application) AddNote(body string)
