// /home/krylon/go/src/github.com/blicero/ariadne/objects/event.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-12 16:05:37 krylon>

package objects

import (
	"fmt"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/objects/evtype"
	"github.com/blicero/ariadne/objects/tystate"
)

//go:generate ffjson event.go

// Event is an entry on the calendar: an interview, an appointment, or a
// plain reminder. Only interview Events carry a thank-you note obligation
// and an optional back-reference to the Application they belong to.
//
// Day is the calendar date the Event takes place on, without a time zone
// attached. NotificationID, ThankYouAlertID and CalendarID are opaque
// handles into the notification scheduler and the calendar mirror; any of
// them may be empty.
type Event struct {
	ID              string
	Title           string
	Location        string
	Day             string
	Start           time.Time
	End             time.Time
	Kind            evtype.Type
	ApplicationID   string
	ThankYouNote    tystate.State
	NotificationID  string
	ThankYouAlertID string
	CalendarID      string
	Changed         time.Time
}

// Date returns the calendar day the Event takes place on, in the local
// time zone, at midnight.
func (e *Event) Date() (time.Time, error) {
	return time.ParseInLocation(common.TimestampFormatDate, e.Day, time.Local)
} // func (e *Event) Date() (time.Time, error)

// Due returns the Event's start time.
func (e *Event) Due() time.Time {
	return e.Start
} // func (e *Event) Due() time.Time

// IsDue returns true if the Event's start time has passed.
func (e *Event) IsDue() bool {
	return e.Start.Before(time.Now())
} // func (e *Event) IsDue() bool

// Payload returns the title and body to display when notifying the user
// about the Event.
func (e *Event) Payload() (string, string) {
	var body string

	if e.Location != "" {
		body = fmt.Sprintf("%s at %s, %s",
			e.Kind,
			e.Location,
			e.Start.Format(common.TimestampFormatMinute))
	} else {
		body = fmt.Sprintf("%s at %s",
			e.Kind,
			e.Start.Format(common.TimestampFormatMinute))
	}

	return e.Title, body
} // func (e *Event) Payload() (string, string)
