// /home/krylon/go/src/github.com/blicero/ariadne/objects/followup.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-12 16:09:02 krylon>

package objects

import (
	"fmt"
	"time"

	"github.com/blicero/ariadne/objects/futype"
)

//go:generate ffjson followup.go

// FollowUp is a scheduled nudge to check on an application or an
// interview outcome. It is owned by exactly one Application and is
// cascade-deleted with it. Company and Position are denormalized from
// the Application for display.
//
// Completed only ever goes from false to true, and CompletedAt is set
// exactly once, when that happens.
type FollowUp struct {
	ID             string
	ApplicationID  string
	Kind           futype.Type
	DueDate        time.Time
	Company        string
	Position       string
	Completed      bool
	CompletedAt    time.Time
	NotificationID string
	Changed        time.Time
}

// Due returns the FollowUp's due time.
func (f *FollowUp) Due() time.Time {
	return f.DueDate
} // func (f *FollowUp) Due() time.Time

// IsDue returns true if the FollowUp's due time has passed.
func (f *FollowUp) IsDue() bool {
	return f.DueDate.Before(time.Now())
} // func (f *FollowUp) IsDue() bool

// Payload returns the title and body to display when notifying the user
// about the FollowUp.
func (f *FollowUp) Payload() (string, string) {
	var (
		title = fmt.Sprintf("Follow up: %s", f.Company)
		body  string
	)

	switch f.Kind {
	case futype.Interview:
		body = fmt.Sprintf("Ask how the interview for the %s position at %s went.",
			f.Position,
			f.Company)
	default:
		body = fmt.Sprintf("Check if your application for the %s position at %s is still open.",
			f.Position,
			f.Company)
	}

	return title, body
} // func (f *FollowUp) Payload() (string, string)
