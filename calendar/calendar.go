// /home/krylon/go/src/github.com/blicero/ariadne/calendar/calendar.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-02 19:01:25 krylon>

// Package calendar mirrors Events into a calendar the rest of the
// desktop can see. Mirroring is strictly best-effort; the coordination
// layer logs failures and carries on.
package calendar

import "github.com/blicero/ariadne/objects"

// Sync mirrors Events into an external calendar, addressed by the
// opaque external ID Create hands out.
type Sync interface {
	Create(ev *objects.Event) (string, error)
	Update(externalID string, ev *objects.Event) error
	Delete(externalID string) error
}

// Disabled is a Sync that does nothing. It is used when no calendar
// mirror is available.
type Disabled struct{}

// Create does nothing.
func (Disabled) Create(*objects.Event) (string, error) { return "", nil }

// Update does nothing.
func (Disabled) Update(string, *objects.Event) error { return nil }

// Delete does nothing.
func (Disabled) Delete(string) error { return nil }
