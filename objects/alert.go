// /home/krylon/go/src/github.com/blicero/ariadne/objects/alert.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-03 21:20:46 krylon>

package objects

import "time"

//go:generate ffjson alert.go

// Alert is a one-shot notification payload armed for a fixed point in
// time. Its ID doubles as the opaque handle the scheduler hands out.
type Alert struct {
	ID    string
	Title string
	Body  string
	Stamp time.Time
}

// Due returns the instant the Alert is set to go off.
func (a *Alert) Due() time.Time {
	return a.Stamp
} // func (a *Alert) Due() time.Time

// IsDue returns true if the Alert's fire time has passed.
func (a *Alert) IsDue() bool {
	return a.Stamp.Before(time.Now())
} // func (a *Alert) IsDue() bool

// Payload returns the Alert's Title and Body.
func (a *Alert) Payload() (string, string) {
	return a.Title, a.Body
} // func (a *Alert) Payload() (string, string)
