// /home/krylon/go/src/github.com/blicero/ariadne/objects/tystate/tystate.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-02 17:26:33 krylon>

//go:generate stringer -type=State

// Package tystate contains symbolic constants to describe the thank-you
// note obligation attached to an interview Event.
package tystate

import "fmt"

// State describes the thank-you note obligation of an interview Event.
type State uint8

// None is the zero value, it is what non-interview Events carry.
// Pending means a thank-you note is owed but has not been written.
// Sent means the note has been sent, Skipped means the user has decided
// not to send one. Sent and Skipped are terminal.
const (
	None State = iota
	Pending
	Sent
	Skipped
)

// Terminal returns true once the obligation is settled for good.
func (s State) Terminal() bool {
	return s == Sent || s == Skipped
} // func (s State) Terminal() bool

// FromString parses the string representation of a State.
func FromString(s string) (State, error) {
	switch s {
	case "None":
		return None, nil
	case "Pending":
		return Pending, nil
	case "Sent":
		return Sent, nil
	case "Skipped":
		return Skipped, nil
	default:
		return 0, fmt.Errorf("Invalid thank-you note state %q", s)
	}
} // func FromString(s string) (State, error)
