// /home/krylon/go/src/github.com/blicero/ariadne/objects/evtype/evtype.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-02 17:24:11 krylon>

//go:generate stringer -type=Type

// Package evtype contains symbolic constants to distinguish the kinds of
// Events the application deals with.
package evtype

import "fmt"

// Type describes what kind of Event an Event is.
type Type uint8

// Interview is a job interview, the only kind of Event that carries a
// thank-you note obligation and may be linked to an Application.
// Appointment is any other appointment.
// Reminder is a point in time the user just wants to be alerted about.
const (
	Interview Type = iota
	Appointment
	Reminder
)

// FromString parses the string representation of a Type.
func FromString(s string) (Type, error) {
	switch s {
	case "Interview":
		return Interview, nil
	case "Appointment":
		return Appointment, nil
	case "Reminder":
		return Reminder, nil
	default:
		return 0, fmt.Errorf("Invalid event type %q", s)
	}
} // func FromString(s string) (Type, error)
