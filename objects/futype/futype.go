// /home/krylon/go/src/github.com/blicero/ariadne/objects/futype/futype.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-02 17:28:05 krylon>

//go:generate stringer -type=Type

// Package futype contains symbolic constants to distinguish the two kinds
// of follow-up reminders.
package futype

import "fmt"

// Type describes what a FollowUp is following up on.
type Type uint8

// Application follows up on the application itself ("is it still open?"),
// Interview follows up on the outcome of an interview.
const (
	Application Type = iota
	Interview
)

// FromString parses the string representation of a Type.
func FromString(s string) (Type, error) {
	switch s {
	case "Application":
		return Application, nil
	case "Interview":
		return Interview, nil
	default:
		return 0, fmt.Errorf("Invalid follow-up type %q", s)
	}
} // func FromString(s string) (Type, error)
