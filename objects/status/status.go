// /home/krylon/go/src/github.com/blicero/ariadne/objects/status/status.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-02 17:21:48 krylon>

//go:generate stringer -type=Status

// Package status contains symbolic constants to describe where in its
// life cycle a job application currently is.
package status

import "fmt"

// Status describes the current state of a job application.
type Status uint8

// Applied means the application has been sent and no reply has arrived, yet.
// Interview means at least one interview has been scheduled or has taken place.
// Rejected means the employer has said no.
// NoResponse means the application has gone unanswered long enough that the
// user has written it off without a formal rejection.
const (
	Applied Status = iota
	Interview
	Rejected
	NoResponse
)

// AllStatuses returns a slice of all valid Status values.
func AllStatuses() []Status {
	return []Status{
		Applied,
		Interview,
		Rejected,
		NoResponse,
	}
} // func AllStatuses() []Status

// FromString parses the string representation of a Status.
func FromString(s string) (Status, error) {
	switch s {
	case "Applied":
		return Applied, nil
	case "Interview":
		return Interview, nil
	case "Rejected":
		return Rejected, nil
	case "NoResponse":
		return NoResponse, nil
	default:
		return 0, fmt.Errorf("Invalid Status %q", s)
	}
} // func FromString(s string) (Status, error)
