// /home/krylon/go/src/github.com/blicero/ariadne/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-19 18:02:54 krylon>

// Package logdomain provides symbolic constants to identify the
// subsystems of the application that want to do logging.
package logdomain

//go:generate stringer -type=ID

// ID represents a log source.
type ID uint8

// These constants identify the various subsystems that want to do logging.
const (
	Common ID = iota
	Backend
	Calendar
	Client
	Database
	DBPool
	Notify
	Repository
)

// AllDomains returns a slice of all the known log sources.
func AllDomains() []ID {
	return []ID{
		Common,
		Backend,
		Calendar,
		Client,
		Database,
		DBPool,
		Notify,
		Repository,
	}
} // func AllDomains() []ID
