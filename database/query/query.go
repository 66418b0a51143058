// /home/krylon/go/src/github.com/blicero/ariadne/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-05 17:44:21 krylon>

// Package query provides symbolic constants for identifying SQL queries.
package query

//go:generate stringer -type=ID

type ID uint8

const (
	KVGet ID = iota
	KVSet
	KVRemove
	KVKeys
)
