// /home/krylon/go/src/github.com/blicero/ariadne/database/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-05 17:46:10 krylon>

package database

var initQueries = []string{
	`
CREATE TABLE kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    CHECK (key <> '')
)
`,
}
