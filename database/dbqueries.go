// /home/krylon/go/src/github.com/blicero/ariadne/database/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-05 17:50:33 krylon>

package database

import "github.com/blicero/ariadne/database/query"

var dbQueries = map[query.ID]string{
	query.KVGet: "SELECT value FROM kv WHERE key = ?",
	query.KVSet: `
INSERT INTO kv (key, value)
VALUES         (  ?,     ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value
`,
	query.KVRemove: "DELETE FROM kv WHERE key = ?",
	query.KVKeys:   "SELECT key FROM kv ORDER BY key",
}
