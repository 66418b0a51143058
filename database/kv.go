// /home/krylon/go/src/github.com/blicero/ariadne/database/kv.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-17 20:06:48 krylon>

package database

import (
	"database/sql"

	"github.com/blicero/ariadne/database/query"
)

// Get fetches the value stored under the given key. A missing key is not
// an error; the returned slice is nil in that case.
func (db *Database) Get(key string) ([]byte, error) {
	const qid query.ID = query.KVGet
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(key); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot look up key %q: %s\n",
			key,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var val string

		if err = rows.Scan(&val); err != nil {
			db.log.Printf("[ERROR] Cannot scan value for key %q: %s\n",
				key,
				err.Error())
			return nil, err
		}

		return []byte(val), nil
	}

	return nil, nil
} // func (db *Database) Get(key string) ([]byte, error)

// Set stores the given value under the given key, replacing any previous
// value.
func (db *Database) Set(key string, value []byte) error {
	const qid query.ID = query.KVSet
	var (
		err    error
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			db.log.Printf("[ERROR] Error starting transaction: %s\n",
				err.Error())
			return err
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(key, string(value)); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot store value for key %q: %s\n",
			key,
			err.Error())
		return err
	}

	status = true
	return nil
} // func (db *Database) Set(key string, value []byte) error

// Remove deletes the given key and its value. Removing a key that does
// not exist is not an error.
func (db *Database) Remove(key string) error {
	const qid query.ID = query.KVRemove
	var (
		err    error
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			db.log.Printf("[ERROR] Error starting transaction: %s\n",
				err.Error())
			return err
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(key); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot remove key %q: %s\n",
			key,
			err.Error())
		return err
	}

	status = true
	return nil
} // func (db *Database) Remove(key string) error

// Keys returns all keys present in the store, in lexical order.
func (db *Database) Keys() ([]string, error) {
	const qid query.ID = query.KVKeys
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot fetch keys: %s\n",
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var keys = make([]string, 0, 64)

	for rows.Next() {
		var key string

		if err = rows.Scan(&key); err != nil {
			db.log.Printf("[ERROR] Cannot scan key: %s\n",
				err.Error())
			return nil, err
		}

		keys = append(keys, key)
	}

	return keys, nil
} // func (db *Database) Keys() ([]string, error)
