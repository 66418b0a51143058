// /home/krylon/go/src/github.com/blicero/ariadne/database/02_database_kv_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-05 18:29:56 krylon>

package database

import (
	"fmt"
	"testing"
)

const pairCnt = 32

func TestKVSet(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	for i := 0; i < pairCnt; i++ {
		var (
			err   error
			key   = fmt.Sprintf("test_%03d", i)
			value = []byte(fmt.Sprintf("Value #%03d", i))
		)

		if err = db.Set(key, value); err != nil {
			t.Fatalf("Cannot store key %q: %s",
				key,
				err.Error())
		}
	}
} // func TestKVSet(t *testing.T)

func TestKVGet(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	for i := 0; i < pairCnt; i++ {
		var (
			err      error
			val      []byte
			key      = fmt.Sprintf("test_%03d", i)
			expected = fmt.Sprintf("Value #%03d", i)
		)

		if val, err = db.Get(key); err != nil {
			t.Fatalf("Cannot look up key %q: %s",
				key,
				err.Error())
		} else if val == nil {
			t.Fatalf("Key %q was not found", key)
		} else if string(val) != expected {
			t.Errorf("Unexpected value for key %q: %q (expected %q)",
				key,
				val,
				expected)
		}
	}

	var (
		err error
		val []byte
	)

	if val, err = db.Get("no_such_key"); err != nil {
		t.Fatalf("Looking up a missing key should not fail: %s",
			err.Error())
	} else if val != nil {
		t.Errorf("Looking up a missing key returned %q",
			val)
	}
} // func TestKVGet(t *testing.T)

func TestKVOverwrite(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err error
		val []byte
	)

	if err = db.Set("test_000", []byte("Different value")); err != nil {
		t.Fatalf("Cannot overwrite key: %s", err.Error())
	} else if val, err = db.Get("test_000"); err != nil {
		t.Fatalf("Cannot look up key after overwrite: %s", err.Error())
	} else if string(val) != "Different value" {
		t.Errorf("Unexpected value after overwrite: %q", val)
	}
} // func TestKVOverwrite(t *testing.T)

func TestKVKeys(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err  error
		keys []string
	)

	if keys, err = db.Keys(); err != nil {
		t.Fatalf("Cannot fetch keys: %s", err.Error())
	} else if len(keys) != pairCnt {
		t.Fatalf("Unexpected number of keys: %d (expected %d)",
			len(keys),
			pairCnt)
	}
} // func TestKVKeys(t *testing.T)

func TestKVRemove(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err  error
		val  []byte
		keys []string
	)

	if err = db.Remove("test_000"); err != nil {
		t.Fatalf("Cannot remove key: %s", err.Error())
	} else if val, err = db.Get("test_000"); err != nil {
		t.Fatalf("Cannot look up removed key: %s", err.Error())
	} else if val != nil {
		t.Errorf("Removed key still has value %q", val)
	} else if err = db.Remove("test_000"); err != nil {
		t.Errorf("Removing a key twice should not fail: %s", err.Error())
	} else if keys, err = db.Keys(); err != nil {
		t.Fatalf("Cannot fetch keys: %s", err.Error())
	} else if len(keys) != pairCnt-1 {
		t.Errorf("Unexpected number of keys: %d (expected %d)",
			len(keys),
			pairCnt-1)
	}
} // func TestKVRemove(t *testing.T)

func TestKVTransaction(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var err error

	if err = db.Begin(); err != nil {
		t.Fatalf("Cannot begin transaction: %s", err.Error())
	} else if err = db.Begin(); err != ErrTxInProgress {
		t.Errorf("Nested Begin should return ErrTxInProgress, got %v", err)
	} else if err = db.Set("tx_key", []byte("tx_value")); err != nil {
		t.Fatalf("Cannot store key inside transaction: %s", err.Error())
	} else if err = db.Rollback(); err != nil {
		t.Fatalf("Cannot roll back transaction: %s", err.Error())
	}

	var val []byte

	if val, err = db.Get("tx_key"); err != nil {
		t.Fatalf("Cannot look up key after rollback: %s", err.Error())
	} else if val != nil {
		t.Errorf("Key stored in rolled-back transaction is still present: %q",
			val)
	}

	if err = db.Commit(); err != ErrNoTxInProgress {
		t.Errorf("Commit without transaction should return ErrNoTxInProgress, got %v",
			err)
	}
} // func TestKVTransaction(t *testing.T)
