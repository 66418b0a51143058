// /home/krylon/go/src/github.com/blicero/ariadne/database/pool.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-05 18:12:30 krylon>

package database

import (
	"log"
	"sync"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/logdomain"
)

// Pool is a pool of database connections.
type Pool struct {
	lock sync.Mutex
	cond *sync.Cond
	log  *log.Logger
	pool []*Database
}

// NewPool creates a Pool of database connections of the given size.
func NewPool(cnt int) (*Pool, error) {
	var (
		err  error
		db   *Database
		pool = &Pool{
			pool: make([]*Database, 0, cnt),
		}
	)

	pool.cond = sync.NewCond(&pool.lock)

	if pool.log, err = common.GetLogger(logdomain.DBPool); err != nil {
		return nil, err
	}

	for i := 0; i < cnt; i++ {
		if db, err = Open(common.DbPath); err != nil {
			pool.log.Printf("[ERROR] Cannot open database at %s: %s\n",
				common.DbPath,
				err.Error())
			return nil, err
		}

		pool.pool = append(pool.pool, db)
	}

	return pool, nil
} // func NewPool(cnt int) (*Pool, error)

// Get returns a database connection from the pool. If the pool is
// empty, it blocks until a connection is returned.
func (pool *Pool) Get() *Database {
	pool.lock.Lock()
	defer pool.lock.Unlock()

	for len(pool.pool) == 0 {
		pool.cond.Wait()
	}

	var db = pool.pool[len(pool.pool)-1]
	pool.pool = pool.pool[:len(pool.pool)-1]

	return db
} // func (pool *Pool) Get() *Database

// GetNoWait returns a database connection from the pool, or nil if the
// pool is currently empty.
func (pool *Pool) GetNoWait() *Database {
	pool.lock.Lock()
	defer pool.lock.Unlock()

	if len(pool.pool) == 0 {
		return nil
	}

	var db = pool.pool[len(pool.pool)-1]
	pool.pool = pool.pool[:len(pool.pool)-1]

	return db
} // func (pool *Pool) GetNoWait() *Database

// Put returns a database connection to the pool.
func (pool *Pool) Put(db *Database) {
	pool.lock.Lock()
	pool.pool = append(pool.pool, db)
	pool.cond.Signal()
	pool.lock.Unlock()
} // func (pool *Pool) Put(db *Database)

// Close closes all database connections currently in the pool.
func (pool *Pool) Close() error {
	pool.lock.Lock()
	defer pool.lock.Unlock()

	for _, db := range pool.pool {
		if err := db.Close(); err != nil {
			pool.log.Printf("[ERROR] Cannot close database connection: %s\n",
				err.Error())
			return err
		}
	}

	pool.pool = pool.pool[:0]
	return nil
} // func (pool *Pool) Close() error
