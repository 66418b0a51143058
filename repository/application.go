// /home/krylon/go/src/github.com/blicero/ariadne/repository/application.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-17 21:48:35 krylon>

package repository

import (
	"fmt"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/database"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/futype"
	"github.com/blicero/ariadne/objects/status"
	"github.com/pquerna/ffjson/ffjson"
)

func (r *Repo) applicationFetch(db *database.Database, id string) (*objects.Application, error) {
	var (
		err error
		raw []byte
		app objects.Application
	)

	if raw, err = db.Get(prefixApplication + id); err != nil {
		return nil, err
	} else if raw == nil {
		return nil, nil
	} else if err = ffjson.Unmarshal(raw, &app); err != nil {
		r.log.Printf("[ERROR] Cannot de-serialize Application %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	return &app, nil
} // func (r *Repo) applicationFetch(db *database.Database, id string) (*objects.Application, error)

func (r *Repo) applicationStore(db *database.Database, app *objects.Application) error {
	var (
		err error
		buf []byte
	)

	app.Changed = time.Now()

	if buf, err = ffjson.Marshal(app); err != nil {
		r.log.Printf("[ERROR] Cannot serialize Application %q: %s\n",
			app.Company,
			err.Error())
		return err
	}

	defer ffjson.Pool(buf)

	if err = db.Set(prefixApplication+app.ID, buf); err != nil {
		return err
	}

	return r.indexAdd(db, indexApplication, app.ID)
} // func (r *Repo) applicationStore(db *database.Database, app *objects.Application) error

// ApplicationSave persists the given Application. A missing ID is
// filled in, as is the timestamp of the initial status.
func (r *Repo) ApplicationSave(app *objects.Application) error {
	if app.ID == "" {
		app.ID = common.GetUUID()
	}

	if app.StatusChanged == nil {
		app.StatusChanged = map[status.Status]time.Time{
			app.Status: time.Now(),
		}
	}

	var db = r.pool.Get()
	defer r.pool.Put(db)

	return r.applicationStore(db, app)
} // func (r *Repo) ApplicationSave(app *objects.Application) error

// ApplicationGetByID fetches the Application with the given ID. A
// missing Application is not an error; the result is nil in that case.
func (r *Repo) ApplicationGetByID(id string) (*objects.Application, error) {
	var db = r.pool.Get()
	defer r.pool.Put(db)

	return r.applicationFetch(db, id)
} // func (r *Repo) ApplicationGetByID(id string) (*objects.Application, error)

// ApplicationGetAll fetches all Applications. IDs in the index whose
// records have gone missing are skipped.
func (r *Repo) ApplicationGetAll() ([]objects.Application, error) {
	var (
		err error
		ids []string
		db  = r.pool.Get()
	)
	defer r.pool.Put(db)

	if ids, err = r.indexGet(db, indexApplication); err != nil {
		return nil, err
	}

	var apps = make([]objects.Application, 0, len(ids))

	for _, id := range ids {
		var app *objects.Application

		if app, err = r.applicationFetch(db, id); err != nil {
			return nil, err
		} else if app != nil {
			apps = append(apps, *app)
		}
	}

	return apps, nil
} // func (r *Repo) ApplicationGetAll() ([]objects.Application, error)

// ApplicationSetStatus sets the status of the Application with the
// given ID, recording the instant of the transition. Setting the status
// to Rejected completes all non-completed follow-ups of type
// Application; follow-ups of type Interview are deliberately left
// alone, a rejection can arrive after an interview and the interview
// follow-up may still be worth acting on.
func (r *Repo) ApplicationSetStatus(id string, st status.Status) error {
	var (
		err error
		app *objects.Application
		db  = r.pool.Get()
	)
	defer r.pool.Put(db)

	if app, err = r.applicationFetch(db, id); err != nil {
		return err
	} else if app == nil {
		return fmt.Errorf("%w: Application %s",
			ErrNotFound,
			id)
	}

	return r.applicationSetStatus(db, app, st)
} // func (r *Repo) ApplicationSetStatus(id string, st status.Status) error

func (r *Repo) applicationSetStatus(db *database.Database, app *objects.Application, st status.Status) error {
	var err error

	if app.Status == st {
		return nil
	}

	app.Status = st

	if app.StatusChanged == nil {
		app.StatusChanged = make(map[status.Status]time.Time)
	}

	app.StatusChanged[st] = time.Now()

	if err = r.applicationStore(db, app); err != nil {
		return err
	}

	if st == status.Rejected {
		r.sideEffect("complete application follow-ups on rejection",
			r.completeFollowUps(db, app.ID, futype.Application))
	}

	return nil
} // func (r *Repo) applicationSetStatus(db *database.Database, app *objects.Application, st status.Status) error

// ApplicationAddNote appends a note to the Application's log.
func (r *Repo) ApplicationAddNote(id, body string) error {
	var (
		err error
		app *objects.Application
		db  = r.pool.Get()
	)
	defer r.pool.Put(db)

	if app, err = r.applicationFetch(db, id); err != nil {
		return err
	} else if app == nil {
		return fmt.Errorf("%w: Application %s",
			ErrNotFound,
			id)
	}

	app.AddNote(body)

	return r.applicationStore(db, app)
} // func (r *Repo) ApplicationAddNote(id, body string) error

// ApplicationAddEmail records a message sent regarding the Application.
func (r *Repo) ApplicationAddEmail(id string, mail objects.Email) error {
	var (
		err error
		app *objects.Application
		db  = r.pool.Get()
	)
	defer r.pool.Put(db)

	if app, err = r.applicationFetch(db, id); err != nil {
		return err
	} else if app == nil {
		return fmt.Errorf("%w: Application %s",
			ErrNotFound,
			id)
	}

	if mail.SentDate.IsZero() {
		mail.SentDate = time.Now()
	}

	app.SentEmails = append(app.SentEmails, mail)

	return r.applicationStore(db, app)
} // func (r *Repo) ApplicationAddEmail(id string, mail objects.Email) error

// ApplicationDelete removes the Application with the given ID. Its
// follow-ups are deleted first, then its Events are unlinked (they
// survive the Application), then the record itself goes away. Deleting
// an Application that does not exist is not an error.
func (r *Repo) ApplicationDelete(id string) error {
	var (
		err error
		app *objects.Application
		db  = r.pool.Get()
	)
	defer r.pool.Put(db)

	if app, err = r.applicationFetch(db, id); err != nil {
		return err
	} else if app == nil {
		return nil
	}

	if err = r.followUpDeleteForApplication(db, id); err != nil {
		return err
	}

	for _, eid := range app.EventIDs {
		var ev *objects.Event

		if ev, err = r.eventFetch(db, eid); err != nil {
			return err
		} else if ev == nil || ev.ApplicationID != id {
			continue
		}

		ev.ApplicationID = ""

		if err = r.eventStore(db, ev); err != nil {
			return err
		}
	}

	if err = db.Begin(); err != nil {
		return err
	} else if err = db.Remove(prefixApplication + id); err != nil {
		db.Rollback() // nolint: errcheck
		return err
	} else if err = r.indexRemove(db, indexApplication, id); err != nil {
		db.Rollback() // nolint: errcheck
		return err
	}

	return db.Commit()
} // func (r *Repo) ApplicationDelete(id string) error
