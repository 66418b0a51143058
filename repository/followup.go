// /home/krylon/go/src/github.com/blicero/ariadne/repository/followup.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-17 22:09:41 krylon>

package repository

import (
	"fmt"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/database"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/futype"
	"github.com/pquerna/ffjson/ffjson"
)

// futypeAny makes completeFollowUps ignore the kind filter.
const futypeAny = futype.Type(255)

func (r *Repo) followUpFetch(db *database.Database, id string) (*objects.FollowUp, error) {
	var (
		err error
		raw []byte
		f   objects.FollowUp
	)

	if raw, err = db.Get(prefixFollowUp + id); err != nil {
		return nil, err
	} else if raw == nil {
		return nil, nil
	} else if err = ffjson.Unmarshal(raw, &f); err != nil {
		r.log.Printf("[ERROR] Cannot de-serialize FollowUp %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	return &f, nil
} // func (r *Repo) followUpFetch(db *database.Database, id string) (*objects.FollowUp, error)

func (r *Repo) followUpStore(db *database.Database, f *objects.FollowUp) error {
	var (
		err error
		buf []byte
	)

	f.Changed = time.Now()

	if buf, err = ffjson.Marshal(f); err != nil {
		r.log.Printf("[ERROR] Cannot serialize FollowUp for %q: %s\n",
			f.Company,
			err.Error())
		return err
	}

	defer ffjson.Pool(buf)

	if err = db.Set(prefixFollowUp+f.ID, buf); err != nil {
		return err
	}

	return r.indexAdd(db, indexFollowUp, f.ID)
} // func (r *Repo) followUpStore(db *database.Database, f *objects.FollowUp) error

// FollowUpCreateApplication creates a follow-up on the application
// itself, due the given number of days from now, at the fixed
// follow-up time of day.
func (r *Repo) FollowUpCreateApplication(appID, company, position string, days int) (*objects.FollowUp, error) {
	return r.followUpCreate(futype.Application, appID, company, position, days)
} // func (r *Repo) FollowUpCreateApplication(appID, company, position string, days int) (*objects.FollowUp, error)

// FollowUpCreateInterview creates a follow-up on an interview outcome,
// due the given number of days from now, at the fixed follow-up time
// of day.
func (r *Repo) FollowUpCreateInterview(appID, company, position string, days int) (*objects.FollowUp, error) {
	return r.followUpCreate(futype.Interview, appID, company, position, days)
} // func (r *Repo) FollowUpCreateInterview(appID, company, position string, days int) (*objects.FollowUp, error)

// These are the only two constructors; a FollowUp never changes its
// kind or its Application after creation.
func (r *Repo) followUpCreate(kind futype.Type, appID, company, position string, days int) (*objects.FollowUp, error) {
	var (
		err error
		day = time.Now().AddDate(0, 0, days)
		f   = &objects.FollowUp{
			ID:            common.GetUUID(),
			ApplicationID: appID,
			Kind:          kind,
			Company:       company,
			Position:      position,
			DueDate: time.Date(day.Year(), day.Month(), day.Day(),
				common.FollowUpAlertHour, 0, 0, 0, time.Local),
		}
	)

	var (
		handle      string
		serr        error
		title, body = f.Payload()
	)

	if handle, serr = r.sched.Schedule(title, body, f.DueDate); serr != nil {
		r.sideEffect("schedule follow-up alert", serr)
	} else if handle != "" {
		f.NotificationID = handle
	}

	var db = r.pool.Get()
	defer r.pool.Put(db)

	if err = r.followUpStore(db, f); err != nil {
		return nil, err
	}

	return f, nil
} // func (r *Repo) followUpCreate(kind futype.Type, appID, company, position string, days int) (*objects.FollowUp, error)

// FollowUpComplete marks the FollowUp with the given ID as completed
// and cancels its alert. Completing a FollowUp twice is safe; the
// second call re-writes the record without touching CompletedAt.
func (r *Repo) FollowUpComplete(id string) error {
	var (
		err error
		f   *objects.FollowUp
		db  = r.pool.Get()
	)
	defer r.pool.Put(db)

	if f, err = r.followUpFetch(db, id); err != nil {
		return err
	} else if f == nil {
		return fmt.Errorf("%w: FollowUp %s",
			ErrNotFound,
			id)
	}

	return r.followUpComplete(db, f)
} // func (r *Repo) FollowUpComplete(id string) error

func (r *Repo) followUpComplete(db *database.Database, f *objects.FollowUp) error {
	if !f.Completed {
		f.Completed = true
		f.CompletedAt = time.Now()
	}

	if f.NotificationID != "" {
		r.sched.Cancel(f.NotificationID)
		f.NotificationID = ""
	}

	return r.followUpStore(db, f)
} // func (r *Repo) followUpComplete(db *database.Database, f *objects.FollowUp) error

// completeFollowUps completes every non-completed FollowUp of the given
// Application, restricted to the given kind unless that is futypeAny.
func (r *Repo) completeFollowUps(db *database.Database, appID string, kind futype.Type) error {
	var (
		err error
		fus []objects.FollowUp
	)

	if fus, err = r.followUpFetchForApplication(db, appID); err != nil {
		return err
	}

	for idx := range fus {
		var f = &fus[idx]

		if f.Completed {
			continue
		} else if kind != futypeAny && f.Kind != kind {
			continue
		}

		if err = r.followUpComplete(db, f); err != nil {
			return err
		}
	}

	return nil
} // func (r *Repo) completeFollowUps(db *database.Database, appID string, kind futype.Type) error

// FollowUpGetAll fetches all FollowUps.
func (r *Repo) FollowUpGetAll() ([]objects.FollowUp, error) {
	var db = r.pool.Get()
	defer r.pool.Put(db)

	return r.followUpFetchAll(db)
} // func (r *Repo) FollowUpGetAll() ([]objects.FollowUp, error)

func (r *Repo) followUpFetchAll(db *database.Database) ([]objects.FollowUp, error) {
	var (
		err error
		ids []string
	)

	if ids, err = r.indexGet(db, indexFollowUp); err != nil {
		return nil, err
	}

	var fus = make([]objects.FollowUp, 0, len(ids))

	for _, id := range ids {
		var f *objects.FollowUp

		if f, err = r.followUpFetch(db, id); err != nil {
			return nil, err
		} else if f != nil {
			fus = append(fus, *f)
		}
	}

	return fus, nil
} // func (r *Repo) followUpFetchAll(db *database.Database) ([]objects.FollowUp, error)

// FollowUpGetByApplication fetches all FollowUps owned by the given
// Application.
func (r *Repo) FollowUpGetByApplication(appID string) ([]objects.FollowUp, error) {
	var db = r.pool.Get()
	defer r.pool.Put(db)

	return r.followUpFetchForApplication(db, appID)
} // func (r *Repo) FollowUpGetByApplication(appID string) ([]objects.FollowUp, error)

func (r *Repo) followUpFetchForApplication(db *database.Database, appID string) ([]objects.FollowUp, error) {
	var (
		err error
		all []objects.FollowUp
	)

	if all, err = r.followUpFetchAll(db); err != nil {
		return nil, err
	}

	var fus = make([]objects.FollowUp, 0, len(all))

	for _, f := range all {
		if f.ApplicationID == appID {
			fus = append(fus, f)
		}
	}

	return fus, nil
} // func (r *Repo) followUpFetchForApplication(db *database.Database, appID string) ([]objects.FollowUp, error)

// FollowUpDeleteForApplication deletes every FollowUp owned by the
// given Application, cancelling their alerts first.
func (r *Repo) FollowUpDeleteForApplication(appID string) error {
	var db = r.pool.Get()
	defer r.pool.Put(db)

	return r.followUpDeleteForApplication(db, appID)
} // func (r *Repo) FollowUpDeleteForApplication(appID string) error

func (r *Repo) followUpDeleteForApplication(db *database.Database, appID string) error {
	var (
		err error
		fus []objects.FollowUp
	)

	if fus, err = r.followUpFetchForApplication(db, appID); err != nil {
		return err
	}

	for _, f := range fus {
		if f.NotificationID != "" {
			r.sched.Cancel(f.NotificationID)
		}

		if err = db.Remove(prefixFollowUp + f.ID); err != nil {
			return err
		} else if err = r.indexRemove(db, indexFollowUp, f.ID); err != nil {
			return err
		}
	}

	return nil
} // func (r *Repo) followUpDeleteForApplication(db *database.Database, appID string) error
