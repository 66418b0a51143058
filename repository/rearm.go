// /home/krylon/go/src/github.com/blicero/ariadne/repository/rearm.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-18 18:12:33 krylon>

package repository

import (
	"fmt"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/evtype"
)

// RearmAlerts walks all persisted records and re-arms their alerts with
// the Scheduler. Alert handles do not survive a restart; whatever is in
// the stored records is stale by the time this runs. Records whose due
// instant has passed get their handle cleared instead.
//
// It returns the number of alerts armed.
func (r *Repo) RearmAlerts() (int, error) {
	var (
		err    error
		events []objects.Event
		fus    []objects.FollowUp
		cnt    int
		db     = r.pool.Get()
	)
	defer r.pool.Put(db)

	if events, err = r.eventFetchAll(db); err != nil {
		return 0, err
	} else if fus, err = r.followUpFetchAll(db); err != nil {
		return 0, err
	}

	for idx := range events {
		var (
			ev      = &events[idx]
			touched bool
		)

		if !ev.Start.IsZero() {
			var (
				handle      string
				title, body = ev.Payload()
				due         = ev.Start.Add(-common.EventAlertLead)
			)

			if handle, err = r.sched.Schedule(title, body, due); err != nil {
				r.sideEffect("re-arm event alert", err)
			} else if handle != ev.NotificationID {
				ev.NotificationID = handle
				touched = true
			}

			if handle != "" {
				cnt++
			}
		}

		if ev.Kind == evtype.Interview && !ev.ThankYouNote.Terminal() {
			var due time.Time

			if due, err = r.thankYouDue(ev); err != nil {
				r.sideEffect("compute thank-you due time", err)
			} else {
				var (
					handle string
					title  = fmt.Sprintf("Thank-you note: %s", ev.Title)
					body   = fmt.Sprintf("Send a thank-you note for your interview on %s.",
						ev.Day)
				)

				if handle, err = r.sched.Schedule(title, body, due); err != nil {
					r.sideEffect("re-arm thank-you alert", err)
				} else if handle != ev.ThankYouAlertID {
					ev.ThankYouAlertID = handle
					touched = true
				}

				if handle != "" {
					cnt++
				}
			}
		}

		if touched {
			if err = r.eventStore(db, ev); err != nil {
				return cnt, err
			}
		}
	}

	for idx := range fus {
		var f = &fus[idx]

		if f.Completed {
			continue
		}

		var (
			handle      string
			title, body = f.Payload()
		)

		if handle, err = r.sched.Schedule(title, body, f.DueDate); err != nil {
			r.sideEffect("re-arm follow-up alert", err)
			continue
		}

		if handle != "" {
			cnt++
		}

		if handle != f.NotificationID {
			f.NotificationID = handle

			if err = r.followUpStore(db, f); err != nil {
				return cnt, err
			}
		}
	}

	return cnt, nil
} // func (r *Repo) RearmAlerts() (int, error)
