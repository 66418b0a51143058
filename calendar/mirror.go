// /home/krylon/go/src/github.com/blicero/ariadne/calendar/mirror.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-12 17:20:09 krylon>

package calendar

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
)

// icsStamp is the timestamp format iCalendar wants, UTC.
const icsStamp = "20060102T150405Z"

// Mirror maintains one iCalendar file per mirrored Event below the
// application's base directory, where desktop calendars can pick them
// up.
type Mirror struct {
	log *log.Logger
	dir string
}

// NewMirror creates a Mirror writing to the default calendar directory.
func NewMirror() (*Mirror, error) {
	var (
		err error
		m   = &Mirror{dir: common.CalendarPath}
	)

	if m.log, err = common.GetLogger(logdomain.Calendar); err != nil {
		return nil, err
	} else if err = os.MkdirAll(m.dir, 0755); err != nil {
		m.log.Printf("[ERROR] Cannot create calendar directory %s: %s\n",
			m.dir,
			err.Error())
		return nil, err
	}

	return m, nil
} // func NewMirror() (*Mirror, error)

// Create mirrors the given Event and returns the external ID of the
// mirrored entry.
func (m *Mirror) Create(ev *objects.Event) (string, error) {
	var id = common.GetUUID()

	if err := m.write(id, ev); err != nil {
		return "", err
	}

	return id, nil
} // func (m *Mirror) Create(ev *objects.Event) (string, error)

// Update rewrites the mirrored entry with the given external ID.
func (m *Mirror) Update(externalID string, ev *objects.Event) error {
	return m.write(externalID, ev)
} // func (m *Mirror) Update(externalID string, ev *objects.Event) error

// Delete removes the mirrored entry with the given external ID.
// Deleting an entry that does not exist is not an error.
func (m *Mirror) Delete(externalID string) error {
	var err = os.Remove(m.path(externalID))

	if err != nil && !os.IsNotExist(err) {
		m.log.Printf("[ERROR] Cannot remove calendar entry %s: %s\n",
			externalID,
			err.Error())
		return err
	}

	return nil
} // func (m *Mirror) Delete(externalID string) error

func (m *Mirror) path(id string) string {
	return filepath.Join(m.dir, id+".ics")
} // func (m *Mirror) path(id string) string

func (m *Mirror) write(id string, ev *objects.Event) error {
	var (
		err          error
		buf          strings.Builder
		title, descr = ev.Payload()
	)

	buf.WriteString("BEGIN:VCALENDAR\r\n")
	buf.WriteString("VERSION:2.0\r\n")
	fmt.Fprintf(&buf, "PRODID:-//%s %s//EN\r\n", common.AppName, common.Version)
	buf.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&buf, "UID:%s\r\n", id)
	fmt.Fprintf(&buf, "DTSTAMP:%s\r\n", time.Now().UTC().Format(icsStamp))
	fmt.Fprintf(&buf, "DTSTART:%s\r\n", ev.Start.UTC().Format(icsStamp))

	if !ev.End.IsZero() {
		fmt.Fprintf(&buf, "DTEND:%s\r\n", ev.End.UTC().Format(icsStamp))
	}

	fmt.Fprintf(&buf, "SUMMARY:%s\r\n", title)
	fmt.Fprintf(&buf, "DESCRIPTION:%s\r\n", descr)

	if ev.Location != "" {
		fmt.Fprintf(&buf, "LOCATION:%s\r\n", ev.Location)
	}

	buf.WriteString("END:VEVENT\r\n")
	buf.WriteString("END:VCALENDAR\r\n")

	if err = os.WriteFile(m.path(id), []byte(buf.String()), 0644); err != nil {
		m.log.Printf("[ERROR] Cannot write calendar entry %s: %s\n",
			id,
			err.Error())
		return err
	}

	return nil
} // func (m *Mirror) write(id string, ev *objects.Event) error
