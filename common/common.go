// /home/krylon/go/src/github.com/blicero/ariadne/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-17 19:48:21 krylon>

// Package common provides constants, variables and functions used
// throughout the application.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/krylib"
	"github.com/hashicorp/logutils"
	"github.com/odeke-em/go-uuid"
)

// Debug indicates whether to emit additional log messages and perform
// additional sanity checks.
const Debug = true

// AppName is the name of the application, Version the version number,
// and TimestampFormat the default format for timestamps.
const (
	AppName                  = "Ariadne"
	Version                  = "0.2.1"
	TimestampFormat          = "2006-01-02 15:04:05"
	TimestampFormatMinute    = "2006-01-02 15:04"
	TimestampFormatSubSecond = "2006-01-02 15:04:05.0000 MST"
	TimestampFormatTime      = "15:04:05"
	TimestampFormatDate      = "2006-01-02"
	DefaultPort              = 7209
)

// ThankYouGraceDays is the number of days after an interview before the
// thank-you note becomes overdue, ThankYouAlertHour the time of day the
// thank-you alert goes off, FollowUpAlertHour the time of day follow-up
// reminders are due, and EventAlertLead how far ahead of an Event's start
// time the user is alerted.
const (
	ThankYouGraceDays  = 1
	ThankYouAlertHour  = 10
	FollowUpAlertHour  = 9
	DefaultFollowUpDue = 3
	EventAlertLead     = time.Minute * 10
)

// LogLevels are the valid log levels.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// MinLogLevel is the minimum level of log messages that actually get
// written out.
const MinLogLevel = "TRACE"

// BaseDir is the directory where the application stores all of its files,
// LogPath is the path of the log file, DbPath the path of the database,
// CalendarPath the directory where mirrored calendar entries are written.
var (
	BaseDir      = filepath.Join(os.Getenv("HOME"), ".ariadne.d")
	LogPath      = filepath.Join(BaseDir, "ariadne.log")
	DbPath       = filepath.Join(BaseDir, "ariadne.db")
	CalendarPath = filepath.Join(BaseDir, "calendar")
)

// SetBaseDir sets the BaseDir and the various derived paths, and it makes
// sure the directory exists.
func SetBaseDir(path string) error {
	fmt.Printf("Setting BaseDir to %s\n", path)

	BaseDir = path
	LogPath = filepath.Join(BaseDir, "ariadne.log")
	DbPath = filepath.Join(BaseDir, "ariadne.db")
	CalendarPath = filepath.Join(BaseDir, "calendar")

	if err := InitApp(); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Error initializing application environment: %s\n",
			err.Error())
		return err
	}

	return nil
} // func SetBaseDir(path string) error

// InitApp performs some basic preparations for the application to run.
// Currently, this means creating the BaseDir if it does not exist.
func InitApp() error {
	var (
		err    error
		exists bool
	)

	if exists, err = krylib.Fexists(BaseDir); err != nil {
		return fmt.Errorf("Error checking BaseDir %s: %s",
			BaseDir,
			err.Error())
	} else if !exists {
		if err = os.Mkdir(BaseDir, 0755); err != nil {
			return fmt.Errorf("Error creating BaseDir %s: %s",
				BaseDir,
				err.Error())
		}
	}

	return nil
} // func InitApp() error

// GetLogger tries to create a Logger for the given subsystem.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err  error
		name = fmt.Sprintf("%s.%s ",
			AppName,
			dom)
	)

	if err = InitApp(); err != nil {
		return nil, fmt.Errorf("Error initializing application environment: %s",
			err.Error())
	}

	var fh *os.File

	if fh, err = os.OpenFile(LogPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644); err != nil {
		return nil, fmt.Errorf("Error opening log file %s: %s",
			LogPath,
			err.Error())
	}

	var writer = io.MultiWriter(os.Stdout, fh)
	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: logutils.LogLevel(MinLogLevel),
		Writer:   writer,
	}

	var logger = log.New(filter, name, log.Ldate|log.Ltime|log.Lshortfile)

	return logger, nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

// GetUUID returns a randomized UUID as a string.
func GetUUID() string {
	return uuid.NewRandom().String()
} // func GetUUID() string

// TimeEqual returns true if the two timestamps are less than one second
// apart.
func TimeEqual(t1, t2 time.Time) bool {
	var delta = t1.Sub(t2)

	if delta < 0 {
		delta = -delta
	}

	return delta < time.Second
} // func TimeEqual(t1, t2 time.Time) bool
