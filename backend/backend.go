// /home/krylon/go/src/github.com/blicero/ariadne/backend/backend.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-19 18:44:02 krylon>

// Package backend implements the daemon that owns the coordination
// engine: it keeps the database pool, delivers alerts to the desktop
// via dbus, serves the HTTP interface and announces itself via DNS-SD.
package backend

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/blicero/ariadne/calendar"
	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/database"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/notify"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/repository"
	"github.com/godbus/dbus/v5"
	"github.com/gorilla/mux"
	"github.com/grandcat/zeroconf"
)

const (
	notifyObj    = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
	queueDepth   = 5
	queueTimeout = time.Second * 2
)

// Daemon is the centerpiece of the backend, coordinating between the
// repository, the notification scheduler, and the clients.
type Daemon struct {
	log        *log.Logger
	pool       *database.Pool
	repo       *repository.Repo
	bus        *dbus.Conn
	sched      notify.Scheduler
	lock       sync.RWMutex
	active     bool
	Queue      chan objects.Notification
	web        http.Server
	router     *mux.Router
	listenAddr string
	hostname   string
	dnssd      *zeroconf.Server
	pLock      sync.Mutex
	peers      map[string]service
	idLock     sync.Mutex
	idCnt      int64
}

// Summon summons a Daemon and returns it. No sacrifice or idolatry is
// required.
//
// If sched is nil, the Daemon connects to the DBus session bus and
// arms alerts with an Alarmclock that feeds its Queue. Passing a
// Scheduler skips the dbus connection, which is what the tests do.
func Summon(addr string, sched notify.Scheduler) (*Daemon, error) {
	var (
		err error
		d   = &Daemon{
			listenAddr: addr,
			active:     true,
			sched:      sched,
			Queue:      make(chan objects.Notification, queueDepth),
			router:     mux.NewRouter(),
			peers:      make(map[string]service),
		}
	)

	if d.log, err = common.GetLogger(logdomain.Backend); err != nil {
		fmt.Printf("ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	} else if d.pool, err = database.NewPool(4); err != nil {
		d.log.Printf("[ERROR] Cannot initialize database pool: %s\n",
			err.Error())
		return nil, err
	}

	if d.hostname, err = os.Hostname(); err != nil {
		d.log.Printf("[ERROR] Cannot determine hostname: %s\n",
			err.Error())
		return nil, err
	}

	if d.sched == nil {
		if d.bus, err = dbus.SessionBus(); err != nil {
			d.log.Printf("[ERROR] Failed to connect to DBus session bus: %s\n",
				err.Error())
			return nil, err
		} else if d.sched, err = notify.NewAlarmclock(d.Queue); err != nil {
			d.log.Printf("[ERROR] Cannot create Alarmclock: %s\n",
				err.Error())
			return nil, err
		}
	}

	var cal calendar.Sync

	if cal, err = calendar.NewMirror(); err != nil {
		d.log.Printf("[WARN] Cannot create calendar mirror, calendar sync is off: %s\n",
			err.Error())
		cal = calendar.Disabled{}
	}

	if d.repo, err = repository.NewRepo(d.pool, d.sched, cal); err != nil {
		d.log.Printf("[ERROR] Cannot create Repo: %s\n",
			err.Error())
		return nil, err
	}

	var cnt int

	if cnt, err = d.repo.RearmAlerts(); err != nil {
		d.log.Printf("[ERROR] Cannot re-arm alerts: %s\n",
			err.Error())
		return nil, err
	}

	d.log.Printf("[INFO] Re-armed %d alerts\n", cnt)

	d.web.Addr = addr
	d.web.ErrorLog = d.log
	d.web.Handler = d.router

	if err = d.initWebHandlers(); err != nil {
		d.log.Printf("[ERROR] Failed to initialize web server: %s\n",
			err.Error())
		return nil, err
	}

	if err = d.initDNSSd(); err != nil {
		d.log.Printf("[WARN] Cannot announce service via DNS-SD: %s\n",
			err.Error())
	} else {
		go d.findPeers()
	}

	go d.notifyLoop()
	go d.serveHTTP()

	return d, nil
} // func Summon(addr string, sched notify.Scheduler) (*Daemon, error)

// Repo exposes the Daemon's coordination engine.
func (d *Daemon) Repo() *repository.Repo {
	return d.repo
} // func (d *Daemon) Repo() *repository.Repo

// IsAlive returns true if the Daemon's active flag is set.
func (d *Daemon) IsAlive() bool {
	d.lock.RLock()
	var alive = d.active
	d.lock.RUnlock()

	return alive
} // func (d *Daemon) IsAlive() bool

// Banish clears the Daemon's active flag, telling components to shut down.
func (d *Daemon) Banish() error {
	var (
		err         error
		ctx, cancel = context.WithTimeout(context.Background(), time.Second*3)
	)
	defer cancel()

	if err = d.web.Shutdown(ctx); err != nil {
		d.log.Printf("[ERROR] Failed to shutdown web server: %s\n",
			err.Error())
	}

	if ctx.Err() != nil {
		err = ctx.Err()
		d.log.Printf("[ERROR] Failed to gracefully shut down web server: %s\n",
			ctx.Err().Error())
		d.web.Close() // nolint: errcheck
	}

	if d.dnssd != nil {
		d.dnssd.Shutdown()
	}

	if clock, ok := d.sched.(*notify.Alarmclock); ok {
		clock.Shutdown()
	}

	d.lock.Lock()
	d.active = false
	d.lock.Unlock()
	return err
} // func (d *Daemon) Banish() error

func (d *Daemon) notifyLoop() {
	defer d.log.Println("[TRACE] Quitting notifyLoop")

	var (
		err  error
		tick = time.NewTicker(queueTimeout)
	)
	defer tick.Stop()

	for d.IsAlive() {
		select {
		case <-tick.C:
			continue
		case m := <-d.Queue:
			var title, body = m.Payload()
			d.log.Printf("[DEBUG] Received Notification: %s\n%s\n",
				title,
				body)

			if err = d.notify(m); err != nil {
				d.log.Printf("[ERROR] Failed to post Notification %q: %s\n",
					title,
					err.Error())
			}
		}
	}
} // func (d *Daemon) notifyLoop()

func (d *Daemon) notify(n objects.Notification) error {
	var (
		err        error
		head, body string
	)

	head, body = n.Payload()

	if d.bus == nil {
		// Running without a session bus, e.g. in tests.
		d.log.Printf("[INFO] ALERT %s - %s\n",
			head,
			body)
		return nil
	}

	var obj = d.bus.Object(notifyObj, notifyPath)

	if obj == nil {
		err = fmt.Errorf("Did not find object %s (%s) on session bus",
			notifyObj,
			notifyPath)
		d.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	var res = obj.Call(
		notifyMethod,
		0,
		common.AppName,
		uint32(0),
		"",
		head,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(-1),
	)

	if res.Err != nil {
		d.log.Printf("[ERROR] Cannot send Notification %q: %s\n",
			head,
			res.Err.Error())
		return res.Err
	}

	return nil
} // func (d *Daemon) notify(n objects.Notification) error

func (d *Daemon) getID() int64 {
	d.idLock.Lock()
	d.idCnt++
	var id = d.idCnt
	d.idLock.Unlock()
	return id
} // func (d *Daemon) getID() int64
