// /home/krylon/go/src/github.com/blicero/ariadne/backend/peers.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-19 18:50:21 krylon>

package backend

import (
	"time"

	"github.com/grandcat/zeroconf"
)

// service is one peer instance discovered via DNS-SD, with the instant
// we last saw it.
type service struct {
	entry *zeroconf.ServiceEntry
	seen  time.Time
}

func mkService(entry *zeroconf.ServiceEntry) service {
	return service{
		entry: entry,
		seen:  time.Now(),
	}
} // func mkService(entry *zeroconf.ServiceEntry) service

func (s *service) isExpired() bool {
	return time.Since(s.seen) > time.Second*srvTTL*2
} // func (s *service) isExpired() bool
