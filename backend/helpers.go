// /home/krylon/go/src/github.com/blicero/ariadne/backend/helpers.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-19 19:06:12 krylon>

package backend

import (
	"fmt"

	"github.com/grandcat/zeroconf"
)

func rrStr(rr *zeroconf.ServiceEntry) string {
	return fmt.Sprintf("%s:%d",
		rr.HostName,
		rr.Port)
} // func rrStr(rr *zeroconf.ServiceEntry) string
