// /home/krylon/go/src/github.com/blicero/ariadne/objects/response.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-04-03 21:22:10 krylon>

package objects

//go:generate ffjson response.go

// Response is what the backend sends to a client after processing a
// request. Message carries an error description or, on success, the ID
// of the entity the request concerned.
type Response struct {
	ID      int64
	Status  bool
	Message string
}
