// /home/krylon/go/src/github.com/blicero/ariadne/clients/clientlib/lib.go
// -*- mode: go; coding: utf-8; -*-
// Created on 20. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-19 22:31:40 krylon>

// Package clientlib provides the basic framework for building clients
// that talk to the backend over its HTTP interface.
package clientlib

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/futype"
	"github.com/blicero/ariadne/objects/tystate"
	"github.com/pquerna/ffjson/ffjson"
)

// Client implements the fundamental communication with the backend.
type Client struct {
	Server *url.URL
	Client http.Client
	log    *log.Logger
}

// NewClient creates a new Client talking to the backend at the given
// address.
func NewClient(srv string) (*Client, error) {
	var (
		err error
		c   = &Client{
			Client: http.Client{
				Timeout: time.Second * 10,
			},
		}
	)

	if c.log, err = common.GetLogger(logdomain.Client); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot create Logger: %s\n",
			err.Error())
		return nil, err
	} else if c.Server, err = url.Parse(srv); err != nil {
		c.log.Printf("[ERROR] Cannot parse URL %q: %s\n",
			srv,
			err.Error())
		return nil, err
	}

	c.Server.Scheme = "http"

	return c, nil
} // func NewClient(srv string) (*Client, error)

// GetLogger returns the Client's logger, for clients that do not want
// to set up one of their own.
func (c *Client) GetLogger() *log.Logger {
	return c.log
} // func (c *Client) GetLogger() *log.Logger

// SubmitApplication registers a new job application with the backend
// and returns its ID.
func (c *Client) SubmitApplication(app *objects.Application) (string, error) {
	var values = url.Values{
		"company":  []string{app.Company},
		"position": []string{app.Position},
		"source":   []string{app.Source},
		"status":   []string{app.Status.String()},
	}

	if !app.Applied.IsZero() {
		values["applied"] = []string{app.Applied.Format(time.RFC3339)}
	}

	return c.postForm("/application/add", values)
} // func (c *Client) SubmitApplication(app *objects.Application) (string, error)

// SubmitEvent registers a new event with the backend and returns its
// ID.
func (c *Client) SubmitEvent(ev *objects.Event) (string, error) {
	var values = url.Values{
		"title":       []string{ev.Title},
		"location":    []string{ev.Location},
		"day":         []string{ev.Day},
		"start":       []string{ev.Start.Format(time.RFC3339)},
		"kind":        []string{ev.Kind.String()},
		"application": []string{ev.ApplicationID},
	}

	if !ev.End.IsZero() {
		values["end"] = []string{ev.End.Format(time.RFC3339)}
	}

	return c.postForm("/event/add", values)
} // func (c *Client) SubmitEvent(ev *objects.Event) (string, error)

// SubmitFollowUp creates a new follow-up reminder with the backend and
// returns its ID.
func (c *Client) SubmitFollowUp(appID, company, position string, kind futype.Type, days int) (string, error) {
	var values = url.Values{
		"application": []string{appID},
		"company":     []string{company},
		"position":    []string{position},
		"kind":        []string{kind.String()},
		"days":        []string{strconv.Itoa(days)},
	}

	return c.postForm("/followup/add", values)
} // func (c *Client) SubmitFollowUp(appID, company, position string, kind futype.Type, days int) (string, error)

// CompleteFollowUp marks the follow-up with the given ID completed.
func (c *Client) CompleteFollowUp(id string) error {
	var (
		err  error
		path = fmt.Sprintf("/followup/%s/complete", id)
	)

	_, err = c.postForm(path, url.Values{})
	return err
} // func (c *Client) CompleteFollowUp(id string) error

// SetThankYouState sets the thank-you note state of the interview
// event with the given ID.
func (c *Client) SetThankYouState(eventID string, st tystate.State) error {
	var (
		err    error
		path   = fmt.Sprintf("/event/%s/thankyou", eventID)
		values = url.Values{
			"state": []string{st.String()},
		}
	)

	_, err = c.postForm(path, values)
	return err
} // func (c *Client) SetThankYouState(eventID string, st tystate.State) error

func (c *Client) postForm(path string, values url.Values) (string, error) {
	var (
		err    error
		msg    string
		rcvBuf bytes.Buffer
		hres   *http.Response
		ores   objects.Response
		addr   = *c.Server
	)

	addr.Path = path

	if hres, err = c.Client.PostForm(addr.String(), values); err != nil {
		c.log.Printf("[ERROR] Failed to POST to %s: %s\n",
			addr.String(),
			err.Error())
		return "", err
	}

	defer hres.Body.Close() // nolint: errcheck

	if hres.StatusCode != http.StatusOK {
		msg = fmt.Sprintf("Unexpected status from %s: %s",
			addr.String(),
			hres.Status)
		c.log.Printf("[ERROR] %s\n", msg)
		return "", errors.New(msg)
	} else if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		c.log.Printf("[ERROR] Failed to read Response body from %s: %s\n",
			addr.String(),
			err.Error())
		return "", err
	} else if err = ffjson.Unmarshal(rcvBuf.Bytes(), &ores); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize Response from %s: %s\n",
			addr.String(),
			err.Error())
		return "", err
	} else if !ores.Status {
		err = fmt.Errorf("Request to %s failed: %s",
			addr.String(),
			ores.Message)
		c.log.Printf("[ERROR] %s\n",
			err.Error())
		return "", err
	}

	c.log.Printf("[DEBUG] Request to %s was successful: %s\n",
		addr.String(),
		ores.Message)

	return ores.Message, nil
} // func (c *Client) postForm(path string, values url.Values) (string, error)
