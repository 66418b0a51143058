// /home/krylon/go/src/github.com/blicero/ariadne/backend/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 03. 2024 by Benjamin Walkenhorst
// (c) 2024 Benjamin Walkenhorst
// Time-stamp: <2024-05-19 21:17:35 krylon>

package backend

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/evtype"
	"github.com/blicero/ariadne/objects/futype"
	"github.com/blicero/ariadne/objects/status"
	"github.com/blicero/ariadne/objects/tystate"
	"github.com/gorilla/mux"
	"github.com/pquerna/ffjson/ffjson"
)

func (d *Daemon) initWebHandlers() error {
	d.router.HandleFunc("/application/add", d.handleApplicationAdd)
	d.router.HandleFunc("/application/all", d.handleApplicationGetAll)
	d.router.HandleFunc("/application/{id}/status", d.handleApplicationSetStatus)
	d.router.HandleFunc("/application/{id}/note", d.handleApplicationAddNote)
	d.router.HandleFunc("/application/{id}/delete", d.handleApplicationDelete)
	d.router.HandleFunc("/event/add", d.handleEventAdd)
	d.router.HandleFunc("/event/all", d.handleEventGetAll)
	d.router.HandleFunc("/event/{id}/thankyou", d.handleEventSetThankYou)
	d.router.HandleFunc("/event/{id}/delete", d.handleEventDelete)
	d.router.HandleFunc("/followup/add", d.handleFollowUpAdd)
	d.router.HandleFunc("/followup/all", d.handleFollowUpGetAll)
	d.router.HandleFunc("/followup/{id}/complete", d.handleFollowUpComplete)
	d.router.HandleFunc("/query/thankyou/pending", d.handleQueryThankYouPending)
	d.router.HandleFunc("/query/thankyou/overdue", d.handleQueryThankYouOverdue)
	d.router.HandleFunc("/query/followups/active", d.handleQueryFollowUpsActive)

	return nil
} // func (d *Daemon) initWebHandlers() error

func (d *Daemon) serveHTTP() {
	var err error

	defer d.log.Println("[INFO] Web server is shutting down")

	d.log.Printf("[INFO] Web interface is going online at %s\n", d.web.Addr)

	if err = d.web.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			d.log.Printf("[ERROR] ListenAndServe returned an error: %s\n",
				err.Error())
		} else {
			d.log.Println("[INFO] HTTP Server has shut down.")
		}
	}
} // func (d *Daemon) serveHTTP()

func (d *Daemon) handleApplicationAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err       error
		app       objects.Application
		tstr, msg string
		response  = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	app.Company = r.PostFormValue("company")
	app.Position = r.PostFormValue("position")
	app.Source = r.PostFormValue("source")
	tstr = r.PostFormValue("applied")

	if tstr == "" {
		app.Applied = time.Now()
	} else if app.Applied, err = time.Parse(time.RFC3339, tstr); err != nil {
		msg = fmt.Sprintf("Cannot parse time stamp %q: %s",
			tstr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if app.Status, err = status.FromString(r.PostFormValue("status")); err != nil {
		app.Status = status.Applied
	}

	if err = d.repo.ApplicationSave(&app); err != nil {
		msg = fmt.Sprintf("Cannot add Application %q to repository: %s",
			app.Company,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = app.ID
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleApplicationAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleApplicationGetAll(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err  error
		apps []objects.Application
	)

	if apps, err = d.repo.ApplicationGetAll(); err != nil {
		d.log.Printf("[ERROR] Cannot load Applications: %s\n",
			err.Error())
	}

	d.sendListJSON(w, apps)
} // func (d *Daemon) handleApplicationGetAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleApplicationSetStatus(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err      error
		st       status.Status
		msg, id  string
		vars     map[string]string
		response = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)
	id = vars["id"]

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	if st, err = status.FromString(r.FormValue("status")); err != nil {
		msg = fmt.Sprintf("Cannot parse status %q: %s",
			r.FormValue("status"),
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if err = d.repo.ApplicationSetStatus(id, st); err != nil {
		msg = fmt.Sprintf("Cannot set status of Application %s to %s: %s",
			id,
			st,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = fmt.Sprintf("Status was set to %s", st)
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleApplicationSetStatus(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleApplicationAddNote(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err      error
		msg, id  string
		vars     map[string]string
		response = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)
	id = vars["id"]

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	if err = d.repo.ApplicationAddNote(id, r.FormValue("body")); err != nil {
		msg = fmt.Sprintf("Cannot add note to Application %s: %s",
			id,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = "OK"
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleApplicationAddNote(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleApplicationDelete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err      error
		msg, id  string
		vars     map[string]string
		response = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)
	id = vars["id"]

	if err = d.repo.ApplicationDelete(id); err != nil {
		msg = fmt.Sprintf("Cannot delete Application %s: %s",
			id,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = fmt.Sprintf("Application %s was deleted", id)
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleApplicationDelete(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleEventAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err       error
		ev        objects.Event
		tstr, msg string
		response  = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	ev.Title = r.PostFormValue("title")
	ev.Location = r.PostFormValue("location")
	ev.Day = r.PostFormValue("day")
	ev.ApplicationID = r.PostFormValue("application")
	tstr = r.PostFormValue("start")

	if ev.Start, err = time.Parse(time.RFC3339, tstr); err != nil {
		msg = fmt.Sprintf("Cannot parse time stamp %q: %s",
			tstr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if tstr = r.PostFormValue("end"); tstr != "" {
		if ev.End, err = time.Parse(time.RFC3339, tstr); err != nil {
			msg = fmt.Sprintf("Cannot parse time stamp %q: %s",
				tstr,
				err.Error())
			d.log.Printf("[ERROR] %s\n", msg)
			response.Message = msg
			goto SEND_RESPONSE
		}
	}

	if ev.Kind, err = evtype.FromString(r.PostFormValue("kind")); err != nil {
		msg = fmt.Sprintf("Cannot parse event type %q: %s",
			r.PostFormValue("kind"),
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if err = d.repo.EventSave(&ev, false); err != nil {
		msg = fmt.Sprintf("Cannot add Event %q to repository: %s",
			ev.Title,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = ev.ID
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleEventAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleEventGetAll(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err    error
		events []objects.Event
	)

	if events, err = d.repo.EventGetAll(); err != nil {
		d.log.Printf("[ERROR] Cannot load Events: %s\n",
			err.Error())
	}

	d.sendListJSON(w, events)
} // func (d *Daemon) handleEventGetAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleEventSetThankYou(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err      error
		st       tystate.State
		msg, id  string
		vars     map[string]string
		response = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)
	id = vars["id"]

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	if st, err = tystate.FromString(r.FormValue("state")); err != nil {
		msg = fmt.Sprintf("Cannot parse thank-you note state %q: %s",
			r.FormValue("state"),
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if err = d.repo.EventSetThankYouState(id, st); err != nil {
		msg = fmt.Sprintf("Cannot set thank-you note state of Event %s to %s: %s",
			id,
			st,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = fmt.Sprintf("Thank-you note state was set to %s", st)
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleEventSetThankYou(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleEventDelete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err      error
		msg, id  string
		vars     map[string]string
		response = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)
	id = vars["id"]

	if err = d.repo.EventDelete(id); err != nil {
		msg = fmt.Sprintf("Cannot delete Event %s: %s",
			id,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = fmt.Sprintf("Event %s was deleted", id)
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleEventDelete(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleFollowUpAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err                      error
		f                        *objects.FollowUp
		kind                     futype.Type
		days                     int64
		appID, company, pos, msg string
		response                 = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	appID = r.PostFormValue("application")
	company = r.PostFormValue("company")
	pos = r.PostFormValue("position")

	if kind, err = futype.FromString(r.PostFormValue("kind")); err != nil {
		msg = fmt.Sprintf("Cannot parse follow-up type %q: %s",
			r.PostFormValue("kind"),
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if days, err = strconv.ParseInt(r.PostFormValue("days"), 10, 32); err != nil {
		msg = fmt.Sprintf("Cannot parse number of days %q: %s",
			r.PostFormValue("days"),
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	switch kind {
	case futype.Interview:
		f, err = d.repo.FollowUpCreateInterview(appID, company, pos, int(days))
	default:
		f, err = d.repo.FollowUpCreateApplication(appID, company, pos, int(days))
	}

	if err != nil {
		msg = fmt.Sprintf("Cannot create FollowUp for %q: %s",
			company,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = f.ID
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleFollowUpAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleFollowUpGetAll(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err error
		fus []objects.FollowUp
	)

	if fus, err = d.repo.FollowUpGetAll(); err != nil {
		d.log.Printf("[ERROR] Cannot load FollowUps: %s\n",
			err.Error())
	}

	d.sendListJSON(w, fus)
} // func (d *Daemon) handleFollowUpGetAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleFollowUpComplete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err      error
		msg, id  string
		vars     map[string]string
		response = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)
	id = vars["id"]

	if err = d.repo.FollowUpComplete(id); err != nil {
		msg = fmt.Sprintf("Cannot complete FollowUp %s: %s",
			id,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = fmt.Sprintf("FollowUp %s was completed", id)
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleFollowUpComplete(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleQueryThankYouPending(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err    error
		events []objects.Event
	)

	if events, err = d.repo.ThankYouPending(); err != nil {
		d.log.Printf("[ERROR] Cannot query pending thank-you notes: %s\n",
			err.Error())
	}

	d.sendListJSON(w, events)
} // func (d *Daemon) handleQueryThankYouPending(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleQueryThankYouOverdue(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err    error
		events []objects.Event
	)

	if events, err = d.repo.ThankYouOverdue(time.Now()); err != nil {
		d.log.Printf("[ERROR] Cannot query overdue thank-you notes: %s\n",
			err.Error())
	}

	d.sendListJSON(w, events)
} // func (d *Daemon) handleQueryThankYouOverdue(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleQueryFollowUpsActive(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err error
		fus []objects.FollowUp
	)

	if fus, err = d.repo.FollowUpsActive(time.Now()); err != nil {
		d.log.Printf("[ERROR] Cannot query active FollowUps: %s\n",
			err.Error())
	}

	d.sendListJSON(w, fus)
} // func (d *Daemon) handleQueryFollowUpsActive(w http.ResponseWriter, r *http.Request)

//////////////////////////////////////////////////////////////////////////////////////////////////
/// Helpers //////////////////////////////////////////////////////////////////////////////////////
//////////////////////////////////////////////////////////////////////////////////////////////////

func (d *Daemon) sendResponseJSON(w http.ResponseWriter, res *objects.Response) {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(res); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Response object %#v: %s\n",
			res,
			err.Error())
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) sendResponseJSON(w http.ResponseWriter, res *objects.Response)

func (d *Daemon) sendListJSON(w http.ResponseWriter, list interface{}) {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(list); err != nil {
		d.log.Printf("[ERROR] Cannot serialize list: %s\n",
			err.Error())
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) sendListJSON(w http.ResponseWriter, list interface{})
