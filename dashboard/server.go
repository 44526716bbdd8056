// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/countyhealth/healthviz/healthdata"
)

// Server serves an interactive Dashboard over HTTP.
//
// One goroutine, started by Run, owns the Dashboard. Handlers send it
// closures and wait for them to finish, so updates are applied one at
// a time in arrival order.
type Server struct {
	reqs chan func(*Dashboard)
	dash *Dashboard
}

// NewServer returns a server for d. d must not be used by anything
// else once Run has started.
func NewServer(d *Dashboard) *Server {
	return &Server{reqs: make(chan func(*Dashboard)), dash: d}
}

// Run applies requests to the dashboard until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	for {
		select {
		case f := <-s.reqs:
			f(s.dash)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// do runs f on the owning goroutine and waits for it. A panic in f
// is returned as an error and leaves the owning goroutine running.
func (s *Server) do(ctx context.Context, f func(*Dashboard)) error {
	done := make(chan error, 1)
	run := func(d *Dashboard) {
		defer func() {
			if p := recover(); p != nil {
				done <- fmt.Errorf("panic: %v", p)
			}
		}()
		f(d)
		done <- nil
	}
	select {
	case s.reqs <- run:
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-done
}

// fail reports an error from do. The client is gone if its context
// was canceled.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if r.Context().Err() != nil {
		return
	}
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// Handler returns the HTTP interface of the dashboard.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/view/{file}", s.handleView)
	r.Post("/select", s.handleSelect)
	r.Post("/brush", s.handleBrush)
	r.Get("/tooltip/{view}/{id}", s.handleTooltip)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	return r
}

type pageData struct {
	Controls []pageControl
	Views    []View
}

type pageControl struct {
	ID       Control
	Label    string
	Selected healthdata.Attr
	Idle     bool // offer the "no selection" choice
	Attrs    []healthdata.Attr
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var sel Selection
	if err := s.do(r.Context(), func(d *Dashboard) { sel = d.Selection() }); err != nil {
		fail(w, r, err)
		return
	}
	attrs := healthdata.Attrs()
	data := pageData{
		Controls: []pageControl{
			{Dropdown1, "Map 1", sel.Map1, false, attrs},
			{Dropdown2, "Map 2", sel.Map2, false, attrs},
			{Dropdown3, "Histogram", sel.Histogram, true, attrs},
			{XAttribute, "X axis", sel.X, true, attrs},
			{YAttribute, "Y axis", sel.Y, true, attrs},
		},
		Views: Views,
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	if name, ok := strings.CutSuffix(file, ".png"); ok {
		s.servePNG(w, r, View(name))
		return
	}
	v := View(strings.TrimSuffix(file, ".svg"))
	var b []byte
	var err error
	if err := s.do(r.Context(), func(d *Dashboard) { b, err = d.SVG(v) }); err != nil {
		fail(w, r, err)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(b)
}

func (s *Server) servePNG(w http.ResponseWriter, r *http.Request, v View) {
	width := 0
	if ws := r.URL.Query().Get("w"); ws != "" {
		var err error
		if width, err = strconv.Atoi(ws); err != nil || width <= 0 {
			http.Error(w, fmt.Sprintf("bad width %q", ws), http.StatusBadRequest)
			return
		}
	}
	var buf bytes.Buffer
	var err error
	found := true
	if err := s.do(r.Context(), func(d *Dashboard) {
		m := d.Map(v)
		if m == nil {
			found = false
			return
		}
		err = WritePNG(&buf, m, width, 0)
	}); err != nil {
		fail(w, r, err)
		return
	}
	switch {
	case !found:
		http.Error(w, fmt.Sprintf("%s is not a map", v), http.StatusNotFound)
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}
}

type selectResponse struct {
	Views     []View    `json:"views"`
	Selection Selection `json:"selection"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	ctl := Control(r.FormValue("control"))
	a, err := healthdata.ParseAttr(r.FormValue("attr"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var resp selectResponse
	if err := s.do(r.Context(), func(d *Dashboard) {
		resp.Views, err = d.Select(ctl, a)
		resp.Selection = d.Selection()
	}); err != nil {
		fail(w, r, err)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if resp.Views == nil {
		resp.Views = []View{}
	}
	writeJSON(w, resp)
}

func (s *Server) handleBrush(w http.ResponseWriter, r *http.Request) {
	var rect Rect
	for _, f := range []struct {
		name string
		p    *float64
	}{{"x0", &rect.X0}, {"y0", &rect.Y0}, {"x1", &rect.X1}, {"y1", &rect.Y1}} {
		v, err := strconv.ParseFloat(r.FormValue(f.name), 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("bad %s: %v", f.name, err), http.StatusBadRequest)
			return
		}
		*f.p = v
	}
	var changed bool
	if err := s.do(r.Context(), func(d *Dashboard) { changed = d.Brush(rect) }); err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"changed": changed})
}

func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	v, id := View(chi.URLParam(r, "view")), chi.URLParam(r, "id")
	var t Tooltip
	var ok bool
	if err := s.do(r.Context(), func(d *Dashboard) { t, ok = d.Tooltip(v, id) }); err != nil {
		fail(w, r, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, t)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))
