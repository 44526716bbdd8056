// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dashboard renders the county health dashboard: two
// choropleth maps, a histogram and a scatter plot, each driven by its
// own attribute selection over one shared dataset.
//
// Views are drawn as SVG documents. A Dashboard is not safe for
// concurrent use; Server serializes access to one.
package dashboard

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/countyhealth/healthviz/healthdata"
)

// A Control is one of the dashboard's attribute selectors.
type Control string

const (
	Dropdown1  Control = "dropdown1"
	Dropdown2  Control = "dropdown2"
	Dropdown3  Control = "dropdown3"
	XAttribute Control = "x-attribute-dropdown"
	YAttribute Control = "y-attribute-dropdown"
)

// Controls lists every control in page order.
var Controls = []Control{Dropdown1, Dropdown2, Dropdown3, XAttribute, YAttribute}

// A View is one drawing target of the dashboard.
type View string

const (
	Map1          View = "map1"
	Map2          View = "map2"
	HistogramView View = "histogram"
	ScatterView   View = "scatter"
	ScatterLegend View = "scatter-legend"
)

// Views lists every view in page order.
var Views = []View{Map1, Map2, HistogramView, ScatterView, ScatterLegend}

// Selection is the attribute chosen for each view.
type Selection struct {
	Map1      healthdata.Attr `json:"map1"`
	Map2      healthdata.Attr `json:"map2"`
	Histogram healthdata.Attr `json:"histogram"`
	X         healthdata.Attr `json:"x"`
	Y         healthdata.Attr `json:"y"`
}

// Dashboard holds every view and the dataset they share.
type Dashboard struct {
	cfg  Config
	data *healthdata.Dataset
	sel  Selection

	maps    [2]*ChoroplethMap
	hist    *Histogram
	scatter *ScatterPlot

	svg     map[View][]byte // rendered views; absent means stale
	renders map[View]int
}

// New builds a dashboard over data with the initial selection: both
// maps on DefaultMapAttr, the histogram idle and no scatter axes.
func New(cfg Config, data *healthdata.Dataset) *Dashboard {
	d := &Dashboard{
		cfg:     cfg,
		data:    data,
		svg:     make(map[View][]byte),
		renders: make(map[View]int),
	}
	d.maps[0] = NewChoroplethMap(string(Map1), cfg.Map, data)
	d.maps[1] = NewChoroplethMap(string(Map2), cfg.Map, data)
	d.hist = NewHistogram(cfg.Histogram, data)
	d.scatter = NewScatterPlot(cfg.Scatter, data)
	d.sel = Selection{Map1: DefaultMapAttr, Map2: DefaultMapAttr}
	return d
}

// Selection returns the current selection.
func (d *Dashboard) Selection() Selection {
	return d.sel
}

// Dataset returns the shared dataset.
func (d *Dashboard) Dataset() *healthdata.Dataset {
	return d.data
}

// Map returns map view v, or nil if v is not a map.
func (d *Dashboard) Map(v View) *ChoroplethMap {
	switch v {
	case Map1:
		return d.maps[0]
	case Map2:
		return d.maps[1]
	}
	return nil
}

// Histogram returns the histogram view.
func (d *Dashboard) Histogram() *Histogram {
	return d.hist
}

// Scatter returns the scatter plot view.
func (d *Dashboard) Scatter() *ScatterPlot {
	return d.scatter
}

// Select applies attribute a to control ctl and updates only the view
// that control drives. It returns the views whose drawing changed.
func (d *Dashboard) Select(ctl Control, a healthdata.Attr) ([]View, error) {
	switch ctl {
	case Dropdown1:
		d.sel.Map1 = a
		d.maps[0].Update(a, d.data)
		return d.invalidate(Map1), nil
	case Dropdown2:
		d.sel.Map2 = a
		d.maps[1].Update(a, d.data)
		return d.invalidate(Map2), nil
	case Dropdown3:
		if a == healthdata.None {
			return nil, nil
		}
		d.sel.Histogram = a
		d.hist.Update(a, d.data)
		return d.invalidate(HistogramView), nil
	case XAttribute:
		d.sel.X = a
	case YAttribute:
		d.sel.Y = a
	default:
		return nil, fmt.Errorf("unknown control %q", ctl)
	}
	d.scatter.Update(d.sel.X, d.sel.Y, d.data)
	return d.invalidate(ScatterView, ScatterLegend), nil
}

// Replace swaps in a new dataset and updates every view with its
// current selection.
func (d *Dashboard) Replace(data *healthdata.Dataset) {
	d.data = data
	d.maps[0].Update(d.sel.Map1, data)
	d.maps[1].Update(d.sel.Map2, data)
	// An idle histogram only remembers the new data.
	if d.sel.Histogram == healthdata.None {
		d.hist = NewHistogram(d.cfg.Histogram, data)
	} else {
		d.hist.Update(d.sel.Histogram, data)
	}
	d.scatter.Update(d.sel.X, d.sel.Y, data)
	d.invalidate(Views...)
}

// Brush zooms the scatter plot to r. It reports whether the plot
// changed.
func (d *Dashboard) Brush(r Rect) bool {
	if !d.scatter.Brush(r) {
		return false
	}
	d.invalidate(ScatterView)
	return true
}

// Tooltip returns the hover text for county id on map view v.
func (d *Dashboard) Tooltip(v View, id string) (Tooltip, bool) {
	m := d.Map(v)
	if m == nil {
		return Tooltip{}, false
	}
	return m.Tooltip(id)
}

func (d *Dashboard) invalidate(vs ...View) []View {
	for _, v := range vs {
		delete(d.svg, v)
	}
	return vs
}

// SVG returns the drawing of view v. Views are redrawn only after an
// update changed them.
func (d *Dashboard) SVG(v View) ([]byte, error) {
	if b, ok := d.svg[v]; ok {
		return b, nil
	}
	var buf bytes.Buffer
	var err error
	switch v {
	case Map1, Map2:
		err = d.Map(v).Render(&buf)
	case HistogramView:
		err = d.hist.Render(&buf)
	case ScatterView:
		err = d.scatter.Render(&buf)
	case ScatterLegend:
		err = d.scatter.RenderLegend(&buf)
	default:
		return nil, fmt.Errorf("unknown view %q", v)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", v, err)
	}
	d.svg[v] = buf.Bytes()
	d.renders[v]++
	return d.svg[v], nil
}

// WriteFiles writes every view to dir as <view>.svg.
func (d *Dashboard) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	for _, v := range Views {
		b, err := d.SVG(v)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, string(v)+".svg"), b, 0666); err != nil {
			return err
		}
	}
	return nil
}
