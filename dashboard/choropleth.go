// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

import (
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/countyhealth/healthviz/healthdata"
	"github.com/countyhealth/healthviz/internal/albers"
)

// DefaultMapAttr is the attribute a new map displays.
const DefaultMapAttr = healthdata.PovertyPercentage

// A LegendStop is one end of a map legend's color gradient.
type LegendStop struct {
	Offset int // percent along the legend
	Color  string
	Value  float64
}

// A MapLegend describes a map's color legend. Stops is nil when the
// selected attribute has no usable values.
type MapLegend struct {
	Title string
	Stops []LegendStop
}

// A Tooltip is the hover text for one region.
type Tooltip struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// ChoroplethMap colors each county by the value of one attribute.
type ChoroplethMap struct {
	id   string
	cfg  MapConfig
	data *healthdata.Dataset
	attr healthdata.Attr

	proj    *albers.Projection
	paths   []string // projected county outlines, by county index
	borders string

	color     ramp
	hasDomain bool
	fills     []string
	legend    MapLegend
}

// NewChoroplethMap returns a map of data drawn into the element with
// the given id, showing DefaultMapAttr.
func NewChoroplethMap(id string, cfg MapConfig, data *healthdata.Dataset) *ChoroplethMap {
	w := float64(cfg.Width - cfg.Margin.Left - cfg.Margin.Right)
	h := float64(cfg.Height - cfg.Margin.Top - cfg.Margin.Bottom)
	m := &ChoroplethMap{
		id:    id,
		cfg:   cfg,
		proj:  albers.New(w, w/2, h/2),
		color: newRamp(cfg.LowColor, cfg.HighColor),
	}
	m.Update(DefaultMapAttr, data)
	return m
}

// ID returns the map's element id.
func (m *ChoroplethMap) ID() string {
	return m.id
}

// Attr returns the selected attribute.
func (m *ChoroplethMap) Attr() healthdata.Attr {
	return m.attr
}

// Dataset returns the dataset the map currently draws.
func (m *ChoroplethMap) Dataset() *healthdata.Dataset {
	return m.data
}

// Update selects attribute a and recolors the map. If data is not
// nil, it replaces the map's dataset.
func (m *ChoroplethMap) Update(a healthdata.Attr, data *healthdata.Dataset) {
	m.attr = a
	if data != nil && data != m.data {
		m.data = data
		m.project()
	}

	lo, hi, ok := m.data.Extent(a)
	m.hasDomain = ok
	if ok {
		m.color.lo, m.color.hi = lo, hi
	}
	// Otherwise the color domain keeps its previous value; every
	// county is drawn as no data anyway.

	m.fills = make([]string, len(m.data.Counties))
	for i, c := range m.data.Counties {
		if v := c.Value(a); ok && v.NonNegative() {
			m.fills[i] = cssColor(m.color.Map(v.X))
		}
	}

	m.legend = MapLegend{}
	if a != healthdata.None {
		m.legend.Title = a.Title()
	}
	if ok {
		m.legend.Stops = []LegendStop{
			{0, m.cfg.LowColor, lo},
			{100, m.cfg.HighColor, hi},
		}
	}
}

// project computes county outlines for the current dataset. Outlines
// do not depend on the selection.
func (m *ChoroplethMap) project() {
	m.paths = make([]string, len(m.data.Counties))
	for i, c := range m.data.Counties {
		m.paths[i] = m.proj.Path(c.Geometry)
	}
	m.borders = m.proj.Path(m.data.Borders)
}

// Domain returns the color scale's domain. ok is false if the
// selected attribute has no usable values.
func (m *ChoroplethMap) Domain() (lo, hi float64, ok bool) {
	return m.color.lo, m.color.hi, m.hasDomain
}

// Fill returns the fill of county i, or "" if it has no data.
func (m *ChoroplethMap) Fill(i int) string {
	return m.fills[i]
}

// Legend returns the current legend.
func (m *ChoroplethMap) Legend() MapLegend {
	return m.legend
}

// Tooltip returns the hover text for the county with identifier id.
// ok is false if there is no such county or it has no value for the
// selected attribute, in which case no tooltip is shown.
func (m *ChoroplethMap) Tooltip(id string) (t Tooltip, ok bool) {
	c := m.data.Lookup(id)
	if c == nil || !c.Value(m.attr).NonNegative() {
		return Tooltip{}, false
	}
	return Tooltip{Title: c.Name, Value: c.Display(m.attr)}, true
}

func (m *ChoroplethMap) noDataFill() string {
	return "url(#" + m.id + "-lightstripe)"
}

// Render writes the map as an SVG document.
func (m *ChoroplethMap) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	cfg := m.cfg
	canvas := svg.New(ew)
	canvas.Start(cfg.Width, cfg.Height, `class="center-container"`, attr("id", m.id+"-svg"))

	canvas.Def()
	canvas.Pattern(m.id+"-lightstripe", 0, 0, 5, 5, "user")
	canvas.Rect(0, 0, 5, 5, `fill="#ffffff"`)
	canvas.Path("M0,5L5,0", `stroke="#bbbbbb"`, `stroke-width="1"`)
	canvas.PatternEnd()
	var grad []svg.Offcolor
	for _, s := range m.legend.Stops {
		grad = append(grad, svg.Offcolor{Offset: uint8(s.Offset), Color: s.Color, Opacity: 1})
	}
	if grad != nil {
		canvas.LinearGradient(m.id+"-legend-gradient", 0, 0, 100, 0, grad)
	}
	canvas.DefEnd()

	canvas.Group(`class="center-container center-items us-state"`, attr("transform", translate(cfg.Margin.Left, cfg.Margin.Top)))
	for i, c := range m.data.Counties {
		if m.paths[i] == "" {
			continue
		}
		fill := m.fills[i]
		value := c.Display(m.attr)
		if fill == "" {
			fill = m.noDataFill()
			value = ""
		}
		canvas.Path(m.paths[i], `class="county"`, attr("fill", fill), attr("data-id", c.ID), attr("data-name", c.Name), attr("data-value", value))
	}
	if m.borders != "" {
		canvas.Path(m.borders, `class="state-borders"`, `fill="none"`, attr("stroke", cfg.BorderColor), `stroke-linejoin="round"`)
	}
	m.renderLegend(canvas)
	canvas.Gend()
	canvas.End()
	return ew.err
}

func (m *ChoroplethMap) renderLegend(canvas *svg.SVG) {
	cfg := m.cfg
	h := cfg.Height - cfg.Margin.Top - cfg.Margin.Bottom
	canvas.Group(`class="legend"`, attr("transform", translate(cfg.LegendLeft, h-cfg.LegendBottom)))
	fill := "url(#" + m.id + "-legend-gradient)"
	if m.legend.Stops == nil {
		fill = m.noDataFill()
	}
	canvas.Rect(0, 0, cfg.LegendWidth, cfg.LegendHeight, attr("fill", fill))
	canvas.Text(0, -10, m.legend.Title, `class="legend-title"`, `dy=".35em"`, `font-size="12"`)
	for _, s := range m.legend.Stops {
		x := cfg.LegendWidth * s.Offset / 100
		anchor := "start"
		if s.Offset == 100 {
			anchor = "end"
		}
		canvas.Text(x, cfg.LegendHeight+14, strconv.FormatFloat(s.Value, 'g', 6, 64), `class="legend-label"`, attr("text-anchor", anchor), `font-size="10"`)
	}
	canvas.Gend()
}

// errWriter records the first write error so rendering code can
// write unconditionally.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}
