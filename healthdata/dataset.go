// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package healthdata joins U.S. county geography with the national
// county health dataset.
//
// Every county carries one optional Value per Attr. Values are
// parsed once, when the dataset is read, so consumers never re-check
// for strings or NaN. A joined Dataset is never modified; loading new
// data produces a new Dataset.
package healthdata

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/paulmach/orb"

	"github.com/countyhealth/healthviz/internal/topo"
)

// A County is one region of the map together with its health
// attributes.
type County struct {
	ID       string
	Name     string
	Geometry orb.Geometry

	matched bool
	values  Values
}

// Value returns the value of attribute a for c.
func (c *County) Value(a Attr) Value {
	return c.values.Get(a)
}

// Matched reports whether c was joined to a row of the health
// dataset. Unmatched counties have geometry only.
func (c *County) Matched() bool {
	return c.matched
}

// Display returns the value of a for c as it is shown to a user:
// urban/rural codes are shown as their labels and missing values as
// "".
func (c *County) Display(a Attr) string {
	v := c.Value(a)
	if !v.Valid() {
		return ""
	}
	if a == UrbanRuralStatus {
		return UrbanRuralLabel(v.X)
	}
	return v.String()
}

// State returns the state abbreviation of c, derived from its name.
func (c *County) State() string {
	return StateAbbrev(c.Name)
}

// A Dataset is the full set of counties plus the state border lines
// drawn over them.
type Dataset struct {
	Counties []*County
	Borders  orb.MultiLineString

	byID map[string]int
}

// Join attaches to each region the row whose key equals the region's
// identifier. Regions without a matching row keep their geometry
// only. When several rows share a key, the first wins.
//
// Join does not modify regions or rows.
func Join(regions []topo.Feature, borders orb.MultiLineString, rows []Row) *Dataset {
	index := make(map[string]int, len(rows))
	for i := range rows {
		if _, dup := index[rows[i].Key]; !dup {
			index[rows[i].Key] = i
		}
	}

	d := &Dataset{
		Counties: make([]*County, len(regions)),
		Borders:  borders,
		byID:     make(map[string]int, len(regions)),
	}
	for i, f := range regions {
		c := &County{ID: f.ID, Name: f.Name, Geometry: f.Geometry}
		if ri, ok := index[NormalizeFIPS(f.ID)]; ok {
			c.matched = true
			c.values = rows[ri].Values
			c.Name = rows[ri].Name
		}
		d.Counties[i] = c
		if _, dup := d.byID[f.ID]; !dup {
			d.byID[f.ID] = i
		}
	}
	return d
}

// Lookup returns the county with identifier id, or nil.
func (d *Dataset) Lookup(id string) *County {
	if i, ok := d.byID[id]; ok {
		return d.Counties[i]
	}
	return nil
}

// Values returns the non-negative values of a across all counties,
// in county order.
func (d *Dataset) Values(a Attr) []float64 {
	var xs []float64
	for _, c := range d.Counties {
		if v := c.Value(a); v.NonNegative() {
			xs = append(xs, v.X)
		}
	}
	return xs
}

// Extent returns the minimum and maximum of Values(a). ok is false if
// no county has a usable value.
func (d *Dataset) Extent(a Attr) (lo, hi float64, ok bool) {
	xs := d.Values(a)
	if len(xs) == 0 {
		return 0, 0, false
	}
	lo, hi = stats.Bounds(xs)
	return lo, hi, true
}
