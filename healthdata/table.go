// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package healthdata

import (
	"math"

	"github.com/aclements/go-gg/table"
)

// Table returns d as a table with one row per county. Missing values
// are NaN. Urban/rural status is given as its label.
func (d *Dataset) Table() *table.Table {
	n := len(d.Counties)
	ids, names, states := make([]string, n), make([]string, n), make([]string, n)
	for i, c := range d.Counties {
		ids[i], names[i], states[i] = c.ID, c.Name, c.State()
	}
	tab := new(table.Builder).
		Add("id", ids).
		Add("name", names).
		Add("state", states)

	nan := math.NaN()
	for _, a := range Attrs() {
		if a == UrbanRuralStatus {
			labels := make([]string, n)
			for i, c := range d.Counties {
				labels[i] = c.Display(a)
			}
			tab.Add(a.Key(), labels)
			continue
		}
		col := make([]float64, n)
		for i, c := range d.Counties {
			if v := c.Value(a); v.Valid() {
				col[i] = v.X
			} else {
				col[i] = nan
			}
		}
		tab.Add(a.Key(), col)
	}
	return tab.Done()
}
