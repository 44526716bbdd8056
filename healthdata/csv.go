// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package healthdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const (
	keyColumn  = "cnty_fips"
	nameColumn = "display_name"
)

// A Row is one county of the health dataset, with every field already
// coerced to its attribute type.
type Row struct {
	Key    string
	Name   string
	Values Values
}

// Values holds one Value per attribute, indexed by Attr.
type Values [numAttrs]Value

// Get returns the value of attribute a.
func (vs *Values) Get(a Attr) Value {
	if !a.valid() {
		return Value{}
	}
	return vs[a]
}

// ReadCSV reads the national health dataset. Columns are found by
// header name; unknown columns are ignored and missing attribute
// columns leave that attribute missing on every row. The key column
// cnty_fips is required.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read health data header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := col[h]; !dup {
			col[h] = i
		}
	}
	keyIdx, ok := col[keyColumn]
	if !ok {
		return nil, fmt.Errorf("read health data: no %s column", keyColumn)
	}
	field := func(rec []string, name string) (string, bool) {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return "", false
		}
		return rec[i], true
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read health data: %w", err)
		}
		if keyIdx >= len(rec) {
			return nil, fmt.Errorf("read health data: line %d has no %s field", line, keyColumn)
		}
		row := Row{Key: NormalizeFIPS(rec[keyIdx])}
		row.Name, _ = field(rec, nameColumn)
		for _, a := range Attrs() {
			s, ok := field(rec, a.Column())
			if !ok {
				continue
			}
			if a == UrbanRuralStatus {
				row.Values[a] = ParseUrbanRural(s)
			} else {
				row.Values[a] = ParseValue(s)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// NormalizeFIPS returns key with surrounding space removed and, if it
// is entirely digits and shorter than five characters, left-padded
// with zeros so numeric and zero-padded county codes compare equal.
func NormalizeFIPS(key string) string {
	key = strings.TrimSpace(key)
	if key == "" || len(key) >= 5 {
		return key
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return key
		}
	}
	return strings.Repeat("0", 5-len(key)) + key
}
