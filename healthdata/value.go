// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package healthdata

import (
	"math"
	"strconv"
	"strings"
)

// A Value is an optional number. The zero Value is missing.
type Value struct {
	X  float64
	OK bool
}

// Num returns a present Value holding x.
func Num(x float64) Value {
	return Value{x, true}
}

// ParseValue parses a numeric CSV field. Empty or non-numeric fields
// yield a missing Value rather than an error.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}
	}
	return Value{x, true}
}

// Valid reports whether v is present and finite.
func (v Value) Valid() bool {
	return v.OK && !math.IsNaN(v.X) && !math.IsInf(v.X, 0)
}

// NonNegative reports whether v is valid and not negative. The
// source data uses negative numbers to mark missing measurements.
func (v Value) NonNegative() bool {
	return v.Valid() && v.X >= 0
}

func (v Value) String() string {
	if !v.OK {
		return "NA"
	}
	return strconv.FormatFloat(v.X, 'g', -1, 64)
}

// Urban/rural status codes.
const (
	Rural     = 1
	SmallCity = 2
	Suburban  = 3
	Urban     = 4
)

var urbanRuralLabels = [...]string{
	Rural:     "Rural",
	SmallCity: "Small City",
	Suburban:  "Suburban",
	Urban:     "Urban",
}

// UrbanRuralLabel returns the label of urban/rural code x, or "" if x
// is not one of the four codes.
func UrbanRuralLabel(x float64) string {
	if x != math.Trunc(x) || x < Rural || x > Urban {
		return ""
	}
	return urbanRuralLabels[int(x)]
}

// ParseUrbanRural returns the code for an urban/rural label. Unknown
// labels yield a missing Value.
func ParseUrbanRural(s string) Value {
	s = strings.TrimSpace(s)
	for code, label := range urbanRuralLabels {
		if label != "" && label == s {
			return Num(float64(code))
		}
	}
	return Value{}
}
