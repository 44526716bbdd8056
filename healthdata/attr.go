// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package healthdata

import (
	"fmt"
	"strings"
	"unicode"
)

// An Attr names one health attribute of a county.
//
// The zero Attr is None, which means "nothing selected yet".
type Attr int

const (
	None Attr = iota
	PovertyPercentage
	MedianHouseholdIncome
	EducationLessThanHighSchoolPercent
	AirQuality
	ParkAccess
	PercentInactive
	PercentSmoking
	ElderlyPercentage
	NumberOfHospitals
	NumberOfPrimaryCarePhysicians
	PercentNoHealthInsurance
	PercentHighBloodPressure
	PercentCoronaryHeartDisease
	PercentStroke
	PercentHighCholesterol
	UrbanRuralStatus

	numAttrs
)

type attrInfo struct {
	key    string // selection key, as sent by the page's dropdowns
	column string // CSV column
	unit   string
}

var attrs = [numAttrs]attrInfo{
	None:                               {"defaultValue", "", ""},
	PovertyPercentage:                  {"povertyPercentage", "poverty_perc", "%"},
	MedianHouseholdIncome:              {"medianHouseholdIncome", "median_household_income", "$"},
	EducationLessThanHighSchoolPercent: {"educationLessThanHighSchoolPercent", "education_less_than_high_school_percent", "%"},
	AirQuality:                         {"airQuality", "air_quality", "µg/m³"},
	ParkAccess:                         {"parkAccess", "park_access", "%"},
	PercentInactive:                    {"percentInactive", "percent_inactive", "%"},
	PercentSmoking:                     {"percentSmoking", "percent_smoking", "%"},
	ElderlyPercentage:                  {"elderlyPercentage", "elderly_percentage", "%"},
	NumberOfHospitals:                  {"numberOfHospitals", "number_of_hospitals", ""},
	NumberOfPrimaryCarePhysicians:      {"numberOfPrimaryCarePhysicians", "number_of_primary_care_physicians", ""},
	PercentNoHealthInsurance:           {"percentNoHealthInsurance", "percent_no_heath_insurance", "%"},
	PercentHighBloodPressure:           {"percentHighBloodPressure", "percent_high_blood_pressure", "%"},
	PercentCoronaryHeartDisease:        {"percentCoronaryHeartDisease", "percent_coronary_heart_disease", "%"},
	PercentStroke:                      {"percentStroke", "percent_stroke", "%"},
	PercentHighCholesterol:             {"percentHighCholesterol", "percent_high_cholesterol", "%"},
	UrbanRuralStatus:                   {"urbanRuralStatus", "urban_rural_status", ""},
}

// Attrs returns every selectable attribute, in dropdown order.
func Attrs() []Attr {
	out := make([]Attr, 0, numAttrs-1)
	for a := None + 1; a < numAttrs; a++ {
		out = append(out, a)
	}
	return out
}

// ParseAttr returns the attribute named by key, which may be either
// the selection key ("povertyPercentage") or the CSV column
// ("poverty_perc"). The "no selection" key "defaultValue" and the
// empty string parse as None.
func ParseAttr(key string) (Attr, error) {
	if key == "" {
		return None, nil
	}
	for a, info := range attrs {
		if key == info.key || (info.column != "" && key == info.column) {
			return Attr(a), nil
		}
	}
	return None, fmt.Errorf("unknown attribute %q", key)
}

func (a Attr) valid() bool {
	return a > None && a < numAttrs
}

// Key returns the selection key of a.
func (a Attr) Key() string {
	if a < None || a >= numAttrs {
		return fmt.Sprintf("Attr(%d)", int(a))
	}
	return attrs[a].key
}

func (a Attr) String() string {
	return a.Key()
}

// Column returns the CSV column a is read from.
func (a Attr) Column() string {
	if !a.valid() {
		return ""
	}
	return attrs[a].column
}

// Unit returns the unit suffix of a, or "" if it has none.
func (a Attr) Unit() string {
	if !a.valid() {
		return ""
	}
	return attrs[a].unit
}

// Label returns a human-readable name for a, used for axis titles.
func (a Attr) Label() string {
	if a == UrbanRuralStatus {
		return "Urban/Rural Status"
	}
	return Humanize(a.Key())
}

// Title returns a's label followed by its unit in parentheses, used
// for map legends.
func (a Attr) Title() string {
	if u := a.Unit(); u != "" {
		return a.Label() + " (" + u + ")"
	}
	return a.Label()
}

// MarshalText implements encoding.TextMarshaler.
func (a Attr) MarshalText() ([]byte, error) {
	return []byte(a.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Attr) UnmarshalText(text []byte) error {
	v, err := ParseAttr(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Humanize turns a camelCase key into words: a space is inserted
// before every upper-case letter and the first letter of each word
// is capitalized.
func Humanize(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}
