// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package healthdata

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"

	"github.com/countyhealth/healthviz/internal/topo"
)

const sampleCSV = `cnty_fips,display_name,poverty_perc,median_household_income,percent_smoking,urban_rural_status,unused
01001,Autauga County (AL),12.5,50000,-1,Rural,x
1003,Baldwin County (AL),NaN,40000,20.1,Small City,x
01005,Barbour County (AL),8.0,,18,Exurban,x
01001,Duplicate (AL),99,1,1,Urban,x
`

func sampleRegions() []topo.Feature {
	sq := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
	return []topo.Feature{
		{ID: "01001", Name: "Autauga", Geometry: sq},
		{ID: "01003", Name: "Baldwin", Geometry: sq},
		{ID: "01005", Name: "Barbour", Geometry: sq},
		{ID: "02013", Name: "Aleutians East", Geometry: sq},
	}
}

func sampleDataset(t *testing.T) *Dataset {
	t.Helper()
	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	return Join(sampleRegions(), nil, rows)
}

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	var want Values
	want[PovertyPercentage] = Num(12.5)
	want[MedianHouseholdIncome] = Num(50000)
	want[PercentSmoking] = Num(-1)
	want[UrbanRuralStatus] = Num(Rural)
	if diff := cmp.Diff(Row{"01001", "Autauga County (AL)", want}, rows[0]); diff != "" {
		t.Errorf("row 0 mismatch (-want +got):\n%s", diff)
	}
	if rows[1].Key != "01003" {
		t.Errorf("row 1 key %q not normalized to 01003", rows[1].Key)
	}
	if v := rows[2].Values[UrbanRuralStatus]; v.OK {
		t.Errorf("unknown urban/rural label parsed as %v", v)
	}
	if v := rows[2].Values[MedianHouseholdIncome]; v.OK {
		t.Errorf("empty income parsed as %v", v)
	}
}

func TestReadCSVNoKey(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("display_name,poverty_perc\nA,1\n")); err == nil {
		t.Errorf("ReadCSV without cnty_fips succeeded")
	}
}

func TestJoin(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	regions := sampleRegions()
	d := Join(regions, nil, rows)

	if len(d.Counties) != len(regions) {
		t.Fatalf("got %d counties, want %d", len(d.Counties), len(regions))
	}
	// The first row with a key wins; rows are matched regardless of
	// zero padding.
	for i, ri := range []int{0, 1, 2} {
		c := d.Counties[i]
		if !c.Matched() {
			t.Errorf("county %s not matched", c.ID)
			continue
		}
		for _, a := range Attrs() {
			got, want := c.Value(a), rows[ri].Values[a]
			if got.OK != want.OK || (got.Valid() && got.X != want.X) {
				t.Errorf("county %s %v = %v, want %v", c.ID, a, got, want)
			}
		}
		if c.Name != rows[ri].Name {
			t.Errorf("county %s name %q, want %q", c.ID, c.Name, rows[ri].Name)
		}
	}

	// Unmatched regions keep geometry only.
	un := d.Lookup("02013")
	if un == nil || un.Matched() {
		t.Fatalf("Lookup(02013) = %+v, want unmatched county", un)
	}
	for _, a := range Attrs() {
		if v := un.Value(a); v.OK {
			t.Errorf("unmatched county has %v = %v", a, v)
		}
	}
	if un.Geometry == nil {
		t.Errorf("unmatched county lost its geometry")
	}

	// Join does not modify its inputs.
	if regions[0].Name != "Autauga" {
		t.Errorf("Join modified its regions")
	}
}

// The three-county scenario: A has 12.5, B has NaN, C has 8.0.
func TestExtentScenario(t *testing.T) {
	d := sampleDataset(t)
	got := d.Values(PovertyPercentage)
	if diff := cmp.Diff([]float64{12.5, 8.0}, got); diff != "" {
		t.Errorf("valid values mismatch (-want +got):\n%s", diff)
	}
	lo, hi, ok := d.Extent(PovertyPercentage)
	if !ok || lo != 8.0 || hi != 12.5 {
		t.Errorf("Extent = %v, %v, %v; want 8, 12.5, true", lo, hi, ok)
	}
	if d.Lookup("01003").Value(PovertyPercentage).Valid() {
		t.Errorf("county B has a valid poverty value")
	}

	// Negative sentinels are excluded.
	if diff := cmp.Diff([]float64{20.1, 18}, d.Values(PercentSmoking)); diff != "" {
		t.Errorf("smoking values mismatch (-want +got):\n%s", diff)
	}
}

func TestExtentEmpty(t *testing.T) {
	d := sampleDataset(t)
	if _, _, ok := d.Extent(AirQuality); ok {
		t.Errorf("Extent of absent attribute reported ok")
	}
	if _, _, ok := d.Extent(None); ok {
		t.Errorf("Extent of None reported ok")
	}
}

func TestExtentContainsValues(t *testing.T) {
	d := sampleDataset(t)
	for _, a := range Attrs() {
		lo, hi, ok := d.Extent(a)
		if !ok {
			continue
		}
		for _, x := range d.Values(a) {
			if x < lo || x > hi {
				t.Errorf("%v: value %v outside extent [%v, %v]", a, x, lo, hi)
			}
		}
	}
}

func TestDisplay(t *testing.T) {
	d := sampleDataset(t)
	a := d.Lookup("01001")
	if got := a.Display(UrbanRuralStatus); got != "Rural" {
		t.Errorf("Display(urbanRuralStatus) = %q, want Rural", got)
	}
	if got := a.Display(PovertyPercentage); got != "12.5" {
		t.Errorf("Display(povertyPercentage) = %q, want 12.5", got)
	}
	if got := a.State(); got != "AL" {
		t.Errorf("State() = %q, want AL", got)
	}
}

func TestTable(t *testing.T) {
	d := sampleDataset(t)
	tab := d.Table()
	if tab.Len() != 4 {
		t.Errorf("table has %d rows, want 4", tab.Len())
	}
	pov := tab.MustColumn("povertyPercentage").([]float64)
	if pov[0] != 12.5 || !math.IsNaN(pov[1]) || !math.IsNaN(pov[3]) {
		t.Errorf("povertyPercentage column = %v", pov)
	}
	ur := tab.MustColumn("urbanRuralStatus").([]string)
	if diff := cmp.Diff([]string{"Rural", "Small City", "", ""}, ur); diff != "" {
		t.Errorf("urbanRuralStatus column mismatch (-want +got):\n%s", diff)
	}
}
