// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/countyhealth/healthviz/healthdata"
)

func renderAll(t *testing.T, d *Dashboard) {
	t.Helper()
	for _, v := range Views {
		if _, err := d.SVG(v); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSelectIsolation(t *testing.T) {
	for _, test := range []struct {
		ctl  Control
		attr healthdata.Attr
		want []View
	}{
		{Dropdown1, healthdata.PercentSmoking, []View{Map1}},
		{Dropdown2, healthdata.UrbanRuralStatus, []View{Map2}},
		{Dropdown3, healthdata.PovertyPercentage, []View{HistogramView}},
		{Dropdown3, healthdata.None, nil},
		{XAttribute, healthdata.PovertyPercentage, []View{ScatterView, ScatterLegend}},
		{YAttribute, healthdata.MedianHouseholdIncome, []View{ScatterView, ScatterLegend}},
	} {
		d := New(DefaultConfig(), testDataset(t))
		renderAll(t, d)
		before := d.Selection()
		got, err := d.Select(test.ctl, test.attr)
		if err != nil {
			t.Fatalf("Select(%s, %v): %v", test.ctl, test.attr, err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Select(%s, %v) views mismatch (-want +got):\n%s", test.ctl, test.attr, diff)
		}
		renderAll(t, d)
		for _, v := range Views {
			want := 1
			for _, w := range test.want {
				if w == v {
					want = 2
				}
			}
			if d.renders[v] != want {
				t.Errorf("Select(%s, %v): %s rendered %d times, want %d", test.ctl, test.attr, v, d.renders[v], want)
			}
		}

		after := d.Selection()
		switch test.ctl {
		case Dropdown1:
			before.Map1 = test.attr
		case Dropdown2:
			before.Map2 = test.attr
		case Dropdown3:
			if test.attr != healthdata.None {
				before.Histogram = test.attr
			}
		case XAttribute:
			before.X = test.attr
		case YAttribute:
			before.Y = test.attr
		}
		if after != before {
			t.Errorf("Select(%s, %v): selection %+v, want %+v", test.ctl, test.attr, after, before)
		}
	}
}

func TestSelectUnknownControl(t *testing.T) {
	d := New(DefaultConfig(), testDataset(t))
	if _, err := d.Select("dropdown9", healthdata.PercentStroke); err == nil {
		t.Errorf("Select with unknown control succeeded")
	}
}

func TestInitialSelection(t *testing.T) {
	d := New(DefaultConfig(), testDataset(t))
	want := Selection{Map1: healthdata.PovertyPercentage, Map2: healthdata.PovertyPercentage}
	if got := d.Selection(); got != want {
		t.Errorf("Selection() = %+v, want %+v", got, want)
	}
	if d.Histogram().Attr() != healthdata.None {
		t.Errorf("histogram not idle")
	}
}

func TestScatterAxesIndependent(t *testing.T) {
	d := New(DefaultConfig(), testDataset(t))
	d.Select(XAttribute, healthdata.PovertyPercentage)
	d.Select(YAttribute, healthdata.MedianHouseholdIncome)
	d.Select(XAttribute, healthdata.PercentSmoking)
	x, y := d.Scatter().Attrs()
	if x != healthdata.PercentSmoking || y != healthdata.MedianHouseholdIncome {
		t.Errorf("scatter attributes %v, %v", x, y)
	}
}

func TestBrushInvalidatesScatter(t *testing.T) {
	d := New(DefaultConfig(), testDataset(t))
	d.Select(XAttribute, healthdata.PovertyPercentage)
	d.Select(YAttribute, healthdata.MedianHouseholdIncome)
	renderAll(t, d)
	if d.Brush(Rect{5, 5, 5, 5}) {
		t.Errorf("empty brush reported a change")
	}
	if !d.Brush(Rect{0, 0, 100, 100}) {
		t.Errorf("brush reported no change")
	}
	renderAll(t, d)
	if d.renders[ScatterView] != 2 || d.renders[ScatterLegend] != 1 {
		t.Errorf("renders after brush: %v", d.renders)
	}
	if sel := d.Selection(); sel.X != healthdata.PovertyPercentage || sel.Y != healthdata.MedianHouseholdIncome {
		t.Errorf("brush changed selection to %+v", sel)
	}
}

func TestReplace(t *testing.T) {
	d := New(DefaultConfig(), testDataset(t))
	d.Select(Dropdown3, healthdata.PovertyPercentage)
	renderAll(t, d)
	ds2 := testDatasetCSV(t, "cnty_fips,display_name,poverty_perc\n01001,Autauga County (AL),30\n")
	d.Replace(ds2)
	if d.Dataset() != ds2 || d.Map(Map1).Dataset() != ds2 {
		t.Fatalf("dataset not replaced")
	}
	renderAll(t, d)
	for _, v := range Views {
		if d.renders[v] != 2 {
			t.Errorf("%s rendered %d times after Replace, want 2", v, d.renders[v])
		}
	}
	total := 0
	for _, b := range d.Histogram().Bins() {
		total += b.Count
	}
	if total != 1 {
		t.Errorf("histogram counts %d values after Replace, want 1", total)
	}
}

func TestWriteFiles(t *testing.T) {
	d := New(DefaultConfig(), testDataset(t))
	dir := filepath.Join(t.TempDir(), "out")
	if err := d.WriteFiles(dir); err != nil {
		t.Fatal(err)
	}
	for _, v := range Views {
		b, err := os.ReadFile(filepath.Join(dir, string(v)+".svg"))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(b, []byte("<svg")) {
			t.Errorf("%s.svg is not an SVG document", v)
		}
	}
}

func TestWritePNG(t *testing.T) {
	cfg := DefaultConfig()
	m := NewChoroplethMap("map1", cfg.Map, testDataset(t))
	for _, test := range []struct {
		width, height int
		wantW, wantH  int
	}{
		{0, 0, cfg.Map.Width, cfg.Map.Height},
		{200, 0, 200, 100},
		{200, 50, 200, 50},
		{0, 50, 100, 50},
	} {
		var buf bytes.Buffer
		if err := WritePNG(&buf, m, test.width, test.height); err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != test.wantW || b.Dy() != test.wantH {
			t.Errorf("WritePNG(%d, %d) size %dx%d, want %dx%d", test.width, test.height, b.Dx(), b.Dy(), test.wantW, test.wantH)
		}
	}
}

func TestRasterFills(t *testing.T) {
	ds := testDataset(t)
	m := NewChoroplethMap("map1", DefaultConfig().Map, ds)
	img := m.Raster()
	for _, test := range []struct {
		id     string
		noData bool
	}{
		{"01001", false},
		{"01003", true},
		{"13001", false},
		{"99999", true},
	} {
		i := countyIndex(t, ds, test.id)
		want := noDataColor
		if !test.noData {
			want = mustHex(m.Fill(i))
		}
		// Sample the middle of the county's one-degree square.
		p := m.proj.Point(ds.Counties[i].Geometry.Bound().Center())
		x := int(p[0]) + m.cfg.Margin.Left
		y := int(p[1]) + m.cfg.Margin.Top
		if got := img.RGBAAt(x, y); got != want {
			t.Errorf("%s: pixel (%d, %d) = %v, want %v", test.id, x, y, got, want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dash.yaml")
	const yml = `
histogram:
  bins: 20
scatter:
  yBuffer: 0.3
map:
  highColor: "#000"
`
	if err := os.WriteFile(path, []byte(yml), 0666); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Histogram.Bins = 20
	want.Scatter.YBuffer = 0.3
	want.Map.HighColor = "#000"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	for name, yml := range map[string]string{
		"color": "map:\n  lowColor: blue\n",
		"bins":  "histogram:\n  bins: 0\n",
		"size":  "scatter:\n  width: 50\n",
		"yaml":  "map: [\n",
	} {
		path := filepath.Join(dir, name+".yaml")
		if err := os.WriteFile(path, []byte(yml), 0666); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: LoadConfig succeeded", name)
		} else if !strings.Contains(err.Error(), path) {
			t.Errorf("%s: error %q does not name the file", name, err)
		}
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("LoadConfig of missing file succeeded")
	}
}
