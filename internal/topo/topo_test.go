// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
)

// Two unit squares sharing the edge x=1.
const twoSquares = `{
  "type": "Topology",
  "objects": {
    "squares": {
      "type": "GeometryCollection",
      "geometries": [
        {"type": "Polygon", "id": "01001", "properties": {"name": "A"}, "arcs": [[0, 1]]},
        {"type": "Polygon", "id": 1003, "arcs": [[2, -1]]}
      ]
    }
  },
  "arcs": [
    [[1, 0], [1, 1]],
    [[1, 1], [0, 1], [0, 0], [1, 0]],
    [[1, 0], [2, 0], [2, 1], [1, 1]]
  ]
}`

func mustDecode(t *testing.T, s string) *Topology {
	t.Helper()
	topo, err := Decode(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	return topo
}

func TestFeatures(t *testing.T) {
	topo := mustDecode(t, twoSquares)
	fs, err := topo.Features("squares")
	if err != nil {
		t.Fatal(err)
	}
	want := []Feature{
		{ID: "01001", Name: "A", Geometry: orb.Polygon{{{1, 0}, {1, 1}, {0, 1}, {0, 0}, {1, 0}}}},
		{ID: "1003", Geometry: orb.Polygon{{{1, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 0}}}},
	}
	if diff := cmp.Diff(want, fs); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestFeaturesMissingObject(t *testing.T) {
	topo := mustDecode(t, twoSquares)
	if _, err := topo.Features("states"); err == nil {
		t.Errorf("Features of missing object succeeded")
	}
}

func TestMesh(t *testing.T) {
	topo := mustDecode(t, twoSquares)

	interior, err := topo.Mesh("squares", Interior)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(orb.MultiLineString{{{1, 0}, {1, 1}}}, interior); diff != "" {
		t.Errorf("interior mesh mismatch (-want +got):\n%s", diff)
	}

	all, err := topo.Mesh("squares", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("full mesh has %d arcs, want 3", len(all))
	}
}

func TestQuantized(t *testing.T) {
	topo := mustDecode(t, `{
  "type": "Topology",
  "transform": {"scale": [0.5, 0.5], "translate": [10, 20]},
  "objects": {"l": {"type": "LineString", "id": "x", "arcs": [0]}},
  "arcs": [[[0, 0], [2, 0], [0, 2]]]
}`)
	fs, err := topo.Features("l")
	if err != nil {
		t.Fatal(err)
	}
	want := orb.LineString{{10, 20}, {11, 20}, {11, 21}}
	if len(fs) != 1 {
		t.Fatalf("got %d features, want 1", len(fs))
	}
	if diff := cmp.Diff(want, fs[0].Geometry); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, input := range []string{
		`{"type": "FeatureCollection", "features": []}`,
		`{"type": "Topology", "objects": {}, "arcs": [[[1]]]}`,
		`not json`,
	} {
		if _, err := Decode(strings.NewReader(input)); err == nil {
			t.Errorf("Decode(%q) succeeded", input)
		}
	}
}

func TestLoad(t *testing.T) {
	l, err := Load(strings.NewReader(twoSquares), "squares", "squares")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Regions) != 2 || len(l.Borders) != 1 {
		t.Errorf("got %d regions, %d borders; want 2, 1", len(l.Regions), len(l.Borders))
	}

	l, err = Load(strings.NewReader(twoSquares), "squares", "nation")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Borders) != 0 {
		t.Errorf("missing border object produced %d borders", len(l.Borders))
	}

	gj := `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "id": "06001", "properties": {"name": "Alameda"},
   "geometry": {"type": "Point", "coordinates": [-122, 37.6]}}
]}`
	l, err = Load(strings.NewReader(gj), "counties", "states")
	if err != nil {
		t.Fatal(err)
	}
	want := []Feature{{ID: "06001", Name: "Alameda", Geometry: orb.Point{-122, 37.6}}}
	if diff := cmp.Diff(want, l.Regions); diff != "" {
		t.Errorf("geojson regions mismatch (-want +got):\n%s", diff)
	}
}
