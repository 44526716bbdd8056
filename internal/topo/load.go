// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Layers is the geographic input of the dashboard: the regions that
// carry data and the boundary lines drawn over them.
type Layers struct {
	Regions []Feature

	// Borders is drawn once and never analyzed. It is empty for
	// GeoJSON input.
	Borders orb.MultiLineString
}

// Load reads either a TopoJSON topology or a GeoJSON feature
// collection from r. For a topology, regions come from object
// regionsObj and borders are the interior mesh of object bordersObj;
// if bordersObj is "" or absent, there are no borders.
func Load(r io.Reader, regionsObj, bordersObj string) (*Layers, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var sniff struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &sniff); err != nil {
		return nil, fmt.Errorf("decode geography: %w", err)
	}
	switch sniff.Type {
	case "Topology":
		var raw rawTopology
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode topology: %w", err)
		}
		t, err := fromRaw(&raw)
		if err != nil {
			return nil, err
		}
		regions, err := t.Features(regionsObj)
		if err != nil {
			return nil, err
		}
		l := &Layers{Regions: regions}
		if _, ok := t.Objects[bordersObj]; ok {
			if l.Borders, err = t.Mesh(bordersObj, Interior); err != nil {
				return nil, err
			}
		}
		return l, nil
	case "FeatureCollection":
		regions, err := decodeGeoJSON(data)
		if err != nil {
			return nil, err
		}
		return &Layers{Regions: regions}, nil
	}
	return nil, fmt.Errorf("decode geography: unsupported type %q", sniff.Type)
}

// ReadGeoJSON reads a GeoJSON FeatureCollection from r.
func ReadGeoJSON(r io.Reader) ([]Feature, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decodeGeoJSON(data)
}

func decodeGeoJSON(data []byte) ([]Feature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}
	fs := make([]Feature, 0, len(fc.Features))
	for _, gf := range fc.Features {
		f := Feature{Geometry: gf.Geometry}
		switch id := gf.ID.(type) {
		case string:
			f.ID = id
		case float64:
			f.ID = strconv.FormatFloat(id, 'f', -1, 64)
		}
		if name, ok := gf.Properties["name"].(string); ok {
			f.Name = name
		}
		fs = append(fs, f)
	}
	return fs, nil
}
