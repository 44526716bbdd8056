// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Margin is the space between a view's outer edge and its plot area.
type Margin struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

// MapConfig lays out a choropleth map.
type MapConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Margin Margin `yaml:"margin"`

	// The legend's lower-left corner is LegendLeft from the left
	// edge and LegendBottom above the bottom of the plot area.
	LegendLeft   int `yaml:"legendLeft"`
	LegendBottom int `yaml:"legendBottom"`
	LegendWidth  int `yaml:"legendWidth"`
	LegendHeight int `yaml:"legendHeight"`

	// LowColor and HighColor are the ends of the color ramp.
	LowColor  string `yaml:"lowColor"`
	HighColor string `yaml:"highColor"`

	BorderColor string `yaml:"borderColor"`
}

// HistogramConfig lays out the histogram. Width and Height are the
// plot area; the margins are added around it.
type HistogramConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Margin Margin `yaml:"margin"`

	Bins int `yaml:"bins"`

	// The x domain extends past the largest value by Buffer times
	// that value, but at least MinBuffer.
	Buffer    float64 `yaml:"buffer"`
	MinBuffer float64 `yaml:"minBuffer"`

	BarColor string `yaml:"barColor"`
}

// ScatterConfig lays out the scatter plot and its state legend.
type ScatterConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Margin Margin `yaml:"margin"`

	// The X and Y domains extend past the largest value by these
	// fractions of it. They differ on purpose.
	XBuffer float64 `yaml:"xBuffer"`
	YBuffer float64 `yaml:"yBuffer"`

	Radius int `yaml:"radius"`

	LegendWidth int `yaml:"legendWidth"`
	LegendRow   int `yaml:"legendRow"`
}

// TopologyConfig names the objects of the input topology.
type TopologyConfig struct {
	Regions string `yaml:"regions"`
	Borders string `yaml:"borders"`
}

// Config is the layout of the whole dashboard.
type Config struct {
	Map       MapConfig       `yaml:"map"`
	Histogram HistogramConfig `yaml:"histogram"`
	Scatter   ScatterConfig   `yaml:"scatter"`
	Topology  TopologyConfig  `yaml:"topology"`
}

// DefaultConfig returns the standard dashboard layout.
func DefaultConfig() Config {
	return Config{
		Map: MapConfig{
			Width:        1000,
			Height:       500,
			Margin:       Margin{10, 10, 10, 10},
			LegendLeft:   825,
			LegendBottom: 200,
			LegendWidth:  150,
			LegendHeight: 12,
			LowColor:     "#cfe2f2",
			HighColor:    "#0d306b",
			BorderColor:  "#ffffff",
		},
		Histogram: HistogramConfig{
			Width:     400,
			Height:    250,
			Margin:    Margin{20, 20, 65, 70},
			Bins:      10,
			Buffer:    0.1,
			MinBuffer: 1,
			BarColor:  "#69b3a2",
		},
		Scatter: ScatterConfig{
			Width:       800,
			Height:      500,
			Margin:      Margin{20, 20, 60, 100},
			XBuffer:     0.1,
			YBuffer:     0.2,
			Radius:      3,
			LegendWidth: 200,
			LegendRow:   16,
		},
		Topology: TopologyConfig{
			Regions: "counties",
			Borders: "states",
		},
	}
}

// LoadConfig reads a YAML configuration file. Settings absent from
// the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.check(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) check() error {
	for _, col := range []string{c.Map.LowColor, c.Map.HighColor, c.Map.BorderColor, c.Histogram.BarColor} {
		if _, err := parseHex(col); err != nil {
			return err
		}
	}
	switch {
	case c.Map.Width <= 0 || c.Map.Height <= 0:
		return fmt.Errorf("map size %dx%d must be positive", c.Map.Width, c.Map.Height)
	case c.Histogram.Width <= 0 || c.Histogram.Height <= 0:
		return fmt.Errorf("histogram size %dx%d must be positive", c.Histogram.Width, c.Histogram.Height)
	case c.Scatter.Width <= c.Scatter.Margin.Left+c.Scatter.Margin.Right || c.Scatter.Height <= c.Scatter.Margin.Top+c.Scatter.Margin.Bottom:
		return fmt.Errorf("scatter size %dx%d leaves no plot area", c.Scatter.Width, c.Scatter.Height)
	case c.Histogram.Bins < 1:
		return fmt.Errorf("histogram needs at least one bin, got %d", c.Histogram.Bins)
	}
	return nil
}
