// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/countyhealth/healthviz/dashboard"
	"github.com/countyhealth/healthviz/healthdata"
	"github.com/countyhealth/healthviz/internal/topo"
)

// Input flags shared by every subcommand.
var (
	topoPath   string
	csvPath    string
	configPath string
)

func addInputFlags(f *flag.FlagSet) {
	f.StringVar(&topoPath, "topo", "data/counties-10m.json", "county topology `file` (TopoJSON or GeoJSON)")
	f.StringVar(&csvPath, "csv", "data/national_health_data.csv", "health data `file`")
	f.StringVar(&configPath, "config", "", "read layout settings from YAML `file`")
}

// loadConfig returns the layout settings, exiting on error.
func loadConfig() dashboard.Config {
	if configPath == "" {
		return dashboard.DefaultConfig()
	}
	cfg, err := dashboard.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// loadDashboard reads the inputs named by the flags and builds a
// dashboard. Failing to load either input is fatal.
func loadDashboard() *dashboard.Dashboard {
	cfg := loadConfig()
	ds, err := loadDataset(context.Background(), cfg.Topology, topoPath, csvPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %d counties from %s", len(ds.Counties), topoPath)
	return dashboard.New(cfg, ds)
}

// loadDataset reads the topology and the health CSV concurrently and
// joins them.
func loadDataset(ctx context.Context, tc dashboard.TopologyConfig, topoPath, csvPath string) (*healthdata.Dataset, error) {
	var layers *topo.Layers
	var rows []healthdata.Row
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := os.Open(topoPath)
		if err != nil {
			return err
		}
		defer f.Close()
		layers, err = topo.Load(f, tc.Regions, tc.Borders)
		if err != nil {
			return fmt.Errorf("%s: %w", topoPath, err)
		}
		return nil
	})
	g.Go(func() error {
		f, err := os.Open(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		rows, err = healthdata.ReadCSV(f)
		if err != nil {
			return fmt.Errorf("%s: %w", csvPath, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return healthdata.Join(layers.Regions, layers.Borders, rows), nil
}
