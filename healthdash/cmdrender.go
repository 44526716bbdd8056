// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/countyhealth/healthviz/dashboard"
	"github.com/countyhealth/healthviz/healthdata"
)

var cmdRenderFlags = flag.NewFlagSet(os.Args[0]+" render", flag.ExitOnError)

var render struct {
	outDir string
	sel    dashboard.Selection
}

func init() {
	f := cmdRenderFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s render [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	addInputFlags(f)
	f.StringVar(&render.outDir, "o", ".", "write SVG files to `directory`")
	f.TextVar(&render.sel.Map1, "map1", dashboard.DefaultMapAttr, "`attribute` for the first map")
	f.TextVar(&render.sel.Map2, "map2", dashboard.DefaultMapAttr, "`attribute` for the second map")
	f.TextVar(&render.sel.Histogram, "hist", healthdata.None, "`attribute` for the histogram")
	f.TextVar(&render.sel.X, "x", healthdata.None, "scatter plot x `attribute`")
	f.TextVar(&render.sel.Y, "y", healthdata.None, "scatter plot y `attribute`")
	registerSubcommand("render", "[flags] - write each view as an SVG file", cmdRender, f)
}

func cmdRender() {
	if cmdRenderFlags.NArg() != 0 {
		cmdRenderFlags.Usage()
		os.Exit(2)
	}
	d := loadDashboard()
	if err := applySelection(d, render.sel); err != nil {
		log.Fatal(err)
	}
	if err := d.WriteFiles(render.outDir); err != nil {
		log.Fatal(err)
	}
}

// applySelection selects sel on every control of d.
func applySelection(d *dashboard.Dashboard, sel dashboard.Selection) error {
	for _, s := range []struct {
		ctl  dashboard.Control
		attr healthdata.Attr
	}{
		{dashboard.Dropdown1, sel.Map1},
		{dashboard.Dropdown2, sel.Map2},
		{dashboard.Dropdown3, sel.Histogram},
		{dashboard.XAttribute, sel.X},
		{dashboard.YAttribute, sel.Y},
	} {
		if _, err := d.Select(s.ctl, s.attr); err != nil {
			return err
		}
	}
	return nil
}
