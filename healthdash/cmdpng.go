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

var cmdPNGFlags = flag.NewFlagSet(os.Args[0]+" png", flag.ExitOnError)

var pngFlags struct {
	out           string
	width, height int
	attr          healthdata.Attr
}

func init() {
	f := cmdPNGFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s png [flags] -o file.png\n", os.Args[0])
		f.PrintDefaults()
	}
	addInputFlags(f)
	f.StringVar(&pngFlags.out, "o", "", "write PNG to `file`")
	f.IntVar(&pngFlags.width, "w", 0, "scale to `width` pixels")
	f.IntVar(&pngFlags.height, "h", 0, "scale to `height` pixels (default keeps the aspect ratio)")
	f.TextVar(&pngFlags.attr, "attr", dashboard.DefaultMapAttr, "map `attribute`")
	registerSubcommand("png", "[flags] -o file.png - rasterize the first map", cmdPNG, f)
}

func cmdPNG() {
	if cmdPNGFlags.NArg() != 0 || pngFlags.out == "" {
		cmdPNGFlags.Usage()
		os.Exit(2)
	}
	d := loadDashboard()
	if _, err := d.Select(dashboard.Dropdown1, pngFlags.attr); err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(pngFlags.out)
	if err != nil {
		log.Fatal(err)
	}
	if err := dashboard.WritePNG(f, d.Map(dashboard.Map1), pngFlags.width, pngFlags.height); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}
