// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Healthdash draws the county health dashboard.
//
// Usage:
//
//	healthdash <subcommand> [flags]
//
// Every subcommand reads a county topology (-topo, TopoJSON or
// GeoJSON) and the national health CSV (-csv), joins them, and then
// either writes the dashboard's views as SVG files (render), serves
// the interactive dashboard over HTTP (serve), prints the joined data
// as a table (table), rasterizes a map (png), or reads dashboard
// commands from standard input (repl).
//
// Layout settings may be overridden with a YAML file given by
// -config. Settings absent from the file keep their defaults.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
)

type subcommand struct {
	name, desc string
	cmd        func()
	flags      *flag.FlagSet
}

var subcommands = make(map[string]*subcommand)

func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	if subcommands[name] != nil {
		panic("duplicate subcommand " + name)
	}
	subcommands[name] = &subcommand{name, desc, cmd, flags}
}

func main() {
	log.SetPrefix("healthdash: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags]\n\nSubcommands:\n", os.Args[0])
		var names []string
		for name := range subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
		}
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	sub := subcommands[flag.Arg(0)]
	if sub == nil {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	sub.flags.Parse(flag.Args()[1:])
	sub.cmd()
}
