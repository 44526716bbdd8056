// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
)

var cmdTableFlags = flag.NewFlagSet(os.Args[0]+" table", flag.ExitOnError)

var tableOut string

func init() {
	f := cmdTableFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s table [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	addInputFlags(f)
	f.StringVar(&tableOut, "o", "", "write table to `file` instead of stdout")
	registerSubcommand("table", "[flags] - print the joined dataset", cmdTable, f)
}

func cmdTable() {
	if cmdTableFlags.NArg() != 0 {
		cmdTableFlags.Usage()
		os.Exit(2)
	}
	d := loadDashboard()

	f := os.Stdout
	if tableOut != "" {
		var err error
		f, err = os.Create(tableOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	if err := table.Fprint(f, d.Dataset().Table()); err != nil {
		log.Fatal(err)
	}
}
