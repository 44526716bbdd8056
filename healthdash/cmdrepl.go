// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/kballard/go-shellquote"
	"golang.org/x/term"

	"github.com/countyhealth/healthviz/dashboard"
	"github.com/countyhealth/healthviz/healthdata"
)

var cmdREPLFlags = flag.NewFlagSet(os.Args[0]+" repl", flag.ExitOnError)

func init() {
	f := cmdREPLFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s repl [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	addInputFlags(f)
	registerSubcommand("repl", "[flags] - drive the dashboard from standard input", cmdREPL, f)
}

func cmdREPL() {
	if cmdREPLFlags.NArg() != 0 {
		cmdREPLFlags.Usage()
		os.Exit(2)
	}
	r := &repl{d: loadDashboard(), w: os.Stdout}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		r.prompt = "> "
	}
	if err := r.run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}

var errQuit = errors.New("quit")

type repl struct {
	d      *dashboard.Dashboard
	w      io.Writer
	prompt string
}

const replHelp = `commands:
  select <control> <attribute>   change a control (dropdown1, dropdown2, dropdown3,
                                 x-attribute-dropdown, y-attribute-dropdown)
  brush <x0> <y0> <x1> <y1>      zoom the scatter plot to a pixel rectangle
  tooltip <map1|map2> <id>       show the hover text of a county
  selection                      print the current selection
  render <dir>                   write every view as SVG to dir
  attrs                          list attributes
  quit                           exit
`

// replArgs is the number of arguments each command takes.
var replArgs = map[string]int{
	"quit": 0, "exit": 0, "help": 0, "attrs": 0, "selection": 0,
	"select": 2, "brush": 4, "tooltip": 2, "render": 1,
}

// run executes commands read from in until EOF or quit. Errors in a
// command are reported and do not stop the loop.
func (r *repl) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.w, r.prompt)
		if !sc.Scan() {
			break
		}
		err := r.exec(sc.Text())
		if err == errQuit {
			return nil
		} else if err != nil {
			fmt.Fprintf(r.w, "error: %v\n", err)
		}
	}
	return sc.Err()
}

func (r *repl) exec(line string) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	n, ok := replArgs[cmd]
	if !ok {
		return fmt.Errorf("unknown command %q; try help", cmd)
	}
	if len(args) != n {
		return fmt.Errorf("%s takes %d arguments", cmd, n)
	}

	switch cmd {
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprint(r.w, replHelp)
	case "attrs":
		for _, a := range healthdata.Attrs() {
			fmt.Fprintf(r.w, "%-36s %s\n", a.Key(), a.Label())
		}
	case "selection":
		sel := r.d.Selection()
		fmt.Fprintf(r.w, "map1=%v map2=%v histogram=%v x=%v y=%v\n", sel.Map1, sel.Map2, sel.Histogram, sel.X, sel.Y)
	case "select":
		a, err := healthdata.ParseAttr(args[1])
		if err != nil {
			return err
		}
		views, err := r.d.Select(dashboard.Control(args[0]), a)
		if err != nil {
			return err
		}
		if len(views) == 0 {
			fmt.Fprintln(r.w, "no change")
		}
		for _, v := range views {
			fmt.Fprintf(r.w, "updated %s\n", v)
		}
	case "brush":
		var xs [4]float64
		for i, s := range args {
			if xs[i], err = strconv.ParseFloat(s, 64); err != nil {
				return err
			}
		}
		if r.d.Brush(dashboard.Rect{X0: xs[0], Y0: xs[1], X1: xs[2], Y1: xs[3]}) {
			fmt.Fprintln(r.w, "updated scatter")
		} else {
			fmt.Fprintln(r.w, "no change")
		}
	case "tooltip":
		t, ok := r.d.Tooltip(dashboard.View(args[0]), args[1])
		if !ok {
			fmt.Fprintln(r.w, "no data")
			break
		}
		fmt.Fprintf(r.w, "%s: %s\n", t.Title, t.Value)
	case "render":
		if err := r.d.WriteFiles(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(r.w, "wrote %d views to %s\n", len(dashboard.Views), args[0])
	}
	return nil
}
