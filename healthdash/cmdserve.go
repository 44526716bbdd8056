// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/countyhealth/healthviz/dashboard"
)

var cmdServeFlags = flag.NewFlagSet(os.Args[0]+" serve", flag.ExitOnError)

var serveAddr string

func init() {
	f := cmdServeFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s serve [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	addInputFlags(f)
	f.StringVar(&serveAddr, "http", "localhost:8080", "serve HTTP on `address`")
	registerSubcommand("serve", "[flags] - serve the interactive dashboard", cmdServe, f)
}

func cmdServe() {
	if cmdServeFlags.NArg() != 0 {
		cmdServeFlags.Usage()
		os.Exit(2)
	}
	s := dashboard.NewServer(loadDashboard())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	hs := &http.Server{Addr: serveAddr, Handler: s.Handler()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Run(ctx)
	})
	g.Go(func() error {
		log.Printf("serving on http://%s", serveAddr)
		if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
