// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshstat lowers a scene file into mesh batches and reports
// how many draw calls and how much memory they take, optionally after
// splitting them for 16-bit index buffers.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/base/logx"
	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/paint/mesh"
	"cogentcore.org/meshbuf/paint/scene"
)

var (
	scenePath = flag.String("scene", "", "the scene file to load (.toml, .yaml or .yml)")
	split     = flag.Bool("split", true, "split batches to fit 16-bit index buffers")
	vv        = flag.Bool("vv", false, "very verbose: log every batch flush and split")
	verbose   = flag.Bool("v", false, "verbose: log per-batch statistics")
	quiet     = flag.Bool("q", false, "quiet: only log errors")
)

func main() {
	flag.Usage = Usage
	flag.Parse()
	logx.UserLevel = logx.LevelFromFlags(*vv, *verbose, *quiet)
	logx.SetDefaultLogger()
	if *scenePath == "" {
		Usage()
		os.Exit(2)
	}
	if errors.Log(run(context.Background(), os.Stdout, *scenePath, *split)) != nil {
		os.Exit(1)
	}
}

// run loads the scene, builds and finishes its batches, and
// writes the summary statistics to w.
func run(ctx context.Context, w io.Writer, path string, split bool) error {
	sc, err := scene.Open(path)
	if err != nil {
		return err
	}
	dl, err := sc.Build(ctx)
	if err != nil {
		return fmt.Errorf("meshstat: building %s: %w", sc.Name, err)
	}
	before := dl.Stats()
	batches, err := dl.Finish(split)
	if err != nil {
		return fmt.Errorf("meshstat: finishing %s: %w", sc.Name, err)
	}
	bounds := math32.B2Empty()
	for i, b := range batches {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("meshstat: batch %d: %w", i, err)
		}
		bb := b.Bounds()
		bounds.ExpandByBox(bb)
		slog.Info("batch", "index", i, "texture", b.Texture, "vertices", len(b.Vertices), "triangles", b.TriangleCount(), "bytes", b.BytesUsed(), "min", bb.Min, "max", bb.Max)
	}
	after := mesh.StatsOf(batches)
	fmt.Fprintf(w, "scene %s: %d shapes\n", sc.Name, len(sc.Shapes))
	fmt.Fprintf(w, "merged: %v\n", before)
	if split {
		fmt.Fprintf(w, "split:  %v\n", after)
	}
	if !bounds.IsEmpty() {
		fmt.Fprintf(w, "bounds: %v-%v\n", bounds.Min, bounds.Max)
	}
	return nil
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Meshstat reports mesh batching and 16-bit index splitting statistics for a scene.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\tmeshstat -scene file [flags]\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
