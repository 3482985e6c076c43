// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/mandeltiles/mandeltiles/colorkey"
	"github.com/mandeltiles/mandeltiles/escape"
	"github.com/mandeltiles/mandeltiles/internal/config"
	"github.com/mandeltiles/mandeltiles/internal/render"
	"github.com/mandeltiles/mandeltiles/palette"
)

// buildFrame samples the region in cfg and classifies every sample.
// cfg must be valid.
func buildFrame(cfg *config.Config) (*render.Frame, error) {
	sampler, err := cfg.Sampler()
	if err != nil {
		return nil, err
	}
	pal, err := cfg.ColorPalette()
	if err != nil {
		return nil, err
	}
	var gridColor color.RGBA
	if cfg.GridEvery > 0 {
		if gridColor, err = palette.ParseColor(cfg.GridColor); err != nil {
			return nil, fmt.Errorf("gridColor: %w", err)
		}
	}

	times := sampler.Sample(cfg.Grid)

	cls, err := colorkey.New(times, pal.Len(), cfg.Key)
	if err != nil {
		return nil, err
	}

	return &render.Frame{
		Layout:     render.Layout{Grid: cfg.Grid, Scale: cfg.Scale},
		Times:      times,
		Classifier: cls,
		Palette:    pal,
		GridEvery:  cfg.GridEvery,
		GridColor:  gridColor,
		GridWidth:  cfg.GridWidth,
	}, nil
}

// parseKey parses a comma-separated key. "auto" means derive the key
// from the samples and returns nil.
func parseKey(s string) (colorkey.Key, error) {
	if s == "auto" {
		return nil, nil
	}
	var key colorkey.Key
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad key boundary %q: %w", field, err)
		}
		key = append(key, escape.Time(v))
	}
	return key, nil
}

// parseSize parses a grid size of the form "48x32".
func parseSize(s string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(s, "x")
	if ok {
		x, err = strconv.Atoi(xs)
		if err == nil {
			y, err = strconv.Atoi(ys)
		}
	}
	if !ok || err != nil || x <= 0 || y <= 0 {
		return 0, 0, fmt.Errorf("bad grid size %q (want WxH)", s)
	}
	return x, y, nil
}

// report prints the key, the number of samples per color and a
// summary of the escape times.
func report(w io.Writer, f *render.Frame, maxIterations int) {
	how := "curated"
	if f.Classifier.Derived {
		how = "derived"
	}
	fmt.Fprintf(w, "key (%s): %v\n", how, f.Classifier.Key)
	if !f.Classifier.Derived && f.Classifier.DerivedKey != nil {
		fmt.Fprintf(w, "derived key (unused): %v\n", f.Classifier.DerivedKey)
	}
	for i, n := range f.Classifier.Counts(f.Times) {
		fmt.Fprintf(w, "%d,%s,%d\n", i+1, f.Palette.Hex(i), n)
	}
	sum := colorkey.Summarize(f.Times, maxIterations)
	fmt.Fprintf(w, "samples %d: min %g max %g mean %.2f stddev %.2f median %g, %.1f%% inside\n",
		sum.N, sum.Min, sum.Max, sum.Mean, sum.StdDev, sum.Median, 100*sum.InsideFraction)
}
