// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mandeltiles draws the Mandelbrot set as a grid of colored
// tiles.
//
// Each tile is one sample of the escape-time function at the center
// of a grid cell. Samples are sorted into the palette's colors by a
// key: either a curated list of boundaries or, with -key auto,
// boundaries at evenly spaced ranks of the sampled escape times.
//
// The output format follows the -o file extension (svg, png, bmp or
// tiff) unless -format is given. With -o - the image is written to
// standard output.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"golang.org/x/term"

	"github.com/mandeltiles/mandeltiles/escape"
	"github.com/mandeltiles/mandeltiles/internal/config"
	"github.com/mandeltiles/mandeltiles/internal/histplot"
	"github.com/mandeltiles/mandeltiles/internal/render"
)

func main() {
	log.SetPrefix("mandeltiles: ")
	log.SetFlags(0)

	var (
		flagConfig   = flag.String("config", "", "read settings from JSON `file`")
		flagSave     = flag.String("save-config", "", "write the effective settings to JSON `file` and exit")
		flagPreset   = flag.String("preset", "", "sample the named `region` (see -list)")
		flagList     = flag.Bool("list", false, "list region presets and exit")
		flagSize     = flag.String("grid", "", "grid size as `WxH` cells")
		flagOut      = flag.String("o", "out.png", "write image to `file` (- for stdout)")
		flagFormat   = flag.String("format", "", "output `format`: svg, png, bmp or tiff (default: from -o)")
		flagKey      = flag.String("key", "", "color key: auto, or comma-separated `boundaries`")
		flagOverflow = flag.String("overflow", "", "non-divergent sample `policy`: bounded or extended")
		flagIter     = flag.Int("iter", 0, "iteration budget per sample")
		flagWorkers  = flag.Int("j", 0, "sample `N` grid columns concurrently")
		flagScale    = flag.Int("scale", 0, "tile size in `pixels`")
		flagSS       = flag.Int("ss", 1, "supersample raster output `N` times")
		flagVerbose  = flag.Bool("v", false, "print the key, samples per color and a summary")
		flagHist     = flag.String("hist", "", "plot samples per color to SVG `file`")
		flagView     = flag.String("view", "", "open the output with `command`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagList {
		for _, name := range config.PresetNames() {
			g := config.Presets[name]
			fmt.Printf("%-14s x [%g, %g] y from %g\n", name, g.MinX, g.MaxX, g.MinY)
		}
		return
	}

	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig); err != nil {
			log.Fatal(err)
		}
	}
	if *flagPreset != "" {
		if err := cfg.UsePreset(*flagPreset); err != nil {
			log.Fatal(err)
		}
	}
	if *flagSize != "" {
		x, y, err := parseSize(*flagSize)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Grid.CountX, cfg.Grid.CountY = x, y
	}
	if *flagKey != "" {
		key, err := parseKey(*flagKey)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Key = key
	}
	if *flagOverflow != "" {
		cfg.Overflow = *flagOverflow
	}
	if *flagIter != 0 {
		cfg.MaxIterations = *flagIter
	}
	if *flagWorkers != 0 {
		cfg.Workers = *flagWorkers
	}
	if *flagScale != 0 {
		cfg.Scale = *flagScale
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if *flagSave != "" {
		if err := cfg.Save(*flagSave); err != nil {
			log.Fatal(err)
		}
		return
	}

	var format render.Format
	var err error
	if *flagFormat != "" {
		format, err = render.ParseFormat(*flagFormat)
	} else if *flagOut == "-" {
		format = render.SVG
	} else {
		format, err = render.FormatFromPath(*flagOut)
	}
	if err != nil {
		log.Fatal(err)
	}
	if *flagOut == "-" && format.Binary() && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("refusing to write %s to a terminal; use -o file", format)
	}

	frame, err := buildFrame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *flagVerbose {
		report(os.Stderr, frame, cfg.MaxIterations)
	}

	if *flagHist != "" {
		err := writeFile(*flagHist, func(w io.Writer) error {
			return histplot.Write(w, frame.Classifier.Counts(frame.Times), histTitle(cfg), 500, 350)
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	write := func(w io.Writer) error {
		return render.Write(w, frame, format, *flagSS)
	}
	if *flagOut == "-" {
		err = write(os.Stdout)
	} else {
		err = writeFile(*flagOut, write)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *flagView != "" && *flagOut != "-" {
		if err := view(*flagView, *flagOut); err != nil {
			log.Fatal(err)
		}
	}
}

// writeFile creates path and fills it using write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func histTitle(cfg *config.Config) string {
	o, _ := escape.ParseOverflow(cfg.Overflow)
	how := "derived key"
	if cfg.Key != nil {
		how = "literal key"
	}
	return fmt.Sprintf("samples per color, %d×%d grid, %s, %s overflow", cfg.Grid.CountX, cfg.Grid.CountY, how, o)
}

// view runs the shell-quoted command cmdline with path appended.
func view(cmdline, path string) error {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return fmt.Errorf("parsing -view: %w", err)
	}
	if len(args) == 0 {
		return fmt.Errorf("empty -view command")
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
