// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a rendering pass: the sampled
// region, the iteration policy, the palette and how cells are drawn.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/mandeltiles/mandeltiles/colorkey"
	"github.com/mandeltiles/mandeltiles/escape"
	"github.com/mandeltiles/mandeltiles/palette"
)

// Config is the JSON-serializable configuration of one rendering.
type Config struct {
	Grid escape.Grid `json:"grid"`

	MaxIterations int     `json:"maxIterations"`
	Overflow      string  `json:"overflow"`
	ExcessScale   float64 `json:"excessScale"`
	Workers       int     `json:"workers"`

	Palette    []string `json:"palette"`
	Background string   `json:"background"`

	// Key, if non-nil, replaces the key derived from the samples.
	Key colorkey.Key `json:"key"`

	// Scale is the size of one cell in output pixels.
	Scale int `json:"scale"`

	// GridEvery draws a line every GridEvery cells. 0 disables
	// gridlines.
	GridEvery int     `json:"gridEvery"`
	GridColor string  `json:"gridColor"`
	GridWidth float64 `json:"gridWidth"`
}

// curatedKey was picked by hand for the overview region so colors stay
// put when the grid resolution changes.
var curatedKey = colorkey.Key{1, 2, 3, 4, 5, 9, escape.DefaultMaxIterations, 1550}

// Default returns the configuration of the overview rendering.
func Default() *Config {
	hex := make([]string, palette.Default.Len())
	for i := range hex {
		hex[i] = palette.Default.Hex(i)
	}
	return &Config{
		Grid:          Presets["overview"],
		MaxIterations: escape.DefaultMaxIterations,
		Overflow:      escape.Extended.String(),
		ExcessScale:   escape.DefaultExcessScale,
		Workers:       1,
		Palette:       hex,
		Background:    palette.Hex(palette.Default.Background),
		Key:           append(colorkey.Key(nil), curatedKey...),
		Scale:         16,
		GridEvery:     16,
		GridColor:     "#0000ff",
		GridWidth:     4,
	}
}

// Load reads a JSON configuration from path. Fields missing from the
// file keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func (cfg *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "\t")
	if err := enc.Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return f.Close()
}

// UsePreset replaces the sampled region with a named preset, keeping
// the current cell counts. Presets other than the overview drop the
// curated key, which only suits the overview.
func (cfg *Config) UsePreset(name string) error {
	g, ok := Presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q (have %v)", name, PresetNames())
	}
	g.CountX, g.CountY = cfg.Grid.CountX, cfg.Grid.CountY
	cfg.Grid = g
	if name != "overview" {
		cfg.Key = nil
	}
	return nil
}

// Sampler returns the escape-time sampler described by cfg.
func (cfg *Config) Sampler() (*escape.Sampler, error) {
	o, err := escape.ParseOverflow(cfg.Overflow)
	if err != nil {
		return nil, err
	}
	if cfg.MaxIterations <= 0 {
		return nil, fmt.Errorf("maxIterations must be positive, got %d", cfg.MaxIterations)
	}
	if !(cfg.ExcessScale >= 0) {
		return nil, fmt.Errorf("excessScale must not be negative, got %v", cfg.ExcessScale)
	}
	top := float64(cfg.MaxIterations)
	if o == escape.Extended {
		top += math.Round(cfg.ExcessScale)
	}
	if top > math.MaxUint32 {
		return nil, fmt.Errorf("maxIterations %d plus excessScale %v exceeds %d", cfg.MaxIterations, cfg.ExcessScale, uint32(math.MaxUint32))
	}
	return &escape.Sampler{
		MaxIterations: cfg.MaxIterations,
		Overflow:      o,
		ExcessScale:   cfg.ExcessScale,
		Workers:       cfg.Workers,
	}, nil
}

// ColorPalette parses cfg's palette.
func (cfg *Config) ColorPalette() (palette.Palette, error) {
	return palette.Parse(cfg.Palette, cfg.Background)
}

// Validate checks everything that can be checked before sampling, so
// that contract violations surface before any work is done.
func (cfg *Config) Validate() error {
	if err := cfg.Grid.Validate(); err != nil {
		return err
	}
	if _, err := cfg.Sampler(); err != nil {
		return err
	}
	pal, err := cfg.ColorPalette()
	if err != nil {
		return err
	}
	if cfg.Key != nil {
		if err := cfg.Key.Check(pal.Len()); err != nil {
			return err
		}
	} else if cfg.Grid.Len() < pal.Len() {
		return fmt.Errorf("%w: %d cells for %d colors", colorkey.ErrTooFewSamples, cfg.Grid.Len(), pal.Len())
	}
	if cfg.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", cfg.Scale)
	}
	if cfg.GridEvery < 0 {
		return fmt.Errorf("gridEvery must not be negative, got %d", cfg.GridEvery)
	}
	if cfg.GridEvery > 0 {
		if _, err := palette.ParseColor(cfg.GridColor); err != nil {
			return fmt.Errorf("gridColor: %w", err)
		}
	}
	return nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
