// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides the discrete color palettes escape times
// are mapped onto.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrDuplicateColor is returned by Validate if a color appears twice.
var ErrDuplicateColor = errors.New("duplicate palette color")

// A Palette is an ordered list of distinct colors plus a background
// color used only to fill the canvas.
type Palette struct {
	Colors     []color.RGBA
	Background color.RGBA
}

// Default is the palette the tiles were originally drawn with, ordered
// from fastest to slowest escape.
var Default = Palette{
	Colors: []color.RGBA{
		{246, 246, 247, 255},
		{250, 201, 165, 255},
		{248, 172, 0, 255},
		{234, 160, 198, 255},
		{0, 154, 150, 255},
		{209, 75, 150, 255},
		{0, 98, 174, 255},
		{20, 20, 20, 255},
		{0, 53, 91, 255},
	},
	Background: color.RGBA{56, 56, 56, 255},
}

// Parse returns a palette from CSS-style hex colors such as "#f6f6f7".
func Parse(colors []string, background string) (Palette, error) {
	var p Palette
	for _, s := range colors {
		c, err := ParseColor(s)
		if err != nil {
			return Palette{}, err
		}
		p.Colors = append(p.Colors, c)
	}
	bg, err := ParseColor(background)
	if err != nil {
		return Palette{}, fmt.Errorf("background: %w", err)
	}
	p.Background = bg
	return p, p.Validate()
}

// ParseColor parses a single "#rrggbb" or "#rgb" color.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// Len returns the number of data colors in p.
func (p Palette) Len() int {
	return len(p.Colors)
}

// Validate checks that p has at least one color and no color repeats.
func (p Palette) Validate() error {
	if len(p.Colors) == 0 {
		return errors.New("palette has no colors")
	}
	seen := make(map[color.RGBA]int, len(p.Colors))
	for i, c := range p.Colors {
		if j, ok := seen[c]; ok {
			return fmt.Errorf("%w: colors %d and %d are both %s", ErrDuplicateColor, j, i, p.Hex(i))
		}
		seen[c] = i
	}
	return nil
}

// Color returns color i. It panics if i is out of range, which means
// the palette does not have one more color than the key has
// boundaries.
func (p Palette) Color(i int) color.RGBA {
	if i < 0 || i >= len(p.Colors) {
		panic(fmt.Sprintf("palette index %d out of range [0, %d)", i, len(p.Colors)))
	}
	return p.Colors[i]
}

// Hex returns color i in "#rrggbb" form.
func (p Palette) Hex(i int) string {
	return Hex(p.Color(i))
}

// Hex returns c in "#rrggbb" form.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
