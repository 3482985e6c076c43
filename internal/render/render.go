// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws classified escape-time grids as one filled
// circle per cell, with optional gridlines, onto vector or raster
// canvases.
package render

import (
	"fmt"
	"image/color"

	"github.com/mandeltiles/mandeltiles/colorkey"
	"github.com/mandeltiles/mandeltiles/escape"
	"github.com/mandeltiles/mandeltiles/palette"
)

// A Canvas is a drawing surface in pixel coordinates with the origin
// at the top left.
type Canvas interface {
	// Fill paints the whole canvas.
	Fill(c color.RGBA)
	// Circle paints a filled circle.
	Circle(cx, cy, r float64, c color.RGBA)
	// Line strokes a straight line of the given width.
	Line(x0, y0, x1, y1, width float64, c color.RGBA)
}

// Layout maps grid cells to canvas positions.
type Layout struct {
	Grid  escape.Grid
	Scale int // pixels per cell
}

// Size returns the canvas size in pixels.
func (l Layout) Size() (width, height int) {
	return l.Grid.CountX * l.Scale, l.Grid.CountY * l.Scale
}

// Radius returns the radius of a cell's circle.
func (l Layout) Radius() float64 {
	return float64(l.Scale) * 0.5
}

// Center returns the canvas position of sequence index i. Row 0 is at
// the bottom so the plane's Y axis points up.
func (l Layout) Center(i int) (x, y float64) {
	ix, iy := l.Grid.Cell(i)
	_, h := l.Size()
	s := float64(l.Scale)
	return l.Radius() + float64(ix)*s, float64(h) - l.Radius() - float64(iy)*s
}

// A Segment is a line from (X0, Y0) to (X1, Y1).
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Gridlines returns lines along the cell boundaries after every
// every-th column and row, excluding the canvas edges. It returns nil
// if every <= 0.
func (l Layout) Gridlines(every int) []Segment {
	if every <= 0 {
		return nil
	}
	w, h := l.Size()
	s := every * l.Scale
	var segs []Segment
	for x := s; x < w; x += s {
		segs = append(segs, Segment{float64(x), 0, float64(x), float64(h)})
	}
	// Rows count up from the bottom edge.
	for y := s; y < h; y += s {
		segs = append(segs, Segment{0, float64(h - y), float64(w), float64(h - y)})
	}
	return segs
}

// A Frame is everything needed to draw one rendering pass.
type Frame struct {
	Layout     Layout
	Times      []escape.Time
	Classifier *colorkey.Classifier
	Palette    palette.Palette

	GridEvery int
	GridColor color.RGBA
	GridWidth float64
}

// Check reports whether the parts of f fit together.
func (f *Frame) Check() error {
	if n := f.Layout.Grid.Len(); len(f.Times) != n {
		return fmt.Errorf("have %d escape times for %d cells", len(f.Times), n)
	}
	if f.Layout.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", f.Layout.Scale)
	}
	if f.Classifier.Colors() != f.Palette.Len() {
		return fmt.Errorf("%w: classifier has %d bins, palette has %d colors", colorkey.ErrKeyLength, f.Classifier.Colors(), f.Palette.Len())
	}
	return nil
}

// Draw paints f onto c: the background, a circle per cell in
// sequence order, then the gridlines.
func Draw(c Canvas, f *Frame) error {
	if err := f.Check(); err != nil {
		return err
	}

	c.Fill(f.Palette.Background)

	r := f.Layout.Radius()
	for i, t := range f.Times {
		x, y := f.Layout.Center(i)
		c.Circle(x, y, r, f.Palette.Color(f.Classifier.Index(t)))
	}

	for _, s := range f.Layout.Gridlines(f.GridEvery) {
		c.Line(s.X0, s.Y0, s.X1, s.Y1, f.GridWidth, f.GridColor)
	}
	return nil
}
