// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package escape

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid is returned by Grid.Validate.
var ErrInvalidGrid = errors.New("invalid grid")

// A Grid is a CountX × CountY array of square cells covering part of
// the complex plane.
//
// The cell size is derived from the X range alone and reused for Y,
// so the grid covers [MinX, MaxX] × [MinY, MinY + CountY*Step()].
type Grid struct {
	CountX int     `json:"countX"`
	CountY int     `json:"countY"`
	MinX   float64 `json:"minX"`
	MaxX   float64 `json:"maxX"`
	MinY   float64 `json:"minY"`
}

// Step returns the side length of one cell in plane units.
func (g Grid) Step() float64 {
	return (g.MaxX - g.MinX) / float64(g.CountX)
}

// Len returns the number of cells in g.
func (g Grid) Len() int {
	return g.CountX * g.CountY
}

// MaxY returns the top edge of the area covered by g.
func (g Grid) MaxY() float64 {
	return g.MinY + float64(g.CountY)*g.Step()
}

// Validate reports whether g describes a non-empty grid with a
// positive, finite step.
func (g Grid) Validate() error {
	if g.CountX <= 0 || g.CountY <= 0 {
		return fmt.Errorf("%w: cell counts %d×%d must be positive", ErrInvalidGrid, g.CountX, g.CountY)
	}
	for _, v := range []float64{g.MinX, g.MaxX, g.MinY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bound %v is not finite", ErrInvalidGrid, v)
		}
	}
	if step := g.Step(); !(step > 0) {
		return fmt.Errorf("%w: step %v must be positive (MinX %v, MaxX %v)", ErrInvalidGrid, step, g.MinX, g.MaxX)
	}
	return nil
}

// Index returns the sequence index of cell (ix, iy).
func (g Grid) Index(ix, iy int) int {
	return ix*g.CountY + iy
}

// Cell returns the column and row of sequence index i.
func (g Grid) Cell(i int) (ix, iy int) {
	return i / g.CountY, i % g.CountY
}

// Center returns the plane point sampled for sequence index i.
func (g Grid) Center(i int) (x, y float64) {
	ix, iy := g.Cell(i)
	step := g.Step()
	return accumulate(g.MinX, step, ix), accumulate(g.MinY, step, iy)
}

// axes returns the X coordinate of every column and the Y coordinate
// of every row.
func (g Grid) axes() (xs, ys []float64) {
	step := g.Step()
	xs = make([]float64, g.CountX)
	ys = make([]float64, g.CountY)
	for i, x := 0, g.MinX+step*0.5; i < len(xs); i, x = i+1, x+step {
		xs[i] = x
	}
	for i, y := 0, g.MinY+step*0.5; i < len(ys); i, y = i+1, y+step {
		ys[i] = y
	}
	return
}

// accumulate returns the center of cell n along an axis starting at
// lo. Centers are advanced by repeated addition so they match axes
// exactly.
func accumulate(lo, step float64, n int) float64 {
	v := lo + step*0.5
	for ; n > 0; n-- {
		v += step
	}
	return v
}
