// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package escape computes escape times of the quadratic map z ← z² + c
// over a grid of sample points in the complex plane.
//
// A sample's escape time is the iteration at which |z|² first exceeds
// DivergenceThreshold. Samples that survive the whole iteration budget
// are reported according to the Sampler's Overflow policy.
package escape

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Time is the escape time of a single sample.
type Time uint32

const (
	// DefaultMaxIterations is the iteration budget used when a
	// Sampler's MaxIterations is zero.
	DefaultMaxIterations = 1000

	// DefaultExcessScale is the width of the range above
	// MaxIterations used by the Extended overflow policy.
	DefaultExcessScale = 65535

	// DivergenceThreshold is the squared escape radius. Once
	// x²+y² exceeds it the orbit is guaranteed to diverge.
	DivergenceThreshold = 4.0
)

// Overflow selects how samples that never diverge are reported.
type Overflow int

const (
	// Extended reports a non-divergent sample as MaxIterations
	// plus its final squared magnitude, normalized to [0, 1] and
	// multiplied by ExcessScale. This gives extra gradation
	// inside the set.
	Extended Overflow = iota

	// Bounded reports every non-divergent sample as exactly
	// MaxIterations.
	Bounded
)

var overflowNames = [...]string{
	Extended: "extended",
	Bounded:  "bounded",
}

func (o Overflow) String() string {
	if o < 0 || int(o) >= len(overflowNames) {
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
	return overflowNames[o]
}

// ParseOverflow parses the name of an overflow policy.
func ParseOverflow(s string) (Overflow, error) {
	for o, name := range overflowNames {
		if strings.EqualFold(s, name) {
			return Overflow(o), nil
		}
	}
	return 0, fmt.Errorf("unknown overflow policy %q (want bounded or extended)", s)
}

// A Sampler evaluates escape times. The zero Sampler uses
// DefaultMaxIterations, the Extended policy and DefaultExcessScale,
// and samples sequentially.
type Sampler struct {
	// MaxIterations is the iteration budget per sample. If 0,
	// DefaultMaxIterations is used. Max() must fit in a Time.
	MaxIterations int

	// Overflow is the policy for samples that never diverge.
	Overflow Overflow

	// ExcessScale is the width of the Extended range. If 0,
	// DefaultExcessScale is used. MaxIterations plus the rounded
	// ExcessScale must not exceed math.MaxUint32, or non-divergent
	// samples wrap into the divergent range.
	ExcessScale float64

	// Workers is the number of grid columns evaluated
	// concurrently. Values <= 1 sample sequentially. The result
	// does not depend on Workers.
	Workers int
}

func (s *Sampler) maxIterations() int {
	if s.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return s.MaxIterations
}

func (s *Sampler) excessScale() float64 {
	if s.ExcessScale <= 0 {
		return DefaultExcessScale
	}
	return s.ExcessScale
}

// Max returns the largest escape time s can produce.
func (s *Sampler) Max() Time {
	m := Time(s.maxIterations())
	if s.Overflow == Extended {
		m += Time(math.Round(s.excessScale()))
	}
	return m
}

// EscapeTime returns the escape time of the point (x0, y0).
func (s *Sampler) EscapeTime(x0, y0 float64) Time {
	maxIter := s.maxIterations()
	var x, y, x2, y2 float64
	for i := 0; i < maxIter; i++ {
		y = (x+x)*y + y0
		x = x2 - y2 + x0
		x2 = x * x
		y2 = y * y

		if x2+y2 > DivergenceThreshold {
			return Time(i)
		}
	}

	if s.Overflow == Bounded {
		return Time(maxIter)
	}
	// x2+y2 cannot exceed the threshold here, but keep the excess
	// inside [0, ExcessScale] regardless.
	mag := math.Min(x2+y2, DivergenceThreshold) / DivergenceThreshold
	return Time(maxIter) + Time(math.Round(mag*s.excessScale()))
}

// Sample evaluates the escape time at the center of every cell of g
// and returns them in g's sequence order: X in the outer loop, Y in
// the inner loop. A grid without cells yields nil.
func (s *Sampler) Sample(g Grid) []Time {
	if g.CountX <= 0 || g.CountY <= 0 {
		return nil
	}
	xs, ys := g.axes()
	times := make([]Time, len(xs)*len(ys))

	column := func(ix int) {
		row := times[ix*len(ys) : (ix+1)*len(ys)]
		x := xs[ix]
		for iy, y := range ys {
			row[iy] = s.EscapeTime(x, y)
		}
	}

	if s.Workers <= 1 {
		for ix := range xs {
			column(ix)
		}
		return times
	}

	var eg errgroup.Group
	eg.SetLimit(s.Workers)
	for ix := range xs {
		ix := ix
		eg.Go(func() error {
			column(ix)
			return nil
		})
	}
	// Columns never fail.
	eg.Wait()
	return times
}
