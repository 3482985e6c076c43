// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorkey

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/mandeltiles/mandeltiles/escape"
)

// Summary describes the distribution of a sequence of escape times.
type Summary struct {
	N              int
	Min, Max       float64
	Mean, StdDev   float64
	Median         float64
	NonDivergent   int     // samples at or above the iteration cap
	InsideFraction float64 // NonDivergent / N
}

// Summarize computes a Summary of values. maxIterations is the
// sampler's iteration cap; values at or above it never diverged.
func Summarize(values []escape.Time, maxIterations int) Summary {
	sum := Summary{N: len(values)}
	if len(values) == 0 {
		return sum
	}

	xs := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(v)
		if int(v) >= maxIterations {
			sum.NonDivergent++
		}
	}
	s := stats.Sample{Xs: xs}
	s.Sort()

	sum.Min, sum.Max = s.Bounds()
	sum.Mean = s.Mean()
	if len(xs) > 1 {
		sum.StdDev = s.StdDev()
	}
	sum.Median = s.Quantile(0.5)
	sum.InsideFraction = float64(sum.NonDivergent) / float64(sum.N)
	return sum
}
