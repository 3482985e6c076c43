// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorkey assigns escape times to the colors of a finite
// palette.
//
// A Key is an ascending list of boundary values, one fewer than the
// number of colors. It is normally derived from the order statistics
// of the sampled escape times, but may also be given literally so the
// coloring stays stable across renderings at different resolutions.
package colorkey

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mandeltiles/mandeltiles/escape"
)

// Contract violations reported by Derive, Check and New.
var (
	ErrPaletteSize   = errors.New("palette must have at least one color")
	ErrTooFewSamples = errors.New("fewer samples than palette colors")
	ErrKeyLength     = errors.New("key length does not match palette size")
	ErrKeyOrder      = errors.New("key is not in ascending order")
)

// A Key partitions escape times into len(Key)+1 bins.
type Key []escape.Time

// Derive returns a key for a palette of n colors taken from the order
// statistics of values.
//
// Boundary k is the value at rank (k+1)*⌊len(values)/n⌋ of the sorted
// values. When len(values) is not a multiple of n the remainder all
// falls into the last bin. Derive does not modify values.
func Derive(values []escape.Time, n int) (Key, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteSize, n)
	}
	if len(values) < n {
		return nil, fmt.Errorf("%w: %d samples for %d colors", ErrTooFewSamples, len(values), n)
	}

	sorted := append([]escape.Time(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	step := len(sorted) / n
	key := make(Key, n-1)
	for k := range key {
		key[k] = sorted[(k+1)*step]
	}
	return key, nil
}

// Classify returns the palette index of v, in [0, len(k)].
//
// Values equal to a boundary go to the bin above it: if v is found
// at position p (the first such position) the result is p+1,
// otherwise it is the number of boundaries less than v.
func (k Key) Classify(v escape.Time) int {
	p := sort.Search(len(k), func(i int) bool { return k[i] >= v })
	if p < len(k) && k[p] == v {
		return p + 1
	}
	return p
}

// Check reports whether k is a valid key for a palette of n colors.
func (k Key) Check(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrPaletteSize, n)
	}
	if len(k) != n-1 {
		return fmt.Errorf("%w: %d boundaries for %d colors, want %d", ErrKeyLength, len(k), n, n-1)
	}
	for i := 1; i < len(k); i++ {
		if k[i] < k[i-1] {
			return fmt.Errorf("%w: key[%d] = %d < key[%d] = %d", ErrKeyOrder, i, k[i], i-1, k[i-1])
		}
	}
	return nil
}

// A Classifier maps escape times to palette indexes for one
// rendering pass.
type Classifier struct {
	// Key is the key in use.
	Key Key

	// Derived is true if Key was derived from the samples rather
	// than supplied by the caller.
	Derived bool

	// DerivedKey is the key derived from the samples, even when
	// Key was supplied by the caller. It is nil if there were
	// fewer samples than colors.
	DerivedKey Key

	n int
}

// New returns a Classifier for a palette of n colors. If override is
// non-nil it is used as the key; otherwise the key is derived from
// values.
func New(values []escape.Time, n int, override Key) (*Classifier, error) {
	if override != nil {
		if err := override.Check(n); err != nil {
			return nil, err
		}
		c := &Classifier{Key: append(Key(nil), override...), n: n}
		if len(values) >= n {
			c.DerivedKey, _ = Derive(values, n)
		}
		return c, nil
	}
	key, err := Derive(values, n)
	if err != nil {
		return nil, err
	}
	return &Classifier{Key: key, Derived: true, DerivedKey: key, n: n}, nil
}

// Colors returns the palette size c was built for.
func (c *Classifier) Colors() int {
	return c.n
}

// Index returns the palette index of v.
func (c *Classifier) Index(v escape.Time) int {
	return c.Key.Classify(v)
}

// Counts returns the number of values assigned to each palette index.
func (c *Classifier) Counts(values []escape.Time) []int {
	counts := make([]int, c.n)
	for _, v := range values {
		counts[c.Index(v)]++
	}
	return counts
}
