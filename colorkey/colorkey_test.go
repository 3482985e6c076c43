// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorkey

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"sort"
	"testing"
	"testing/quick"

	"github.com/mandeltiles/mandeltiles/escape"
)

func TestClassifyBoundaries(t *testing.T) {
	key := Key{10, 20, 30}
	for _, test := range []struct {
		v    escape.Time
		want int
	}{
		{0, 0},
		{9, 0},
		{10, 1},
		{11, 1},
		{19, 1},
		{20, 2},
		{29, 2},
		{30, 3},
		{31, 3},
		{math.MaxUint32, 3},
	} {
		if got := key.Classify(test.v); got != test.want {
			t.Errorf("Classify(%d) = %d, want %d", test.v, got, test.want)
		}
	}
}

func TestClassifyDuplicates(t *testing.T) {
	// An exact match on a repeated boundary lands above its first
	// occurrence.
	key := Key{0, 0, 5, 5, 5, 9}
	for _, test := range []struct {
		v    escape.Time
		want int
	}{
		{0, 1},
		{1, 2},
		{5, 3},
		{6, 5},
		{9, 6},
		{10, 6},
	} {
		if got := key.Classify(test.v); got != test.want {
			t.Errorf("Classify(%d) = %d, want %d", test.v, got, test.want)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	f := func(raw []uint16, a, b uint16) bool {
		key := make(Key, len(raw))
		for i, v := range raw {
			key[i] = escape.Time(v)
		}
		sort.Slice(key, func(i, j int) bool { return key[i] < key[j] })
		if a > b {
			a, b = b, a
		}
		ca, cb := key.Classify(escape.Time(a)), key.Classify(escape.Time(b))
		return ca <= cb && ca >= 0 && cb <= len(key)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestDerive(t *testing.T) {
	for _, test := range []struct {
		values []escape.Time
		n      int
		want   Key
	}{
		{[]escape.Time{5, 4, 3, 2, 1, 0}, 3, Key{2, 4}},
		{[]escape.Time{0, 1, 2, 3, 4, 5, 6, 7}, 4, Key{2, 4, 6}},
		// 7 values into 3 bins: step 2, the remainder goes
		// entirely to the last bin.
		{[]escape.Time{6, 5, 4, 3, 2, 1, 0}, 3, Key{2, 4}},
		{[]escape.Time{1, 1, 1, 1}, 4, Key{1, 1, 1}},
		{[]escape.Time{7}, 1, Key{}},
		{[]escape.Time{3, 9}, 2, Key{9}},
	} {
		orig := append([]escape.Time(nil), test.values...)
		got, err := Derive(test.values, test.n)
		if err != nil {
			t.Errorf("Derive(%v, %d): %v", test.values, test.n, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Derive(%v, %d) = %v, want %v", test.values, test.n, got, test.want)
		}
		if !reflect.DeepEqual(test.values, orig) {
			t.Errorf("Derive modified its input: %v, was %v", test.values, orig)
		}
	}
}

func TestDeriveSorted(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 100; iter++ {
		n := 1 + r.Intn(12)
		values := make([]escape.Time, n+r.Intn(500))
		for i := range values {
			values[i] = escape.Time(r.Intn(1200))
		}
		key, err := Derive(values, n)
		if err != nil {
			t.Fatal(err)
		}
		if err := key.Check(n); err != nil {
			t.Fatalf("Derive(%d values, %d) = %v: %v", len(values), n, key, err)
		}
	}
}

func TestDeriveErrors(t *testing.T) {
	if _, err := Derive([]escape.Time{1, 2}, 3); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("Derive with 2 samples for 3 colors: got %v, want ErrTooFewSamples", err)
	}
	if _, err := Derive(nil, 1); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("Derive with no samples: got %v, want ErrTooFewSamples", err)
	}
	if _, err := Derive([]escape.Time{1, 2}, 0); !errors.Is(err, ErrPaletteSize) {
		t.Errorf("Derive for 0 colors: got %v, want ErrPaletteSize", err)
	}
}

func TestCheck(t *testing.T) {
	for _, test := range []struct {
		key  Key
		n    int
		want error
	}{
		{Key{1, 2, 3, 4, 5, 9, 1000, 1550}, 9, nil},
		{Key{1, 1, 2}, 4, nil},
		{Key{}, 1, nil},
		{Key{1, 2}, 4, ErrKeyLength},
		{Key{1, 2, 3}, 3, ErrKeyLength},
		{Key{2, 1}, 3, ErrKeyOrder},
		{Key{}, 0, ErrPaletteSize},
	} {
		err := test.key.Check(test.n)
		if test.want == nil && err != nil || test.want != nil && !errors.Is(err, test.want) {
			t.Errorf("%v.Check(%d) = %v, want %v", test.key, test.n, err, test.want)
		}
	}
}

func TestNewOverride(t *testing.T) {
	values := []escape.Time{0, 1, 2, 3, 4, 5, 6, 7, 8}

	c, err := New(values, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Derived || !reflect.DeepEqual(c.Key, Key{3, 6}) {
		t.Fatalf("derived classifier = %+v, want key [3 6]", c)
	}

	override := Key{1, 2}
	c, err = New(values, 3, override)
	if err != nil {
		t.Fatal(err)
	}
	if c.Derived || !reflect.DeepEqual(c.Key, override) {
		t.Fatalf("override classifier = %+v, want key %v", c, override)
	}
	if !reflect.DeepEqual(c.DerivedKey, Key{3, 6}) {
		t.Fatalf("DerivedKey = %v, want [3 6] alongside the override", c.DerivedKey)
	}
	override[0] = 99
	if c.Key[0] != 1 {
		t.Fatal("classifier aliases the override key")
	}

	// An override does not need enough samples to derive a key.
	if c, err := New(nil, 3, Key{1, 2}); err != nil || c.DerivedKey != nil {
		t.Fatalf("override with no samples: %+v, %v", c, err)
	}
	if _, err := New(values, 3, Key{1}); !errors.Is(err, ErrKeyLength) {
		t.Fatalf("short override: got %v, want ErrKeyLength", err)
	}
	if _, err := New(values[:2], 3, nil); !errors.Is(err, ErrTooFewSamples) {
		t.Fatalf("too few samples: got %v, want ErrTooFewSamples", err)
	}
}

func TestCounts(t *testing.T) {
	values := []escape.Time{0, 0, 1, 5, 9, 10, 10, 11, 30, 31, 1000}
	c, err := New(values, 4, Key{10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}
	got := c.Counts(values)
	want := []int{5, 3, 0, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Counts = %v, want %v", got, want)
	}
	if c.Colors() != 4 {
		t.Fatalf("Colors() = %d, want 4", c.Colors())
	}
}

func TestEndToEnd(t *testing.T) {
	// Every cell of this grid diverges within five iterations.
	g := escape.Grid{CountX: 4, CountY: 4, MinX: -1.375, MaxX: -0.625, MinY: 0.5}
	s := escape.Sampler{}
	times := s.Sample(g)
	want := []escape.Time{
		2, 2, 2, 1,
		3, 2, 2, 2,
		4, 3, 2, 2,
		5, 3, 3, 2,
	}
	if !reflect.DeepEqual(times, want) {
		t.Fatalf("times = %v, want %v", times, want)
	}

	c, err := New(times, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Sorted: 1 2×9 3×4 4 5; step 5 picks ranks 5 and 10.
	if want := (Key{2, 3}); !reflect.DeepEqual(c.Key, want) {
		t.Errorf("key = %v, want %v", c.Key, want)
	}
	for _, v := range times {
		if idx := c.Index(v); idx < 0 || idx > 2 {
			t.Fatalf("Index(%d) = %d, want 0, 1 or 2", v, idx)
		}
	}
	// 2 matches key[0] and goes up a bin; 3 and above land in the
	// last bin.
	if want := []int{1, 9, 6}; !reflect.DeepEqual(c.Counts(times), want) {
		t.Errorf("counts = %v, want %v", c.Counts(times), want)
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]escape.Time{0, 2, 4, 1000, 1004}, 1000)
	if sum.N != 5 || sum.Min != 0 || sum.Max != 1004 {
		t.Fatalf("Summarize = %+v", sum)
	}
	if sum.NonDivergent != 2 || sum.InsideFraction != 0.4 {
		t.Errorf("NonDivergent = %d, InsideFraction = %v; want 2, 0.4", sum.NonDivergent, sum.InsideFraction)
	}
	if sum.Mean != 402 {
		t.Errorf("Mean = %v, want 402", sum.Mean)
	}
	if sum.Median != 4 {
		t.Errorf("Median = %v, want 4", sum.Median)
	}

	if sum := Summarize(nil, 1000); sum.N != 0 {
		t.Errorf("Summarize(nil) = %+v", sum)
	}
}
