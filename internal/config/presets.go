// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "github.com/mandeltiles/mandeltiles/escape"

// Presets are named regions of the plane. All use a 48×32 grid; the
// covered height follows from the width because cells are square.
var Presets = map[string]escape.Grid{
	// The whole set, framed for a 3:2 canvas.
	"overview": {
		CountX: 48, CountY: 32,
		MinX: -2.31538881281125, MaxX: 1.19729198177323,
		MinY: -1.13430317325124,
	},

	// Dense filaments and repeating "seahorse" curls.
	"seahorse": {
		CountX: 48, CountY: 32,
		MinX: -0.8, MaxX: -0.7,
		MinY: 0.05,
	},

	// Large bulb with trunk-like tendrils.
	"elephant": {
		CountX: 48, CountY: 32,
		MinX: -1.85, MaxX: -1.75,
		MinY: -0.10,
	},

	// Small copy of the set with tight spiral arms.
	"spiral": {
		CountX: 48, CountY: 32,
		MinX: -0.7435, MaxX: -0.7420,
		MinY: 0.1310,
	},

	"triple-spiral": {
		CountX: 48, CountY: 32,
		MinX: -0.7480, MaxX: -0.7450,
		MinY: 0.0950,
	},

	"dragon": {
		CountX: 48, CountY: 32,
		MinX: -0.7400, MaxX: -0.7350,
		MinY: 0.1800,
	},

	// Self-similar copy inside a spiral arm.
	"mini-spiral": {
		CountX: 48, CountY: 32,
		MinX: -1.7390, MaxX: -1.7375,
		MinY: -0.0235,
	},
}
