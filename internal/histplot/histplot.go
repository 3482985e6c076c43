// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histplot plots how many samples landed in each palette
// color.
package histplot

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// Table returns a table with one row per palette color and columns
// "color" (the palette index) and "samples".
func Table(counts []int) *table.Table {
	idx := make([]int, len(counts))
	for i := range idx {
		idx[i] = i
	}
	samples := append([]int(nil), counts...)
	return table.NewBuilder(nil).Add("color", idx).Add("samples", samples).Done()
}

// Plot returns a plot of counts, the per-color sample counts of one
// rendering.
func Plot(counts []int, title string) *gg.Plot {
	plot := gg.NewPlot(Table(counts))

	// Always show Y=0.
	plot.SetScale("y", gg.NewLinearScaler().Include(0))

	plot.Add(gg.LayerLines{X: "color", Y: "samples"})
	plot.Add(gg.LayerPoints{X: "color", Y: "samples"})
	if title != "" {
		plot.Add(gg.Title(title))
	}
	return plot
}

// Write writes a width × height SVG plot of counts to w.
func Write(w io.Writer, counts []int, title string, width, height int) error {
	if len(counts) == 0 {
		return fmt.Errorf("no counts to plot")
	}
	return Plot(counts, title).WriteSVG(w, width, height)
}
