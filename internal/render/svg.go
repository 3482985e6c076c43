// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/mandeltiles/mandeltiles/palette"
)

// SVGCanvas writes drawing operations as SVG elements. Coordinates are
// rounded to whole pixels.
type SVGCanvas struct {
	svg  *svg.SVG
	w, h int
}

// NewSVG starts an SVG document of the given size on w. The document
// is incomplete until Close is called.
func NewSVG(w io.Writer, width, height int) *SVGCanvas {
	s := svg.New(w)
	s.Start(width, height)
	return &SVGCanvas{s, width, height}
}

func px(v float64) int {
	return int(math.Round(v))
}

func (c *SVGCanvas) Fill(col color.RGBA) {
	c.svg.Rect(0, 0, c.w, c.h, "fill:"+palette.Hex(col))
}

func (c *SVGCanvas) Circle(cx, cy, r float64, col color.RGBA) {
	c.svg.Circle(px(cx), px(cy), px(r), "fill:"+palette.Hex(col))
}

func (c *SVGCanvas) Line(x0, y0, x1, y1, width float64, col color.RGBA) {
	c.svg.Line(px(x0), px(y0), px(x1), px(y1), fmt.Sprintf("stroke:%s;stroke-width:%g", palette.Hex(col), width))
}

// Close finishes the document.
func (c *SVGCanvas) Close() error {
	c.svg.End()
	return nil
}
