// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so four curves approximate
// a circle.
const kappa = 0.5522847498

// RasterCanvas draws anti-aliased shapes into an RGBA image.
//
// With a supersampling factor above 1 it draws at that multiple of
// the output size and Image scales the result down.
type RasterCanvas struct {
	img *image.RGBA
	ss  float64
	w   int
	h   int
	z   vector.Rasterizer
}

// NewRaster returns a canvas of the given output size. ss is the
// supersampling factor; values below 1 are treated as 1.
func NewRaster(width, height, ss int) *RasterCanvas {
	if ss < 1 {
		ss = 1
	}
	return &RasterCanvas{
		img: image.NewRGBA(image.Rect(0, 0, width*ss, height*ss)),
		ss:  float64(ss),
		w:   width,
		h:   height,
	}
}

func (c *RasterCanvas) Fill(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *RasterCanvas) Circle(cx, cy, r float64, col color.RGBA) {
	cx, cy, r = cx*c.ss, cy*c.ss, r*c.ss
	c.fillPath(cx-r, cy-r, cx+r, cy+r, col, func(ox, oy float64) {
		x, y := float32(cx-ox), float32(cy-oy)
		r, k := float32(r), float32(r*kappa)
		z := &c.z
		z.MoveTo(x+r, y)
		z.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
		z.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
		z.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
		z.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
		z.ClosePath()
	})
}

func (c *RasterCanvas) Line(x0, y0, x1, y1, width float64, col color.RGBA) {
	x0, y0, x1, y1 = x0*c.ss, y0*c.ss, x1*c.ss, y1*c.ss
	hw := width * c.ss / 2
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || hw <= 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx, ny := -dy/l*hw, dx/l*hw
	minX := math.Min(x0, x1) - math.Abs(nx)
	minY := math.Min(y0, y1) - math.Abs(ny)
	maxX := math.Max(x0, x1) + math.Abs(nx)
	maxY := math.Max(y0, y1) + math.Abs(ny)
	c.fillPath(minX, minY, maxX, maxY, col, func(ox, oy float64) {
		z := &c.z
		z.MoveTo(float32(x0+nx-ox), float32(y0+ny-oy))
		z.LineTo(float32(x1+nx-ox), float32(y1+ny-oy))
		z.LineTo(float32(x1-nx-ox), float32(y1-ny-oy))
		z.LineTo(float32(x0-nx-ox), float32(y0-ny-oy))
		z.ClosePath()
	})
}

// fillPath rasterizes the path built by path within the bounding box
// (minX, minY)-(maxX, maxY), clipped to the image. path receives the
// origin of the rasterizer in image coordinates and must offset its
// points by it.
func (c *RasterCanvas) fillPath(minX, minY, maxX, maxY float64, col color.RGBA, path func(ox, oy float64)) {
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Over
	path(float64(r.Min.X), float64(r.Min.Y))
	c.z.Draw(c.img, r, image.NewUniform(col), image.Point{})
}

// Image returns the drawing at its output size.
func (c *RasterCanvas) Image() *image.RGBA {
	if c.ss == 1 {
		return c.img
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.w, c.h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return dst
}
