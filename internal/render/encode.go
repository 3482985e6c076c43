// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output file format.
type Format string

const (
	SVG  Format = "svg"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case SVG, PNG, BMP, TIFF:
		return f, nil
	case "tif":
		return TIFF, nil
	}
	return "", fmt.Errorf("unknown format %q (want svg, png, bmp or tiff)", s)
}

// FormatFromPath returns the format implied by path's extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot tell output format of %q", path)
	}
	return ParseFormat(ext)
}

// Binary reports whether f is a binary format.
func (f Format) Binary() bool {
	return f != SVG
}

// Encode writes img to w in raster format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%s is not a raster format", f)
}

// Write draws frame to w in format f. ss is the supersampling factor
// for raster formats.
func Write(w io.Writer, frame *Frame, f Format, ss int) error {
	if err := frame.Check(); err != nil {
		return err
	}
	width, height := frame.Layout.Size()
	if f == SVG {
		c := NewSVG(w, width, height)
		if err := Draw(c, frame); err != nil {
			return err
		}
		return c.Close()
	}

	c := NewRaster(width, height, ss)
	if err := Draw(c, frame); err != nil {
		return err
	}
	return Encode(w, c.Image(), f)
}
