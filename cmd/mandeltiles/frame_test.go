// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mandeltiles/mandeltiles/colorkey"
	"github.com/mandeltiles/mandeltiles/internal/config"
	"github.com/mandeltiles/mandeltiles/internal/histplot"
)

func TestParseKey(t *testing.T) {
	key, err := parseKey("1, 2,3,4,5,9,1000,1550")
	if err != nil {
		t.Fatal(err)
	}
	if want := (colorkey.Key{1, 2, 3, 4, 5, 9, 1000, 1550}); !reflect.DeepEqual(key, want) {
		t.Errorf("parseKey = %v, want %v", key, want)
	}
	if key, err := parseKey("auto"); key != nil || err != nil {
		t.Errorf("parseKey(auto) = %v, %v", key, err)
	}
	for _, bad := range []string{"1,,2", "-1", "x", "1,99999999999"} {
		if _, err := parseKey(bad); err == nil {
			t.Errorf("parseKey(%q) succeeded", bad)
		}
	}
}

func TestParseSize(t *testing.T) {
	x, y, err := parseSize("48x32")
	if err != nil || x != 48 || y != 32 {
		t.Errorf("parseSize(48x32) = %d, %d, %v", x, y, err)
	}
	for _, bad := range []string{"48", "0x3", "4x-1", "axb", "4x"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Errorf("parseSize(%q) succeeded", bad)
		}
	}
}

func TestBuildFrame(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.CountX, cfg.Grid.CountY = 24, 16
	cfg.MaxIterations = 200
	cfg.Key = nil
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	f, err := buildFrame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Times) != 24*16 {
		t.Fatalf("got %d samples, want %d", len(f.Times), 24*16)
	}
	if !f.Classifier.Derived || len(f.Classifier.Key) != 8 {
		t.Fatalf("classifier = %+v, want a derived 8-boundary key", f.Classifier)
	}
	if f.GridColor.B != 255 {
		t.Errorf("grid color = %v, want blue", f.GridColor)
	}

	var buf bytes.Buffer
	report(&buf, f, cfg.MaxIterations)
	out := buf.String()
	if !strings.HasPrefix(out, "key (derived): ") {
		t.Errorf("report starts %q", out)
	}
	// One line per color plus the key and the summary.
	if n := strings.Count(out, "\n"); n != 9+2 {
		t.Errorf("report has %d lines, want 11:\n%s", n, out)
	}
}

func TestReportLiteralKey(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.CountX, cfg.Grid.CountY = 12, 8
	f, err := buildFrame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	report(&buf, f, cfg.MaxIterations)
	lines := strings.Split(buf.String(), "\n")
	if want := "key (curated): [1 2 3 4 5 9 1000 1550]"; lines[0] != want {
		t.Errorf("first line = %q, want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "derived key (unused): [") {
		t.Errorf("second line = %q, want the derived key", lines[1])
	}
}

func TestWriteFile(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.CountX, cfg.Grid.CountY = 12, 8
	f, err := buildFrame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "hist.svg")
	err = writeFile(path, func(w io.Writer) error {
		return histplot.Write(w, f.Classifier.Counts(f.Times), histTitle(cfg), 300, 200)
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("literal key")) {
		t.Errorf("histogram title missing from %s", path)
	}
}

func TestView(t *testing.T) {
	if err := view("", "x"); err == nil {
		t.Error("empty view command succeeded")
	}
	if err := view(`"unterminated`, "x"); err == nil {
		t.Error("unterminated quote succeeded")
	}
}
