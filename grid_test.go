// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import (
	"testing"

	"github.com/gogpu/gg"
)

func defaultGrid() Grid {
	return DefaultConfig().Grid()
}

func TestGridLevels(t *testing.T) {
	tests := []struct {
		name     string
		zoom     float64
		spacings []float64
	}{
		// 1px < 3px, so the grid starts at 6.
		{"zoom 1", 1, []float64{6, 120}},
		{"zoom 3", 3, []float64{1, 6}},
		{"zoom 0.5", 0.5, []float64{6, 120}},
		// 6 * 0.4 = 2.4px is too fine.
		{"zoom 0.4", 0.4, []float64{120, 1200}},
		// Only the coarsest spacing qualifies: 12000 * 0.0005 = 6px.
		{"zoom 0.0005", 0.0005, []float64{12000}},
		// 12000 * 0.0002 = 2.4px: nothing qualifies.
		{"zoom 0.0002", 0.0002, nil},
	}
	g := defaultGrid()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels := g.Levels(tt.zoom)
			if len(levels) != len(tt.spacings) {
				t.Fatalf("Levels(%v) = %d levels, want %d", tt.zoom, len(levels), len(tt.spacings))
			}
			for i, lvl := range levels {
				if lvl.Spacing != tt.spacings[i] {
					t.Errorf("level %d spacing = %v, want %v", i, lvl.Spacing, tt.spacings[i])
				}
				if lvl.Color != g.Colors[i] {
					t.Errorf("level %d color = %v, want %v", i, lvl.Color, g.Colors[i])
				}
				if lvl.Pixels != lvl.Spacing*tt.zoom {
					t.Errorf("level %d pixels = %v, want %v", i, lvl.Pixels, lvl.Spacing*tt.zoom)
				}
			}
		})
	}
}

func TestGridLevelsCappedByColors(t *testing.T) {
	g := Grid{
		Spacings:  []float64{1, 2, 4, 8},
		Colors:    []gg.RGBA{gg.Black, gg.White, gg.Red},
		MinPixels: 1,
	}
	if got := len(g.Levels(1)); got != 3 {
		t.Errorf("levels = %d, want 3", got)
	}
	g.Colors = nil
	if got := g.Levels(1); got != nil {
		t.Errorf("levels with no colors = %v, want none", got)
	}
}

func TestGridLevelsEmpty(t *testing.T) {
	g := Grid{Spacings: []float64{}, Colors: DefaultGridLineColors, MinPixels: 3}
	if got := g.Levels(1); got != nil {
		t.Errorf("Levels() = %v, want nil", got)
	}
	if got := g.Lines(View{Zoom: 1}, 100, 100); got != nil {
		t.Errorf("Lines() = %v, want nil", got)
	}
}

func TestLinePositions(t *testing.T) {
	tests := []struct {
		name              string
		offset, px, width float64
		want              []float64
	}{
		{"origin", 0, 10, 30, []float64{0.5, 10.5, 20.5, 30.5}},
		{"offset", 4, 10, 20, []float64{4.5, 14.5, 24.5}},
		// Offsets wrap into (-px, px); negative ones start off-surface.
		{"negative offset", -23, 10, 20, []float64{-2.5, 7.5, 17.5}},
		{"fractional spacing", 0, 6.5, 13, []float64{0.5, 6.5, 13.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linePositions(tt.offset, tt.px, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("linePositions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("position %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestJSRound(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.5, 1},
		{-0.5, 0},
		{-2.5, -2},
		{2.4, 2},
		{-3.6, -4},
	}
	for _, tt := range tests {
		if got := jsRound(tt.in); got != tt.want {
			t.Errorf("jsRound(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGridLines(t *testing.T) {
	g := defaultGrid()
	lines := g.Lines(View{Offset: gg.Pt(0, 0), Zoom: 1}, 120, 60)
	if len(lines) != 2 {
		t.Fatalf("Lines() = %d levels, want 2", len(lines))
	}
	fine, coarse := lines[0], lines[1]
	if len(fine.X) != 21 || len(fine.Y) != 11 {
		t.Errorf("fine level = %d×%d lines, want 21×11", len(fine.X), len(fine.Y))
	}
	if len(coarse.X) != 2 || len(coarse.Y) != 2 {
		t.Errorf("coarse level = %d×%d lines, want 2×2", len(coarse.X), len(coarse.Y))
	}
	if coarse.X[1] != 120.5 {
		t.Errorf("coarse.X[1] = %v, want 120.5", coarse.X[1])
	}
}

func TestGridValidate(t *testing.T) {
	tests := []struct {
		name     string
		spacings []float64
		wantErr  bool
	}{
		{"default", DefaultGridLineSpacing, false},
		{"empty", []float64{}, false},
		{"single", []float64{5}, false},
		{"zero", []float64{0, 1}, true},
		{"negative", []float64{-1}, true},
		{"equal", []float64{2, 2}, true},
		{"descending", []float64{10, 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Grid{Spacings: tt.spacings}.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
