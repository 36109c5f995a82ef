// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import "github.com/gogpu/gg"

// Default configuration values.
var (
	DefaultGridLineSpacing = []float64{1, 6, 120, 1200, 12000}
	DefaultGridLineColors  = []gg.RGBA{gg.Hex("#d0d0d0"), gg.Hex("#808080")}
)

const (
	DefaultGridMinPixels = 3.0
	DefaultZoom          = 1.0
)

// Config holds the options recognized by New.
//
// Unset fields take their defaults: a nil GridLineSpacing or
// GridLineColors, a zero GridMinPixels, and a zero Zoom are replaced by the
// Default values above. A non-nil empty GridLineSpacing disables the grid.
type Config struct {
	// CanvasID identifies the surface to draw on. Required.
	CanvasID string

	// GridLineSpacing lists the world-space grid spacings, ascending.
	GridLineSpacing []float64

	// GridLineColors lists the colors of the grid levels, light to dark.
	// Only this many levels are shown at once.
	GridLineColors []gg.RGBA

	// GridMinPixels is the smallest on-screen grid spacing that is drawn.
	GridMinPixels float64

	// Offset is the initial view offset in screen pixels.
	Offset gg.Point

	// Shapes is the initial floorplan.
	Shapes []Shape

	// Zoom is the initial zoom level.
	Zoom float64
}

// DefaultConfig returns a Config with every default filled in and no
// canvas ID.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

// withDefaults returns c with unset fields replaced by their defaults.
func (c Config) withDefaults() Config {
	if c.GridLineSpacing == nil {
		c.GridLineSpacing = append([]float64(nil), DefaultGridLineSpacing...)
	}
	if c.GridLineColors == nil {
		c.GridLineColors = append([]gg.RGBA(nil), DefaultGridLineColors...)
	}
	if c.GridMinPixels == 0 {
		c.GridMinPixels = DefaultGridMinPixels
	}
	if c.Zoom == 0 {
		c.Zoom = DefaultZoom
	}
	return c
}

// Grid returns the grid described by c.
func (c Config) Grid() Grid {
	return Grid{
		Spacings:  c.GridLineSpacing,
		Colors:    c.GridLineColors,
		MinPixels: c.GridMinPixels,
	}
}
