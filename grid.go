// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Grid configures the multi-level reference grid.
//
// Spacings are world-space distances between grid lines, strictly
// increasing. Colors are the stroke colors of the rendered levels from light
// to dark; the number of colors caps how many levels are drawn at once.
// MinPixels is the smallest on-screen spacing that is still drawn.
type Grid struct {
	Spacings  []float64
	Colors    []gg.RGBA
	MinPixels float64
}

// GridLevel is one level of the grid as rendered at a particular zoom.
type GridLevel struct {
	Spacing float64 // world-space spacing
	Pixels  float64 // on-screen spacing
	Color   gg.RGBA
}

// GridLines holds the screen positions of one level's lines.
// X holds the positions of vertical lines, Y of horizontal lines.
type GridLines struct {
	GridLevel
	X []float64
	Y []float64
}

// Validate reports whether the spacings are positive and strictly increasing.
func (g Grid) Validate() error {
	for i, s := range g.Spacings {
		if s <= 0 {
			return fmt.Errorf("floorplan: grid spacing %d is %v, must be positive", i, s)
		}
		if i > 0 && s <= g.Spacings[i-1] {
			return fmt.Errorf("floorplan: grid spacings must be strictly increasing (%v after %v)", s, g.Spacings[i-1])
		}
	}
	return nil
}

// Levels returns the levels visible at zoom, finest first.
//
// The finest level is the first spacing whose on-screen size is at least
// MinPixels; the following coarser spacings are added until the colors run
// out. Nothing is visible when no spacing qualifies.
func (g Grid) Levels(zoom float64) []GridLevel {
	first := -1
	for i, s := range g.Spacings {
		if s*zoom >= g.MinPixels {
			first = i
			break
		}
	}
	if first < 0 {
		return nil
	}

	n := min(len(g.Colors), len(g.Spacings)-first)
	if n == 0 {
		return nil
	}
	levels := make([]GridLevel, 0, n)
	for k := 0; k < n; k++ {
		s := g.Spacings[first+k]
		levels = append(levels, GridLevel{Spacing: s, Pixels: s * zoom, Color: g.Colors[k]})
	}
	return levels
}

// Lines computes the screen positions of every grid line for a surface of
// the given size. Lines start at the offset modulo the on-screen spacing,
// which may be off the surface, and are snapped to half pixels so that
// 1px strokes stay crisp.
func (g Grid) Lines(v View, width, height float64) []GridLines {
	levels := g.Levels(v.Zoom)
	if len(levels) == 0 {
		return nil
	}

	out := make([]GridLines, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, GridLines{
			GridLevel: lvl,
			X:         linePositions(v.Offset.X, lvl.Pixels, width),
			Y:         linePositions(v.Offset.Y, lvl.Pixels, height),
		})
	}
	return out
}

func linePositions(offset, px, extent float64) []float64 {
	count := int(jsRound(extent/px)) + 1
	first := math.Mod(offset, px)
	pos := make([]float64, count)
	for j := range pos {
		pos[j] = jsRound(first+float64(j)*px-0.5) + 0.5
	}
	return pos
}

// jsRound rounds half up, towards positive infinity.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}

// DrawGrid strokes the visible grid levels across a width × height surface,
// finest level first so coarser lines paint over it, and returns the lines
// it drew. The grid is drawn in screen space; ctx's state is restored
// afterwards.
func DrawGrid(ctx Context, g Grid, v View, width, height float64) []GridLines {
	lines := g.Lines(v, width, height)
	if len(lines) == 0 {
		return nil
	}

	ctx.Save()
	defer ctx.Restore()

	ctx.SetLineWidth(1)
	for _, lvl := range lines {
		ctx.SetStrokeStyle(gg.Solid(lvl.Color))
		for _, x := range lvl.X {
			ctx.BeginPath()
			ctx.MoveTo(x, 0)
			ctx.LineTo(x, height)
			ctx.Stroke()
		}
		for _, y := range lvl.Y {
			ctx.BeginPath()
			ctx.MoveTo(0, y)
			ctx.LineTo(width, y)
			ctx.Stroke()
		}
	}
	return lines
}
