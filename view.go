// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import "github.com/gogpu/gg"

// View is the pan/zoom state of a canvas.
//
// Offset is the translation applied before scaling, in screen pixels, and
// Zoom is the uniform scale factor. A world point p maps to the screen point
// Offset + p*Zoom. Zoom must be positive; View does not check it.
type View struct {
	Offset gg.Point
	Zoom   float64
}

// ToScreen converts a world-space point to screen space.
func (v View) ToScreen(p gg.Point) gg.Point {
	return v.Offset.Add(p.Mul(v.Zoom))
}

// ToWorld converts a screen-space point to world space.
func (v View) ToWorld(p gg.Point) gg.Point {
	return p.Sub(v.Offset).Div(v.Zoom)
}

// Matrix returns the world-to-screen transform: translate by Offset, then
// scale by Zoom.
func (v View) Matrix() gg.Matrix {
	return gg.Translate(v.Offset.X, v.Offset.Y).Multiply(gg.Scale(v.Zoom, v.Zoom))
}

// Pan returns the view translated by a screen-space delta. The delta is
// divided by the current zoom before it is added to the offset, so Pan must
// be applied before any zoom change belonging to the same gesture step.
func (v View) Pan(delta gg.Point) View {
	v.Offset = v.Offset.Add(delta.Div(v.Zoom))
	return v
}

// ScaleAt returns the view scaled by factor about the screen point center.
// The world point under center before the call is still under center
// afterwards.
func (v View) ScaleAt(factor float64, center gg.Point) View {
	v.Zoom *= factor
	v.Offset = center.Sub(center.Sub(v.Offset).Mul(factor))
	return v
}
