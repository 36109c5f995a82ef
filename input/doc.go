// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input translates pointer gestures into floorplan view changes.
//
// Hosts forward their toolkit's press, move, release, pinch, and wheel
// events to a Gestures value, which pans and zooms a Target such as a
// *floorplan.Canvas:
//
//	g := input.New(canvas)
//	g.DragStart(gg.Pt(x, y))
//	g.Drag(gg.Pt(x+20, y))   // pans once past MinDragDistance
//	g.DragEnd()
//	g.Wheel(+1, gg.Pt(x, y)) // zoom in one notch at the pointer
package input
