// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"math"

	"github.com/gogpu/gg"
)

// Default gesture tuning.
const (
	// DefaultMinDragDistance is how far, in screen pixels, a pointer must
	// travel from where it was pressed before the view starts to pan.
	DefaultMinDragDistance = 5

	// DefaultWheelScale is the zoom factor applied per wheel notch.
	DefaultWheelScale = 1.02
)

// Target is what gestures move. *floorplan.Canvas implements it.
type Target interface {
	TranslateByScreenDelta(delta gg.Point)
	ScaleAtPoint(factor float64, center gg.Point)
}

// Gestures turns raw pointer input into view changes on a Target.
//
// A drag pans the view by the pointer's screen movement, once the pointer
// has moved MinDragDistance from where it was pressed. The movement inside
// that threshold is not applied. A pinch zooms by the ratio between
// successive pinch scales, anchored at the pinch center. Each wheel notch
// zooms by WheelScale, in for positive deltas and out for negative ones.
//
// Gestures is NOT safe for concurrent use; feed it from one event loop.
type Gestures struct {
	Target          Target
	MinDragDistance float64
	WheelScale      float64

	pressed   bool
	dragging  bool
	press     gg.Point
	last      gg.Point
	pinching  bool
	lastScale float64
}

// New returns Gestures driving t with the default tuning.
func New(t Target) *Gestures {
	return &Gestures{
		Target:          t,
		MinDragDistance: DefaultMinDragDistance,
		WheelScale:      DefaultWheelScale,
	}
}

// Dragging reports whether a drag is panning the view.
func (g *Gestures) Dragging() bool { return g.dragging }

// DragStart records a pointer press at a screen point.
func (g *Gestures) DragStart(at gg.Point) {
	g.pressed = true
	g.dragging = false
	g.press = at
	g.last = at
}

// Drag moves the pressed pointer to a screen point. It returns true if the
// view was panned. A Drag without a preceding DragStart starts a drag at
// that point.
func (g *Gestures) Drag(at gg.Point) bool {
	if !g.pressed {
		g.DragStart(at)
		return false
	}
	if !g.dragging {
		if at.Sub(g.press).Length() < g.MinDragDistance {
			return false
		}
		g.dragging = true
		g.last = at
		return false
	}

	delta := at.Sub(g.last)
	g.last = at
	if delta.X == 0 && delta.Y == 0 {
		return false
	}
	g.Target.TranslateByScreenDelta(delta)
	return true
}

// DragEnd releases the pointer.
func (g *Gestures) DragEnd() {
	g.pressed = false
	g.dragging = false
}

// PinchStart begins a pinch. Scales passed to Pinch are relative to the
// distance between the fingers at this point.
func (g *Gestures) PinchStart() {
	g.pinching = true
	g.lastScale = 1
}

// Pinch zooms by scale relative to the previous Pinch call, centered at a
// screen point. Non-positive scales are ignored.
func (g *Gestures) Pinch(scale float64, center gg.Point) bool {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return false
	}
	if !g.pinching {
		g.PinchStart()
	}
	factor := scale / g.lastScale
	g.lastScale = scale
	if factor == 1 {
		return false
	}
	g.Target.ScaleAtPoint(factor, center)
	return true
}

// PinchEnd ends the pinch.
func (g *Gestures) PinchEnd() {
	g.pinching = false
}

// Wheel zooms by one notch at a screen point. The sign of delta selects the
// direction; its magnitude is ignored. A zero delta does nothing.
func (g *Gestures) Wheel(delta float64, at gg.Point) bool {
	var factor float64
	switch {
	case delta > 0:
		factor = g.WheelScale
	case delta < 0:
		factor = 1 / g.WheelScale
	default:
		return false
	}
	g.Target.ScaleAtPoint(factor, at)
	return true
}
