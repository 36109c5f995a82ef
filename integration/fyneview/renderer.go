// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fyneview

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/floorplan"
	"github.com/gogpu/floorplan/ggsurface"
	"github.com/gogpu/floorplan/input"
)

// DefaultCanvasID is the surface ID a Renderer registers when the config
// does not name one.
const DefaultCanvasID = "fyneview"

// Common errors returned by Renderer operations.
var (
	// ErrClosed is returned when operations are attempted on a closed renderer.
	ErrClosed = errors.New("fyneview: renderer is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("fyneview: invalid dimensions")
)

// Renderer owns a floorplan canvas drawn on a gg surface, plus the gesture
// state that drives it. All coordinates are surface pixels.
//
// Toolkits render and deliver input on different goroutines, so every
// method locks. Renderer is safe for concurrent use.
type Renderer struct {
	mu       sync.Mutex
	surface  *ggsurface.Surface
	canvas   *floorplan.Canvas
	gestures *input.Gestures
	pressed  bool
	dirty    bool
	closed   bool
}

// NewRenderer creates a width × height renderer for cfg.
func NewRenderer(cfg floorplan.Config, width, height int, opts ...floorplan.Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if cfg.CanvasID == "" {
		cfg.CanvasID = DefaultCanvasID
	}

	surface := ggsurface.New(width, height, ggsurface.WithBackground(gg.White))
	canvas, err := floorplan.New(cfg, floorplan.Surfaces{cfg.CanvasID: surface}, opts...)
	if err != nil {
		return nil, err
	}
	// Toolkits apply their own drag threshold before reporting a drag.
	gestures := input.New(canvas)
	gestures.MinDragDistance = 0

	return &Renderer{
		surface:  surface,
		canvas:   canvas,
		gestures: gestures,
	}, nil
}

// Size returns the surface size in pixels.
func (r *Renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.surface.Size()
}

// IsDirty reports whether the view changed since the last Render.
func (r *Renderer) IsDirty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dirty
}

// Render resizes the surface to width × height if needed, redraws the
// canvas, and returns the pixels.
func (r *Renderer) Render(width, height int) (image.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	if w, h := r.surface.Size(); w != width || h != height {
		if err := r.surface.Resize(width, height); err != nil {
			return nil, fmt.Errorf("fyneview: surface resize failed: %w", err)
		}
	}

	// Shape failures are already logged by the canvas.
	_ = r.canvas.Draw()
	r.dirty = false
	if err := r.surface.Err(); err != nil {
		floorplan.Logger().Warn("fyneview: render error", "err", err)
	}
	return r.surface.GG().Image(), nil
}

// Do runs fn with exclusive access to the canvas and marks the renderer
// dirty.
func (r *Renderer) Do(fn func(*floorplan.Canvas)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	fn(r.canvas)
	r.dirty = true
	return nil
}

// Drag moves the pointer with the primary button held to at, delta being
// the movement since the previous event. The first Drag of a gesture
// starts it at at - delta.
func (r *Renderer) Drag(at, delta gg.Point) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	if !r.pressed {
		r.pressed = true
		r.gestures.DragStart(at.Sub(delta))
		r.gestures.Drag(at.Sub(delta))
	}
	moved := r.gestures.Drag(at)
	r.dirty = r.dirty || moved
	return moved
}

// DragEnd releases the primary button.
func (r *Renderer) DragEnd() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pressed = false
	r.gestures.DragEnd()
}

// Wheel zooms one notch at a surface point.
func (r *Renderer) Wheel(delta float64, at gg.Point) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	changed := r.gestures.Wheel(delta, at)
	r.dirty = r.dirty || changed
	return changed
}

// ShapeAt returns a copy of the topmost shape under a surface point.
func (r *Renderer) ShapeAt(at gg.Point) (floorplan.Shape, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return floorplan.Shape{}, false
	}
	s, ok := r.canvas.ShapeAt(at)
	if !ok {
		return floorplan.Shape{}, false
	}
	return *s, true
}

// Close releases the renderer. Close is idempotent.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
