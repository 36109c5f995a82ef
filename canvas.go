// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// Canvas draws a floorplan onto a surface and owns its view.
//
// Every mutating call redraws the whole surface before returning: clear,
// grid in screen space, then the shapes in world space.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	id       string
	surface  Surface
	ctx      Context
	grid     Grid
	view     View
	shapes   []Shape
	registry *Registry
	log      *slog.Logger
}

// New creates a canvas drawing on the surface named by cfg.CanvasID and
// draws it once.
//
// New fails with a *ConfigError if cfg.CanvasID is empty, if surfaces has
// no surface with that ID, or if the surface cannot provide a 2D context.
func New(cfg Config, surfaces SurfaceProvider, opts ...Option) (*Canvas, error) {
	var o canvasOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg = cfg.withDefaults()
	if cfg.CanvasID == "" {
		return nil, &ConfigError{Err: ErrNoCanvasID}
	}
	if surfaces == nil {
		return nil, &ConfigError{CanvasID: cfg.CanvasID, Err: ErrCanvasNotFound}
	}
	surface, ok := surfaces.Surface(cfg.CanvasID)
	if !ok {
		return nil, &ConfigError{CanvasID: cfg.CanvasID, Err: ErrCanvasNotFound}
	}
	ctx, err := surface.Context2D()
	if err != nil || ctx == nil {
		if err == nil {
			err = ErrNo2DContext
		}
		return nil, &ConfigError{CanvasID: cfg.CanvasID, Err: err}
	}

	registry := &Registry{}
	if !o.noDefaults {
		for _, t := range DefaultShapeTypes() {
			registry.Register(t)
		}
	}
	for _, t := range o.types {
		registry.Register(t)
	}

	c := &Canvas{
		id:       cfg.CanvasID,
		surface:  surface,
		ctx:      ctx,
		grid:     cfg.Grid(),
		view:     View{Offset: cfg.Offset, Zoom: cfg.Zoom},
		shapes:   cfg.Shapes,
		registry: registry,
		log:      o.logger,
	}
	_ = c.Draw()
	return c, nil
}

// ID returns the identifier of the canvas's surface.
func (c *Canvas) ID() string { return c.id }

// Surface returns the surface the canvas draws on.
func (c *Canvas) Surface() Surface { return c.surface }

// Registry returns the canvas's shape type registry.
func (c *Canvas) Registry() *Registry { return c.registry }

// Grid returns the grid configuration.
func (c *Canvas) Grid() Grid { return c.grid }

// View returns the current view.
func (c *Canvas) View() View { return c.view }

// Zoom returns the current zoom level.
func (c *Canvas) Zoom() float64 { return c.view.Zoom }

// Offset returns the current view offset.
func (c *Canvas) Offset() gg.Point { return c.view.Offset }

// Shapes returns the floorplan being drawn.
func (c *Canvas) Shapes() []Shape { return c.shapes }

// logger returns the canvas logger, falling back to the package logger.
func (c *Canvas) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

// Draw redraws the whole surface.
//
// Shapes that fail to draw are logged and skipped; the returned error joins
// their *ShapeErrors. Everything else is always drawn.
func (c *Canvas) Draw() error {
	w, h := c.surface.Size()
	width, height := float64(w), float64(h)

	ctx := c.ctx
	ctx.Save()
	defer ctx.Restore()

	ctx.ClearRect(0, 0, width, height)
	if lines := DrawGrid(ctx, c.grid, c.view, width, height); len(lines) > 0 {
		c.logger().Debug("floorplan: drew grid",
			"zoom", c.view.Zoom, "finest", lines[0].Spacing, "levels", len(lines))
	}

	ctx.Translate(c.view.Offset.X, c.view.Offset.Y)
	ctx.Scale(c.view.Zoom, c.view.Zoom)
	return c.registry.DrawShapes(ctx, c.shapes, c, c.logger())
}

// redraw draws and discards the shape errors, which Draw already logged.
func (c *Canvas) redraw() {
	_ = c.Draw()
}

// RegisterShapeType adds t to the registry, replacing any type with the
// same name. It does not redraw.
func (c *Canvas) RegisterShapeType(t ShapeType) {
	c.registry.Register(t)
}

// UnregisterShapeType removes the type registered under name, if any.
// It does not redraw.
func (c *Canvas) UnregisterShapeType(name string) {
	c.registry.Unregister(name)
}

// SetShapes replaces the floorplan and redraws.
func (c *Canvas) SetShapes(shapes []Shape) {
	c.shapes = shapes
	c.redraw()
}

// SetZoom replaces the zoom level and redraws. zoom must be positive.
func (c *Canvas) SetZoom(zoom float64) {
	c.view.Zoom = zoom
	c.redraw()
}

// SetOffset replaces the view offset and redraws.
func (c *Canvas) SetOffset(offset gg.Point) {
	c.view.Offset = offset
	c.redraw()
}

// SetView replaces the whole view and redraws once.
func (c *Canvas) SetView(v View) {
	c.view = v
	c.redraw()
}

// TranslateByScreenDelta pans by a screen-space delta and redraws.
// The delta is scaled by the zoom in effect at the time of the call.
func (c *Canvas) TranslateByScreenDelta(delta gg.Point) {
	c.view = c.view.Pan(delta)
	c.redraw()
}

// ScaleAtPoint multiplies the zoom by factor, keeping the world point under
// the screen point center fixed, and redraws.
func (c *Canvas) ScaleAtPoint(factor float64, center gg.Point) {
	c.view = c.view.ScaleAt(factor, center)
	c.redraw()
}

// ScreenToWorld converts a surface point to world space.
func (c *Canvas) ScreenToWorld(p gg.Point) gg.Point { return c.view.ToWorld(p) }

// WorldToScreen converts a world point to surface space.
func (c *Canvas) WorldToScreen(p gg.Point) gg.Point { return c.view.ToScreen(p) }

// ShapeAt returns the topmost shape whose rotated bounding box contains
// the surface point p. Shapes of unregistered types are never hit.
func (c *Canvas) ShapeAt(p gg.Point) (*Shape, bool) {
	w := c.view.ToWorld(p)
	for i := len(c.shapes) - 1; i >= 0; i-- {
		s := &c.shapes[i]
		t, ok := c.registry.Lookup(s.Type)
		if !ok {
			continue
		}
		local := w.Sub(t.Center(s)).Rotate(-s.Rotation * math.Pi / 180)
		size := t.Size(s)
		if math.Abs(local.X) <= size.Length/2 && math.Abs(local.Y) <= size.Width/2 {
			return s, true
		}
	}
	return nil, false
}
