// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import "github.com/gogpu/gg"

// Size is the extent of a shape: Length runs along the x axis and Width
// along the y axis, both before rotation.
type Size struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// Shape is one record of a floorplan document. Type selects the ShapeType
// that draws it; the fields a type reads beyond the common ones are
// documented by that type.
//
// Shapes are owned by the host application. A Canvas only reads them.
type Shape struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Center   gg.Point `json:"center"`
	Rotation float64  `json:"rotation,omitempty"` // degrees
	Label    string   `json:"label,omitempty"`

	Size       Size `json:"size"`
	CornerSize Size `json:"cornerSize,omitempty"`

	// Attrs holds fields for shape types registered by the host.
	Attrs map[string]any `json:"attrs,omitempty"`
}

// ShapeType draws and measures the shapes of one type.
//
// Draw is called with the context translated and scaled into world space and
// wrapped in Save/Restore, so it does not need to restore state itself.
// Draw must not register or unregister shape types on the canvas it is
// given.
//
// Center and Size are pure functions of the shape.
type ShapeType interface {
	// Name returns the Shape.Type value this type handles.
	Name() string
	Draw(ctx Context, s *Shape, c *Canvas) error
	Center(s *Shape) gg.Point
	Size(s *Shape) Size
}
