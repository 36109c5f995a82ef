// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import (
	"errors"
	"fmt"
)

// Configuration errors returned by New, wrapped in a *ConfigError.
var (
	ErrNoCanvasID     = errors.New("floorplan: no canvas ID specified")
	ErrCanvasNotFound = errors.New("floorplan: canvas does not exist")
	ErrNo2DContext    = errors.New("floorplan: surface does not support 2D drawing")
)

// ErrShapePanic is wrapped by a *ShapeError when a shape type panicked
// while drawing.
var ErrShapePanic = errors.New("floorplan: shape type panicked")

// ErrInvalidGeometry is returned by built-in shape types for shapes whose
// dimensions cannot describe the room.
var ErrInvalidGeometry = errors.New("floorplan: invalid shape geometry")

// ConfigError reports a canvas that could not be initialized.
type ConfigError struct {
	CanvasID string
	Err      error
}

func (e *ConfigError) Error() string {
	if e.CanvasID == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.CanvasID)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ShapeError reports a shape that failed to draw.
type ShapeError struct {
	ID   string
	Type string
	Err  error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("floorplan: drawing shape %q (type %q): %v", e.ID, e.Type, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }
