// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import "log/slog"

// Option configures a Canvas during creation.
//
// Example:
//
//	// Built-in room types, package logger
//	c, err := floorplan.New(cfg, surfaces)
//
//	// Only a custom type, with a dedicated logger
//	c, err := floorplan.New(cfg, surfaces,
//	    floorplan.WithoutDefaultShapeTypes(),
//	    floorplan.WithShapeTypes(myType),
//	    floorplan.WithLogger(logger))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	logger     *slog.Logger
	types      []ShapeType
	noDefaults bool
}

// WithLogger sets the logger a Canvas reports shape errors to.
// Without it the canvas uses the package logger (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(o *canvasOptions) {
		o.logger = l
	}
}

// WithShapeTypes registers additional shape types. They are registered
// after the built-in types, so a type named like a built-in replaces it.
func WithShapeTypes(types ...ShapeType) Option {
	return func(o *canvasOptions) {
		o.types = append(o.types, types...)
	}
}

// WithoutDefaultShapeTypes starts the canvas with an empty registry instead
// of the built-in room types.
func WithoutDefaultShapeTypes() Option {
	return func(o *canvasOptions) {
		o.noDefaults = true
	}
}
