// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// Registry maps shape type names to the ShapeTypes that draw them.
// The zero value is an empty registry ready to use.
type Registry struct {
	types map[string]ShapeType
}

// NewRegistry returns a registry holding the given types.
func NewRegistry(types ...ShapeType) *Registry {
	r := &Registry{}
	for _, t := range types {
		r.Register(t)
	}
	return r
}

// Register adds t under t.Name(), replacing any type already registered
// under that name.
func (r *Registry) Register(t ShapeType) {
	if r.types == nil {
		r.types = make(map[string]ShapeType)
	}
	r.types[t.Name()] = t
}

// Unregister removes the type registered under name, if any.
func (r *Registry) Unregister(name string) {
	delete(r.types, name)
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (ShapeType, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}

// DrawShapes draws shapes in order with their registered types.
//
// Shapes whose type is not registered are skipped. Every Draw call runs
// between ctx.Save and ctx.Restore; an error or panic from one shape is
// logged and collected, and drawing continues with the next shape. The
// returned error joins the *ShapeError of every shape that failed.
func (r *Registry) DrawShapes(ctx Context, shapes []Shape, c *Canvas, log *slog.Logger) error {
	if log == nil {
		log = Logger()
	}

	var errs []error
	for i := range shapes {
		s := &shapes[i]
		t, ok := r.types[s.Type]
		if !ok {
			log.Debug("floorplan: skipping shape of unknown type", "id", s.ID, "type", s.Type)
			continue
		}
		if err := drawIsolated(ctx, t, s, c); err != nil {
			log.Warn("floorplan: error while drawing shape", "id", s.ID, "type", s.Type, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// drawIsolated runs t.Draw inside Save/Restore and converts a returned
// error or a panic into a *ShapeError.
func drawIsolated(ctx Context, t ShapeType, s *Shape, c *Canvas) (err error) {
	ctx.Save()
	defer ctx.Restore()
	defer func() {
		if p := recover(); p != nil {
			err = &ShapeError{ID: s.ID, Type: s.Type, Err: fmt.Errorf("%w: %v", ErrShapePanic, p)}
		}
	}()

	if drawErr := t.Draw(ctx, s, c); drawErr != nil {
		return &ShapeError{ID: s.ID, Type: s.Type, Err: drawErr}
	}
	return nil
}
