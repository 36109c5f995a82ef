// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fyneview

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/floorplan"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(floorplan.Config{
		Shapes: []floorplan.Shape{{
			ID:     "den",
			Type:   floorplan.RectRoomType,
			Center: gg.Pt(50, 50),
			Size:   floorplan.Size{Length: 40, Width: 20},
		}},
	}, 100, 80)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestNewRendererInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRenderer(floorplan.Config{}, tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("error = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestRenderResizes(t *testing.T) {
	r := newTestRenderer(t)

	img, err := r.Render(120, 90)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 90 {
		t.Errorf("image bounds = %v, want 120×90", b)
	}
	if w, h := r.Size(); w != 120 || h != 90 {
		t.Errorf("Size() = %d×%d, want 120×90", w, h)
	}
}

func TestRenderInvalid(t *testing.T) {
	r := newTestRenderer(t)
	if _, err := r.Render(0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Render(0, 10) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestDragPans(t *testing.T) {
	r := newTestRenderer(t)

	// The first event starts the gesture and applies its delta.
	if !r.Drag(gg.Pt(30, 30), gg.Pt(10, 0)) {
		t.Fatal("Drag() should pan")
	}
	r.Drag(gg.Pt(30, 35), gg.Pt(0, 5))
	r.DragEnd()

	var off gg.Point
	_ = r.Do(func(c *floorplan.Canvas) { off = c.Offset() })
	if off != gg.Pt(10, 5) {
		t.Errorf("offset = %v, want (10,5)", off)
	}
	if !r.IsDirty() {
		t.Error("renderer should be dirty after a pan")
	}
	if _, err := r.Render(100, 80); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if r.IsDirty() {
		t.Error("Render should clear the dirty flag")
	}
}

func TestWheelZooms(t *testing.T) {
	r := newTestRenderer(t)
	if !r.Wheel(1, gg.Pt(50, 40)) {
		t.Fatal("Wheel() should zoom")
	}
	var zoom float64
	_ = r.Do(func(c *floorplan.Canvas) { zoom = c.Zoom() })
	if math.Abs(zoom-1.02) > 1e-12 {
		t.Errorf("zoom = %v, want 1.02", zoom)
	}
}

func TestShapeAt(t *testing.T) {
	r := newTestRenderer(t)
	s, ok := r.ShapeAt(gg.Pt(60, 55))
	if !ok || s.ID != "den" {
		t.Errorf("ShapeAt() = %v, %v, want den", s.ID, ok)
	}
	if _, ok := r.ShapeAt(gg.Pt(5, 5)); ok {
		t.Error("ShapeAt() outside every shape should report false")
	}
}

func TestClosed(t *testing.T) {
	r := newTestRenderer(t)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := r.Render(10, 10); !errors.Is(err, ErrClosed) {
		t.Errorf("Render() error = %v, want ErrClosed", err)
	}
	if err := r.Do(func(*floorplan.Canvas) {}); !errors.Is(err, ErrClosed) {
		t.Errorf("Do() error = %v, want ErrClosed", err)
	}
	if r.Drag(gg.Pt(1, 1), gg.Pt(1, 1)) {
		t.Error("Drag() on a closed renderer should do nothing")
	}
}
