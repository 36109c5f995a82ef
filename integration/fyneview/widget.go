// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fyneview

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"github.com/gogpu/floorplan"
)

// Viewer is a fyne widget showing a floorplan.
//
// Dragging pans the view and the scroll wheel zooms at the pointer.
// Tapping reports the shape under the pointer to OnTapped.
type Viewer struct {
	widget.BaseWidget

	// OnTapped, if set, is called with the shape under a tap.
	OnTapped func(floorplan.Shape)

	renderer *Renderer
	raster   *fynecanvas.Raster
}

var (
	_ fyne.Draggable  = (*Viewer)(nil)
	_ fyne.Scrollable = (*Viewer)(nil)
	_ fyne.Tappable   = (*Viewer)(nil)
)

// NewViewer creates a viewer for cfg with an initial minimum size in
// fyne units.
func NewViewer(cfg floorplan.Config, minSize fyne.Size, opts ...floorplan.Option) (*Viewer, error) {
	r, err := NewRenderer(cfg, max(1, int(minSize.Width)), max(1, int(minSize.Height)), opts...)
	if err != nil {
		return nil, err
	}

	v := &Viewer{renderer: r}
	v.raster = fynecanvas.NewRaster(v.draw)
	v.raster.ScaleMode = fynecanvas.ImageScalePixels
	v.raster.SetMinSize(minSize)
	v.ExtendBaseWidget(v)
	return v, nil
}

// Renderer returns the viewer's renderer.
func (v *Viewer) Renderer() *Renderer { return v.renderer }

// Update runs fn with exclusive access to the canvas and refreshes the
// viewer.
func (v *Viewer) Update(fn func(*floorplan.Canvas)) error {
	if err := v.renderer.Do(fn); err != nil {
		return err
	}
	v.Refresh()
	return nil
}

// CreateRenderer implements fyne.Widget.
func (v *Viewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// Refresh redraws the floorplan.
func (v *Viewer) Refresh() {
	v.raster.Refresh()
}

// Dragged implements fyne.Draggable.
func (v *Viewer) Dragged(ev *fyne.DragEvent) {
	s := v.pixelScale()
	at := gg.Pt(float64(ev.Position.X)*s, float64(ev.Position.Y)*s)
	delta := gg.Pt(float64(ev.Dragged.DX)*s, float64(ev.Dragged.DY)*s)
	if v.renderer.Drag(at, delta) {
		v.Refresh()
	}
}

// DragEnd implements fyne.Draggable.
func (v *Viewer) DragEnd() {
	v.renderer.DragEnd()
}

// Scrolled implements fyne.Scrollable.
func (v *Viewer) Scrolled(ev *fyne.ScrollEvent) {
	s := v.pixelScale()
	at := gg.Pt(float64(ev.Position.X)*s, float64(ev.Position.Y)*s)
	if v.renderer.Wheel(float64(ev.Scrolled.DY), at) {
		v.Refresh()
	}
}

// Tapped implements fyne.Tappable.
func (v *Viewer) Tapped(ev *fyne.PointEvent) {
	if v.OnTapped == nil {
		return
	}
	s := v.pixelScale()
	if shape, ok := v.renderer.ShapeAt(gg.Pt(float64(ev.Position.X)*s, float64(ev.Position.Y)*s)); ok {
		v.OnTapped(shape)
	}
}

// pixelScale returns surface pixels per fyne unit.
func (v *Viewer) pixelScale() float64 {
	size := v.Size()
	if size.Width <= 0 {
		return 1
	}
	w, _ := v.renderer.Size()
	return float64(w) / float64(size.Width)
}

func (v *Viewer) draw(w, h int) image.Image {
	img, err := v.renderer.Render(w, h)
	if err != nil {
		floorplan.Logger().Warn("fyneview: draw failed", "err", err)
		return image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	}
	return img
}
