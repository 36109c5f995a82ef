// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import "github.com/gogpu/gg"

// TextAlign is the horizontal anchor of text drawn with FillText.
type TextAlign int

const (
	// AlignStart places the text origin at the left edge of the text.
	AlignStart TextAlign = iota
	// AlignCenter places the text origin at the horizontal center.
	AlignCenter
	// AlignEnd places the text origin at the right edge of the text.
	AlignEnd
)

// TextBaseline is the vertical anchor of text drawn with FillText.
type TextBaseline int

const (
	// BaselineAlphabetic places the text origin on the alphabetic baseline.
	BaselineAlphabetic TextBaseline = iota
	// BaselineTop places the text origin at the top of the line box.
	BaselineTop
	// BaselineMiddle places the text origin at the vertical middle.
	BaselineMiddle
	// BaselineBottom places the text origin at the bottom of the line box.
	BaselineBottom
)

// Font selects the face used by FillText. Size is in pixels.
type Font struct {
	Family string
	Size   float64
}

// Context is the immediate-mode 2D drawing context a Canvas renders into.
// Its model follows the HTML canvas 2D context:
//
//   - Save and Restore push and pop the whole drawing state: transform,
//     fill and stroke styles, line width, font, and text alignment.
//   - Path coordinates, rectangles, text positions, and gradient endpoints
//     are interpreted in the current user space.
//   - Fill and Stroke do not consume the current path; BeginPath clears it.
//   - FillRect and StrokeRect do not touch the current path.
//
// Styles are gg brushes: a gg.SolidBrush or a *gg.LinearGradientBrush.
// Implementations ignore brushes they cannot render.
type Context interface {
	ClearRect(x, y, w, h float64)

	Save()
	Restore()

	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(angle float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill()
	Stroke()

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillText(s string, x, y float64)

	SetFillStyle(b gg.Brush)
	SetStrokeStyle(b gg.Brush)
	SetLineWidth(w float64)
	SetFont(f Font)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)
}

// Surface is a drawing target that a Canvas can be attached to.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Context2D returns the surface's 2D drawing context, or an error if the
	// surface does not support immediate-mode 2D drawing.
	Context2D() (Context, error)
}

// SurfaceProvider resolves surface identifiers to surfaces.
type SurfaceProvider interface {
	Surface(id string) (Surface, bool)
}

// Surfaces is a map-backed SurfaceProvider.
type Surfaces map[string]Surface

// Surface implements SurfaceProvider.
func (s Surfaces) Surface(id string) (Surface, bool) {
	sf, ok := s[id]
	return sf, ok && sf != nil
}
