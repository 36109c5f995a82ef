// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/floorplan"
)

// Surface is a floorplan.Surface and floorplan.Context backed by a
// *gg.Context.
//
// gg keeps only the transform, clip, and mask on its Push/Pop stack and
// shares one brush between fill and stroke, so Surface keeps the rest of
// the canvas drawing state itself: separate fill and stroke styles, line
// width, font, and text alignment, all saved and restored with Save and
// Restore. It also keeps a device-space copy of the current path so that
// Fill and Stroke leave the path in place and FillRect and StrokeRect do
// not disturb it.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	dc         *gg.Context
	fonts      *Fonts
	background gg.RGBA

	state drawState
	stack []drawState
	path  []segment

	err error
}

// drawState is the part of the drawing state gg does not track.
type drawState struct {
	fill      gg.Brush
	stroke    gg.Brush
	lineWidth float64
	font      floorplan.Font
	align     floorplan.TextAlign
	baseline  floorplan.TextBaseline
}

type segmentKind uint8

const (
	segMove segmentKind = iota
	segLine
	segClose
)

// segment is one element of the current path in device space.
type segment struct {
	kind segmentKind
	pt   gg.Point
}

// New creates a width × height surface.
func New(width, height int, opts ...Option) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dc := o.context
	if dc == nil {
		dc = gg.NewContext(width, height)
	}
	fonts := o.fonts
	if fonts == nil {
		// Go Regular is embedded; a parse failure leaves text undrawn.
		fonts, _ = DefaultFonts()
	}

	return &Surface{
		dc:         dc,
		fonts:      fonts,
		background: o.background,
		state: drawState{
			fill:      gg.Solid(gg.Black),
			stroke:    gg.Solid(gg.Black),
			lineWidth: 1,
			font:      floorplan.Font{Family: "sans-serif", Size: 10},
		},
	}
}

// GG returns the underlying gg context.
func (s *Surface) GG() *gg.Context { return s.dc }

// Size implements floorplan.Surface.
func (s *Surface) Size() (width, height int) {
	return s.dc.Width(), s.dc.Height()
}

// Context2D implements floorplan.Surface. A Surface is its own context.
func (s *Surface) Context2D() (floorplan.Context, error) {
	return s, nil
}

// Resize changes the surface dimensions, discarding its pixels.
func (s *Surface) Resize(width, height int) error {
	s.path = s.path[:0]
	return s.dc.Resize(width, height)
}

// Err returns the first rendering error reported by gg since the last
// call to Err, and clears it.
func (s *Surface) Err() error {
	err := s.err
	s.err = nil
	return err
}

func (s *Surface) setErr(err error) {
	if err != nil && s.err == nil {
		s.err = err
		floorplan.Logger().Debug("ggsurface: render error", "err", err)
	}
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// EncodePNG writes the surface as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// Save implements floorplan.Context.
func (s *Surface) Save() {
	s.dc.Push()
	s.stack = append(s.stack, s.state)
}

// Restore implements floorplan.Context. Unbalanced calls are ignored.
func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.dc.Pop()
	s.state = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

// Translate implements floorplan.Context.
func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }

// Scale implements floorplan.Context.
func (s *Surface) Scale(sx, sy float64) { s.dc.Scale(sx, sy) }

// Rotate implements floorplan.Context.
func (s *Surface) Rotate(angle float64) { s.dc.Rotate(angle) }

// SetFillStyle implements floorplan.Context.
func (s *Surface) SetFillStyle(b gg.Brush) {
	if b != nil {
		s.state.fill = b
	}
}

// SetStrokeStyle implements floorplan.Context.
func (s *Surface) SetStrokeStyle(b gg.Brush) {
	if b != nil {
		s.state.stroke = b
	}
}

// SetLineWidth implements floorplan.Context.
func (s *Surface) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		s.state.lineWidth = w
	}
}

// SetFont implements floorplan.Context.
func (s *Surface) SetFont(f floorplan.Font) { s.state.font = f }

// SetTextAlign implements floorplan.Context.
func (s *Surface) SetTextAlign(a floorplan.TextAlign) { s.state.align = a }

// SetTextBaseline implements floorplan.Context.
func (s *Surface) SetTextBaseline(b floorplan.TextBaseline) { s.state.baseline = b }

// --------------------------------------------------------------------------
// Paths
// --------------------------------------------------------------------------

// BeginPath implements floorplan.Context.
func (s *Surface) BeginPath() {
	s.path = s.path[:0]
	s.dc.ClearPath()
}

// MoveTo implements floorplan.Context.
func (s *Surface) MoveTo(x, y float64) {
	s.path = append(s.path, segment{kind: segMove, pt: s.device(x, y)})
	s.dc.MoveTo(x, y)
}

// LineTo implements floorplan.Context.
func (s *Surface) LineTo(x, y float64) {
	s.path = append(s.path, segment{kind: segLine, pt: s.device(x, y)})
	s.dc.LineTo(x, y)
}

// ClosePath implements floorplan.Context.
func (s *Surface) ClosePath() {
	s.path = append(s.path, segment{kind: segClose})
	s.dc.ClosePath()
}

// Fill implements floorplan.Context. The path is kept.
func (s *Surface) Fill() {
	s.dc.SetFillBrush(s.deviceBrush(s.state.fill))
	s.setErr(s.dc.FillPreserve())
}

// Stroke implements floorplan.Context. The path is kept.
func (s *Surface) Stroke() {
	s.dc.SetStrokeBrush(s.deviceBrush(s.state.stroke))
	s.dc.SetLineWidth(s.state.lineWidth)
	s.setErr(s.dc.StrokePreserve())
}

// device maps a user-space point to device space.
func (s *Surface) device(x, y float64) gg.Point {
	dx, dy := s.dc.TransformPoint(x, y)
	return gg.Pt(dx, dy)
}

// deviceBrush maps gradient endpoints into device space, since gg samples
// brushes at device pixels.
func (s *Surface) deviceBrush(b gg.Brush) gg.Brush {
	lg, ok := b.(*gg.LinearGradientBrush)
	if !ok {
		return b
	}
	m := s.dc.GetTransform()
	out := *lg
	out.Start = m.TransformPoint(lg.Start)
	out.End = m.TransformPoint(lg.End)
	out.Stops = append([]gg.ColorStop(nil), lg.Stops...)
	return &out
}

// restorePath rebuilds gg's current path from the device-space copy.
func (s *Surface) restorePath() {
	s.dc.ClearPath()
	if len(s.path) == 0 {
		return
	}
	s.dc.Push()
	s.dc.Identity()
	for _, seg := range s.path {
		switch seg.kind {
		case segMove:
			s.dc.MoveTo(seg.pt.X, seg.pt.Y)
		case segLine:
			s.dc.LineTo(seg.pt.X, seg.pt.Y)
		case segClose:
			s.dc.ClosePath()
		}
	}
	s.dc.Pop()
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// FillRect implements floorplan.Context.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetFillBrush(s.deviceBrush(s.state.fill))
	s.setErr(s.dc.Fill())
	s.restorePath()
}

// StrokeRect implements floorplan.Context.
func (s *Surface) StrokeRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetStrokeBrush(s.deviceBrush(s.state.stroke))
	s.dc.SetLineWidth(s.state.lineWidth)
	s.setErr(s.dc.Stroke())
	s.restorePath()
}

// ClearRect implements floorplan.Context. The rectangle's device-space
// bounding box is reset to the background color.
func (s *Surface) ClearRect(x, y, w, h float64) {
	p0, p1 := s.device(x, y), s.device(x+w, y)
	p2, p3 := s.device(x+w, y+h), s.device(x, y+h)
	minX := math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X))
	maxX := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	minY := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	maxY := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))

	width, height := s.Size()
	x0 := max(0, int(math.Floor(minX)))
	y0 := max(0, int(math.Floor(minY)))
	x1 := min(width, int(math.Ceil(maxX)))
	y1 := min(height, int(math.Ceil(maxY)))

	if x0 == 0 && y0 == 0 && x1 == width && y1 == height {
		s.dc.ClearWithColor(s.background)
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.dc.SetPixel(px, py, s.background)
		}
	}
}

// FillText implements floorplan.Context. Text is anchored at (x, y)
// according to the current alignment and baseline.
//
// gg draws glyphs in device space, so the anchor is transformed and the
// font size scaled by the current transform. Glyphs are not rotated or
// skewed. Text is drawn in one solid color, the fill style sampled at the
// anchor.
func (s *Surface) FillText(str string, x, y float64) {
	if str == "" || s.fonts == nil {
		return
	}
	m := s.dc.GetTransform()
	scale := math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
	if scale == 0 || math.IsNaN(scale) {
		return
	}
	font := s.state.font
	if font.Size <= 0 {
		font.Size = 10
	}
	font.Size *= scale
	at := s.device(x, y)

	s.dc.SetFont(s.fonts.Face(font))
	s.dc.SetFillBrush(gg.Solid(s.deviceBrush(s.state.fill).ColorAt(at.X, at.Y)))
	s.dc.DrawStringAnchored(str, at.X, at.Y, anchorX(s.state.align), anchorY(s.state.baseline))
}

func anchorX(a floorplan.TextAlign) float64 {
	switch a {
	case floorplan.AlignCenter:
		return 0.5
	case floorplan.AlignEnd:
		return 1
	default:
		return 0
	}
}

// anchorY converts a baseline to gg's vertical anchor, where 0 puts the
// baseline at y and 1 puts the top of the line box at y.
func anchorY(b floorplan.TextBaseline) float64 {
	switch b {
	case floorplan.BaselineTop:
		return 1
	case floorplan.BaselineMiddle:
		return 0.5
	default:
		return 0
	}
}

// Compile-time checks.
var (
	_ floorplan.Context = (*Surface)(nil)
	_ floorplan.Surface = (*Surface)(nil)
)
