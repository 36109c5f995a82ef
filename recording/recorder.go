// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/floorplan"
)

// Recorder is a floorplan.Context that records every call as a Command.
//
// Besides the command log, Recorder tracks the drawing state a real context
// would have (transform, styles, font, current path) so that tests can
// inspect it and so that recorded Fill and Stroke commands carry a snapshot
// of what they paint.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	canvas, _ := floorplan.New(cfg, floorplan.Surfaces{"plan": rec})
//	r := rec.FinishRecording()
//	r.Playback(otherContext)
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	state recorderState
	path  []Segment

	// State stack
	stateStack []recorderState
}

// recorderState stores the drawing state for Save/Restore.
type recorderState struct {
	fillBrush   gg.Brush
	strokeBrush gg.Brush
	lineWidth   float64
	font        floorplan.Font
	align       floorplan.TextAlign
	baseline    floorplan.TextBaseline
	transform   gg.Matrix
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with black fill and stroke, a 1px line width, a 10px
// sans-serif font, and the identity transform.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
		state: recorderState{
			fillBrush:   gg.Solid(gg.Black),
			strokeBrush: gg.Solid(gg.Black),
			lineWidth:   1.0,
			font:        floorplan.Font{Family: "sans-serif", Size: 10},
			transform:   gg.Identity(),
		},
		stateStack: make([]recorderState, 0, 8),
	}
}

// Size implements floorplan.Surface.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// Context2D implements floorplan.Surface. A Recorder is its own context.
func (r *Recorder) Context2D() (floorplan.Context, error) {
	return r, nil
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards all recorded commands. The drawing state is kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. Later use of the Recorder does not affect it.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: append([]Command(nil), r.commands...),
	}
}

// --------------------------------------------------------------------------
// State inspection
// --------------------------------------------------------------------------

// Transform returns the current user-to-device transform.
func (r *Recorder) Transform() gg.Matrix { return r.state.transform }

// FillStyle returns the current fill brush.
func (r *Recorder) FillStyle() gg.Brush { return r.state.fillBrush }

// StrokeStyle returns the current stroke brush.
func (r *Recorder) StrokeStyle() gg.Brush { return r.state.strokeBrush }

// LineWidth returns the current line width.
func (r *Recorder) LineWidth() float64 { return r.state.lineWidth }

// Font returns the current font.
func (r *Recorder) Font() floorplan.Font { return r.state.font }

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.stateStack) }

// Path returns a copy of the current path in device space.
func (r *Recorder) Path() []Segment {
	return append([]Segment(nil), r.path...)
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save pushes the current drawing state.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.state)
	r.commands = append(r.commands, SaveCommand{})
}

// Restore pops the previously saved drawing state.
// If the state stack is empty, the state is unchanged.
func (r *Recorder) Restore() {
	if n := len(r.stateStack); n > 0 {
		r.state = r.stateStack[n-1]
		r.stateStack = r.stateStack[:n-1]
	}
	r.commands = append(r.commands, RestoreCommand{})
}

// Translate implements floorplan.Context.
func (r *Recorder) Translate(x, y float64) {
	r.state.transform = r.state.transform.Multiply(gg.Translate(x, y))
	r.commands = append(r.commands, TranslateCommand{X: x, Y: y})
}

// Scale implements floorplan.Context.
func (r *Recorder) Scale(sx, sy float64) {
	r.state.transform = r.state.transform.Multiply(gg.Scale(sx, sy))
	r.commands = append(r.commands, ScaleCommand{X: sx, Y: sy})
}

// Rotate implements floorplan.Context.
func (r *Recorder) Rotate(angle float64) {
	r.state.transform = r.state.transform.Multiply(gg.Rotate(angle))
	r.commands = append(r.commands, RotateCommand{Angle: angle})
}

// --------------------------------------------------------------------------
// Paths
// --------------------------------------------------------------------------

// BeginPath implements floorplan.Context.
func (r *Recorder) BeginPath() {
	r.path = r.path[:0]
	r.commands = append(r.commands, BeginPathCommand{})
}

// MoveTo implements floorplan.Context.
func (r *Recorder) MoveTo(x, y float64) {
	r.path = append(r.path, Segment{Type: CmdMoveTo, Pt: r.state.transform.TransformPoint(gg.Pt(x, y))})
	r.commands = append(r.commands, MoveToCommand{X: x, Y: y})
}

// LineTo implements floorplan.Context.
func (r *Recorder) LineTo(x, y float64) {
	r.path = append(r.path, Segment{Type: CmdLineTo, Pt: r.state.transform.TransformPoint(gg.Pt(x, y))})
	r.commands = append(r.commands, LineToCommand{X: x, Y: y})
}

// ClosePath implements floorplan.Context.
func (r *Recorder) ClosePath() {
	r.path = append(r.path, Segment{Type: CmdClosePath})
	r.commands = append(r.commands, ClosePathCommand{})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// ClearRect implements floorplan.Context.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.commands = append(r.commands, ClearRectCommand{Rect: Rect{X: x, Y: y, W: w, H: h}})
}

// Fill implements floorplan.Context.
func (r *Recorder) Fill() {
	r.commands = append(r.commands, FillCommand{Path: r.Path(), Brush: r.state.fillBrush})
}

// Stroke implements floorplan.Context.
func (r *Recorder) Stroke() {
	r.commands = append(r.commands, StrokeCommand{
		Path:      r.Path(),
		Brush:     r.state.strokeBrush,
		LineWidth: r.state.lineWidth,
	})
}

// FillRect implements floorplan.Context.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.commands = append(r.commands, FillRectCommand{
		Rect:      Rect{X: x, Y: y, W: w, H: h},
		Brush:     r.state.fillBrush,
		Transform: r.state.transform,
	})
}

// StrokeRect implements floorplan.Context.
func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.commands = append(r.commands, StrokeRectCommand{
		Rect:      Rect{X: x, Y: y, W: w, H: h},
		Brush:     r.state.strokeBrush,
		LineWidth: r.state.lineWidth,
		Transform: r.state.transform,
	})
}

// FillText implements floorplan.Context.
func (r *Recorder) FillText(s string, x, y float64) {
	r.commands = append(r.commands, FillTextCommand{
		Text:      s,
		X:         x,
		Y:         y,
		Brush:     r.state.fillBrush,
		Font:      r.state.font,
		Align:     r.state.align,
		Baseline:  r.state.baseline,
		Transform: r.state.transform,
	})
}

// --------------------------------------------------------------------------
// Styles
// --------------------------------------------------------------------------

// SetFillStyle implements floorplan.Context.
func (r *Recorder) SetFillStyle(b gg.Brush) {
	r.state.fillBrush = b
	r.commands = append(r.commands, SetFillStyleCommand{Brush: b})
}

// SetStrokeStyle implements floorplan.Context.
func (r *Recorder) SetStrokeStyle(b gg.Brush) {
	r.state.strokeBrush = b
	r.commands = append(r.commands, SetStrokeStyleCommand{Brush: b})
}

// SetLineWidth implements floorplan.Context.
func (r *Recorder) SetLineWidth(w float64) {
	r.state.lineWidth = w
	r.commands = append(r.commands, SetLineWidthCommand{Width: w})
}

// SetFont implements floorplan.Context.
func (r *Recorder) SetFont(f floorplan.Font) {
	r.state.font = f
	r.commands = append(r.commands, SetFontCommand{Font: f})
}

// SetTextAlign implements floorplan.Context.
func (r *Recorder) SetTextAlign(a floorplan.TextAlign) {
	r.state.align = a
	r.commands = append(r.commands, SetTextAlignCommand{Align: a})
}

// SetTextBaseline implements floorplan.Context.
func (r *Recorder) SetTextBaseline(b floorplan.TextBaseline) {
	r.state.baseline = b
	r.commands = append(r.commands, SetTextBaselineCommand{Baseline: b})
}

// Compile-time checks.
var (
	_ floorplan.Context = (*Recorder)(nil)
	_ floorplan.Surface = (*Recorder)(nil)
)
