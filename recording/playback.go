// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import "github.com/gogpu/floorplan"

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any floorplan.Context.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording surface.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording surface.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording onto ctx, call for call.
func (r *Recording) Playback(ctx floorplan.Context) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			ctx.Save()
		case RestoreCommand:
			ctx.Restore()
		case TranslateCommand:
			ctx.Translate(c.X, c.Y)
		case ScaleCommand:
			ctx.Scale(c.X, c.Y)
		case RotateCommand:
			ctx.Rotate(c.Angle)
		case BeginPathCommand:
			ctx.BeginPath()
		case MoveToCommand:
			ctx.MoveTo(c.X, c.Y)
		case LineToCommand:
			ctx.LineTo(c.X, c.Y)
		case ClosePathCommand:
			ctx.ClosePath()
		case ClearRectCommand:
			ctx.ClearRect(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
		case FillCommand:
			ctx.Fill()
		case StrokeCommand:
			ctx.Stroke()
		case FillRectCommand:
			ctx.FillRect(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
		case StrokeRectCommand:
			ctx.StrokeRect(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
		case FillTextCommand:
			ctx.FillText(c.Text, c.X, c.Y)
		case SetFillStyleCommand:
			ctx.SetFillStyle(c.Brush)
		case SetStrokeStyleCommand:
			ctx.SetStrokeStyle(c.Brush)
		case SetLineWidthCommand:
			ctx.SetLineWidth(c.Width)
		case SetFontCommand:
			ctx.SetFont(c.Font)
		case SetTextAlignCommand:
			ctx.SetTextAlign(c.Align)
		case SetTextBaselineCommand:
			ctx.SetTextBaseline(c.Baseline)
		}
	}
}

// Count returns how many recorded commands have the given type.
func (r *Recording) Count(t CommandType) int {
	return Count(r.commands, t)
}

// Count returns how many commands in cmds have the given type.
func Count(cmds []Command, t CommandType) int {
	n := 0
	for _, c := range cmds {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Filter returns the commands in cmds that have the given type.
func Filter(cmds []Command, t CommandType) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Type() == t {
			out = append(out, c)
		}
	}
	return out
}
