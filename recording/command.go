// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/floorplan"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave    CommandType = iota // Save current state
	CmdRestore                    // Restore previous state
	CmdTranslate
	CmdScale
	CmdRotate

	// Path commands
	CmdBeginPath
	CmdMoveTo
	CmdLineTo
	CmdClosePath

	// Drawing commands
	CmdClearRect
	CmdFill
	CmdStroke
	CmdFillRect
	CmdStrokeRect
	CmdFillText

	// Style commands
	CmdSetFillStyle
	CmdSetStrokeStyle
	CmdSetLineWidth
	CmdSetFont
	CmdSetTextAlign
	CmdSetTextBaseline
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:            "Save",
	CmdRestore:         "Restore",
	CmdTranslate:       "Translate",
	CmdScale:           "Scale",
	CmdRotate:          "Rotate",
	CmdBeginPath:       "BeginPath",
	CmdMoveTo:          "MoveTo",
	CmdLineTo:          "LineTo",
	CmdClosePath:       "ClosePath",
	CmdClearRect:       "ClearRect",
	CmdFill:            "Fill",
	CmdStroke:          "Stroke",
	CmdFillRect:        "FillRect",
	CmdStrokeRect:      "StrokeRect",
	CmdFillText:        "FillText",
	CmdSetFillStyle:    "SetFillStyle",
	CmdSetStrokeStyle:  "SetStrokeStyle",
	CmdSetLineWidth:    "SetLineWidth",
	CmdSetFont:         "SetFont",
	CmdSetTextAlign:    "SetTextAlign",
	CmdSetTextBaseline: "SetTextBaseline",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Rect is an axis-aligned rectangle in user space.
type Rect struct {
	X, Y, W, H float64
}

// Segment is one element of a recorded path, in device space.
type Segment struct {
	Type CommandType // CmdMoveTo, CmdLineTo or CmdClosePath
	Pt   gg.Point
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current drawing state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved drawing state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TranslateCommand translates user space.
type TranslateCommand struct{ X, Y float64 }

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// ScaleCommand scales user space.
type ScaleCommand struct{ X, Y float64 }

// Type implements Command.
func (ScaleCommand) Type() CommandType { return CmdScale }

// RotateCommand rotates user space. Angle is in radians.
type RotateCommand struct{ Angle float64 }

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand clears the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand starts a new subpath. X and Y are in user space.
type MoveToCommand struct{ X, Y float64 }

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a line to the current subpath. X and Y are in user space.
type LineToCommand struct{ X, Y float64 }

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// ClearRectCommand clears a rectangle to transparent.
type ClearRectCommand struct{ Rect Rect }

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// FillCommand fills the current path.
type FillCommand struct {
	// Path is a snapshot of the current path in device space.
	Path []Segment
	// Brush is the fill style in effect.
	Brush gg.Brush
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes the current path.
type StrokeCommand struct {
	// Path is a snapshot of the current path in device space.
	Path []Segment
	// Brush is the stroke style in effect.
	Brush gg.Brush
	// LineWidth is the line width in effect, in user space.
	LineWidth float64
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	Rect      Rect
	Brush     gg.Brush
	Transform gg.Matrix
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeRectCommand strokes a rectangle.
type StrokeRectCommand struct {
	Rect      Rect
	Brush     gg.Brush
	LineWidth float64
	Transform gg.Matrix
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// FillTextCommand draws text.
type FillTextCommand struct {
	Text      string
	X, Y      float64
	Brush     gg.Brush
	Font      floorplan.Font
	Align     floorplan.TextAlign
	Baseline  floorplan.TextBaseline
	Transform gg.Matrix
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetFillStyleCommand sets the fill brush.
type SetFillStyleCommand struct{ Brush gg.Brush }

// Type implements Command.
func (SetFillStyleCommand) Type() CommandType { return CmdSetFillStyle }

// SetStrokeStyleCommand sets the stroke brush.
type SetStrokeStyleCommand struct{ Brush gg.Brush }

// Type implements Command.
func (SetStrokeStyleCommand) Type() CommandType { return CmdSetStrokeStyle }

// SetLineWidthCommand sets the stroke line width.
type SetLineWidthCommand struct{ Width float64 }

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// SetFontCommand sets the text font.
type SetFontCommand struct{ Font floorplan.Font }

// Type implements Command.
func (SetFontCommand) Type() CommandType { return CmdSetFont }

// SetTextAlignCommand sets the horizontal text anchor.
type SetTextAlignCommand struct{ Align floorplan.TextAlign }

// Type implements Command.
func (SetTextAlignCommand) Type() CommandType { return CmdSetTextAlign }

// SetTextBaselineCommand sets the vertical text anchor.
type SetTextBaselineCommand struct{ Baseline floorplan.TextBaseline }

// Type implements Command.
func (SetTextBaselineCommand) Type() CommandType { return CmdSetTextBaseline }
