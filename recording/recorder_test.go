// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/floorplan"
)

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)

	if w, h := rec.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %d×%d, want 800×600", w, h)
	}
	if rec.Transform() != gg.Identity() {
		t.Errorf("Transform() = %+v, want identity", rec.Transform())
	}
	if rec.LineWidth() != 1 {
		t.Errorf("LineWidth() = %v, want 1", rec.LineWidth())
	}
	if rec.FillStyle() != gg.Brush(gg.Solid(gg.Black)) {
		t.Errorf("FillStyle() = %v, want black", rec.FillStyle())
	}
	if len(rec.Commands()) != 0 {
		t.Errorf("Commands() = %d, want 0", len(rec.Commands()))
	}

	ctx, err := rec.Context2D()
	if err != nil || ctx != floorplan.Context(rec) {
		t.Errorf("Context2D() = %v, %v, want the recorder", ctx, err)
	}
}

func TestRecorderCommandTypes(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Save()
	rec.Translate(1, 2)
	rec.Scale(2, 2)
	rec.Rotate(0.5)
	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.LineTo(1, 1)
	rec.ClosePath()
	rec.Fill()
	rec.Stroke()
	rec.FillRect(0, 0, 1, 1)
	rec.StrokeRect(0, 0, 1, 1)
	rec.FillText("x", 0, 0)
	rec.ClearRect(0, 0, 10, 10)
	rec.SetFillStyle(gg.Solid(gg.Red))
	rec.SetStrokeStyle(gg.Solid(gg.Blue))
	rec.SetLineWidth(3)
	rec.SetFont(floorplan.Font{Family: "serif", Size: 14})
	rec.SetTextAlign(floorplan.AlignEnd)
	rec.SetTextBaseline(floorplan.BaselineTop)
	rec.Restore()

	want := []CommandType{
		CmdSave, CmdTranslate, CmdScale, CmdRotate,
		CmdBeginPath, CmdMoveTo, CmdLineTo, CmdClosePath,
		CmdFill, CmdStroke, CmdFillRect, CmdStrokeRect, CmdFillText, CmdClearRect,
		CmdSetFillStyle, CmdSetStrokeStyle, CmdSetLineWidth, CmdSetFont,
		CmdSetTextAlign, CmdSetTextBaseline, CmdRestore,
	}
	cmds := rec.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("recorded %d commands, want %d", len(cmds), len(want))
	}
	for i, c := range cmds {
		if c.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, c.Type(), want[i])
		}
	}
}

func TestRecorderSaveRestore(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.SetLineWidth(2)
	rec.SetFillStyle(gg.Solid(gg.Red))

	rec.Save()
	rec.Translate(5, 5)
	rec.SetLineWidth(9)
	rec.SetFillStyle(gg.Solid(gg.Blue))
	rec.SetFont(floorplan.Font{Family: "mono", Size: 20})
	if rec.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", rec.Depth())
	}
	rec.Restore()

	if rec.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", rec.Depth())
	}
	if rec.Transform() != gg.Identity() {
		t.Errorf("Transform() = %+v, want identity", rec.Transform())
	}
	if rec.LineWidth() != 2 {
		t.Errorf("LineWidth() = %v, want 2", rec.LineWidth())
	}
	if rec.FillStyle() != gg.Brush(gg.Solid(gg.Red)) {
		t.Errorf("FillStyle() = %v, want red", rec.FillStyle())
	}
	if rec.Font().Family != "sans-serif" {
		t.Errorf("Font() = %+v, want sans-serif", rec.Font())
	}
}

func TestRecorderRestoreEmptyStack(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.SetLineWidth(4)
	rec.Restore()

	if rec.LineWidth() != 4 {
		t.Errorf("LineWidth() = %v, want 4", rec.LineWidth())
	}
	if got := Count(rec.Commands(), CmdRestore); got != 1 {
		t.Errorf("Restore commands = %d, want 1", got)
	}
}

func TestRecorderTransformOrder(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.Translate(10, 20)
	rec.Scale(2, 3)

	// Later transforms apply first, as on an HTML canvas.
	got := rec.Transform().TransformPoint(gg.Pt(1, 1))
	if got != gg.Pt(12, 23) {
		t.Errorf("transformed point = %v, want (12,23)", got)
	}
}

func TestRecorderPathDeviceSpace(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.Translate(10, 10)
	rec.Rotate(math.Pi / 2)
	rec.BeginPath()
	rec.MoveTo(5, 0)
	rec.LineTo(5, 5)
	rec.ClosePath()

	path := rec.Path()
	if len(path) != 3 {
		t.Fatalf("Path() has %d segments, want 3", len(path))
	}
	if path[0].Type != CmdMoveTo || path[1].Type != CmdLineTo || path[2].Type != CmdClosePath {
		t.Errorf("segment types = %v %v %v", path[0].Type, path[1].Type, path[2].Type)
	}
	if math.Abs(path[0].Pt.X-10) > 1e-9 || math.Abs(path[0].Pt.Y-15) > 1e-9 {
		t.Errorf("first point = %v, want (10,15)", path[0].Pt)
	}

	rec.BeginPath()
	if len(rec.Path()) != 0 {
		t.Error("BeginPath should clear the path")
	}
}

func TestRecorderFillKeepsPath(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.LineTo(4, 0)
	rec.Fill()
	rec.Stroke()

	fills := Filter(rec.Commands(), CmdFill)
	strokes := Filter(rec.Commands(), CmdStroke)
	if len(fills) != 1 || len(strokes) != 1 {
		t.Fatalf("fills = %d, strokes = %d, want 1 and 1", len(fills), len(strokes))
	}
	if got := len(fills[0].(FillCommand).Path); got != 2 {
		t.Errorf("fill path = %d segments, want 2", got)
	}
	if got := len(strokes[0].(StrokeCommand).Path); got != 2 {
		t.Errorf("stroke path = %d segments, want 2", got)
	}
}

func TestRecorderSnapshotsStyle(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.SetStrokeStyle(gg.Solid(gg.Red))
	rec.SetLineWidth(5)
	rec.Translate(3, 4)
	rec.StrokeRect(0, 0, 2, 2)

	cmd := Filter(rec.Commands(), CmdStrokeRect)[0].(StrokeRectCommand)
	if cmd.LineWidth != 5 {
		t.Errorf("LineWidth = %v, want 5", cmd.LineWidth)
	}
	if cmd.Brush != gg.Brush(gg.Solid(gg.Red)) {
		t.Errorf("Brush = %v, want red", cmd.Brush)
	}
	if cmd.Transform != gg.Translate(3, 4) {
		t.Errorf("Transform = %+v, want translate(3,4)", cmd.Transform)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.SetLineWidth(6)
	rec.FillRect(0, 0, 1, 1)
	rec.Reset()

	if len(rec.Commands()) != 0 {
		t.Errorf("Commands() = %d after Reset, want 0", len(rec.Commands()))
	}
	if rec.LineWidth() != 6 {
		t.Error("Reset should keep the drawing state")
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		t    CommandType
		want string
	}{
		{CmdSave, "Save"},
		{CmdFillRect, "FillRect"},
		{CmdSetTextBaseline, "SetTextBaseline"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}
