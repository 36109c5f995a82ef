// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan_test

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/floorplan"
	"github.com/gogpu/floorplan/recording"
)

const tolerance = 1e-9

func near(a, b gg.Point) bool {
	return math.Abs(a.X-b.X) <= tolerance && math.Abs(a.Y-b.Y) <= tolerance
}

func assertCommandTypes(t *testing.T, cmds []recording.Command, want []recording.CommandType) {
	t.Helper()
	if len(cmds) != len(want) {
		got := make([]recording.CommandType, len(cmds))
		for i, c := range cmds {
			got[i] = c.Type()
		}
		t.Fatalf("commands = %v, want %v", got, want)
	}
	for i, c := range cmds {
		if c.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, c.Type(), want[i])
		}
	}
}

// stubType is a ShapeType driven by a function, for registry tests.
type stubType struct {
	name string
	draw func(ctx floorplan.Context, s *floorplan.Shape) error
}

func (st *stubType) Name() string { return st.name }

func (st *stubType) Draw(ctx floorplan.Context, s *floorplan.Shape, _ *floorplan.Canvas) error {
	if st.draw == nil {
		return nil
	}
	return st.draw(ctx, s)
}

func (st *stubType) Center(s *floorplan.Shape) gg.Point { return s.Center }

func (st *stubType) Size(s *floorplan.Shape) floorplan.Size { return s.Size }

// markType draws one FillText with the shape ID, so tests can see which
// shapes were drawn and in what order.
func markType(name string) *stubType {
	return &stubType{name: name, draw: func(ctx floorplan.Context, s *floorplan.Shape) error {
		ctx.FillText(s.ID, 0, 0)
		return nil
	}}
}

var errDraw = errors.New("draw failed")

// scribble changes every piece of drawing state a shape type can touch.
func scribble(ctx floorplan.Context) {
	ctx.Translate(1000, 1000)
	ctx.SetFillStyle(gg.Solid(gg.Red))
	ctx.SetStrokeStyle(gg.Solid(gg.Blue))
	ctx.SetLineWidth(9)
	ctx.SetFont(floorplan.Font{Family: "monospace", Size: 40})
	ctx.SetTextAlign(floorplan.AlignEnd)
}

// failType scribbles over the drawing state, then fails.
func failType(name string) *stubType {
	return &stubType{name: name, draw: func(ctx floorplan.Context, _ *floorplan.Shape) error {
		scribble(ctx)
		return errDraw
	}}
}

// panicType scribbles over the drawing state, then panics.
func panicType(name string) *stubType {
	return &stubType{name: name, draw: func(ctx floorplan.Context, _ *floorplan.Shape) error {
		scribble(ctx)
		panic("kaboom")
	}}
}

// panicRoom is a room whose body scribbles over the drawing state, then
// panics while DrawRoom has its rotation saved.
func panicRoom(name string) *floorplan.Room {
	return floorplan.NewRoom(name, func(ctx floorplan.Context, _ *floorplan.Shape) error {
		scribble(ctx)
		panic("kaboom")
	})
}

// drawnIDs returns the text of every FillText command, in order.
func drawnIDs(cmds []recording.Command) []string {
	var ids []string
	for _, c := range recording.Filter(cmds, recording.CmdFillText) {
		ids = append(ids, c.(recording.FillTextCommand).Text)
	}
	return ids
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
