// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package recording provides a command-based drawing recorder for floorplan.
//
// A Recorder is both a floorplan.Surface and a floorplan.Context. Every
// drawing call is captured as a typed Command, which makes it possible to
// inspect exactly what a Canvas or a ShapeType drew without rasterizing,
// and to replay the drawing onto another context later.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	canvas, err := floorplan.New(floorplan.Config{CanvasID: "plan"},
//	    floorplan.Surfaces{"plan": rec})
//	...
//	r := rec.FinishRecording()
//	fmt.Println(r.Count(recording.CmdFillRect), "rectangles")
//
// # State Tracking
//
// The Recorder keeps the drawing state a real context would have: the
// transform, fill and stroke styles, line width, font, text alignment, and
// the current path. Save and Restore push and pop all of it. Fill and
// Stroke commands carry a snapshot of the path in device space; FillRect,
// StrokeRect, and FillText commands carry the transform in effect. Tests
// can assert on geometry in screen pixels directly.
//
// # Playback
//
// Recording.Playback replays the commands call for call onto any
// floorplan.Context, such as a ggsurface.Surface:
//
//	r.Playback(surface)
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A Recording is immutable and can
// be played back from multiple goroutines.
package recording
