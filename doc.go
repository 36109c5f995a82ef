// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package floorplan renders interactive 2D floorplans.
//
// # Overview
//
// A Canvas draws a list of room shapes over a multi-level reference grid on
// any surface that provides an immediate-mode 2D Context, and keeps a
// pan/zoom View that input handlers drive. It is built on gg and renders
// through gg's software rasterizer via the ggsurface package.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/floorplan"
//	    "github.com/gogpu/floorplan/ggsurface"
//	)
//
//	surface := ggsurface.New(800, 600)
//	canvas, err := floorplan.New(floorplan.Config{
//	    CanvasID: "plan",
//	    Shapes: []floorplan.Shape{{
//	        ID: "kitchen", Type: floorplan.RectRoomType, Label: "Kitchen",
//	        Center: gg.Pt(200, 150), Size: floorplan.Size{Length: 160, Width: 120},
//	    }},
//	}, floorplan.Surfaces{"plan": surface})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	canvas.ScaleAtPoint(2, gg.Pt(400, 300))
//	surface.SavePNG("plan.png")
//
// # Coordinate System
//
// Shapes are authored in world space. The View maps a world point p to the
// screen point Offset + p*Zoom. Screen space has its origin at the top-left
// corner of the surface, with y increasing down. Shape rotations are in
// degrees.
//
// # Grid
//
// The grid shows only the configured spacings that are at least
// GridMinPixels apart on screen, finest first, one level per configured
// color. Zooming out drops fine levels and brings in coarse ones.
//
// # Shape Types
//
// Each Shape names a ShapeType registered on the canvas. The built-in room
// types are rect-room, vaulted-room, cathedral-room, and l-shaped-room; more
// can be added with RegisterShapeType, typically composed on DrawRoom.
// Shapes of unregistered types are skipped. A shape type that fails or
// panics is logged and does not affect the other shapes.
//
// # Input
//
// The input package turns drag, pinch, and wheel gestures into
// TranslateByScreenDelta and ScaleAtPoint calls. integration/fyneview hosts
// a canvas in a fyne window.
package floorplan
