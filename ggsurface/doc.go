// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsurface draws floorplans with gg.
//
// A Surface adapts a *gg.Context to the floorplan.Context model, which
// follows the HTML canvas 2D context, and doubles as the floorplan.Surface
// a Canvas attaches to:
//
//	s := ggsurface.New(800, 600, ggsurface.WithBackground(gg.White))
//	canvas, err := floorplan.New(floorplan.Config{CanvasID: "plan"},
//	    floorplan.Surfaces{"plan": s})
//	...
//	err = s.SavePNG("plan.png")
//
// Text is drawn with faces from a Fonts set. By default every family
// resolves to the embedded Go Regular font.
package ggsurface
