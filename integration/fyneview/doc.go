// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fyneview hosts a floorplan canvas in a fyne window.
//
// The data flow is:
//
//	fyne input -> input.Gestures -> floorplan.Canvas -> ggsurface (CPU) -> fyne Raster
//
// # Usage
//
//	a := app.New()
//	w := a.NewWindow("Floorplan")
//	viewer, err := fyneview.NewViewer(cfg, fyne.NewSize(800, 600))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.SetContent(viewer)
//	w.ShowAndRun()
//
// The Renderer does the toolkit-independent work and can be driven
// directly, for example from tests or another toolkit.
//
// # Thread Safety
//
// fyne renders and delivers events on different goroutines. Renderer
// serializes access to the canvas; use Viewer.Update or Renderer.Do to
// change the floorplan after the viewer is shown.
package fyneview
