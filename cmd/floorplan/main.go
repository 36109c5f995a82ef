// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command floorplan renders a floorplan document.
//
// With -png the plan is rendered headless to a PNG file; otherwise it is
// shown in a window where dragging pans and the scroll wheel zooms.
//
//	floorplan -doc house.json -png house.png
//	floorplan -doc house.json
//
// Without -doc a built-in sample plan is used.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/gogpu/gg"

	"github.com/gogpu/floorplan"
	"github.com/gogpu/floorplan/ggsurface"
	"github.com/gogpu/floorplan/integration/fyneview"
)

//go:embed sample.json
var sample []byte

func main() {
	var (
		doc     = flag.String("doc", "", "floorplan document (JSON); built-in sample if empty")
		output  = flag.String("png", "", "render to this PNG file instead of opening a window")
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		verbose = flag.Bool("v", false, "log rendering details")
	)
	flag.Parse()

	if *verbose {
		floorplan.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := loadConfig(*doc)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	if *output != "" {
		if err := renderPNG(cfg, *width, *height, *output); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
		log.Printf("Floorplan saved to %s (%dx%d)\n", *output, *width, *height)
		return
	}

	if err := show(cfg, *width, *height); err != nil {
		log.Fatalf("Failed to open viewer: %v", err)
	}
}

func loadConfig(path string) (floorplan.Config, error) {
	if path == "" {
		return floorplan.DecodeConfig(bytes.NewReader(sample))
	}
	return floorplan.LoadConfig(path)
}

func renderPNG(cfg floorplan.Config, width, height int, path string) error {
	if cfg.CanvasID == "" {
		cfg.CanvasID = "plan"
	}
	surface := ggsurface.New(width, height, ggsurface.WithBackground(gg.White))
	canvas, err := floorplan.New(cfg, floorplan.Surfaces{cfg.CanvasID: surface})
	if err != nil {
		return err
	}
	if err := canvas.Draw(); err != nil {
		log.Printf("Some shapes were not drawn: %v", err)
	}
	if err := surface.Err(); err != nil {
		return err
	}
	return surface.SavePNG(path)
}

func show(cfg floorplan.Config, width, height int) error {
	a := app.New()
	w := a.NewWindow("Floorplan")

	viewer, err := fyneview.NewViewer(cfg, fyne.NewSize(float32(width), float32(height)))
	if err != nil {
		return err
	}
	viewer.OnTapped = func(s floorplan.Shape) {
		log.Printf("Selected %s %q (%s)", s.Type, s.Label, s.ID)
	}

	w.SetContent(viewer)
	w.Resize(fyne.NewSize(float32(width), float32(height)))
	w.ShowAndRun()
	return nil
}
