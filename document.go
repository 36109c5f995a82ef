// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// document is the JSON form of a Config. Colors are hex strings.
type document struct {
	CanvasID        string    `json:"canvasId"`
	GridLineSpacing json.RawMessage `json:"gridLineSpacing"`
	GridLineColors  []string  `json:"gridLineColors"`
	GridMinPixels   float64   `json:"gridMinPixels"`
	Offset          *gg.Point `json:"offset"`
	Shapes          []Shape   `json:"shapes"`
	Zoom            float64   `json:"zoom"`
}

// DecodeConfig reads a JSON floorplan document:
//
//	{
//	  "canvasId": "plan",
//	  "gridLineSpacing": [1, 6, 120, 1200, 12000],
//	  "gridLineColors": ["#d0d0d0", "#808080"],
//	  "gridMinPixels": 3,
//	  "offset": {"x": 0, "y": 0},
//	  "zoom": 1,
//	  "shapes": [{"id": "kitchen", "type": "rect-room", ...}]
//	}
//
// Absent fields are left unset so New applies its defaults. A
// "gridLineSpacing" of null or [] disables the grid. Shapes are prepared as
// by DecodeShapes.
func DecodeConfig(r io.Reader) (Config, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Config{}, fmt.Errorf("floorplan: decoding document: %w", err)
	}

	spacing, err := decodeSpacing(doc.GridLineSpacing)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		CanvasID:        doc.CanvasID,
		GridLineSpacing: spacing,
		GridMinPixels:   doc.GridMinPixels,
		Shapes:          prepareShapes(doc.Shapes),
		Zoom:            doc.Zoom,
	}
	if doc.Offset != nil {
		cfg.Offset = *doc.Offset
	}
	if doc.GridLineColors != nil {
		cfg.GridLineColors = make([]gg.RGBA, len(doc.GridLineColors))
		for i, hex := range doc.GridLineColors {
			cfg.GridLineColors[i] = gg.Hex(hex)
		}
	}
	if err := cfg.Grid().Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeSpacing maps an absent list to nil and an explicit null to an empty
// list, so that null turns the grid off instead of selecting the default.
func decodeSpacing(raw json.RawMessage) ([]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return []float64{}, nil
	}
	var spacing []float64
	if err := json.Unmarshal(raw, &spacing); err != nil {
		return nil, fmt.Errorf("floorplan: decoding gridLineSpacing: %w", err)
	}
	return spacing, nil
}

// LoadConfig reads a JSON floorplan document from a file.
func LoadConfig(path string) (Config, error) {
	// #nosec G304 -- document path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("floorplan: failed to open document: %w", err)
	}
	defer func() { _ = f.Close() }()
	return DecodeConfig(f)
}

// DecodeShapes reads a JSON array of shapes. Shapes without an ID get a
// random one, and labels are normalized to NFC.
func DecodeShapes(r io.Reader) ([]Shape, error) {
	var shapes []Shape
	if err := json.NewDecoder(r).Decode(&shapes); err != nil {
		return nil, fmt.Errorf("floorplan: decoding shapes: %w", err)
	}
	return prepareShapes(shapes), nil
}

func prepareShapes(shapes []Shape) []Shape {
	for i := range shapes {
		if shapes[i].ID == "" {
			shapes[i].ID = uuid.NewString()
		}
		shapes[i].Label = norm.NFC.String(shapes[i].Label)
	}
	return shapes
}
