// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/floorplan"
)

// Fonts resolves floorplan.Font values to gg text faces.
//
// Families are matched by name; unknown families fall back to the default
// source, which is Go Regular unless replaced. Faces are cached per family
// and size. Fonts is safe for concurrent use.
type Fonts struct {
	mu       sync.Mutex
	fallback *text.FontSource
	sources  map[string]*text.FontSource
	faces    map[faceKey]text.Face
}

type faceKey struct {
	family string
	size   float64
}

var (
	defaultFontsOnce sync.Once
	defaultFonts     *Fonts
	defaultFontsErr  error
)

// DefaultFonts returns a shared Fonts whose every family is Go Regular.
func DefaultFonts() (*Fonts, error) {
	defaultFontsOnce.Do(func() {
		defaultFonts, defaultFontsErr = NewFonts(goregular.TTF)
	})
	return defaultFonts, defaultFontsErr
}

// NewFonts creates a Fonts with the TTF/OTF data as fallback source.
func NewFonts(fallback []byte) (*Fonts, error) {
	src, err := text.NewFontSource(fallback)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: loading fallback font: %w", err)
	}
	return &Fonts{
		fallback: src,
		sources:  make(map[string]*text.FontSource),
		faces:    make(map[faceKey]text.Face),
	}, nil
}

// Add registers font data under a family name, replacing any earlier
// source for that family.
func (f *Fonts) Add(family string, data []byte) error {
	src, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("ggsurface: loading font %q: %w", family, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.sources[family] = src
	for k := range f.faces {
		if k.family == family {
			delete(f.faces, k)
		}
	}
	return nil
}

// AddFile registers a font file under a family name.
func (f *Fonts) AddFile(family, path string) error {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return fmt.Errorf("ggsurface: loading font %q: %w", family, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.sources[family] = src
	for k := range f.faces {
		if k.family == family {
			delete(f.faces, k)
		}
	}
	return nil
}

// Face returns the face for fn. A non-positive size is treated as 10px.
func (f *Fonts) Face(fn floorplan.Font) text.Face {
	size := fn.Size
	if size <= 0 {
		size = 10
	}
	key := faceKey{family: fn.Family, size: size}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[key]; ok {
		return face
	}
	src, ok := f.sources[fn.Family]
	if !ok {
		src = f.fallback
	}
	face := src.Face(size)
	f.faces[key] = face
	return face
}
