// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import "github.com/gogpu/gg"

// Option configures a Surface during creation.
//
// Example:
//
//	// Transparent surface with Go Regular labels
//	s := ggsurface.New(800, 600)
//
//	// White background, drawing into an existing context
//	s := ggsurface.New(0, 0, ggsurface.WithContext(dc), ggsurface.WithBackground(gg.White))
type Option func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	context    *gg.Context
	fonts      *Fonts
	background gg.RGBA
}

// defaultOptions returns the default surface options.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		context:    nil, // Created from width and height if nil
		fonts:      nil, // DefaultFonts if nil
		background: gg.Transparent,
	}
}

// WithContext draws into an existing gg context. The width and height
// passed to New are ignored.
func WithContext(dc *gg.Context) Option {
	return func(o *surfaceOptions) {
		o.context = dc
	}
}

// WithFonts sets the font set used by FillText.
func WithFonts(f *Fonts) Option {
	return func(o *surfaceOptions) {
		o.fonts = f
	}
}

// WithBackground sets the color ClearRect clears to. The default is
// transparent.
func WithBackground(c gg.RGBA) Option {
	return func(o *surfaceOptions) {
		o.background = c
	}
}
