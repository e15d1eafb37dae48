// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Surface is the core drawing target abstraction.
//
// A Surface represents one 2D canvas. Implementations may use CPU pixel
// buffers, GPU textures, or any other backend.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillRect(image.Rect(10, 10, 50, 50), color.RGBA{255, 0, 0, 255})
//	img := s.Snapshot()
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Format returns the pixel format of the surface.
	Format() gputypes.TextureFormat

	// Clear fills the entire surface with the given color.
	// A nil color clears to fully transparent.
	Clear(c color.Color)

	// FillRect fills an axis-aligned rectangle with a color.
	// The rectangle is clipped to the surface bounds.
	FillRect(r image.Rectangle, c color.Color)

	// DrawImage draws an image with its top-left corner at the given
	// position. If opts is nil, default options are used.
	DrawImage(img image.Image, at image.Point, opts *DrawImageOptions)

	// Resize changes the surface dimensions. Existing content is
	// preserved where it overlaps the new bounds; newly exposed area is
	// transparent.
	Resize(width, height int)

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect
	// the surface. This may be slow for GPU surfaces (readback).
	Snapshot() *image.RGBA

	// Flush ensures all pending drawing operations are complete.
	// For CPU surfaces this is typically a no-op.
	Flush() error

	// Close releases resources held by the surface. The surface must not
	// be used after Close.
	Close() error
}

// ImageBacked is an optional interface for surfaces whose pixels live in
// an *image.RGBA. The compositor uses it to blit without a Snapshot copy.
type ImageBacked interface {
	// Image returns the backing image. The returned image shares memory
	// with the surface.
	Image() *image.RGBA
}

// DrawImageOptions controls how DrawImage composites the source.
type DrawImageOptions struct {
	// Over selects source-over compositing. When false the source
	// replaces destination pixels.
	Over bool

	// Alpha scales the source opacity; values outside (0, 1] mean fully
	// opaque.
	Alpha float64
}
