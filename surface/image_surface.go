// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gputypes"
)

// ImageSurface is a CPU-based surface backed by an *image.RGBA.
//
// This is the default surface implementation; it is always available and is
// what the "image" registry backend constructs.
type ImageSurface struct {
	img    *image.RGBA
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Dimensions below 1 are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage wraps an existing image as a surface.
// The image is used directly without copying.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	return &ImageSurface{img: img}
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int {
	return s.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (s *ImageSurface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Image returns the backing image. The returned image shares memory with
// the surface.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Clear fills the entire surface with the given color.
// A nil color clears to fully transparent black.
func (s *ImageSurface) Clear(c color.Color) {
	if c == nil {
		for i := range s.img.Pix {
			s.img.Pix[i] = 0
		}
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect fills an axis-aligned rectangle with a color.
func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) {
	r = r.Intersect(s.img.Bounds())
	if r.Empty() || c == nil {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawImage draws an image with its top-left corner at the given position.
func (s *ImageSurface) DrawImage(src image.Image, at image.Point, opts *DrawImageOptions) {
	op := draw.Src
	if opts == nil || opts.Over {
		op = draw.Over
	}
	r := src.Bounds().Sub(src.Bounds().Min).Add(at)
	if opts != nil && opts.Alpha > 0 && opts.Alpha < 1 {
		mask := image.NewUniform(color.Alpha{A: uint8(opts.Alpha * 255)})
		draw.DrawMask(s.img, r, src, src.Bounds().Min, mask, image.Point{}, op)
		return
	}
	draw.Draw(s.img, r, src, src.Bounds().Min, op)
}

// Resize changes the surface dimensions, preserving overlapping content.
func (s *ImageSurface) Resize(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	if width == s.Width() && height == s.Height() {
		return
	}
	next := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(next, next.Bounds(), s.img, image.Point{}, draw.Src)
	s.img = next
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Flush is a no-op for CPU surfaces.
func (s *ImageSurface) Flush() error {
	return nil
}

// Close marks the surface closed. The backing image is released.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

var _ Surface = (*ImageSurface)(nil)
var _ ImageBacked = (*ImageSurface)(nil)
