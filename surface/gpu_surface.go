// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// GPUSurface is a GPU-accelerated surface wrapper.
//
// This is a thin adapter around an external GPU backend. The actual GPU
// implementation is provided by the host (e.g. a wgpu-based texture target).
// Keeping the backend behind an interface lets this package stay independent
// of specific GPU libraries.
//
// Example integration:
//
//	surface.Register(surface.RegistryEntry{
//	    Name:     "vulkan",
//	    Priority: 100,
//	    Layered:  true,
//	    Factory: func(opts surface.Options) (surface.Surface, error) {
//	        return surface.NewGPUSurface(opts.Width, opts.Height, newVulkanBackend(opts))
//	    },
//	    Available: vulkanAvailable,
//	})
type GPUSurface struct {
	width   int
	height  int
	backend GPUBackend
	closed  bool
}

// GPUBackend is the interface that GPU implementations must provide.
type GPUBackend interface {
	// Clear fills the surface with a color.
	Clear(c color.Color)

	// FillRect fills an axis-aligned rectangle with a color.
	FillRect(r image.Rectangle, c color.Color)

	// DrawImage draws an image at the specified position.
	DrawImage(img image.Image, at image.Point, opts *DrawImageOptions)

	// Resize changes the backing texture dimensions.
	Resize(width, height int)

	// Flush ensures all pending operations are submitted.
	Flush() error

	// Readback reads the surface contents to an image.
	Readback() (*image.RGBA, error)

	// Close releases GPU resources.
	Close() error
}

// NewGPUSurface creates a new GPU surface with the given backend.
// Returns an error if backend is nil.
func NewGPUSurface(width, height int, backend GPUBackend) (*GPUSurface, error) {
	if backend == nil {
		return nil, errors.New("surface: GPUBackend cannot be nil")
	}
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &GPUSurface{width: width, height: height, backend: backend}, nil
}

// Width returns the surface width in pixels.
func (s *GPUSurface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *GPUSurface) Height() int { return s.height }

// Format returns the pixel format (RGBA8).
func (s *GPUSurface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Clear fills the surface with the given color.
func (s *GPUSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	s.backend.Clear(c)
}

// FillRect fills a rectangle with a color.
func (s *GPUSurface) FillRect(r image.Rectangle, c color.Color) {
	if s.closed {
		return
	}
	s.backend.FillRect(r, c)
}

// DrawImage draws an image at the given position.
func (s *GPUSurface) DrawImage(img image.Image, at image.Point, opts *DrawImageOptions) {
	if s.closed {
		return
	}
	s.backend.DrawImage(img, at, opts)
}

// Resize changes the surface dimensions.
func (s *GPUSurface) Resize(width, height int) {
	if s.closed || (width == s.width && height == s.height) {
		return
	}
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	s.width, s.height = width, height
	s.backend.Resize(width, height)
}

// Snapshot reads back the surface contents. Returns nil if readback fails;
// the error is reported through Flush.
func (s *GPUSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	img, err := s.backend.Readback()
	if err != nil {
		return nil
	}
	return img
}

// Flush submits pending GPU work.
func (s *GPUSurface) Flush() error {
	if s.closed {
		return nil
	}
	return s.backend.Flush()
}

// Close releases GPU resources.
func (s *GPUSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.backend.Close()
}

var _ Surface = (*GPUSurface)(nil)
