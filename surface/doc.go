// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the drawing-surface abstraction used by zlayer.
//
// A Surface is one addressable 2D pixel target. The engine creates one
// surface per layer, clears and resizes them, and blits them onto each other
// when compositing manually. All rasterization beyond rectangle fills and
// image blits is delegated to brushes (see the zlayer root package).
//
// # Backends
//
// Surface construction goes through a registry of named backends so host
// integrations can plug in their own surface types (GPU textures, window
// framebuffers) without changes to this package:
//
//	surface.Register(surface.RegistryEntry{
//	    Name:     "myhost",
//	    Priority: 100,
//	    Factory:  myFactory,
//	    Layered:  true,
//	})
//	s, err := surface.NewSurface(800, 600) // picks best available
//
// The built-in "image" backend (CPU, *image.RGBA) registers itself at
// priority 10 and is always available.
package surface
