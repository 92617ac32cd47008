// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gfx is an immediate-mode 2D renderer that batches colored,
// textured quads and lines into a fixed-capacity vertex array and submits
// them to a render.Device.
//
// # Drawing scopes
//
// Primitives are emitted inside a scope. A scope sets up the corner state
// (texture coordinates, colors, rotation) that every following primitive
// reads, and ends with a flush:
//
//	g.TextureSet(tex)
//	g.QuadsBegin()
//	g.SetColor(1, 0.5, 0.5, 1)
//	g.QuadsSetRotation(math.Pi / 4)
//	g.QuadsDraw(gfx.QuadItem{X: 100, Y: 100, Width: 32, Height: 32})
//	g.QuadsEnd()
//
// Calling a scope operation in the wrong mode is a programming error. By
// default it logs and panics with a *ScopeError; WithAssert installs a
// different policy, under which the offending call does nothing.
//
// # Textures
//
// Textures live in a fixed-size table. Slot 0 holds a 4x4 checker created at
// init; every failed load returns it, so callers never need to check for
// errors before drawing.
//
// # Batching
//
// Vertices accumulate in a single array. The batch flushes when a scope ends
// or when the next write of the same size would reach capacity.
package gfx
