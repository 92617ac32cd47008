// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/quadgfx/render"
)

// Corner indices. Quads list their corners clockwise from the top left.
const (
	CornerTopLeft = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// QuadItem is an axis-aligned quad.
type QuadItem struct {
	X, Y          float32
	Width, Height float32
}

// FreeformItem is a quad with independent corners: 0 top left, 1 top right,
// 2 bottom left, 3 bottom right.
type FreeformItem struct {
	X0, Y0 float32
	X1, Y1 float32
	X2, Y2 float32
	X3, Y3 float32
}

// ColorVertex sets the color of one corner.
type ColorVertex struct {
	Index      int
	R, G, B, A float32
}

// Vertex orders per topology. Each entry is a corner index.
var (
	quadOrder     = []int{0, 1, 2, 3}
	triangleOrder = []int{0, 1, 2, 0, 2, 3}

	// Freeform corners 2 and 3 are swapped relative to QuadItem corners.
	freeformQuadOrder     = []int{0, 1, 3, 2}
	freeformTriangleOrder = []int{0, 1, 3, 0, 3, 2}
)

// QuadsSetRotation sets the rotation, in radians, applied to the following
// QuadsDraw and QuadsDrawTL calls.
func (g *Graphics) QuadsSetRotation(angle float32) {
	if !g.require("QuadsSetRotation", ModeQuads, "without begin") {
		return
	}
	g.rotation = angle
}

// SetColorVertex sets the color of individual corners. Indices outside
// [0, 3] are ignored.
func (g *Graphics) SetColorVertex(colors ...ColorVertex) {
	if !g.requireScope("SetColorVertex") {
		return
	}
	for _, c := range colors {
		if c.Index < 0 || c.Index >= len(g.colors) {
			continue
		}
		g.colors[c.Index] = render.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
}

// SetColor sets all four corner colors.
func (g *Graphics) SetColor(r, gr, b, a float32) {
	if !g.requireScope("SetColor") {
		return
	}
	g.setColor(r, gr, b, a)
}

func (g *Graphics) setColor(r, gr, b, a float32) {
	c := render.Color{R: r, G: gr, B: b, A: a}
	g.colors = [4]render.Color{c, c, c, c}
}

// QuadsSetSubset maps the quad corners to the texture rectangle spanning
// (tlU, tlV) to (brU, brV).
func (g *Graphics) QuadsSetSubset(tlU, tlV, brU, brV float32) {
	if !g.require("QuadsSetSubset", ModeQuads, "without begin") {
		return
	}
	g.setSubset(tlU, tlV, brU, brV)
}

func (g *Graphics) setSubset(tlU, tlV, brU, brV float32) {
	g.texCoords[CornerTopLeft] = render.TexCoord{U: tlU, V: tlV}
	g.texCoords[CornerTopRight] = render.TexCoord{U: brU, V: tlV}
	g.texCoords[CornerBottomRight] = render.TexCoord{U: brU, V: brV}
	g.texCoords[CornerBottomLeft] = render.TexCoord{U: tlU, V: brV}
}

// QuadsSetSubsetFree sets the texture coordinate of each corner.
func (g *Graphics) QuadsSetSubsetFree(u0, v0, u1, v1, u2, v2, u3, v3 float32) {
	if !g.require("QuadsSetSubsetFree", ModeQuads, "without begin") {
		return
	}
	g.texCoords = [4]render.TexCoord{{U: u0, V: v0}, {U: u1, V: v1}, {U: u2, V: v2}, {U: u3, V: v3}}
}

// QuadsDraw draws quads positioned by their centre. The items are rewritten
// in place to top-left coordinates.
func (g *Graphics) QuadsDraw(items ...QuadItem) {
	if !g.require("QuadsDraw", ModeQuads, "without begin") {
		return
	}
	for i := range items {
		items[i].X -= items[i].Width / 2
		items[i].Y -= items[i].Height / 2
	}
	g.QuadsDrawTL(items...)
}

// QuadsDrawTL draws quads positioned by their top-left corner, rotated about
// their centre by the current rotation.
func (g *Graphics) QuadsDrawTL(items ...QuadItem) {
	if !g.require("QuadsDrawTL", ModeQuads, "without begin") {
		return
	}
	order := quadOrder
	if g.batch.Topology() == render.TopologyTriangles {
		order = triangleOrder
	}

	var rot mgl32.Mat2
	rotate := g.rotation != 0
	if rotate {
		rot = mgl32.Rotate2D(g.rotation)
	}

	per := len(order)
	for len(items) > 0 {
		n := min(len(items), g.batch.Cap()/per)
		verts := g.batch.Reserve(n * per)
		for i, q := range items[:n] {
			corners := [4]mgl32.Vec2{
				{q.X, q.Y},
				{q.X + q.Width, q.Y},
				{q.X + q.Width, q.Y + q.Height},
				{q.X, q.Y + q.Height},
			}
			out := verts[i*per : (i+1)*per]
			g.emit(out, &corners, order)
			if rotate {
				center := mgl32.Vec2{q.X + q.Width/2, q.Y + q.Height/2}
				rotateAbout(out, rot, center)
			}
		}
		g.batch.AddVertices(n * per)
		items = items[n:]
	}
}

// QuadsDrawFreeform draws quads with independent corners. Rotation is not
// applied.
func (g *Graphics) QuadsDrawFreeform(items ...FreeformItem) {
	if !g.require("QuadsDrawFreeform", ModeQuads, "without begin") {
		return
	}
	order := freeformQuadOrder
	if g.batch.Topology() == render.TopologyTriangles {
		order = freeformTriangleOrder
	}

	per := len(order)
	for len(items) > 0 {
		n := min(len(items), g.batch.Cap()/per)
		verts := g.batch.Reserve(n * per)
		for i, f := range items[:n] {
			corners := [4]mgl32.Vec2{{f.X0, f.Y0}, {f.X1, f.Y1}, {f.X2, f.Y2}, {f.X3, f.Y3}}
			g.emit(verts[i*per:(i+1)*per], &corners, order)
		}
		g.batch.AddVertices(n * per)
		items = items[n:]
	}
}

// emit writes one vertex per entry of order, taking position, texture
// coordinate and color from that corner.
func (g *Graphics) emit(out []render.Vertex, corners *[4]mgl32.Vec2, order []int) {
	for j, c := range order {
		v := &out[j]
		v.Pos.X = corners[c].X()
		v.Pos.Y = corners[c].Y()
		v.Tex = g.texCoords[c]
		v.Color = g.colors[c]
	}
}

// rotateAbout rotates vertex positions by rot around center.
func rotateAbout(verts []render.Vertex, rot mgl32.Mat2, center mgl32.Vec2) {
	for i := range verts {
		p := &verts[i].Pos
		r := rot.Mul2x1(mgl32.Vec2{p.X, p.Y}.Sub(center)).Add(center)
		p.X, p.Y = r.X(), r.Y()
	}
}
