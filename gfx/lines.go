// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

// LineItem is a segment from (X0, Y0) to (X1, Y1).
type LineItem struct {
	X0, Y0 float32
	X1, Y1 float32
}

// verticesPerLine is the size of the zero-area triangle a line is drawn as.
const verticesPerLine = 3

// LinesDraw draws segments as degenerate triangles: the first endpoint with
// corner 0 state, then the second endpoint twice with corner 1 state.
func (g *Graphics) LinesDraw(items ...LineItem) {
	if !g.require("LinesDraw", ModeLines, "without begin") {
		return
	}
	for len(items) > 0 {
		n := min(len(items), g.batch.Cap()/verticesPerLine)
		verts := g.batch.Reserve(n * verticesPerLine)
		for i, l := range items[:n] {
			a, b, b2 := &verts[i*3], &verts[i*3+1], &verts[i*3+2]

			a.Pos.X, a.Pos.Y = l.X0, l.Y0
			a.Tex, a.Color = g.texCoords[0], g.colors[0]

			b.Pos.X, b.Pos.Y = l.X1, l.Y1
			b.Tex, b.Color = g.texCoords[1], g.colors[1]

			b2.Pos.X, b2.Pos.Y = l.X1, l.Y1
			b2.Tex, b2.Color = g.texCoords[1], g.colors[1]
		}
		g.batch.AddVertices(n * verticesPerLine)
		items = items[n:]
	}
}
