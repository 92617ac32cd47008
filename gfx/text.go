// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "github.com/gogpu/quadgfx/internal/glyph"

// cellUV is the texture-space size of one glyph atlas cell.
const cellUV = 1.0 / glyph.Grid

// QuadsText draws text as square size x size quads sampled from the glyph
// atlas bound with TextureSet. Each glyph advances the cursor by size/2; a
// newline returns to x and moves down by size. Characters outside Latin-1
// are drawn as '?'.
func (g *Graphics) QuadsText(x, y, size float32, text string) {
	if !g.require("QuadsText", ModeQuads, "without begin") {
		return
	}
	startX := x
	for _, r := range text {
		if r == '\n' {
			x = startX
			y += size
			continue
		}
		col, row, ok := glyph.Cell(r)
		if !ok {
			col, row, _ = glyph.Cell('?')
		}
		u, v := float32(col)*cellUV, float32(row)*cellUV
		g.setSubset(u, v, u+cellUV, v+cellUV)
		g.QuadsDrawTL(QuadItem{X: x, Y: y, Width: size, Height: size})
		x += size / 2
	}
}
