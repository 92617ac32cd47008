// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"slices"

	"github.com/gogpu/quadgfx"
	"github.com/gogpu/quadgfx/render"
)

// MapScreen maps the world rectangle (topLeftX, topLeftY) to
// (bottomRightX, bottomRightY) onto the viewport.
func (g *Graphics) MapScreen(topLeftX, topLeftY, bottomRightX, bottomRightY float32) {
	g.screenX0, g.screenY0 = topLeftX, topLeftY
	g.screenX1, g.screenY1 = bottomRightX, bottomRightY
	g.device.SetProjection(topLeftX, topLeftY, bottomRightX, bottomRightY)
}

// GetScreen returns the rectangle set by the last MapScreen.
func (g *Graphics) GetScreen() (topLeftX, topLeftY, bottomRightX, bottomRightY float32) {
	return g.screenX0, g.screenY0, g.screenX1, g.screenY1
}

// ScreenWidth returns the backbuffer width in pixels.
func (g *Graphics) ScreenWidth() int { return g.cfg.ScreenWidth }

// ScreenHeight returns the backbuffer height in pixels.
func (g *Graphics) ScreenHeight() int { return g.cfg.ScreenHeight }

// ScreenAspect returns width / height.
func (g *Graphics) ScreenAspect() float32 {
	return float32(g.cfg.ScreenWidth) / float32(g.cfg.ScreenHeight)
}

// ClipEnable restricts drawing to a rectangle in screen pixels with a
// top-left origin. The rectangle is clamped to the screen.
func (g *Graphics) ClipEnable(x, y, w, h int) {
	if x < 0 {
		w += x
	}
	if y < 0 {
		h += y
	}
	sw, sh := g.ScreenWidth(), g.ScreenHeight()
	x = clamp(x, 0, sw)
	y = clamp(y, 0, sh)
	w = clamp(w, 0, sw-x)
	h = clamp(h, 0, sh-y)
	g.device.SetScissor(x, sh-(y+h), w, h)
}

// ClipDisable removes the clip rectangle.
func (g *Graphics) ClipDisable() {
	g.device.ClearScissor()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// BlendNone disables blending.
func (g *Graphics) BlendNone() { g.device.SetBlend(render.BlendNone) }

// BlendNormal enables alpha blending.
func (g *Graphics) BlendNormal() { g.device.SetBlend(render.BlendNormal) }

// BlendAdditive enables additive blending.
func (g *Graphics) BlendAdditive() { g.device.SetBlend(render.BlendAdditive) }

// WrapNormal repeats textures outside [0, 1].
func (g *Graphics) WrapNormal() { g.device.SetWrap(render.WrapRepeat) }

// WrapClamp clamps texture coordinates to the edge.
func (g *Graphics) WrapClamp() { g.device.SetWrap(render.WrapClamp) }

// Clear clears the backbuffer to the given color.
func (g *Graphics) Clear(r, gr, b float32) {
	g.device.Clear(r, gr, b)
}

// Swap presents the frame. It may block on vertical sync.
func (g *Graphics) Swap() {
	if g.screenshotNext {
		g.screenshotNext = false
		quadgfx.Logger().Info("gfx: screenshot requested, capture is not supported by this backend")
	}
	g.device.Present()
}

// TakeScreenshot requests a capture of the next presented frame. Capture is
// not supported; the request is only logged.
func (g *Graphics) TakeScreenshot() {
	g.screenshotNext = true
}

// WindowActive reports whether the device window has focus. Devices without
// a window are always active.
func (g *Graphics) WindowActive() bool {
	if w, ok := g.device.(render.Window); ok {
		return w.Active()
	}
	return true
}

// WindowOpen reports whether the device window is open. Devices without a
// window are always open.
func (g *Graphics) WindowOpen() bool {
	if w, ok := g.device.(render.Window); ok {
		return w.Open()
	}
	return true
}

// VideoModes returns the display modes the device offers.
func (g *Graphics) VideoModes() []render.VideoMode {
	return slices.Clone(g.caps.VideoModes)
}
