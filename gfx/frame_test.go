// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"testing"

	"github.com/gogpu/quadgfx"
	"github.com/gogpu/quadgfx/recording"
	"github.com/gogpu/quadgfx/render"
)

func TestMapScreen(t *testing.T) {
	g, rec := newTestGraphics(t, nil)

	g.MapScreen(-10, -20, 300, 200)
	x0, y0, x1, y1 := g.GetScreen()
	if x0 != -10 || y0 != -20 || x1 != 300 || y1 != 200 {
		t.Errorf("GetScreen() = %v %v %v %v", x0, y0, x1, y1)
	}
	want := recording.SetProjectionCommand{Left: -10, Top: -20, Right: 300, Bottom: 200}
	if got := rec.Commands()[0]; got != want {
		t.Errorf("device command = %#v, want %#v", got, want)
	}
}

func TestScreenSize(t *testing.T) {
	g, _ := newTestGraphics(t, func(c *quadgfx.Config) { c.ScreenWidth, c.ScreenHeight = 800, 400 })
	if g.ScreenWidth() != 800 || g.ScreenHeight() != 400 || g.ScreenAspect() != 2 {
		t.Errorf("screen = %dx%d aspect %v", g.ScreenWidth(), g.ScreenHeight(), g.ScreenAspect())
	}
}

func TestClipEnable(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       recording.SetScissorCommand
	}{
		{"inside", 10, 20, 100, 50, recording.SetScissorCommand{X: 10, Y: 480 - 70, W: 100, H: 50}},
		{"negative origin", -10, -20, 100, 50, recording.SetScissorCommand{X: 0, Y: 480 - 30, W: 90, H: 30}},
		{"past the edge", 600, 400, 100, 100, recording.SetScissorCommand{X: 600, Y: 0, W: 40, H: 80}},
		{"off screen", 700, 500, 10, 10, recording.SetScissorCommand{X: 640, Y: 0, W: 0, H: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newTestGraphics(t, nil)
			g.ClipEnable(tt.x, tt.y, tt.w, tt.h)
			if got := rec.Commands()[0]; got != tt.want {
				t.Errorf("ClipEnable() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDeviceState(t *testing.T) {
	g, rec := newTestGraphics(t, nil)

	g.ClipDisable()
	g.BlendNone()
	g.BlendNormal()
	g.BlendAdditive()
	g.WrapNormal()
	g.WrapClamp()
	g.Clear(0.1, 0.2, 0.3)
	g.Swap()

	want := []recording.Command{
		recording.ClearScissorCommand{},
		recording.SetBlendCommand{Mode: render.BlendNone},
		recording.SetBlendCommand{Mode: render.BlendNormal},
		recording.SetBlendCommand{Mode: render.BlendAdditive},
		recording.SetWrapCommand{Mode: render.WrapRepeat},
		recording.SetWrapCommand{Mode: render.WrapClamp},
		recording.ClearCommand{R: 0.1, G: 0.2, B: 0.3},
		recording.PresentCommand{},
	}
	got := rec.Commands()
	if len(got) != len(want) {
		t.Fatalf("commands = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestWindowState(t *testing.T) {
	g, rec := newTestGraphics(t, nil)
	if !g.WindowActive() || !g.WindowOpen() {
		t.Fatal("recorder window should start active and open")
	}
	rec.SetActive(false)
	rec.SetOpen(false)
	if g.WindowActive() || g.WindowOpen() {
		t.Error("window state not forwarded")
	}

	plain, err := New(quadgfx.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !plain.WindowActive() || !plain.WindowOpen() {
		t.Error("windowless device should report active and open")
	}
}

func TestVideoModes(t *testing.T) {
	g, _ := newTestGraphics(t, nil)
	modes := g.VideoModes()
	if len(modes) != 1 || modes[0].Width != 640 || modes[0].Height != 480 {
		t.Errorf("VideoModes() = %v", modes)
	}
	modes[0].Width = 1
	if g.VideoModes()[0].Width != 640 {
		t.Error("VideoModes() exposes internal state")
	}
}

func TestTakeScreenshotIsNoop(t *testing.T) {
	g, rec := newTestGraphics(t, nil)
	g.TakeScreenshot()
	g.Swap()
	if len(rec.Commands()) != 1 || rec.Count(recording.CmdPresent) != 1 {
		t.Errorf("commands = %v, want a single present", rec.Commands())
	}
}

func TestShutdown(t *testing.T) {
	g, rec := newTestGraphics(t, nil)
	g.LoadTextureRaw(1, 1, FormatRGBA, make([]byte, 4), FormatRGBA, 0)
	g.LoadTextureRaw(1, 1, FormatRGBA, make([]byte, 4), FormatRGBA, 0)

	g.QuadsBegin()
	g.QuadsDrawTL(QuadItem{Width: 1, Height: 1})
	g.Shutdown()

	if rec.Count(recording.CmdSubmit) != 1 {
		t.Errorf("pending quad not flushed on shutdown")
	}
	if rec.LiveTextures() != 0 {
		t.Errorf("LiveTextures() = %d after shutdown, want 0", rec.LiveTextures())
	}
	if g.MemoryUsage() != 0 || g.TextureStats().Textures != 0 {
		t.Errorf("after shutdown: %v", g.TextureStats())
	}
}
