// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/quadgfx"
	"github.com/gogpu/quadgfx/recording"
	"github.com/gogpu/quadgfx/render"
)

func TestInvalidTextureCreatedAtInit(t *testing.T) {
	cfg := quadgfx.DefaultConfig()
	cfg.Stress = true
	rec := recording.NewRecorder(render.DefaultCapabilities())
	g, err := New(cfg, WithDevice(rec))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ups := rec.Uploads()
	if len(ups) != 1 {
		t.Fatalf("uploads at init = %d, want 1 even under stress", len(ups))
	}
	if ups[0].Desc.Width != 4 || ups[0].Desc.Height != 4 || !slices.Equal(ups[0].Pixels, invalidTextureData[:]) {
		t.Errorf("invalid texture upload = %dx%d", ups[0].Desc.Width, ups[0].Desc.Height)
	}
	if g.MemoryUsage() != 64 {
		t.Errorf("MemoryUsage() = %d, want 64", g.MemoryUsage())
	}
}

func TestLoadTextureRawSolidRed(t *testing.T) {
	g, rec := newTestGraphics(t, nil)
	before := g.MemoryUsage()

	id := g.LoadTextureRaw(4, 4, FormatRGBA, solid(4, 4, 0xff, 0, 0, 0xff), FormatRGBA, NoResample)
	if id == g.InvalidTexture() {
		t.Fatal("LoadTextureRaw() returned the invalid texture")
	}
	if size, ok := g.TextureSize(id); !ok || size != 64 {
		t.Errorf("TextureSize() = %d, %v, want 64", size, ok)
	}
	if got := g.MemoryUsage() - before; got != 64 {
		t.Errorf("MemoryUsage() grew by %d, want 64", got)
	}

	ups := rec.Uploads()
	if len(ups) != 1 || ups[0].Desc.PixelFormat != FormatRGBA || len(ups[0].Pixels) != 64 {
		t.Errorf("uploads = %+v", ups)
	}
}

func TestLoadTextureRawResample(t *testing.T) {
	tests := []struct {
		name         string
		quality      int
		w, h         int
		format       PixelFormat
		flags        TextureFlags
		wantW, wantH int
	}{
		{"fit wide to max size", quadgfx.TextureQualityHigh, 512, 128, FormatRGB, 0, 256, 64},
		{"fit tall to max size", quadgfx.TextureQualityHigh, 100, 600, FormatRGBA, 0, 42, 256},
		{"max size wins over low quality", quadgfx.TextureQualityLow, 512, 512, FormatRGBA, 0, 256, 256},
		{"low quality halves", quadgfx.TextureQualityLow, 32, 64, FormatRGBA, 0, 16, 32},
		{"low quality keeps small side", quadgfx.TextureQualityLow, 16, 64, FormatRGBA, 0, 16, 64},
		{"high quality keeps size", quadgfx.TextureQualityHigh, 64, 64, FormatRGB, 0, 64, 64},
		{"no resample", quadgfx.TextureQualityLow, 512, 64, FormatRGBA, NoResample, 512, 64},
		{"alpha never resampled", quadgfx.TextureQualityLow, 512, 64, FormatAlpha, 0, 512, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newTestGraphics(t, func(c *quadgfx.Config) { c.TextureQuality = tt.quality })
			bpp := tt.format.BytesPerPixel()
			px := make([]byte, tt.w*tt.h*bpp)

			id := g.LoadTextureRaw(tt.w, tt.h, tt.format, px, tt.format, tt.flags)
			if id == g.InvalidTexture() {
				t.Fatal("load failed")
			}
			up := rec.Uploads()[0]
			if int(up.Desc.Width) != tt.wantW || int(up.Desc.Height) != tt.wantH {
				t.Errorf("upload size = %dx%d, want %dx%d", up.Desc.Width, up.Desc.Height, tt.wantW, tt.wantH)
			}
			if len(up.Pixels) != tt.wantW*tt.wantH*bpp {
				t.Errorf("upload bytes = %d, want %d", len(up.Pixels), tt.wantW*tt.wantH*bpp)
			}
			if size, _ := g.TextureSize(id); size != tt.wantW*tt.wantH*bpp {
				t.Errorf("TextureSize() = %d, want %d", size, tt.wantW*tt.wantH*bpp)
			}
		})
	}
}

// The accounted size uses the store format even though the upload uses the
// source format.
func TestLoadTextureRawAccountsStoreFormat(t *testing.T) {
	tests := []struct {
		store PixelFormat
		want  int
	}{
		{FormatAlpha, 16},
		{FormatRGB, 48},
		{FormatRGBA, 64},
		{StoreAuto, 64},
	}
	for _, tt := range tests {
		g, rec := newTestGraphics(t, nil)
		id := g.LoadTextureRaw(4, 4, FormatRGBA, make([]byte, 64), tt.store, NoResample)
		if size, _ := g.TextureSize(id); size != tt.want {
			t.Errorf("store %v: TextureSize() = %d, want %d", tt.store, size, tt.want)
		}
		if got := len(rec.Uploads()[0].Pixels); got != 64 {
			t.Errorf("store %v: uploaded %d bytes, want 64", tt.store, got)
		}
	}
}

func TestLoadTextureRawStress(t *testing.T) {
	g, rec := newTestGraphics(t, func(c *quadgfx.Config) { c.Stress = true })

	id := g.LoadTextureRaw(4, 4, FormatRGBA, make([]byte, 64), FormatRGBA, 0)
	if id != g.InvalidTexture() {
		t.Errorf("stress load = %d, want invalid texture", id)
	}
	if len(rec.Uploads()) != 0 || g.TextureStats().Textures != 1 {
		t.Errorf("stress load allocated: uploads = %d, stats = %v", len(rec.Uploads()), g.TextureStats())
	}
}

func TestLoadTextureRawFailures(t *testing.T) {
	g, _ := newTestGraphics(t, func(c *quadgfx.Config) { c.MaxTextures = 2 })

	if id := g.LoadTextureRaw(4, 4, FormatRGBA, make([]byte, 10), FormatRGBA, 0); id != g.InvalidTexture() {
		t.Errorf("short pixel data = %d, want invalid", id)
	}
	if id := g.LoadTextureRaw(0, 4, FormatRGBA, nil, FormatRGBA, 0); id != g.InvalidTexture() {
		t.Errorf("zero width = %d, want invalid", id)
	}

	first := g.LoadTextureRaw(1, 1, FormatRGBA, make([]byte, 4), FormatRGBA, 0)
	if first != 1 {
		t.Fatalf("first load = %d, want slot 1", first)
	}
	if id := g.LoadTextureRaw(1, 1, FormatRGBA, make([]byte, 4), FormatRGBA, 0); id != g.InvalidTexture() {
		t.Errorf("load into full table = %d, want invalid", id)
	}
}

func TestUnloadTexture(t *testing.T) {
	g, rec := newTestGraphics(t, nil)
	base := g.MemoryUsage()

	a := g.LoadTextureRaw(2, 2, FormatRGBA, make([]byte, 16), FormatRGBA, 0)
	b := g.LoadTextureRaw(2, 2, FormatRGB, make([]byte, 12), FormatRGB, 0)
	if g.MemoryUsage() != base+16+12 {
		t.Fatalf("MemoryUsage() = %d, want %d", g.MemoryUsage(), base+28)
	}

	g.UnloadTexture(g.InvalidTexture())
	g.UnloadTexture(-3)
	g.UnloadTexture(500)
	if rec.Count(recording.CmdDeleteTexture) != 0 {
		t.Fatal("ignored unloads reached the device")
	}

	g.UnloadTexture(a)
	if g.MemoryUsage() != base+12 {
		t.Errorf("MemoryUsage() after unload = %d, want %d", g.MemoryUsage(), base+12)
	}
	if rec.Count(recording.CmdDeleteTexture) != 1 {
		t.Errorf("DeleteTexture count = %d, want 1", rec.Count(recording.CmdDeleteTexture))
	}

	// Double unload is ignored.
	g.UnloadTexture(a)
	if g.MemoryUsage() != base+12 {
		t.Errorf("double unload changed memory to %d", g.MemoryUsage())
	}

	// The released slot is reused first.
	if c := g.LoadTextureRaw(1, 1, FormatAlpha, []byte{1}, FormatAlpha, 0); c != a {
		t.Errorf("reload = %d, want reused slot %d", c, a)
	}
	if _, ok := g.TextureSize(b); !ok {
		t.Errorf("texture %d was unloaded by an unrelated call", b)
	}
}

func TestTextureTableInvariants(t *testing.T) {
	g, _ := newTestGraphics(t, func(c *quadgfx.Config) { c.MaxTextures = 8 })
	rng := rand.New(rand.NewPCG(7, 11))

	var live []TextureID
	for step := range 500 {
		if len(live) > 0 && rng.IntN(2) == 0 {
			i := rng.IntN(len(live))
			g.UnloadTexture(live[i])
			live = slices.Delete(live, i, i+1)
		} else {
			w := 1 + rng.IntN(4)
			id := g.LoadTextureRaw(w, 1, FormatRGBA, make([]byte, w*4), FormatRGBA, 0)
			if id != g.InvalidTexture() {
				if slices.Contains(live, id) {
					t.Fatalf("step %d: slot %d handed out twice", step, id)
				}
				live = append(live, id)
			}
		}

		for _, free := range g.slots.Free() {
			if slices.Contains(live, TextureID(free)) || free == int(g.InvalidTexture()) {
				t.Fatalf("step %d: allocated slot %d is on the free list", step, free)
			}
		}
		total := 0
		for i := range g.textures {
			if size, ok := g.TextureSize(TextureID(i)); ok {
				total += size
			}
		}
		if total != g.MemoryUsage() {
			t.Fatalf("step %d: MemoryUsage() = %d, sum of slots = %d", step, g.MemoryUsage(), total)
		}
	}
}

func TestTextureSet(t *testing.T) {
	g, rec := newTestGraphics(t, nil)
	id := g.LoadTextureRaw(1, 1, FormatRGBA, make([]byte, 4), FormatRGBA, 0)
	handle := rec.Uploads()[0].ID
	rec.Reset()

	g.TextureSet(id)
	g.TextureSet(NoTexture)
	g.TextureSet(99)

	cmds := rec.Commands()
	if len(cmds) != 3 {
		t.Fatalf("commands = %d, want 3", len(cmds))
	}
	if bind, ok := cmds[0].(recording.BindTextureCommand); !ok || bind.ID != handle {
		t.Errorf("TextureSet(id) = %#v, want bind %d", cmds[0], handle)
	}
	if _, ok := cmds[1].(recording.UnbindTextureCommand); !ok {
		t.Errorf("TextureSet(NoTexture) = %#v, want unbind", cmds[1])
	}
	if _, ok := cmds[2].(recording.BindTextureCommand); !ok {
		t.Errorf("TextureSet(unknown) = %#v, want bind of invalid texture", cmds[2])
	}
}

func TestLoadTextureRawSub(t *testing.T) {
	g, rec := newTestGraphics(t, nil)
	id := g.LoadTextureRaw(4, 4, FormatRGBA, make([]byte, 64), FormatRGBA, 0)
	before := g.MemoryUsage()

	g.LoadTextureRawSub(id, 1, 1, 2, 2, FormatRGBA, make([]byte, 16))
	g.LoadTextureRawSub(42, 0, 0, 1, 1, FormatRGBA, make([]byte, 4))

	if rec.Count(recording.CmdUpdateTexture) != 1 {
		t.Errorf("UpdateTexture count = %d, want 1", rec.Count(recording.CmdUpdateTexture))
	}
	if g.MemoryUsage() != before {
		t.Errorf("partial update changed memory usage")
	}
}

func TestTextureStatsString(t *testing.T) {
	g, _ := newTestGraphics(t, func(c *quadgfx.Config) { c.MaxTextures = 16 })
	want := "Textures[1/16 slots, 64 bytes]"
	if got := g.TextureStats().String(); got != want {
		t.Errorf("TextureStats().String() = %q, want %q", got, want)
	}
}
