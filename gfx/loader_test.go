// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/gogpu/quadgfx"
	"github.com/gogpu/quadgfx/storage"
)

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	t.Helper()

	rgba := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := range rgba.Pix {
		rgba.Pix[i] = 0x80
	}
	rgb := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range rgb.Pix {
		rgb.Pix[i] = 0xff
	}
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.Set(0, 0, color.Gray{Y: 10})

	return fstest.MapFS{
		"game.png":    {Data: pngBytes(t, rgba)},
		"opaque.png":  {Data: pngBytes(t, rgb)},
		"gray.png":    {Data: pngBytes(t, gray)},
		"garbage.png": {Data: []byte("not a png")},
	}
}

func TestLoadPNG(t *testing.T) {
	g, _ := newTestGraphics(t, nil, WithFS(testFS(t)))

	img, ok := g.LoadPNG("game.png", storage.TypeAll)
	if !ok {
		t.Fatal("LoadPNG(game.png) failed")
	}
	if img.Width() != 8 || img.Height() != 4 || img.Format() != FormatRGBA {
		t.Errorf("LoadPNG() = %dx%d %v, want 8x4 RGBA", img.Width(), img.Height(), img.Format())
	}

	img, ok = g.LoadPNG("opaque.png", storage.TypeAll)
	if !ok || img.Format() != FormatRGB {
		t.Errorf("LoadPNG(opaque.png) = %v, %v, want RGB", img, ok)
	}

	for _, name := range []string{"missing.png", "gray.png", "garbage.png"} {
		if img, ok := g.LoadPNG(name, storage.TypeAll); ok || img != nil {
			t.Errorf("LoadPNG(%q) = %v, %v, want failure", name, img, ok)
		}
	}
}

func TestLoadTexture(t *testing.T) {
	g, rec := newTestGraphics(t, func(c *quadgfx.Config) { c.Debug = true }, WithFS(testFS(t)))
	base := g.MemoryUsage()

	id := g.LoadTexture("game.png", storage.TypeAll, StoreAuto, 0)
	if id == g.InvalidTexture() {
		t.Fatal("LoadTexture(game.png) returned the invalid texture")
	}
	if g.MemoryUsage()-base != 8*4*4 {
		t.Errorf("memory grew by %d, want 128", g.MemoryUsage()-base)
	}
	if up := rec.Uploads()[0]; up.Desc.PixelFormat != FormatRGBA || up.Pixels[0] != 0x80 {
		t.Errorf("upload = %v first byte %#x", up.Desc.PixelFormat, up.Pixels[0])
	}

	id = g.LoadTexture("opaque.png", storage.TypeAll, FormatAlpha, 0)
	if size, _ := g.TextureSize(id); size != 4 {
		t.Errorf("opaque.png stored as alpha: size = %d, want 4", size)
	}

	for _, name := range []string{"", "ab", "missing.png", "gray.png"} {
		if id := g.LoadTexture(name, storage.TypeAll, StoreAuto, 0); id != g.InvalidTexture() {
			t.Errorf("LoadTexture(%q) = %d, want invalid", name, id)
		}
	}
}

func TestLoadFontAtlas(t *testing.T) {
	g, rec := newTestGraphics(t, nil)

	id := g.LoadFontAtlas(16)
	if id == g.InvalidTexture() {
		t.Fatal("LoadFontAtlas(16) returned the invalid texture")
	}
	up := rec.Uploads()[0]
	if up.Desc.Width != 256 || up.Desc.Height != 256 {
		t.Errorf("atlas upload = %dx%d, want 256x256", up.Desc.Width, up.Desc.Height)
	}

	if id := g.LoadFontAtlas(1); id != g.InvalidTexture() {
		t.Errorf("LoadFontAtlas(1) = %d, want invalid", id)
	}
}
