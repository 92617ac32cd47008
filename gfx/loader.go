// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"github.com/gogpu/quadgfx"
	"github.com/gogpu/quadgfx/internal/glyph"
	"github.com/gogpu/quadgfx/internal/image"
	"github.com/gogpu/quadgfx/storage"
)

// Image is a decoded, tightly packed pixel buffer.
type Image = image.ImageBuf

// minNameLen is the shortest file name LoadTexture attempts.
const minNameLen = 3

// LoadPNG resolves name through storage and decodes it. Only 8-bit RGB and
// RGBA images are accepted. Failures are logged and reported as false.
func (g *Graphics) LoadPNG(name string, typ storage.Type) (*Image, bool) {
	f, full, err := g.storage.OpenFile(name, storage.FlagRead, typ)
	if err != nil {
		quadgfx.Logger().Warn("gfx: failed to open file", "name", name, "err", err)
		return nil, false
	}
	_ = f.Close()

	img, err := g.codec.Decode(full)
	if err != nil {
		quadgfx.Logger().Warn("gfx: failed to decode file", "name", full, "err", err)
		return nil, false
	}
	return img, true
}

// LoadTexture loads an image file into the texture table. store selects the
// accounted pixel format; StoreAuto uses the decoded one. Any failure
// returns the invalid texture.
func (g *Graphics) LoadTexture(name string, typ storage.Type, store PixelFormat, flags TextureFlags) TextureID {
	if len(name) < minNameLen {
		return g.invalid
	}
	img, ok := g.LoadPNG(name, typ)
	if !ok {
		return g.invalid
	}

	if store == StoreAuto {
		store = img.Format()
	}
	id := g.LoadTextureRaw(img.Width(), img.Height(), img.Format(), img.Data(), store, flags)
	if id != g.invalid && g.cfg.Debug {
		quadgfx.Logger().Debug("gfx: loaded texture", "name", name, "id", int(id))
	}
	return id
}

// LoadFontAtlas renders the built-in 16x16 glyph atlas with cells of the
// given size and loads it for QuadsText.
func (g *Graphics) LoadFontAtlas(cell int) TextureID {
	atlas, err := glyph.BuildAtlas(cell)
	if err != nil {
		quadgfx.Logger().Warn("gfx: glyph atlas failed", "cell", cell, "err", err)
		return g.invalid
	}

	return g.LoadTextureRaw(atlas.Width(), atlas.Height(), atlas.Format(), atlas.Data(), FormatRGBA, 0)
}
