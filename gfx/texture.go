// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"errors"
	"fmt"

	"github.com/gogpu/quadgfx"
	"github.com/gogpu/quadgfx/internal/image"
	"github.com/gogpu/quadgfx/render"
)

// Texture table errors.
var (
	// ErrTextureTableFull is returned when no texture slot is free.
	ErrTextureTableFull = errors.New("gfx: texture table full")
)

// TextureID indexes the texture table.
type TextureID int

// NoTexture passed to TextureSet disables texturing.
const NoTexture TextureID = -1

// TextureFlags modify how a texture is loaded.
type TextureFlags uint8

const (
	// NoResample uploads the pixels at their original size.
	NoResample TextureFlags = 1 << iota
)

// PixelFormat is the layout of texture pixels.
type PixelFormat = render.PixelFormat

// Pixel formats.
const (
	FormatAlpha = render.FormatAlpha
	FormatRGB   = render.FormatRGB
	FormatRGBA  = render.FormatRGBA

	// StoreAuto stores a loaded file in the format it decoded to.
	StoreAuto PixelFormat = 0xff
)

// lowQualityMin is the size both sides must exceed before low texture
// quality halves an image.
const lowQualityMin = 16

// invalidTextureData is a 4x4 RGBA checker: red, green, blue and yellow
// quadrants.
var invalidTextureData = [4 * 4 * 4]byte{
	0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff,
	0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff,
	0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0x00, 0xff, 0xff, 0xff, 0x00, 0xff,
	0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0x00, 0xff, 0xff, 0xff, 0x00, 0xff,
}

type textureSlot struct {
	handle  render.TextureID
	memSize int
}

// storePixelSize is the accounted size of one pixel stored as f.
// Unknown formats, StoreAuto included, count as four bytes.
func storePixelSize(f PixelFormat) int {
	switch f {
	case FormatAlpha:
		return 1
	case FormatRGB:
		return 3
	default:
		return 4
	}
}

// InvalidTexture returns the fallback texture returned by failed loads.
func (g *Graphics) InvalidTexture() TextureID {
	return g.invalid
}

// LoadTextureRaw uploads a width x height image of the given format and
// returns its slot. RGB and RGBA images are downscaled unless flags has
// NoResample: to fit the device's maximum texture size, or to half size
// under low texture quality.
//
// The accounted memory is the final size times the pixel size of store,
// while the upload itself uses format.
//
// Failures are logged and return the invalid texture, as does every call
// made with the stress flag set. pixels is not retained.
func (g *Graphics) LoadTextureRaw(width, height int, format PixelFormat, pixels []byte, store PixelFormat, flags TextureFlags) TextureID {
	if g.cfg.Stress {
		return g.invalid
	}
	id, err := g.createTexture(width, height, format, pixels, store, flags)
	if err != nil {
		quadgfx.Logger().Warn("gfx: texture load failed", "width", width, "height", height, "format", format.String(), "err", err)
		return g.invalid
	}
	return id
}

func (g *Graphics) createTexture(width, height int, format PixelFormat, pixels []byte, store PixelFormat, flags TextureFlags) (TextureID, error) {
	src, err := image.FromRaw(pixels, width, height, format)
	if err != nil {
		return 0, err
	}
	slot, ok := g.slots.Alloc()
	if !ok {
		return 0, ErrTextureTableFull
	}

	upload := src
	if flags&NoResample == 0 && format.IsTruecolor() {
		w, h := g.resampleSize(width, height)
		if w != width || h != height {
			scaled, err := image.Rescale(src, w, h)
			if err != nil {
				g.slots.Release(slot)
				return 0, fmt.Errorf("gfx: rescale %dx%d to %dx%d: %w", width, height, w, h, err)
			}
			defer image.PutToDefault(scaled)
			upload = scaled
		}
	}

	desc := render.DefaultTextureDescriptor(upload.Width(), upload.Height(), format)
	desc.Label = fmt.Sprintf("texture %d", slot)
	handle := g.device.CreateTexture(desc, upload.Data())

	size := upload.Width() * upload.Height() * storePixelSize(store)
	g.textures[slot] = textureSlot{handle: handle, memSize: size}
	g.memoryUsage += size
	return TextureID(slot), nil
}

// resampleSize returns the upload size for a resampled texture.
func (g *Graphics) resampleSize(w, h int) (int, int) {
	limit := g.caps.MaxTextureSize
	if limit > 0 && (w > limit || h > limit) {
		return image.FitSize(w, h, limit)
	}
	if w > lowQualityMin && h > lowQualityMin && g.cfg.TextureQuality == quadgfx.TextureQualityLow {
		return w / 2, h / 2
	}
	return w, h
}

// LoadTextureRawSub replaces a width x height region of a loaded texture.
// Memory accounting is unchanged.
func (g *Graphics) LoadTextureRawSub(id TextureID, x, y, width, height int, format PixelFormat, pixels []byte) {
	if !g.loaded(id) {
		quadgfx.Logger().Warn("gfx: update of unknown texture", "id", int(id))
		return
	}
	g.device.UpdateTexture(g.textures[id].handle, x, y, width, height, format, pixels)
}

// UnloadTexture releases a texture and returns its slot to the free list.
// The invalid texture and negative ids are ignored. Ids that are not loaded
// are ignored with a warning.
func (g *Graphics) UnloadTexture(id TextureID) {
	if id == g.invalid || id < 0 {
		return
	}
	if !g.loaded(id) {
		quadgfx.Logger().Warn("gfx: unload of unknown texture", "id", int(id))
		return
	}
	slot := &g.textures[id]
	g.device.DeleteTexture(slot.handle)
	g.memoryUsage -= slot.memSize
	*slot = textureSlot{}
	g.slots.Release(int(id))
}

// TextureSet binds a texture for the next scope. NoTexture disables
// texturing. Unknown ids bind the invalid texture.
func (g *Graphics) TextureSet(id TextureID) {
	if !g.require("TextureSet", ModeIdle, "within begin") {
		return
	}
	if id == NoTexture {
		g.device.UnbindTexture()
		return
	}
	if !g.loaded(id) {
		quadgfx.Logger().Warn("gfx: bind of unknown texture", "id", int(id))
		id = g.invalid
	}
	g.device.BindTexture(g.textures[id].handle)
}

// MemoryUsage returns the accounted texture memory in bytes.
func (g *Graphics) MemoryUsage() int {
	return g.memoryUsage
}

// TextureSize returns the accounted size of a loaded texture.
func (g *Graphics) TextureSize(id TextureID) (int, bool) {
	if !g.loaded(id) {
		return 0, false
	}
	return g.textures[id].memSize, true
}

func (g *Graphics) loaded(id TextureID) bool {
	return id >= 0 && g.slots.Allocated(int(id))
}

// TextureStats summarizes the texture table.
type TextureStats struct {
	// UsedBytes is the accounted texture memory.
	UsedBytes int

	// Textures is the number of loaded textures, the invalid one included.
	Textures int

	// Capacity is the table size.
	Capacity int
}

// String returns a human-readable summary.
func (s TextureStats) String() string {
	return fmt.Sprintf("Textures[%d/%d slots, %d bytes]", s.Textures, s.Capacity, s.UsedBytes)
}

// TextureStats returns texture table statistics.
func (g *Graphics) TextureStats() TextureStats {
	return TextureStats{
		UsedBytes: g.memoryUsage,
		Textures:  g.slots.InUse(),
		Capacity:  g.slots.Len(),
	}
}
