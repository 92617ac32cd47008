// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"errors"
	"fmt"

	"github.com/gogpu/quadgfx"
	"github.com/gogpu/quadgfx/internal/image"
	"github.com/gogpu/quadgfx/internal/slots"
	"github.com/gogpu/quadgfx/render"
	"github.com/gogpu/quadgfx/storage"
)

// ErrInit is returned by New when the renderer cannot be set up.
var ErrInit = errors.New("gfx: init failed")

// Graphics is the renderer. It owns the vertex batch, the texture table and
// the drawing scope state, and forwards device state changes.
//
// Graphics is not safe for concurrent use.
type Graphics struct {
	cfg     quadgfx.Config
	device  render.Device
	storage storage.Storage
	codec   image.Codec
	host    render.DeviceHandle
	assert  AssertFunc
	caps    render.DeviceCapabilities

	batch *Batch

	slots          *slots.Table
	textures       []textureSlot
	invalid        TextureID
	memoryUsage    int
	screenshotNext bool

	mode      Mode
	rotation  float32
	texCoords [4]render.TexCoord
	colors    [4]render.Color

	screenX0, screenY0 float32
	screenX1, screenY1 float32
}

// New validates cfg and initializes a renderer: the vertex batch, the
// texture free list and the invalid texture in slot 0.
func New(cfg quadgfx.Config, opts ...Option) (*Graphics, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graphics{
		cfg:      cfg,
		device:   o.device,
		storage:  o.storage,
		codec:    o.codec,
		host:     o.host,
		assert:   o.assert,
		caps:     o.device.Capabilities(),
		slots:    slots.New(cfg.MaxTextures),
		textures: make([]textureSlot, cfg.MaxTextures),
	}

	topology := render.TopologyQuads
	if cfg.QuadsAsTriangles {
		topology = render.TopologyTriangles
	} else if !g.caps.QuadTopology {
		quadgfx.Logger().Warn("gfx: device has no quad topology, using triangles", "device", g.caps.DeviceName)
		topology = render.TopologyTriangles
	}
	g.batch = NewBatch(g.device, cfg.MaxVertices, topology)

	invalid, err := g.createTexture(4, 4, image.FormatRGBA, invalidTextureData[:], image.FormatRGBA, NoResample)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid texture: %w", ErrInit, err)
	}
	g.invalid = invalid
	g.screenshotNext = cfg.Screenshot

	quadgfx.Logger().Info("gfx: initialized",
		"width", cfg.ScreenWidth,
		"height", cfg.ScreenHeight,
		"topology", topology.String(),
		"max_vertices", cfg.MaxVertices,
		"max_texture_size", g.caps.MaxTextureSize,
		"device", g.caps.DeviceName,
		"surface_format", g.host.SurfaceFormat(),
	)
	return g, nil
}

// Config returns the configuration the renderer was created with.
func (g *Graphics) Config() quadgfx.Config {
	return g.cfg
}

// Device returns the device the renderer submits to.
func (g *Graphics) Device() render.Device {
	return g.device
}

// Batch returns the vertex batch.
func (g *Graphics) Batch() *Batch {
	return g.batch
}

// Flush submits pending vertices without ending the scope.
func (g *Graphics) Flush() {
	g.batch.Flush()
}

// SetRenderEnabled turns device submission on or off. Vertices flushed while
// disabled are dropped.
func (g *Graphics) SetRenderEnabled(enabled bool) {
	g.batch.SetRenderEnabled(enabled)
}

// Shutdown flushes pending vertices and releases every texture, including
// the invalid texture. The renderer must not be used afterwards.
func (g *Graphics) Shutdown() {
	g.batch.Flush()
	g.mode = ModeIdle

	released := 0
	for i := range g.textures {
		if !g.slots.Allocated(i) {
			continue
		}
		g.device.DeleteTexture(g.textures[i].handle)
		g.textures[i] = textureSlot{}
		g.slots.Release(i)
		released++
	}
	g.memoryUsage = 0
	quadgfx.Logger().Info("gfx: shutdown", "textures_released", released)
}
