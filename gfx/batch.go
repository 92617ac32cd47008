// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"fmt"

	"github.com/gogpu/quadgfx/render"
)

// vertexDepth is the Z coordinate of every vertex.
const vertexDepth = -5

// Batch accumulates vertices in a fixed array and submits them to a device
// in one call per flush.
//
// Batch is not safe for concurrent use.
type Batch struct {
	vertices []render.Vertex
	count    int
	topology render.Topology
	device   render.Device
	enabled  bool
}

// NewBatch creates a batch of capacity vertices submitted as topology.
func NewBatch(device render.Device, capacity int, topology render.Topology) *Batch {
	b := &Batch{
		vertices: make([]render.Vertex, capacity),
		topology: topology,
		device:   device,
		enabled:  true,
	}
	for i := range b.vertices {
		b.vertices[i].Pos.Z = vertexDepth
	}
	return b
}

// Cap returns the vertex capacity.
func (b *Batch) Cap() int { return len(b.vertices) }

// Len returns the number of pending vertices.
func (b *Batch) Len() int { return b.count }

// Topology returns the topology vertices are submitted as.
func (b *Batch) Topology() render.Topology { return b.topology }

// Pending returns the vertices that the next Flush submits.
func (b *Batch) Pending() []render.Vertex { return b.vertices[:b.count] }

// Reserve returns the k slots following the pending vertices. Writers set
// X, Y, texture coordinates and color; Z is fixed. The slots become pending
// once AddVertices(k) is called. If the slots would run past the array the
// batch is flushed first.
//
// Reserve panics if k exceeds Cap.
func (b *Batch) Reserve(k int) []render.Vertex {
	if k > len(b.vertices) {
		panic(fmt.Sprintf("gfx: reserve %d vertices exceeds batch capacity %d", k, len(b.vertices)))
	}
	if b.count+k > len(b.vertices) {
		b.Flush()
	}
	return b.vertices[b.count : b.count+k]
}

// AddVertices marks k more vertices as pending. The batch flushes as soon as
// adding another k would reach capacity.
func (b *Batch) AddVertices(k int) {
	if b.count+k > len(b.vertices) {
		b.Flush()
	}
	b.count += k
	if b.count+k >= len(b.vertices) {
		b.Flush()
	}
}

// Flush submits the pending vertices and resets the count. When rendering
// is disabled the vertices are discarded. Flushing an empty batch does
// nothing.
func (b *Batch) Flush() {
	if b.count == 0 {
		return
	}
	if b.enabled {
		b.device.Submit(b.vertices[:b.count], b.topology)
	}
	b.count = 0
}

// SetRenderEnabled turns device submission on or off.
func (b *Batch) SetRenderEnabled(enabled bool) {
	b.enabled = enabled
}

// RenderEnabled reports whether flushes reach the device.
func (b *Batch) RenderEnabled() bool {
	return b.enabled
}
