// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// Point is a vertex position.
type Point struct {
	X, Y, Z float32
}

// TexCoord is a texture-space coordinate.
type TexCoord struct {
	U, V float32
}

// Color is a straight-alpha RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// White is the default corner color of a fresh drawing scope.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Vertex is one corner as submitted to the device.
type Vertex struct {
	Pos   Point
	Tex   TexCoord
	Color Color
}

// Topology selects how the device assembles submitted vertices.
type Topology uint8

const (
	// TopologyTriangles assembles every 3 vertices into a triangle.
	TopologyTriangles Topology = iota

	// TopologyQuads assembles every 4 vertices into a quad.
	// Only fixed-function devices support it.
	TopologyQuads
)

// VerticesPerQuad returns how many vertices one quad expands to.
func (t Topology) VerticesPerQuad() int {
	if t == TopologyQuads {
		return 4
	}
	return 6
}

// GPU returns the WebGPU primitive topology for t. Quads have no WebGPU
// equivalent, so ok is false for TopologyQuads.
func (t Topology) GPU() (topology gputypes.PrimitiveTopology, ok bool) {
	if t == TopologyTriangles {
		return gputypes.PrimitiveTopologyTriangleList, true
	}
	return topology, false
}

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case TopologyTriangles:
		return "triangles"
	case TopologyQuads:
		return "quads"
	default:
		return "unknown"
	}
}

// BlendMode selects the color blend equation.
type BlendMode uint8

const (
	// BlendNone disables blending.
	BlendNone BlendMode = iota

	// BlendNormal is src*alpha + dst*(1-alpha).
	BlendNormal

	// BlendAdditive is src*alpha + dst.
	BlendAdditive
)

// WrapMode selects texture coordinate wrapping.
type WrapMode uint8

const (
	// WrapRepeat repeats the texture outside [0, 1].
	WrapRepeat WrapMode = iota

	// WrapClamp clamps coordinates to the edge texels.
	WrapClamp
)
