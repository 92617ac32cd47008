// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/quadgfx/internal/image"
)

// TextureID is an opaque device texture handle.
type TextureID uint32

// PixelFormat is the layout of uploaded pixel bytes.
type PixelFormat = image.Format

// Pixel formats accepted by CreateTexture and UpdateTexture.
const (
	FormatAlpha = image.FormatAlpha
	FormatRGB   = image.FormatRGB
	FormatRGBA  = image.FormatRGBA
)

// Device is the graphics collaborator. Calls are synchronous and return no
// status; Present may block on vertical sync.
type Device interface {
	// Capabilities reports the device limits.
	Capabilities() DeviceCapabilities

	// Submit draws vertices as one primitive batch. The slice is only valid
	// for the duration of the call.
	Submit(vertices []Vertex, topology Topology)

	// CreateTexture uploads pixels laid out as desc.PixelFormat.
	CreateTexture(desc TextureDescriptor, pixels []byte) TextureID

	// UpdateTexture replaces a w x h region of an existing texture.
	UpdateTexture(id TextureID, x, y, w, h int, format PixelFormat, pixels []byte)

	// DeleteTexture releases a texture.
	DeleteTexture(id TextureID)

	// BindTexture selects the texture sampled by subsequent submissions.
	BindTexture(id TextureID)

	// UnbindTexture disables texturing.
	UnbindTexture()

	SetBlend(mode BlendMode)
	SetWrap(mode WrapMode)

	// SetScissor restricts drawing to a rectangle in framebuffer pixels with
	// a bottom-left origin.
	SetScissor(x, y, w, h int)

	// ClearScissor disables the scissor test.
	ClearScissor()

	// SetProjection maps the given world rectangle onto the viewport.
	SetProjection(left, top, right, bottom float32)

	Clear(r, g, b float32)
	Present()
}

// Window is implemented by devices that own a window.
type Window interface {
	// Active reports whether the window has input focus.
	Active() bool

	// Open reports whether the window is still open.
	Open() bool
}

// TextureDescriptor describes parameters for creating a texture.
// This mirrors the WebGPU GPUTextureDescriptor specification.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// MipLevelCount is the number of mipmap levels.
	// Use 1 for no mipmaps.
	MipLevelCount uint32

	// Format is the device storage format.
	Format gputypes.TextureFormat

	// PixelFormat is the layout of the uploaded bytes.
	PixelFormat PixelFormat

	// Filter selects linear sampling; the quad renderer always uses it.
	Filter FilterMode
}

// FilterMode selects texture sampling.
type FilterMode uint8

const (
	// FilterNearest samples the closest texel.
	FilterNearest FilterMode = iota

	// FilterLinear interpolates between texels.
	FilterLinear
)

// DefaultTextureDescriptor returns a TextureDescriptor for a single-level,
// linearly filtered texture holding pixels of the given format.
func DefaultTextureDescriptor(width, height int, format PixelFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:         uint32(width),
		Height:        uint32(height),
		MipLevelCount: 1,
		Format:        format.GPUFormat(),
		PixelFormat:   format,
		Filter:        FilterLinear,
	}
}

// DeviceCapabilities describes the capabilities of a device.
type DeviceCapabilities struct {
	// MaxTextureSize is the maximum texture dimension supported.
	MaxTextureSize int

	// QuadTopology indicates if TopologyQuads submissions are supported.
	QuadTopology bool

	// VideoModes lists the fullscreen modes the display offers.
	VideoModes []VideoMode

	// DeviceName is the device name.
	DeviceName string
}

// VideoMode is one display mode.
type VideoMode struct {
	Width, Height    int
	Red, Green, Blue int
}

// DefaultCapabilities matches a small fixed-function console GPU.
func DefaultCapabilities() DeviceCapabilities {
	return DeviceCapabilities{
		MaxTextureSize: 256,
		QuadTopology:   true,
		VideoModes:     []VideoMode{{Width: 640, Height: 480, Red: 8, Green: 8, Blue: 8}},
		DeviceName:     "default",
	}
}

// NullDevice accepts every call and draws nothing. Texture ids are handed
// out sequentially so callers can still tell textures apart.
type NullDevice struct {
	Caps DeviceCapabilities
	last TextureID
}

// Capabilities returns Caps, or DefaultCapabilities when Caps is zero.
func (d *NullDevice) Capabilities() DeviceCapabilities {
	if d.Caps.MaxTextureSize == 0 {
		return DefaultCapabilities()
	}
	return d.Caps
}

// CreateTexture returns a fresh id.
func (d *NullDevice) CreateTexture(TextureDescriptor, []byte) TextureID {
	d.last++
	return d.last
}

func (*NullDevice) Submit([]Vertex, Topology)                                        {}
func (*NullDevice) UpdateTexture(TextureID, int, int, int, int, PixelFormat, []byte) {}
func (*NullDevice) DeleteTexture(TextureID)                                          {}
func (*NullDevice) BindTexture(TextureID)                                            {}
func (*NullDevice) UnbindTexture()                                                   {}
func (*NullDevice) SetBlend(BlendMode)                                               {}
func (*NullDevice) SetWrap(WrapMode)                                                 {}
func (*NullDevice) SetScissor(int, int, int, int)                                    {}
func (*NullDevice) ClearScissor()                                                    {}
func (*NullDevice) SetProjection(float32, float32, float32, float32)                 {}
func (*NullDevice) Clear(float32, float32, float32)                                  {}
func (*NullDevice) Present()                                                         {}

// Ensure NullDevice implements Device.
var _ Device = (*NullDevice)(nil)

// DeviceHandle provides GPU device access from a gogpu host application.
// Hosts built on gogpu pass their provider so the renderer can report the
// surface it presents to.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used when the host is not a gogpu application.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
