// Package image provides the pixel buffers, strict decoding and box-filter
// rescaling used by the texture loader.
package image

import "github.com/gogpu/gputypes"

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatAlpha is 8-bit alpha only (1 byte per pixel).
	FormatAlpha Format = iota

	// FormatRGB is 24-bit truecolor (3 bytes per pixel, no alpha).
	FormatRGB

	// FormatRGBA is 32-bit truecolor with straight alpha (4 bytes per pixel).
	FormatRGBA

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// GPU is the texture format a device stores this format in.
	// WebGPU has no 24-bit format, so RGB is widened to RGBA8 on upload.
	GPU gputypes.TextureFormat
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatAlpha: {BytesPerPixel: 1, Channels: 1, HasAlpha: true, GPU: gputypes.TextureFormatR8Unorm},
	FormatRGB:   {BytesPerPixel: 3, Channels: 3, HasAlpha: false, GPU: gputypes.TextureFormatRGBA8Unorm},
	FormatRGBA:  {BytesPerPixel: 4, Channels: 4, HasAlpha: true, GPU: gputypes.TextureFormatRGBA8Unorm},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{GPU: gputypes.TextureFormatUndefined}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// GPUFormat returns the device texture format for this pixel format.
func (f Format) GPUFormat() gputypes.TextureFormat {
	return f.Info().GPU
}

// IsTruecolor reports whether the format is RGB or RGBA, the only formats
// the rescaler accepts.
func (f Format) IsTruecolor() bool {
	return f == FormatRGB || f == FormatRGBA
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAlpha:
		return "Alpha"
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
