package image

import "errors"

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized or a
	// decoded image is not 8-bit truecolor.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a tightly packed pixel buffer: rows follow each other with no
// padding, so Data can be handed to a device upload as is.
//
// ImageBuf is not safe for concurrent use.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	format Format
}

// NewImageBuf creates a zeroed image buffer with the given dimensions and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	return &ImageBuf{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromRaw wraps existing tightly packed data without copying.
// The caller must ensure data remains valid for the lifetime of the ImageBuf.
func FromRaw(data []byte, width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	size := format.ImageBytes(width, height)
	if len(data) < size {
		return nil, ErrDataTooSmall
	}

	return &ImageBuf{
		data:   data[:size],
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// Stride returns the number of bytes per row.
func (b *ImageBuf) Stride() int {
	return b.format.RowBytes(b.width)
}

// RowBytes returns the pixel data for row y, or nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.Stride()
	return b.data[y*stride : (y+1)*stride]
}

// offset returns the index of the first byte of pixel (x, y), or -1.
func (b *ImageBuf) offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * b.format.BytesPerPixel()
}

// GetRGBA returns the pixel at (x, y) widened to RGBA. Alpha buffers read
// as white with their coverage; RGB buffers read as opaque. Out-of-bounds
// reads return zero.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	i := b.offset(x, y)
	if i < 0 {
		return 0, 0, 0, 0
	}
	p := b.data[i:]
	switch b.format {
	case FormatAlpha:
		return 255, 255, 255, p[0]
	case FormatRGB:
		return p[0], p[1], p[2], 255
	case FormatRGBA:
		return p[0], p[1], p[2], p[3]
	}
	return 0, 0, 0, 0
}

// SetRGBA stores the pixel at (x, y), narrowed to the buffer format.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	i := b.offset(x, y)
	if i < 0 {
		return ErrOutOfBounds
	}
	copy(b.data[i:i+b.format.BytesPerPixel()], pixelOf(b.format, r, g, bl, a))
	return nil
}

// pixelOf returns the bytes of one pixel in format f.
func pixelOf(f Format, r, g, bl, a uint8) []byte {
	switch f {
	case FormatAlpha:
		return []byte{a}
	case FormatRGB:
		return []byte{r, g, bl}
	default:
		return []byte{r, g, bl, a}
	}
}

// Clear sets all pixels to zero.
func (b *ImageBuf) Clear() {
	clear(b.data)
}

// Fill sets every pixel to the given color.
func (b *ImageBuf) Fill(r, g, bl, a uint8) {
	px := pixelOf(b.format, r, g, bl, a)
	for i := 0; i+len(px) <= len(b.data); i += len(px) {
		copy(b.data[i:], px)
	}
}

// ByteSize returns the total size of the image data in bytes.
func (b *ImageBuf) ByteSize() int {
	return len(b.data)
}

// IsEmpty returns true if the image has zero dimensions.
func (b *ImageBuf) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}
