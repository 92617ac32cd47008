package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	// Extra container formats accepted under the same 8-bit truecolor rules.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("image: empty data")

// Codec decodes an image file into a tightly packed RGB or RGBA buffer.
// Ownership of the returned buffer passes to the caller.
type Codec interface {
	Decode(path string) (*ImageBuf, error)
}

// FileCodec is the default Codec. It reads path from FS, or from the
// operating system when FS is nil.
type FileCodec struct {
	FS fs.FS
}

// Decode implements Codec.
func (c FileCodec) Decode(path string) (*ImageBuf, error) {
	var (
		data []byte
		err  error
	)
	if c.FS != nil {
		data, err = fs.ReadFile(c.FS, path)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, fmt.Errorf("image: read %s: %w", path, err)
	}

	buf, err := DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("image: decode %s: %w", path, err)
	}
	return buf, nil
}

// DecodeBytes decodes PNG (or BMP, WebP) data. Only 8-bit truecolor and
// 8-bit truecolor with alpha are accepted; everything else, including
// grayscale, palette and 16-bit images, fails with ErrInvalidFormat.
func DecodeBytes(data []byte) (*ImageBuf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image: decode config: %w", err)
	}

	var format Format
	switch cfg.ColorModel {
	case color.RGBAModel:
		format = FormatRGB
	case color.NRGBAModel:
		format = FormatRGBA
	default:
		return nil, ErrInvalidFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return fromStdImage(img, format)
}

// fromStdImage copies img into a packed buffer of the given format.
func fromStdImage(img image.Image, format Format) (*ImageBuf, error) {
	bounds := img.Bounds()
	buf, err := NewImageBuf(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}
	origin := nrgba.PixOffset(nrgba.Rect.Min.X, nrgba.Rect.Min.Y)

	for y := range buf.height {
		src := nrgba.Pix[origin+y*nrgba.Stride : origin+y*nrgba.Stride+buf.width*4]
		dst := buf.RowBytes(y)
		if format == FormatRGBA {
			copy(dst, src)
			continue
		}
		for x := range buf.width {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return buf, nil
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// ToStdImage converts the buffer to an *image.NRGBA.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		for x := range b.width {
			r, g, bl, a := b.GetRGBA(x, y)
			off := y*nrgba.Stride + x*4
			nrgba.Pix[off] = r
			nrgba.Pix[off+1] = g
			nrgba.Pix[off+2] = bl
			nrgba.Pix[off+3] = a
		}
	}
	return nrgba
}
