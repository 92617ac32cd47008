// Package glyph renders the 16x16 glyph atlas used for grid text.
//
// Cell c of the atlas (column c%16, row c/16) holds the Latin-1 character
// with code c, centred horizontally and sitting on a shared baseline.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	intImage "github.com/gogpu/quadgfx/internal/image"
)

// Grid is the number of cells per atlas row and column.
const Grid = 16

// ErrCellSize is returned for cell sizes that cannot hold a glyph.
var ErrCellSize = errors.New("glyph: invalid cell size")

// minCell is the smallest usable cell edge in pixels.
const minCell = 4

// BuildAtlas renders a (16*cell) x (16*cell) RGBA atlas with the embedded Go
// Regular font. Color channels are white and alpha carries coverage, so the
// atlas tints cleanly with per-vertex colors.
func BuildAtlas(cell int) (*intImage.ImageBuf, error) {
	if cell < minCell {
		return nil, fmt.Errorf("%w: %d", ErrCellSize, cell)
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(cell) * 0.75,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	size := Grid * cell
	mask := image.NewAlpha(image.Rect(0, 0, size, size))

	metrics := face.Metrics()
	// Baseline offset that vertically centres ascent+descent in a cell.
	baseline := (fixed.I(cell) - metrics.Ascent - metrics.Descent) / 2
	baseline += metrics.Ascent

	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
	}
	for c := range Grid * Grid {
		r := charmap.ISO8859_1.DecodeByte(byte(c))
		if !unicode.IsPrint(r) || r == ' ' {
			continue
		}
		s := string(r)
		advance := drawer.MeasureString(s)
		x := fixed.I((c%Grid)*cell) + (fixed.I(cell)-advance)/2
		y := fixed.I((c/Grid)*cell) + baseline
		drawer.Dot = fixed.Point26_6{X: x, Y: y}
		drawer.DrawString(s)
	}

	return toRGBA(mask)
}

// toRGBA expands an alpha mask into white RGBA pixels.
func toRGBA(mask *image.Alpha) (*intImage.ImageBuf, error) {
	b := mask.Bounds()
	buf, err := intImage.NewImageBuf(b.Dx(), b.Dy(), intImage.FormatRGBA)
	if err != nil {
		return nil, err
	}
	data := buf.Data()
	for i, a := range mask.Pix {
		data[i*4+0] = 0xff
		data[i*4+1] = 0xff
		data[i*4+2] = 0xff
		data[i*4+3] = a
	}
	return buf, nil
}

// Cell returns the atlas cell of r, or false when r has no Latin-1 code.
func Cell(r rune) (col, row int, ok bool) {
	b, ok := charmap.ISO8859_1.EncodeRune(r)
	if !ok {
		return 0, 0, false
	}
	return int(b) % Grid, int(b) / Grid, true
}
