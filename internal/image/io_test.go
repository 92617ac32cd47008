package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestDecodeBytesTruecolor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	src.Set(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	buf, err := DecodeBytes(encodePNG(t, src))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if buf.Format() != FormatRGB {
		t.Errorf("Format() = %v, want RGB", buf.Format())
	}
	if w, h := buf.Bounds(); w != 3 || h != 2 {
		t.Errorf("Bounds() = %dx%d, want 3x2", w, h)
	}
	if r, g, b, _ := buf.GetRGBA(1, 0); r != 10 || g != 20 || b != 30 {
		t.Errorf("pixel (1,0) = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}

func TestDecodeBytesTruecolorAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	src.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	buf, err := DecodeBytes(encodePNG(t, src))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if buf.Format() != FormatRGBA {
		t.Errorf("Format() = %v, want RGBA", buf.Format())
	}
	if r, g, b, a := buf.GetRGBA(0, 0); r != 200 || g != 100 || b != 50 || a != 128 {
		t.Errorf("pixel (0,0) = (%d,%d,%d,%d), want (200,100,50,128)", r, g, b, a)
	}
}

func TestDecodeBytesRejects(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	paletted := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White})
	deep := image.NewNRGBA64(image.Rect(0, 0, 2, 2))
	deep.SetNRGBA64(0, 0, color.NRGBA64{R: 1, G: 2, B: 3, A: 4})

	tests := []struct {
		name string
		img  image.Image
	}{
		{"grayscale", gray},
		{"palette", paletted},
		{"16-bit", deep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := DecodeBytes(encodePNG(t, tt.img))
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("DecodeBytes() error = %v, want ErrInvalidFormat", err)
			}
			if buf != nil {
				t.Error("DecodeBytes() should not return a partial result")
			}
		})
	}
}

func TestDecodeBytesGarbage(t *testing.T) {
	if _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := DecodeBytes([]byte("not an image")); err == nil {
		t.Error("DecodeBytes(garbage) should fail")
	}
}

func TestFileCodec(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(0, 0, color.NRGBA{A: 10})
	fsys := fstest.MapFS{
		"skins/default.png": {Data: encodePNG(t, src)},
	}
	codec := FileCodec{FS: fsys}

	buf, err := codec.Decode("skins/default.png")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if buf.Format() != FormatRGBA {
		t.Errorf("Format() = %v, want RGBA", buf.Format())
	}

	if _, err := codec.Decode("skins/missing.png"); err == nil {
		t.Error("Decode(missing) should fail")
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	buf, _ := NewImageBuf(2, 2, FormatRGBA)
	buf.Fill(9, 8, 7, 100)

	var out bytes.Buffer
	if err := buf.EncodePNG(&out); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	back, err := DecodeBytes(out.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if r, g, b, a := back.GetRGBA(1, 1); r != 9 || g != 8 || b != 7 || a != 100 {
		t.Errorf("pixel = (%d,%d,%d,%d), want (9,8,7,100)", r, g, b, a)
	}
}
