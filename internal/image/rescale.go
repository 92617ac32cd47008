package image

// Rescale returns a newWidth x newHeight copy of src produced by a box
// filter: every destination pixel is the integer average, per channel, of a
// (W/newWidth) x (H/newHeight) block of source pixels.
//
// Only RGB and RGBA sources are accepted. The target size must not be larger
// than the source. The returned buffer comes from the default pool; hand it
// back with PutToDefault once the pixels have been consumed.
func Rescale(src *ImageBuf, newWidth, newHeight int) (*ImageBuf, error) {
	if src == nil || src.IsEmpty() {
		return nil, ErrInvalidDimensions
	}
	if !src.format.IsTruecolor() {
		return nil, ErrInvalidFormat
	}
	if newWidth <= 0 || newHeight <= 0 || newWidth > src.width || newHeight > src.height {
		return nil, ErrInvalidDimensions
	}

	dst := GetFromDefault(newWidth, newHeight, src.format)
	if dst == nil {
		return nil, ErrInvalidDimensions
	}

	scaleW := src.width / newWidth
	scaleH := src.height / newHeight
	bpp := src.format.BytesPerPixel()

	c := 0
	for y := range newHeight {
		for x := range newWidth {
			for ch := range bpp {
				dst.data[c*bpp+ch] = sample(src, x*scaleW, y*scaleH, ch, scaleW, scaleH)
			}
			c++
		}
	}
	return dst, nil
}

// sample averages channel ch over the scaleW x scaleH block at (u, v).
func sample(src *ImageBuf, u, v, ch, scaleW, scaleH int) byte {
	bpp := src.format.BytesPerPixel()
	value := 0
	for x := range scaleW {
		for y := range scaleH {
			value += int(src.data[((v+y)*src.width+(u+x))*bpp+ch])
		}
	}
	return byte(value / (scaleW * scaleH))
}

// FitSize returns the largest size that keeps the aspect ratio of w x h and
// whose larger side equals limit. The smaller side is truncated and never
// drops below one pixel. Sizes already within limit are returned unchanged.
func FitSize(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}
