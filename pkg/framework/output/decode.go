package output

import (
	"fmt"
	"image"
)

// decodeBGR converts a bottom-up BGR frame into a top-down RGBA image. Each
// source row is len(buf)/h bytes, which covers DIB row padding.
func decodeBGR(buf []byte, w, h int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img, nil
	}

	stride := len(buf) / h
	if stride < 3*w {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrShortFrame, len(buf), w, h)
	}

	for y := 0; y < h; y++ {
		src := buf[(h-1-y)*stride : (h-1-y)*stride+3*w]
		dst := img.Pix[y*img.Stride : y*img.Stride+4*w]
		for x := 0; x < w; x++ {
			dst[4*x+0] = src[3*x+2]
			dst[4*x+1] = src[3*x+1]
			dst[4*x+2] = src[3*x+0]
			dst[4*x+3] = 0xff
		}
	}
	return img, nil
}

// RowStride returns the byte length of one padded DIB row of w BGR pixels.
func RowStride(w int) int {
	return (3*w + 3) &^ 3
}
