package vision

import (
	"image"

	"github.com/disintegration/imaging"
)

// toGrayscaleBuffer converts src to an 8-bit grayscale row-major buffer
// using github.com/disintegration/imaging's Grayscale transform, the same
// library other_examples/manifests/MeKo-Christian-pogo (pogo)'s detector
// pipeline depends on ahead of its own contour/line detection stages.
func toGrayscaleBuffer(src image.Image) (buf []byte, width, height int) {
	gray := imaging.Grayscale(src)
	bounds := gray.Bounds()
	width, height = bounds.Dx(), bounds.Dy()

	buf = make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, _, _, _ := gray.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf[y*width+x] = byte(r >> 8)
		}
	}
	return buf, width, height
}
