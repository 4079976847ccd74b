package vision

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrNotAnImage is returned by DefaultBackend.DecodeImage when the file's
// bytes cannot be decoded by any registered image codec (spec.md §6).
var ErrNotAnImage = errors.New("vision: file is not an image")

// DefaultBackend is the pure-Go Backend implementation: image decoding via
// the standard library's registered codecs plus golang.org/x/image's bmp
// and tiff decoders, grayscale conversion via
// github.com/disintegration/imaging, and a hand-rolled Sobel/threshold/
// contour/line pipeline (sobel.go, contour.go, lines.go) grounded on
// other_examples/ba867707_MeKo-Christian-pogo__internal-detector-
// contour.go.go.
type DefaultBackend struct{}

// NewDefaultBackend returns a ready-to-use DefaultBackend. It is
// stateless and safe for concurrent use by multiple goroutines, each
// operating on its own Image/Mono values.
func NewDefaultBackend() *DefaultBackend {
	return &DefaultBackend{}
}

// DecodeImage implements Backend.
func (DefaultBackend) DecodeImage(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, errors.Wrapf(err, "vision: open %s", path)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return Image{}, errors.Wrapf(ErrNotAnImage, "decode %s: %v", path, err)
	}

	return imageFromDecoded(src), nil
}

// DecodeBytes decodes an already-loaded image buffer, for callers that do
// not have a filesystem path (e.g. URL-fetched pages).
func (DefaultBackend) DecodeBytes(data []byte) (Image, error) {
	src, _, err := image.Decode(&byteReader{data: data})
	if err != nil {
		return Image{}, errors.Wrap(ErrNotAnImage, err.Error())
	}
	return imageFromDecoded(src), nil
}

func imageFromDecoded(src image.Image) Image {
	buf, w, h := toGrayscaleBuffer(src)
	return Image{Width: w, Height: h, Gray: buf}
}

// byteReader adapts an in-memory buffer to io.Reader for image.Decode,
// without pulling in bytes.Reader's seek semantics that DecodeBytes does
// not need.
type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
