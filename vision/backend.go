// Package vision provides the pixel-level collaborator the kumiko pipeline
// consumes but treats as an external boundary (spec.md §1, §6): grayscale
// conversion, gradient/threshold, contour extraction, polygon
// simplification, and line-segment detection.
package vision

// Point is an integer image coordinate, origin top-left, y axis downward.
type Point struct {
	X int
	Y int
}

// Polygon is an ordered, implicitly-closed sequence of points, as returned
// by Backend.Contours and consumed by Backend.ApproxPoly.
type Polygon []Point

// Segment is a detected straight line in image space.
type Segment struct {
	A, B Point
}

// Image is a decoded raster image reduced to its dimensions and grayscale
// buffer, so backends only decode and gray-convert once per page; the
// original image.Image is not kept.
type Image struct {
	Width, Height int
	Gray          []byte // row-major, one byte per pixel, len == Width*Height
}

// Mono is an 8-bit single-channel image buffer, used for the gradient
// magnitude and thresholded images (spec.md §6).
type Mono struct {
	Width, Height int
	Pix           []byte // row-major, one byte per pixel, len == Width*Height
}

// At returns the pixel value at (x, y).
func (m Mono) At(x, y int) byte {
	return m.Pix[y*m.Width+x]
}

// Set writes the pixel value at (x, y).
func (m Mono) Set(x, y int, v byte) {
	m.Pix[y*m.Width+x] = v
}

// Backend is the vision collaborator contract named by spec.md §6. The
// default implementation is pure Go (decode.go, grayscale.go, sobel.go,
// contour.go, approx.go, lines.go); callers may supply their own backend
// (e.g. one that shells out to a native CV library) by implementing this
// interface.
type Backend interface {
	// DecodeImage decodes the image at path, returning ErrNotAnImage
	// (wrapped) if the bytes are not a recognisable image.
	DecodeImage(path string) (Image, error)

	// EdgeMap computes a Sobel-like gradient magnitude image, 8-bit.
	EdgeMap(img Image) Mono

	// Threshold binarises m: values > t become 255, else 0.
	Threshold(m Mono, t uint8) Mono

	// Contours extracts external contours from a binary image, simplified
	// with Chain-Approx-Simple-equivalent semantics (no consecutive
	// collinear duplicate points).
	Contours(bin Mono) []Polygon

	// ApproxPoly simplifies p with the Douglas-Peucker algorithm at the
	// given epsilon.
	ApproxPoly(p Polygon, epsilon float64) Polygon

	// DetectLines finds long line segments in img's grayscale buffer.
	// Implementations are not required to pre-filter by length; the
	// pipeline applies its own >=100px filter (spec.md §6) on top of
	// whatever the backend returns.
	DetectLines(img Image) []Segment
}
