package kumiko

import "math"

// Segment is an immutable line between two image points, as reported by the
// vision backend's line detector.
type Segment struct {
	A Point
	B Point
}

// NewSegment builds a Segment from two points.
func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	dx := float64(s.B.X - s.A.X)
	dy := float64(s.B.Y - s.A.Y)
	return math.Hypot(dx, dy)
}

// Horizontal reports whether the segment is horizontal, per spec.md §3:
// horizontal if |dy| < |dx|, vertical otherwise.
func (s Segment) Horizontal() bool {
	dx := abs(s.B.X - s.A.X)
	dy := abs(s.B.Y - s.A.Y)
	return dy < dx
}

// Vertical is the complement of Horizontal.
func (s Segment) Vertical() bool {
	return !s.Horizontal()
}

// distanceToPoint returns the shortest distance from p to the segment (not
// to the infinite line through it).
func (s Segment) distanceToPoint(p Point) float64 {
	ax, ay := float64(s.A.X), float64(s.A.Y)
	bx, by := float64(s.B.X), float64(s.B.Y)
	px, py := float64(p.X), float64(p.Y)

	abx, aby := bx-ax, by-ay
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}

	t := ((px-ax)*abx + (py-ay)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := ax + t*abx
	cy := ay + t*aby
	return math.Hypot(px-cx, py-cy)
}

// endpointDistance returns the distance from s.A to other.A and from s.B to
// other.B (endpoints paired in order), used by the splitter's segment-alignment
// check (spec.md §4.3: "endpoint distance <= 10px both ends").
func (s Segment) endpointDistance(other Segment) (aToA, bToB float64) {
	d := func(p, q Point) float64 {
		return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
	}
	return d(s.A, other.A), d(s.B, other.B)
}

// alignsWith reports whether other's endpoints both lie within tolPx of s's
// endpoints (in either pairing), which the splitter uses to treat a pinch
// chord as "aligned with a detected page segment".
func (s Segment) alignsWith(other Segment, tolPx float64) bool {
	d1a, d1b := s.endpointDistance(other)
	if d1a <= tolPx && d1b <= tolPx {
		return true
	}
	// try the swapped pairing (other.B near s.A, other.A near s.B)
	swapped := Segment{A: other.B, B: other.A}
	d2a, d2b := s.endpointDistance(swapped)
	return d2a <= tolPx && d2b <= tolPx
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
