package kumiko

import "math"

// Polygon is a finite ordered sequence of Points, closed by implication. It
// is used only as an immutable source for a Panel and as input to the
// splitter (spec.md §3).
type Polygon []Point

// BoundingBox returns the smallest axis-aligned rectangle enclosing p. It
// panics-free empty-safe: an empty polygon yields a zero-area Panel at the
// origin, which callers are expected to treat as degenerate.
func (p Polygon) BoundingBox() (x, y, r, b int) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	x, y = p[0].X, p[0].Y
	r, b = p[0].X, p[0].Y
	for _, pt := range p[1:] {
		if pt.X < x {
			x = pt.X
		}
		if pt.X > r {
			r = pt.X
		}
		if pt.Y < y {
			y = pt.Y
		}
		if pt.Y > b {
			b = pt.Y
		}
	}
	return x, y, r, b
}

// Perimeter returns the Euclidean perimeter of the closed polygon.
func (p Polygon) Perimeter() float64 {
	if len(p) < 2 {
		return 0
	}
	total := 0.0
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		total += math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
	}
	return total
}

// ContainsPoint reports whether pt lies inside (or on the boundary of) p,
// using a standard ray-casting test. Used by the splitter to verify a pinch
// chord lies fully inside the polygon.
//
// Boundary points are checked explicitly against every edge before the ray
// cast runs: a point sitting exactly on a horizontal or vertical edge (not
// just at a vertex) otherwise lands on the knife-edge of the ray-cast's
// strict inequality and can be misclassified as outside, which matters here
// because split candidates are deliberately axis-aligned chords through
// axis-aligned polygons.
func (p Polygon) ContainsPoint(pt Point) bool {
	if len(p) < 3 {
		return false
	}
	n := len(p)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if pointOnSegment(pt, p[i], p[j]) {
			return true
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p[i], p[j]
		intersects := (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			float64(pt.X) < float64(vj.X-vi.X)*float64(pt.Y-vi.Y)/float64(vj.Y-vi.Y)+float64(vi.X)
		if intersects {
			inside = !inside
		}
	}
	return inside
}

// pointOnSegment reports whether pt lies on the closed segment a-b.
func pointOnSegment(pt, a, b Point) bool {
	cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
	if cross != 0 {
		return false
	}
	if pt.X < minInt(a.X, b.X) || pt.X > maxInt(a.X, b.X) {
		return false
	}
	if pt.Y < minInt(a.Y, b.Y) || pt.Y > maxInt(a.Y, b.Y) {
		return false
	}
	return true
}

// SegmentInside reports whether the straight chord between a and b lies
// fully inside p: the seven interior points that divide the chord into
// eighths must all be contained in p (the endpoints themselves are not
// tested; the splitter only passes vertices of p). This is a
// practical approximation of "lies fully inside the polygon" (spec.md
// §4.3) that is adequate for the near-convex panel shapes the splitter
// operates on, sampling along the chord instead of performing full
// polygon/segment clipping.
func (p Polygon) SegmentInside(a, b Point) bool {
	const samples = 8
	for i := 1; i < samples; i++ {
		t := float64(i) / float64(samples)
		x := float64(a.X) + t*float64(b.X-a.X)
		y := float64(a.Y) + t*float64(b.Y-a.Y)
		if !p.ContainsPoint(Point{X: int(math.Round(x)), Y: int(math.Round(y))}) {
			return false
		}
	}
	return true
}

// Split cuts p along the chord a-b into two sub-polygons, following the
// polygon's vertex order. a and b must both be vertices of p.
func (p Polygon) Split(a, b Point) (Polygon, Polygon, bool) {
	ia, ib := -1, -1
	for i, pt := range p {
		if pt == a {
			ia = i
		}
		if pt == b {
			ib = i
		}
	}
	if ia == -1 || ib == -1 || ia == ib {
		return nil, nil, false
	}
	if ia > ib {
		ia, ib = ib, ia
	}

	first := make(Polygon, 0, ib-ia+1)
	first = append(first, p[ia:ib+1]...)

	second := make(Polygon, 0, len(p)-(ib-ia)+1)
	second = append(second, p[ib:]...)
	second = append(second, p[:ia+1]...)

	return first, second, true
}
