package kumiko

import "math"

// Panel is an axis-aligned rectangle identified by four edge coordinates:
// X (left), Y (top), R (right), B (bottom). Invariants: X <= R, Y <= B
// (spec.md §3). Polygon is an optional back-reference to the source contour
// polygon this panel was built from; it is not considered by Equal.
type Panel struct {
	X, Y, R, B int
	Polygon    Polygon
}

// NewPanel builds a Panel from an explicit rectangle.
func NewPanel(x, y, r, b int) Panel {
	return Panel{X: x, Y: y, R: r, B: b}
}

// panelFromPolygon builds a Panel whose rectangle is the polygon's bounding
// box, keeping the polygon as the panel's source shape.
func panelFromPolygon(p Polygon) Panel {
	x, y, r, b := p.BoundingBox()
	return Panel{X: x, Y: y, R: r, B: b, Polygon: p}
}

// W returns the panel's width.
func (p Panel) W() int { return p.R - p.X }

// H returns the panel's height.
func (p Panel) H() int { return p.B - p.Y }

// Area returns the panel's area.
func (p Panel) Area() int { return p.W() * p.H() }

// Equal compares panels by the value of their four edges; the source
// polygon is not considered (spec.md §3).
func (p Panel) Equal(o Panel) bool {
	return p.X == o.X && p.Y == o.Y && p.R == o.R && p.B == o.B
}

// Contains reports whether other lies fully inside p, edges inclusive.
func (p Panel) Contains(other Panel) bool {
	return other.X >= p.X && other.Y >= p.Y && other.R <= p.R && other.B <= p.B
}

// Overlap returns the rectangle of intersection between p and other, or
// ok=false if the intersection has non-positive area.
func (p Panel) Overlap(other Panel) (overlap Panel, ok bool) {
	x := maxInt(p.X, other.X)
	y := maxInt(p.Y, other.Y)
	r := minInt(p.R, other.R)
	b := minInt(p.B, other.B)
	if r <= x || b <= y {
		return Panel{}, false
	}
	return Panel{X: x, Y: y, R: r, B: b}, true
}

// Merge returns the smallest enclosing rectangle of p and other.
func (p Panel) Merge(other Panel) Panel {
	return Panel{
		X: minInt(p.X, other.X),
		Y: minInt(p.Y, other.Y),
		R: maxInt(p.R, other.R),
		B: maxInt(p.B, other.B),
	}
}

// IsVerySmall reports whether p is below the "very small" threshold used to
// drop vision noise immediately (spec.md §3).
func (p Panel) IsVerySmall(g pageGeometry) bool {
	t := g.verySmallThreshold()
	return float64(p.W()) < t || float64(p.H()) < t
}

// IsSmall reports whether p is below the configured small-panel threshold
// (spec.md §3).
func (p Panel) IsSmall(g pageGeometry) bool {
	t := g.smallThreshold()
	return float64(p.W()) < t || float64(p.H()) < t
}

// IsClose reports whether p and other are "close": their minimum
// bounding-box edge distance is within the close-distance threshold and
// they are roughly aligned on at least one axis (spec.md §3).
func (p Panel) IsClose(other Panel, g pageGeometry) bool {
	dist := edgeDistance(p, other)
	if dist > g.closeDistanceThreshold() {
		return false
	}
	return horizontalOverlap(p, other) > 0 || verticalOverlap(p, other) > 0
}

// edgeDistance returns the minimum distance between p's and other's
// bounding boxes (0 if they overlap or touch).
func edgeDistance(p, other Panel) float64 {
	dx := 0
	if other.X > p.R {
		dx = other.X - p.R
	} else if p.X > other.R {
		dx = p.X - other.R
	}

	dy := 0
	if other.Y > p.B {
		dy = other.Y - p.B
	} else if p.Y > other.B {
		dy = p.Y - other.B
	}

	if dx == 0 {
		return float64(dy)
	}
	if dy == 0 {
		return float64(dx)
	}
	return math.Hypot(float64(dx), float64(dy))
}

// horizontalOverlap returns the length of the overlap of p and other's
// projections onto the X axis (may be negative/zero for disjoint ranges).
func horizontalOverlap(p, other Panel) int {
	return minInt(p.R, other.R) - maxInt(p.X, other.X)
}

// verticalOverlap returns the length of the overlap of p and other's
// projections onto the Y axis (may be negative/zero for disjoint ranges).
func verticalOverlap(p, other Panel) int {
	return minInt(p.B, other.B) - maxInt(p.Y, other.Y)
}

// sameRow reports whether p and other should be treated as the same row for
// reading-order purposes: their vertical spans overlap by more than half of
// the shorter panel's height (spec.md §4.1).
func sameRow(p, other Panel) bool {
	ov := verticalOverlap(p, other)
	if ov <= 0 {
		return false
	}
	shorter := minInt(p.H(), other.H())
	return float64(ov) > float64(shorter)/2.0
}

// Compare orders a and b in reading order: primarily by Y ("same row" uses
// sameRow), then within a row by X ascending (LTR) or R descending (RTL).
// Returns a negative number if a comes first, positive if b comes first,
// zero if they are equivalent for ordering purposes.
func Compare(a, b Panel, numbering Numbering) int {
	if sameRow(a, b) {
		if numbering == RTL {
			return b.R - a.R
		}
		return a.X - b.X
	}
	return a.Y - b.Y
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
