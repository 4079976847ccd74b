package kumiko

import "github.com/louxiu/kumiko/vision"

// The vision package is a standalone external contract (spec.md §6) and
// does not import kumiko, so the pipeline converts between its Point/
// Polygon/Segment and vision's equivalents at the boundary.

func pointFromVision(p vision.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

func pointToVision(p Point) vision.Point {
	return vision.Point{X: p.X, Y: p.Y}
}

func polygonFromVision(p vision.Polygon) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pointFromVision(pt)
	}
	return out
}

func polygonToVision(p Polygon) vision.Polygon {
	out := make(vision.Polygon, len(p))
	for i, pt := range p {
		out[i] = pointToVision(pt)
	}
	return out
}

func segmentFromVision(s vision.Segment) Segment {
	return Segment{A: pointFromVision(s.A), B: pointFromVision(s.B)}
}

func segmentsFromVision(segs []vision.Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = segmentFromVision(s)
	}
	return out
}

func polygonsFromVision(polys []vision.Polygon) []Polygon {
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = polygonFromVision(p)
	}
	return out
}
