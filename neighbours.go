package kumiko

// edge names one of a Panel's four sides, used to request a directional
// neighbour search (spec.md §4.1 find_neighbour, §4.7, §4.8, §4.10).
type edge int

const (
	edgeLeft edge = iota
	edgeRight
	edgeTop
	edgeBottom
)

// findNeighbour finds panel p's nearest neighbour in direction d among
// panels (p itself, identified by index self, is skipped). A candidate
// qualifies when its projection on the perpendicular axis overlaps p's
// projection by more than zero (spec.md §9's resolution of "directly
// above/left") and it sits strictly outside p on the d side. Among
// qualifying candidates the one whose relevant edge is closest to p wins;
// ties are broken by largest projected overlap, then by lowest index
// (spec.md §4.8.a).
func findNeighbour(panels []Panel, self int, d edge) (Panel, bool) {
	idx, ok := findNeighbourIndex(panels, self, d)
	if !ok {
		return Panel{}, false
	}
	return panels[idx], true
}

// findNeighbourIndex is findNeighbour but returns the neighbour's index,
// for callers (numbering.go's fixNumbering) that need to reorder the slice
// itself rather than just read the neighbour's rectangle.
func findNeighbourIndex(panels []Panel, self int, d edge) (int, bool) {
	p := panels[self]

	bestIdx := -1
	bestDist := 0
	bestOverlap := 0

	for i, cand := range panels {
		if i == self {
			continue
		}

		var qualifies bool
		var dist int
		var overlap int

		switch d {
		case edgeLeft:
			qualifies = cand.R <= p.X
			dist = p.X - cand.R
			overlap = verticalOverlap(p, cand)
		case edgeRight:
			qualifies = cand.X >= p.R
			dist = cand.X - p.R
			overlap = verticalOverlap(p, cand)
		case edgeTop:
			qualifies = cand.B <= p.Y
			dist = p.Y - cand.B
			overlap = horizontalOverlap(p, cand)
		case edgeBottom:
			qualifies = cand.Y >= p.B
			dist = cand.Y - p.B
			overlap = horizontalOverlap(p, cand)
		}

		if !qualifies || overlap <= 0 {
			continue
		}

		if bestIdx == -1 ||
			dist < bestDist ||
			(dist == bestDist && overlap > bestOverlap) {
			bestIdx = i
			bestDist = dist
			bestOverlap = overlap
		}
	}

	if bestIdx == -1 {
		return -1, false
	}
	return bestIdx, true
}

// segmentsCoverage returns the fraction of p's perimeter covered by
// segments aligned with the corresponding edge (within edgeTolerancePx and
// collinearitySlopeTolerance, spec.md §4.1), and the list of matching
// segments.
func segmentsCoverage(p Panel, segments []Segment) (fraction float64, matched []Segment) {
	perim := 2 * (p.W() + p.H())
	if perim == 0 {
		return 0, nil
	}

	covered := 0
	for _, s := range segments {
		if !segmentHugsPanelEdge(p, s) {
			continue
		}
		matched = append(matched, s)
		covered += int(s.Length())
	}

	fraction = float64(covered) / float64(perim)
	if fraction > 1 {
		fraction = 1
	}
	return fraction, matched
}

const (
	edgeTolerancePx            = 4.0
	collinearitySlopeTolerance = 0.1
)

// segmentHugsPanelEdge reports whether s runs along one of p's four edges,
// within edgeTolerancePx of it and collinear with it within
// collinearitySlopeTolerance.
func segmentHugsPanelEdge(p Panel, s Segment) bool {
	if s.Horizontal() {
		top := float64(abs(s.A.Y-p.Y)) <= edgeTolerancePx && float64(abs(s.B.Y-p.Y)) <= edgeTolerancePx
		bottom := float64(abs(s.A.Y-p.B)) <= edgeTolerancePx && float64(abs(s.B.Y-p.B)) <= edgeTolerancePx
		if !top && !bottom {
			return false
		}
		slope := lineSlope(s)
		return slope <= collinearitySlopeTolerance
	}

	left := float64(abs(s.A.X-p.X)) <= edgeTolerancePx && float64(abs(s.B.X-p.X)) <= edgeTolerancePx
	right := float64(abs(s.A.X-p.R)) <= edgeTolerancePx && float64(abs(s.B.X-p.R)) <= edgeTolerancePx
	if !left && !right {
		return false
	}
	slope := lineSlopeInverse(s)
	return slope <= collinearitySlopeTolerance
}

// lineSlope returns |dy/dx| for a (near-)horizontal segment, treated as 0
// for a perfectly horizontal one.
func lineSlope(s Segment) float64 {
	dx := s.B.X - s.A.X
	if dx == 0 {
		return 0
	}
	dy := s.B.Y - s.A.Y
	v := float64(dy) / float64(dx)
	if v < 0 {
		v = -v
	}
	return v
}

// lineSlopeInverse returns |dx/dy| for a (near-)vertical segment.
func lineSlopeInverse(s Segment) float64 {
	dy := s.B.Y - s.A.Y
	if dy == 0 {
		return 0
	}
	dx := s.B.X - s.A.X
	v := float64(dx) / float64(dy)
	if v < 0 {
		v = -v
	}
	return v
}

