package kumiko

import (
	"math"
	"sort"
)

const (
	// splitAxisAngleToleranceDeg is the "~10deg of an axis" tolerance from
	// spec.md §4.3 for a candidate split chord to count as axis-aligned.
	splitAxisAngleToleranceDeg = 10.0

	// splitSegmentEndpointTolerancePx is the "endpoint distance <= 10px
	// both ends" tolerance from spec.md §4.3 for a chord to count as
	// aligned with a detected page segment.
	splitSegmentEndpointTolerancePx = 10.0
)

var splitAxisTan = math.Tan(splitAxisAngleToleranceDeg * math.Pi / 180.0)

// splitPanels iteratively splits panels whose source polygon contains a
// valid pinch-point chord, firing in order of decreasing area and
// restarting the scan whenever a split happens (spec.md §4.3). The loop is
// bounded by 4x the initial panel count (spec.md §9's design note); hitting
// the cap is treated as "no more splits", never an error.
func splitPanels(g pageGeometry, panels []Panel, segments []Segment) []Panel {
	result := append([]Panel(nil), panels...)

	cap := 4 * len(panels)
	if cap == 0 {
		cap = 4
	}

	for iter := 0; iter < cap; iter++ {
		order := make([]int, len(result))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return result[order[i]].Area() > result[order[j]].Area()
		})

		didSplit := false
		for _, idx := range order {
			newPanels, ok := trySplitPanel(result[idx], segments, g)
			if !ok {
				continue
			}

			next := make([]Panel, 0, len(result)+1)
			next = append(next, result[:idx]...)
			next = append(next, result[idx+1:]...)
			next = append(next, newPanels...)
			result = next
			didSplit = true
			break
		}

		if !didSplit {
			break
		}
	}

	return result
}

// trySplitPanel looks for a pinch-point chord in p's source polygon that
// satisfies spec.md §4.3's conditions, preferring the candidate that
// maximises the shorter of the two resulting areas (most balanced split).
func trySplitPanel(p Panel, segments []Segment, g pageGeometry) ([]Panel, bool) {
	poly := p.Polygon
	if len(poly) < 4 {
		return nil, false
	}

	smallThreshold := g.smallThreshold()

	bestScore := -1.0
	var bestA, bestB Polygon
	found := false

	n := len(poly)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // consecutive (wraps around)
			}

			a, b := poly[i], poly[j]
			if !axisAlignedChord(a, b) && !segmentAlignedChord(a, b, segments) {
				continue
			}
			if !poly.SegmentInside(a, b) {
				continue
			}

			subA, subB, ok := poly.Split(a, b)
			if !ok {
				continue
			}

			ax, ay, ar, ab := subA.BoundingBox()
			bx, by, br, bb := subB.BoundingBox()
			areaA := float64((ar - ax) * (ab - ay))
			areaB := float64((br - bx) * (bb - by))
			if areaA < smallThreshold*smallThreshold || areaB < smallThreshold*smallThreshold {
				continue
			}

			score := math.Min(areaA, areaB)
			if score > bestScore {
				bestScore = score
				bestA, bestB = subA, subB
				found = true
			}
		}
	}

	if !found {
		return nil, false
	}

	return []Panel{panelFromPolygon(bestA), panelFromPolygon(bestB)}, true
}

// axisAlignedChord reports whether the chord a-b is horizontal or vertical
// within splitAxisAngleToleranceDeg of an axis (spec.md §4.3).
func axisAlignedChord(a, b Point) bool {
	dx := float64(absInt(b.X - a.X))
	dy := float64(absInt(b.Y - a.Y))
	if dx == 0 && dy == 0 {
		return false
	}
	horizontal := dy <= dx*splitAxisTan
	vertical := dx <= dy*splitAxisTan
	return horizontal || vertical
}

// segmentAlignedChord reports whether the chord a-b aligns with a detected
// page segment, within splitSegmentEndpointTolerancePx at both ends
// (spec.md §4.3).
func segmentAlignedChord(a, b Point, segments []Segment) bool {
	chord := Segment{A: a, B: b}
	for _, s := range segments {
		if chord.alignsWith(s, splitSegmentEndpointTolerancePx) {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
