package kumiko

// expandPanels grows each panel outward until it touches either a
// neighbour's edge (minus one gutter) or the farthest page edge
// established by the current panel set (spec.md §4.8). The gutter estimate
// is computed once by the caller before this pass runs. Panels are
// expanded in place, left to right through the slice, so a panel's
// neighbour search can observe earlier panels that this same pass has
// already expanded — matching the original implementation's sequential
// mutation of its panel list.
func expandPanels(panels []Panel, gutters Gutters) []Panel {
	result := append([]Panel(nil), panels...)

	directions := [4]edge{edgeLeft, edgeRight, edgeTop, edgeBottom}
	for i := range result {
		p := result[i]
		for _, d := range directions {
			newcoord, ok := expandCandidate(result, i, d, gutters)
			if !ok {
				continue
			}
			p = applyExpansion(p, d, newcoord)
		}
		result[i] = p
	}

	return result
}

// expandCandidate computes the candidate edge coordinate for panel index i
// in direction d: the neighbour's opposite edge plus/minus the gutter, or
// the extreme coordinate among all panels when there is no neighbour.
func expandCandidate(panels []Panel, i int, d edge, gutters Gutters) (int, bool) {
	neighbour, ok := findNeighbour(panels, i, d)
	if ok {
		switch d {
		case edgeLeft:
			return neighbour.R + gutters.X, true
		case edgeRight:
			return neighbour.X + gutters.R, true
		case edgeTop:
			return neighbour.B + gutters.Y, true
		case edgeBottom:
			return neighbour.Y + gutters.B, true
		}
	}
	return extremeCoordinate(panels, d)
}

// extremeCoordinate returns the outer frame coordinate on axis d: the
// minimum left/top edge, or the maximum right/bottom edge, across panels.
func extremeCoordinate(panels []Panel, d edge) (int, bool) {
	if len(panels) == 0 {
		return 0, false
	}

	switch d {
	case edgeLeft:
		v := panels[0].X
		for _, p := range panels[1:] {
			v = minInt(v, p.X)
		}
		return v, true
	case edgeRight:
		v := panels[0].R
		for _, p := range panels[1:] {
			v = maxInt(v, p.R)
		}
		return v, true
	case edgeTop:
		v := panels[0].Y
		for _, p := range panels[1:] {
			v = minInt(v, p.Y)
		}
		return v, true
	case edgeBottom:
		v := panels[0].B
		for _, p := range panels[1:] {
			v = maxInt(v, p.B)
		}
		return v, true
	}
	return 0, false
}

// applyExpansion applies newcoord to p's edge d only if it moves the edge
// outward: left/top decrease, right/bottom increase (spec.md §4.8).
func applyExpansion(p Panel, d edge, newcoord int) Panel {
	switch d {
	case edgeLeft:
		if newcoord < p.X {
			p.X = newcoord
		}
	case edgeRight:
		if newcoord > p.R {
			p.R = newcoord
		}
	case edgeTop:
		if newcoord < p.Y {
			p.Y = newcoord
		}
	case edgeBottom:
		if newcoord > p.B {
			p.B = newcoord
		}
	}
	return p
}
