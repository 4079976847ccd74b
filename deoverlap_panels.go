package kumiko

// deoverlapPanels resolves pairwise overlaps introduced by splitting
// (spec.md §4.7): for each pair with a non-empty overlap rectangle O, if O
// is wider than tall it is treated as a vertical overlap strip and the
// panel that shares O's bottom edge has its bottom edge raised to O's top,
// while the other panel's top edge is lowered to O's bottom; otherwise
// (O taller than wide) the same happens on the left/right edges. Runs
// through all pairs once; overlaps surviving the pass are tolerated
// (spec.md §4.7, §4.7.a).
func deoverlapPanels(panels []Panel) []Panel {
	result := append([]Panel(nil), panels...)
	n := len(result)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p1, p2 := result[i], result[j]

			overlap, ok := p1.Overlap(p2)
			if !ok {
				continue
			}

			if overlap.W() > overlap.H() {
				p1, p2 = retractVertical(p1, p2, overlap)
			} else {
				p1, p2 = retractHorizontal(p1, p2, overlap)
			}

			result[i], result[j] = p1, p2
		}
	}

	return result
}

// retractVertical handles a wide-overlap strip by raising the bottom edge
// of whichever panel shares O's bottom edge, and lowering the other
// panel's top edge to meet it. If both panels share O's bottom edge
// exactly, the smaller-area panel retracts (spec.md §4.7.a tie-break).
func retractVertical(p1, p2, overlap Panel) (Panel, Panel) {
	p1HasBottom := p1.B == overlap.B
	p2HasBottom := p2.B == overlap.B

	switch {
	case p1HasBottom && p2HasBottom:
		if p1.Area() <= p2.Area() {
			p1.B, p2.Y = overlap.Y, overlap.B
		} else {
			p2.B, p1.Y = overlap.Y, overlap.B
		}
	case p1HasBottom:
		p1.B, p2.Y = overlap.Y, overlap.B
	case p2HasBottom:
		p2.B, p1.Y = overlap.Y, overlap.B
	}

	return p1, p2
}

// retractHorizontal handles a tall-overlap strip, symmetric to
// retractVertical on the left/right edges.
func retractHorizontal(p1, p2, overlap Panel) (Panel, Panel) {
	p1HasRight := p1.R == overlap.R
	p2HasRight := p2.R == overlap.R

	switch {
	case p1HasRight && p2HasRight:
		if p1.Area() <= p2.Area() {
			p1.R, p2.X = overlap.X, overlap.R
		} else {
			p2.R, p1.X = overlap.X, overlap.R
		}
	case p1HasRight:
		p1.R, p2.X = overlap.X, overlap.R
	case p2HasRight:
		p2.R, p1.X = overlap.X, overlap.R
	}

	return p1, p2
}
