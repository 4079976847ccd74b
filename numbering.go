package kumiko

import "sort"

// fallbackFullPage returns a single panel spanning the whole page when
// panels is empty, so a page with no detected structure still yields one
// reading unit (spec.md §4.9).
func fallbackFullPage(panels []Panel, width, height int) []Panel {
	if len(panels) > 0 {
		return panels
	}
	return []Panel{NewPanel(0, 0, width, height)}
}

// sortPanels orders panels into reading order using Compare, stably so that
// panels Compare treats as equivalent keep their relative order.
func sortPanels(panels []Panel, numbering Numbering) []Panel {
	result := append([]Panel(nil), panels...)
	sort.SliceStable(result, func(i, j int) bool {
		return Compare(result[i], result[j], numbering) < 0
	})
	return result
}

// fixNumbering corrects the reading order produced by sortPanels when a
// panel's geometric neighbours disagree with its position in the slice: a
// panel is expected to come right after its "before" neighbours, namely its
// top neighbour and its leading-side neighbour (left for LTR, right for
// RTL). For each panel, the top neighbour is checked first and, only if it
// does not violate, the leading-side neighbour is checked; the first
// violator found is acted on and the sweep restarts from the beginning.
// Grounded on lib/page.py's fix_panels_numbering, which walks
// [top, left/right] in that order and stops at the first neighbour whose
// index comes after self.
func fixNumbering(panels []Panel, numbering Numbering) []Panel {
	result := append([]Panel(nil), panels...)

	leadingSide := edgeLeft
	if numbering == RTL {
		leadingSide = edgeRight
	}

	maxIterations := len(result)*len(result) + 8
	for iter := 0; iter < maxIterations; iter++ {
		moved := false

		for i := 0; i < len(result); i++ {
			neighbourPos := -1

			if topIdx, ok := findNeighbourIndex(result, i, edgeTop); ok && topIdx > i {
				neighbourPos = topIdx
			} else if sideIdx, ok := findNeighbourIndex(result, i, leadingSide); ok && sideIdx > i {
				neighbourPos = sideIdx
			}

			if neighbourPos == -1 {
				continue
			}

			result = movePanel(result, i, neighbourPos)
			moved = true
			break
		}

		if !moved {
			break
		}
	}

	return result
}

// movePanel removes the panel at index from and reinserts it immediately
// after the panel that was at index to (before the removal). Mirrors
// Python's self.panels.insert(to, self.panels.pop(from)) for from < to:
// popping first shifts everything after from left by one, so to itself now
// names the slot right after the original neighbour.
func movePanel(panels []Panel, from, to int) []Panel {
	p := panels[from]
	result := append([]Panel(nil), panels[:from]...)
	result = append(result, panels[from+1:]...)

	if to > len(result) {
		to = len(result)
	}

	withMoved := append([]Panel(nil), result[:to]...)
	withMoved = append(withMoved, p)
	withMoved = append(withMoved, result[to:]...)
	return withMoved
}
