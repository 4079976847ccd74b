package kumiko

// mergePanels replaces any pair where one panel fully contains another with
// their merge (which equals the outer one), iterating to a fixed point
// (spec.md §4.6). Used to undo splits that shouldn't have happened — e.g. a
// speech bubble that dives into a panel and got cut out as its own shape.
func mergePanels(panels []Panel) []Panel {
	result := append([]Panel(nil), panels...)

	for {
		changed := false

	pairs:
		for i := 0; i < len(result); i++ {
			for j := i + 1; j < len(result); j++ {
				switch {
				case result[i].Contains(result[j]):
					result[i] = result[i].Merge(result[j])
					result = append(result[:j], result[j+1:]...)
				case result[j].Contains(result[i]):
					result[j] = result[j].Merge(result[i])
					result = append(result[:i], result[i+1:]...)
				default:
					continue
				}
				changed = true
				break pairs
			}
		}

		if !changed {
			break
		}
	}

	return result
}
