package kumiko

// excludeSmallPanels drops every panel still classified "small" (spec.md
// §4.5). Runs twice in the pipeline: after grouping+splitting, and again
// after merge+deoverlap.
func excludeSmallPanels(g pageGeometry, panels []Panel) []Panel {
	result := make([]Panel, 0, len(panels))
	for _, p := range panels {
		if p.IsSmall(g) {
			continue
		}
		result = append(result, p)
	}
	return result
}
