package kumiko

// Gutters reports the per-axis inter-panel spacing estimate (spec.md
// §4.10). X and Y are the positive left/top gaps; R and B are their
// negated counterparts, exported for symmetric use by expand_panels
// (spec.md §4.8).
type Gutters struct {
	X, Y, R, B int
}

// actualGutters finds, for every panel, the gap to its top-neighbour and
// left-neighbour, and aggregates each list (minimum by default) into the
// reported gutter. An empty list defaults to 1 (spec.md §4.10).
func actualGutters(panels []Panel, aggregate func([]int) int) Gutters {
	var gx, gy []int

	for i, p := range panels {
		if left, ok := findNeighbour(panels, i, edgeLeft); ok {
			gx = append(gx, p.X-left.R)
		}
		if top, ok := findNeighbour(panels, i, edgeTop); ok {
			gy = append(gy, p.Y-top.B)
		}
	}

	if len(gx) == 0 {
		gx = []int{1}
	}
	if len(gy) == 0 {
		gy = []int{1}
	}

	x := aggregate(gx)
	y := aggregate(gy)
	return Gutters{X: x, Y: y, R: -x, B: -y}
}

func minOfInts(vals []int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
