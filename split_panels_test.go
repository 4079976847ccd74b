package kumiko

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisAlignedChord(t *testing.T) {
	assert.True(t, axisAlignedChord(Point{X: 0, Y: 0}, Point{X: 100, Y: 2}))
	assert.True(t, axisAlignedChord(Point{X: 0, Y: 0}, Point{X: 2, Y: 100}))
	assert.False(t, axisAlignedChord(Point{X: 0, Y: 0}, Point{X: 100, Y: 100}))
	assert.False(t, axisAlignedChord(Point{X: 0, Y: 0}, Point{X: 0, Y: 0}))
}

func TestSegmentAlignedChord(t *testing.T) {
	segments := []Segment{NewSegment(Point{X: 10, Y: 10}, Point{X: 10, Y: 90})}
	assert.True(t, segmentAlignedChord(Point{X: 12, Y: 9}, Point{X: 12, Y: 91}, segments))
	assert.False(t, segmentAlignedChord(Point{X: 500, Y: 9}, Point{X: 500, Y: 91}, segments))
}

func TestSplitPanelsLeavesUnsplittableRectanglesAlone(t *testing.T) {
	g := newPageGeometry(DefaultConfig(), 800, 1200)

	rectPanel := func(x, y, r, b int) Panel {
		return panelFromPolygon(Polygon{{X: x, Y: y}, {X: r, Y: y}, {X: r, Y: b}, {X: x, Y: b}})
	}

	panels := []Panel{rectPanel(0, 0, 400, 600), rectPanel(500, 0, 900, 600)}
	result := splitPanels(g, panels, nil)

	assert.Len(t, result, 2)
}

// TestTrySplitPanelSplitsDumbbellNeck builds a single contour shaped like
// two 400x600 rectangles joined by a 100px-long, 50px-tall neck (the S4
// pinch-point scenario, spec.md §4.3) and asserts the splitter actually
// separates it in two: the cut runs along x=400, so the left piece is the
// 400x600 rectangle and the right piece's box (500x600) keeps the neck.
// The neck vertices sit at x=400 and
// x=500, so several of the candidate split chords run along the polygon's
// own vertical edges rather than purely through open interior -- this is
// what exercises Polygon.ContainsPoint's on-edge handling rather than just
// its open-interior ray cast.
func TestTrySplitPanelSplitsDumbbellNeck(t *testing.T) {
	g := newPageGeometry(DefaultConfig(), 900, 600)

	poly := Polygon{
		{X: 0, Y: 0}, {X: 400, Y: 0}, {X: 400, Y: 275}, {X: 500, Y: 275},
		{X: 500, Y: 0}, {X: 900, Y: 0}, {X: 900, Y: 600}, {X: 500, Y: 600},
		{X: 500, Y: 325}, {X: 400, Y: 325}, {X: 400, Y: 600}, {X: 0, Y: 600},
	}
	p := panelFromPolygon(poly)

	result, ok := trySplitPanel(p, nil, g)
	require.True(t, ok)
	require.Len(t, result, 2)

	rects := make([]Panel, len(result))
	for i, r := range result {
		rects[i] = Panel{X: r.X, Y: r.Y, R: r.R, B: r.B}
	}
	assert.ElementsMatch(t, []Panel{
		NewPanel(0, 0, 400, 600),
		NewPanel(400, 0, 900, 600),
	}, rects)
}

func TestTrySplitPanelNoCandidateOnTriangle(t *testing.T) {
	g := newPageGeometry(DefaultConfig(), 1200, 600)
	// A triangle has no non-consecutive vertex pair (every pair is an
	// edge), so no split candidate exists regardless of geometry.
	poly := Polygon{{X: 0, Y: 0}, {X: 400, Y: 0}, {X: 200, Y: 300}}
	p := panelFromPolygon(poly)

	_, ok := trySplitPanel(p, nil, g)
	assert.False(t, ok)
}
