package kumiko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(x, y, r, b int) Polygon {
	return Polygon{{X: x, Y: y}, {X: r, Y: y}, {X: r, Y: b}, {X: x, Y: b}}
}

func TestPolygonBoundingBox(t *testing.T) {
	p := square(10, 20, 110, 220)
	x, y, r, b := p.BoundingBox()
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)
	assert.Equal(t, 110, r)
	assert.Equal(t, 220, b)
}

func TestPolygonContainsPoint(t *testing.T) {
	p := square(0, 0, 100, 100)
	assert.True(t, p.ContainsPoint(Point{X: 50, Y: 50}))
	assert.False(t, p.ContainsPoint(Point{X: 150, Y: 50}))
}

func TestPolygonSplit(t *testing.T) {
	// A square cut along its diagonal, between vertices 0 and 2.
	p := Polygon{
		{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 40}, {X: 0, Y: 40},
	}
	a, b := p[0], p[2]
	first, second, ok := p.Split(a, b)
	assert.True(t, ok)
	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
}

func TestPolygonContainsPointOnEdgeNotJustVertex(t *testing.T) {
	p := square(0, 0, 100, 100)
	// Midpoints of each edge, not corners: the ray-cast's strict
	// inequality misclassifies these without the on-segment check.
	assert.True(t, p.ContainsPoint(Point{X: 50, Y: 0}))
	assert.True(t, p.ContainsPoint(Point{X: 100, Y: 50}))
	assert.True(t, p.ContainsPoint(Point{X: 50, Y: 100}))
	assert.True(t, p.ContainsPoint(Point{X: 0, Y: 50}))
}

func TestPolygonSegmentInside(t *testing.T) {
	p := square(0, 0, 100, 100)
	assert.True(t, p.SegmentInside(Point{X: 0, Y: 0}, Point{X: 100, Y: 100}))
	assert.False(t, p.SegmentInside(Point{X: -10, Y: -10}, Point{X: 10, Y: 10}))
}
