package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproxPolySimplifiesNearlyStraightEdge(t *testing.T) {
	// A square with one edge subdivided by near-collinear extra points.
	p := Polygon{
		{X: 0, Y: 0}, {X: 50, Y: 1}, {X: 100, Y: 0},
		{X: 100, Y: 100}, {X: 0, Y: 100},
	}

	backend := DefaultBackend{}
	out := backend.ApproxPoly(p, 5)

	assert.Less(t, len(out), len(p))
}

func TestApproxPolyKeepsSharpCorners(t *testing.T) {
	square := Polygon{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	backend := DefaultBackend{}
	out := backend.ApproxPoly(square, 1)
	assert.GreaterOrEqual(t, len(out), 4)
}
