package kumiko

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/louxiu/kumiko/vision"
)

func TestPolygonRoundTripsThroughVision(t *testing.T) {
	p := Polygon{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	back := polygonFromVision(polygonToVision(p))
	assert.Equal(t, p, back)
}

func TestSegmentsFromVision(t *testing.T) {
	in := []vision.Segment{{A: vision.Point{X: 0, Y: 0}, B: vision.Point{X: 10, Y: 10}}}
	out := segmentsFromVision(in)
	assert.Equal(t, []Segment{{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 10}}}, out)
}
