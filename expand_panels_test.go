package kumiko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPanelsGrowsToNeighbourMinusGutter(t *testing.T) {
	left := NewPanel(0, 0, 100, 100)
	right := NewPanel(140, 0, 240, 100)
	gutters := Gutters{X: 40, Y: 40, R: -40, B: -40}

	result := expandPanels([]Panel{left, right}, gutters)

	assert.Equal(t, 100, result[1].X-40) // right's new left edge minus gutter lands at left's original right edge
	assert.Equal(t, result[0].R+gutters.X, result[1].X)
}

func TestExpandPanelsGrowsToFrameWithNoNeighbour(t *testing.T) {
	only := NewPanel(50, 50, 150, 150)
	gutters := Gutters{X: 1, Y: 1, R: -1, B: -1}

	result := expandPanels([]Panel{only}, gutters)

	assert.Equal(t, 50, result[0].X)
	assert.Equal(t, 150, result[0].R)
}
