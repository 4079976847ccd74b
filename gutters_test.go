package kumiko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActualGuttersFromNeighbours(t *testing.T) {
	panels := []Panel{
		NewPanel(0, 0, 100, 100),
		NewPanel(130, 0, 230, 100),
		NewPanel(0, 140, 100, 240),
	}

	g := actualGutters(panels, minOfInts)

	assert.Equal(t, 30, g.X)
	assert.Equal(t, 40, g.Y)
	assert.Equal(t, -30, g.R)
	assert.Equal(t, -40, g.B)
}

func TestActualGuttersDefaultsToOneWhenNoNeighbours(t *testing.T) {
	panels := []Panel{NewPanel(0, 0, 100, 100)}
	g := actualGutters(panels, minOfInts)
	assert.Equal(t, 1, g.X)
	assert.Equal(t, 1, g.Y)
}
