package kumiko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackFullPageInsertsWhenEmpty(t *testing.T) {
	result := fallbackFullPage(nil, 800, 1200)
	assert.Equal(t, []Panel{NewPanel(0, 0, 800, 1200)}, result)
}

func TestFallbackFullPageLeavesNonEmptyAlone(t *testing.T) {
	panels := []Panel{NewPanel(0, 0, 10, 10)}
	result := fallbackFullPage(panels, 800, 1200)
	assert.Equal(t, panels, result)
}

func TestSortPanelsLTRGrid(t *testing.T) {
	topLeft := NewPanel(20, 20, 380, 580)
	topRight := NewPanel(420, 20, 780, 580)
	bottomLeft := NewPanel(20, 620, 380, 1180)
	bottomRight := NewPanel(420, 620, 780, 1180)

	input := []Panel{topRight, bottomLeft, topLeft, bottomRight}
	result := sortPanels(input, LTR)

	assert.Equal(t, []Panel{topLeft, topRight, bottomLeft, bottomRight}, result)
}

func TestSortPanelsRTLGrid(t *testing.T) {
	topLeft := NewPanel(20, 20, 380, 580)
	topRight := NewPanel(420, 20, 780, 580)
	bottomLeft := NewPanel(20, 620, 380, 1180)
	bottomRight := NewPanel(420, 620, 780, 1180)

	input := []Panel{topLeft, topRight, bottomLeft, bottomRight}
	result := sortPanels(input, RTL)

	assert.Equal(t, []Panel{topRight, topLeft, bottomRight, bottomLeft}, result)
}

func TestFixNumberingMovesMisplacedPanel(t *testing.T) {
	// A panel whose top/left neighbour sits later in the slice gets moved
	// to directly follow that neighbour; the neighbour itself stays put.
	a := NewPanel(0, 0, 100, 100)   // top-left
	b := NewPanel(120, 0, 220, 100) // top-right, neighbour-left of a? no, a is left of b
	c := NewPanel(0, 120, 100, 220) // bottom-left, top-neighbour is a

	// Deliberately out of order: c before a.
	result := fixNumbering([]Panel{c, a, b}, LTR)

	aIdx := indexOfPanel(result, a)
	cIdx := indexOfPanel(result, c)
	assert.Less(t, aIdx, cIdx)
}

func indexOfPanel(panels []Panel, p Panel) int {
	for i, q := range panels {
		if q.Equal(p) {
			return i
		}
	}
	return -1
}
