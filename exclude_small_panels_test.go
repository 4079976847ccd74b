package kumiko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcludeSmallPanelsDropsBelowThreshold(t *testing.T) {
	g := newPageGeometry(DefaultConfig(), 1500, 1500)
	small := NewPanel(0, 0, 20, 20)
	large := NewPanel(0, 0, 400, 400)

	result := excludeSmallPanels(g, []Panel{small, large})
	assert.Equal(t, []Panel{large}, result)
}
