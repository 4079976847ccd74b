package kumiko

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.validate())
}

func TestConfigValidateRejectsUnknownNumbering(t *testing.T) {
	cfg := Config{Numbering: "sideways"}
	err := cfg.validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNumbering))
}

func TestConfigEffectiveRatioFallsBackToDefault(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, DefaultMinPanelSizeRatio, cfg.effectiveRatio())

	cfg.MinPanelSizeRatio = 0.2
	assert.Equal(t, 0.2, cfg.effectiveRatio())
}

func TestConfigEffectiveAggregatorDefaultsToMin(t *testing.T) {
	cfg := Config{}
	agg := cfg.effectiveAggregator()
	assert.Equal(t, 3, agg([]int{5, 3, 9}))
}
