package kumiko

import "github.com/pkg/errors"

// Numbering is the reading direction used to order panels and to pick the
// "before" neighbour on the horizontal axis during numbering correction.
type Numbering string

const (
	// LTR orders panels left-to-right, top-to-bottom.
	LTR Numbering = "ltr"
	// RTL orders panels right-to-left, top-to-bottom.
	RTL Numbering = "rtl"
)

// DefaultMinPanelSizeRatio is the fraction of the shorter page dimension
// below which a panel is considered "small" (spec.md §3).
const DefaultMinPanelSizeRatio = 1.0 / 15.0

// Config controls page extraction behavior.
type Config struct {
	// Numbering is the reading direction (default: LTR).
	Numbering Numbering

	// MinPanelSizeRatio is the small-panel threshold ratio, relative to
	// the shorter page dimension (default: DefaultMinPanelSizeRatio).
	MinPanelSizeRatio float64

	// Debug enables collection of per-pass Diagnostics entries (default:
	// off). Never changes pipeline output, only whether it is recorded.
	Debug bool

	// GutterAggregator aggregates the list of observed gutter gaps into a
	// single value (spec.md §4.10). Defaults to min when nil; an
	// implementation may supply e.g. a median for a more robust estimate.
	GutterAggregator func([]int) int
}

// DefaultConfig returns the default page extraction configuration.
func DefaultConfig() Config {
	return Config{
		Numbering:         LTR,
		MinPanelSizeRatio: DefaultMinPanelSizeRatio,
		Debug:             false,
	}
}

// validate checks the fatal-configuration-error cases named in spec.md §7.
func (c Config) validate() error {
	if c.Numbering != LTR && c.Numbering != RTL {
		return errors.Wrapf(ErrInvalidNumbering, "unknown numbering %q", c.Numbering)
	}
	return nil
}

func (c Config) effectiveAggregator() func([]int) int {
	if c.GutterAggregator != nil {
		return c.GutterAggregator
	}
	return minOfInts
}

func (c Config) effectiveRatio() float64 {
	if c.MinPanelSizeRatio > 0 {
		return c.MinPanelSizeRatio
	}
	return DefaultMinPanelSizeRatio
}

// pageGeometry carries the thresholds that Panel predicates derive from,
// per spec.md §9's design note: "Thresholds derive from page_config only."
type pageGeometry struct {
	width, height int
	minRatio      float64
}

func newPageGeometry(cfg Config, width, height int) pageGeometry {
	return pageGeometry{width: width, height: height, minRatio: cfg.effectiveRatio()}
}

// shortSide is S in spec.md §3.
func (g pageGeometry) shortSide() int {
	if g.width < g.height {
		return g.width
	}
	return g.height
}

// verySmallThreshold is S/25 (spec.md §3).
func (g pageGeometry) verySmallThreshold() float64 {
	return float64(g.shortSide()) / 25.0
}

// smallThreshold is S * min_panel_size_ratio (spec.md §3).
func (g pageGeometry) smallThreshold() float64 {
	return float64(g.shortSide()) * g.minRatio
}

// closeDistanceThreshold is S/10 (spec.md §3).
func (g pageGeometry) closeDistanceThreshold() float64 {
	return float64(g.shortSide()) / 10.0
}
