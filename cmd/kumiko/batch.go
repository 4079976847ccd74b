package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/louxiu/kumiko"
)

// batchImage is one entry in a batch manifest: an input path plus optional
// per-image overrides of the page configuration (SPEC_FULL.md §9.1).
type batchImage struct {
	Path              string           `yaml:"path"`
	URL               string           `yaml:"url"`
	Numbering         kumiko.Numbering `yaml:"numbering"`
	MinPanelSizeRatio float64          `yaml:"min_panel_size_ratio"`
	Debug             bool             `yaml:"debug"`
}

// batchManifest lists the images a batch run should process, with a
// default configuration applied to every entry that doesn't override it.
type batchManifest struct {
	Numbering         kumiko.Numbering `yaml:"numbering"`
	MinPanelSizeRatio float64          `yaml:"min_panel_size_ratio"`
	Debug             bool             `yaml:"debug"`
	Images            []batchImage     `yaml:"images"`
}

// loadBatchManifest parses a YAML batch manifest (SPEC_FULL.md §9.1),
// distinct from the per-image JSON ".license" sidecar (spec.md §6).
func loadBatchManifest(path string) (*batchManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "kumiko: reading batch manifest %q", path)
	}

	var m batchManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "kumiko: parsing batch manifest %q", path)
	}
	return &m, nil
}

// configFor resolves the effective kumiko.Config for one manifest entry,
// falling back to the manifest's defaults and then package defaults.
func (m *batchManifest) configFor(img batchImage) kumiko.Config {
	cfg := kumiko.DefaultConfig()

	cfg.Numbering = firstNonEmptyNumbering(img.Numbering, m.Numbering, cfg.Numbering)
	cfg.MinPanelSizeRatio = firstPositiveRatio(img.MinPanelSizeRatio, m.MinPanelSizeRatio, cfg.MinPanelSizeRatio)
	cfg.Debug = img.Debug || m.Debug

	return cfg
}

func firstNonEmptyNumbering(values ...kumiko.Numbering) kumiko.Numbering {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return kumiko.LTR
}

func firstPositiveRatio(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return kumiko.DefaultMinPanelSizeRatio
}
