package kumiko

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/louxiu/kumiko/vision"
)

// minLineSegmentLength is the "long line" filter applied to whatever a
// vision.Backend.DetectLines returns (spec.md §6).
const minLineSegmentLength = 100.0

// DiagnosticEntry records the panel count after one pipeline pass. Only
// collected when Config.Debug is true; never influences pipeline output
// (spec.md §8.1, SPEC_FULL.md §2).
type DiagnosticEntry struct {
	Pass       string
	PanelCount int
}

// Page owns one page's extraction run: the decoded image's dimensions, the
// reading configuration, the terminal panel list, and diagnostic metadata.
// A Page is built once by NewPage/NewPageFromImage, which drives the entire
// pipeline (spec.md §3 Lifecycle) and leaves the Page read-only.
type Page struct {
	Width, Height int
	Config        Config

	Panels   []Panel
	Segments []Segment
	Gutters  Gutters

	License json.RawMessage

	SourcePath string
	SourceURL  string

	RunID          uuid.UUID
	ProcessingTime float64 // seconds
	Diagnostics    []DiagnosticEntry
}

// NewPage decodes the image at path with backend, loads its license
// sidecar if present, and runs the full extraction pipeline.
func NewPage(path string, cfg Config, backend vision.Backend) (*Page, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	img, err := backend.DecodeImage(path)
	if err != nil {
		return nil, errors.Wrapf(err, "kumiko: decoding %q", path)
	}

	license, err := loadLicense(path)
	if err != nil {
		return nil, err
	}

	p, err := newPageFromImage(img, cfg, backend)
	if err != nil {
		return nil, err
	}
	p.SourcePath = path
	p.License = license
	return p, nil
}

// NewPageFromImage runs the pipeline over an already-decoded image, for
// callers that obtained the bytes some way other than a local file path
// (e.g. via vision.DefaultBackend.DecodeBytes).
func NewPageFromImage(img vision.Image, cfg Config, backend vision.Backend) (*Page, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newPageFromImage(img, cfg, backend)
}

func newPageFromImage(img vision.Image, cfg Config, backend vision.Backend) (*Page, error) {
	start := time.Now()

	p := &Page{
		Width:  img.Width,
		Height: img.Height,
		Config: cfg,
		RunID:  uuid.New(),
	}

	geometry := newPageGeometry(cfg, img.Width, img.Height)

	edges := backend.EdgeMap(img)
	binary := backend.Threshold(edges, 100)
	contours := polygonsFromVision(backend.Contours(binary))

	segments := segmentsFromVision(backend.DetectLines(img))
	segments = filterShortSegments(segments, minLineSegmentLength)
	p.Segments = segments

	panels := initialPanels(geometry, backend, contours)
	p.record(cfg, "initial_panels", panels)

	panels = groupSmallPanels(geometry, panels)
	p.record(cfg, "group_small_panels", panels)

	panels = splitPanels(geometry, panels, segments)
	p.record(cfg, "split_panels", panels)

	panels = excludeSmallPanels(geometry, panels)
	p.record(cfg, "exclude_small_panels", panels)

	panels = mergePanels(panels)
	p.record(cfg, "merge_panels", panels)

	panels = deoverlapPanels(panels)
	p.record(cfg, "deoverlap_panels", panels)

	panels = excludeSmallPanels(geometry, panels)
	p.record(cfg, "exclude_small_panels", panels)

	panels = sortPanels(panels, cfg.Numbering)
	p.record(cfg, "sort", panels)

	// Gutters used to push each panel outward to one gutter short of its
	// neighbour (spec.md §4.8) are measured on the pre-expansion layout; the
	// post-expansion report (p.Gutters, invariant 6) is recomputed below
	// once the panel list is final.
	expandGutters := actualGutters(panels, cfg.effectiveAggregator())

	panels = expandPanels(panels, expandGutters)
	p.record(cfg, "expand_panels", panels)

	panels = fallbackFullPage(panels, img.Width, img.Height)
	p.record(cfg, "fallback_full_page", panels)

	panels = fixNumbering(panels, cfg.Numbering)
	p.record(cfg, "fix_numbering", panels)

	p.Panels = panels
	p.Gutters = actualGutters(panels, cfg.effectiveAggregator())
	p.ProcessingTime = time.Since(start).Seconds()

	return p, nil
}

func (p *Page) record(cfg Config, pass string, panels []Panel) {
	if !cfg.Debug {
		return
	}
	p.Diagnostics = append(p.Diagnostics, DiagnosticEntry{Pass: pass, PanelCount: len(panels)})
}

// filterShortSegments drops any segment shorter than minLen (spec.md §6).
func filterShortSegments(segments []Segment, minLen float64) []Segment {
	result := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if s.Length() >= minLen {
			result = append(result, s)
		}
	}
	return result
}
