package kumiko

import "encoding/json"

// Result is the public, serialisable record produced per page (spec.md §6
// "Public result"). It is derived from a terminal Page, never mutated
// afterward.
type Result struct {
	Filename       string          `json:"filename,omitempty"`
	URL            string          `json:"url,omitempty"`
	Size           [2]int          `json:"size"`
	Numbering      Numbering       `json:"numbering"`
	Gutters        [2]int          `json:"gutters"`
	License        json.RawMessage `json:"license"`
	Panels         [][4]int        `json:"panels"`
	ProcessingTime float64         `json:"processing_time"`
}

// ToResult builds the public Result for a terminal Page.
func (p *Page) ToResult() Result {
	panels := make([][4]int, len(p.Panels))
	for i, panel := range p.Panels {
		panels[i] = [4]int{panel.X, panel.Y, panel.W(), panel.H()}
	}

	r := Result{
		Filename:       p.SourcePath,
		URL:            p.SourceURL,
		Size:           [2]int{p.Width, p.Height},
		Numbering:      p.Config.Numbering,
		Gutters:        [2]int{p.Gutters.X, p.Gutters.Y},
		License:        p.License,
		Panels:         panels,
		ProcessingTime: roundSeconds(p.ProcessingTime),
	}
	return r
}

// roundSeconds rounds d (seconds) to two decimal places, per spec.md §6.
func roundSeconds(d float64) float64 {
	return float64(int(d*100+0.5)) / 100
}
