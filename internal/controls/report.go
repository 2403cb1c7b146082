package controls

import (
	"fmt"

	"github.com/banshee-data/tvmount/internal/geometry"
	"github.com/banshee-data/tvmount/internal/scene"
)

// Report is everything computed for one selection: the resolved controls,
// the geometry result, its display metrics and the assembled scene.
type Report struct {
	Selection Selection       `json:"selection"`
	Result    geometry.Result `json:"result"`
	Metrics   []Metric        `json:"metrics"`
	Scene     scene.Scene     `json:"scene"`
}

// NewReport runs the scene pipeline for sel.
func NewReport(sel Selection) (Report, error) {
	sc, res, err := scene.BuildScene(sel.Params)
	if err != nil {
		return Report{}, err
	}
	return Report{Selection: sel, Result: res, Metrics: Metrics(res), Scene: sc}, nil
}

// Summary is the one-line chart subtitle for r.
func Summary(r geometry.Result) string {
	return fmt.Sprintf("TV center %.1f\" - mount top at %.1f\"", r.TVCenterHeightIn, r.MountingHeightIn)
}
