package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/banshee-data/tvmount/internal/config"
	"github.com/banshee-data/tvmount/internal/controls"
	"github.com/banshee-data/tvmount/internal/geometry"
	"github.com/banshee-data/tvmount/internal/httputil"
	"github.com/banshee-data/tvmount/internal/scenario"
)

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type option struct {
	Value    string
	Label    string
	Selected bool
}

type indexPage struct {
	Params        geometry.ViewingParameters
	IdealSizeIn   int
	Scenarios     []option
	FOVs          []option
	DistanceRange config.Range
	EyeRange      config.Range
	SizeRange     config.Range
	Metrics       []controls.Metric
	Explanation   string
	// Query is the canonical query string for the chart and image URLs.
	Query template.URL
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		httputil.WriteJSONError(w, http.StatusNotFound, "not found")
		return
	}
	rep, ok := s.compute(w, r)
	if !ok {
		return
	}
	sel := rep.Selection
	explanation, err := controls.Explanation(sel)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	page := indexPage{
		Params:        sel.Params,
		IdealSizeIn:   sel.IdealSizeIn,
		DistanceRange: s.cfg.GetDistanceRangeFt(),
		EyeRange:      s.cfg.GetEyeHeightRangeIn(),
		SizeRange:     s.cfg.GetTVSizeRangeIn(),
		Metrics:       rep.Metrics,
		Explanation:   explanation,
		Query:         template.URL(controls.Values(sel.Params).Encode()),
	}
	for _, sc := range scenario.All() {
		page.Scenarios = append(page.Scenarios, option{
			Value:    sc.String(),
			Label:    sc.Title(),
			Selected: sc == sel.Params.Scenario,
		})
	}
	for _, p := range geometry.FOVPresets {
		page.FOVs = append(page.FOVs, option{
			Value:    fmt.Sprintf("%g", p.Deg),
			Label:    p.Name,
			Selected: p.Deg == sel.Params.FOVDeg,
		})
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		httputil.WriteError(w, fmt.Errorf("render index: %w", err))
		return
	}
	httputil.WriteBody(w, "text/html; charset=utf-8", buf.Bytes())
}
