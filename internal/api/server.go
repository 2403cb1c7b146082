// Package api serves the calculator over HTTP: an HTML control page, the
// 3D chart, PNG diagrams and JSON endpoints. Every request re-runs the full
// pipeline from its query parameters; the server holds no per-user state.
package api

import (
	"bytes"
	"net/http"

	"github.com/banshee-data/tvmount/internal/config"
	"github.com/banshee-data/tvmount/internal/controls"
	"github.com/banshee-data/tvmount/internal/geometry"
	"github.com/banshee-data/tvmount/internal/httputil"
	"github.com/banshee-data/tvmount/internal/monitoring"
	"github.com/banshee-data/tvmount/internal/render"
	"github.com/banshee-data/tvmount/internal/version"
)

type Server struct {
	cfg *config.Config
}

func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.EmptyConfig()
	}
	return &Server{cfg: cfg}
}

// SceneResponse is the body of /api/scene. The same document is written to
// scene.json by an export.
type SceneResponse = controls.Report

// IdealSizeResponse is the body of /api/ideal-size.
type IdealSizeResponse struct {
	DistanceFt     float64 `json:"distance_ft"`
	FOVDeg         float64 `json:"fov_deg"`
	IdealTVSizeIn  int     `json:"ideal_tv_size_in"`
	IdealTVWidthIn float64 `json:"ideal_tv_width_in"`
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/chart", s.handleChart)
	mux.HandleFunc("/elevation.png", s.handleElevationPNG)
	mux.HandleFunc("/explain", s.handleExplain)
	mux.HandleFunc("/explain.png", s.handleExplainPNG)
	mux.HandleFunc("/api/scene", s.handleScene)
	mux.HandleFunc("/api/ideal-size", s.handleIdealSize)
	mux.HandleFunc("/api/version", s.handleVersion)
	return mux
}

// Handler returns the mux wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return monitoring.LogRequests(s.ServeMux())
}

// compute parses the request and runs the pipeline. On failure it writes
// the error response and returns ok=false.
func (s *Server) compute(w http.ResponseWriter, r *http.Request) (controls.Report, bool) {
	if !httputil.RequireGET(w, r) {
		return controls.Report{}, false
	}
	sel, err := controls.ParseQuery(r.URL.Query(), s.cfg)
	if err != nil {
		httputil.WriteError(w, err)
		return controls.Report{}, false
	}
	rep, err := controls.NewReport(sel)
	if err != nil {
		monitoring.Logf("build scene for %+v: %v", sel.Params, err)
		httputil.WriteError(w, err)
		return controls.Report{}, false
	}
	return rep, true
}

// ChartOptions returns the chart settings from cfg for a result.
func ChartOptions(cfg *config.Config, res geometry.Result) render.ChartOptions {
	return render.ChartOptions{
		AssetsHost: cfg.GetAssetsHost(),
		Width:      cfg.GetChartWidth(),
		Height:     cfg.GetChartHeight(),
		Subtitle:   controls.Summary(res),
	}
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.compute(w, r)
	if !ok {
		return
	}
	httputil.WriteJSONOK(w, rep)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.compute(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.WriteChart3D(&buf, rep.Scene, ChartOptions(s.cfg, rep.Result)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteBody(w, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleElevationPNG(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.compute(w, r)
	if !ok {
		return
	}
	p, err := render.ElevationPlot(rep.Scene)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := render.WritePNG(&buf, p, render.ElevationWidth, render.ElevationHeight); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteBody(w, "image/png", buf.Bytes())
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.compute(w, r)
	if !ok {
		return
	}
	text, err := controls.Explanation(rep.Selection)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteBody(w, "text/plain; charset=utf-8", []byte(text))
}

func (s *Server) handleExplainPNG(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.compute(w, r)
	if !ok {
		return
	}
	p := rep.Selection.Params
	plt, err := render.TrigPlot(p.DistanceIn(), p.FOVDeg)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := render.WritePNG(&buf, plt, render.TrigWidth, render.TrigHeight); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteBody(w, "image/png", buf.Bytes())
}

func (s *Server) handleIdealSize(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.compute(w, r)
	if !ok {
		return
	}
	sel := rep.Selection
	width, err := geometry.IdealTVWidthIn(sel.Params.ViewingDistanceFt, sel.Params.FOVDeg)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSONOK(w, IdealSizeResponse{
		DistanceFt:     sel.Params.ViewingDistanceFt,
		FOVDeg:         sel.Params.FOVDeg,
		IdealTVSizeIn:  sel.IdealSizeIn,
		IdealTVWidthIn: width,
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireGET(w, r) {
		return
	}
	httputil.WriteJSONOK(w, version.Current())
}
