package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/tvmount/internal/scene"
)

// gridBoxSize is the ECharts GL grid size for an aspect component of 1.
const gridBoxSize = 100

// ChartOptions controls page-level settings of the 3D chart.
type ChartOptions struct {
	AssetsHost string
	Width      string
	Height     string
	Subtitle   string
}

// Chart3D converts the scene into an ECharts GL chart. Meshes become
// wireframes (one closed loop per face), polylines become line series, and
// markers and text labels become labelled scatter points.
func Chart3D(s scene.Scene, o ChartOptions) *charts.Scatter3D {
	points := charts.NewScatter3D()
	points.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  s.Title,
			Width:      o.Width,
			Height:     o.Height,
			AssetsHost: o.AssetsHost,
		}),
		charts.WithTitleOpts(opts.Title{Title: s.Title, Subtitle: o.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X (in)", Min: s.Axes.X.Min, Max: s.Axes.X.Max}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y (in)", Min: s.Axes.Y.Min, Max: s.Axes.Y.Max}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z (in)", Min: s.Axes.Z.Min, Max: s.Axes.Z.Max}),
		charts.WithGrid3DOpts(opts.Grid3D{
			BoxWidth:  float32(gridBoxSize * s.Aspect.X),
			BoxDepth:  float32(gridBoxSize * s.Aspect.Y),
			BoxHeight: float32(gridBoxSize * s.Aspect.Z),
		}),
	)

	lines := charts.NewLine3D()
	var labels []opts.Chart3DData

	for _, p := range s.Primitives {
		switch v := p.(type) {
		case scene.Mesh:
			style := charts.WithLineStyleOpts(opts.LineStyle{Color: cssRGBA(v.Color, v.Opacity), Width: 2})
			for _, f := range v.Faces {
				loop := []r3.Vec{v.Vertices[f[0]], v.Vertices[f[1]], v.Vertices[f[2]], v.Vertices[f[0]]}
				lines.AddSeries(v.Name, chartPoints(loop), style)
			}
		case scene.Polyline:
			lineType := "solid"
			if v.Dashed {
				lineType = "dashed"
			}
			lines.AddSeries(v.Name, chartPoints(v.Points),
				charts.WithLineStyleOpts(opts.LineStyle{Color: cssRGBA(v.Color, 1), Width: float32(v.Width), Type: lineType}))
		case scene.Marker:
			points.AddSeries(v.Label, []opts.Chart3DData{{
				Name:  v.Label,
				Value: vecValue(v.Point),
				Label: &opts.Label{Show: opts.Bool(true), Formatter: "{b}", Position: "right"},
			}}, charts.WithItemStyleOpts(opts.ItemStyle{Color: cssRGBA(v.Color, 1)}))
		case scene.TextLabel:
			labels = append(labels, opts.Chart3DData{
				Name:  v.Text,
				Value: vecValue(v.Point),
				Label: &opts.Label{Show: opts.Bool(true), Formatter: "{b}", Position: "top"},
			})
		}
	}
	if len(labels) > 0 {
		points.AddSeries("Annotations", labels,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: cssRGBA("black", 0.6)}))
	}

	// Scatter3D and Line3D share one grid3D; carry the line series over so
	// both draw in the same coordinate system.
	points.MultiSeries = append(points.MultiSeries, lines.MultiSeries...)
	return points
}

// WriteChart3D renders the scene chart as a standalone HTML page.
func WriteChart3D(w io.Writer, s scene.Scene, o ChartOptions) error {
	page := components.NewPage()
	page.SetAssetsHost(o.AssetsHost)
	page.PageTitle = s.Title
	page.AddCharts(Chart3D(s, o))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render 3d chart: %w", err)
	}
	return nil
}

func chartPoints(pts []r3.Vec) []opts.Chart3DData {
	out := make([]opts.Chart3DData, 0, len(pts))
	for _, p := range pts {
		out = append(out, opts.Chart3DData{Value: vecValue(p)})
	}
	return out
}

func vecValue(p r3.Vec) []interface{} {
	return []interface{}{p.X, p.Y, p.Z}
}
