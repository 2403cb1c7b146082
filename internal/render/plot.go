package render

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/tvmount/internal/scene"
)

// Default PNG sizes.
const (
	ElevationWidth  = 10 * vg.Inch
	ElevationHeight = 6 * vg.Inch
	TrigWidth       = 6 * vg.Inch
	TrigHeight      = 4 * vg.Inch
)

// ElevationPlot draws the scene as seen from the side (the x–z plane).
// Meshes are drawn as the outline of their x–z extent.
func ElevationPlot(s scene.Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title + " (side view)"
	p.X.Label.Text = "Distance from seating wall (in)"
	p.Y.Label.Text = "Height (in)"
	p.X.Min, p.X.Max = s.Axes.X.Min, s.Axes.X.Max
	p.Y.Min, p.Y.Max = s.Axes.Z.Min, s.Axes.Z.Max

	var labelXYs plotter.XYs
	var labelTexts []string

	for _, prim := range s.Primitives {
		switch v := prim.(type) {
		case scene.Mesh:
			b := v.Bounds()
			outline := plotter.XYs{
				{X: b.Min.X, Y: b.Min.Z}, {X: b.Max.X, Y: b.Min.Z},
				{X: b.Max.X, Y: b.Max.Z}, {X: b.Min.X, Y: b.Max.Z},
				{X: b.Min.X, Y: b.Min.Z},
			}
			l, err := plotter.NewLine(outline)
			if err != nil {
				return nil, fmt.Errorf("outline %s: %w", v.Name, err)
			}
			l.Color = withOpacity(v.Color, math.Max(v.Opacity, 0.5))
			l.Width = vg.Points(1)
			if b.Max.X == b.Min.X {
				// Panels seen edge-on.
				l.Width = vg.Points(3)
			}
			p.Add(l)
		case scene.Polyline:
			xys := make(plotter.XYs, 0, len(v.Points))
			for _, pt := range v.Points {
				xys = append(xys, plotter.XY{X: pt.X, Y: pt.Z})
			}
			l, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("line %s: %w", v.Name, err)
			}
			l.Color = namedColor(v.Color)
			l.Width = vg.Points(1.5)
			if v.Dashed {
				l.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
			}
			p.Add(l)
		case scene.Marker:
			sc, err := plotter.NewScatter(plotter.XYs{{X: v.Point.X, Y: v.Point.Z}})
			if err != nil {
				return nil, fmt.Errorf("marker %s: %w", v.Label, err)
			}
			sc.GlyphStyle.Color = namedColor(v.Color)
			sc.GlyphStyle.Radius = vg.Points(v.Size)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(sc)
			p.Legend.Add(v.Label, sc)
		case scene.TextLabel:
			labelXYs = append(labelXYs, plotter.XY{X: v.Point.X, Y: v.Point.Z})
			labelTexts = append(labelTexts, v.Text)
		}
	}

	if len(labelXYs) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelTexts})
		if err != nil {
			return nil, fmt.Errorf("labels: %w", err)
		}
		p.Add(labels)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// TrigPlot draws the right triangle behind the ideal size calculation: the
// viewing distance d, half the screen width, and half the field of view at
// the eye.
func TrigPlot(distanceIn, fovDeg float64) (*plot.Plot, error) {
	halfWidth := distanceIn * math.Tan(fovDeg/2*math.Pi/180)

	p := plot.New()
	p.Title.Text = "Trigonometric Representation of Viewing Distance and TV Width"
	p.X.Label.Text = "Distance (inches)"
	p.Y.Label.Text = "Height (inches)"

	tri := plotter.XYs{{X: 0, Y: 0}, {X: distanceIn, Y: 0}, {X: distanceIn, Y: halfWidth}, {X: 0, Y: 0}}
	line, points, err := plotter.NewLinePoints(tri)
	if err != nil {
		return nil, fmt.Errorf("triangle: %w", err)
	}
	line.Color = namedColor("royalblue")
	line.Width = vg.Points(2)
	points.Color = namedColor("royalblue")
	p.Add(line, points)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{
			{X: distanceIn / 2, Y: -halfWidth / 10},
			{X: distanceIn, Y: halfWidth / 2},
			{X: distanceIn / 2, Y: halfWidth / 2},
		},
		Labels: []string{
			"d (Viewing Distance)",
			"w/2 (Half TV Width)",
			fmt.Sprintf("%g°", fovDeg/2),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("triangle labels: %w", err)
	}
	p.Add(labels)
	p.Y.Min = -halfWidth / 5
	return p, nil
}

// WritePNG encodes the plot as a PNG of the given size.
func WritePNG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("prepare png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
