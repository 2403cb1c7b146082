package controls

import (
	"fmt"

	"github.com/banshee-data/tvmount/internal/geometry"
)

// Metric is one labelled measurement for the results panel.
type Metric struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}

// Metrics returns the five display values for r, each to one decimal.
func Metrics(r geometry.Result) []Metric {
	m := func(key, label string, v float64, unit string) Metric {
		return Metric{Key: key, Label: label, Value: v, Unit: unit, Display: fmt.Sprintf("%.1f%s", v, unit)}
	}
	return []Metric{
		m("optimal_angle_deg", "Optimal Viewing Angle", r.OptimalAngleDeg, "°"),
		m("tv_center_height_in", "TV Center Height", r.TVCenterHeightIn, `"`),
		m("mounting_height_in", "Mounting Height (top of TV)", r.MountingHeightIn, `"`),
		m("eye_height_in", "Eye Height", r.EyeHeightIn, `"`),
		m("eye_distance_in", "Eye Distance from TV", r.EyeDistanceIn, `"`),
	}
}

// Explanation walks through the ideal size derivation for the selection.
func Explanation(sel Selection) (string, error) {
	p := sel.Params
	halfWidth, err := geometry.IdealTVWidthIn(p.ViewingDistanceFt, p.FOVDeg)
	if err != nil {
		return "", err
	}
	halfWidth /= 2
	half := p.FOVDeg / 2
	return fmt.Sprintf(`The ideal TV size is calculated from the viewing distance and a recommended field of view (FOV):

1. %g-degree FOV for %s viewing.
2. Formula: TV Size = (2 * viewing_distance * tan(%g°)) / 0.87

Picture a right triangle where one leg is the viewing distance (d) from your
eyes to the TV, the other leg is half the TV width (w/2), and the angle at
your eye is half the FOV (%g°). Then tan(%g°) = (w/2) / d, so
w = 2 * d * tan(%g°). TV sizes are diagonals; at 16:9 the width is about 0.87
times the diagonal, giving TV Size = w / 0.87.

For %g feet viewing distance:
- Distance in inches: %g inches
- Half of the ideal TV width: %.1f inches
- Ideal TV size: %d inches (diagonal)

Consider personal preference and room constraints when choosing a TV size.
`, p.FOVDeg, sel.FOVName, half, half, half, half,
		p.ViewingDistanceFt, p.DistanceIn(), halfWidth, sel.IdealSizeIn), nil
}
