package scene

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/tvmount/internal/geometry"
	"github.com/banshee-data/tvmount/internal/scenario"
)

const (
	labelOffsetIn = 5.0
	labelAnchor   = "top center"
	// distanceLabelZIn keeps the distance label just above the floor.
	distanceLabelZIn = 10.0
)

// Annotations returns the measurement labels, each a fixed offset from the
// feature it describes.
func Annotations(r geometry.Result, distanceFt float64, p scenario.FurnitureProfile) []Primitive {
	tvX := distanceFt * geometry.InchesPerFoot
	label := func(x, y, z float64, format string, args ...any) Primitive {
		return TextLabel{Point: r3.Vec{X: x, Y: y, Z: z}, Text: fmt.Sprintf(format, args...), Anchor: labelAnchor}
	}
	return []Primitive{
		label(labelOffsetIn, 0, r.EyeHeightIn, "Eye Height: %.1f\"", r.EyeHeightIn),
		label(tvX+labelOffsetIn, 0, r.TVCenterHeightIn, "TV Center: %.1f\"", r.TVCenterHeightIn),
		label(tvX/2, 0, distanceLabelZIn, "Viewing Distance: %.1f ft", distanceFt),
		label(p.DepthIn+labelOffsetIn, 0, p.HeightIn/2, "%s Height: %.0f\"", p.Name, p.HeightIn),
		label(tvX+labelOffsetIn, 0, r.TVBottomIn(), "TV Bottom: %.1f\"", r.TVBottomIn()),
		label(tvX+labelOffsetIn, r.TVWidthIn/2+labelOffsetIn, r.TVCenterHeightIn, "TV Width: %.1f\"", r.TVWidthIn),
		label(tvX+labelOffsetIn, 0, r.TVTopIn(), "TV Top: %.1f\"", r.TVTopIn()),
	}
}
