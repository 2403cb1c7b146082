package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/tvmount/internal/geometry"
	"github.com/banshee-data/tvmount/internal/scenario"
)

// Sightline returns the dashed line from the eyes to the screen centre.
func Sightline(l scenario.Layout, r geometry.Result, distanceIn float64) []Primitive {
	return []Primitive{
		Polyline{
			Name: "Sightline",
			Points: []r3.Vec{
				{X: l.EyeXIn, Y: 0, Z: r.EyeHeightIn},
				{X: distanceIn, Y: 0, Z: r.TVCenterHeightIn},
			},
			Color:  "red",
			Width:  5,
			Dashed: true,
		},
	}
}
