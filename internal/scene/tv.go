package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/tvmount/internal/geometry"
)

// TV returns the panel on the far wall, centred at (distanceIn, 0, centre).
func TV(r geometry.Result, distanceIn float64) []Primitive {
	bottom, top := r.TVBottomIn(), r.TVTopIn()
	half := r.TVWidthIn / 2
	return []Primitive{
		quad("TV",
			r3.Vec{X: distanceIn, Y: -half, Z: bottom}, r3.Vec{X: distanceIn, Y: half, Z: bottom},
			r3.Vec{X: distanceIn, Y: half, Z: top}, r3.Vec{X: distanceIn, Y: -half, Z: top},
			"black", 0.8),
	}
}
