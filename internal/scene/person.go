package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/tvmount/internal/scenario"
)

// Figure proportions in inches.
const (
	torsoLengthSeatedIn = 20.0
	torsoLengthSupineIn = 36.0
	headLengthIn        = 10.0
	legLengthIn         = 15.0
	armLengthIn         = 10.0

	personColor   = "blue"
	personOpacity = 0.8
	eyeMarkerSize = 5.0
)

// Person returns the schematic viewer for the layout and an "Eyes" marker.
// The marker always sits at eyeHeightIn so the scene agrees with the
// computed result.
func Person(l scenario.Layout, eyeHeightIn float64) []Primitive {
	var parts []Primitive
	if l.Pose == scenario.Supine {
		parts = supineFigure(l.PersonXIn, l.PersonYIn, l.PersonZIn)
	} else {
		parts = seatedFigure(l.PersonXIn, l.PersonYIn, l.PersonZIn)
	}
	return append(parts, Marker{
		Point: r3.Vec{X: l.EyeXIn, Y: l.PersonYIn, Z: eyeHeightIn},
		Size:  eyeMarkerSize,
		Color: personColor,
		Label: "Eyes",
	})
}

// seatedFigure draws an upright figure in the x=px plane, hips at pz.
func seatedFigure(px, py, pz float64) []Primitive {
	torsoTop := pz + torsoLengthSeatedIn
	armZ := pz + torsoLengthSeatedIn/2
	return []Primitive{
		quad("Torso",
			r3.Vec{X: px, Y: py - 5, Z: pz}, r3.Vec{X: px, Y: py + 5, Z: pz},
			r3.Vec{X: px, Y: py + 5, Z: torsoTop}, r3.Vec{X: px, Y: py - 5, Z: torsoTop},
			personColor, personOpacity),
		quad("Head",
			r3.Vec{X: px, Y: py - 3, Z: torsoTop}, r3.Vec{X: px, Y: py + 3, Z: torsoTop},
			r3.Vec{X: px, Y: py + 3, Z: torsoTop + headLengthIn}, r3.Vec{X: px, Y: py - 3, Z: torsoTop + headLengthIn},
			personColor, personOpacity),
		quad("Legs",
			r3.Vec{X: px - 2, Y: py - 2, Z: pz - legLengthIn}, r3.Vec{X: px + 2, Y: py - 2, Z: pz - legLengthIn},
			r3.Vec{X: px + 2, Y: py + 2, Z: pz}, r3.Vec{X: px - 2, Y: py + 2, Z: pz},
			personColor, personOpacity),
		quad("Arms",
			r3.Vec{X: px - armLengthIn, Y: py - 1, Z: armZ}, r3.Vec{X: px + armLengthIn, Y: py - 1, Z: armZ},
			r3.Vec{X: px + armLengthIn, Y: py + 1, Z: armZ}, r3.Vec{X: px - armLengthIn, Y: py + 1, Z: armZ},
			personColor, personOpacity),
	}
}

// supineFigure draws a figure lying flat at height pz, head at px, feet
// towards the TV.
func supineFigure(px, py, pz float64) []Primitive {
	flat := func(name string, x0, x1, halfWidth float64) Mesh {
		return quad(name,
			r3.Vec{X: x0, Y: py - halfWidth, Z: pz}, r3.Vec{X: x1, Y: py - halfWidth, Z: pz},
			r3.Vec{X: x1, Y: py + halfWidth, Z: pz}, r3.Vec{X: x0, Y: py + halfWidth, Z: pz},
			personColor, personOpacity)
	}
	armCenter := px + torsoLengthSupineIn/2
	return []Primitive{
		flat("Torso", px, px+torsoLengthSupineIn, 5),
		flat("Head", px, px+headLengthIn, 3),
		flat("Legs", px+torsoLengthSupineIn, px+torsoLengthSupineIn+legLengthIn, 2),
		flat("Arms", armCenter-armLengthIn, armCenter+armLengthIn, 1),
	}
}
