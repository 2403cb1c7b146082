package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/tvmount/internal/scenario"
)

const furnitureOpacity = 0.8

// Furniture returns the base block and the secondary block (couch back or
// headboard) for the profile, stacked per the layout.
func Furniture(p scenario.FurnitureProfile, l scenario.Layout) []Primitive {
	baseName, upperName := p.Name+" seat", p.Name+" back"
	if l.Pose == scenario.Supine {
		baseName, upperName = p.Name, p.Name+" headboard"
	}

	block := func(name string, z0, z1 float64) Mesh {
		return box(name,
			r3.Vec{X: 0, Y: -p.WidthIn / 2, Z: z0},
			r3.Vec{X: p.DepthIn, Y: p.WidthIn / 2, Z: z1},
			p.Color, furnitureOpacity)
	}

	return []Primitive{
		block(baseName, 0, l.BaseTopIn),
		block(upperName, l.BaseTopIn, l.UpperTopIn),
	}
}
