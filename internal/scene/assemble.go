package scene

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/tvmount/internal/geometry"
	"github.com/banshee-data/tvmount/internal/scenario"
)

// axisPaddingIn is the clearance added around the room on the x and y axes.
const axisPaddingIn = 10.0

// Range is a closed interval on one axis.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// AxisRanges bounds every primitive in a Scene.
type AxisRanges struct {
	X Range `json:"x"`
	Y Range `json:"y"`
	Z Range `json:"z"`
}

// Contains reports whether the box lies entirely within the ranges.
func (a AxisRanges) Contains(b r3.Box) bool {
	return a.X.Contains(b.Min.X) && a.X.Contains(b.Max.X) &&
		a.Y.Contains(b.Min.Y) && a.Y.Contains(b.Max.Y) &&
		a.Z.Contains(b.Min.Z) && a.Z.Contains(b.Max.Z)
}

// Scene is a finished, ordered set of primitives with camera settings.
type Scene struct {
	Primitives []Primitive `json:"primitives"`
	Axes       AxisRanges  `json:"axes"`
	// Aspect is the relative display scale of the x, y and z axes.
	Aspect r3.Vec `json:"aspect"`
	Title  string `json:"title"`
}

// DefaultAspect compresses the vertical axis for readability.
var DefaultAspect = r3.Vec{X: 1, Y: 1, Z: 0.5}

// BuildScene computes the placement for p and assembles the scene that
// illustrates it. On error no scene is returned.
func BuildScene(p geometry.ViewingParameters) (Scene, geometry.Result, error) {
	result, err := geometry.CalculateTVHeight(p)
	if err != nil {
		return Scene{}, geometry.Result{}, fmt.Errorf("calculate tv height: %w", err)
	}
	profile, err := scenario.Lookup(p.Scenario)
	if err != nil {
		return Scene{}, geometry.Result{}, fmt.Errorf("resolve scenario: %w", err)
	}
	layout, err := scenario.LayoutFor(p.Scenario)
	if err != nil {
		return Scene{}, geometry.Result{}, fmt.Errorf("resolve layout: %w", err)
	}

	d := p.DistanceIn()
	roomWidth := RoomWidthIn(profile.WidthIn, result.TVWidthIn)

	var prims []Primitive
	prims = append(prims, Room(d, roomWidth)...)
	prims = append(prims, Furniture(profile, layout)...)
	prims = append(prims, Person(layout, result.EyeHeightIn)...)
	prims = append(prims, TV(result, d)...)
	prims = append(prims, Sightline(layout, result, d)...)
	prims = append(prims, Annotations(result, p.ViewingDistanceFt, profile)...)

	return Scene{
		Primitives: prims,
		Axes:       axisRanges(d, roomWidth, prims),
		Aspect:     DefaultAspect,
		Title:      fmt.Sprintf("3D TV Mounting Setup - %s (FOV: %g°)", p.Scenario.Title(), p.FOVDeg),
	}, result, nil
}

// axisRanges starts from the padded room extents and widens to cover any
// primitive that reaches past them (a bed longer than the room, a TV above
// the ceiling).
func axisRanges(distanceIn, roomWidthIn float64, prims []Primitive) AxisRanges {
	b := r3.Box{
		Min: r3.Vec{X: 0, Y: -roomWidthIn/2 - axisPaddingIn, Z: 0},
		Max: r3.Vec{X: distanceIn + axisPaddingIn, Y: roomWidthIn/2 + axisPaddingIn, Z: CeilingHeightIn},
	}
	for _, p := range prims {
		b = union(b, p.Bounds())
	}
	return AxisRanges{
		X: Range{Min: b.Min.X, Max: b.Max.X},
		Y: Range{Min: b.Min.Y, Max: b.Max.Y},
		Z: Range{Min: b.Min.Z, Max: b.Max.Z},
	}
}
