// Package scene builds the 3D diagnostic scene for a TV placement: the room
// shell, furniture, a schematic viewer, the panel, the sightline and text
// annotations. Builders are pure and return fresh primitives; BuildScene
// concatenates them in draw order.
package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Kind names a primitive variant in encoded scenes.
type Kind string

const (
	KindMesh      Kind = "mesh"
	KindPolyline  Kind = "polyline"
	KindMarker    Kind = "marker"
	KindTextLabel Kind = "text"
)

// Primitive is one renderable element. The set of implementations is closed.
type Primitive interface {
	Kind() Kind
	// Bounds is the axis-aligned box enclosing every point of the primitive.
	Bounds() r3.Box
	primitive()
}

// Mesh is a triangle mesh. Faces index into Vertices.
type Mesh struct {
	Name     string   `json:"name"`
	Vertices []r3.Vec `json:"vertices"`
	Faces    [][3]int `json:"faces"`
	Color    string   `json:"color"`
	Opacity  float64  `json:"opacity"`
}

// Polyline is an open line through Points.
type Polyline struct {
	Name   string   `json:"name"`
	Points []r3.Vec `json:"points"`
	Color  string   `json:"color"`
	Width  float64  `json:"width"`
	Dashed bool     `json:"dashed"`
}

// Marker is a single labelled point.
type Marker struct {
	Point r3.Vec  `json:"point"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
	Label string  `json:"label"`
}

// TextLabel is free text anchored at a point.
type TextLabel struct {
	Point  r3.Vec `json:"point"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

func (Mesh) Kind() Kind      { return KindMesh }
func (Polyline) Kind() Kind  { return KindPolyline }
func (Marker) Kind() Kind    { return KindMarker }
func (TextLabel) Kind() Kind { return KindTextLabel }

func (m Mesh) Bounds() r3.Box      { return boundsOf(m.Vertices...) }
func (l Polyline) Bounds() r3.Box  { return boundsOf(l.Points...) }
func (m Marker) Bounds() r3.Box    { return boundsOf(m.Point) }
func (t TextLabel) Bounds() r3.Box { return boundsOf(t.Point) }

func (Mesh) primitive()      {}
func (Polyline) primitive()  {}
func (Marker) primitive()    {}
func (TextLabel) primitive() {}

func boundsOf(pts ...r3.Vec) r3.Box {
	if len(pts) == 0 {
		return r3.Box{}
	}
	b := r3.Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = extend(b, p)
	}
	return b
}

func extend(b r3.Box, p r3.Vec) r3.Box {
	return r3.Box{
		Min: r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

func union(a, b r3.Box) r3.Box {
	return extend(extend(a, b.Min), b.Max)
}

// box returns a closed cuboid mesh spanning lo..hi.
func box(name string, lo, hi r3.Vec, color string, opacity float64) Mesh {
	v := []r3.Vec{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}
	faces := [][3]int{
		{0, 1, 2}, {0, 2, 3}, // floor
		{4, 5, 6}, {4, 6, 7}, // top
		{0, 1, 5}, {0, 5, 4}, // y-min side
		{3, 2, 6}, {3, 6, 7}, // y-max side
		{0, 3, 7}, {0, 7, 4}, // x-min side
		{1, 2, 6}, {1, 6, 5}, // x-max side
	}
	return Mesh{Name: name, Vertices: v, Faces: faces, Color: color, Opacity: opacity}
}

// quad returns a two-triangle mesh through four corners given in order.
func quad(name string, a, b, c, d r3.Vec, color string, opacity float64) Mesh {
	return Mesh{
		Name:     name,
		Vertices: []r3.Vec{a, b, c, d},
		Faces:    [][3]int{{0, 1, 2}, {0, 2, 3}},
		Color:    color,
		Opacity:  opacity,
	}
}
