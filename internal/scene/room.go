package scene

import "gonum.org/v1/gonum/spatial/r3"

// CeilingHeightIn is the fixed vertical extent of the room shell.
const CeilingHeightIn = 120.0

// roomMarginIn is added to the wider of couch/bed and TV to size the room.
const roomMarginIn = 20.0

// RoomWidthIn returns the room width for a furniture width and TV width.
func RoomWidthIn(furnitureWidthIn, tvWidthIn float64) float64 {
	w := furnitureWidthIn
	if tvWidthIn > w {
		w = tvWidthIn
	}
	return w + roomMarginIn
}

// Room returns the translucent shell from the seating wall (x=0) to the TV
// wall (x=distanceIn).
func Room(distanceIn, roomWidthIn float64) []Primitive {
	return []Primitive{
		box("Room",
			r3.Vec{X: 0, Y: -roomWidthIn / 2, Z: 0},
			r3.Vec{X: distanceIn, Y: roomWidthIn / 2, Z: CeilingHeightIn},
			"lightblue", 0.2),
	}
}
