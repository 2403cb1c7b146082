// Package render draws a scene.Scene for people: an interactive 3D chart
// (go-echarts / ECharts GL) and static PNG diagrams (gonum/plot). Renderers
// only project and style primitives; they never move them.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// fallbackColor is used for colour names colornames does not know.
var fallbackColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// namedColor resolves an SVG colour name ("lightblue", "brown", ...).
func namedColor(name string) color.RGBA {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return fallbackColor
}

// withOpacity returns the named colour with alpha set from opacity in [0,1].
// The result is non-premultiplied; image/color converts it for compositing.
func withOpacity(name string, opacity float64) color.NRGBA {
	c := namedColor(name)
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity*255 + 0.5)}
}

// cssRGBA formats a colour as a CSS rgba() string for ECharts.
func cssRGBA(name string, opacity float64) string {
	c := withOpacity(name, opacity)
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, float64(c.A)/255)
}
