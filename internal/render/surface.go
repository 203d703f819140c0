// Package render paints a static Unlight game board onto a 2D surface and
// produces printable PDF boards.
package render

import "image/color"

// Logical board size. Surfaces use top-left origin, y growing downward.
const (
	BoardW = 860
	BoardH = 680
)

// Point is a position on the surface.
type Point struct {
	X, Y float64
}

// Surface is the drawing target for the board. Text is positioned by the
// top-left corner of its box; size is the font size in surface units.
type Surface interface {
	FillRect(x, y, w, h float64, c color.RGBA)
	StrokeRect(x, y, w, h, lineWidth float64, c color.RGBA)
	// GradientRect fills a rectangle with a vertical gradient from top to bottom.
	GradientRect(x, y, w, h float64, top, bottom color.RGBA)
	Line(x1, y1, x2, y2, lineWidth float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	StrokeCircle(cx, cy, r, lineWidth float64, c color.RGBA)
	FillPolygon(pts []Point, c color.RGBA)
	Text(x, y, size float64, s string, c color.RGBA)
	TextWidth(s string, size float64) float64
	// Rotate runs draw with every operation rotated by deg degrees
	// (counter-clockwise) around (cx, cy).
	Rotate(deg, cx, cy float64, draw func())
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
