package render

import (
	"image/color"

	"golang.org/x/text/width"
)

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpFillRect     OpKind = "fill-rect"
	OpStrokeRect   OpKind = "stroke-rect"
	OpGradientRect OpKind = "gradient-rect"
	OpLine         OpKind = "line"
	OpFillCircle   OpKind = "fill-circle"
	OpStrokeCircle OpKind = "stroke-circle"
	OpFillPolygon  OpKind = "fill-polygon"
	OpText         OpKind = "text"
)

// Op is one recorded call. Fields not used by Kind stay zero. Rotation is
// the total rotation in effect when the call was made.
type Op struct {
	Kind      OpKind
	X, Y      float64
	W, H      float64
	X2, Y2    float64
	R         float64
	LineWidth float64
	Size      float64
	Text      string
	Color     color.RGBA
	Color2    color.RGBA
	Points    []Point
	Rotation  float64
}

// Recorder is a Surface that keeps every call instead of drawing it.
type Recorder struct {
	Ops      []Op
	rotation float64
}

func (r *Recorder) add(op Op) {
	op.Rotation = r.rotation
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.add(Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, lineWidth float64, c color.RGBA) {
	r.add(Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h, LineWidth: lineWidth, Color: c})
}

func (r *Recorder) GradientRect(x, y, w, h float64, top, bottom color.RGBA) {
	r.add(Op{Kind: OpGradientRect, X: x, Y: y, W: w, H: h, Color: top, Color2: bottom})
}

func (r *Recorder) Line(x1, y1, x2, y2, lineWidth float64, c color.RGBA) {
	r.add(Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, LineWidth: lineWidth, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.RGBA) {
	r.add(Op{Kind: OpFillCircle, X: cx, Y: cy, R: radius, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, lineWidth float64, c color.RGBA) {
	r.add(Op{Kind: OpStrokeCircle, X: cx, Y: cy, R: radius, LineWidth: lineWidth, Color: c})
}

func (r *Recorder) FillPolygon(pts []Point, c color.RGBA) {
	r.add(Op{Kind: OpFillPolygon, Points: append([]Point(nil), pts...), Color: c})
}

func (r *Recorder) Text(x, y, size float64, s string, c color.RGBA) {
	r.add(Op{Kind: OpText, X: x, Y: y, Size: size, Text: s, Color: c})
}

// TextWidth estimates advance width: half an em per narrow rune, a full
// em for East Asian wide and fullwidth runes.
func (r *Recorder) TextWidth(s string, size float64) float64 {
	var w float64
	for _, c := range s {
		switch width.LookupRune(c).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += size
		default:
			w += size / 2
		}
	}
	return w
}

func (r *Recorder) Rotate(deg, _, _ float64, draw func()) {
	r.rotation += deg
	defer func() { r.rotation -= deg }()
	draw()
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
