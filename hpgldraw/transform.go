package hpgldraw

import (
	"errors"
	"fmt"
	"math"

	"github.com/benoitkugler/hpgl/hpgl"
)

// ErrInvalidResolution is returned for non positive or non finite resolutions.
var ErrInvalidResolution = errors.New("invalid resolution")

// Transform maps source units to target units: points are translated
// to the bounding box origin, scaled, and flipped vertically, since
// plotters grow y upward while images grow it downward.
type Transform struct {
	Box   BoundingBox
	Scale float64 // target units per source unit
}

// NewTransform returns the transform scaling from `source` to `target`
// resolution (both in units per inch).
func NewTransform(bb BoundingBox, source, target float64) (Transform, error) {
	for _, res := range [2]float64{source, target} {
		if !(res > 0) || math.IsInf(res, 0) {
			return Transform{}, fmt.Errorf("%w: %g", ErrInvalidResolution, res)
		}
	}
	return Transform{Box: bb, Scale: target / source}, nil
}

// Size returns the dimensions of the target canvas.
func (tr Transform) Size() (width, height float64) {
	return span(tr.Box.MinX, tr.Box.MaxX) * tr.Scale, span(tr.Box.MinY, tr.Box.MaxY) * tr.Scale
}

// Apply maps one source point.
func (tr Transform) Apply(p hpgl.Point) Point2 {
	return Point2{
		X: span(tr.Box.MinX, p.X) * tr.Scale,
		Y: span(p.Y, tr.Box.MaxY) * tr.Scale,
	}
}

// cursor is the accumulator threaded through the event fold.
type cursor struct {
	pos Point2
	pen hpgl.Pen
	out []Segment
}

func (tr Transform) step(c cursor, ev hpgl.Event) cursor {
	switch ev := ev.(type) {
	case hpgl.SelectPen:
		c.pen = ev.Pen
	case hpgl.PenUp:
		c.pos = tr.Apply(ev.At)
	case hpgl.PenDown:
		for _, p := range ev.Points {
			to := tr.Apply(p)
			c.out = append(c.out, Segment{From: c.pos, To: to, Pen: c.pen})
			c.pos = to
		}
	}
	return c
}

// Segments returns one segment per point drawn.
// The pen starts at the target origin, so that a leading PD draws
// from the top-left corner of the canvas.
func (tr Transform) Segments(events []hpgl.Event) []Segment {
	c := cursor{pen: hpgl.PenUnset}
	for _, ev := range events {
		c = tr.step(c, ev)
	}
	return c.out
}

// Layout computes the bounds of the events, and returns the scaled,
// flipped segments on a canvas of matching size.
func Layout(events []hpgl.Event, source, target float64) (Drawing, error) {
	bb, err := Bounds(events)
	if err != nil {
		return Drawing{}, err
	}
	tr, err := NewTransform(bb, source, target)
	if err != nil {
		return Drawing{}, err
	}
	w, h := tr.Size()
	return Drawing{Width: w, Height: h, Segments: tr.Segments(events)}, nil
}

// span returns b - a, computed in floating point since
// the integer difference of two coordinates may overflow.
func span(a, b int) float64 { return float64(b) - float64(a) }
