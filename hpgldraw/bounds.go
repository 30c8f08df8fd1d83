package hpgldraw

import (
	"errors"

	"github.com/benoitkugler/hpgl/hpgl"
)

// compute the bounding box of a program, needed to center and scale it

// ErrDegenerateBounds is returned when the coordinates do not span any area,
// which also covers programs without coordinates.
var ErrDegenerateBounds = errors.New("no valid coordinates to compute bounds")

// BoundingBox is expressed in source units.
type BoundingBox struct {
	MinX, MaxX, MinY, MaxY int
}

// Degenerate returns true when the box reduces to a single point.
func (bb BoundingBox) Degenerate() bool {
	return bb.MinX == bb.MaxX && bb.MinY == bb.MaxY
}

func (bb BoundingBox) union(p hpgl.Point) BoundingBox {
	if p.X < bb.MinX {
		bb.MinX = p.X
	}
	if p.X > bb.MaxX {
		bb.MaxX = p.X
	}
	if p.Y < bb.MinY {
		bb.MinY = p.Y
	}
	if p.Y > bb.MaxY {
		bb.MaxY = p.Y
	}
	return bb
}

// Bounds scans every point referenced by the motion events.
// Without any point, the zero box is returned.
// A degenerate box is returned alongside ErrDegenerateBounds.
func Bounds(events []hpgl.Event) (BoundingBox, error) {
	var (
		bb   BoundingBox
		seen bool
	)
	add := func(p hpgl.Point) {
		if !seen {
			bb = BoundingBox{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y} // degenerate case
			seen = true
			return
		}
		bb = bb.union(p)
	}
	for _, ev := range events {
		switch ev := ev.(type) {
		case hpgl.PenUp:
			add(ev.At)
		case hpgl.PenDown:
			for _, p := range ev.Points {
				add(p)
			}
		}
	}
	if bb.Degenerate() {
		return bb, ErrDegenerateBounds
	}
	return bb, nil
}
