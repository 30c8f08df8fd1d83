// Given a parsed command stream, implements how to
// lay it out on a target canvas.
// The resulting segments are then handed to a driver implementing the
// actual draw operations, such as a rasterizer to output .png images
// or a pdf writer.
package hpgldraw

import (
	"image/color"
	"io"

	"github.com/benoitkugler/hpgl/hpgl"
)

// Point2 is a point in target units, origin at the top-left corner.
type Point2 struct{ X, Y float64 }

// Segment is a straight line, ready to be drawn.
type Segment struct {
	From, To Point2
	Pen      hpgl.Pen
}

// Drawing is the layout of a whole command stream: a canvas size
// and the ordered segments to paint on it.
type Drawing struct {
	Width, Height float64
	Segments      []Segment
}

// Style is shared by every segment of a drawing.
type Style struct {
	Color color.NRGBA // not premultiplied
	Width float64     // in target units
}

// DefaultStyle strokes with a black, 3 units wide line.
var DefaultStyle = Style{Color: color.NRGBA{A: 0xff}, Width: 3}

// Driver knows how to encode a drawing,
// but doesn't need any plotter knowledge.
type Driver interface {
	// Extension returns the file extension of the produced artifact,
	// including the leading dot.
	Extension() string

	// Render paints every segment of `d` with the style `st`
	// and writes the encoded artifact to `w`.
	// Backgrounds are left transparent.
	Render(w io.Writer, d Drawing, st Style) error
}

// PenGroup is a run of segments sharing a pen.
type PenGroup struct {
	Pen      hpgl.Pen
	Segments []Segment
}

// GroupByPen gathers the segments per pen, with groups ordered
// by first use. Inside a group, the drawing order is preserved.
func (d Drawing) GroupByPen() []PenGroup {
	var (
		groups []PenGroup
		index  = make(map[hpgl.Pen]int)
	)
	for _, seg := range d.Segments {
		i, ok := index[seg.Pen]
		if !ok {
			i = len(groups)
			index[seg.Pen] = i
			groups = append(groups, PenGroup{Pen: seg.Pen})
		}
		groups[i].Segments = append(groups[i].Segments, seg)
	}
	return groups
}
