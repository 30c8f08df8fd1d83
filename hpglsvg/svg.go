// Implements an SVG backend to render plotter drawings.
// Segments are grouped by pen, one <g> element per pen.
package hpglsvg

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/benoitkugler/hpgl/hpgl"
	"github.com/benoitkugler/hpgl/hpgldraw"
)

var _ hpgldraw.Driver = Renderer{} // assert interface conformance

const namespace = "http://www.w3.org/2000/svg"

// Renderer writes drawings as SVG documents.
type Renderer struct{}

func (Renderer) Extension() string { return ".svg" }

type (
	// Document is the root <svg> element.
	Document struct {
		XMLName xml.Name `xml:"svg"`
		XMLNS   string   `xml:"xmlns,attr"`
		Version string   `xml:"version,attr"`
		Width   string   `xml:"width,attr"`
		Height  string   `xml:"height,attr"`
		ViewBox string   `xml:"viewBox,attr"`
		Groups  []Group  `xml:"g"`
	}

	// Group holds the lines drawn by one pen.
	Group struct {
		ID    string `xml:"id,attr"`
		Lines []Line `xml:"line"`
	}

	// Line is one segment.
	Line struct {
		X1            string `xml:"x1,attr"`
		Y1            string `xml:"y1,attr"`
		X2            string `xml:"x2,attr"`
		Y2            string `xml:"y2,attr"`
		Stroke        string `xml:"stroke,attr"`
		StrokeWidth   string `xml:"stroke-width,attr"`
		StrokeOpacity string `xml:"stroke-opacity,attr,omitempty"`
	}
)

func fmtF(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// GroupID returns the id of the group gathering the segments of `pen`.
func GroupID(pen hpgl.Pen) string {
	if pen == hpgl.PenUnset {
		return "pen_unset"
	}
	return fmt.Sprintf("pen_%d", pen)
}

func strokeColor(c color.NRGBA) (stroke, opacity string) {
	stroke = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	if c.A != 0xff {
		opacity = fmtF(float64(c.A) / 255)
	}
	return stroke, opacity
}

// NewDocument builds the SVG tree of the drawing.
func NewDocument(d hpgldraw.Drawing, st hpgldraw.Style) Document {
	doc := Document{
		XMLNS:   namespace,
		Version: "1.1",
		Width:   fmtF(d.Width) + "px",
		Height:  fmtF(d.Height) + "px",
		ViewBox: fmt.Sprintf("0 0 %s %s", fmtF(d.Width), fmtF(d.Height)),
	}
	stroke, opacity := strokeColor(st.Color)
	width := fmtF(st.Width)
	for _, pg := range d.GroupByPen() {
		g := Group{ID: GroupID(pg.Pen), Lines: make([]Line, len(pg.Segments))}
		for i, seg := range pg.Segments {
			g.Lines[i] = Line{
				X1: fmtF(seg.From.X), Y1: fmtF(seg.From.Y),
				X2: fmtF(seg.To.X), Y2: fmtF(seg.To.Y),
				Stroke: stroke, StrokeWidth: width, StrokeOpacity: opacity,
			}
		}
		doc.Groups = append(doc.Groups, g)
	}
	return doc
}

// Render implements hpgldraw.Driver.
func (Renderer) Render(w io.Writer, d hpgldraw.Drawing, st hpgldraw.Style) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(NewDocument(d, st)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
