// Implements a PDF backend to render plotter drawings,
// by wrapping github.com/benoitkugler/pdf.
package hpglpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/hpgl/hpgldraw"
	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
)

var _ hpgldraw.Driver = Renderer{} // assert interface conformance

// Renderer writes drawings as single page PDF documents,
// whose page size is the drawing size, in points.
type Renderer struct{}

func (Renderer) Extension() string { return ".pdf" }

// Render implements hpgldraw.Driver.
func (Renderer) Render(w io.Writer, d hpgldraw.Drawing, st hpgldraw.Style) error {
	doc := NewDocument(d, st)
	return doc.Write(w, nil)
}

// NewDocument returns a one page document with the drawing stroked on it.
func NewDocument(d hpgldraw.Drawing, st hpgldraw.Style) model.Document {
	var doc model.Document
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, newPage(d, st))
	return doc
}

func newPage(d hpgldraw.Drawing, st hpgldraw.Style) *model.PageObject {
	page := contentstream.NewAppearance(d.Width, d.Height)
	page.Ops(contentstream.OpSave{}, flip(d.Height))
	if len(d.Segments) != 0 {
		setStrokeColor(&page, st.Color)
		page.Ops(strokeOps(d.Segments, st.Width)...)
	}
	page.Ops(contentstream.OpRestore{})
	var out model.PageObject
	page.ApplyToPageObject(&out, true)
	return &out
}

// flip moves the origin to the top-left corner, where drawings have it.
func flip(height float64) contentstream.OpConcat {
	return contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, height}}
}

func setStrokeColor(page *contentstream.Appearance, c color.NRGBA) {
	page.SetColorStroke(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	if c.A != 0xff {
		gs := &model.GraphicState{CA: model.ObjFloat(float64(c.A) / 255), BM: []model.Name{"Normal"}}
		name := page.AddExtGState(gs)
		page.Ops(contentstream.OpSetExtGState{Dict: name})
	}
}

// strokeOps returns one sub path per segment, in drawing order,
// stroked all at once.
func strokeOps(segments []hpgldraw.Segment, width float64) []contentstream.Operation {
	ops := make([]contentstream.Operation, 0, 2*len(segments)+3)
	ops = append(ops,
		contentstream.OpSetLineWidth{W: width},
		contentstream.OpSetLineCap{Style: 0}, // butt
	)
	for _, seg := range segments {
		ops = append(ops,
			contentstream.OpMoveTo{X: seg.From.X, Y: seg.From.Y},
			contentstream.OpLineTo{X: seg.To.X, Y: seg.To.Y},
		)
	}
	return append(ops, contentstream.OpStroke{})
}
