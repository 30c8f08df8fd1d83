// Implements a raster backend to render plotter drawings,
// by wrapping rasterx.
package hpglraster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/benoitkugler/hpgl/hpgldraw"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ hpgldraw.Driver = Renderer{} // assert interface conformance

// Renderer encodes drawings as transparent PNG images.
type Renderer struct{}

func (Renderer) Extension() string { return ".png" }

// Render implements hpgldraw.Driver.
func (Renderer) Render(w io.Writer, d hpgldraw.Drawing, st hpgldraw.Style) error {
	return png.Encode(w, Rasterize(d, st))
}

// canvasSize truncates the drawing size to whole pixels,
// keeping at least one pixel in each direction.
func canvasSize(d hpgldraw.Drawing) (w, h int) {
	w, h = int(d.Width), int(d.Height)
	if w < 1 || math.IsNaN(d.Width) {
		w = 1
	}
	if h < 1 || math.IsNaN(d.Height) {
		h = 1
	}
	return w, h
}

// Rasterize uses a ScannerGV instance to render the drawing
// into a transparent image and returns it.
func Rasterize(d hpgldraw.Drawing, st hpgldraw.Style) *image.RGBA {
	w, h := canvasSize(d)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(d.Segments) == 0 {
		return img
	}

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetStroke(fixed.Int26_6(st.Width*64), 0, rasterx.ButtCap, rasterx.ButtCap,
		rasterx.FlatGap, rasterx.Bevel, nil, 0)
	// rasterx expects premultiplied colors
	dasher.SetColor(color.RGBAModel.Convert(st.Color))

	// every segment is its own sub path, so that caps are applied
	// at both ends like independent lines
	for _, seg := range d.Segments {
		dasher.Start(rasterx.ToFixedP(seg.From.X, seg.From.Y))
		dasher.Line(rasterx.ToFixedP(seg.To.X, seg.To.Y))
		dasher.Stop(false)
	}
	dasher.Draw()
	return img
}
