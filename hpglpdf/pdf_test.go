package hpglpdf

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/hpgl/hpgl"
	"github.com/benoitkugler/hpgl/hpgldraw"
	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
)

func renderPDF(t *testing.T, input string, st hpgldraw.Style) []byte {
	t.Helper()
	prog := hpgl.Interpret(hpgl.Lex(input))
	d, err := hpgldraw.Layout(prog.Events, 1016, 300)
	if err != nil {
		t.Fatalf("can't layout drawing: %s", err)
	}
	var buf bytes.Buffer
	if err := (Renderer{}).Render(&buf, d, st); err != nil {
		t.Fatalf("can't render pdf: %s", err)
	}
	return buf.Bytes()
}

func TestRenderPDF(t *testing.T) {
	out := renderPDF(t, "PU0,0;PD1016,0,1016,1016,0,1016;PU;", hpgldraw.DefaultStyle)
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("missing pdf header: %q", out[:min(len(out), 16)])
	}
	if !bytes.Contains(bytes.TrimSpace(out[len(out)-16:]), []byte("%%EOF")) {
		t.Errorf("missing pdf trailer")
	}

	// keep an artifact around for visual inspection
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "square.pdf"), out, 0o644); err != nil {
		t.Error(err)
	}
}

func TestRenderPDFTranslucent(t *testing.T) {
	st := hpgldraw.Style{Color: color.NRGBA{R: 0x80, G: 0x10, B: 0x10, A: 0x80}, Width: 1}
	out := renderPDF(t, "SP1;PU0,0;PD100,100;SP2;PD200,0;", st)
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatal("missing pdf header")
	}
	if !bytes.Contains(out, []byte("ExtGState")) {
		t.Errorf("expected a graphic state for the stroke opacity")
	}
}

func TestExtension(t *testing.T) {
	if ext := (Renderer{}).Extension(); ext != ".pdf" {
		t.Errorf("unexpected extension %s", ext)
	}
}

func TestStrokeOps(t *testing.T) {
	prog := hpgl.Interpret(hpgl.Lex("PU0,0;PD100,0,100,100;SP2;PU0,0;PD0,100;"))
	d, err := hpgldraw.Layout(prog.Events, 1, 1)
	if err != nil {
		t.Fatalf("can't layout drawing: %s", err)
	}

	exp := []contentstream.Operation{
		contentstream.OpSetLineWidth{W: 2.5},
		contentstream.OpSetLineCap{Style: 0},
		contentstream.OpMoveTo{X: 0, Y: 100}, contentstream.OpLineTo{X: 100, Y: 100},
		contentstream.OpMoveTo{X: 100, Y: 100}, contentstream.OpLineTo{X: 100, Y: 0},
		contentstream.OpMoveTo{X: 0, Y: 100}, contentstream.OpLineTo{X: 0, Y: 0},
		contentstream.OpStroke{},
	}
	got := strokeOps(d.Segments, 2.5)
	if len(got) != len(exp) {
		t.Fatalf("expected %d operations, got %d: %v", len(exp), len(got), got)
	}
	for i := range exp {
		if got[i] != exp[i] {
			t.Errorf("operation %d: expected %#v, got %#v", i, exp[i], got[i])
		}
	}

	if f := flip(d.Height); f.Matrix != (model.Matrix{1, 0, 0, -1, 0, 100}) {
		t.Errorf("unexpected flip matrix %v", f.Matrix)
	}
}

func TestPageSize(t *testing.T) {
	d := hpgldraw.Drawing{
		Width: 120, Height: 40,
		Segments: []hpgldraw.Segment{{To: hpgldraw.Point2{X: 120, Y: 40}}},
	}
	page := newPage(d, hpgldraw.DefaultStyle)
	if page.MediaBox == nil {
		t.Fatal("missing media box")
	}
	if exp := (model.Rectangle{Llx: 0, Lly: 0, Urx: 120, Ury: 40}); *page.MediaBox != exp {
		t.Errorf("expected media box %v, got %v", exp, *page.MediaBox)
	}
}
