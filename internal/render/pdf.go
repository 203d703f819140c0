package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"unlight/internal/game"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	coreFont = "Helvetica"
	// Core Symbol font and its code for ∞, which cp1252 lacks.
	symbolFont     = "Symbol"
	symbolInfinity = "\xa5"
	ttfFont        = "board"
	// Distance from the top of a text box to its baseline, in ems.
	ascent = 0.8
)

// PDFSurface draws onto the current page of a gofpdf document. Units are
// whatever the document was created with; RenderPDF uses points.
type PDFSurface struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
}

// NewPDFSurface wraps pdf. An empty family selects core Helvetica, whose
// cp1252 encoding cannot show CJK names; pass a family registered with
// AddUTF8Font for those.
func NewPDFSurface(pdf *gofpdf.Fpdf, family string) *PDFSurface {
	s := &PDFSurface{pdf: pdf, family: family, tr: func(s string) string { return s }}
	if family == "" {
		s.family = coreFont
		s.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	return s
}

func (s *PDFSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.Rect(x, y, w, h, "F")
}

func (s *PDFSurface) StrokeRect(x, y, w, h, lineWidth float64, c color.RGBA) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetLineWidth(lineWidth)
	s.pdf.Rect(x, y, w, h, "D")
}

func (s *PDFSurface) GradientRect(x, y, w, h float64, top, bottom color.RGBA) {
	// Gradient vector runs in the unit square with (0,0) at lower left.
	s.pdf.LinearGradient(x, y, w, h,
		int(top.R), int(top.G), int(top.B),
		int(bottom.R), int(bottom.G), int(bottom.B),
		0, 1, 0, 0)
}

func (s *PDFSurface) Line(x1, y1, x2, y2, lineWidth float64, c color.RGBA) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetLineWidth(lineWidth)
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *PDFSurface) FillCircle(cx, cy, r float64, c color.RGBA) {
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.Circle(cx, cy, r, "F")
}

func (s *PDFSurface) StrokeCircle(cx, cy, r, lineWidth float64, c color.RGBA) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetLineWidth(lineWidth)
	s.pdf.Circle(cx, cy, r, "D")
}

func (s *PDFSurface) FillPolygon(pts []Point, c color.RGBA) {
	pp := make([]gofpdf.PointType, 0, len(pts))
	for _, p := range pts {
		pp = append(pp, gofpdf.PointType{X: p.X, Y: p.Y})
	}
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.Polygon(pp, "F")
}

func (s *PDFSurface) Text(x, y, size float64, txt string, c color.RGBA) {
	s.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	for _, r := range s.runs(txt) {
		s.pdf.SetFont(r.family, "", size)
		s.pdf.Text(x, y+ascent*size, r.text)
		x += s.pdf.GetStringWidth(r.text)
	}
}

func (s *PDFSurface) TextWidth(txt string, size float64) float64 {
	w := 0.0
	for _, r := range s.runs(txt) {
		s.pdf.SetFont(r.family, "", size)
		w += s.pdf.GetStringWidth(r.text)
	}
	return w
}

type textRun struct {
	family string
	text   string
}

// runs splits txt into encoded pieces by font. Only the core font needs
// more than one: each ∞ is drawn from Symbol.
func (s *PDFSurface) runs(txt string) []textRun {
	if s.family != coreFont || !strings.Contains(txt, infinity) {
		return []textRun{{s.family, s.tr(txt)}}
	}
	var out []textRun
	for i, part := range strings.Split(txt, infinity) {
		if i > 0 {
			out = append(out, textRun{symbolFont, symbolInfinity})
		}
		if part != "" {
			out = append(out, textRun{s.family, s.tr(part)})
		}
	}
	return out
}

func (s *PDFSurface) Rotate(deg, cx, cy float64, draw func()) {
	s.pdf.TransformBegin()
	s.pdf.TransformRotate(deg, cx, cy)
	draw()
	s.pdf.TransformEnd()
}

// PDFOptions controls RenderPDF.
type PDFOptions struct {
	// FontPath is a UTF-8 TrueType font used for all text. Without it
	// non-Latin names cannot be shown; ∞ still comes from core Symbol.
	FontPath string
	// Placeholder colors the unmodeled regions. Nil means a random
	// palette seeded with Seed.
	Placeholder Placeholder
	Seed        uint64
	Title       string
	// Uncompressed leaves page content streams readable.
	Uncompressed bool
}

// RenderPDF paints b onto a single BoardW×BoardH point page and returns the
// PDF bytes.
func RenderPDF(b *game.Board, opts PDFOptions) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("render: nil board")
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: BoardW, Ht: BoardH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	if opts.Uncompressed {
		pdf.SetCompression(false)
	}
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}

	family := ""
	if opts.FontPath != "" {
		pdf.AddUTF8Font(ttfFont, "", opts.FontPath)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("load font %s: %w", opts.FontPath, err)
		}
		family = ttfFont
	}
	pdf.AddPage()

	p := opts.Placeholder
	if p == nil {
		p = NewRandomPalette(opts.Seed)
	}
	NewRenderer(p).Paint(NewPDFSurface(pdf, family), b)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
