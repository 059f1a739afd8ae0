// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"io"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// Surface is the drawing target of an Exporter. Coordinates are in the
// document unit (mm) with y growing down the page.
type Surface interface {
	// SetFont selects the weight and size (pt) for following calls.
	SetFont(bold bool, size float64)

	// Text draws s with its baseline at y.
	Text(x, y float64, s string)

	// StringWidth measures s in the current font.
	StringWidth(s string) float64

	// AddPage starts a new page.
	AddPage()

	// Output serializes the document.
	Output(w io.Writer) error
}

// pdfSurface draws onto an A4 portrait fpdf document using the core
// Helvetica font.
type pdfSurface struct {
	doc       *fpdf.Fpdf
	translate func(string) string
}

func newPDFSurface(title string) *pdfSurface {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("parole-review", true)
	if title != "" {
		doc.SetTitle(title, true)
	}
	doc.SetFont(fontFamily, "", bodyFontSize)
	doc.AddPage()
	return &pdfSurface{
		doc: doc,
		// Core fonts are cp1252; the bullet and typographic quotes map there.
		translate: doc.UnicodeTranslatorFromDescriptor(""),
	}
}

func (p *pdfSurface) SetFont(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	p.doc.SetFont(fontFamily, style, size)
}

func (p *pdfSurface) Text(x, y float64, s string) {
	p.doc.Text(x, y, p.translate(s))
}

func (p *pdfSurface) StringWidth(s string) float64 {
	return p.doc.GetStringWidth(p.translate(s))
}

func (p *pdfSurface) AddPage() {
	p.doc.AddPage()
}

func (p *pdfSurface) Output(w io.Writer) error {
	return p.doc.Output(w)
}
