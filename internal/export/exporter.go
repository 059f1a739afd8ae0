// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders case records into paginated PDF summaries.
//
// An Exporter keeps a vertical cursor on the current page. Every placement
// primitive first asks checkPageBreak for the room it needs; when the
// cursor plus that height would cross the bottom margin a new page is
// started and the cursor returns to the top margin. There is no look-ahead
// beyond the next block.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	bodyFontSize = 10

	defaultBlockHeight  = 10
	titleBlockHeight    = 15
	subtitleBlockHeight = 12

	continuationIndent = 5
	bulletIndent       = 5
	bullet             = "•"
)

// Geometry is the fixed page layout, in mm.
type Geometry struct {
	PageHeight float64
	Margin     float64
	Top        float64
	LineHeight float64

	// TextWidth is the usable line width at zero indent.
	TextWidth float64
}

// A4 is portrait A4 with 20 mm margins and a 6 mm line pitch.
var A4 = Geometry{
	PageHeight: 297,
	Margin:     20,
	Top:        20,
	LineHeight: 6,
	TextWidth:  170,
}

// Bottom is the lowest y a line may be placed at.
func (g Geometry) Bottom() float64 {
	return g.PageHeight - g.Margin
}

// Exporter lays out one document. It is not safe for concurrent use.
type Exporter struct {
	s    Surface
	g    Geometry
	y    float64
	page int
}

// New returns an Exporter drawing a fresh A4 PDF. title is stored in the
// document metadata.
func New(title string) *Exporter {
	return NewWithSurface(newPDFSurface(title), A4)
}

// NewWithSurface returns an Exporter drawing on s, which must already
// have its first page.
func NewWithSurface(s Surface, g Geometry) *Exporter {
	return &Exporter{s: s, g: g, y: g.Top, page: 1}
}

// Y returns the cursor position on the current page.
func (e *Exporter) Y() float64 { return e.y }

// Page returns the 1-based number of the current page.
func (e *Exporter) Page() int { return e.page }

func (e *Exporter) newPage() {
	e.s.AddPage()
	e.page++
	e.y = e.g.Top
}

func (e *Exporter) checkPageBreak(required float64) {
	if e.y+required > e.g.Bottom() {
		e.newPage()
	}
}

// AddTitle places a bold heading and leaves two line pitches below it.
func (e *Exporter) AddTitle(title string, size float64) {
	e.heading(title, size, titleBlockHeight, 2)
}

// AddSubtitle places a bold heading and leaves one and a half line
// pitches below it.
func (e *Exporter) AddSubtitle(subtitle string, size float64) {
	e.heading(subtitle, size, subtitleBlockHeight, 1.5)
}

func (e *Exporter) heading(text string, size, required, gap float64) {
	e.checkPageBreak(required)
	e.s.SetFont(true, size)
	lines := wrap(text, e.g.TextWidth, e.s.StringWidth)
	if len(lines) == 0 {
		lines = []string{""}
	}
	for i, line := range lines {
		if i > 0 {
			e.y += e.g.LineHeight
			e.checkPageBreak(defaultBlockHeight)
		}
		e.s.Text(e.g.Margin, e.y, line)
	}
	e.y += e.g.LineHeight * gap
}

// AddText wraps text to the width left after indent and places one line
// per line pitch.
func (e *Exporter) AddText(text string, indent float64, bold bool) {
	e.checkPageBreak(defaultBlockHeight)
	e.s.SetFont(bold, bodyFontSize)
	for _, line := range wrap(text, e.g.TextWidth-indent, e.s.StringWidth) {
		e.checkPageBreak(defaultBlockHeight)
		e.s.Text(e.g.Margin+indent, e.y, line)
		e.y += e.g.LineHeight
	}
}

// AddKeyValue places "key:" in bold followed by value. A value that fits
// after the key stays on the same line; a longer one wraps onto indented
// lines below the key. Empty or whitespace-only values are skipped.
func (e *Exporter) AddKeyValue(key, value string, indent float64) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}

	e.checkPageBreak(defaultBlockHeight)
	label := key + ":"
	e.s.SetFont(true, bodyFontSize)
	e.s.Text(e.g.Margin+indent, e.y, label)
	keyWidth := e.s.StringWidth(label + " ")

	e.s.SetFont(false, bodyFontSize)
	if lines := wrap(value, e.g.TextWidth-indent-keyWidth, e.s.StringWidth); len(lines) == 1 {
		e.s.Text(e.g.Margin+indent+keyWidth, e.y, lines[0])
		e.y += e.g.LineHeight
		return
	}

	e.y += e.g.LineHeight
	for _, line := range wrap(value, e.g.TextWidth-indent-continuationIndent, e.s.StringWidth) {
		e.checkPageBreak(defaultBlockHeight)
		e.s.Text(e.g.Margin+indent+continuationIndent, e.y, line)
		e.y += e.g.LineHeight
	}
}

// AddList places each non-empty item behind a bullet, wrapped to the
// width left after the bullet.
func (e *Exporter) AddList(items []string, indent float64) {
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		e.checkPageBreak(defaultBlockHeight)
		e.s.SetFont(false, bodyFontSize)
		e.s.Text(e.g.Margin+indent, e.y, bullet)

		for _, line := range wrap(item, e.g.TextWidth-bulletIndent-indent, e.s.StringWidth) {
			e.checkPageBreak(defaultBlockHeight)
			e.s.Text(e.g.Margin+indent+bulletIndent, e.y, line)
			e.y += e.g.LineHeight
		}
	}
}

// AddSpacer moves the cursor down by height.
func (e *Exporter) AddSpacer(height float64) {
	e.y += height
}

// Output writes the finished document to w.
func (e *Exporter) Output(w io.Writer) error {
	if err := e.s.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// Save writes the finished document to dir/name and returns the path.
func (e *Exporter) Save(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)

	// Write to a temp file, rename on success.
	tmp, err := os.CreateTemp(dir, ".export-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := e.Output(tmp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("renaming to %s: %w", path, err)
	}
	return path, nil
}
