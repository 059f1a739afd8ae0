// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"regexp"
	"strings"
)

// BlockKind classifies one line of a markdown summary.
type BlockKind int

const (
	BlockBlank BlockKind = iota
	BlockHeading
	BlockBullet
	BlockParagraph
)

// Heading font sizes by level. Level 3 is placed as a subtitle.
var headingSizes = map[int]float64{1: 18, 2: 16, 3: 14}

const (
	bulletSpacer    = 2
	paragraphSpacer = 3
)

// Block is one parsed markdown line.
type Block struct {
	Kind  BlockKind
	Level int    // heading level, 1 to 3
	Text  string // bullet text keeps its "**" markers; others are stripped
}

var (
	boldMarker   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicMarker = regexp.MustCompile(`\*(.*?)\*`)
	codeMarker   = regexp.MustCompile("`(.*?)`")
)

// stripInline removes bold, italic and code delimiters, keeping their
// content.
func stripInline(s string) string {
	s = boldMarker.ReplaceAllString(s, "$1")
	s = italicMarker.ReplaceAllString(s, "$1")
	return codeMarker.ReplaceAllString(s, "$1")
}

// ParseMarkdown classifies each line of text. Lines are trimmed first;
// the first matching rule wins: blank, "# ", "## ", "### ", "- " or "* ",
// then paragraph. Anything unrecognized is a paragraph, so malformed
// markup degrades to literal text.
func ParseMarkdown(text string) []Block {
	var blocks []Block
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			blocks = append(blocks, Block{Kind: BlockBlank})
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 1, Text: stripInline(line[2:])})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 2, Text: stripInline(line[3:])})
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 3, Text: stripInline(line[4:])})
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			blocks = append(blocks, Block{Kind: BlockBullet, Text: line[2:]})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: stripInline(line)})
		}
	}
	return blocks
}

// AddMarkdown lays out a markdown summary block by block.
func (e *Exporter) AddMarkdown(text string) {
	for _, b := range ParseMarkdown(text) {
		switch b.Kind {
		case BlockBlank:
			e.AddSpacer(paragraphSpacer)
		case BlockHeading:
			if b.Level == 3 {
				e.AddSubtitle(b.Text, headingSizes[3])
			} else {
				e.AddTitle(b.Text, headingSizes[b.Level])
			}
		case BlockBullet:
			e.addBullet(b.Text)
			e.AddSpacer(bulletSpacer)
		case BlockParagraph:
			e.AddText(b.Text, 0, false)
			e.AddSpacer(paragraphSpacer)
		}
	}
}

// addBullet places a bullet whose body may mix normal and bold spans.
func (e *Exporter) addBullet(text string) {
	e.checkPageBreak(defaultBlockHeight)
	e.s.SetFont(false, bodyFontSize)
	e.s.Text(e.g.Margin, e.y, bullet)

	measure := func(bold bool, s string) float64 {
		e.s.SetFont(bold, bodyFontSize)
		return e.s.StringWidth(s)
	}
	x := e.g.Margin + bulletIndent
	for _, line := range layoutSpans(parseSpans(text), e.g.TextWidth-bulletIndent, measure) {
		e.checkPageBreak(defaultBlockHeight)
		for _, p := range line {
			e.s.SetFont(p.bold, bodyFontSize)
			e.s.Text(x+p.x, e.y, p.text)
		}
		e.y += e.g.LineHeight
	}
	e.s.SetFont(false, bodyFontSize)
}
