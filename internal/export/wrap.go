// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"strings"
	"unicode"
)

// wrap splits text into lines no wider than width as reported by measure.
// Explicit newlines are kept. Words wider than a whole line are broken
// between runes. Blank text yields no lines.
func wrap(text string, width float64, measure func(string) float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := ""
		for _, word := range words {
			if line != "" {
				if candidate := line + " " + word; measure(candidate) <= width {
					line = candidate
					continue
				}
				lines = append(lines, line)
				line = ""
			}
			if measure(word) <= width {
				line = word
				continue
			}
			chunks := breakWord(word, width, measure)
			lines = append(lines, chunks[:len(chunks)-1]...)
			line = chunks[len(chunks)-1]
		}
		lines = append(lines, line)
	}
	return lines
}

// breakWord cuts word into pieces that each fit width. Every piece holds
// at least one rune.
func breakWord(word string, width float64, measure func(string) float64) []string {
	var (
		chunks []string
		cur    []rune
	)
	for _, r := range word {
		if len(cur) > 0 && measure(string(append(cur, r))) > width {
			chunks = append(chunks, string(cur))
			cur = cur[:0]
		}
		cur = append(cur, r)
	}
	return append(chunks, string(cur))
}

// span is a run of text in one weight.
type span struct {
	text string
	bold bool
}

// parseSpans splits s on paired "**" markers. An unpaired marker is kept
// as literal text.
func parseSpans(s string) []span {
	var spans []span
	add := func(text string, bold bool) {
		if text != "" {
			spans = append(spans, span{text: text, bold: bold})
		}
	}

	for {
		open := strings.Index(s, "**")
		if open < 0 {
			break
		}
		end := strings.Index(s[open+2:], "**")
		if end < 0 {
			break
		}
		add(s[:open], false)
		add(s[open+2:open+2+end], true)
		s = s[open+2+end+2:]
	}
	add(s, false)
	return spans
}

// token is one word of a styled run. glued tokens touch the previous
// token with no space between them.
type token struct {
	text  string
	bold  bool
	glued bool
}

func tokenize(spans []span) []token {
	var (
		tokens []token
		space  = true
	)
	for _, sp := range spans {
		word := []rune{}
		flush := func() {
			if len(word) == 0 {
				return
			}
			tokens = append(tokens, token{text: string(word), bold: sp.bold, glued: !space})
			word = word[:0]
			space = false
		}
		for _, r := range sp.text {
			if unicode.IsSpace(r) {
				flush()
				space = true
				continue
			}
			word = append(word, r)
		}
		flush()
	}
	if len(tokens) > 0 {
		tokens[0].glued = false
	}
	return tokens
}

// piece is a styled fragment placed at x, relative to the line start.
type piece struct {
	text string
	bold bool
	x    float64
}

// layoutSpans wraps styled spans to width. Words glued across a style
// change stay on the same line. measure reports the width of a string in
// the given weight.
func layoutSpans(spans []span, width float64, measure func(bold bool, s string) float64) [][]piece {
	tokens := tokenize(spans)
	if len(tokens) == 0 {
		return nil
	}

	// Group glued tokens into clusters that wrap as a unit.
	var clusters [][]token
	for _, t := range tokens {
		if t.glued && len(clusters) > 0 {
			clusters[len(clusters)-1] = append(clusters[len(clusters)-1], t)
			continue
		}
		clusters = append(clusters, []token{t})
	}

	// An over-long single word is broken into rune chunks, one per cluster.
	var fitted [][]token
	for _, c := range clusters {
		if len(c) == 1 && measure(c[0].bold, c[0].text) > width {
			bold := c[0].bold
			for _, chunk := range breakWord(c[0].text, width, func(s string) float64 { return measure(bold, s) }) {
				fitted = append(fitted, []token{{text: chunk, bold: bold}})
			}
			continue
		}
		fitted = append(fitted, c)
	}

	spaceWidth := measure(false, " ")
	var (
		lines [][]piece
		line  []piece
		x     float64
	)
	for _, c := range fitted {
		var cw float64
		for _, t := range c {
			cw += measure(t.bold, t.text)
		}
		gap := spaceWidth
		if n := len(line); n > 0 && line[n-1].bold == c[0].bold {
			gap = measure(c[0].bold, " ")
		}
		if len(line) > 0 && x+gap+cw > width {
			lines = append(lines, line)
			line, x = nil, 0
		}
		for i, t := range c {
			sep := i == 0 && len(line) > 0
			if n := len(line); n > 0 && line[n-1].bold == t.bold {
				if sep {
					line[n-1].text += " "
					x += gap
				}
				line[n-1].text += t.text
			} else {
				if sep {
					x += gap
				}
				line = append(line, piece{text: t.text, bold: t.bold, x: x})
			}
			x += measure(t.bold, t.text)
		}
	}
	return append(lines, line)
}
