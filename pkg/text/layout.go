package text

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-keel/keel/pkg/graphics"
)

// Line represents a single laid-out line of text.
type Line struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics.
type TextLayout struct {
	Text       string
	Size       graphics.Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []Line
}

// Layout measures and wraps text within the given width. maxWidth <= 0 or
// infinite means no wrapping. Unknown fonts produce a zero-size layout with
// a single empty line.
func (r *Registry) Layout(text string, id graphics.FontID, size, maxWidth float64) *TextLayout {
	face := r.face(id, size)
	if face == nil {
		return &TextLayout{
			Text:  text,
			Lines: []Line{{}},
		}
	}
	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	lineHeight := fixedToFloat(metrics.Height)
	if lineHeight == 0 {
		lineHeight = ascent + descent
	}
	measure := func(s string) float64 {
		return r.AdvanceWidth(s, id, size)
	}
	lines := layoutLines(text, maxWidth, measure)
	maxLineWidth := 0.0
	for _, line := range lines {
		maxLineWidth = math.Max(maxLineWidth, line.Width)
	}
	if len(lines) == 0 {
		lines = []Line{{}}
	}
	return &TextLayout{
		Text:       text,
		Size:       graphics.Size{Width: maxLineWidth, Height: lineHeight * float64(len(lines))},
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
		Lines:      lines,
	}
}

func layoutLines(text string, maxWidth float64, measure func(string) float64) []Line {
	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]Line, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, Line{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, Line{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, Line{Text: line, Width: measure(line)})
		}
	}
	return lines
}

func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			width := measure(text[start:next])
			if width > maxWidth {
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			// Not even one rune fits; emit it anyway to guarantee progress.
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) && lastBreak > start && lastBreak < lastFit {
			cut = lastBreak
		}
		lines = append(lines, strings.TrimRightFunc(text[start:cut], unicode.IsSpace))
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
