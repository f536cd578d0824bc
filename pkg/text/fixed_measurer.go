package text

import (
	"math"
	"unicode/utf8"

	"github.com/go-keel/keel/pkg/graphics"
)

// FixedMeasurer is a Measurer with uniform per-rune advances. It exists for
// tests and headless use, where deterministic metrics matter more than real
// font shaping.
type FixedMeasurer struct {
	// CharWidth is the advance of every rune.
	CharWidth float64
	// Height is the line height.
	Height float64
}

// MeasureText measures text at CharWidth per rune, wrapping every
// floor(maxWidth/CharWidth) runes when maxWidth is finite and positive.
func (m FixedMeasurer) MeasureText(text string, id graphics.FontID, size, maxWidth float64) graphics.Size {
	if text == "" {
		return graphics.Size{Height: m.Height}
	}
	runes := utf8.RuneCountInString(text)
	width := float64(runes) * m.CharWidth
	if maxWidth <= 0 || math.IsInf(maxWidth, 0) || width <= maxWidth || m.CharWidth <= 0 {
		return graphics.Size{Width: width, Height: m.Height}
	}
	perLine := int(maxWidth / m.CharWidth)
	if perLine < 1 {
		perLine = 1
	}
	lines := (runes + perLine - 1) / perLine
	lineWidth := float64(perLine) * m.CharWidth
	if lines == 1 {
		lineWidth = width
	}
	return graphics.Size{Width: lineWidth, Height: float64(lines) * m.Height}
}

// LineHeight returns the fixed line height.
func (m FixedMeasurer) LineHeight(id graphics.FontID, size float64) float64 {
	return m.Height
}

// AdvanceWidth returns CharWidth per rune.
func (m FixedMeasurer) AdvanceWidth(text string, id graphics.FontID, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * m.CharWidth
}
