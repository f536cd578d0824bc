package widgets

import (
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/ui"
)

// Text is a leaf widget drawing a run of text. Wrapping is controlled by the
// width constraint from the parent; an unbounded width means a single line
// per paragraph.
type Text struct {
	Text  string
	Font  graphics.FontID
	Size  float64
	Color graphics.Color
}

// NewText creates a Text widget.
func NewText(s string, font graphics.FontID, size float64, color graphics.Color) *Text {
	return &Text{Text: s, Font: font, Size: size, Color: color}
}

func (t *Text) Measure(constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	size := ctx.MeasureText(t.Text, t.Font, t.Size, constraints.MaxWidth)
	return constraints.Constrain(size)
}

func (t *Text) Paint(p *ui.Painter, rect graphics.Rect) {
	maxWidth := rect.Width()
	if maxWidth <= 0 {
		maxWidth = layout.Unbounded
	}
	p.DrawText(t.Text, t.Font, t.Size, t.Color, rect.Origin(), maxWidth)
}
