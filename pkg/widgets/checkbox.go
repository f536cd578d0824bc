package widgets

import (
	"math"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/theme"
	"github.com/go-keel/keel/pkg/ui"
)

// Checkbox is a toggleable box with an optional text label.
//
// Clicking anywhere in the widget, label included, flips the checked state
// and fires OnChange with the new value.
type Checkbox struct {
	Checked  bool
	Label    string
	Font     graphics.FontID
	FontSize float64

	BoxSize      float64
	Gap          float64
	CornerRadius float64
	Theme        *theme.Theme
	OnChange     func(bool)
}

// NewCheckbox creates a Checkbox with the default box metrics.
func NewCheckbox() *Checkbox {
	return &Checkbox{FontSize: 13, BoxSize: 16, Gap: 8, CornerRadius: 3}
}

func (c *Checkbox) Measure(constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	var textSize graphics.Size
	if c.Label != "" {
		textSize = ctx.MeasureText(c.Label, c.Font, c.FontSize, layout.Unbounded)
	}

	w := c.BoxSize
	if textSize.Width > 0 {
		w += c.Gap + textSize.Width
	}
	h := math.Max(c.BoxSize, textSize.Height)
	return constraints.Constrain(graphics.Size{Width: w, Height: h})
}

func (c *Checkbox) Paint(p *ui.Painter, rect graphics.Rect) {
	th := c.Theme
	if th == nil {
		th = theme.Default()
	}
	hovered := p.Hovered(rect)

	boxTop := rect.Top + (rect.Height()-c.BoxSize)/2
	box := graphics.RectFromLTWH(rect.Left, boxTop, c.BoxSize, c.BoxSize)

	bg := th.Checkbox.BoxColor
	if c.Checked {
		bg = th.Checkbox.CheckedColor
		if hovered {
			bg = bg.Lighten(0x1A)
		}
	}
	borderColor := th.Checkbox.BorderColor
	if hovered && !c.Checked {
		borderColor = th.Checkbox.HoverBorder
	}
	p.FillRoundedRect(box, c.CornerRadius, graphics.Solid(bg), graphics.NewBorder(1.5, borderColor))

	if c.Checked {
		if c.Font != 0 {
			markSize := c.BoxSize * 0.72
			p.DrawText("✓", c.Font, markSize, th.Checkbox.MarkColor, graphics.Offset{
				X: box.Left + c.BoxSize*0.08,
				Y: box.Top + (c.BoxSize-markSize)/2,
			}, layout.Unbounded)
		} else {
			// No font loaded: a small filled square stands in for the mark.
			m := c.BoxSize * 0.22
			p.FillRoundedRect(
				graphics.RectFromLTWH(box.Left+m, box.Top+m, c.BoxSize-2*m, c.BoxSize-2*m),
				c.CornerRadius*0.4,
				graphics.Solid(th.Checkbox.MarkColor.WithAlpha(0xE6)),
				graphics.Border{},
			)
		}
	}

	if c.Label != "" && c.Font != 0 {
		textX := rect.Left + c.BoxSize + c.Gap
		textY := rect.Top + (rect.Height()-c.FontSize)/2
		p.DrawText(c.Label, c.Font, c.FontSize, th.Checkbox.LabelColor,
			graphics.Offset{X: textX, Y: textY},
			rect.Width()-c.BoxSize-c.Gap)
	}
}

func (c *Checkbox) OnEvent(event ui.Event, rect graphics.Rect, _ *ui.Context) ui.EventResult {
	if e, ok := event.(ui.ClickEvent); ok && rect.Contains(e.Pos) {
		c.Checked = !c.Checked
		if c.OnChange != nil {
			c.OnChange(c.Checked)
		}
		return ui.Consumed
	}
	return ui.Ignored
}
