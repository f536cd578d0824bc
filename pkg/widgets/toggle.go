package widgets

import (
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/theme"
	"github.com/go-keel/keel/pkg/ui"
)

// Toggle is a pill-shaped on/off switch.
type Toggle struct {
	Checked  bool
	Width    float64
	Height   float64
	Theme    *theme.Theme
	OnChange func(bool)
}

// NewToggle creates a Toggle with the default pill size.
func NewToggle() *Toggle {
	return &Toggle{Width: 46, Height: 24}
}

func (t *Toggle) Measure(constraints layout.Constraints, _ *ui.Context) graphics.Size {
	return constraints.Constrain(graphics.Size{Width: t.Width, Height: t.Height})
}

func (t *Toggle) Paint(p *ui.Painter, rect graphics.Rect) {
	th := t.Theme
	if th == nil {
		th = theme.Default()
	}

	trackColor := th.Toggle.OffColor
	if t.Checked {
		trackColor = th.Toggle.OnColor
	}
	p.FillRoundedRect(rect, rect.Height()/2, graphics.Solid(trackColor), graphics.Border{})

	margin := rect.Height() * 0.13
	thumbR := rect.Height()/2 - margin
	thumbX := rect.Left + margin + thumbR
	if t.Checked {
		thumbX = rect.Right - margin - thumbR
	}
	p.FillCircle(graphics.Offset{X: thumbX, Y: rect.Top + rect.Height()/2}, thumbR,
		graphics.Solid(th.Toggle.ThumbColor), graphics.Border{})
}

func (t *Toggle) OnEvent(event ui.Event, rect graphics.Rect, _ *ui.Context) ui.EventResult {
	if e, ok := event.(ui.ClickEvent); ok && rect.Contains(e.Pos) {
		t.Checked = !t.Checked
		if t.OnChange != nil {
			t.OnChange(t.Checked)
		}
		return ui.Consumed
	}
	return ui.Ignored
}
