package widgets

import (
	"math"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/theme"
	"github.com/go-keel/keel/pkg/ui"
)

const progressDefaultWidth = 200.0

// ProgressBar is a non-interactive horizontal bar filled to Value, which is
// clamped to [0, 1].
type ProgressBar struct {
	Value        float64
	Height       float64
	CornerRadius float64
	Theme        *theme.Theme
}

// NewProgressBar creates a ProgressBar with the default bar metrics.
func NewProgressBar() *ProgressBar {
	return &ProgressBar{Height: 6, CornerRadius: 3}
}

func (b *ProgressBar) Measure(constraints layout.Constraints, _ *ui.Context) graphics.Size {
	w := progressDefaultWidth
	if constraints.HasBoundedWidth() {
		w = constraints.MaxWidth
	}
	return constraints.Constrain(graphics.Size{Width: w, Height: b.Height})
}

func (b *ProgressBar) Paint(p *ui.Painter, rect graphics.Rect) {
	th := b.Theme
	if th == nil {
		th = theme.Default()
	}

	p.FillRoundedRect(rect, b.CornerRadius, graphics.Solid(th.Progress.TrackColor), graphics.Border{})

	v := math.Min(1, math.Max(0, b.Value))
	if fillW := rect.Width() * v; fillW > 0 {
		fill := graphics.RectFromLTWH(rect.Left, rect.Top, fillW, rect.Height())
		p.FillRoundedRect(fill, b.CornerRadius, graphics.Solid(th.Progress.FillColor), graphics.Border{})
	}
}
