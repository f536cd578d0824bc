package widgets

import (
	"math"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/theme"
	"github.com/go-keel/keel/pkg/ui"
)

// RadioOption is one entry in a [RadioGroup].
type RadioOption struct {
	// Label is the displayed text.
	Label string
	// Value identifies the option logically.
	Value string
}

// RadioGroup is a vertical list of mutually exclusive options.
type RadioGroup struct {
	Options  []RadioOption
	Selected string

	Font     graphics.FontID
	FontSize float64

	DotRadius float64
	// Gap separates the dot from its label; ItemGap separates rows.
	Gap     float64
	ItemGap float64
	Theme   *theme.Theme

	OnChange func(string)
}

// NewRadioGroup creates an empty RadioGroup with the default metrics.
func NewRadioGroup() *RadioGroup {
	return &RadioGroup{FontSize: 13, DotRadius: 8, Gap: 8, ItemGap: 10}
}

// Option appends an option and returns the group for chaining.
func (g *RadioGroup) Option(label, value string) *RadioGroup {
	g.Options = append(g.Options, RadioOption{Label: label, Value: value})
	return g
}

func (g *RadioGroup) rowHeight() float64 {
	return math.Max(g.DotRadius*2, g.FontSize*1.2)
}

func (g *RadioGroup) totalHeight() float64 {
	n := float64(len(g.Options))
	if n == 0 {
		return 0
	}
	return n*g.rowHeight() + (n-1)*g.ItemGap
}

func (g *RadioGroup) Measure(constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	maxLabel := 0.0
	for _, opt := range g.Options {
		w := ctx.MeasureText(opt.Label, g.Font, g.FontSize, layout.Unbounded).Width
		maxLabel = math.Max(maxLabel, w)
	}
	w := g.DotRadius*2 + g.Gap + maxLabel
	return constraints.Constrain(graphics.Size{Width: w, Height: g.totalHeight()})
}

func (g *RadioGroup) Paint(p *ui.Painter, rect graphics.Rect) {
	th := g.Theme
	if th == nil {
		th = theme.Default()
	}
	rowH := g.rowHeight()

	y := rect.Top
	for _, opt := range g.Options {
		selected := opt.Value == g.Selected
		cy := y + rowH/2
		cx := rect.Left + g.DotRadius

		ringColor := th.Radio.BorderColor
		if selected {
			ringColor = th.Radio.SelectedColor
		}
		p.FillCircle(graphics.Offset{X: cx, Y: cy}, g.DotRadius,
			graphics.Solid(th.Radio.CircleColor), graphics.NewBorder(1.5, ringColor))

		if selected {
			p.FillCircle(graphics.Offset{X: cx, Y: cy}, g.DotRadius*0.45,
				graphics.Solid(th.Radio.SelectedColor), graphics.Border{})
		}

		if opt.Label != "" && g.Font != 0 {
			p.DrawText(opt.Label, g.Font, g.FontSize, th.Radio.LabelColor,
				graphics.Offset{X: rect.Left + g.DotRadius*2 + g.Gap, Y: cy - g.FontSize/2},
				layout.Unbounded)
		}

		y += rowH + g.ItemGap
	}
}

func (g *RadioGroup) OnEvent(event ui.Event, rect graphics.Rect, _ *ui.Context) ui.EventResult {
	e, ok := event.(ui.ClickEvent)
	if !ok || !rect.Contains(e.Pos) {
		return ui.Ignored
	}

	rowH := g.rowHeight()
	y := rect.Top
	for _, opt := range g.Options {
		row := graphics.RectFromLTWH(rect.Left, y, rect.Width(), rowH)
		if row.Contains(e.Pos) {
			g.Selected = opt.Value
			if g.OnChange != nil {
				g.OnChange(opt.Value)
			}
			return ui.Consumed
		}
		y += rowH + g.ItemGap
	}
	return ui.Ignored
}
