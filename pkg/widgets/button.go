package widgets

import (
	"math"

	"github.com/go-keel/keel/pkg/focus"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/theme"
	"github.com/go-keel/keel/pkg/ui"
)

// Button is a clickable wrapper around any child content.
//
// Hover and press visuals are read from the Painter during Paint, so the
// button needs no retained interaction state and the tree can be rebuilt
// every frame. A Button participates in Tab cycling and can be activated
// with Enter or Space while focused.
type Button struct {
	Child   ui.Element
	OnClick func()

	Border    graphics.Border
	Padding   layout.EdgeInsets
	MinWidth  float64
	MinHeight float64
	Theme     *theme.Theme

	id focus.ID
}

// NewButton creates a Button around a child widget.
func NewButton(child ui.Widget) *Button {
	return &Button{Child: ui.NewElement(child), id: focus.NextID()}
}

func (b *Button) Measure(constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	inner := constraints.Deflate(b.Padding)
	var childSize graphics.Size
	if !b.Child.IsZero() {
		childSize = b.Child.Measure(inner, ctx)
	}
	w := math.Max(childSize.Width+b.Padding.Horizontal(), b.MinWidth)
	h := math.Max(childSize.Height+b.Padding.Vertical(), b.MinHeight)
	return constraints.Constrain(graphics.Size{Width: w, Height: h})
}

func (b *Button) Paint(p *ui.Painter, rect graphics.Rect) {
	th := b.Theme
	if th == nil {
		th = theme.Default()
	}
	p.RegisterFocusable(b.id)

	bg := th.Button.Background
	switch {
	case p.PressedIn(rect):
		bg = th.Button.PressBackground
	case p.Hovered(rect):
		bg = th.Button.HoverBackground
	}

	border := b.Border
	if p.Focused(b.id) && !border.IsVisible() {
		border = graphics.NewBorder(2, th.FocusRing)
	}

	p.FillRoundedRect(rect, th.Button.CornerRadius, graphics.Solid(bg), border)
	if !b.Child.IsZero() {
		b.Child.Paint(p, b.Padding.InsetRect(rect))
	}
}

func (b *Button) OnEvent(event ui.Event, rect graphics.Rect, ctx *ui.Context) ui.EventResult {
	switch e := event.(type) {
	case ui.ClickEvent:
		if rect.Contains(e.Pos) {
			ctx.RequestFocus(b.id)
			b.activate()
			return ui.Consumed
		}
	case ui.KeyEvent:
		if !ctx.IsFocused(b.id) {
			return ui.Ignored
		}
		if e.Key == ui.KeyEnter || e.Key == ui.KeySpace {
			b.activate()
			return ui.Consumed
		}
	}
	return ui.Ignored
}

func (b *Button) activate() {
	if b.OnClick != nil {
		b.OnClick()
	}
}
