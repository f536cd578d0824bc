package widgets

import (
	"math"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/ui"
)

// Container is a single-child widget that applies padding, a background, a
// border, corner rounding, and a minimum size. All properties are optional;
// an empty Container is a no-op wrapper.
type Container struct {
	Child        ui.Element
	Padding      layout.EdgeInsets
	Background   graphics.Paint
	Border       graphics.Border
	CornerRadius float64
	MinWidth     float64
	MinHeight    float64
}

// ContainerOf wraps a widget in a Container.
func ContainerOf(w ui.Widget) *Container {
	return &Container{Child: ui.NewElement(w)}
}

func (c *Container) Measure(constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	inner := constraints.Deflate(c.Padding)

	var childSize graphics.Size
	if !c.Child.IsZero() {
		childSize = c.Child.Measure(inner, ctx)
	}

	w := math.Max(childSize.Width+c.Padding.Horizontal(), c.MinWidth)
	h := math.Max(childSize.Height+c.Padding.Vertical(), c.MinHeight)
	return constraints.Constrain(graphics.Size{Width: w, Height: h})
}

func (c *Container) Paint(p *ui.Painter, rect graphics.Rect) {
	if c.Background.IsVisible() || c.Border.IsVisible() {
		p.FillRoundedRect(rect, c.CornerRadius, c.Background, c.Border)
	}
	if !c.Child.IsZero() {
		c.Child.Paint(p, c.Padding.InsetRect(rect))
	}
}

func (c *Container) OnEvent(event ui.Event, rect graphics.Rect, ctx *ui.Context) ui.EventResult {
	if c.Child.IsZero() {
		return ui.Ignored
	}
	return c.Child.OnEvent(event, c.Padding.InsetRect(rect), ctx)
}
