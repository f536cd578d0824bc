// Package widgets provides the built-in widget set: flex containers,
// anchored stacks, scroll views, and the interactive leaf widgets.
//
// Containers own their children as [ui.Element] values and run the same
// measure-then-position pass in paint and event routing, so hit-testing
// always matches what was drawn.
package widgets

import (
	"fmt"
	"math"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/ui"
)

// Axis represents the layout direction of a flex container.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Align controls cross-axis placement inside a flex container.
type Align int

const (
	// AlignStretch fills the cross extent when it is finite, falling back
	// to the largest child's natural cross size when it is unbounded.
	AlignStretch Align = iota
	// AlignStart places children at the start of the cross axis.
	AlignStart
	// AlignCenter centers children on the cross axis.
	AlignCenter
	// AlignEnd places children at the end of the cross axis.
	AlignEnd
)

// String returns a human-readable representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignStretch:
		return "stretch"
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Column stacks children vertically with fixed spacing between them.
//
// A child that measures to exactly zero on both axes is a flexible spacer:
// leftover vertical space is divided equally among all such children. Use
// [Spacer] as the canonical zero-size child.
type Column struct {
	Children []ui.Element
	Spacing  float64
	Padding  layout.EdgeInsets
	Align    Align
}

// ColumnOf creates a Column from widgets, wrapping each in an Element.
func ColumnOf(children ...ui.Widget) *Column {
	c := &Column{}
	for _, w := range children {
		c.Children = append(c.Children, ui.NewElement(w))
	}
	return c
}

// Child appends a widget and returns the Column for chaining.
func (c *Column) Child(w ui.Widget) *Column {
	c.Children = append(c.Children, ui.NewElement(w))
	return c
}

func (c *Column) Measure(constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	return flexMeasure(AxisVertical, c.Children, c.Spacing, c.Padding, c.Align, constraints, ctx)
}

func (c *Column) Paint(p *ui.Painter, rect graphics.Rect) {
	rects := flexRects(AxisVertical, c.Children, c.Spacing, c.Padding, c.Align, rect, p.Layout())
	for i := range c.Children {
		c.Children[i].Paint(p, rects[i])
	}
}

func (c *Column) OnEvent(event ui.Event, rect graphics.Rect, ctx *ui.Context) ui.EventResult {
	rects := flexRects(AxisVertical, c.Children, c.Spacing, c.Padding, c.Align, rect, ctx)
	for i := range c.Children {
		if c.Children[i].OnEvent(event, rects[i], ctx).IsConsumed() {
			return ui.Consumed
		}
	}
	return ui.Ignored
}

// Row places children side by side, left to right.
//
// Zero-measured children act as flexible spacers exactly as in [Column].
type Row struct {
	Children []ui.Element
	Spacing  float64
	Padding  layout.EdgeInsets
	Align    Align
}

// RowOf creates a Row from widgets, wrapping each in an Element.
func RowOf(children ...ui.Widget) *Row {
	r := &Row{}
	for _, w := range children {
		r.Children = append(r.Children, ui.NewElement(w))
	}
	return r
}

// Child appends a widget and returns the Row for chaining.
func (r *Row) Child(w ui.Widget) *Row {
	r.Children = append(r.Children, ui.NewElement(w))
	return r
}

func (r *Row) Measure(constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	return flexMeasure(AxisHorizontal, r.Children, r.Spacing, r.Padding, r.Align, constraints, ctx)
}

func (r *Row) Paint(p *ui.Painter, rect graphics.Rect) {
	rects := flexRects(AxisHorizontal, r.Children, r.Spacing, r.Padding, r.Align, rect, p.Layout())
	for i := range r.Children {
		r.Children[i].Paint(p, rects[i])
	}
}

func (r *Row) OnEvent(event ui.Event, rect graphics.Rect, ctx *ui.Context) ui.EventResult {
	rects := flexRects(AxisHorizontal, r.Children, r.Spacing, r.Padding, r.Align, rect, ctx)
	for i := range r.Children {
		if r.Children[i].OnEvent(event, rects[i], ctx).IsConsumed() {
			return ui.Consumed
		}
	}
	return ui.Ignored
}

// flex internals, shared by Column and Row. Main axis is the stacking
// direction; cross axis is perpendicular.

func axisSize(axis Axis, main, cross float64) graphics.Size {
	if axis == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func mainExtent(axis Axis, s graphics.Size) float64 {
	if axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

func crossExtent(axis Axis, s graphics.Size) float64 {
	if axis == AxisHorizontal {
		return s.Height
	}
	return s.Width
}

func mainInset(axis Axis, e layout.EdgeInsets) float64 {
	if axis == AxisHorizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}

func crossInset(axis Axis, e layout.EdgeInsets) float64 {
	if axis == AxisHorizontal {
		return e.Vertical()
	}
	return e.Horizontal()
}

// flexChildConstraints builds the constraints every child is measured under:
// unbounded on the main axis so it reports a natural size, and either tight
// (Stretch with a finite cross extent) or loose on the cross axis.
func flexChildConstraints(axis Axis, align Align, innerCross float64) layout.Constraints {
	if align == AlignStretch && !math.IsInf(innerCross, 1) {
		c := layout.Tight(axisSize(axis, 0, innerCross))
		if axis == AxisHorizontal {
			return c.WithUnboundedWidth()
		}
		return c.WithUnboundedHeight()
	}
	return layout.Loose(axisSize(axis, layout.Unbounded, innerCross))
}

func flexMeasure(axis Axis, children []ui.Element, spacing float64, padding layout.EdgeInsets, align Align, constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	crossMax := crossExtent(axis, graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
	innerCross := math.Max(0, crossMax-crossInset(axis, padding))
	childC := flexChildConstraints(axis, align, innerCross)

	totalMain := mainInset(axis, padding)
	maxChildCross := 0.0
	for i := range children {
		s := children[i].Measure(childC, ctx)
		totalMain += mainExtent(axis, s)
		if i+1 < len(children) {
			totalMain += spacing
		}
		maxChildCross = math.Max(maxChildCross, crossExtent(axis, s))
	}

	var cross float64
	if align == AlignStretch && !math.IsInf(crossMax, 1) {
		cross = crossMax
	} else {
		cross = maxChildCross + crossInset(axis, padding)
	}
	return constraints.Constrain(axisSize(axis, totalMain, cross))
}

// flexRects runs the measure-then-position pass and returns one rect per
// child. Paint and event routing both call it, so layout and hit-testing
// cannot disagree.
func flexRects(axis Axis, children []ui.Element, spacing float64, padding layout.EdgeInsets, align Align, rect graphics.Rect, ctx *ui.Context) []graphics.Rect {
	inner := padding.InsetRect(rect)
	innerMain := mainExtent(axis, inner.Size())
	innerCross := crossExtent(axis, inner.Size())
	childC := flexChildConstraints(axis, align, innerCross)

	sizes := make([]graphics.Size, len(children))
	fixedMain := 0.0
	spacers := 0
	for i := range children {
		sizes[i] = children[i].Measure(childC, ctx)
		if sizes[i].Width == 0 && sizes[i].Height == 0 {
			spacers++
		} else {
			fixedMain += mainExtent(axis, sizes[i])
		}
	}

	spacerShare := 0.0
	if spacers > 0 {
		gaps := spacing * float64(len(children)-1)
		spacerShare = math.Max(0, (innerMain-fixedMain-gaps)/float64(spacers))
	}

	rects := make([]graphics.Rect, len(children))
	pos := 0.0
	for i := range children {
		main := mainExtent(axis, sizes[i])
		cross := crossExtent(axis, sizes[i])
		if sizes[i].Width == 0 && sizes[i].Height == 0 {
			main = spacerShare
		}
		if align == AlignStretch {
			cross = innerCross
		}

		crossPos := 0.0
		switch align {
		case AlignCenter:
			crossPos = (innerCross - cross) / 2
		case AlignEnd:
			crossPos = innerCross - cross
		}

		if axis == AxisHorizontal {
			rects[i] = graphics.RectFromLTWH(inner.Left+pos, inner.Top+crossPos, main, cross)
		} else {
			rects[i] = graphics.RectFromLTWH(inner.Left+crossPos, inner.Top+pos, cross, main)
		}
		pos += main
		if i+1 < len(children) {
			pos += spacing
		}
	}
	return rects
}
