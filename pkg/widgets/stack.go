package widgets

import (
	"math"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/ui"
)

// Anchor is a distance from a parent edge used to pin a [Stack] child.
// The zero Anchor is unset.
type Anchor struct {
	set bool
	pct bool
	v   float64
}

// AnchorPx anchors at a fixed pixel distance from the edge.
func AnchorPx(v float64) Anchor {
	return Anchor{set: true, v: v}
}

// AnchorPct anchors at a fraction of the parent's extent on this axis
// (0 = 0%, 1 = 100%).
func AnchorPct(p float64) Anchor {
	return Anchor{set: true, pct: true, v: p}
}

// IsSet reports whether the anchor was given.
func (a Anchor) IsSet() bool {
	return a.set
}

// Resolve converts the anchor to pixels against the parent extent.
func (a Anchor) Resolve(parentExtent float64) float64 {
	if a.pct {
		return parentExtent * a.v
	}
	return a.v
}

type sizeHintKind int

const (
	sizeNatural sizeHintKind = iota
	sizePx
	sizePct
	sizeFill
)

// SizeHint controls how a [Stack] child's width or height is determined
// when the axis is not stretched between two anchors. The zero SizeHint is
// Natural: the child's measured size.
type SizeHint struct {
	kind sizeHintKind
	v    float64
}

// SizePx fixes the extent in pixels.
func SizePx(v float64) SizeHint {
	return SizeHint{kind: sizePx, v: v}
}

// SizePct sets the extent to a fraction of the parent's (0 = 0%, 1 = 100%).
func SizePct(p float64) SizeHint {
	return SizeHint{kind: sizePct, v: p}
}

// SizeFill sets the extent equal to the parent's.
func SizeFill() SizeHint {
	return SizeHint{kind: sizeFill}
}

// Resolve converts the hint to pixels given the parent extent and the
// child's natural size on this axis.
func (h SizeHint) Resolve(parentExtent, natural float64) float64 {
	switch h.kind {
	case sizePx:
		return h.v
	case sizePct:
		return parentExtent * h.v
	case sizeFill:
		return parentExtent
	default:
		return natural
	}
}

func (h SizeHint) isNatural() bool {
	return h.kind == sizeNatural
}

// StackItem is a child inside a [Stack] with its anchor constraints.
//
// Per axis: when both opposing anchors are set, the extent stretches between
// them (floored at zero). Otherwise the extent comes from the SizeHint, and
// the position from whichever anchor is set, defaulting to the origin.
type StackItem struct {
	Child  ui.Element
	Left   Anchor
	Top    Anchor
	Right  Anchor
	Bottom Anchor
	Width  SizeHint
	Height SizeHint
}

// Item wraps a widget in a StackItem with no anchors and natural sizing.
func Item(w ui.Widget) StackItem {
	return StackItem{Child: ui.NewElement(w)}
}

// Rect computes the item's rect within parent using its anchor and size
// rules. Paint and event routing share it.
func (it *StackItem) Rect(parent graphics.Rect, ctx *ui.Context) graphics.Rect {
	pw := parent.Width()
	ph := parent.Height()

	var natural graphics.Size
	if it.needsNatural() {
		natural = it.Child.Measure(layout.Loose(graphics.Size{Width: pw, Height: ph}), ctx)
	}

	var w float64
	if it.Left.IsSet() && it.Right.IsSet() {
		w = math.Max(0, pw-it.Left.Resolve(pw)-it.Right.Resolve(pw))
	} else {
		w = it.Width.Resolve(pw, natural.Width)
	}

	var h float64
	if it.Top.IsSet() && it.Bottom.IsSet() {
		h = math.Max(0, ph-it.Top.Resolve(ph)-it.Bottom.Resolve(ph))
	} else {
		h = it.Height.Resolve(ph, natural.Height)
	}

	var x float64
	switch {
	case it.Left.IsSet():
		x = parent.Left + it.Left.Resolve(pw)
	case it.Right.IsSet():
		x = parent.Left + pw - it.Right.Resolve(pw) - w
	default:
		x = parent.Left
	}

	var y float64
	switch {
	case it.Top.IsSet():
		y = parent.Top + it.Top.Resolve(ph)
	case it.Bottom.IsSet():
		y = parent.Top + ph - it.Bottom.Resolve(ph) - h
	default:
		y = parent.Top
	}

	return graphics.RectFromLTWH(x, y, w, h)
}

func (it *StackItem) needsNatural() bool {
	widthStretched := it.Left.IsSet() && it.Right.IsSet()
	heightStretched := it.Top.IsSet() && it.Bottom.IsSet()
	return (!widthStretched && it.Width.isNatural()) ||
		(!heightStretched && it.Height.isNatural())
}

// Stack is an overlay container that positions each child independently
// using anchor constraints.
//
// Children paint in insertion order (first = bottom, last = top); events
// route in reverse order so the topmost child gets the first hit-test.
type Stack struct {
	Items      []StackItem
	Width      SizeHint
	Height     SizeHint
	Background graphics.Color
}

// NewStack creates a Stack that fills its parent.
func NewStack() *Stack {
	return &Stack{Width: SizeFill(), Height: SizeFill()}
}

// Item appends a StackItem and returns the Stack for chaining.
func (s *Stack) Item(item StackItem) *Stack {
	s.Items = append(s.Items, item)
	return s
}

func (s *Stack) Measure(constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	pw := 0.0
	if constraints.HasBoundedWidth() {
		pw = constraints.MaxWidth
	}
	ph := 0.0
	if constraints.HasBoundedHeight() {
		ph = constraints.MaxHeight
	}
	childC := layout.Loose(graphics.Size{Width: pw, Height: ph})

	var naturalW, naturalH float64
	if s.Width.isNatural() {
		for i := range s.Items {
			naturalW = math.Max(naturalW, s.Items[i].Child.Measure(childC, ctx).Width)
		}
	}
	if s.Height.isNatural() {
		for i := range s.Items {
			naturalH = math.Max(naturalH, s.Items[i].Child.Measure(childC, ctx).Height)
		}
	}

	return constraints.Constrain(graphics.Size{
		Width:  s.Width.Resolve(pw, naturalW),
		Height: s.Height.Resolve(ph, naturalH),
	})
}

func (s *Stack) Paint(p *ui.Painter, rect graphics.Rect) {
	if s.Background != graphics.ColorTransparent {
		p.FillRect(rect, s.Background)
	}
	for i := range s.Items {
		s.Items[i].Child.Paint(p, s.Items[i].Rect(rect, p.Layout()))
	}
}

func (s *Stack) OnEvent(event ui.Event, rect graphics.Rect, ctx *ui.Context) ui.EventResult {
	// Topmost child (last in the slice) gets the first chance.
	for i := len(s.Items) - 1; i >= 0; i-- {
		childRect := s.Items[i].Rect(rect, ctx)
		if s.Items[i].Child.OnEvent(event, childRect, ctx).IsConsumed() {
			return ui.Consumed
		}
	}
	return ui.Ignored
}
