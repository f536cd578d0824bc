package widgets

import (
	"testing"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/ui"
)

func TestStackItemStretchesBetweenAnchors(t *testing.T) {
	it := Item(fixedBox{w: 10, h: 10})
	it.Left = AnchorPx(0)
	it.Right = AnchorPx(0)
	it.Top = AnchorPx(0)
	it.Height = SizePx(40)

	parent := graphics.RectFromLTWH(0, 0, 200, 100)
	got := it.Rect(parent, newTestCtx())

	want := graphics.RectFromLTWH(0, 0, 200, 40)
	if got != want {
		t.Fatalf("rect = %+v, want %+v", got, want)
	}
}

func TestStackItemPercentAnchor(t *testing.T) {
	it := Item(fixedBox{w: 10, h: 10})
	it.Left = AnchorPct(0.25)
	it.Width = SizePx(50)
	it.Top = AnchorPx(0)
	it.Height = SizePx(10)

	got := it.Rect(graphics.RectFromLTWH(0, 0, 200, 100), newTestCtx())

	if got.Left != 50 || got.Width() != 50 {
		t.Fatalf("rect = %+v, want left 50 width 50", got)
	}
}

func TestStackItemFarAnchorsPositionFromOppositeEdge(t *testing.T) {
	it := Item(fixedBox{w: 10, h: 10})
	it.Right = AnchorPx(10)
	it.Bottom = AnchorPx(10)
	it.Width = SizePx(30)
	it.Height = SizePx(20)

	got := it.Rect(graphics.RectFromLTWH(0, 0, 200, 100), newTestCtx())

	if got.Left != 160 || got.Top != 70 {
		t.Fatalf("rect = %+v, want origin (160, 70)", got)
	}
}

func TestStackItemNaturalSizeAtOrigin(t *testing.T) {
	it := Item(fixedBox{w: 25, h: 15})

	got := it.Rect(graphics.RectFromLTWH(0, 0, 200, 100), newTestCtx())

	want := graphics.RectFromLTWH(0, 0, 25, 15)
	if got != want {
		t.Fatalf("rect = %+v, want %+v", got, want)
	}
}

func TestStackMeasureFillTakesParent(t *testing.T) {
	s := NewStack()
	got := s.Measure(layout.Loose(graphics.Size{Width: 300, Height: 200}), newTestCtx())
	if got.Width != 300 || got.Height != 200 {
		t.Fatalf("measure = %+v, want 300x200", got)
	}
}

func TestStackMeasureNaturalUsesLargestChild(t *testing.T) {
	s := &Stack{}
	s.Item(Item(fixedBox{w: 40, h: 10}))
	s.Item(Item(fixedBox{w: 20, h: 30}))

	got := s.Measure(layout.Loose(graphics.Size{Width: 300, Height: 200}), newTestCtx())

	if got.Width != 40 || got.Height != 30 {
		t.Fatalf("measure = %+v, want 40x30", got)
	}
}

func TestStackTopmostChildGetsEventFirst(t *testing.T) {
	bottom := &clickRecorder{fixedBox: fixedBox{w: 10, h: 10}}
	top := &clickRecorder{fixedBox: fixedBox{w: 10, h: 10}}

	fill := func(w ui.Widget) StackItem {
		it := Item(w)
		it.Left = AnchorPx(0)
		it.Right = AnchorPx(0)
		it.Top = AnchorPx(0)
		it.Bottom = AnchorPx(0)
		return it
	}
	s := NewStack().Item(fill(bottom)).Item(fill(top))

	rect := graphics.RectFromLTWH(0, 0, 100, 100)
	res := s.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 50, Y: 50}}, rect, newTestCtx())

	if !res.IsConsumed() {
		t.Fatalf("click not consumed")
	}
	if top.clicks != 1 || bottom.clicks != 0 {
		t.Fatalf("clicks = (top %d, bottom %d), want (1, 0)", top.clicks, bottom.clicks)
	}
}
