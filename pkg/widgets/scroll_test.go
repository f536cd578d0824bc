package widgets

import (
	"testing"

	"github.com/go-keel/keel/pkg/focus"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/ui"
)

func newScrollFixture(t *testing.T) (*ScrollView, graphics.Rect, *ui.Context) {
	t.Helper()
	sv := NewScrollView(fixedBox{w: 100, h: 500})
	ctx := newTestCtx()
	rect := graphics.RectFromLTWH(0, 0, 100, 200)
	// Measure caches the content height the event pass clamps against.
	sv.Measure(layout.Loose(graphics.Size{Width: 100, Height: 200}), ctx)
	return sv, rect, ctx
}

func TestScrollOffsetClampsToContentRange(t *testing.T) {
	sv, rect, ctx := newScrollFixture(t)

	sv.OnEvent(ui.ScrollEvent{Delta: 1000}, rect, ctx)
	if got := sv.Offset(); got != 300 {
		t.Fatalf("offset after huge scroll = %v, want 300", got)
	}

	sv.OnEvent(ui.ScrollEvent{Delta: -1000}, rect, ctx)
	if got := sv.Offset(); got != 0 {
		t.Fatalf("offset after huge reverse scroll = %v, want 0", got)
	}
}

func TestScrollWheelStepsByLineHeight(t *testing.T) {
	sv, rect, ctx := newScrollFixture(t)

	sv.OnEvent(ui.ScrollEvent{Delta: 2}, rect, ctx)
	if got := sv.Offset(); got != 48 {
		t.Fatalf("offset = %v, want 48", got)
	}
}

func TestScrollKeys(t *testing.T) {
	sv, rect, ctx := newScrollFixture(t)

	sv.OnEvent(ui.KeyEvent{Key: ui.KeyEnd}, rect, ctx)
	if got := sv.Offset(); got != 300 {
		t.Fatalf("offset after End = %v, want 300", got)
	}

	sv.OnEvent(ui.KeyEvent{Key: ui.KeyHome}, rect, ctx)
	if got := sv.Offset(); got != 0 {
		t.Fatalf("offset after Home = %v, want 0", got)
	}

	sv.OnEvent(ui.KeyEvent{Key: ui.KeyPageDown}, rect, ctx)
	if got := sv.Offset(); got != 180 {
		t.Fatalf("offset after PageDown = %v, want 180", got)
	}

	sv.OnEvent(ui.KeyEvent{Key: ui.KeyArrowUp}, rect, ctx)
	if got := sv.Offset(); got != 156 {
		t.Fatalf("offset after ArrowUp = %v, want 156", got)
	}
}

func TestScrollOnScrollFiresOnlyOnChange(t *testing.T) {
	sv, rect, ctx := newScrollFixture(t)
	calls := 0
	sv.OnScroll = func(float64) { calls++ }

	sv.OnEvent(ui.ScrollEvent{Delta: 1000}, rect, ctx)
	sv.OnEvent(ui.ScrollEvent{Delta: 1000}, rect, ctx) // already at max
	if calls != 1 {
		t.Fatalf("OnScroll calls = %d, want 1", calls)
	}
}

func TestScrollToClampsAgainstPaintedViewport(t *testing.T) {
	sv, rect, _ := newScrollFixture(t)

	var list graphics.DrawList
	fm := focus.NewManager()
	ctx := newTestCtx()
	p := ui.NewPainter(&list, ctx, fm, &ui.Input{})
	sv.Paint(p, rect)

	sv.ScrollTo(10000)
	if got := sv.Offset(); got != 300 {
		t.Fatalf("offset after ScrollTo = %v, want 300", got)
	}
	sv.ScrollTo(-50)
	if got := sv.Offset(); got != 0 {
		t.Fatalf("offset after negative ScrollTo = %v, want 0", got)
	}
}

func TestScrollPaintEmitsClipPair(t *testing.T) {
	sv, rect, _ := newScrollFixture(t)

	var list graphics.DrawList
	fm := focus.NewManager()
	p := ui.NewPainter(&list, newTestCtx(), fm, &ui.Input{})
	sv.Paint(p, rect)

	var push, pop int
	pushIdx, popIdx := -1, -1
	for i, item := range list.Items() {
		switch item.Cmd.(type) {
		case graphics.ClipPushCmd:
			push++
			pushIdx = i
		case graphics.ClipPopCmd:
			pop++
			popIdx = i
		}
	}
	if push != 1 || pop != 1 {
		t.Fatalf("clip commands = (%d push, %d pop), want one of each", push, pop)
	}
	if pushIdx >= popIdx {
		t.Fatalf("clip push at %d not before pop at %d", pushIdx, popIdx)
	}
	// Scrollbar track and thumb follow the pop so they escape the clip.
	if popIdx >= list.Len()-1 {
		t.Fatalf("no scrollbar commands after clip pop")
	}
}

func TestScrollHidesScrollbarWhenContentFits(t *testing.T) {
	sv := NewScrollView(fixedBox{w: 100, h: 50})
	ctx := newTestCtx()
	rect := graphics.RectFromLTWH(0, 0, 100, 200)
	sv.Measure(layout.Loose(graphics.Size{Width: 100, Height: 200}), ctx)

	if _, _, ok := sv.scrollbarRects(rect); ok {
		t.Fatalf("scrollbar shown for content that fits")
	}
}
