package widgets

import (
	"testing"

	"github.com/go-keel/keel/pkg/focus"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/text"
	"github.com/go-keel/keel/pkg/ui"
)

func TestButtonClickFiresInsideOnly(t *testing.T) {
	clicks := 0
	b := NewButton(fixedBox{w: 40, h: 20})
	b.OnClick = func() { clicks++ }
	rect := graphics.RectFromLTWH(0, 0, 40, 20)
	ctx := newTestCtx()

	if res := b.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 10, Y: 10}}, rect, ctx); !res.IsConsumed() {
		t.Fatalf("inside click not consumed")
	}
	if res := b.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 100, Y: 10}}, rect, ctx); res.IsConsumed() {
		t.Fatalf("outside click consumed")
	}
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
}

func TestButtonKeyActivatesWhenFocused(t *testing.T) {
	clicks := 0
	b := NewButton(fixedBox{w: 40, h: 20})
	b.OnClick = func() { clicks++ }
	rect := graphics.RectFromLTWH(0, 0, 40, 20)

	fm := focus.NewManager()
	ctx := ui.NewContext(text.FixedMeasurer{CharWidth: 10, Height: 10}, fm)

	// Enter without focus does nothing.
	if res := b.OnEvent(ui.KeyEvent{Key: ui.KeyEnter}, rect, ctx); res.IsConsumed() {
		t.Fatalf("unfocused Enter consumed")
	}

	// Click focuses; the request lands at end of frame.
	b.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 10, Y: 10}}, rect, ctx)
	fm.EndFrame()

	if res := b.OnEvent(ui.KeyEvent{Key: ui.KeySpace}, rect, ctx); !res.IsConsumed() {
		t.Fatalf("focused Space not consumed")
	}
	if clicks != 2 {
		t.Fatalf("clicks = %d, want 2", clicks)
	}
}

func TestButtonMeasureAppliesPaddingAndMin(t *testing.T) {
	b := NewButton(fixedBox{w: 40, h: 20})
	b.Padding = layout.UniformInsets(10)
	b.MinHeight = 50

	got := b.Measure(layout.Loose(graphics.Size{Width: 200, Height: 200}), newTestCtx())

	if got.Width != 60 {
		t.Fatalf("width = %v, want 60", got.Width)
	}
	if got.Height != 50 {
		t.Fatalf("height = %v, want 50", got.Height)
	}
}
