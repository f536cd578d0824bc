package widgets

import (
	"testing"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/ui"
)

func TestCheckboxClickToggles(t *testing.T) {
	var last bool
	fired := 0
	c := NewCheckbox()
	c.OnChange = func(v bool) { last = v; fired++ }
	rect := graphics.RectFromLTWH(0, 0, 100, 20)
	ctx := newTestCtx()

	c.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 50, Y: 10}}, rect, ctx)
	if !c.Checked || !last || fired != 1 {
		t.Fatalf("after first click: checked=%v last=%v fired=%d", c.Checked, last, fired)
	}

	c.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 50, Y: 10}}, rect, ctx)
	if c.Checked || last {
		t.Fatalf("after second click: checked=%v last=%v", c.Checked, last)
	}
}

func TestCheckboxMeasureIncludesLabel(t *testing.T) {
	c := NewCheckbox()
	c.Label = "abcd" // 40px at 10px per rune
	c.Font = 1

	got := c.Measure(layout.Loose(graphics.Size{Width: 300, Height: 100}), newTestCtx())

	// box 16 + gap 8 + label 40
	if got.Width != 64 {
		t.Fatalf("width = %v, want 64", got.Width)
	}
}

func TestToggleClickFlips(t *testing.T) {
	tog := NewToggle()
	rect := graphics.RectFromLTWH(0, 0, 46, 24)
	ctx := newTestCtx()

	if res := tog.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 20, Y: 12}}, rect, ctx); !res.IsConsumed() {
		t.Fatalf("click not consumed")
	}
	if !tog.Checked {
		t.Fatalf("toggle not flipped on")
	}
}

func TestSliderDragOwnership(t *testing.T) {
	var dragged, committed []float64
	s := NewSlider()
	s.Min = 0
	s.Max = 100
	s.OnDrag = func(v float64) { dragged = append(dragged, v) }
	s.OnChange = func(v float64) { committed = append(committed, v) }
	rect := graphics.RectFromLTWH(0, 0, 100, 16)
	ctx := newTestCtx()

	inside := graphics.Offset{X: 10, Y: 8}
	outside := graphics.Offset{X: 300, Y: 8}

	// A drag that started elsewhere is not ours.
	if res := s.OnEvent(ui.DragEvent{Pos: inside, Start: outside}, rect, ctx); res.IsConsumed() {
		t.Fatalf("foreign drag consumed")
	}

	s.OnEvent(ui.DragEvent{Pos: graphics.Offset{X: 50, Y: 8}, Start: inside}, rect, ctx)
	if s.Value != 50 {
		t.Fatalf("value mid-drag = %v, want 50", s.Value)
	}
	if len(committed) != 0 {
		t.Fatalf("OnChange fired before release")
	}

	// Release beyond the right edge clamps and commits once.
	s.OnEvent(ui.DragEndEvent{Pos: graphics.Offset{X: 150, Y: 8}, Start: inside}, rect, ctx)
	if s.Value != 100 {
		t.Fatalf("value after release = %v, want 100", s.Value)
	}
	if len(committed) != 1 || committed[0] != 100 {
		t.Fatalf("committed = %v, want [100]", committed)
	}
	if len(dragged) != 2 {
		t.Fatalf("OnDrag calls = %d, want 2", len(dragged))
	}
}

func TestRadioGroupClickSelectsRow(t *testing.T) {
	var got string
	g := NewRadioGroup().Option("Alpha", "a").Option("Beta", "b")
	g.OnChange = func(v string) { got = v }
	ctx := newTestCtx()

	rect := graphics.RectFromLTWH(0, 0, 100, g.totalHeight())

	// Second row starts after rowHeight + itemGap.
	y := g.rowHeight() + g.ItemGap + 2
	res := g.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 10, Y: y}}, rect, ctx)

	if !res.IsConsumed() {
		t.Fatalf("row click not consumed")
	}
	if g.Selected != "b" || got != "b" {
		t.Fatalf("selected = %q callback %q, want b", g.Selected, got)
	}

	// Clicks in the gap between rows hit nothing.
	gapY := g.rowHeight() + g.ItemGap/2
	if res := g.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 10, Y: gapY}}, rect, ctx); res.IsConsumed() {
		t.Fatalf("gap click consumed")
	}
}

func TestProgressBarMeasure(t *testing.T) {
	b := NewProgressBar()
	got := b.Measure(layout.Loose(graphics.Size{Width: 150, Height: 100}), newTestCtx())
	if got.Width != 150 || got.Height != 6 {
		t.Fatalf("measure = %+v, want 150x6", got)
	}
}

func TestContainerMeasurePadsChildAndHonorsMin(t *testing.T) {
	c := ContainerOf(fixedBox{w: 10, h: 10})
	c.Padding = layout.UniformInsets(5)
	got := c.Measure(layout.Loose(graphics.Size{Width: 200, Height: 200}), newTestCtx())
	if got.Width != 20 || got.Height != 20 {
		t.Fatalf("measure = %+v, want 20x20", got)
	}

	c.MinWidth = 50
	got = c.Measure(layout.Loose(graphics.Size{Width: 200, Height: 200}), newTestCtx())
	if got.Width != 50 {
		t.Fatalf("width with min = %v, want 50", got.Width)
	}
}

func TestContainerRoutesEventsInsidePadding(t *testing.T) {
	rec := &clickRecorder{fixedBox: fixedBox{w: 10, h: 10}}
	c := ContainerOf(rec)
	c.Padding = layout.UniformInsets(5)
	rect := graphics.RectFromLTWH(0, 0, 20, 20)
	ctx := newTestCtx()

	c.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 10, Y: 10}}, rect, ctx)
	if rec.clicks != 1 {
		t.Fatalf("clicks = %d, want 1", rec.clicks)
	}

	// Inside the container but in the padding band.
	c.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 2, Y: 2}}, rect, ctx)
	if rec.clicks != 1 {
		t.Fatalf("padding click reached child")
	}
}

func TestTextMeasureWrapsAtConstraint(t *testing.T) {
	w := NewText("hello", 1, 13, graphics.ColorWhite)
	ctx := newTestCtx()

	got := w.Measure(layout.Loose(graphics.Size{Width: 200, Height: 100}), ctx)
	if got.Width != 50 || got.Height != 10 {
		t.Fatalf("unwrapped = %+v, want 50x10", got)
	}

	got = w.Measure(layout.Loose(graphics.Size{Width: 30, Height: 100}), ctx)
	if got.Height != 20 {
		t.Fatalf("wrapped height = %v, want 20", got.Height)
	}
}
