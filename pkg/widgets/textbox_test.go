package widgets

import (
	"testing"

	"github.com/go-keel/keel/pkg/focus"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/text"
	"github.com/go-keel/keel/pkg/ui"
)

func newTextBoxFixture() (*TextBox, graphics.Rect, *ui.Context, *focus.Manager) {
	tb := NewTextBox()
	tb.Font = 1
	fm := focus.NewManager()
	ctx := ui.NewContext(text.FixedMeasurer{CharWidth: 10, Height: 13}, fm)
	rect := graphics.RectFromLTWH(0, 0, 200, 30)
	return tb, rect, ctx, fm
}

func TestTextBoxClickFocusesAndPlacesCursor(t *testing.T) {
	tb, rect, ctx, fm := newTextBoxFixture()
	tb.SetText("hello")
	focusCalls := 0
	tb.OnFocus = func() { focusCalls++ }

	// Default padding puts the text origin at x=10; clicking at x=32 is
	// closest to the boundary after two characters.
	res := tb.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 32, Y: 15}}, rect, ctx)

	if !res.IsConsumed() {
		t.Fatalf("click not consumed")
	}
	if !tb.Focused() || focusCalls != 1 {
		t.Fatalf("focused=%v focusCalls=%d", tb.Focused(), focusCalls)
	}
	if tb.Edit.Cursor != 2 || tb.Edit.Anchor != 2 {
		t.Fatalf("cursor = (%d, %d), want (2, 2)", tb.Edit.Cursor, tb.Edit.Anchor)
	}

	fm.EndFrame()
	if !fm.IsFocused(tb.FocusID()) {
		t.Fatalf("focus manager did not adopt the click focus")
	}
}

func TestTextBoxClickOutsideDefocuses(t *testing.T) {
	tb, rect, ctx, _ := newTextBoxFixture()
	tb.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 10, Y: 15}}, rect, ctx)

	res := tb.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 500, Y: 15}}, rect, ctx)
	if res.IsConsumed() {
		t.Fatalf("outside click consumed")
	}
	if tb.Focused() {
		t.Fatalf("still focused after outside click")
	}
}

func TestTextBoxTypingFiresOnChange(t *testing.T) {
	tb, rect, ctx, _ := newTextBoxFixture()
	var changes []string
	tb.OnChange = func(s string) { changes = append(changes, s) }

	// Unfocused input is ignored.
	if res := tb.OnEvent(ui.TextInputEvent{Text: "x"}, rect, ctx); res.IsConsumed() {
		t.Fatalf("unfocused text input consumed")
	}

	tb.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 15, Y: 15}}, rect, ctx)
	tb.OnEvent(ui.TextInputEvent{Text: "hi"}, rect, ctx)
	tb.OnEvent(ui.TextInputEvent{Text: "!"}, rect, ctx)

	if tb.Text() != "hi!" {
		t.Fatalf("text = %q, want %q", tb.Text(), "hi!")
	}
	if len(changes) != 2 || changes[1] != "hi!" {
		t.Fatalf("changes = %v", changes)
	}
}

func TestTextBoxEnterSubmitsEscapeDefocuses(t *testing.T) {
	tb, rect, ctx, _ := newTextBoxFixture()
	var submitted string
	tb.OnSubmit = func(s string) { submitted = s }
	tb.SetText("done")

	tb.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 15, Y: 15}}, rect, ctx)
	tb.OnEvent(ui.KeyEvent{Key: ui.KeyEnter}, rect, ctx)
	if submitted != "done" {
		t.Fatalf("submitted = %q, want %q", submitted, "done")
	}

	tb.OnEvent(ui.KeyEvent{Key: ui.KeyEscape}, rect, ctx)
	if tb.Focused() {
		t.Fatalf("still focused after Escape")
	}
}

func TestTextBoxDragSelects(t *testing.T) {
	tb, rect, ctx, _ := newTextBoxFixture()
	tb.SetText("hello world")

	start := graphics.Offset{X: 10, Y: 15} // before "h"
	pos := graphics.Offset{X: 60, Y: 15}   // after "hello"
	res := tb.OnEvent(ui.DragEvent{Pos: pos, Start: start}, rect, ctx)

	if !res.IsConsumed() {
		t.Fatalf("drag not consumed")
	}
	if !tb.Focused() {
		t.Fatalf("drag did not focus")
	}
	lo, hi := tb.Edit.SelRange()
	if lo != 0 || hi != 5 {
		t.Fatalf("selection = (%d, %d), want (0, 5)", lo, hi)
	}

	// The release-frame Click must not collapse the selection.
	tb.OnEvent(ui.DragEndEvent{Pos: pos, Start: start}, rect, ctx)
	tb.OnEvent(ui.ClickEvent{Pos: pos}, rect, ctx)
	if lo, hi := tb.Edit.SelRange(); lo != 0 || hi != 5 {
		t.Fatalf("selection after release = (%d, %d), want (0, 5)", lo, hi)
	}
}

func TestTextBoxFocusEventsSyncVisualState(t *testing.T) {
	tb, rect, ctx, _ := newTextBoxFixture()
	focusCalls := 0
	tb.OnFocus = func() { focusCalls++ }

	tb.OnEvent(ui.FocusGainedEvent{ID: tb.FocusID()}, rect, ctx)
	if !tb.Focused() || focusCalls != 1 {
		t.Fatalf("gain: focused=%v calls=%d", tb.Focused(), focusCalls)
	}

	// Events for other widgets are not ours.
	tb.OnEvent(ui.FocusLostEvent{ID: tb.FocusID() + 1}, rect, ctx)
	if !tb.Focused() {
		t.Fatalf("lost focus from foreign event")
	}

	tb.OnEvent(ui.FocusLostEvent{ID: tb.FocusID()}, rect, ctx)
	if tb.Focused() {
		t.Fatalf("still focused after FocusLost")
	}
}

func TestTextBoxHorizontalScrollFollowsCursor(t *testing.T) {
	tb, rect, ctx, _ := newTextBoxFixture()
	tb.OnEvent(ui.ClickEvent{Pos: graphics.Offset{X: 15, Y: 15}}, rect, ctx)

	// Inner width is 200 - 2*10 = 180; 30 characters are 300px.
	tb.OnEvent(ui.TextInputEvent{Text: "abcdefghijklmnopqrstuvwxyz0123"}, rect, ctx)

	if tb.Edit.ScrollOffset != 120 {
		t.Fatalf("scroll = %v, want 120", tb.Edit.ScrollOffset)
	}

	tb.OnEvent(ui.KeyEvent{Key: ui.KeyHome}, rect, ctx)
	if tb.Edit.ScrollOffset != 0 {
		t.Fatalf("scroll after Home = %v, want 0", tb.Edit.ScrollOffset)
	}
}
