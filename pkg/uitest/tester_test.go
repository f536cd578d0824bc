package uitest

import (
	"testing"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/ui"
	"github.com/go-keel/keel/pkg/widgets"
)

func TestTapClicksButton(t *testing.T) {
	clicks := 0
	btn := widgets.NewButton(widgets.NewText("OK", 0, 13, graphics.RGB(0xFF, 0xFF, 0xFF)))
	btn.OnClick = func() { clicks++ }

	tester := NewTester()
	tester.Mount(ui.NewElement(btn))

	if err := tester.Tap(graphics.Offset{X: 400, Y: 300}); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
}

func TestTapBeforeMountFails(t *testing.T) {
	tester := NewTester()
	if err := tester.Tap(graphics.Offset{X: 1, Y: 1}); err == nil {
		t.Fatal("expected error tapping with no tree mounted")
	}
}

func TestTypeTextReachesFocusedTextBox(t *testing.T) {
	tb := widgets.NewTextBox()
	tester := NewTester()
	tester.Mount(ui.NewElement(tb))

	if err := tester.Tap(graphics.Offset{X: 40, Y: 15}); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	if err := tester.TypeText("hi"); err != nil {
		t.Fatalf("TypeText: %v", err)
	}
	if got := tb.Text(); got != "hi" {
		t.Fatalf("text = %q, want %q", got, "hi")
	}

	// Paint runs before event dispatch within a frame, so the inserted text
	// shows up in the next frame's draw list.
	tester.Pump(nil)
	if !HasText(tester.DrawList(), "hi") {
		t.Errorf("draw list should contain the typed text, got %v", Texts(tester.DrawList()))
	}

	if err := tester.PressKey(ui.KeyBackspace, ui.Modifiers{}); err != nil {
		t.Fatalf("PressKey: %v", err)
	}
	if got := tb.Text(); got != "h" {
		t.Errorf("text after backspace = %q, want %q", got, "h")
	}
}

func TestScrollViewClipStaysBalanced(t *testing.T) {
	col := widgets.ColumnOf(
		widgets.NewText("alpha", 0, 13, graphics.RGB(0, 0, 0)),
		widgets.NewText("beta", 0, 13, graphics.RGB(0, 0, 0)),
		widgets.NewText("gamma", 0, 13, graphics.RGB(0, 0, 0)),
	)
	sv := widgets.NewScrollView(col)

	tester := NewTester()
	tester.SetSize(graphics.Size{Width: 200, Height: 40})
	list := tester.Mount(ui.NewElement(sv))

	if !ClipBalanced(list) {
		t.Error("clip pushes and pops should balance")
	}
	if n := CountOf[graphics.ClipPushCmd](list); n != 1 {
		t.Errorf("clip push count = %d, want 1", n)
	}
	if !HasText(list, "alpha") {
		t.Errorf("expected first row in draw list, got %v", Texts(list))
	}
}

func TestScrollMovesContent(t *testing.T) {
	col := widgets.ColumnOf(
		widgets.NewText("alpha", 0, 13, graphics.RGB(0, 0, 0)),
		widgets.NewText("beta", 0, 13, graphics.RGB(0, 0, 0)),
	)
	sv := widgets.NewScrollView(col)

	tester := NewTester()
	tester.SetSize(graphics.Size{Width: 200, Height: 16})
	tester.Mount(ui.NewElement(sv))

	if err := tester.Scroll(graphics.Offset{X: 100, Y: 8}, 1); err != nil {
		t.Fatalf("Scroll: %v", err)
	}
	if sv.Offset() == 0 {
		t.Error("wheel scroll should move the content offset")
	}
}
