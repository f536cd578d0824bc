package uitest

import (
	"fmt"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/ui"
)

// Tap simulates a click at pos: one pressed frame followed by the release
// frame that carries the click.
func (t *Tester) Tap(pos graphics.Offset) error {
	if t.root.IsZero() {
		return fmt.Errorf("Tap: no tree mounted")
	}
	t.Pump(&ui.Input{CursorPos: pos, Pressed: true})
	t.Pump(&ui.Input{CursorPos: pos, Clicked: true})
	return nil
}

// Hover moves the cursor to pos without any buttons held.
func (t *Tester) Hover(pos graphics.Offset) error {
	if t.root.IsZero() {
		return fmt.Errorf("Hover: no tree mounted")
	}
	t.Pump(&ui.Input{CursorPos: pos})
	return nil
}

// Drag simulates a drag from start by delta: a press frame at start, a move
// frame at the end position, and a release frame. Widgets that own the drag
// by its start position see every frame.
func (t *Tester) Drag(start, delta graphics.Offset) error {
	if t.root.IsZero() {
		return fmt.Errorf("Drag: no tree mounted")
	}
	end := graphics.Offset{X: start.X + delta.X, Y: start.Y + delta.Y}
	t.Pump(&ui.Input{CursorPos: start, Pressed: true, Dragging: true, DragStart: start})
	t.Pump(&ui.Input{CursorPos: end, Pressed: true, Dragging: true, DragStart: start})
	t.Pump(&ui.Input{CursorPos: end, DragEnded: true, DragStart: start})
	return nil
}

// TypeText commits s as one text input event.
func (t *Tester) TypeText(s string) error {
	if t.root.IsZero() {
		return fmt.Errorf("TypeText: no tree mounted")
	}
	t.Pump(&ui.Input{Text: []string{s}})
	return nil
}

// PressKey sends a single named key press.
func (t *Tester) PressKey(key ui.Key, mods ui.Modifiers) error {
	if t.root.IsZero() {
		return fmt.Errorf("PressKey: no tree mounted")
	}
	t.Pump(&ui.Input{Keys: []ui.KeyPress{{Key: key, Mods: mods}}, Mods: mods})
	return nil
}

// Scroll sends a wheel delta with the cursor at pos. Positive delta scrolls
// down.
func (t *Tester) Scroll(pos graphics.Offset, delta float64) error {
	if t.root.IsZero() {
		return fmt.Errorf("Scroll: no tree mounted")
	}
	t.Pump(&ui.Input{CursorPos: pos, ScrollDelta: delta})
	return nil
}
