package ui

import (
	"github.com/go-keel/keel/pkg/focus"
	"github.com/go-keel/keel/pkg/graphics"
)

// Key identifies a named keyboard key delivered through [KeyEvent].
// Printable characters arrive separately as committed text; keys exist for
// navigation and editing commands.
type Key int

const (
	KeyUnknown Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
)

// Modifiers holds the modifier key state accompanying an input frame.
// Booleans rather than bitflags to keep it explicit and stable.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// Any reports whether any modifier is held.
func (m Modifiers) Any() bool {
	return m.Shift || m.Ctrl || m.Alt || m.Meta
}

// KeyPress is one named key pressed during a frame, with the modifiers held
// at the time.
type KeyPress struct {
	Key  Key
	Mods Modifiers
}

// Event is an input event routed through the widget tree. The concrete
// variants are the *Event types in this package.
type Event interface {
	isEvent()
}

// HoverEvent fires every frame with the current cursor position.
type HoverEvent struct {
	Pos graphics.Offset
}

// ClickEvent fires when the primary button was pressed and released at Pos.
type ClickEvent struct {
	Pos graphics.Offset
}

// DragEvent fires every frame while a drag is active. Start is where the
// drag began; widgets use it to claim ownership of the gesture.
type DragEvent struct {
	Pos   graphics.Offset
	Start graphics.Offset
}

// DragEndEvent fires on the frame a drag is released.
type DragEndEvent struct {
	Pos   graphics.Offset
	Start graphics.Offset
}

// TextInputEvent carries one committed text string.
type TextInputEvent struct {
	Text string
}

// KeyEvent carries one named key press.
type KeyEvent struct {
	Key  Key
	Mods Modifiers
}

// ScrollEvent carries the accumulated wheel delta for the frame.
// Positive means scroll down (reveal content below).
type ScrollEvent struct {
	Delta float64
}

// FocusGainedEvent is dispatched at end of frame when a widget gained
// keyboard focus. ID names the widget; each focusable compares it to its own.
type FocusGainedEvent struct {
	ID focus.ID
}

// FocusLostEvent is dispatched at end of frame when a widget lost keyboard
// focus.
type FocusLostEvent struct {
	ID focus.ID
}

func (HoverEvent) isEvent()       {}
func (ClickEvent) isEvent()       {}
func (DragEvent) isEvent()        {}
func (DragEndEvent) isEvent()     {}
func (TextInputEvent) isEvent()   {}
func (KeyEvent) isEvent()         {}
func (ScrollEvent) isEvent()      {}
func (FocusGainedEvent) isEvent() {}
func (FocusLostEvent) isEvent()   {}

// EventResult is returned by OnEvent implementations.
type EventResult int

const (
	// Ignored means the event was not handled; keep routing.
	Ignored EventResult = iota
	// Consumed means the event was handled; stop routing.
	Consumed
)

// IsConsumed reports whether r is Consumed.
func (r EventResult) IsConsumed() bool {
	return r == Consumed
}
