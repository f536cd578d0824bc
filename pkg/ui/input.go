package ui

import "github.com/go-keel/keel/pkg/graphics"

// Input is the per-frame input snapshot the embedding application builds
// from raw platform events. The core reads it and never mutates it.
type Input struct {
	// CursorPos is the cursor position in logical pixels.
	CursorPos graphics.Offset
	// Pressed is true while the primary button is held down.
	Pressed bool
	// Clicked is true for exactly one frame, when the primary button is
	// released without a drag.
	Clicked bool
	// Text holds the text strings committed this frame, in arrival order.
	Text []string
	// Keys holds the named keys pressed this frame, in arrival order.
	Keys []KeyPress
	// ScrollDelta is the accumulated wheel delta this frame.
	// Positive = scroll down.
	ScrollDelta float64
	// Mods is the modifier state at the end of the frame.
	Mods Modifiers
	// DragStart is where the active drag began. Meaningful only while
	// Dragging or DragEnded is set.
	DragStart graphics.Offset
	// Dragging is true while a drag gesture is in progress.
	Dragging bool
	// DragEnded is true on the frame a drag was released.
	DragEnded bool
}
