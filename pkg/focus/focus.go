// Package focus tracks keyboard focus across the widget tree.
//
// Focusable widgets enroll every frame: during paint they call
// [Manager.Register] in paint order, which defines the Tab cycle. Clicking a
// widget requests focus via [Manager.RequestFocus]; the request takes effect
// when the scene calls [Manager.EndFrame]. After EndFrame, [Manager.JustGained]
// and [Manager.JustLost] report the transition so the scene can deliver
// synthetic focus events on the next frame.
package focus

import "sync/atomic"

// ID uniquely identifies a focusable widget. The zero value means "no
// widget" and is never allocated.
type ID uint64

// IDAllocator hands out unique focus IDs. The zero value is ready to use.
// Allocators are safe for concurrent use.
type IDAllocator struct {
	next atomic.Uint64
}

// Next returns a fresh, never-zero ID.
func (a *IDAllocator) Next() ID {
	return ID(a.next.Add(1))
}

var defaultAllocator IDAllocator

// NextID returns a fresh ID from the process-wide allocator. Widgets
// allocate one at construction and keep it for their lifetime.
func NextID() ID {
	return defaultAllocator.Next()
}

// Manager tracks which widget holds keyboard focus.
//
// It is owned by the scene; widgets reach it through the painter during
// paint and through the context during event handling.
type Manager struct {
	focused     ID
	prevFocused ID
	registered  []ID
	requested   ID
	hasRequest  bool
}

// NewManager creates a Manager with nothing focused.
func NewManager() *Manager {
	return &Manager{}
}

// Focused returns the currently focused ID, or zero if none.
func (m *Manager) Focused() ID {
	return m.focused
}

// IsFocused reports whether id holds focus.
func (m *Manager) IsFocused(id ID) bool {
	return id != 0 && m.focused == id
}

// RequestFocus asks for id to become focused at end of frame. The last
// request in a frame wins.
func (m *Manager) RequestFocus(id ID) {
	m.requested = id
	m.hasRequest = true
}

// Register enrolls id in this frame's Tab cycle. Widgets call it during
// paint, so registration order is paint order.
func (m *Manager) Register(id ID) {
	m.registered = append(m.registered, id)
}

// Advance moves focus to the next registered widget, or the previous one
// when reverse is true. With nothing focused it starts at the first (or
// last) entry. With an empty registry it does nothing.
func (m *Manager) Advance(reverse bool) {
	n := len(m.registered)
	if n == 0 {
		return
	}
	if m.focused == 0 {
		if reverse {
			m.focused = m.registered[n-1]
		} else {
			m.focused = m.registered[0]
		}
		return
	}
	at := -1
	for i, id := range m.registered {
		if id == m.focused {
			at = i
			break
		}
	}
	if at == -1 {
		// The focused widget disappeared; restart the cycle.
		m.focused = m.registered[0]
		return
	}
	if reverse {
		m.focused = m.registered[(at+n-1)%n]
	} else {
		m.focused = m.registered[(at+1)%n]
	}
}

// Clear drops focus and any pending request.
func (m *Manager) Clear() {
	m.focused = 0
	m.requested = 0
	m.hasRequest = false
}

// BeginFrame resets the registered list so the upcoming paint pass can
// rebuild it. The scene calls it after the Tab pre-pass, which still needs
// the previous frame's registration order.
func (m *Manager) BeginFrame() {
	m.registered = m.registered[:0]
}

// EndFrame applies the pending focus request and records the transition for
// JustGained/JustLost. The scene calls it once per frame, after events.
func (m *Manager) EndFrame() {
	m.prevFocused = m.focused
	if m.hasRequest {
		m.focused = m.requested
		m.requested = 0
		m.hasRequest = false
	}
}

// JustGained returns the ID that gained focus during the last EndFrame, or
// zero if focus did not change.
func (m *Manager) JustGained() ID {
	if m.focused != m.prevFocused {
		return m.focused
	}
	return 0
}

// JustLost returns the ID that lost focus during the last EndFrame, or zero
// if focus did not change.
func (m *Manager) JustLost() ID {
	if m.focused != m.prevFocused {
		return m.prevFocused
	}
	return 0
}
