// Package ui defines the widget contract and the per-frame machinery that
// drives it: the Painter widgets draw through, the Context they measure and
// handle events with, and the Scene that coordinates a frame.
//
// A frame runs measure, paint, and event dispatch as synchronous recursive
// traversals of one widget tree. Containers own their children outright
// through [Element]; there is no sharing and no cycles.
package ui

import (
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
)

// Widget is the core contract every UI component implements.
//
// Measure computes the size the widget wants given the available space. It
// must be deterministic and must return a size inside the given constraints;
// the parent may call it multiple times per frame. Paint draws the widget
// into the rect the parent allocated, recursing into children.
//
// Widgets that handle input additionally implement [EventTarget].
type Widget interface {
	Measure(constraints layout.Constraints, ctx *Context) graphics.Size
	Paint(p *Painter, rect graphics.Rect)
}

// EventTarget is the optional event-handling side of the widget contract.
// Widgets that do not implement it ignore all events.
type EventTarget interface {
	// OnEvent routes an input event. rect is the widget's allocated screen
	// rect this frame. Return Consumed to stop propagation.
	OnEvent(event Event, rect graphics.Rect, ctx *Context) EventResult
}

// Element is a type-erased widget, the universal child type for container
// widgets. The zero Element is inert: it measures to zero, paints nothing,
// and ignores every event.
type Element struct {
	widget Widget
	target EventTarget
}

// NewElement wraps a widget in an Element.
func NewElement(w Widget) Element {
	target, _ := w.(EventTarget)
	return Element{widget: w, target: target}
}

// IsZero reports whether the Element wraps no widget.
func (e *Element) IsZero() bool {
	return e.widget == nil
}

// Widget returns the wrapped widget, or nil for the zero Element.
func (e *Element) Widget() Widget {
	return e.widget
}

// Measure measures the wrapped widget.
func (e *Element) Measure(constraints layout.Constraints, ctx *Context) graphics.Size {
	if e.widget == nil {
		return graphics.Size{}
	}
	return e.widget.Measure(constraints, ctx)
}

// Paint paints the wrapped widget into rect.
func (e *Element) Paint(p *Painter, rect graphics.Rect) {
	if e.widget == nil {
		return
	}
	e.widget.Paint(p, rect)
}

// OnEvent routes an event to the wrapped widget. Widgets that do not
// implement EventTarget ignore everything.
func (e *Element) OnEvent(event Event, rect graphics.Rect, ctx *Context) EventResult {
	if e.target == nil {
		return Ignored
	}
	return e.target.OnEvent(event, rect, ctx)
}
