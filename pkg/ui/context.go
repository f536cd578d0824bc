package ui

import (
	"github.com/go-keel/keel/pkg/focus"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/text"
)

// Context carries the per-frame services widgets need during measure and
// event handling: the text measurer and a view of the focus manager.
//
// The scene constructs one per frame; widgets receive it by pointer and must
// not retain it across frames.
type Context struct {
	measurer text.Measurer
	focus    *focus.Manager
}

// NewContext builds a Context around a measurer and a focus manager. Either
// may be nil; the corresponding queries then return zero values.
func NewContext(m text.Measurer, f *focus.Manager) *Context {
	return &Context{measurer: m, focus: f}
}

// MeasureText measures text wrapped to maxWidth. maxWidth <= 0 or infinite
// means no wrapping. Unknown fonts measure as zero.
func (c *Context) MeasureText(s string, font graphics.FontID, size, maxWidth float64) graphics.Size {
	if c.measurer == nil {
		return graphics.Size{}
	}
	return c.measurer.MeasureText(s, font, size, maxWidth)
}

// LineHeight returns the line height of font at size, or zero when unknown.
func (c *Context) LineHeight(font graphics.FontID, size float64) float64 {
	if c.measurer == nil {
		return 0
	}
	return c.measurer.LineHeight(font, size)
}

// AdvanceWidth returns the advance of a single unwrapped run.
func (c *Context) AdvanceWidth(s string, font graphics.FontID, size float64) float64 {
	if c.measurer == nil {
		return 0
	}
	return c.measurer.AdvanceWidth(s, font, size)
}

// Measurer returns the underlying text measurer, or nil.
func (c *Context) Measurer() text.Measurer {
	return c.measurer
}

// RequestFocus asks for id to gain focus at end of frame. Widgets call it
// from OnEvent, typically on Click.
func (c *Context) RequestFocus(id focus.ID) {
	if c.focus != nil {
		c.focus.RequestFocus(id)
	}
}

// ClearFocus drops keyboard focus immediately.
func (c *Context) ClearFocus() {
	if c.focus != nil {
		c.focus.Clear()
	}
}

// IsFocused reports whether id currently holds keyboard focus.
func (c *Context) IsFocused(id focus.ID) bool {
	return c.focus != nil && c.focus.IsFocused(id)
}
