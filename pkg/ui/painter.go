package ui

import (
	"github.com/go-keel/keel/pkg/focus"
	"github.com/go-keel/keel/pkg/graphics"
)

// Painter is the drawing surface passed to [Widget.Paint].
//
// It wraps the frame's draw list with a high-level API and exposes the
// frame's cursor state so widgets can express hover and pressed visuals
// directly in their paint implementations. Every drawing call takes the
// next frame-local z value, so commands stack in paint order.
type Painter struct {
	drawList *graphics.DrawList
	ctx      *Context
	focus    *focus.Manager
	z        graphics.ZIndex

	// CursorPos is the cursor position in logical pixels.
	CursorPos graphics.Offset
	// CursorPressed is true while the primary button is held down.
	CursorPressed bool
}

// NewPainter builds a Painter over a draw list for one frame.
func NewPainter(list *graphics.DrawList, ctx *Context, f *focus.Manager, input *Input) *Painter {
	p := &Painter{drawList: list, ctx: ctx, focus: f}
	if input != nil {
		p.CursorPos = input.CursorPos
		p.CursorPressed = input.Pressed
	}
	return p
}

// Hovered reports whether the cursor is inside rect.
func (p *Painter) Hovered(rect graphics.Rect) bool {
	return rect.Contains(p.CursorPos)
}

// PressedIn reports whether the primary button is held with the cursor over
// rect.
func (p *Painter) PressedIn(rect graphics.Rect) bool {
	return p.CursorPressed && rect.Contains(p.CursorPos)
}

// MeasureText measures text with the frame's measurer. Containers use it
// inside Paint when they re-measure children to place them.
func (p *Painter) MeasureText(s string, font graphics.FontID, size, maxWidth float64) graphics.Size {
	return p.ctx.MeasureText(s, font, size, maxWidth)
}

// Layout returns the frame's Context for re-running child measurement
// inside Paint.
func (p *Painter) Layout() *Context {
	return p.ctx
}

// FillRect draws a solid axis-aligned rectangle.
func (p *Painter) FillRect(rect graphics.Rect, color graphics.Color) {
	p.drawList.Push(p.nextZ(), graphics.RectCmd{Rect: rect, Paint: graphics.Solid(color)})
}

// FillRoundedRect draws a rounded rectangle with a uniform corner radius.
// Pass radius 0 for sharp corners and a zero Border for no stroke.
func (p *Painter) FillRoundedRect(rect graphics.Rect, radius float64, paint graphics.Paint, border graphics.Border) {
	p.FillRoundedRectCorners(rect, graphics.UniformRadii(radius), paint, border)
}

// FillRoundedRectCorners draws a rounded rectangle with per-corner radii.
func (p *Painter) FillRoundedRectCorners(rect graphics.Rect, radii graphics.CornerRadii, paint graphics.Paint, border graphics.Border) {
	p.drawList.Push(p.nextZ(), graphics.RoundedRectCmd{
		Rect:   rect,
		Radii:  radii,
		Paint:  paint,
		Border: border,
	})
}

// FillCircle draws a circle.
func (p *Painter) FillCircle(center graphics.Offset, radius float64, paint graphics.Paint, border graphics.Border) {
	p.drawList.Push(p.nextZ(), graphics.CircleCmd{
		Center: center,
		Radius: radius,
		Paint:  paint,
		Border: border,
	})
}

// DrawText draws text at origin (top-left of the first line), wrapped to
// maxWidth when it is positive and finite.
func (p *Painter) DrawText(s string, font graphics.FontID, size float64, color graphics.Color, origin graphics.Offset, maxWidth float64) {
	p.drawList.Push(p.nextZ(), graphics.TextCmd{
		Text:     s,
		Font:     font,
		Size:     size,
		Color:    color,
		Origin:   origin,
		MaxWidth: maxWidth,
	})
}

// PushClip begins a scissor region. Must be paired with PopClip.
func (p *Painter) PushClip(rect graphics.Rect) {
	p.drawList.Push(p.nextZ(), graphics.ClipPushCmd{Rect: rect})
}

// PopClip ends the most recent scissor region.
func (p *Painter) PopClip() {
	p.drawList.Push(p.nextZ(), graphics.ClipPopCmd{})
}

// RegisterFocusable enrolls id in this frame's Tab cycle. Focusable widgets
// call it during Paint, so Tab order is paint order.
func (p *Painter) RegisterFocusable(id focus.ID) {
	if p.focus != nil {
		p.focus.Register(id)
	}
}

// Focused reports whether id holds keyboard focus this frame.
func (p *Painter) Focused(id focus.ID) bool {
	return p.focus != nil && p.focus.IsFocused(id)
}

func (p *Painter) nextZ() graphics.ZIndex {
	z := p.z
	p.z++
	return z
}
