package widgets

import (
	"math"

	"github.com/go-keel/keel/pkg/focus"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/theme"
	"github.com/go-keel/keel/pkg/ui"
)

const textBoxDefaultWidth = 200.0

// TextBox is a single-line text input with cursor, selection, and clipboard
// support.
//
// Click to place the cursor, drag to select, Shift+Arrows to extend the
// selection, Ctrl+A/C/X/V for select-all, copy, cut, and paste. Text longer
// than the box scrolls horizontally to keep the cursor visible. The box
// joins the Tab cycle through its focus id and also takes focus on click.
type TextBox struct {
	Edit EditState

	Font     graphics.FontID
	FontSize float64

	Placeholder  string
	CornerRadius float64
	Padding      layout.EdgeInsets
	Theme        *theme.Theme
	Clipboard    Clipboard

	// OnChange fires after every text mutation with the new content.
	OnChange func(string)
	// OnSubmit fires on Enter with the current content.
	OnSubmit func(string)
	// OnFocus fires when the box gains focus.
	OnFocus func()
	// OnCursorChange fires after any cursor, selection, or scroll change.
	OnCursorChange func(cursor, anchor int, scroll float64)

	id      focus.ID
	focused bool
	// dragWasActive suppresses the cursor-set from the Click that fires on
	// the frame a selection drag is released.
	dragWasActive bool
}

// NewTextBox creates an empty TextBox with the default metrics.
func NewTextBox() *TextBox {
	return &TextBox{
		FontSize:     13,
		CornerRadius: 4,
		Padding:      layout.SymmetricInsets(10, 6),
		id:           focus.NextID(),
	}
}

// SetText replaces the content and moves the cursor to the end.
func (t *TextBox) SetText(s string) {
	t.Edit.SetText(s)
}

// Text returns the current content.
func (t *TextBox) Text() string {
	return t.Edit.Text
}

// Focused reports whether the box currently shows as focused.
func (t *TextBox) Focused() bool {
	return t.focused
}

// FocusID returns the box's identity in the focus manager.
func (t *TextBox) FocusID() focus.ID {
	return t.id
}

func (t *TextBox) innerRect(rect graphics.Rect) graphics.Rect {
	return t.Padding.InsetRect(rect)
}

func (t *TextBox) Measure(constraints layout.Constraints, _ *ui.Context) graphics.Size {
	w := textBoxDefaultWidth
	if constraints.HasBoundedWidth() {
		w = constraints.MaxWidth
	}
	h := t.FontSize + t.Padding.Vertical() + 2
	return constraints.Constrain(graphics.Size{Width: w, Height: h})
}

func (t *TextBox) Paint(p *ui.Painter, rect graphics.Rect) {
	th := t.Theme
	if th == nil {
		th = theme.Default()
	}
	p.RegisterFocusable(t.id)
	isFocused := t.focused || p.Focused(t.id)

	bg := th.TextBox.Background
	borderColor := th.TextBox.BorderColor
	borderWidth := 1.0
	if isFocused {
		bg = th.TextBox.FocusedBackground
		borderColor = th.TextBox.FocusedBorderColor
		borderWidth = 2.0
	}
	p.FillRoundedRect(rect, t.CornerRadius, graphics.Solid(bg), graphics.NewBorder(borderWidth, borderColor))

	inner := t.innerRect(rect)
	textY := inner.Top + (inner.Height()-t.FontSize)/2
	if t.Font == 0 {
		return
	}

	p.PushClip(inner)
	defer p.PopClip()

	if t.Edit.Text == "" && t.Placeholder != "" {
		p.DrawText(t.Placeholder, t.Font, t.FontSize, th.TextBox.PlaceholderColor,
			graphics.Offset{X: inner.Left, Y: textY}, inner.Width())
		return
	}

	ctx := p.Layout()
	scroll := t.Edit.ScrollOffset

	if isFocused && t.Edit.HasSelection() {
		lo, hi := t.Edit.SelRange()
		x0 := ctx.AdvanceWidth(t.Edit.Text[:lo], t.Font, t.FontSize) - scroll
		x1 := ctx.AdvanceWidth(t.Edit.Text[:hi], t.Font, t.FontSize) - scroll
		sel := graphics.RectFromLTWH(inner.Left+x0, inner.Top, math.Max(0, x1-x0), inner.Height())
		p.FillRect(sel, th.TextBox.SelectionColor)
	}

	// Shift left by the scroll offset; widen the wrap limit to match so the
	// visible tail is not wrapped away.
	p.DrawText(t.Edit.Text, t.Font, t.FontSize, th.TextBox.TextColor,
		graphics.Offset{X: inner.Left - scroll, Y: textY}, inner.Width()+scroll)

	if isFocused && !t.Edit.HasSelection() {
		cx := t.Edit.CursorX(ctx, t.Font, t.FontSize)
		barX := math.Min(inner.Left+cx-scroll+1, inner.Right-2)
		bar := graphics.RectFromLTWH(barX, inner.Top, 2, inner.Height())
		p.FillRoundedRect(bar, 1, graphics.Solid(th.TextBox.CursorColor), graphics.Border{})
	}
}

func (t *TextBox) OnEvent(event ui.Event, rect graphics.Rect, ctx *ui.Context) ui.EventResult {
	managerFocused := ctx.IsFocused(t.id)

	switch e := event.(type) {
	case ui.FocusGainedEvent:
		// Sync the visual state when Tab cycles here.
		if e.ID == t.id {
			t.focused = true
			if t.OnFocus != nil {
				t.OnFocus()
			}
		}
		return ui.Ignored

	case ui.FocusLostEvent:
		if e.ID == t.id {
			t.focused = false
		}
		return ui.Ignored

	case ui.ClickEvent:
		if !rect.Contains(e.Pos) {
			t.focused = false
			return ui.Ignored
		}
		// Keep the selection a drag just made.
		if t.dragWasActive {
			t.dragWasActive = false
			return ui.Consumed
		}
		if !t.focused {
			t.focused = true
			if t.OnFocus != nil {
				t.OnFocus()
			}
		}
		ctx.RequestFocus(t.id)
		if t.Font != 0 {
			inner := t.innerRect(rect)
			relX := e.Pos.X - inner.Left + t.Edit.ScrollOffset
			c := t.Edit.XToCursor(relX, ctx, t.Font, t.FontSize)
			t.Edit.Cursor = c
			t.Edit.Anchor = c
			t.notifyCursorChange()
		}
		return ui.Consumed

	case ui.DragEvent:
		// Drag fires from the press frame on, before any Click, so focus is
		// gained here when a selection drag starts the interaction.
		if !rect.Contains(e.Start) {
			return ui.Ignored
		}
		if !t.focused && !managerFocused {
			t.focused = true
			ctx.RequestFocus(t.id)
			if t.OnFocus != nil {
				t.OnFocus()
			}
		}
		if t.Font != 0 {
			t.dragWasActive = true
			inner := t.innerRect(rect)
			scroll := t.Edit.ScrollOffset
			t.Edit.Anchor = t.Edit.XToCursor(e.Start.X-inner.Left+scroll, ctx, t.Font, t.FontSize)
			t.Edit.Cursor = t.Edit.XToCursor(e.Pos.X-inner.Left+scroll, ctx, t.Font, t.FontSize)
			t.Edit.EnsureCursorVisible(inner.Width(), ctx, t.Font, t.FontSize)
			t.notifyCursorChange()
		}
		return ui.Consumed

	case ui.DragEndEvent:
		// Arm the Click suppression; DragEnd dispatches before Click on the
		// release frame.
		if rect.Contains(e.Start) {
			t.dragWasActive = true
		}
		return ui.Ignored

	case ui.TextInputEvent:
		if !t.focused && !managerFocused {
			return ui.Ignored
		}
		t.Edit.InsertString(e.Text)
		t.ensureVisibleAndNotify(rect, ctx)
		t.fireChange()
		return ui.Consumed

	case ui.KeyEvent:
		if !t.focused && !managerFocused {
			return ui.Ignored
		}
		switch e.Key {
		case ui.KeyEnter:
			if t.OnSubmit != nil {
				t.OnSubmit(t.Edit.Text)
			}
			return ui.Consumed
		case ui.KeyEscape:
			t.focused = false
			return ui.Consumed
		}
		consumed, changed := t.Edit.HandleKey(e.Key, e.Mods, t.Clipboard)
		if !consumed {
			return ui.Ignored
		}
		t.ensureVisibleAndNotify(rect, ctx)
		if changed {
			t.fireChange()
		}
		return ui.Consumed
	}

	return ui.Ignored
}

func (t *TextBox) ensureVisibleAndNotify(rect graphics.Rect, ctx *ui.Context) {
	if t.Font != 0 {
		inner := t.innerRect(rect)
		t.Edit.EnsureCursorVisible(inner.Width(), ctx, t.Font, t.FontSize)
	}
	t.notifyCursorChange()
}

func (t *TextBox) notifyCursorChange() {
	if t.OnCursorChange != nil {
		t.OnCursorChange(t.Edit.Cursor, t.Edit.Anchor, t.Edit.ScrollOffset)
	}
}

func (t *TextBox) fireChange() {
	if t.OnChange != nil {
		t.OnChange(t.Edit.Text)
	}
}
