package widgets

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/ui"
)

// Clipboard abstracts the system clipboard for cut, copy, and paste. The
// platform embedding supplies an implementation; a nil Clipboard disables
// the clipboard shortcuts without affecting other editing.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// EditState is reusable single-line text-editing state: the text, a cursor,
// a selection anchor, and a horizontal scroll offset.
//
// Cursor and Anchor are byte offsets into Text and are always kept on UTF-8
// rune boundaries. Cursor == Anchor means no selection. Embed EditState in
// any widget that edits text.
type EditState struct {
	Text   string
	Cursor int
	Anchor int
	// ScrollOffset is how far the text is scrolled left, in pixels.
	ScrollOffset float64
}

// NewEditState creates an EditState with the cursor at the end of text.
func NewEditState(text string) *EditState {
	return &EditState{Text: text, Cursor: len(text), Anchor: len(text)}
}

// SetText replaces the text and moves the cursor to the end.
func (e *EditState) SetText(text string) {
	e.Text = text
	e.Cursor = len(text)
	e.Anchor = len(text)
}

// SelRange returns the selection as a sorted (lo, hi) byte range.
func (e *EditState) SelRange() (lo, hi int) {
	if e.Cursor < e.Anchor {
		return e.Cursor, e.Anchor
	}
	return e.Anchor, e.Cursor
}

// HasSelection reports whether any text is selected.
func (e *EditState) HasSelection() bool {
	return e.Cursor != e.Anchor
}

// MoveLeft moves the cursor one rune left. Without shift an active selection
// collapses to its left edge instead.
func (e *EditState) MoveLeft(shift bool) {
	if !shift && e.HasSelection() {
		lo, _ := e.SelRange()
		e.Cursor = lo
		e.Anchor = lo
		return
	}
	e.Cursor = prevRune(e.Text, e.Cursor)
	if !shift {
		e.Anchor = e.Cursor
	}
}

// MoveRight moves the cursor one rune right, or collapses the selection to
// its right edge.
func (e *EditState) MoveRight(shift bool) {
	if !shift && e.HasSelection() {
		_, hi := e.SelRange()
		e.Cursor = hi
		e.Anchor = hi
		return
	}
	e.Cursor = nextRune(e.Text, e.Cursor)
	if !shift {
		e.Anchor = e.Cursor
	}
}

// MoveWordLeft moves the cursor to the start of the previous word.
func (e *EditState) MoveWordLeft(shift bool) {
	e.Cursor = prevWord(e.Text, e.Cursor)
	if !shift {
		e.Anchor = e.Cursor
	}
}

// MoveWordRight moves the cursor past the current word and its trailing
// whitespace.
func (e *EditState) MoveWordRight(shift bool) {
	e.Cursor = nextWord(e.Text, e.Cursor)
	if !shift {
		e.Anchor = e.Cursor
	}
}

// MoveHome moves the cursor to the start of the text.
func (e *EditState) MoveHome(shift bool) {
	e.Cursor = 0
	if !shift {
		e.Anchor = 0
	}
}

// MoveEnd moves the cursor to the end of the text.
func (e *EditState) MoveEnd(shift bool) {
	e.Cursor = len(e.Text)
	if !shift {
		e.Anchor = e.Cursor
	}
}

// SelectAll selects the whole text with the cursor at the end.
func (e *EditState) SelectAll() {
	e.Anchor = 0
	e.Cursor = len(e.Text)
}

// InsertString inserts s at the cursor, replacing any selection.
func (e *EditState) InsertString(s string) {
	e.deleteSelection()
	e.Text = e.Text[:e.Cursor] + s + e.Text[e.Cursor:]
	e.Cursor += len(s)
	e.Anchor = e.Cursor
}

// DeleteBackward deletes the selection, or the rune before the cursor.
func (e *EditState) DeleteBackward() {
	if e.deleteSelection() {
		return
	}
	if e.Cursor == 0 {
		return
	}
	prev := prevRune(e.Text, e.Cursor)
	e.Text = e.Text[:prev] + e.Text[e.Cursor:]
	e.Cursor = prev
	e.Anchor = prev
}

// DeleteForward deletes the selection, or the rune after the cursor.
func (e *EditState) DeleteForward() {
	if e.deleteSelection() {
		return
	}
	if e.Cursor >= len(e.Text) {
		return
	}
	next := nextRune(e.Text, e.Cursor)
	e.Text = e.Text[:e.Cursor] + e.Text[next:]
}

// Copy writes the selection to cb. No-op when nothing is selected or cb is
// nil.
func (e *EditState) Copy(cb Clipboard) {
	lo, hi := e.SelRange()
	if lo == hi || cb == nil {
		return
	}
	_ = cb.WriteText(e.Text[lo:hi])
}

// Cut copies the selection to cb and deletes it. Reports whether the text
// changed.
func (e *EditState) Cut(cb Clipboard) bool {
	if !e.HasSelection() {
		return false
	}
	e.Copy(cb)
	e.deleteSelection()
	return true
}

// Paste inserts clipboard text at the cursor. Reports whether the text
// changed.
func (e *EditState) Paste(cb Clipboard) bool {
	if cb == nil {
		return false
	}
	s, err := cb.ReadText()
	if err != nil || s == "" {
		return false
	}
	e.InsertString(s)
	return true
}

// HandleKey applies an editing or navigation key press. Enter and Escape
// are left to the containing widget, which owns submit and defocus
// semantics.
//
// It reports whether the key was handled and whether the text changed; the
// caller fires its change callback on the latter.
func (e *EditState) HandleKey(key ui.Key, mods ui.Modifiers, cb Clipboard) (consumed, changed bool) {
	shift := mods.Shift
	ctrl := mods.Ctrl

	switch key {
	case ui.KeyBackspace:
		e.DeleteBackward()
		return true, true
	case ui.KeyDelete:
		e.DeleteForward()
		return true, true
	case ui.KeyArrowLeft:
		if ctrl {
			e.MoveWordLeft(shift)
		} else {
			e.MoveLeft(shift)
		}
		return true, false
	case ui.KeyArrowRight:
		if ctrl {
			e.MoveWordRight(shift)
		} else {
			e.MoveRight(shift)
		}
		return true, false
	case ui.KeyHome:
		e.MoveHome(shift)
		return true, false
	case ui.KeyEnd:
		e.MoveEnd(shift)
		return true, false
	case ui.KeyA:
		if ctrl {
			e.SelectAll()
			return true, false
		}
	case ui.KeyC:
		if ctrl {
			e.Copy(cb)
			return true, false
		}
	case ui.KeyX:
		if ctrl {
			return true, e.Cut(cb)
		}
	case ui.KeyV:
		if ctrl {
			return true, e.Paste(cb)
		}
	}
	return false, false
}

// CursorX returns the x position of the cursor in pixels, relative to the
// unscrolled text origin.
func (e *EditState) CursorX(ctx *ui.Context, font graphics.FontID, size float64) float64 {
	return ctx.AdvanceWidth(e.Text[:e.Cursor], font, size)
}

// XToCursor returns the byte offset whose cursor position is closest to x,
// where x is relative to the unscrolled text origin.
func (e *EditState) XToCursor(x float64, ctx *ui.Context, font graphics.FontID, size float64) int {
	bestPos := 0
	bestDist := math.Inf(1)
	i := 0
	for {
		cx := ctx.AdvanceWidth(e.Text[:i], font, size)
		if d := math.Abs(cx - x); d < bestDist {
			bestDist = d
			bestPos = i
		}
		if i >= len(e.Text) {
			break
		}
		i = nextRune(e.Text, i)
	}
	return bestPos
}

// EnsureCursorVisible adjusts ScrollOffset so the cursor stays inside
// [0, innerWidth].
func (e *EditState) EnsureCursorVisible(innerWidth float64, ctx *ui.Context, font graphics.FontID, size float64) {
	cx := e.CursorX(ctx, font, size)
	if cx < e.ScrollOffset {
		e.ScrollOffset = cx
	} else if cx > e.ScrollOffset+innerWidth {
		e.ScrollOffset = cx - innerWidth
	}
	if e.ScrollOffset < 0 {
		e.ScrollOffset = 0
	}
}

// deleteSelection removes the selected range. Reports whether anything was
// deleted.
func (e *EditState) deleteSelection() bool {
	if !e.HasSelection() {
		return false
	}
	lo, hi := e.SelRange()
	e.Text = e.Text[:lo] + e.Text[hi:]
	e.Cursor = lo
	e.Anchor = lo
	return true
}

// prevRune steps one rune boundary backward from i.
func prevRune(s string, i int) int {
	if i <= 0 {
		return 0
	}
	_, n := utf8.DecodeLastRuneInString(s[:i])
	return i - n
}

// nextRune steps one rune boundary forward from i.
func nextRune(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	_, n := utf8.DecodeRuneInString(s[i:])
	return i + n
}

// prevWord skips whitespace backward, then the word before it.
func prevWord(s string, i int) int {
	for i > 0 {
		r, n := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsSpace(r) {
			break
		}
		i -= n
	}
	for i > 0 {
		r, n := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsSpace(r) {
			break
		}
		i -= n
	}
	return i
}

// nextWord skips the rest of the current word, then trailing whitespace.
func nextWord(s string, i int) int {
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			break
		}
		i += n
	}
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += n
	}
	return i
}
