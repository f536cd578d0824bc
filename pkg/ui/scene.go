package ui

import (
	"github.com/go-keel/keel/pkg/errors"
	"github.com/go-keel/keel/pkg/focus"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/text"
)

// Scene is the top-level coordinator that owns shared state across frames:
// the reused draw list and the focus manager.
//
// Per frame, in order: clear the draw list; apply Tab/Shift+Tab/Escape so
// paint reflects the correct focus highlighting; measure the root loosely
// against the viewport; paint into the full-viewport rect; dispatch the
// frame's events in a fixed sequence; finalize focus and deliver synthetic
// focus-gained/focus-lost events.
//
// The returned draw list is valid until the next Frame/FrameRef call. The
// renderer consumes it via ItemsInPaintOrder.
type Scene struct {
	// DrawList holds the most recent frame's draw commands. Exposed so the
	// embedding application can hand it to its renderer.
	DrawList graphics.DrawList
	// Focus tracks keyboard focus across frames.
	Focus *focus.Manager

	measurer text.Measurer
}

// NewScene creates a scene that measures text through m. Pass nil for a
// scene whose text always measures as zero (headless layout).
func NewScene(m text.Measurer) *Scene {
	return &Scene{
		Focus:    focus.NewManager(),
		measurer: m,
	}
}

// Frame lays out, paints, and routes events for a tree built fresh this
// frame. The root is consumed; use FrameRef for trees that carry state
// across frames.
func (s *Scene) Frame(root Element, viewport graphics.Size, input *Input) *graphics.DrawList {
	return s.FrameRef(&root, viewport, input)
}

// FrameRef is like Frame but borrows a tree the caller keeps alive across
// frames, so widget state (selection, scroll offsets) persists.
func (s *Scene) FrameRef(root *Element, viewport graphics.Size, input *Input) *graphics.DrawList {
	defer errors.Recover("ui.Scene.FrameRef")

	if input == nil {
		input = &Input{}
	}
	s.DrawList.Clear()
	ctx := NewContext(s.measurer, s.Focus)

	// Focus pre-pass. Tab cycles through the order registered by the
	// previous paint, so highlighting is correct in this frame's paint.
	for _, kp := range input.Keys {
		switch kp.Key {
		case KeyTab:
			s.Focus.Advance(kp.Mods.Shift)
		case KeyEscape:
			s.Focus.Clear()
		}
	}
	s.Focus.BeginFrame()

	// Pre-pass: let children compute their natural sizes. The root itself
	// always occupies the full viewport, so its measured size is unused.
	_ = root.Measure(layout.Loose(viewport), ctx)
	rect := graphics.RectFromLTWH(0, 0, viewport.Width, viewport.Height)

	painter := NewPainter(&s.DrawList, ctx, s.Focus, input)
	root.Paint(painter, rect)

	// Events, each routed root-down independently.
	root.OnEvent(HoverEvent{Pos: input.CursorPos}, rect, ctx)
	if input.Dragging {
		root.OnEvent(DragEvent{Pos: input.CursorPos, Start: input.DragStart}, rect, ctx)
	}
	if input.DragEnded {
		root.OnEvent(DragEndEvent{Pos: input.CursorPos, Start: input.DragStart}, rect, ctx)
	}
	if input.Clicked {
		root.OnEvent(ClickEvent{Pos: input.CursorPos}, rect, ctx)
	}
	for _, t := range input.Text {
		root.OnEvent(TextInputEvent{Text: t}, rect, ctx)
	}
	for _, kp := range input.Keys {
		root.OnEvent(KeyEvent{Key: kp.Key, Mods: kp.Mods}, rect, ctx)
	}
	if input.ScrollDelta != 0 {
		root.OnEvent(ScrollEvent{Delta: input.ScrollDelta}, rect, ctx)
	}

	// Focus resolution and synthetic transition events.
	s.Focus.EndFrame()
	if id := s.Focus.JustLost(); id != 0 {
		root.OnEvent(FocusLostEvent{ID: id}, rect, ctx)
	}
	if id := s.Focus.JustGained(); id != 0 {
		root.OnEvent(FocusGainedEvent{ID: id}, rect, ctx)
	}

	return &s.DrawList
}
