package widgets

import (
	"math"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/theme"
	"github.com/go-keel/keel/pkg/ui"
)

const (
	scrollBarWidth = 6.0
	minThumbHeight = 24.0
)

// ScrollView is a scrollable single-child container.
//
// The child is measured at the viewport width with unbounded height to get
// its content height; the view clips the child to the viewport, translates
// it by the scroll offset, and optionally draws a proportional scrollbar
// thumb outside the clip.
//
// The offset is clamped to [0, max(0, contentHeight-viewportHeight)] on
// every mutation. Wheel and keyboard scrolling share one clamp-and-notify
// path; OnScroll fires only when the offset actually changes.
type ScrollView struct {
	Child ui.Element
	// LineHeight is the pixel distance of one wheel line or arrow key step.
	LineHeight float64
	// ShowScrollbar draws the scrollbar when content overflows.
	ShowScrollbar bool
	// OnScroll is called with the new offset when it changes.
	OnScroll func(offset float64)
	// Theme overrides the scrollbar colors; nil uses theme.Default.
	Theme *theme.Theme

	offset float64
	// Content height from this frame's measure/paint, reused by the event
	// pass. One frame of staleness is acceptable.
	contentHeight  float64
	viewportHeight float64
}

// NewScrollView wraps child in a ScrollView with a 24px line step and a
// visible scrollbar.
func NewScrollView(child ui.Widget) *ScrollView {
	return &ScrollView{
		Child:         ui.NewElement(child),
		LineHeight:    24,
		ShowScrollbar: true,
	}
}

// Offset returns the current scroll offset.
func (s *ScrollView) Offset() float64 {
	return s.offset
}

// ScrollTo moves to offset, clamped against the most recent content height.
func (s *ScrollView) ScrollTo(offset float64) {
	s.applyScroll(offset-s.offset, s.contentHeight, s.viewportHeight)
}

func (s *ScrollView) measureContent(viewportWidth float64, ctx *ui.Context) graphics.Size {
	c := layout.Loose(graphics.Size{Width: viewportWidth, Height: layout.Unbounded})
	return s.Child.Measure(c, ctx)
}

func (s *ScrollView) clampedOffset(viewportHeight float64) float64 {
	max := math.Max(0, s.contentHeight-viewportHeight)
	return math.Min(max, math.Max(0, s.offset))
}

func (s *ScrollView) contentRect(rect graphics.Rect) graphics.Rect {
	offset := s.clampedOffset(rect.Height())
	return graphics.RectFromLTWH(rect.Left, rect.Top-offset, rect.Width(), s.contentHeight)
}

func (s *ScrollView) Measure(constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	maxW := 0.0
	if constraints.HasBoundedWidth() {
		maxW = constraints.MaxWidth
	}
	content := s.measureContent(maxW, ctx)
	s.contentHeight = content.Height

	h := content.Height
	if constraints.HasBoundedHeight() {
		h = math.Min(h, constraints.MaxHeight)
	}
	w := content.Width
	if constraints.HasBoundedWidth() {
		w = math.Min(w, constraints.MaxWidth)
	}
	return constraints.Constrain(graphics.Size{Width: w, Height: h})
}

func (s *ScrollView) Paint(p *ui.Painter, rect graphics.Rect) {
	// Remeasure inside paint so the cached content height is fresh.
	content := s.measureContent(rect.Width(), p.Layout())
	s.contentHeight = content.Height
	s.viewportHeight = rect.Height()
	s.offset = s.clampedOffset(rect.Height())

	p.PushClip(rect)
	s.Child.Paint(p, s.contentRect(rect))
	p.PopClip()

	// Scrollbar outside the clip so it is always visible.
	if track, thumb, ok := s.scrollbarRects(rect); ok {
		th := s.Theme
		if th == nil {
			th = theme.Default()
		}
		p.FillRoundedRect(track, scrollBarWidth/2, graphics.Solid(th.ScrollBar.TrackColor), graphics.Border{})
		p.FillRoundedRect(thumb, scrollBarWidth/2, graphics.Solid(th.ScrollBar.ThumbColor), graphics.Border{})
	}
}

func (s *ScrollView) scrollbarRects(rect graphics.Rect) (track, thumb graphics.Rect, ok bool) {
	if !s.ShowScrollbar || s.contentHeight <= rect.Height() || rect.Height() <= 0 {
		return graphics.Rect{}, graphics.Rect{}, false
	}
	barX := rect.Right - scrollBarWidth
	track = graphics.RectFromLTWH(barX, rect.Top, scrollBarWidth, rect.Height())

	ratio := rect.Height() / s.contentHeight
	thumbH := math.Max(minThumbHeight, rect.Height()*ratio)
	scrollRange := s.contentHeight - rect.Height()
	offset := s.clampedOffset(rect.Height())
	thumbY := rect.Top + (offset/scrollRange)*(rect.Height()-thumbH)
	thumb = graphics.RectFromLTWH(barX, thumbY, scrollBarWidth, thumbH)
	return track, thumb, true
}

func (s *ScrollView) OnEvent(event ui.Event, rect graphics.Rect, ctx *ui.Context) ui.EventResult {
	switch e := event.(type) {
	case ui.ScrollEvent:
		// Positive delta scrolls down, revealing content below.
		s.applyScroll(e.Delta*s.LineHeight, s.contentHeight, rect.Height())
		return ui.Consumed

	case ui.KeyEvent:
		// Child first: a focused nested editable widget consumes navigation
		// keys before the scroll view intercepts them.
		if s.Child.OnEvent(event, s.contentRect(rect), ctx).IsConsumed() {
			return ui.Consumed
		}
		page := rect.Height() * 0.9
		switch e.Key {
		case ui.KeyArrowDown:
			s.applyScroll(s.LineHeight, s.contentHeight, rect.Height())
		case ui.KeyArrowUp:
			s.applyScroll(-s.LineHeight, s.contentHeight, rect.Height())
		case ui.KeyPageDown:
			s.applyScroll(page, s.contentHeight, rect.Height())
		case ui.KeyPageUp:
			s.applyScroll(-page, s.contentHeight, rect.Height())
		case ui.KeyHome:
			s.applyScroll(math.Inf(-1), s.contentHeight, rect.Height())
		case ui.KeyEnd:
			s.applyScroll(math.Inf(1), s.contentHeight, rect.Height())
		default:
			return ui.Ignored
		}
		return ui.Consumed

	default:
		// Everything else routes to the child in content-space coordinates.
		return s.Child.OnEvent(event, s.contentRect(rect), ctx)
	}
}

// applyScroll is the single clamp-and-notify path shared by wheel,
// keyboard, and programmatic scrolling.
func (s *ScrollView) applyScroll(delta, contentHeight, viewportHeight float64) {
	max := math.Max(0, contentHeight-viewportHeight)
	prev := s.offset
	next := s.offset + delta
	if next < 0 || math.IsInf(next, -1) {
		next = 0
	}
	if next > max || math.IsInf(next, 1) {
		next = max
	}
	s.offset = next
	if s.offset != prev && s.OnScroll != nil {
		s.OnScroll(s.offset)
	}
}
