package widgets

import (
	"math"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/theme"
	"github.com/go-keel/keel/pkg/ui"
)

const sliderDefaultWidth = 200.0

// Slider selects a value in [Min, Max] by dragging a thumb along a
// horizontal track.
//
// The slider whose rect contains the drag's start position owns the gesture:
// it keeps receiving drag updates even when the cursor leaves the rect, and
// no other slider reacts. OnDrag fires on every move; OnChange fires once
// when the drag is released.
type Slider struct {
	Value float64
	Min   float64
	Max   float64

	TrackHeight  float64
	ThumbRadius  float64
	CornerRadius float64
	Theme        *theme.Theme

	OnDrag   func(float64)
	OnChange func(float64)
}

// NewSlider creates a Slider over [0, 1] with the default track metrics.
func NewSlider() *Slider {
	return &Slider{Max: 1, TrackHeight: 4, ThumbRadius: 8, CornerRadius: 2}
}

// normalized returns Value mapped into [0, 1].
func (s *Slider) normalized() float64 {
	if math.Abs(s.Max-s.Min) < 1e-9 {
		return 0
	}
	t := (s.Value - s.Min) / (s.Max - s.Min)
	return math.Min(1, math.Max(0, t))
}

func (s *Slider) valueAt(x float64, rect graphics.Rect) float64 {
	if rect.Width() <= 0 {
		return s.Min
	}
	t := (x - rect.Left) / rect.Width()
	t = math.Min(1, math.Max(0, t))
	return s.Min + t*(s.Max-s.Min)
}

func (s *Slider) Measure(constraints layout.Constraints, _ *ui.Context) graphics.Size {
	w := sliderDefaultWidth
	if constraints.HasBoundedWidth() {
		w = constraints.MaxWidth
	}
	return constraints.Constrain(graphics.Size{Width: w, Height: s.ThumbRadius * 2})
}

func (s *Slider) Paint(p *ui.Painter, rect graphics.Rect) {
	th := s.Theme
	if th == nil {
		th = theme.Default()
	}
	cy := rect.Top + rect.Height()/2

	track := graphics.RectFromLTWH(rect.Left, cy-s.TrackHeight/2, rect.Width(), s.TrackHeight)
	p.FillRoundedRect(track, s.CornerRadius, graphics.Solid(th.Slider.TrackColor), graphics.Border{})

	thumbX := track.Left + s.normalized()*track.Width()
	if fillW := thumbX - track.Left; fillW > 0 {
		fill := graphics.RectFromLTWH(track.Left, track.Top, fillW, track.Height())
		p.FillRoundedRect(fill, s.CornerRadius, graphics.Solid(th.Slider.FillColor), graphics.Border{})
	}

	r := s.ThumbRadius
	if p.Hovered(rect) {
		r += 1.5
	}
	p.FillCircle(graphics.Offset{X: thumbX, Y: cy}, r,
		graphics.Solid(th.Slider.ThumbColor), graphics.NewBorder(2, th.Slider.ThumbBorder))
}

func (s *Slider) OnEvent(event ui.Event, rect graphics.Rect, _ *ui.Context) ui.EventResult {
	switch e := event.(type) {
	case ui.DragEvent:
		if !rect.Contains(e.Start) {
			return ui.Ignored
		}
		s.Value = s.valueAt(e.Pos.X, rect)
		if s.OnDrag != nil {
			s.OnDrag(s.Value)
		}
		return ui.Consumed
	case ui.DragEndEvent:
		// Fires regardless of where the cursor ended up; the start guard
		// keeps the commit with the slider that owns the gesture.
		if !rect.Contains(e.Start) {
			return ui.Ignored
		}
		s.Value = s.valueAt(e.Pos.X, rect)
		if s.OnDrag != nil {
			s.OnDrag(s.Value)
		}
		if s.OnChange != nil {
			s.OnChange(s.Value)
		}
		return ui.Consumed
	}
	return ui.Ignored
}
