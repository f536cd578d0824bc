// Package theme centralizes the default colors the interactive widgets use.
// Widgets hold a *Theme pointer; nil means [Default].
package theme

import "github.com/go-keel/keel/pkg/graphics"

// ButtonTheme styles a Button's background across interaction states.
type ButtonTheme struct {
	Background      graphics.Color
	HoverBackground graphics.Color
	PressBackground graphics.Color
	TextColor       graphics.Color
	CornerRadius    float64
}

// CheckboxTheme styles a Checkbox and its label.
type CheckboxTheme struct {
	LabelColor   graphics.Color
	BoxColor     graphics.Color
	CheckedColor graphics.Color
	BorderColor  graphics.Color
	HoverBorder  graphics.Color
	MarkColor    graphics.Color
}

// ToggleTheme styles a Toggle switch.
type ToggleTheme struct {
	OnColor    graphics.Color
	OffColor   graphics.Color
	ThumbColor graphics.Color
}

// SliderTheme styles a Slider track and thumb.
type SliderTheme struct {
	TrackColor  graphics.Color
	FillColor   graphics.Color
	ThumbColor  graphics.Color
	ThumbBorder graphics.Color
}

// RadioTheme styles a RadioGroup's circles and labels.
type RadioTheme struct {
	LabelColor    graphics.Color
	SelectedColor graphics.Color
	BorderColor   graphics.Color
	CircleColor   graphics.Color
}

// ProgressTheme styles a ProgressBar.
type ProgressTheme struct {
	TrackColor graphics.Color
	FillColor  graphics.Color
}

// TextBoxTheme styles a TextBox across focus states.
type TextBoxTheme struct {
	TextColor          graphics.Color
	PlaceholderColor   graphics.Color
	Background         graphics.Color
	FocusedBackground  graphics.Color
	BorderColor        graphics.Color
	FocusedBorderColor graphics.Color
	SelectionColor     graphics.Color
	CursorColor        graphics.Color
}

// ScrollBarTheme styles a ScrollView's scrollbar.
type ScrollBarTheme struct {
	TrackColor graphics.Color
	ThumbColor graphics.Color
}

// Theme bundles the per-widget themes.
type Theme struct {
	Button    ButtonTheme
	Checkbox  CheckboxTheme
	Toggle    ToggleTheme
	Slider    SliderTheme
	Radio     RadioTheme
	Progress  ProgressTheme
	TextBox   TextBoxTheme
	ScrollBar ScrollBarTheme
	FocusRing graphics.Color
}

var defaultTheme = &Theme{
	Button: ButtonTheme{
		TextColor:    graphics.ColorWhite,
		CornerRadius: 4,
	},
	Checkbox: CheckboxTheme{
		LabelColor:   graphics.RGB(0xD9, 0xD9, 0xE6),
		BoxColor:     graphics.RGB(0x1A, 0x1F, 0x2E),
		CheckedColor: graphics.RGB(0x33, 0xA6, 0xFF),
		BorderColor:  graphics.RGB(0x59, 0x73, 0x99),
		HoverBorder:  graphics.RGB(0x99, 0xB3, 0xE6),
		MarkColor:    graphics.ColorWhite,
	},
	Toggle: ToggleTheme{
		OnColor:    graphics.RGB(0x1A, 0xB3, 0x73),
		OffColor:   graphics.RGB(0x33, 0x40, 0x59),
		ThumbColor: graphics.ColorWhite,
	},
	Slider: SliderTheme{
		TrackColor:  graphics.RGB(0x26, 0x33, 0x4D),
		FillColor:   graphics.RGB(0x33, 0x99, 0xFF),
		ThumbColor:  graphics.ColorWhite,
		ThumbBorder: graphics.RGB(0x66, 0x99, 0xE6),
	},
	Radio: RadioTheme{
		LabelColor:    graphics.RGB(0xD9, 0xD9, 0xE6),
		SelectedColor: graphics.RGB(0x33, 0xA6, 0xFF),
		BorderColor:   graphics.RGB(0x59, 0x73, 0x99),
		CircleColor:   graphics.RGB(0x1A, 0x1F, 0x2E),
	},
	Progress: ProgressTheme{
		TrackColor: graphics.RGB(0x26, 0x33, 0x4D),
		FillColor:  graphics.RGB(0x33, 0xA6, 0xFF),
	},
	TextBox: TextBoxTheme{
		TextColor:          graphics.RGB(0xE6, 0xEB, 0xF2),
		PlaceholderColor:   graphics.RGB(0x59, 0x73, 0x8C),
		Background:         graphics.RGB(0x0F, 0x1A, 0x29),
		FocusedBackground:  graphics.RGB(0x12, 0x24, 0x38),
		BorderColor:        graphics.RGB(0x2E, 0x47, 0x6B),
		FocusedBorderColor: graphics.RGB(0x00, 0xAB, 0xFF),
		SelectionColor:     graphics.RGBA(0x1A, 0x66, 0xE6, 0x66),
		CursorColor:        graphics.ColorWhite,
	},
	ScrollBar: ScrollBarTheme{
		TrackColor: graphics.RGBA(0x26, 0x26, 0x26, 0xCC),
		ThumbColor: graphics.RGBA(0x8C, 0x8C, 0x8C, 0xE6),
	},
	FocusRing: graphics.RGB(0x00, 0xAB, 0xFF),
}

// Default returns the shared default theme. Callers must not mutate it;
// copy it to customize.
func Default() *Theme {
	return defaultTheme
}
