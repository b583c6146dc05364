package widget

import "image/color"

// Theme defines the palette shared by the focusable widgets.
type Theme struct {
	Surface    color.NRGBA // widget body
	Background color.NRGBA // panel/screen fill
	Border     color.NRGBA // resting border
	FocusRing  color.NRGBA // border while focused
	Highlight  color.NRGBA // selection row / pressed state

	TextPrimary  color.NRGBA
	TextMuted    color.NRGBA
	TextDisabled color.NRGBA
}

// DefaultTheme is a dark panel palette with a gold focus ring.
func DefaultTheme() *Theme {
	return &Theme{
		Surface:    color.NRGBA{25, 25, 35, 255},
		Background: color.NRGBA{15, 15, 20, 255},
		Border:     color.NRGBA{60, 60, 70, 255},
		FocusRing:  color.NRGBA{255, 215, 0, 220},
		Highlight:  color.NRGBA{255, 215, 0, 90},

		TextPrimary:  color.NRGBA{240, 240, 250, 255},
		TextMuted:    color.NRGBA{160, 160, 175, 255},
		TextDisabled: color.NRGBA{100, 100, 110, 255},
	}
}
