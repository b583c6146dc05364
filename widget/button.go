package widget

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"padnav/focus"
)

// Button is a focus-aware menu button. Attach registers it with a session;
// the focus ring is drawn whenever the session reports it focused.
type Button struct {
	ID            string
	X, Y          int
	Width, Height int
	Label         string
	Disabled      bool
	Priority      int
	Group         string
	Theme         *Theme
	OnPress       func()

	session *focus.Session
}

func NewButton(id string, x, y, w, h int, label string, theme *Theme, onPress func()) *Button {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Button{
		ID:     id,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Label:  label,
		Theme:  theme,
		OnPress: onPress,
	}
}

// Attach registers the button with s. Call Detach on unmount; the pair is
// strict.
func (b *Button) Attach(s *focus.Session) {
	b.session = s
	s.Register(b.record(), b)
}

// Detach unregisters the button.
func (b *Button) Detach() {
	if b.session != nil {
		b.session.Unregister(b.ID)
		b.session = nil
	}
}

func (b *Button) record() focus.Focusable {
	return focus.Focusable{
		ID:       b.ID,
		Pos:      b.Bounds(),
		Group:    b.Group,
		Disabled: b.Disabled,
		Priority: b.Priority,
	}
}

// Bounds returns the button rect in the session's coordinate space.
func (b *Button) Bounds() focus.Rect {
	return focus.Rect{X: float64(b.X), Y: float64(b.Y), W: float64(b.Width), H: float64(b.Height)}
}

// Move repositions the button and refreshes its registration.
func (b *Button) Move(x, y int) {
	b.X, b.Y = x, y
	if b.session != nil {
		b.session.UpdatePosition(b.ID, b.Bounds())
	}
}

// SetDisabled flips the disabled flag and re-registers so the session sees
// the change.
func (b *Button) SetDisabled(disabled bool) {
	b.Disabled = disabled
	if b.session != nil {
		b.session.Register(b.record(), b)
	}
}

// Contains reports whether a point is within the button bounds.
func (b *Button) Contains(x, y int) bool {
	return b.Bounds().Contains(float64(x), float64(y))
}

// Focused reports whether the session currently focuses this button.
func (b *Button) Focused() bool {
	return b.session != nil && b.session.FocusedID() == b.ID
}

// OnActivate implements focus.Handler.
func (b *Button) OnActivate() {
	if b.Disabled {
		return
	}
	if b.OnPress != nil {
		b.OnPress()
	}
}

// OnNavigate implements focus.Handler; buttons never consume navigation.
func (b *Button) OnNavigate(focus.Direction) bool { return false }

// Draw renders the button, with a glow ring while focused.
func (b *Button) Draw(screen *ebiten.Image) {
	x, y := float32(b.X), float32(b.Y)
	w, h := float32(b.Width), float32(b.Height)

	vector.DrawFilledRect(screen, x, y, w, h, b.Theme.Surface, true)

	borderColor := b.Theme.Border
	borderWidth := float32(2)
	if b.Focused() {
		borderColor = b.Theme.FocusRing
		borderWidth = 3
		// Outer ring for the focused element.
		vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, b.Theme.Highlight, true)
	}
	vector.StrokeRect(screen, x, y, w, h, borderWidth, borderColor, true)

	labelColor := b.Theme.TextPrimary
	if b.Disabled {
		labelColor = b.Theme.TextDisabled
	}
	bounds := text.BoundString(basicfont.Face7x13, b.Label)
	tx := b.X + (b.Width-bounds.Dx())/2
	ty := b.Y + (b.Height+bounds.Dy())/2
	text.Draw(screen, b.Label, basicfont.Face7x13, tx, ty, labelColor)
}
