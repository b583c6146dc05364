package widget

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"padnav/focus"
)

// TextField is a focusable single-line input. While focused it consumes
// Left/Right navigation to move the caret, surrendering only at the ends so
// spatial navigation can leave the field sideways.
type TextField struct {
	ID            string
	X, Y          int
	Width, Height int
	Placeholder   string
	Theme         *Theme

	value   []rune
	caret   int
	session *focus.Session
	chars   []rune
}

func NewTextField(id string, x, y, w, h int, placeholder string, theme *Theme) *TextField {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &TextField{
		ID:          id,
		X:           x,
		Y:           y,
		Width:       w,
		Height:      h,
		Placeholder: placeholder,
		Theme:       theme,
	}
}

// Attach registers the field with s.
func (t *TextField) Attach(s *focus.Session) {
	t.session = s
	s.Register(focus.Focusable{ID: t.ID, Pos: t.Bounds()}, t)
}

// Detach unregisters the field.
func (t *TextField) Detach() {
	if t.session != nil {
		t.session.Unregister(t.ID)
		t.session = nil
	}
}

// Bounds returns the field rect in the session's coordinate space.
func (t *TextField) Bounds() focus.Rect {
	return focus.Rect{X: float64(t.X), Y: float64(t.Y), W: float64(t.Width), H: float64(t.Height)}
}

// Value returns the current text.
func (t *TextField) Value() string { return string(t.value) }

// SetValue replaces the text and clamps the caret.
func (t *TextField) SetValue(s string) {
	t.value = []rune(s)
	if t.caret > len(t.value) {
		t.caret = len(t.value)
	}
}

// Focused reports whether the session currently focuses this field.
func (t *TextField) Focused() bool {
	return t.session != nil && t.session.FocusedID() == t.ID
}

// OnActivate implements focus.Handler; the caret is live whenever the field
// is focused, so activation has nothing extra to do.
func (t *TextField) OnActivate() {}

// OnNavigate implements focus.Handler: Left/Right move the caret and consume
// the input until it reaches an end of the text.
func (t *TextField) OnNavigate(dir focus.Direction) bool {
	if !t.Focused() {
		return false
	}
	switch dir {
	case focus.DirLeft:
		if t.caret > 0 {
			t.caret--
			return true
		}
	case focus.DirRight:
		if t.caret < len(t.value) {
			t.caret++
			return true
		}
	}
	return false
}

// Update consumes typed characters and editing keys while focused. Call once
// per frame.
func (t *TextField) Update() {
	if !t.Focused() {
		return
	}

	t.chars = ebiten.AppendInputChars(t.chars[:0])
	for _, r := range t.chars {
		t.insert(r)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && t.caret > 0 {
		t.value = append(t.value[:t.caret-1], t.value[t.caret:]...)
		t.caret--
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if pasted, err := clipboard.ReadAll(); err == nil {
			for _, r := range pasted {
				if r != '\n' && r != '\r' {
					t.insert(r)
				}
			}
		} else {
			// Atotto needs a clipboard backend on Linux (xclip/xsel).
			log.Println("clipboard paste failed:", err)
		}
	}
}

func (t *TextField) insert(r rune) {
	t.value = append(t.value[:t.caret], append([]rune{r}, t.value[t.caret:]...)...)
	t.caret++
}

// Draw renders the field with its caret while focused.
func (t *TextField) Draw(screen *ebiten.Image) {
	x, y := float32(t.X), float32(t.Y)
	w, h := float32(t.Width), float32(t.Height)

	vector.DrawFilledRect(screen, x, y, w, h, t.Theme.Surface, true)
	borderColor := t.Theme.Border
	if t.Focused() {
		borderColor = t.Theme.FocusRing
	}
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, true)

	shown := string(t.value)
	col := t.Theme.TextPrimary
	if shown == "" {
		shown = t.Placeholder
		col = t.Theme.TextMuted
	}
	ty := t.Y + (t.Height+10)/2
	text.Draw(screen, shown, basicfont.Face7x13, t.X+6, ty, col)

	if t.Focused() {
		caretX := t.X + 6 + 7*t.caret // Face7x13 advance is 7px
		vector.DrawFilledRect(screen, float32(caretX), float32(t.Y+4), 1, h-8, t.Theme.TextPrimary, true)
	}
}
