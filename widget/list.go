package widget

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"padnav/focus"
)

const listRowH = 20

// List is a vertical scrolling list that consumes Up/Down while its cursor
// can still move, then surrenders focus at its boundary. The standard
// interception consumer for the focus engine.
type List struct {
	ID            string
	X, Y          int
	Width, Height int
	Items         []string
	Theme         *Theme
	OnSelect      func(i int, item string)

	cursor  int
	scroll  int
	session *focus.Session
}

func NewList(id string, x, y, w, h int, items []string, theme *Theme) *List {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &List{
		ID:     id,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Items:  items,
		Theme:  theme,
	}
}

// Attach registers the list with s.
func (l *List) Attach(s *focus.Session) {
	l.session = s
	s.Register(focus.Focusable{ID: l.ID, Pos: l.Bounds()}, l)
}

// Detach unregisters the list.
func (l *List) Detach() {
	if l.session != nil {
		l.session.Unregister(l.ID)
		l.session = nil
	}
}

// Bounds returns the list rect in the session's coordinate space.
func (l *List) Bounds() focus.Rect {
	return focus.Rect{X: float64(l.X), Y: float64(l.Y), W: float64(l.Width), H: float64(l.Height)}
}

// Cursor returns the highlighted row index.
func (l *List) Cursor() int { return l.cursor }

// Focused reports whether the session currently focuses this list.
func (l *List) Focused() bool {
	return l.session != nil && l.session.FocusedID() == l.ID
}

func (l *List) visibleRows() int {
	n := l.Height / listRowH
	if n < 1 {
		n = 1
	}
	return n
}

// OnNavigate implements focus.Handler: Up/Down move the cursor and consume
// the input until it hits the first or last item.
func (l *List) OnNavigate(dir focus.Direction) bool {
	switch dir {
	case focus.DirDown:
		if l.cursor < len(l.Items)-1 {
			l.cursor++
			l.scrollToCursor()
			return true
		}
	case focus.DirUp:
		if l.cursor > 0 {
			l.cursor--
			l.scrollToCursor()
			return true
		}
	}
	return false
}

// OnActivate implements focus.Handler, selecting the highlighted item.
func (l *List) OnActivate() {
	if l.OnSelect == nil || l.cursor >= len(l.Items) {
		return
	}
	l.OnSelect(l.cursor, l.Items[l.cursor])
}

func (l *List) scrollToCursor() {
	if l.cursor < l.scroll {
		l.scroll = l.cursor
	}
	if max := l.scroll + l.visibleRows() - 1; l.cursor > max {
		l.scroll = l.cursor - l.visibleRows() + 1
	}
}

// Draw renders the visible window of items.
func (l *List) Draw(screen *ebiten.Image) {
	x, y := float32(l.X), float32(l.Y)
	w, h := float32(l.Width), float32(l.Height)

	vector.DrawFilledRect(screen, x, y, w, h, l.Theme.Surface, true)
	borderColor := l.Theme.Border
	if l.Focused() {
		borderColor = l.Theme.FocusRing
	}
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, true)

	end := l.scroll + l.visibleRows()
	if end > len(l.Items) {
		end = len(l.Items)
	}
	for i := l.scroll; i < end; i++ {
		rowY := l.Y + (i-l.scroll)*listRowH
		if i == l.cursor {
			vector.DrawFilledRect(screen, x+2, float32(rowY)+2, w-4, listRowH-2, l.Theme.Highlight, true)
		}
		text.Draw(screen, l.Items[i], basicfont.Face7x13, l.X+6, rowY+14, l.Theme.TextPrimary)
	}
}
