package focus

import (
	"sync"
	"time"
)

// Haptics is an optional feedback sink pulsed on focus changes.
type Haptics interface {
	Pulse()
}

// Session owns the focus state for one UI root: the registry, the focused id
// and the navigation throttle. Construct one per window and pass it to the
// widgets and input layer; there is no package-level singleton, so multiple
// independent sessions can coexist.
//
// All methods are safe for concurrent use; a single mutex guards the focused
// id while the registry carries its own. Handlers are invoked outside any
// lock.
type Session struct {
	mu        sync.Mutex
	cfg       Config
	reg       *Registry
	focusedID string
	lastNav   time.Time
	connected bool

	haptics        Haptics
	onFocusChanged func(old, new string)

	now func() time.Time
}

// NewSession creates a session with cfg. Zero-value config fields fall back
// to the defaults.
func NewSession(cfg Config) *Session {
	return &Session{
		cfg: cfg.withDefaults(),
		reg: NewRegistry(),
		now: time.Now,
	}
}

// Config returns the session's effective configuration.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Registry exposes the underlying registry, e.g. for direct position updates
// from a layout pass.
func (s *Session) Registry() *Registry { return s.reg }

// SetHaptics installs the feedback sink pulsed on focus changes. Honored
// only while the session config enables haptics.
func (s *Session) SetHaptics(h Haptics) {
	s.mu.Lock()
	s.haptics = h
	s.mu.Unlock()
}

// OnFocusChanged installs a callback fired after every focus transition with
// the old and new ids ("" meaning none). Consumers use it to move platform
// focus or scroll the new element into view.
func (s *Session) OnFocusChanged(fn func(old, new string)) {
	s.mu.Lock()
	s.onFocusChanged = fn
	s.mu.Unlock()
}

// Register mounts an element. The first enabled registration auto-focuses
// when nothing holds focus yet, unless the config suppresses it.
// Re-registering a focused element as disabled clears focus, keeping the
// invariant that the focused id always names an enabled record.
func (s *Session) Register(f Focusable, h Handler) {
	s.reg.Register(f, h)

	s.mu.Lock()
	focused := s.focusedID
	auto := focused == "" && !s.cfg.DisableAutoFocus
	s.mu.Unlock()

	if f.Disabled && focused == f.ID {
		s.clearFocus(f.ID)
		return
	}
	if auto {
		if first := FindClosest(nil, DirDown, s.reg.Snapshot()); first != nil {
			s.setFocus(first.ID)
		}
	}
}

// Unregister unmounts an element, clearing focus if it held it. Register and
// Unregister are a strict pair over the element's mounted lifetime.
func (s *Session) Unregister(id string) {
	s.reg.Unregister(id)
	s.clearFocus(id)
}

// UpdatePosition refreshes an element's rect after a layout change.
func (s *Session) UpdatePosition(id string, pos Rect) {
	s.reg.UpdatePosition(id, pos)
}

// SetFocus moves focus directly to id. Unknown or disabled targets are
// silently ignored; a bad focus request must never wedge the UI.
func (s *Session) SetFocus(id string) {
	rec, ok := s.reg.Get(id)
	if !ok || rec.Disabled {
		return
	}
	s.setFocus(id)
}

// Navigate resolves one discrete navigation command. Commands arriving
// within NavigationDelay of the last accepted one are dropped, not queued.
// The focused element's OnNavigate gets first refusal; if it consumes the
// direction no focus change occurs.
func (s *Session) Navigate(dir Direction) {
	s.mu.Lock()
	now := s.now()
	if !s.lastNav.IsZero() && now.Sub(s.lastNav) < s.cfg.NavigationDelay {
		s.mu.Unlock()
		return
	}
	focused := s.focusedID
	mode := s.cfg.Mode
	s.mu.Unlock()

	var from *Focusable
	if focused != "" {
		if rec, ok := s.reg.Get(focused); ok {
			from = &rec
			if h := s.reg.handler(focused); h != nil && h.OnNavigate(dir) {
				s.stampNav(now)
				return
			}
		}
	}

	var next *Focusable
	candidates := s.reg.Snapshot()
	switch mode {
	case ModeSequential:
		if dir == DirDown || dir == DirRight {
			next = NextSequential(from, candidates)
		} else {
			next = PrevSequential(from, candidates)
		}
	default:
		next = FindClosest(from, dir, candidates)
	}
	if next == nil {
		return
	}
	s.stampNav(now)
	s.setFocus(next.ID)
}

// FocusNext moves to the next element in reading order, wrapping past the
// end. Always sequential regardless of the session mode (Tab semantics).
func (s *Session) FocusNext() { s.step(NextSequential) }

// FocusPrevious mirrors FocusNext.
func (s *Session) FocusPrevious() { s.step(PrevSequential) }

func (s *Session) step(fn func(*Focusable, []Focusable) *Focusable) {
	s.mu.Lock()
	focused := s.focusedID
	s.mu.Unlock()

	var from *Focusable
	if focused != "" {
		if rec, ok := s.reg.Get(focused); ok {
			from = &rec
		}
	}
	if next := fn(from, s.reg.Snapshot()); next != nil {
		s.setFocus(next.ID)
	}
}

// Activate invokes the focused element's action. No-op when nothing is
// focused or the record is disabled.
func (s *Session) Activate() {
	s.mu.Lock()
	focused := s.focusedID
	s.mu.Unlock()
	if focused == "" {
		return
	}
	rec, ok := s.reg.Get(focused)
	if !ok || rec.Disabled {
		return
	}
	if h := s.reg.handler(focused); h != nil {
		h.OnActivate()
	}
}

// FocusedID returns the focused element's id, or "" when nothing is focused.
func (s *Session) FocusedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focusedID
}

// DeviceConnected reports whether a gamepad is currently attached.
func (s *Session) DeviceConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// SetDeviceConnected records gamepad attach/detach. A state change, never an
// error; keyboard input keeps working either way.
func (s *Session) SetDeviceConnected(v bool) {
	s.mu.Lock()
	s.connected = v
	s.mu.Unlock()
}

func (s *Session) setFocus(id string) {
	s.mu.Lock()
	old := s.focusedID
	if old == id {
		s.mu.Unlock()
		return
	}
	s.focusedID = id
	cb := s.onFocusChanged
	hap := s.haptics
	buzz := s.cfg.Haptics
	s.mu.Unlock()

	if cb != nil {
		cb(old, id)
	}
	if buzz && hap != nil {
		hap.Pulse()
	}
}

func (s *Session) clearFocus(old string) {
	s.mu.Lock()
	if s.focusedID != old {
		s.mu.Unlock()
		return
	}
	s.focusedID = ""
	cb := s.onFocusChanged
	s.mu.Unlock()

	if cb != nil {
		cb(old, "")
	}
}

func (s *Session) stampNav(t time.Time) {
	s.mu.Lock()
	s.lastNav = t
	s.mu.Unlock()
}
