package input

import "padnav/focus"

// CommandKind classifies a discrete input decision.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdNavigate
	CmdActivate
	CmdFocusNext
	CmdFocusPrev
	CmdBack
)

// Command is one discrete, debounced decision produced by a translator.
type Command struct {
	Kind CommandKind
	Dir  focus.Direction // valid for CmdNavigate only
}

// Apply routes the command into the session. CmdBack is application-level
// and handled by the Driver, not here.
func (c Command) Apply(s *focus.Session) {
	if s == nil {
		return
	}
	switch c.Kind {
	case CmdNavigate:
		s.Navigate(c.Dir)
	case CmdActivate:
		s.Activate()
	case CmdFocusNext:
		s.FocusNext()
	case CmdFocusPrev:
		s.FocusPrevious()
	}
}
