package input

import (
	"math"
	"time"

	"padnav/focus"
)

// StickTranslator turns analog stick deflection into discrete directions.
//
// The default policy is strict edge detection: a command fires only when the
// stick enters a new direction, and holding it emits nothing until it drops
// back through the deadzone. Setting Repeat switches to the menu-navigation
// feel where a held deflection re-fires every RepeatDelay. One policy per
// navigable surface; mixing them feels inconsistent.
type StickTranslator struct {
	Deadzone    float64
	AxisX       int
	AxisY       int
	Repeat      bool
	RepeatDelay time.Duration

	last     focus.Direction
	active   bool
	lastEmit time.Time
	now      func() time.Time
}

// NewStickTranslator builds a translator over axes 0/1 (standard left
// stick). Out-of-range deadzones fall back to the default.
func NewStickTranslator(deadzone float64) *StickTranslator {
	if deadzone <= 0 || deadzone >= 1 {
		deadzone = focus.DefaultDeadzone
	}
	return &StickTranslator{
		Deadzone:    deadzone,
		AxisX:       0,
		AxisY:       1,
		RepeatDelay: focus.DefaultNavigationDelay,
		now:         time.Now,
	}
}

// Translate consumes one snapshot and returns at most one navigation
// command. Axis values within the deadzone read as zero; the dominant axis
// decides the direction.
func (t *StickTranslator) Translate(snap GamepadSnapshot) (Command, bool) {
	if !snap.Connected {
		t.active = false
		return Command{}, false
	}

	x := snap.axis(t.AxisX)
	y := snap.axis(t.AxisY)
	if math.Abs(x) <= t.Deadzone {
		x = 0
	}
	if math.Abs(y) <= t.Deadzone {
		y = 0
	}
	if x == 0 && y == 0 {
		t.active = false
		return Command{}, false
	}

	var dir focus.Direction
	if math.Abs(x) > math.Abs(y) {
		dir = focus.DirRight
		if x < 0 {
			dir = focus.DirLeft
		}
	} else {
		dir = focus.DirDown
		if y < 0 {
			dir = focus.DirUp
		}
	}

	fire := !t.active || dir != t.last
	if !fire && t.Repeat && t.now().Sub(t.lastEmit) >= t.RepeatDelay {
		fire = true
	}
	t.active = true
	t.last = dir
	if !fire {
		return Command{}, false
	}
	t.lastEmit = t.now()
	return Command{Kind: CmdNavigate, Dir: dir}, true
}
