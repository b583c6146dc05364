package input

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"padnav/focus"
)

// StandardBindings cover the standard gamepad layout: d-pad navigates, the
// bottom face button activates, the right face button is back.
func StandardBindings() []Binding {
	return []Binding{
		{Button: int(ebiten.StandardGamepadButtonLeftTop), Cmd: Command{Kind: CmdNavigate, Dir: focus.DirUp}},
		{Button: int(ebiten.StandardGamepadButtonLeftBottom), Cmd: Command{Kind: CmdNavigate, Dir: focus.DirDown}},
		{Button: int(ebiten.StandardGamepadButtonLeftLeft), Cmd: Command{Kind: CmdNavigate, Dir: focus.DirLeft}},
		{Button: int(ebiten.StandardGamepadButtonLeftRight), Cmd: Command{Kind: CmdNavigate, Dir: focus.DirRight}},
		{Button: int(ebiten.StandardGamepadButtonRightBottom), Cmd: Command{Kind: CmdActivate}},
		{Button: int(ebiten.StandardGamepadButtonRightRight), Cmd: Command{Kind: CmdBack}},
	}
}

// Gamepad tracks the first connected standard-layout pad and captures one
// immutable snapshot per poll. An absent or non-standard pad degrades to a
// zero snapshot; nothing here ever errors, gamepads are optional hardware.
type Gamepad struct {
	id    ebiten.GamepadID
	found bool
	ids   []ebiten.GamepadID
}

// Poll captures this frame's snapshot and keeps the session's connected flag
// in sync with the hardware.
func (g *Gamepad) Poll(s *focus.Session) GamepadSnapshot {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])

	if g.found && inpututil.IsGamepadJustDisconnected(g.id) {
		g.found = false
	}
	if !g.found {
		for _, id := range g.ids {
			if ebiten.IsStandardGamepadLayoutAvailable(id) {
				g.id = id
				g.found = true
				break
			}
		}
	}
	if s != nil {
		s.SetDeviceConnected(g.found)
	}
	if !g.found {
		return GamepadSnapshot{}
	}

	snap := GamepadSnapshot{
		Connected: true,
		Buttons:   make([]ButtonState, int(ebiten.StandardGamepadButtonMax)+1),
		Axes:      make([]float64, int(ebiten.StandardGamepadAxisMax)+1),
	}
	for b := range snap.Buttons {
		sb := ebiten.StandardGamepadButton(b)
		snap.Buttons[b] = ButtonState{
			Pressed: ebiten.IsStandardGamepadButtonPressed(g.id, sb),
			Value:   ebiten.StandardGamepadButtonValue(g.id, sb),
		}
	}
	for a := range snap.Axes {
		snap.Axes[a] = ebiten.StandardGamepadAxisValue(g.id, ebiten.StandardGamepadAxis(a))
	}
	return snap
}

// Connected reports whether a pad is currently tracked.
func (g *Gamepad) Connected() bool { return g.found }

// Rumble fires a vibration on the tracked pad, if any.
func (g *Gamepad) Rumble(d time.Duration, strong, weak float64) {
	if !g.found {
		return
	}
	ebiten.VibrateGamepad(g.id, &ebiten.VibrateGamepadOptions{
		Duration:        d,
		StrongMagnitude: strong,
		WeakMagnitude:   weak,
	})
}

// Pulse implements focus.Haptics with a short click of feedback.
func (g *Gamepad) Pulse() {
	g.Rumble(60*time.Millisecond, 0, 0.4)
}
