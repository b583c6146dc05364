package input

import (
	"context"
	"time"

	"padnav/focus"
)

// SnapshotSource supplies one gamepad snapshot per tick. *Gamepad is the
// hardware-backed implementation; tests substitute scripted sources.
type SnapshotSource interface {
	Poll(*focus.Session) GamepadSnapshot
}

// Driver runs the per-tick input pipeline in a fixed order: gamepad buttons,
// then stick, then keyboard, then the remote source. Within one tick every
// stage sees the same snapshot and navigation decisions never interleave.
//
// Call Update once per rendered frame from the host's update loop, or Run
// for hosts without a frame callback.
type Driver struct {
	Gamepad  SnapshotSource
	Buttons  *ButtonTranslator
	Stick    *StickTranslator
	Keyboard *Keyboard
	Remote   *RemoteSource

	// OnBack fires when a back command arrives (pad east button, Escape).
	OnBack func()
}

// NewDriver wires the default pipeline for cfg: hardware gamepad, standard
// bindings, left stick with the configured deadzone, keyboard. The remote
// source stays nil until attached.
func NewDriver(cfg focus.Config) *Driver {
	return &Driver{
		Gamepad:  &Gamepad{},
		Buttons:  NewButtonTranslator(StandardBindings()),
		Stick:    NewStickTranslator(cfg.Deadzone),
		Keyboard: &Keyboard{},
	}
}

// Update runs one input tick against the session.
func (d *Driver) Update(s *focus.Session) {
	var snap GamepadSnapshot
	if d.Gamepad != nil {
		snap = d.Gamepad.Poll(s)
	}
	if d.Buttons != nil {
		for _, cmd := range d.Buttons.Translate(snap) {
			d.apply(cmd, s)
		}
	}
	if d.Stick != nil {
		if cmd, ok := d.Stick.Translate(snap); ok {
			d.apply(cmd, s)
		}
	}
	if d.Keyboard != nil {
		for _, cmd := range d.Keyboard.Commands() {
			d.apply(cmd, s)
		}
	}
	if d.Remote != nil {
		for _, cmd := range d.Remote.Pending() {
			d.apply(cmd, s)
		}
	}
}

func (d *Driver) apply(cmd Command, s *focus.Session) {
	if cmd.Kind == CmdBack {
		if d.OnBack != nil {
			d.OnBack()
		}
		return
	}
	cmd.Apply(s)
}

// Run drives Update from a ticker for hosts without a frame callback, at tps
// ticks per second (60 when tps <= 0). It returns when ctx is cancelled, so
// no polling loop can outlive its session.
func (d *Driver) Run(ctx context.Context, s *focus.Session, tps int) {
	if tps <= 0 {
		tps = 60
	}
	tick := time.NewTicker(time.Second / time.Duration(tps))
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			d.Update(s)
		}
	}
}
