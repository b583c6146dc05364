package input

import (
	"context"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"padnav/focus"
)

// scriptedPad replays a fixed sequence of snapshots, then reads neutral.
type scriptedPad struct {
	frames []GamepadSnapshot
	i      int
}

func (p *scriptedPad) Poll(s *focus.Session) GamepadSnapshot {
	var snap GamepadSnapshot
	if p.i < len(p.frames) {
		snap = p.frames[p.i]
		p.i++
	}
	if s != nil {
		s.SetDeviceConnected(snap.Connected)
	}
	return snap
}

func gridSession(t *testing.T) *focus.Session {
	t.Helper()
	cfg := focus.DefaultConfig()
	cfg.NavigationDelay = time.Nanosecond // keep ticks independent here
	s := focus.NewSession(cfg)
	s.Register(focus.Focusable{ID: "a", Pos: focus.Rect{X: 0, Y: 0, W: 10, H: 10}}, nil)
	s.Register(focus.Focusable{ID: "b", Pos: focus.Rect{X: 0, Y: 30, W: 10, H: 10}}, nil)
	return s
}

func TestDriverButtonNavigation(t *testing.T) {
	down := int(ebiten.StandardGamepadButtonLeftBottom)
	pad := &scriptedPad{frames: []GamepadSnapshot{
		pressedButton(down), // d-pad down held
		pressedButton(down), // still held: edge detector must swallow it
	}}
	d := &Driver{
		Gamepad: pad,
		Buttons: NewButtonTranslator(StandardBindings()),
	}
	s := gridSession(t)

	d.Update(s)
	if got := s.FocusedID(); got != "b" {
		t.Fatalf("after d-pad down: want b, got %q", got)
	}
	if !s.DeviceConnected() {
		t.Fatalf("poll must mark device connected")
	}

	d.Update(s)
	if got := s.FocusedID(); got != "b" {
		t.Fatalf("held d-pad must not navigate twice, got %q", got)
	}
}

func pressedButton(idx int) GamepadSnapshot {
	s := GamepadSnapshot{Connected: true, Buttons: make([]ButtonState, 17)}
	s.Buttons[idx] = ButtonState{Pressed: true, Value: 1}
	return s
}

func TestDriverStickNavigation(t *testing.T) {
	pad := &scriptedPad{frames: []GamepadSnapshot{
		snapWithAxes(0, 0.9),
		snapWithAxes(0, 0.9),
	}}
	d := &Driver{
		Gamepad: pad,
		Stick:   NewStickTranslator(0.5),
	}
	s := gridSession(t)

	d.Update(s)
	if got := s.FocusedID(); got != "b" {
		t.Fatalf("stick down: want b, got %q", got)
	}
	d.Update(s)
	if got := s.FocusedID(); got != "b" {
		t.Fatalf("held stick must not navigate twice, got %q", got)
	}
}

func TestDriverBackCallback(t *testing.T) {
	east := int(ebiten.StandardGamepadButtonRightRight)
	pad := &scriptedPad{frames: []GamepadSnapshot{pressedButton(east)}}
	var backs int
	d := &Driver{
		Gamepad: pad,
		Buttons: NewButtonTranslator(StandardBindings()),
		OnBack:  func() { backs++ },
	}
	d.Update(gridSession(t))
	if backs != 1 {
		t.Fatalf("want 1 back, got %d", backs)
	}
}

func TestDriverRunStopsOnCancel(t *testing.T) {
	d := &Driver{Gamepad: &scriptedPad{}}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		d.Run(ctx, gridSession(t), 240)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}
