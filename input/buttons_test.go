package input

import (
	"testing"

	"padnav/focus"
)

func navCmd(d focus.Direction) Command { return Command{Kind: CmdNavigate, Dir: d} }

func snapWithButtons(pressed ...bool) GamepadSnapshot {
	s := GamepadSnapshot{Connected: true, Buttons: make([]ButtonState, len(pressed))}
	for i, p := range pressed {
		s.Buttons[i] = ButtonState{Pressed: p, Value: 1}
	}
	return s
}

func TestButtonTranslatorRisingEdgeOnly(t *testing.T) {
	tr := NewButtonTranslator([]Binding{{Button: 0, Cmd: Command{Kind: CmdActivate}}})

	// Two pressed polls in a row: exactly one command.
	if got := tr.Translate(snapWithButtons(true)); len(got) != 1 || got[0].Kind != CmdActivate {
		t.Fatalf("first press: got %v", got)
	}
	if got := tr.Translate(snapWithButtons(true)); len(got) != 0 {
		t.Fatalf("held button must not repeat, got %v", got)
	}

	// Release emits nothing; a new press fires again.
	if got := tr.Translate(snapWithButtons(false)); len(got) != 0 {
		t.Fatalf("release must emit nothing, got %v", got)
	}
	if got := tr.Translate(snapWithButtons(true)); len(got) != 1 {
		t.Fatalf("re-press must fire again, got %v", got)
	}
}

func TestButtonTranslatorBindingOrder(t *testing.T) {
	tr := NewButtonTranslator([]Binding{
		{Button: 1, Cmd: navCmd(focus.DirDown)},
		{Button: 0, Cmd: Command{Kind: CmdActivate}},
	})
	got := tr.Translate(snapWithButtons(true, true))
	if len(got) != 2 || got[0] != navCmd(focus.DirDown) || got[1].Kind != CmdActivate {
		t.Fatalf("commands must follow binding order, got %v", got)
	}
}

func TestButtonTranslatorDisconnectResetsEdges(t *testing.T) {
	tr := NewButtonTranslator([]Binding{{Button: 0, Cmd: Command{Kind: CmdActivate}}})
	tr.Translate(snapWithButtons(true))

	// Pad unplugged mid-hold, then replugged still held: that's a fresh edge.
	if got := tr.Translate(GamepadSnapshot{}); len(got) != 0 {
		t.Fatalf("disconnected snapshot must emit nothing, got %v", got)
	}
	if got := tr.Translate(snapWithButtons(true)); len(got) != 1 {
		t.Fatalf("press after reconnect must fire, got %v", got)
	}
}

func TestButtonTranslatorUnboundAndMissingButtons(t *testing.T) {
	tr := NewButtonTranslator([]Binding{{Button: 7, Cmd: Command{Kind: CmdActivate}}})
	// Snapshot shorter than the bound index: treated as not pressed.
	if got := tr.Translate(snapWithButtons(true)); len(got) != 0 {
		t.Fatalf("missing button index must read unpressed, got %v", got)
	}
}
