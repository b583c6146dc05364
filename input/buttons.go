package input

// Binding maps a button index to the command it emits on press.
type Binding struct {
	Button int
	Cmd    Command
}

// ButtonTranslator emits a command on each rising edge of a bound button:
// pressed this poll, not pressed the previous one. Holding never repeats and
// release emits nothing, so one physical press is one logical command no
// matter how many polls it spans.
type ButtonTranslator struct {
	bindings []Binding
	prev     map[int]bool
}

func NewButtonTranslator(bindings []Binding) *ButtonTranslator {
	return &ButtonTranslator{
		bindings: bindings,
		prev:     make(map[int]bool),
	}
}

// Translate consumes one snapshot and returns the commands fired this tick,
// in binding order.
func (t *ButtonTranslator) Translate(snap GamepadSnapshot) []Command {
	if !snap.Connected {
		// Forget edge state so a reconnected pad can't replay a stale press.
		clear(t.prev)
		return nil
	}
	var out []Command
	for _, b := range t.bindings {
		down := snap.pressed(b.Button)
		if down && !t.prev[b.Button] {
			out = append(out, b.Cmd)
		}
		t.prev[b.Button] = down
	}
	return out
}
