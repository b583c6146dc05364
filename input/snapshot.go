package input

// ButtonState is one button's sampled state.
type ButtonState struct {
	Pressed bool
	Value   float64
}

// GamepadSnapshot is one poll of a pad. A fresh snapshot is captured every
// tick and never mutated afterwards; translators only ever read it.
type GamepadSnapshot struct {
	Connected bool
	Buttons   []ButtonState
	Axes      []float64 // each in [-1, 1]
}

func (s GamepadSnapshot) pressed(i int) bool {
	return i >= 0 && i < len(s.Buttons) && s.Buttons[i].Pressed
}

func (s GamepadSnapshot) axis(i int) float64 {
	if i < 0 || i >= len(s.Axes) {
		return 0
	}
	return s.Axes[i]
}
