package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"padnav/focus"
)

// CommandForKey returns the command bound to k, if any. Arrows navigate,
// Enter/Space activate, Tab walks the sequential order, Escape is back.
func CommandForKey(k ebiten.Key, shift bool) (Command, bool) {
	switch k {
	case ebiten.KeyArrowUp:
		return Command{Kind: CmdNavigate, Dir: focus.DirUp}, true
	case ebiten.KeyArrowDown:
		return Command{Kind: CmdNavigate, Dir: focus.DirDown}, true
	case ebiten.KeyArrowLeft:
		return Command{Kind: CmdNavigate, Dir: focus.DirLeft}, true
	case ebiten.KeyArrowRight:
		return Command{Kind: CmdNavigate, Dir: focus.DirRight}, true
	case ebiten.KeyEnter, ebiten.KeySpace:
		return Command{Kind: CmdActivate}, true
	case ebiten.KeyTab:
		if shift {
			return Command{Kind: CmdFocusPrev}, true
		}
		return Command{Kind: CmdFocusNext}, true
	case ebiten.KeyEscape:
		return Command{Kind: CmdBack}, true
	}
	return Command{}, false
}

// Keyboard maps this frame's key presses to commands. Key events are already
// edge detected by inpututil, so no extra debounce is needed here.
type Keyboard struct {
	keys []ebiten.Key
}

// Commands returns the commands for the keys pressed this frame, one per
// physical keydown.
func (k *Keyboard) Commands() []Command {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	if len(k.keys) == 0 {
		return nil
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	var out []Command
	for _, key := range k.keys {
		if cmd, ok := CommandForKey(key, shift); ok {
			out = append(out, cmd)
		}
	}
	return out
}
