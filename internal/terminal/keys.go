package terminal

import (
	"roomba/internal/movement"

	"github.com/gdamore/tcell/v2"
)

// directionForKey maps arrow keys, WASD and hjkl onto a direction
func directionForKey(ev *tcell.EventKey) movement.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return movement.North
	case tcell.KeyRight:
		return movement.East
	case tcell.KeyDown:
		return movement.South
	case tcell.KeyLeft:
		return movement.West
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return movement.North
		case 'd', 'l':
			return movement.East
		case 's', 'j':
			return movement.South
		case 'a', 'h':
			return movement.West
		}
	}
	return movement.None
}

// isQuitKey reports Escape, Ctrl-C and q
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// KeyIntents buffers the keys pressed since the last tick and turns them
// into intent flags on the player when the tick starts.
type KeyIntents struct {
	pending movement.Intent
}

// HandleKey records a direction key. It returns false for other keys.
func (ki *KeyIntents) HandleKey(ev *tcell.EventKey) bool {
	dir := directionForKey(ev)
	if dir == movement.None {
		return false
	}
	ki.pending.Set(dir)
	return true
}

// ApplyIntent moves the buffered flags onto e
func (ki *KeyIntents) ApplyIntent(e *movement.Entity) {
	p := ki.pending
	e.Intent.North = e.Intent.North || p.North
	e.Intent.East = e.Intent.East || p.East
	e.Intent.South = e.Intent.South || p.South
	e.Intent.West = e.Intent.West || p.West
	ki.pending.Clear()
}
