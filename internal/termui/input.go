package termui

import (
	"github.com/gdamore/tcell/v2"

	"tilekernel/internal/vec"
)

// Action is a non-movement player request the host's main loop reacts to.
type Action uint8

const (
	ActionNone Action = iota
	ActionWait
	ActionPickup
	ActionInventory
	ActionMenu
	ActionPause
	ActionQuit
)

// Input turns tcell key events into a Direction (NoDir for non-movement
// keys) and an Action, the way Game.MovePlayer and the host main loop
// expect. Movement uses the roguelike vi-keys convention alongside arrows.
type Input struct{}

// NewInput creates an Input adapter. It carries no state of its own.
func NewInput() Input { return Input{} }

// Resolve maps a key event to the direction to move in (vec.NoDir if none)
// and the action requested.
func (Input) Resolve(ev *tcell.EventKey) (vec.Direction, Action) {
	switch ev.Key() {
	case tcell.KeyUp:
		return vec.Up, ActionNone
	case tcell.KeyDown:
		return vec.Down, ActionNone
	case tcell.KeyLeft:
		return vec.Left, ActionNone
	case tcell.KeyRight:
		return vec.Right, ActionNone
	case tcell.KeyEscape:
		return vec.NoDir, ActionQuit
	}

	switch ev.Rune() {
	case 'k', 'K':
		return vec.Up, ActionNone
	case 'j', 'J':
		return vec.Down, ActionNone
	case 'l', 'L':
		return vec.Right, ActionNone
	case 'h', 'H':
		return vec.Left, ActionNone
	case 'y', 'Y':
		return vec.DLUp, ActionNone
	case 'u', 'U':
		return vec.DRUp, ActionNone
	case 'b', 'B':
		return vec.DLDown, ActionNone
	case 'n', 'N':
		return vec.DRDown, ActionNone
	case '.':
		return vec.NoDir, ActionWait
	case ',':
		return vec.NoDir, ActionPickup
	case 'i', 'I':
		return vec.NoDir, ActionInventory
	case 'm', 'M':
		return vec.NoDir, ActionMenu
	case 'p', 'P':
		return vec.NoDir, ActionPause
	case 'q', 'Q':
		return vec.NoDir, ActionQuit
	}
	return vec.NoDir, ActionNone
}
