package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetterm/pkg/game"
)

var keyActions = map[tcell.Key]game.Action{
	tcell.KeyLeft:   game.ActionMoveLeft,
	tcell.KeyRight:  game.ActionMoveRight,
	tcell.KeyDown:   game.ActionSoftDrop,
	tcell.KeyUp:     game.ActionRotate,
	tcell.KeyEscape: game.ActionQuit,
	tcell.KeyCtrlC:  game.ActionQuit,
}

var runeActions = map[rune]game.Action{
	'h': game.ActionMoveLeft,
	'l': game.ActionMoveRight,
	'j': game.ActionSoftDrop,
	'k': game.ActionRotate,
	'x': game.ActionRotate,
	'q': game.ActionQuit,
	'Q': game.ActionQuit,
}

// actionFor maps a key press to a game action.
func actionFor(ev *tcell.EventKey) (game.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := runeActions[ev.Rune()]
		return a, ok
	}

	a, ok := keyActions[ev.Key()]
	return a, ok
}

const helpText = `[::b]Controls[::-]
←/h  move left
→/l  move right
↓/j  soft drop
↑/k/x  rotate
q/Esc  quit`
