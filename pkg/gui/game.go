package gui

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/qnkhuat/tetterm/pkg/game"
)

// Player plays a cue for what a tick did.
type Player interface {
	Play(r game.Result)
}

type silent struct{}

func (silent) Play(game.Result) {}

// GameState is everything the screen is drawn from. It is only touched from
// the application's event goroutine.
type GameState struct {
	Game  *game.Game
	Snap  game.Snapshot
	Theme Theme
	Name  string
	Sound Player
}

func NewGameState(g *game.Game, name string, t Theme, p Player) *GameState {
	if p == nil {
		p = silent{}
	}

	return &GameState{
		Game:  g,
		Snap:  g.Snapshot(),
		Theme: t,
		Name:  name,
		Sound: p,
	}
}

// Advance runs a tick when one is due and reports whether the screen needs a
// redraw.
func (gs *GameState) Advance(now time.Time) bool {
	r, ticked := gs.Game.Advance(now)
	if !ticked {
		return false
	}

	gs.report(r)
	gs.Snap = gs.Game.Snapshot()

	return true
}

// Apply runs a movement action and reports whether it changed anything.
func (gs *GameState) Apply(a game.Action) bool {
	if !gs.Game.Apply(a) {
		return false
	}

	gs.Snap = gs.Game.Snapshot()

	return true
}

func (gs *GameState) report(r game.Result) {
	if !r.Locked {
		return
	}

	gs.Sound.Play(r)

	fields := log.Fields{
		"pieces":  gs.Game.Pieces(),
		"score":   gs.Game.Score(),
		"spawned": gs.Game.Piece(),
	}
	if r.Cleared > 0 {
		log.WithFields(fields).Debugf("Cleared %d lines for %d points", r.Cleared, r.Awarded)
	} else {
		log.WithFields(fields).Debug("Piece locked")
	}

	if r.GameOver {
		log.WithFields(fields).WithField("lines", gs.Game.Lines()).Info("Game over")
	}
}
