package gui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	log "github.com/sirupsen/logrus"

	"github.com/qnkhuat/tetterm/pkg/game"
	"github.com/qnkhuat/tetterm/pkg/mino"
)

const (
	boardCols = mino.Width*cellWidth + 2
	boardRows = mino.Height + 2
	sideCols  = 26
)

type GUI struct {
	App    *tview.Application
	Layout *tview.Grid
	Board  *tview.Box
	Side   *tview.Box
	help   *tview.TextView

	State *GameState
}

func New(gs *GameState) *GUI {
	app := tview.NewApplication()

	board := tview.NewBox().
		SetBorder(true).
		SetTitle(" tetterm ").
		SetBorderColor(gs.Theme.Border)

	side := tview.NewBox().
		SetBorder(true).
		SetTitle(" Score ").
		SetBorderColor(gs.Theme.Border)

	help := tview.NewTextView().
		SetDynamicColors(true).
		SetText(helpText)
	help.SetBorder(true).
		SetTitle(" Help ").
		SetBorderColor(gs.Theme.Border)

	layout := tview.NewGrid().
		SetRows(-1, 14, boardRows-14, -1).
		SetColumns(-1, boardCols, sideCols, -1).
		AddItem(board, 1, 1, 2, 1, 0, 0, true).
		AddItem(side, 1, 2, 1, 1, 0, 0, false).
		AddItem(help, 2, 2, 1, 1, 0, 0, false)

	g := &GUI{
		App:    app,
		Layout: layout,
		Board:  board,
		Side:   side,
		help:   help,
		State:  gs,
	}

	board.SetDrawFunc(func(s tcell.Screen, x, y, w, h int) (int, int, int, int) {
		drawBoard(s, x+1, y+1, g.State.Snap, g.State.Theme)
		return board.GetInnerRect()
	})
	side.SetDrawFunc(func(s tcell.Screen, x, y, w, h int) (int, int, int, int) {
		drawSide(s, x+2, y+1, g.State.Snap, g.State.Name, g.State.Theme)
		return side.GetInnerRect()
	})

	app.SetInputCapture(g.handleKey)

	return g
}

// handleKey runs on the event goroutine, as does every other engine call.
func (g *GUI) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	a, ok := actionFor(ev)
	if !ok {
		return nil
	}

	if a == game.ActionQuit {
		log.Debug("Quit requested")
		g.App.Stop()
		return nil
	}

	g.State.Apply(a)

	return nil
}

// poll wakes every PollInterval and queues a tick check onto the event
// goroutine until ctx is done.
func (g *GUI) poll(ctx context.Context) {
	ticker := time.NewTicker(game.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			g.App.QueueUpdateDraw(func() {
				g.State.Advance(now)
			})
		}
	}
}

// Run blocks until the player quits or ctx is cancelled.
func (g *GUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.WithFields(log.Fields{
		"clock": g.State.Game.Clock(),
		"piece": g.State.Game.Piece(),
	}).Debug("Game loop started")

	go g.poll(ctx)
	go func() {
		<-ctx.Done()
		g.App.Stop()
	}()

	return g.App.SetRoot(g.Layout, true).SetFocus(g.Board).Run()
}
