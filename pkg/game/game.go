package game

import (
	"time"

	"github.com/qnkhuat/tetterm/pkg/mino"
)

type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case GameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// Result describes what a tick did.
type Result struct {
	Moved    bool // piece fell one row
	Locked   bool // piece was committed to the board
	Cleared  int  // rows removed by this lock
	Awarded  int  // points added by this lock
	GameOver bool // the game ended during this tick
}

// Game owns the board, the falling piece and the score.
//
// A Game is not safe for concurrent use. Every call, including Snapshot,
// must come from the same goroutine or be serialized by the caller.
type Game struct {
	board  mino.Board
	piece  *mino.Piece
	source mino.Source
	clock  *Clock

	score    int
	lines    int
	pieces   int
	gameOver bool
}

type Option func(*Game)

// WithBoard starts the game on a pre-filled board.
func WithBoard(b mino.Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

// WithStart sets the time the first tick interval is measured from.
func WithStart(t time.Time) Option {
	return func(g *Game) {
		g.clock.Reset(t)
	}
}

// New starts a game drawing pieces from src. The first piece is spawned with
// the same check as every later one, so a blocked board starts over.
func New(src mino.Source, opts ...Option) *Game {
	g := &Game{
		source: src,
		clock:  NewClock(TickRate, time.Now()),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.spawn()

	return g
}

func (g *Game) State() State {
	if g.gameOver {
		return GameOver
	}

	return Running
}

func (g *Game) GameOver() bool { return g.gameOver }
func (g *Game) Score() int     { return g.score }
func (g *Game) Lines() int     { return g.lines }

// Pieces returns how many pieces have spawned, the current one included.
func (g *Game) Pieces() int { return g.pieces }

// LastTick returns the time of the last tick taken through Advance.
func (g *Game) LastTick() time.Time { return g.clock.LastTick }

// Clock returns a copy of the tick clock.
func (g *Game) Clock() *Clock {
	cl := *g.clock
	return &cl
}

// Board returns a copy of the board.
func (g *Game) Board() mino.Board { return g.board }

// Piece returns a copy of the falling piece.
func (g *Game) Piece() *mino.Piece { return g.piece.Clone() }

// Advance ticks when a full TickRate has elapsed since the last tick. The
// second return value reports whether a tick happened.
func (g *Game) Advance(now time.Time) (Result, bool) {
	if !g.clock.Due(now) {
		return Result{}, false
	}

	g.clock.Reset(now)

	return g.Tick(), true
}

// Tick applies gravity once. A piece that cannot fall is locked, full rows are
// cleared and scored, and the next piece is spawned.
func (g *Game) Tick() Result {
	var r Result
	if g.gameOver {
		return r
	}

	if g.move(0, 1) {
		r.Moved = true
		return r
	}

	g.board.Place(g.piece)
	r.Locked = true

	r.Cleared = g.board.ClearFullLines()
	r.Awarded = Points(r.Cleared)
	g.score += r.Awarded
	g.lines += r.Cleared

	g.spawn()
	r.GameOver = g.gameOver

	return r
}

func (g *Game) MoveLeft() bool  { return g.move(-1, 0) }
func (g *Game) MoveRight() bool { return g.move(1, 0) }
func (g *Game) SoftDrop() bool  { return g.move(0, 1) }

// Rotate turns the piece clockwise, nudging it one column left or right when
// it does not fit in place. The piece is unchanged when nothing fits.
func (g *Game) Rotate() bool {
	if g.gameOver {
		return false
	}

	grid, x, ok := rotation(&g.board, g.piece)
	if !ok {
		return false
	}

	g.piece.Grid = grid
	g.piece.X = x

	return true
}

// Apply runs a movement action. ActionQuit belongs to the caller and is not
// handled here.
func (g *Game) Apply(a Action) bool {
	switch a {
	case ActionMoveLeft:
		return g.MoveLeft()
	case ActionMoveRight:
		return g.MoveRight()
	case ActionSoftDrop:
		return g.SoftDrop()
	case ActionRotate:
		return g.Rotate()
	default:
		return false
	}
}

// kicks are the horizontal offsets tried, in order, when rotating.
var kicks = []int{0, -1, 1}

// rotation returns the rotated grid and the origin column of the first kick
// that fits.
func rotation(b *mino.Board, p *mino.Piece) (mino.Grid, int, bool) {
	rotated := p.RotateClockwise()

	for _, dx := range kicks {
		if b.IsValidPosition(rotated, p.X+dx, p.Y) {
			return rotated, p.X + dx, true
		}
	}

	return nil, p.X, false
}

func (g *Game) move(dx, dy int) bool {
	if g.gameOver {
		return false
	}

	x := g.piece.X + dx
	y := g.piece.Y + dy

	if !g.board.IsValidPosition(g.piece.Grid, x, y) {
		return false
	}

	g.piece.X = x
	g.piece.Y = y

	return true
}

func (g *Game) spawn() {
	g.piece = mino.NewPiece(g.source.Take())
	g.pieces++

	if !g.board.IsValidPosition(g.piece.Grid, g.piece.X, g.piece.Y) {
		g.gameOver = true
	}
}
