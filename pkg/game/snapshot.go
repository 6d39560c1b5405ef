package game

import "github.com/qnkhuat/tetterm/pkg/mino"

// PieceView is a read-only copy of the falling piece.
type PieceView struct {
	Kind  mino.Kind
	Grid  mino.Grid
	X, Y  int
	Color mino.Color
}

// Cells returns the board coordinates of the piece's occupied cells.
func (p PieceView) Cells() []mino.Point {
	points := p.Grid.Occupied()
	for i := range points {
		points[i] = points[i].Add(mino.Point{X: p.X, Y: p.Y})
	}

	return points
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Board    mino.Board
	Piece    PieceView
	Next     mino.Kind
	Score    int
	Lines    int
	GameOver bool
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board: g.board,
		Piece: PieceView{
			Kind:  g.piece.Kind,
			Grid:  g.piece.Grid.Clone(),
			X:     g.piece.X,
			Y:     g.piece.Y,
			Color: g.piece.Color(),
		},
		Next:     g.source.Next(),
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.gameOver,
	}
}

// Composite returns the board with the falling piece drawn in. Piece cells
// outside the board are left out.
func (s Snapshot) Composite() mino.Board {
	b := s.Board
	for _, pt := range s.Piece.Cells() {
		b.Set(pt.X, pt.Y, mino.Filled(s.Piece.Color))
	}

	return b
}
