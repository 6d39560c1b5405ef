package mino

import (
	"fmt"
	"strings"
)

// Grid is a square occupancy grid indexed [row][column]. true marks an
// occupied cell.
type Grid [][]bool

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return len(g)
}

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i := range g {
		c[i] = make([]bool, len(g[i]))
		copy(c[i], g[i])
	}

	return c
}

func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}

	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}

	return true
}

// RotateClockwise returns a new grid turned 90 degrees clockwise. The
// receiver is not modified.
func (g Grid) RotateClockwise() Grid {
	n := len(g)

	rotated := make(Grid, n)
	for i := range rotated {
		rotated[i] = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rotated[j][n-1-i] = g[i][j]
		}
	}

	return rotated
}

// Occupied returns the grid-relative coordinates of occupied cells, row by row.
func (g Grid) Occupied() []Point {
	var points []Point
	for r, row := range g {
		for c, filled := range row {
			if filled {
				points = append(points, Point{c, r})
			}
		}
	}

	return points
}

func (g Grid) String() string {
	var b strings.Builder
	for r, row := range g {
		if r > 0 {
			b.WriteRune('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteRune('X')
			} else {
				b.WriteRune('.')
			}
		}
	}

	return b.String()
}

// Piece is the live, falling piece.
type Piece struct {
	Kind Kind
	Grid Grid

	// Origin of the grid on the board. Unoccupied grid cells may lie outside
	// the board.
	X, Y int
}

// NewPiece returns a piece of kind k at its spawn position: horizontally
// centered, top row at 0.
func NewPiece(k Kind) *Piece {
	g := Shape(k)

	return &Piece{
		Kind: k,
		Grid: g,
		X:    (Width - g.Size()) / 2,
		Y:    0,
	}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.Kind, p.X, p.Y)
}

// Color returns the color of the piece's kind.
func (p *Piece) Color() Color {
	return p.Kind.Color()
}

// RotateClockwise returns the piece's grid turned clockwise without applying it.
func (p *Piece) RotateClockwise() Grid {
	return p.Grid.RotateClockwise()
}

// Cells returns the board coordinates of every occupied cell.
func (p *Piece) Cells() []Point {
	points := p.Grid.Occupied()
	for i := range points {
		points[i] = points[i].Add(Point{p.X, p.Y})
	}

	return points
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	return &Piece{Kind: p.Kind, Grid: p.Grid.Clone(), X: p.X, Y: p.Y}
}
