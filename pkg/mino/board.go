package mino

import "strings"

const (
	Width  = 10
	Height = 20
)

// Cell is the state of one board square. The zero value is Empty; any other
// value is a filled cell carrying its color.
type Cell int

const Empty Cell = 0

// Filled returns a filled cell of color c. ColorNone is stored as
// ColorGarbage so a filled cell never reads as Empty.
func Filled(c Color) Cell {
	if c == ColorNone {
		c = ColorGarbage
	}
	return Cell(c)
}

func (c Cell) Empty() bool  { return c == Empty }
func (c Cell) Color() Color { return Color(c) }

// Board is the playfield, indexed [row][column] with row 0 at the top.
type Board [Height][Width]Cell

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Cell returns the cell at (x, y). Coordinates outside the board read as Empty.
func (b *Board) Cell(x, y int) Cell {
	if !inBounds(x, y) {
		return Empty
	}

	return b[y][x]
}

// Set stores c at (x, y) and reports whether the coordinate was on the board.
func (b *Board) Set(x, y int, c Cell) bool {
	if !inBounds(x, y) {
		return false
	}

	b[y][x] = c
	return true
}

// IsValidPosition reports whether grid g can sit with its origin at (x, y).
// Occupied cells must be within the side walls and above the floor; cells
// above the top edge are allowed and not checked against the board.
func (b *Board) IsValidPosition(g Grid, x, y int) bool {
	for r, row := range g {
		for c, filled := range row {
			if !filled {
				continue
			}

			bx := x + c
			by := y + r

			if bx < 0 || bx >= Width || by >= Height {
				return false
			}

			if by >= 0 && !b[by][bx].Empty() {
				return false
			}
		}
	}

	return true
}

// Place writes the piece into the board. Cells outside the board are dropped.
func (b *Board) Place(p *Piece) {
	cell := Filled(p.Color())
	for _, pt := range p.Cells() {
		b.Set(pt.X, pt.Y, cell)
	}
}

// RowFull reports whether every cell of row y is filled.
func (b *Board) RowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if b[y][x].Empty() {
			return false
		}
	}

	return true
}

// ClearFullLines removes full rows, shifting everything above them down, and
// returns the number of rows removed. The sweep runs bottom-up and stops
// before row 0, so a full top row is never removed.
func (b *Board) ClearFullLines() int {
	cleared := 0

	y := Height - 1
	for y > 0 {
		if !b.RowFull(y) {
			y--
			continue
		}

		for row := y; row > 0; row-- {
			b[row] = b[row-1]
		}
		b[0] = [Width]Cell{}

		cleared++
	}

	return cleared
}

// Filled returns the number of filled cells.
func (b *Board) Filled() int {
	n := 0
	for y := range b {
		for x := range b[y] {
			if !b[y][x].Empty() {
				n++
			}
		}
	}

	return n
}

func (b *Board) String() string {
	var s strings.Builder
	for y := range b {
		if y > 0 {
			s.WriteRune('\n')
		}
		for x := range b[y] {
			if b[y][x].Empty() {
				s.WriteRune('.')
			} else {
				s.WriteRune('#')
			}
		}
	}

	return s.String()
}
