package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < Width; x++ {
		if !skip[x] {
			b[y][x] = Filled(ColorGarbage)
		}
	}
}

func TestFilledNeverEmpty(t *testing.T) {
	assert.False(t, Filled(ColorNone).Empty())
	assert.Equal(t, ColorGarbage, Filled(ColorNone).Color())

	for c := ColorCyan; c <= ColorGarbage; c++ {
		cell := Filled(c)
		assert.False(t, cell.Empty(), c.String())
		assert.Equal(t, c, cell.Color(), c.String())
	}
	assert.True(t, Empty.Empty())
}

func TestIsValidPositionBounds(t *testing.T) {
	var b Board
	o := Shape(O)

	assert.True(t, b.IsValidPosition(o, 0, 0))
	assert.True(t, b.IsValidPosition(o, Width-2, Height-2))

	assert.False(t, b.IsValidPosition(o, -1, 0), "left wall")
	assert.False(t, b.IsValidPosition(o, Width-1, 0), "right wall")
	assert.False(t, b.IsValidPosition(o, 0, Height-1), "floor")

	// Rows above the board are allowed.
	assert.True(t, b.IsValidPosition(o, 4, -2))
	assert.True(t, b.IsValidPosition(o, 4, -1))
	assert.False(t, b.IsValidPosition(o, -1, -2), "wall still applies above the board")
}

func TestIsValidPositionIgnoresEmptyGridCells(t *testing.T) {
	var b Board

	// Column 3 of the vertical I is the only occupied column.
	vertical := Shape(I).RotateClockwise()
	assert.True(t, b.IsValidPosition(vertical, -3, 0))
	assert.True(t, b.IsValidPosition(vertical, Width-4, 0))
	assert.False(t, b.IsValidPosition(vertical, -4, 0))
	assert.False(t, b.IsValidPosition(vertical, Width-3, 0))
}

func TestIsValidPositionOutOfBoundsRegardlessOfContents(t *testing.T) {
	var full Board
	for y := 0; y < Height; y++ {
		fillRow(&full, y)
	}
	var empty Board

	o := Shape(O)
	for _, b := range []*Board{&empty, &full} {
		assert.False(t, b.IsValidPosition(o, -1, 3))
		assert.False(t, b.IsValidPosition(o, Width-1, 3))
		assert.False(t, b.IsValidPosition(o, 3, Height-1))
	}
}

func TestIsValidPositionCollision(t *testing.T) {
	var b Board
	b.Set(5, 10, Filled(ColorRed))

	o := Shape(O)
	assert.False(t, b.IsValidPosition(o, 4, 9))
	assert.False(t, b.IsValidPosition(o, 5, 10))
	assert.True(t, b.IsValidPosition(o, 6, 10))
	assert.True(t, b.IsValidPosition(o, 4, 11))
}

func TestPlace(t *testing.T) {
	var b Board
	b.Set(0, 19, Filled(ColorGarbage))

	p := NewPiece(T)
	p.Y = 10
	b.Place(p)

	assert.Equal(t, 5, b.Filled())
	for _, pt := range p.Cells() {
		assert.Equal(t, Filled(ColorMagenta), b.Cell(pt.X, pt.Y), pt.String())
	}
	assert.Equal(t, Filled(ColorGarbage), b.Cell(0, 19))
	assert.True(t, b.Cell(3, 10).Empty())
}

func TestPlaceDropsCellsAboveBoard(t *testing.T) {
	var b Board

	p := NewPiece(O)
	p.Y = -1
	assert.NotPanics(t, func() { b.Place(p) })

	assert.Equal(t, 2, b.Filled())
	assert.False(t, b.Cell(4, 0).Empty())
	assert.False(t, b.Cell(5, 0).Empty())
}

func TestClearFullLines(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	fillRow(&b, 18, 3)
	fillRow(&b, 17)
	b.Set(7, 16, Filled(ColorBlue))

	cleared := b.ClearFullLines()
	assert.Equal(t, 2, cleared)

	// Row 18 (with the gap at column 3) falls to 19, the lone block to 18.
	assert.True(t, b.Cell(3, 19).Empty())
	assert.False(t, b.Cell(0, 19).Empty())
	assert.Equal(t, Filled(ColorBlue), b.Cell(7, 18))
	assert.Equal(t, 10, b.Filled())
}

func TestClearFullLinesCascade(t *testing.T) {
	var b Board
	for y := Height - 4; y < Height; y++ {
		fillRow(&b, y)
	}
	b.Set(2, Height-5, Filled(ColorRed))

	assert.Equal(t, 4, b.ClearFullLines())
	assert.Equal(t, 1, b.Filled())
	assert.Equal(t, Filled(ColorRed), b.Cell(2, Height-1))
}

func TestClearFullLinesIdempotent(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	fillRow(&b, 15, 0)

	assert.Equal(t, 1, b.ClearFullLines())

	after := b
	assert.Equal(t, 0, b.ClearFullLines())
	assert.Equal(t, after, b)
}

func TestClearFullLinesSkipsTopRow(t *testing.T) {
	var b Board
	fillRow(&b, 0)

	assert.Equal(t, 0, b.ClearFullLines())
	assert.True(t, b.RowFull(0))
}

func TestParseCells(t *testing.T) {
	b, err := ParseCells("0,19, 1,19,9,0")
	assert.NoError(t, err)
	assert.Equal(t, 3, b.Filled())
	assert.Equal(t, Filled(ColorGarbage), b.Cell(9, 0))

	b, err = ParseCells("")
	assert.NoError(t, err)
	assert.Equal(t, 0, b.Filled())

	for _, bad := range []string{"1", "a,2", "1,b", "10,0", "0,20", "-1,3"} {
		_, err := ParseCells(bad)
		assert.Error(t, err, bad)
	}
}
