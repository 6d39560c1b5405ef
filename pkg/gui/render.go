package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetterm/pkg/game"
	"github.com/qnkhuat/tetterm/pkg/mino"
)

const (
	// cellWidth is the number of screen columns one board cell takes.
	cellWidth = 2

	previewSize = 4
)

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// cellStyle returns the style and text of a board cell
func cellStyle(c mino.Cell, t Theme) (tcell.Style, string) {
	if c.Empty() {
		return tcell.StyleDefault.Background(t.Empty), "  "
	}

	color := t.CellColor(c.Color())
	style := tcell.StyleDefault.Background(color)
	if t.Glyph != "  " {
		style = tcell.StyleDefault.Foreground(color)
	}

	return style, t.Glyph
}

// drawCell fills one board cell, cellWidth columns wide
func drawCell(s tcell.Screen, x, y int, c mino.Cell, t Theme) {
	style, text := cellStyle(c, t)
	drawText(s, x, y, style, text)
}

// drawBoard draws the board with the falling piece composited over it. Piece
// cells above the top row are not drawn.
func drawBoard(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	board := snap.Composite()

	for row := 0; row < mino.Height; row++ {
		for col := 0; col < mino.Width; col++ {
			drawCell(s, x+col*cellWidth, y+row, board.Cell(col, row), t)
		}
	}

	if snap.GameOver {
		msg := " GAME OVER "
		mx := x + (mino.Width*cellWidth-len(msg))/2
		drawText(s, mx, y+mino.Height/2, tcell.StyleDefault.Foreground(t.GameOver).Bold(true), msg)
	}
}

// drawPreview draws the spawn shape of k in a previewSize square
func drawPreview(s tcell.Screen, x, y int, k mino.Kind, t Theme) {
	for row := 0; row < previewSize; row++ {
		drawText(s, x, y+row, DefStyle, "        ")
	}

	cell := mino.Filled(k.Color())
	for _, pt := range mino.Shape(k).Occupied() {
		drawCell(s, x+pt.X*cellWidth, y+pt.Y, cell, t)
	}
}

// drawSide draws the player name, score, lines and next piece. It returns the
// number of rows used.
func drawSide(s tcell.Screen, x, y int, snap game.Snapshot, name string, t Theme) int {
	textStyle := tcell.StyleDefault.Foreground(t.Text)
	scoreStyle := tcell.StyleDefault.Foreground(t.Score)

	row := y
	if name != "" {
		drawText(s, x, row, textStyle.Bold(true), name)
		row += 2
	}

	drawText(s, x, row, scoreStyle, fmt.Sprintf("Score: %d", snap.Score))
	row++
	drawText(s, x, row, textStyle, fmt.Sprintf("Lines: %d", snap.Lines))
	row += 2

	drawText(s, x, row, textStyle, "Next:")
	row++
	drawPreview(s, x, row, snap.Next, t)
	row += previewSize + 1

	status, style := "Playing", textStyle
	if snap.GameOver {
		status, style = "Game Over (q to quit)", tcell.StyleDefault.Foreground(t.GameOver)
	}
	drawText(s, x, row, style, status)
	row++

	return row - y
}
