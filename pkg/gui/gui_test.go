package gui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetterm/pkg/game"
	"github.com/qnkhuat/tetterm/pkg/mino"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)

	return s
}

func screenText(s tcell.SimulationScreen, x, y, n int) string {
	var out []rune
	for i := 0; i < n; i++ {
		r, _, _, _ := s.GetContent(x+i, y)
		out = append(out, r)
	}

	return string(out)
}

func TestKeyMap(t *testing.T) {
	for _, tc := range []struct {
		ev   *tcell.EventKey
		want game.Action
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.ActionMoveLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), game.ActionMoveLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.ActionMoveRight},
		{tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), game.ActionMoveRight},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.ActionSoftDrop},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), game.ActionSoftDrop},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.ActionRotate},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), game.ActionRotate},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), game.ActionRotate},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), game.ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), game.ActionQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.ActionQuit},
	} {
		a, ok := actionFor(tc.ev)
		assert.True(t, ok, tc.ev.Name())
		assert.Equal(t, tc.want, a, tc.ev.Name())
	}

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
	} {
		_, ok := actionFor(ev)
		assert.False(t, ok, ev.Name())
	}
}

func TestKeyMapCoversEveryCommand(t *testing.T) {
	seen := map[game.Action]bool{}
	for _, a := range keyActions {
		seen[a] = true
	}
	for _, a := range runeActions {
		seen[a] = true
	}

	assert.Equal(t, game.ActionQuit, keyActions[tcell.KeyCtrlC])
	assert.Len(t, seen, 5)
	assert.False(t, seen[game.ActionUnknown])
}

func TestDrawBoard(t *testing.T) {
	s := newScreen(t)
	g := game.New(mino.NewSequence(mino.O))
	g.SoftDrop()

	drawBoard(s, 0, 0, g.Snapshot(), ThemeMono)

	// O at column 4, rows 1 and 2, two screen columns per cell.
	assert.Equal(t, "  ", screenText(s, 0, 1, 2))
	assert.Equal(t, "[][]", screenText(s, 8, 1, 4))
	assert.Equal(t, "[][]", screenText(s, 8, 2, 4))
	assert.Equal(t, "    ", screenText(s, 8, 0, 4))
}

func TestDrawBoardColors(t *testing.T) {
	s := newScreen(t)
	g := game.New(mino.NewSequence(mino.T))

	drawBoard(s, 0, 0, g.Snapshot(), ThemeBasic)

	// T spawns at column 3, its top cell at column 4.
	_, _, style, _ := s.GetContent(8, 0)
	_, bg, _ := style.Decompose()
	assert.Equal(t, ThemeBasic.T, bg)

	_, _, style, _ = s.GetContent(0, 0)
	_, bg, _ = style.Decompose()
	assert.Equal(t, ThemeBasic.Empty, bg)
}

func TestDrawBoardGameOver(t *testing.T) {
	s := newScreen(t)

	var b mino.Board
	b.Set(4, 0, mino.Filled(mino.ColorGarbage))
	g := game.New(mino.NewSequence(mino.O), game.WithBoard(b))
	require.True(t, g.GameOver())

	drawBoard(s, 0, 0, g.Snapshot(), ThemeMono)
	assert.Equal(t, " GAME OVER ", screenText(s, 4, mino.Height/2, 11))
}

func TestDrawSide(t *testing.T) {
	s := newScreen(t)
	g := game.New(mino.NewSequence(mino.T, mino.I))

	rows := drawSide(s, 0, 0, g.Snapshot(), "lucky-otter", ThemeMono)

	assert.Equal(t, "lucky-otter", screenText(s, 0, 0, 11))
	assert.Equal(t, "Score: 0", screenText(s, 0, 2, 8))
	assert.Equal(t, "Lines: 0", screenText(s, 0, 3, 8))
	assert.Equal(t, "Next:", screenText(s, 0, 5, 5))
	assert.Equal(t, "[][][][]", screenText(s, 0, 6, 8), "I preview")
	assert.Equal(t, "Playing", screenText(s, 0, 11, 7))
	assert.Equal(t, 12, rows)
}

type recorder struct {
	results []game.Result
}

func (r *recorder) Play(res game.Result) {
	r.results = append(r.results, res)
}

func TestGameStateAdvance(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := &recorder{}
	gs := NewGameState(game.New(mino.NewSequence(mino.O), game.WithStart(start)), "", ThemeBasic, rec)

	assert.False(t, gs.Advance(start.Add(game.PollInterval)))
	assert.Equal(t, 0, gs.Snap.Piece.Y)

	now := start
	for i := 0; i < mino.Height-1; i++ {
		now = now.Add(game.TickRate)
		assert.True(t, gs.Advance(now))
	}

	require.Len(t, rec.results, 1, "only locks are played")
	assert.True(t, rec.results[0].Locked)
	assert.Equal(t, 4, gs.Snap.Board.Filled())
}

func TestGameStateApply(t *testing.T) {
	gs := NewGameState(game.New(mino.NewSequence(mino.O)), "", ThemeBasic, nil)

	assert.True(t, gs.Apply(game.ActionMoveLeft))
	assert.Equal(t, 3, gs.Snap.Piece.X)
	assert.False(t, gs.Apply(game.ActionQuit))
}

func TestHandleKey(t *testing.T) {
	gs := NewGameState(game.New(mino.NewSequence(mino.O)), "", ThemeBasic, nil)
	g := New(gs)

	ev := g.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.Nil(t, ev)
	assert.Equal(t, 5, gs.Snap.Piece.X)

	g.handleKey(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	assert.Equal(t, 1, gs.Snap.Piece.Y)

	assert.Contains(t, g.help.GetText(true), "rotate")
}

func TestLookupTheme(t *testing.T) {
	th, err := LookupTheme("mono", nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", th.Glyph)

	_, err = LookupTheme("nope", nil)
	assert.ErrorIs(t, err, errNoTheme)

	custom := ThemeBasic.Hex()
	custom.Name = "mono"
	custom.Glyph = ""
	th, err = LookupTheme("mono", []ThemeHex{custom})
	require.NoError(t, err)
	assert.Equal(t, ThemeBasic.Glyph, th.Glyph, "user themes override built-ins")
	assert.Equal(t, ThemeBasic.I.Hex(), th.I.Hex(), "palette colors import as their RGB value")
}

func TestThemeHexDefault(t *testing.T) {
	h := ThemeMono.Hex()
	assert.Equal(t, "#0", h.Empty)
	assert.Equal(t, tcell.ColorDefault, h.Theme().Empty)
}

func TestLoadThemes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.json")
	data := `[{"name":"night","glyph":"##","empty":"#000000","i":"#00ffff"}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	themes, err := LoadThemes(path)
	require.NoError(t, err)
	require.Len(t, themes, 1)

	th, err := ImportThemes("night", themes)
	require.NoError(t, err)
	assert.Equal(t, "##", th.Glyph)
	assert.Equal(t, tcell.NewHexColor(0x00ffff), th.I)
	assert.Equal(t, tcell.NewHexColor(0x00ffff), th.CellColor(mino.ColorCyan))

	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = LoadThemes(path)
	assert.Error(t, err)

	_, err = LoadThemes(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
