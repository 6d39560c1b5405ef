package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetterm/pkg/mino"
)

// Terminal safe color palette is available here
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name     string      `json:"name"`
	Glyph    string      `json:"glyph"`
	Empty    tcell.Color `json:"empty"`
	Border   tcell.Color `json:"border"`
	Text     tcell.Color `json:"text"`
	Score    tcell.Color `json:"score"`
	GameOver tcell.Color `json:"gameOver"`
	I        tcell.Color `json:"i"`
	O        tcell.Color `json:"o"`
	T        tcell.Color `json:"t"`
	L        tcell.Color `json:"l"`
	J        tcell.Color `json:"j"`
	S        tcell.Color `json:"s"`
	Z        tcell.Color `json:"z"`
	Garbage  tcell.Color `json:"garbage"`
}

// ThemeHex is a Theme as stored in a themes file
type ThemeHex struct {
	Name     string `json:"name"`
	Glyph    string `json:"glyph"`
	Empty    string `json:"empty"`
	Border   string `json:"border"`
	Text     string `json:"text"`
	Score    string `json:"score"`
	GameOver string `json:"gameOver"`
	I        string `json:"i"`
	O        string `json:"o"`
	T        string `json:"t"`
	L        string `json:"l"`
	J        string `json:"j"`
	S        string `json:"s"`
	Z        string `json:"z"`
	Garbage  string `json:"garbage"`
}

// fmtHex returns a one character hex for ColorDefault so that it survives a
// round trip instead of being read back as black.
func fmtHex(c tcell.Color) string {
	v := c.Hex()
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		Name:     t.Name,
		Glyph:    t.Glyph,
		Empty:    fmtHex(t.Empty),
		Border:   fmtHex(t.Border),
		Text:     fmtHex(t.Text),
		Score:    fmtHex(t.Score),
		GameOver: fmtHex(t.GameOver),
		I:        fmtHex(t.I),
		O:        fmtHex(t.O),
		T:        fmtHex(t.T),
		L:        fmtHex(t.L),
		J:        fmtHex(t.J),
		S:        fmtHex(t.S),
		Z:        fmtHex(t.Z),
		Garbage:  fmtHex(t.Garbage),
	}
}

// Theme converts a ThemeHex to a Theme. A missing glyph falls back to the
// basic one.
func (t ThemeHex) Theme() Theme {
	glyph := t.Glyph
	if glyph == "" {
		glyph = ThemeBasic.Glyph
	}

	return Theme{
		Name:     t.Name,
		Glyph:    glyph,
		Empty:    tcell.GetColor(t.Empty),
		Border:   tcell.GetColor(t.Border),
		Text:     tcell.GetColor(t.Text),
		Score:    tcell.GetColor(t.Score),
		GameOver: tcell.GetColor(t.GameOver),
		I:        tcell.GetColor(t.I),
		O:        tcell.GetColor(t.O),
		T:        tcell.GetColor(t.T),
		L:        tcell.GetColor(t.L),
		J:        tcell.GetColor(t.J),
		S:        tcell.GetColor(t.S),
		Z:        tcell.GetColor(t.Z),
		Garbage:  tcell.GetColor(t.Garbage),
	}
}

// CellColor returns the color a filled cell of color c is drawn with.
func (t Theme) CellColor(c mino.Color) tcell.Color {
	switch c {
	case mino.ColorCyan:
		return t.I
	case mino.ColorYellow:
		return t.O
	case mino.ColorMagenta:
		return t.T
	case mino.ColorWhite:
		return t.L
	case mino.ColorBlue:
		return t.J
	case mino.ColorGreen:
		return t.S
	case mino.ColorRed:
		return t.Z
	case mino.ColorGarbage:
		return t.Garbage
	default:
		return t.Empty
	}
}

var errNoTheme = errors.New("theme: no theme found")

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, errNoTheme
}

// LoadThemes reads a JSON array of ThemeHex from path.
func LoadThemes(path string) ([]ThemeHex, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read themes: %w", err)
	}

	var themes []ThemeHex
	if err := json.Unmarshal(b, &themes); err != nil {
		return nil, fmt.Errorf("parse themes %s: %w", path, err)
	}

	return themes, nil
}

// LookupTheme finds want among the user supplied themes first, then the
// built-in ones.
func LookupTheme(want string, extra []ThemeHex) (Theme, error) {
	if t, err := ImportThemes(want, extra); err == nil {
		return t, nil
	}

	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", errNoTheme, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:     "basic",
	Glyph:    "  ",
	Empty:    tcell.Color250,
	Border:   tcell.Color247,
	Text:     tcell.ColorDefault,
	Score:    tcell.Color226,
	GameOver: tcell.Color160,
	I:        tcell.Color51,
	O:        tcell.Color226,
	T:        tcell.Color201,
	L:        tcell.Color255,
	J:        tcell.Color21,
	S:        tcell.Color46,
	Z:        tcell.Color196,
	Garbage:  tcell.Color240,
}

// ThemeMono draws every piece alike, for terminals without color.
var ThemeMono = Theme{
	Name:     "mono",
	Glyph:    "[]",
	Empty:    tcell.ColorDefault,
	Border:   tcell.ColorDefault,
	Text:     tcell.ColorDefault,
	Score:    tcell.ColorDefault,
	GameOver: tcell.ColorDefault,
	I:        tcell.ColorDefault,
	O:        tcell.ColorDefault,
	T:        tcell.ColorDefault,
	L:        tcell.ColorDefault,
	J:        tcell.ColorDefault,
	S:        tcell.ColorDefault,
	Z:        tcell.ColorDefault,
	Garbage:  tcell.ColorDefault,
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeMono}
