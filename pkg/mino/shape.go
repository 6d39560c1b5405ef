package mino

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	I Kind = iota
	O
	T
	L
	J
	S
	Z
)

// Kinds lists every piece kind in catalog order.
var Kinds = []Kind{I, O, T, L, J, S, Z}

// Color is the display color of a filled cell. ColorNone marks an empty cell.
type Color int

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorBlue
	ColorGreen
	ColorRed
	ColorGarbage
)

func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorWhite:
		return "white"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorGarbage:
		return "garbage"
	default:
		return "unknown"
	}
}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case L:
		return "L"
	case J:
		return "J"
	case S:
		return "S"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the color cells of this kind are drawn with.
func (k Kind) Color() Color {
	switch k {
	case I:
		return ColorCyan
	case O:
		return ColorYellow
	case T:
		return ColorMagenta
	case L:
		return ColorWhite
	case J:
		return ColorBlue
	case S:
		return ColorGreen
	case Z:
		return ColorRed
	default:
		return ColorGarbage
	}
}

const (
	xx = true
	__ = false
)

var shapes = map[Kind]Grid{
	I: {
		{xx, xx, xx, xx},
		{__, __, __, __},
		{__, __, __, __},
		{__, __, __, __},
	},
	O: {
		{xx, xx},
		{xx, xx},
	},
	T: {
		{__, xx, __},
		{xx, xx, xx},
		{__, __, __},
	},
	L: {
		{__, __, xx},
		{xx, xx, xx},
		{__, __, __},
	},
	J: {
		{xx, __, __},
		{xx, xx, xx},
		{__, __, __},
	},
	S: {
		{__, xx, xx},
		{xx, xx, __},
		{__, __, __},
	},
	Z: {
		{xx, xx, __},
		{__, xx, xx},
		{__, __, __},
	},
}

// Shape returns the spawn rotation of a kind. The returned grid is a copy and
// may be modified by the caller.
func Shape(k Kind) Grid {
	return shapes[k].Clone()
}
