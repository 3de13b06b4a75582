// Parses SVG path-data strings ("d" attribute values) into an
// abstract sequence of typed drawing commands, which can then be
// consumed by an output driver.
package svgpath

// Position tells whether a command's coordinates are absolute canvas
// coordinates or offsets from the current point.
type Position uint8

const (
	Absolute Position = iota
	Relative
)

func (p Position) String() string {
	switch p {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	default:
		return "<unknown Position>"
	}
}

// Kind is the shape of a path-data command.
type Kind uint8

const (
	MoveTo Kind = iota
	LineTo
	HLineTo
	VLineTo
	CubicTo
	SmoothCubicTo
	QuadTo
	SmoothQuadTo
	Arc
	Close
)

func (k Kind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case HLineTo:
		return "HLineTo"
	case VLineTo:
		return "VLineTo"
	case CubicTo:
		return "CubicTo"
	case SmoothCubicTo:
		return "SmoothCubicTo"
	case QuadTo:
		return "QuadTo"
	case SmoothQuadTo:
		return "SmoothQuadTo"
	case Arc:
		return "Arc"
	case Close:
		return "Close"
	default:
		return "<unknown Kind>"
	}
}

// groupSize is the number of parameters of a single application of the
// command; the path grammar lets one letter carry several groups.
func (k Kind) groupSize() int {
	switch k {
	case HLineTo, VLineTo:
		return 1
	case MoveTo, LineTo, SmoothQuadTo:
		return 2
	case SmoothCubicTo, QuadTo:
		return 4
	case CubicTo:
		return 6
	case Arc:
		return 7
	default: // Close
		return 0
	}
}

// Command is one typed drawing command: its shape, its position mode
// and the raw numeric parameters that followed the command letter.
type Command struct {
	Kind     Kind
	Position Position
	Params   []float64
}

// commandOf maps a path-data letter to its command shape.
func commandOf(letter string) (Kind, Position, bool) {
	switch letter {
	case "M":
		return MoveTo, Absolute, true
	case "m":
		return MoveTo, Relative, true
	case "L":
		return LineTo, Absolute, true
	case "l":
		return LineTo, Relative, true
	case "H":
		return HLineTo, Absolute, true
	case "h":
		return HLineTo, Relative, true
	case "V":
		return VLineTo, Absolute, true
	case "v":
		return VLineTo, Relative, true
	case "C":
		return CubicTo, Absolute, true
	case "c":
		return CubicTo, Relative, true
	case "S":
		return SmoothCubicTo, Absolute, true
	case "s":
		return SmoothCubicTo, Relative, true
	case "Q":
		return QuadTo, Absolute, true
	case "q":
		return QuadTo, Relative, true
	case "T":
		return SmoothQuadTo, Absolute, true
	case "t":
		return SmoothQuadTo, Relative, true
	case "A":
		return Arc, Absolute, true
	case "a":
		return Arc, Relative, true
	case "Z", "z":
		return Close, Absolute, true
	}
	return 0, 0, false
}
