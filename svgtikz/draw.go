// Translates an SVG path into a TikZ draw statement.
// The source document is reduced to a single styled \draw statement
// made of juxtaposed path sections; see Translate.
package svgtikz

import (
	"fmt"
	"strings"
)

// Point is a 2D coordinate of the target picture.
type Point struct {
	X, Y float32
}

// String renders the point with exactly four decimals on both
// coordinates, never in scientific notation.
func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}

// Section is one segment of a TikZ path. Sections render relative to
// the preceding section purely as juxtaposed text: no drawing state is
// kept. Sections are built by FromCommand.
type Section interface {
	fmt.Stringer
	section()
}

type MoveTo Point

type LineTo Point

// CubicTo holds the two control points followed by the end point; this
// order is fixed by the SVG cubic command and must not be permuted.
type CubicTo [3]Point

// Cycle closes the current path back onto its starting point.
type Cycle struct{}

func (MoveTo) section()  {}
func (LineTo) section()  {}
func (CubicTo) section() {}
func (Cycle) section()   {}

func (op MoveTo) String() string { return Point(op).String() }

func (op LineTo) String() string { return "--" + Point(op).String() }

func (op CubicTo) String() string {
	return ".. controls " + op[0].String() + " and " + op[1].String() + " .. " + op[2].String()
}

func (Cycle) String() string { return "--cycle" }

// Attribute is one entry of the draw statement's bracketed option list.
type Attribute interface {
	fmt.Stringer
	attribute()
}

// Setting is a bare style keyword, such as "fill".
type Setting string

// Param is a key=value style option. Neither side is quoted or escaped.
type Param struct {
	Key, Value string
}

func (Setting) attribute() {}
func (Param) attribute()   {}

func (s Setting) String() string { return string(s) }

func (p Param) String() string { return p.Key + "=" + p.Value }

// Draw is a single TikZ \draw statement: an option list plus an ordered
// sequence of path sections. It is populated once by Translate and then
// only rendered.
type Draw struct {
	Attributes []Attribute
	Sections   []Section
}

// String renders the complete statement. Attributes are comma-joined,
// sections space-joined, both in sequence order. An empty section
// sequence renders a legal, if degenerate, statement.
func (d *Draw) String() string {
	attrs := make([]string, len(d.Attributes))
	for i, a := range d.Attributes {
		attrs[i] = a.String()
	}
	sections := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		sections[i] = s.String()
	}
	return "\\draw[" + strings.Join(attrs, ",") + "] " + strings.Join(sections, " ") + " ;"
}
