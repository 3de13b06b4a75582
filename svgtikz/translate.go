package svgtikz

import (
	"bytes"
	"io"

	"github.com/benoitkugler/svg2tikz/svgpath"
	"github.com/benoitkugler/svg2tikz/svgscan"
)

// FromCommand maps one SVG drawing command to its TikZ section. Only
// absolute MoveTo, LineTo and CubicTo plus Close are translatable; any
// other command yields an *UnsupportedCommandError.
func FromCommand(cmd svgpath.Command) (Section, error) {
	if cmd.Kind != svgpath.Close && cmd.Position != svgpath.Absolute {
		return nil, &UnsupportedCommandError{Command: cmd}
	}
	switch cmd.Kind {
	case svgpath.MoveTo:
		return MoveTo(pointAt(cmd.Params, 0)), nil
	case svgpath.LineTo:
		return LineTo(pointAt(cmd.Params, 0)), nil
	case svgpath.CubicTo:
		return CubicTo{pointAt(cmd.Params, 0), pointAt(cmd.Params, 2), pointAt(cmd.Params, 4)}, nil
	case svgpath.Close:
		return Cycle{}, nil
	}
	return nil, &UnsupportedCommandError{Command: cmd}
}

func pointAt(params []float64, i int) Point {
	return Point{X: float32(params[i]), Y: float32(params[i+1])}
}

// Translate reads a complete SVG document from r and renders its first
// path element as a TikZ draw statement with a fixed option list.
//
// Only the first path element is translated; later path elements in the
// same document are ignored. A document without any path element yields
// a statement with an empty section list.
func Translate(r io.Reader) (*Draw, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Err: err}
	}

	draw := &Draw{
		// The option list is fixed; it is not derived from the source
		// document's styling.
		Attributes: []Attribute{
			Setting("fill"),
			Setting("even odd rule"),
			Param{Key: "line width", Value: "1"},
		},
	}

	scanner := svgscan.New(bytes.NewReader(input))
	for {
		node, err := scanner.Next()
		if err == io.EOF {
			return draw, nil
		}
		if err != nil {
			return nil, &DocumentError{Err: err}
		}
		if node.Tag != "path" {
			continue
		}
		data, ok := node.Attrs["d"]
		if !ok {
			return nil, ErrMissingPathData
		}
		commands, err := svgpath.Parse(data)
		if err != nil {
			return nil, &PathDataError{Err: err}
		}
		sections := make([]Section, len(commands))
		for i, cmd := range commands {
			if sections[i], err = FromCommand(cmd); err != nil {
				return nil, err
			}
		}
		draw.Sections = sections
		return draw, nil
	}
}
