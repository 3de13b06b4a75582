package svgtikz

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/svg2tikz/svgpath"
)

// ErrMissingPathData reports a path element without a "d" attribute.
var ErrMissingPathData = errors.New("svgtikz: path element has no d attribute")

// ReadError reports that the input stream could not be read.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "svgtikz: reading input: " + e.Err.Error() }

func (e *ReadError) Unwrap() error { return e.Err }

// DocumentError reports a source document the scanner could not
// tokenize.
type DocumentError struct {
	Err error
}

func (e *DocumentError) Error() string { return "svgtikz: scanning document: " + e.Err.Error() }

func (e *DocumentError) Unwrap() error { return e.Err }

// PathDataError reports invalid path-data syntax in the "d" attribute.
type PathDataError struct {
	Err error
}

func (e *PathDataError) Error() string { return "svgtikz: invalid path data: " + e.Err.Error() }

func (e *PathDataError) Unwrap() error { return e.Err }

// UnsupportedCommandError reports a drawing command outside the closed
// set translated to TikZ. It keeps the offending command for
// diagnostics.
type UnsupportedCommandError struct {
	Command svgpath.Command
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("svgtikz: unsupported path command: %s %s",
		e.Command.Position, e.Command.Kind)
}
