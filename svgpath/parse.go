package svgpath

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// SyntaxError reports malformed path data.
type SyntaxError struct {
	Reason string
}

func (e *SyntaxError) Error() string { return "svgpath: " + e.Reason }

// Parse interprets one path-data attribute value as an ordered command
// sequence. One command letter yields one Command carrying every number
// that follows it; parameter counts are validated against the grammar
// but repeated groups are not split into separate commands.
func Parse(data string) ([]Command, error) {
	lex, _ := gl.Lex("svgpath", data)
	var commands []Command
	for {
		item := lex.NextItem()
		switch item.Type {
		case gl.ItemEOS:
			return commands, nil
		case gl.ItemError:
			return nil, &SyntaxError{Reason: item.Value}
		case gl.ItemLetter:
			cmd, err := parseCommand(lex, item.Value)
			if err != nil {
				return nil, err
			}
			commands = append(commands, cmd)
		default:
			// separators between commands
		}
	}
}

func parseCommand(lex *gl.Lexer, letter string) (Command, error) {
	kind, pos, ok := commandOf(letter)
	if !ok {
		return Command{}, &SyntaxError{Reason: "unknown command letter " + strconv.Quote(letter)}
	}
	cmd := Command{Kind: kind, Position: pos}
	lex.ConsumeWhiteSpace()
	for lex.PeekItem().Type == gl.ItemNumber {
		item := lex.NextItem()
		n, err := strconv.ParseFloat(item.Value, 64)
		if err != nil {
			return Command{}, &SyntaxError{Reason: "bad number " + strconv.Quote(item.Value)}
		}
		cmd.Params = append(cmd.Params, n)
		lex.ConsumeWhiteSpace()
		lex.ConsumeComma()
		lex.ConsumeWhiteSpace()
	}
	if err := cmd.validateArity(); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

func (cmd Command) validateArity() error {
	size := cmd.Kind.groupSize()
	if size == 0 {
		if len(cmd.Params) != 0 {
			return &SyntaxError{Reason: cmd.Kind.String() + " takes no parameters"}
		}
		return nil
	}
	if len(cmd.Params) == 0 || len(cmd.Params)%size != 0 {
		return &SyntaxError{Reason: fmt.Sprintf("%s needs groups of %d parameters, got %d",
			cmd.Kind, size, len(cmd.Params))}
	}
	return nil
}
