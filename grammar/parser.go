package grammar

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"ysen/internal/lexer"
)

// Build constructs a participle parser for grammar G that reads ysen tokens.
// Trivia tokens are elided, so G never sees whitespace or comments even when
// opts materializes them.
func Build[G any](opts lexer.Options, options ...participle.Option) (*participle.Parser[G], error) {
	options = append([]participle.Option{
		participle.Lexer(NewDefinition(opts)),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	}, options...)

	parser, err := participle.Build[G](options...)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return parser, nil
}

// ReportError writes a friendly caret-style error for a failed parse or lex.
func ReportError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed)

	var pe participle.Error
	if !errors.As(err, &pe) {
		red.Fprintf(w, "Unexpected error: %s\n", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		red.Fprintf(w, "Syntax error at unknown location: %s\n", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	red.Fprintf(w, "Syntax error in %s at line %d, column %d:\n", pos.Filename, pos.Line, pos.Column)
	fmt.Fprintln(w, line)
	color.New(color.FgHiRed).Fprintln(w, caret)
	fmt.Fprintf(w, "→ %s\n", pe.Message())
}
