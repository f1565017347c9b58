package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"ysen/internal/lexer"
	"ysen/internal/source"
)

// ErrorBuilder provides a fluent interface for creating diagnostics with suggestions
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos source.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewWarning creates a new warning builder
func NewWarning(code, message string, pos source.Position) *ErrorBuilder {
	b := NewError(code, message, pos)
	b.err.Level = Warning
	return b
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *ErrorBuilder) WithReplacement(message, replacement string, pos source.Position, length int) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// UnterminatedString creates an error for a string literal that runs off the
// end of the input. literal is the source text from the opening quote onwards.
func UnterminatedString(pos source.Position, literal string) CompilerError {
	closed := strings.TrimRight(literal, "\r\n") + "'"
	return NewError(ErrorUnterminatedString, "unterminated string literal", pos).
		WithLength(len(literal)).
		WithReplacement("add a closing ' to end the string", closed, pos, len(literal)).
		WithNote("a backslash escapes the character after it, including a quote").
		Build()
}

// InvalidFloat creates an error for a numeric literal with a second decimal point
func InvalidFloat(pos source.Position) CompilerError {
	return NewError(ErrorInvalidFloat, "invalid float literal: multiple decimal points", pos).
		WithSuggestion("remove the extra '.'").
		WithHelp("a numeric literal may contain at most one decimal point").
		Build()
}

// UnknownCharacter creates a warning for a byte the lexer skipped
func UnknownCharacter(c byte, pos source.Position) CompilerError {
	return NewWarning(WarningUnknownCharacter, fmt.Sprintf("unknown character %q skipped", c), pos).
		Build()
}

// FromLexError converts the error returned by lexer.Lex on src into a
// diagnostic. It returns false when err does not carry a *lexer.Error.
func FromLexError(src string, err error) (CompilerError, bool) {
	var lexErr *lexer.Error
	if !stderrors.As(err, &lexErr) {
		return CompilerError{}, false
	}

	switch lexErr.Kind {
	case lexer.ErrorUnterminatedString:
		return UnterminatedString(lexErr.Pos, excerpt(src, lexErr.Pos.Offset, lexErr.Length)), true
	case lexer.ErrorInvalidFloat:
		return InvalidFloat(lexErr.Pos), true
	default:
		return NewError(ErrorInternal, lexErr.Kind.String(), lexErr.Pos).
			WithLength(lexErr.Length).
			Build(), true
	}
}

// FromSkipped converts the bytes skipped during a lex call into warnings.
func FromSkipped(skipped []lexer.Skip) []CompilerError {
	var warnings []CompilerError
	for _, s := range skipped {
		warnings = append(warnings, UnknownCharacter(s.Byte, s.Pos))
	}
	return warnings
}

// excerpt returns up to length bytes of src starting at offset.
func excerpt(src string, offset, length int) string {
	if offset < 0 || offset > len(src) {
		return ""
	}
	return src[offset:min(offset+length, len(src))]
}
