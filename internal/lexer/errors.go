package lexer

import (
	"errors"
	"fmt"

	"ysen/internal/source"
)

// ErrorKind classifies a failed lex call. The numeric values are the
// error codes reported by ErrorCode.
type ErrorKind int

const (
	ErrorOK ErrorKind = iota
	ErrorInvalidFloat
	ErrorUnterminatedString
	ErrorInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorOK:
		return "ok"
	case ErrorInvalidFloat:
		return "invalid float literal: multiple decimal points"
	case ErrorUnterminatedString:
		return "unterminated string literal"
	case ErrorInternal:
		return "internal lexer error"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by Lex when scanning cannot continue.
type Error struct {
	Kind   ErrorKind
	Pos    source.Position // where the offending lexeme starts
	Length int             // bytes covered by the offending lexeme, at least 1
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind, e.Pos)
}

// Code returns the numeric error code.
func (e *Error) Code() int {
	return int(e.Kind)
}

// ErrorCode returns the code carried by err: 0 for nil, the lexer code for a
// wrapped *Error, and the internal code for anything else.
func ErrorCode(err error) int {
	if err == nil {
		return int(ErrorOK)
	}
	var lexErr *Error
	if errors.As(err, &lexErr) {
		return lexErr.Code()
	}
	return int(ErrorInternal)
}
