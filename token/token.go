// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"

	"ysen/internal/source"
)

type Kind int

const (
	NONE Kind = iota
	COMMENT
	WHITESPACE

	// Identifiers + literals
	IDENTIFIER
	KEYWORD // reserved for consumers, never produced by the lexer
	STRING
	NUMBER

	OPERATOR

	// Punctuation
	DOT
	COMMA
	COLON
	SEMICOLON
	LBRACKET
	RBRACKET
	LSQUIGGLY
	RSQUIGGLY
	LPAREN
	RPAREN
)

// String returns the diagnostic name of the kind.
func (k Kind) String() string {
	switch k {
	case NONE:
		return "none"
	case COMMENT:
		return "comment"
	case WHITESPACE:
		return "space"
	case IDENTIFIER:
		return "identifier"
	case KEYWORD:
		return "keyword"
	case STRING:
		return "string"
	case NUMBER:
		return "number"
	case OPERATOR:
		return "operator"
	case DOT:
		return "dot"
	case COMMA:
		return "comma"
	case COLON:
		return "colon"
	case SEMICOLON:
		return "semicolon"
	case LBRACKET:
		return "lbracket"
	case RBRACKET:
		return "rbracket"
	case LSQUIGGLY:
		return "lsquiggly"
	case RSQUIGGLY:
		return "rsquiggly"
	case LPAREN:
		return "lparen"
	case RPAREN:
		return "rparen"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every kind in declaration order.
var Kinds = []Kind{
	NONE, COMMENT, WHITESPACE, IDENTIFIER, KEYWORD, STRING, NUMBER, OPERATOR,
	DOT, COMMA, COLON, SEMICOLON, LBRACKET, RBRACKET, LSQUIGGLY, RSQUIGGLY, LPAREN, RPAREN,
}

// IsTrivia reports whether tokens of this kind are only produced on request.
func (k Kind) IsTrivia() bool {
	return k == COMMENT || k == WHITESPACE
}

type Flags uint8

const (
	NegativeNumber Flags = 1 << iota
	FloatNumber
)

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

type Token struct {
	Kind  Kind
	Text  source.Text
	Range source.Range
	Flags Flags
}

// KindName is the human-readable name of the token's kind.
func (t Token) KindName() string {
	return t.Kind.String()
}

// Literal returns the token text, or "" for a token without one.
func (t Token) Literal() string {
	if t.Text == nil {
		return ""
	}
	return t.Text.String()
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @ %s", t.Kind, t.Literal(), t.Range)
}
