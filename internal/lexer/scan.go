package lexer

import (
	"strings"

	"ysen/internal/source"
	"ysen/token"
)

// Every two-byte operator is tried before any single-byte one.
var twoCharOperators = []string{
	"==", "!=", "<=", ">=",
	"&&", "||",
	"++", "--", "->",
	"+=", "-=", "*=", "/=", "%=", "|=", "&=", "^=", "~=",
	"<<", ">>",
}

const oneCharOperators = "+-*/%&|^~?><!="

type punct struct {
	kind token.Kind
	text string
}

var punctuation = map[byte]punct{
	'.': {token.DOT, "."},
	',': {token.COMMA, ","},
	':': {token.COLON, ":"},
	';': {token.SEMICOLON, ";"},
	'[': {token.LBRACKET, "["},
	']': {token.RBRACKET, "]"},
	'{': {token.LSQUIGGLY, "{"},
	'}': {token.RSQUIGGLY, "}"},
	'(': {token.LPAREN, "("},
	')': {token.RPAREN, ")"},
}

func isOperator(c byte) bool {
	return c != 0 && strings.IndexByte(oneCharOperators, c) >= 0
}

// scanString scans a single-quoted literal. Backslash escapes are skipped in
// pairs and kept verbatim; the token text excludes the quotes.
func (l *Lexer) scanString() error {
	start := l.cursor
	l.advance() // '
	for !l.atEnd(0) && l.peek(0) != '\'' {
		if l.peek(0) == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.atEnd(0) {
		return &Error{Kind: ErrorUnterminatedString, Pos: start, Length: l.cursor.Offset - start.Offset}
	}
	l.advance() // '

	length := l.cursor.Offset - start.Offset - 2
	l.emit(token.STRING, source.FromSlice(l.src, start.Offset+1, length), start, 0)
	return nil
}

// startsNumber reports whether a numeric literal begins at the cursor. A '-'
// or '.' only starts one when digits actually follow.
func (l *Lexer) startsNumber() bool {
	switch c := l.peek(0); {
	case isDigit(c):
		return true
	case c == '-':
		next := l.peek(1)
		return isDigit(next) || (next == '.' && isDigit(l.peek(2)))
	case c == '.':
		return isDigit(l.peek(1))
	}
	return false
}

func (l *Lexer) scanNumber() error {
	start := l.cursor
	var flags token.Flags

	c := l.peek(0)
	if c == '-' {
		flags |= token.NegativeNumber
	}
	for {
		if c == '.' {
			if flags.Has(token.FloatNumber) {
				return &Error{Kind: ErrorInvalidFloat, Pos: l.cursor, Length: 1}
			}
			flags |= token.FloatNumber
		}
		c = l.advance()
		if l.atEnd(0) || !(isDigit(c) || c == '.') {
			break
		}
	}

	l.emit(token.NUMBER, source.FromSlice(l.src, start.Offset, l.cursor.Offset-start.Offset), start, flags)
	return nil
}

func (l *Lexer) scanIdentifier() {
	start := l.cursor
	for c := l.advance(); isAlnum(c) || c == '_'; c = l.advance() {
	}
	l.emit(token.IDENTIFIER, source.FromSlice(l.src, start.Offset, l.cursor.Offset-start.Offset), start, 0)
}

func (l *Lexer) scanOperator() error {
	start := l.cursor

	if !l.atEnd(1) {
		pair := l.src[start.Offset : start.Offset+2]
		for _, op := range twoCharOperators {
			if pair == op {
				l.advance()
				l.advance()
				l.emit(token.OPERATOR, source.FromReference(op), start, 0)
				return nil
			}
		}
	}

	if i := strings.IndexByte(oneCharOperators, l.peek(0)); i >= 0 {
		l.advance()
		l.emit(token.OPERATOR, source.FromReference(oneCharOperators[i:i+1]), start, 0)
		return nil
	}

	return &Error{Kind: ErrorInternal, Pos: start, Length: 1}
}

func (l *Lexer) scanPunctuation(p punct) {
	start := l.cursor
	l.advance()
	l.emit(p.kind, source.FromReference(p.text), start, 0)
}
