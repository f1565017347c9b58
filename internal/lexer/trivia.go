package lexer

import (
	"ysen/internal/source"
	"ysen/token"
)

// skipComments consumes every run of whitespace and comments in front of the
// next real token. Trivia tokens are emitted only when enabled in the options.
func (l *Lexer) skipComments() {
	for !l.atEnd(0) {
		l.skipWhitespace()
		if !l.skipComment() {
			break
		}
	}
	l.skipWhitespace()
}

func (l *Lexer) skipWhitespace() {
	if !isSpace(l.peek(0)) {
		return
	}

	start := l.cursor
	for isSpace(l.peek(0)) {
		l.advance()
	}

	if l.opts.Whitespace {
		l.emit(token.WHITESPACE, source.FromReference(l.since(start)), start, 0)
	}
}

// skipComment consumes one comment at the cursor and reports whether there was one.
func (l *Lexer) skipComment() bool {
	if l.peek(0) != '/' {
		return false
	}
	switch l.peek(1) {
	case '/':
		l.skipLineComment()
	case '*':
		l.skipBlockComment()
	default:
		return false
	}
	return true
}

// The trailing newline is left for skipWhitespace.
func (l *Lexer) skipLineComment() {
	start := l.cursor
	l.advance() // /
	l.advance() // /
	for !l.atEnd(0) && l.peek(0) != '\n' {
		l.advance()
	}

	if l.opts.Comments {
		l.emit(token.COMMENT, source.FromReference(l.since(start)), start, 0)
	}
}

// An unterminated block comment runs to the end of the input.
func (l *Lexer) skipBlockComment() {
	start := l.cursor
	l.advance() // /
	l.advance() // *

	terminated := false
	for !l.atEnd(0) {
		if l.peek(0) == '*' && l.peek(1) == '/' {
			l.advance() // *
			l.advance() // /
			terminated = true
			break
		}
		l.advance()
	}
	if !terminated {
		log().Warningf("unterminated block comment starting at %s", start)
	}

	if l.opts.Comments {
		l.emit(token.COMMENT, source.FromReference(l.since(start)), start, 0)
	}
}
