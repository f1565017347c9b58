// Package lexer turns ysen source text into a flat token sequence.
package lexer

import (
	"github.com/tliron/commonlog"

	"ysen/internal/source"
	"ysen/token"
)

// log returns the lexer logger from the currently configured backend.
func log() commonlog.Logger {
	return commonlog.GetLogger("ysen.lexer")
}

// Skip records an unrecognized byte the lexer stepped over.
type Skip struct {
	Pos  source.Position
	Byte byte
}

type state int

const (
	scanning state = iota
	done
	failed
)

// Lexer holds the state of one pass over an input buffer.
type Lexer struct {
	src     string
	opts    Options
	cursor  source.Position
	tokens  []token.Token
	skipped []Skip
	err     error
}

// New returns a lexer over src. Nothing is scanned until Lex is called.
func New(src string, opts Options) *Lexer {
	return &Lexer{
		src:  src,
		opts: opts,
	}
}

// Lex tokenizes src in one pass. Either every token is returned or, on the
// first fatal error, no tokens and an *Error.
func Lex(src string, opts Options) ([]token.Token, error) {
	return New(src, opts).Lex()
}

// Lex runs the lexer from the start of its input. It may be called again to
// re-lex the same input.
func (l *Lexer) Lex() ([]token.Token, error) {
	l.cursor = source.Position{}
	l.tokens = nil
	l.skipped = nil
	l.err = nil

	st := scanning
	for st == scanning {
		st = l.step()
	}

	if st == failed {
		l.tokens = nil
		return nil, l.err
	}
	return l.tokens, nil
}

// Skipped returns the unrecognized bytes passed over by the last Lex call.
func (l *Lexer) Skipped() []Skip {
	return l.skipped
}

func (l *Lexer) step() state {
	l.skipComments()
	if l.atEnd(0) {
		return done
	}
	if err := l.scanToken(); err != nil {
		l.err = err
		return failed
	}
	return scanning
}

func (l *Lexer) scanToken() error {
	c := l.peek(0)
	switch {
	case c == '\'':
		return l.scanString()
	case isAlpha(c):
		l.scanIdentifier()
		return nil
	case l.startsNumber():
		return l.scanNumber()
	}

	if p, ok := punctuation[c]; ok {
		l.scanPunctuation(p)
		return nil
	}
	if isOperator(c) {
		return l.scanOperator()
	}

	log().Warningf("skipping unknown byte %q at %s", c, l.cursor)
	l.skipped = append(l.skipped, Skip{Pos: l.cursor, Byte: c})
	l.advance()
	return nil
}

// Cursor primitives. advance is the only code that moves the cursor.

func (l *Lexer) peek(n int) byte {
	if l.atEnd(n) {
		return 0
	}
	return l.src[l.cursor.Offset+n]
}

func (l *Lexer) atEnd(n int) bool {
	return l.cursor.Offset+n >= len(l.src)
}

func (l *Lexer) advance() byte {
	if l.atEnd(0) {
		return 0
	}
	l.cursor.Advance(l.src[l.cursor.Offset])
	return l.peek(0)
}

func (l *Lexer) emit(kind token.Kind, text source.Text, start source.Position, flags token.Flags) {
	l.tokens = append(l.tokens, token.Token{
		Kind:  kind,
		Text:  text,
		Range: source.NewRange(start, l.cursor),
		Flags: flags,
	})
}

// since returns the input consumed from start up to the cursor.
func (l *Lexer) since(start source.Position) string {
	return l.src[start.Offset:l.cursor.Offset]
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
