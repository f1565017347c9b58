package grammar

import (
	"errors"
	"fmt"
	"io"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"ysen/internal/lexer"
	"ysen/internal/source"
	"ysen/token"
)

// symbolNames are the token type names usable in participle grammar tags.
var symbolNames = map[token.Kind]string{
	token.NONE:       "None",
	token.COMMENT:    "Comment",
	token.WHITESPACE: "Whitespace",
	token.IDENTIFIER: "Identifier",
	token.KEYWORD:    "Keyword",
	token.STRING:     "String",
	token.NUMBER:     "Number",
	token.OPERATOR:   "Operator",
	token.DOT:        "Dot",
	token.COMMA:      "Comma",
	token.COLON:      "Colon",
	token.SEMICOLON:  "Semicolon",
	token.LBRACKET:   "LBracket",
	token.RBRACKET:   "RBracket",
	token.LSQUIGGLY:  "LSquiggly",
	token.RSQUIGGLY:  "RSquiggly",
	token.LPAREN:     "LParen",
	token.RPAREN:     "RParen",
}

// symbolType maps a kind onto participle's negative token type space below EOF.
func symbolType(k token.Kind) plexer.TokenType {
	return plexer.EOF - 1 - plexer.TokenType(k)
}

// Definition is a participle lexer definition backed by the ysen lexer.
type Definition struct {
	Options lexer.Options
}

func NewDefinition(opts lexer.Options) *Definition {
	return &Definition{Options: opts}
}

func (d *Definition) Symbols() map[string]plexer.TokenType {
	symbols := map[string]plexer.TokenType{"EOF": plexer.EOF}
	for _, kind := range token.Kinds {
		name, ok := symbolNames[kind]
		if !ok {
			name = kind.String()
		}
		symbols[name] = symbolType(kind)
	}
	return symbols
}

func (d *Definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return d.LexString(filename, string(src))
}

func (d *Definition) LexString(filename string, input string) (plexer.Lexer, error) {
	tokens, err := lexer.Lex(input, d.Options)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return nil, &LexError{Err: lexErr, Pos: toPosition(filename, lexErr.Pos)}
		}
		return nil, err
	}

	out := make([]plexer.Token, 0, len(tokens)+1)
	for _, tok := range tokens {
		out = append(out, plexer.Token{
			Type:  symbolType(tok.Kind),
			Value: tok.Literal(),
			Pos:   toPosition(filename, tok.Range.Start),
		})
	}
	out = append(out, plexer.Token{Type: plexer.EOF, Pos: toPosition(filename, endOf(input))})

	return &tokenLexer{tokens: out}, nil
}

type tokenLexer struct {
	tokens []plexer.Token
	next   int
}

// Next returns the EOF token forever once the input is exhausted.
func (l *tokenLexer) Next() (plexer.Token, error) {
	tok := l.tokens[l.next]
	if l.next < len(l.tokens)-1 {
		l.next++
	}
	return tok, nil
}

// LexError reports a lexer failure in participle's error shape.
type LexError struct {
	Err *lexer.Error
	Pos plexer.Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Err.Kind)
}

func (e *LexError) Message() string          { return e.Err.Kind.String() }
func (e *LexError) Position() plexer.Position { return e.Pos }
func (e *LexError) Unwrap() error            { return e.Err }

func toPosition(filename string, pos source.Position) plexer.Position {
	return plexer.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Row + 1,
		Column:   pos.Col + 1,
	}
}

func endOf(input string) source.Position {
	var pos source.Position
	for i := 0; i < len(input); i++ {
		pos.Advance(input[i])
	}
	return pos
}
