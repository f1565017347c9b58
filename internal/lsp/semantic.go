package lsp

import (
	"strings"

	"ysen/token"
)

// Semantic token types advertised in the initialize legend
var SemanticTokenTypes = []string{
	"comment",
	"string",
	"number",
	"operator",
	"variable",
	"keyword",
}

// No modifiers are reported; the legend still has to carry the list.
var SemanticTokenModifiers = []string{}

var semanticTypeOf = map[token.Kind]string{
	token.COMMENT:    "comment",
	token.STRING:     "string",
	token.NUMBER:     "number",
	token.OPERATOR:   "operator",
	token.IDENTIFIER: "variable",
	token.KEYWORD:    "keyword",
}

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array
type SemanticToken struct {
	Line      uint32
	StartChar uint32
	Length    uint32
	TokenType int
}

// collectSemanticTokens maps lexer tokens onto semantic tokens. A token
// spanning several lines, such as a block comment, becomes one entry per line.
// StartChar and Length are byte counts, not UTF-16 code units.
func collectSemanticTokens(content string, tokens []token.Token) []SemanticToken {
	var out []SemanticToken

	for _, tok := range tokens {
		typeName, ok := semanticTypeOf[tok.Kind]
		if !ok {
			continue
		}
		tokenType := indexOf(typeName, SemanticTokenTypes)

		start := tok.Range.Start
		segments := strings.Split(content[start.Offset:tok.Range.End.Offset], "\n")
		for i, segment := range segments {
			if segment == "" {
				continue
			}
			startChar := 0
			if i == 0 {
				startChar = start.Col
			}
			out = append(out, SemanticToken{
				Line:      uint32(start.Row + i),
				StartChar: uint32(startChar),
				Length:    uint32(len(segment)),
				TokenType: tokenType,
			})
		}
	}

	return out
}

// encodeSemanticTokens encodes tokens into LSP wire format (delta-line, delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), 0)

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
