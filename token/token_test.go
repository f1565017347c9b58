package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ysen/internal/source"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{NONE, "none"},
		{COMMENT, "comment"},
		{WHITESPACE, "space"},
		{IDENTIFIER, "identifier"},
		{KEYWORD, "keyword"},
		{STRING, "string"},
		{NUMBER, "number"},
		{OPERATOR, "operator"},
		{DOT, "dot"},
		{COMMA, "comma"},
		{COLON, "colon"},
		{SEMICOLON, "semicolon"},
		{LBRACKET, "lbracket"},
		{RBRACKET, "rbracket"},
		{LSQUIGGLY, "lsquiggly"},
		{RSQUIGGLY, "rsquiggly"},
		{LPAREN, "lparen"},
		{RPAREN, "rparen"},
		{Kind(99), "Kind(99)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.kind.String())
	}
	assert.Len(t, Kinds, len(tests)-1)
}

func TestFlags(t *testing.T) {
	var f Flags
	assert.False(t, f.Has(NegativeNumber))

	f |= NegativeNumber | FloatNumber
	assert.True(t, f.Has(NegativeNumber))
	assert.True(t, f.Has(FloatNumber))
	assert.True(t, f.Has(NegativeNumber|FloatNumber))
	assert.False(t, FloatNumber.Has(NegativeNumber))
}

func TestTokenHelpers(t *testing.T) {
	tok := Token{
		Kind:  IDENTIFIER,
		Text:  source.FromSlice("foo", 0, 3),
		Range: source.NewRange(source.Position{}, source.Position{Col: 3, Offset: 3}),
	}
	assert.Equal(t, "identifier", tok.KindName())
	assert.Equal(t, "foo", tok.Literal())
	assert.Equal(t, `identifier "foo" @ 1:1..1:4`, tok.String())

	assert.Equal(t, "", Token{}.Literal())
	assert.True(t, COMMENT.IsTrivia())
	assert.False(t, OPERATOR.IsTrivia())
}
