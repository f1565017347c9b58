package lsp_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ysen/internal/lsp"
)

type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published, "no diagnostics published")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, h *lsp.YsenHandler, ctx *glsp.Context, uri, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "ysen", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

type decodedToken struct {
	line, char, length uint32
	tokenType          string
}

func decode(t *testing.T, data []uint32) []decodedToken {
	t.Helper()
	require.Zero(t, len(data)%5, "semantic token data must be a multiple of 5")

	var out []decodedToken
	var line, char uint32
	for i := 0; i < len(data); i += 5 {
		if data[i] > 0 {
			line += data[i]
			char = data[i+1]
		} else {
			char += data[i+1]
		}
		out = append(out, decodedToken{line, char, data[i+2], lsp.SemanticTokenTypes[data[i+3]]})
	}
	return out
}

func TestInitializeAdvertisesLegend(t *testing.T) {
	h := lsp.NewYsenHandler()
	result, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	init, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	semantic, ok := init.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, semantic.Legend.TokenTypes)
}

func TestDidOpenPublishesLexError(t *testing.T) {
	h := lsp.NewYsenHandler()
	rec := &recorder{}

	open(t, h, rec.context(), "file:///tmp/bad.ys", "x = 'abc\ny")

	published := rec.last(t)
	assert.Equal(t, "file:///tmp/bad.ys", published.URI)
	require.Len(t, published.Diagnostics, 1)

	diag := published.Diagnostics[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	assert.Equal(t, "E0102", diag.Code.Value)
	assert.Equal(t, "unterminated string literal", diag.Message)
	assert.Equal(t, protocol.Position{Line: 0, Character: 4}, diag.Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 1}, diag.Range.End)

	tokens, ok := h.Document("file:///tmp/bad.ys")
	assert.True(t, ok)
	assert.Nil(t, tokens)
}

func TestDidOpenWarnsOnSkippedBytes(t *testing.T) {
	h := lsp.NewYsenHandler()
	rec := &recorder{}

	open(t, h, rec.context(), "file:///tmp/skip.ys", "a # b")

	published := rec.last(t)
	require.Len(t, published.Diagnostics, 1)
	diag := published.Diagnostics[0]
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *diag.Severity)
	assert.Equal(t, "W0001", diag.Code.Value)
	assert.Equal(t, protocol.Position{Line: 0, Character: 2}, diag.Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 3}, diag.Range.End)
}

func TestDidChangeClearsDiagnostics(t *testing.T) {
	h := lsp.NewYsenHandler()
	rec := &recorder{}
	ctx := rec.context()
	uri := "file:///tmp/change.ys"

	open(t, h, ctx, uri, "x = 1.2.3;")
	require.Len(t, rec.last(t).Diagnostics, 1)
	assert.Equal(t, "E0101", rec.last(t).Diagnostics[0].Code.Value)

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "x = 1.2;"}},
	})
	require.NoError(t, err)

	assert.NotNil(t, rec.last(t).Diagnostics)
	assert.Empty(t, rec.last(t).Diagnostics)

	tokens, ok := h.Document(uri)
	require.True(t, ok)
	assert.Len(t, tokens, 4)
}

func TestDidCloseForgetsDocument(t *testing.T) {
	h := lsp.NewYsenHandler()
	rec := &recorder{}
	uri := "file:///tmp/close.ys"

	open(t, h, rec.context(), uri, "a")
	_, ok := h.Document(uri)
	require.True(t, ok)

	err := h.TextDocumentDidClose(rec.context(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	_, ok = h.Document(uri)
	assert.False(t, ok)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := lsp.NewYsenHandler()
	rec := &recorder{}
	ctx := rec.context()
	uri := "file:///tmp/tokens.ys"

	open(t, h, ctx, uri, "a = 1; // c\n'x' /* b\n  c */ z")

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	assert.Equal(t, []decodedToken{
		{0, 0, 1, "variable"},
		{0, 2, 1, "operator"},
		{0, 4, 1, "number"},
		{0, 7, 4, "comment"},
		{1, 0, 3, "string"},
		{1, 4, 4, "comment"},
		{2, 0, 6, "comment"},
		{2, 7, 1, "variable"},
	}, decode(t, tokens.Data))
}

func TestSemanticTokensForUnopenedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disk.ys")
	require.NoError(t, os.WriteFile(path, []byte("f(x);\n"), 0o644))

	absPath, err := filepath.Abs(path)
	require.NoError(t, err, "Failed to get absolute path")
	uri := "file://" + filepath.ToSlash(absPath)

	h := lsp.NewYsenHandler()
	rec := &recorder{}
	tokens, err := h.TextDocumentSemanticTokensFull(rec.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	assert.Equal(t, []decodedToken{
		{0, 0, 1, "variable"},
		{0, 2, 1, "variable"},
	}, decode(t, tokens.Data))
	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestSemanticTokensMissingFile(t *testing.T) {
	h := lsp.NewYsenHandler()
	_, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///does/not/exist.ys"},
	})
	assert.Error(t, err)
}
