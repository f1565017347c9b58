package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ysen/internal/lexer"
	"ysen/token"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("ysen.lsp")
}

// document is the last lexed state of an open file. tokens is nil when the
// last lex failed.
type document struct {
	content string
	tokens  []token.Token
}

// YsenHandler implements the LSP server handlers for ysen source files
type YsenHandler struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
}

// NewYsenHandler creates and returns a new YsenHandler instance
func NewYsenHandler() *YsenHandler {
	return &YsenHandler{
		docs: make(map[protocol.DocumentUri]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *YsenHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	logger().Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *YsenHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	logger().Info("ysen LSP initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *YsenHandler) Shutdown(ctx *glsp.Context) error {
	logger().Info("ysen LSP shutdown")
	return nil
}

func (h *YsenHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *YsenHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	logger().Infof("opened file: %s", params.TextDocument.URI)

	diagnostics := h.update(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// Only full-document sync is advertised; a ranged change falls back to the file on disk.
func (h *YsenHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	logger().Infof("changed file: %s", params.TextDocument.URI)

	var text *string
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			text = &whole.Text
		}
	}
	if text == nil {
		content, err := readDocument(params.TextDocument.URI)
		if err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}
		text = &content
	}

	diagnostics := h.update(params.TextDocument.URI, *text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *YsenHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	logger().Infof("closed file: %s", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.docs, params.TextDocument.URI)

	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *YsenHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	logger().Debugf("semantic tokens requested for %s", params.TextDocument.URI)

	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.content, doc.tokens)),
	}, nil
}

// Document returns the tokens of an open document, or false if it is not open.
func (h *YsenHandler) Document(uri protocol.DocumentUri) ([]token.Token, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.docs[uri]
	if !ok {
		return nil, false
	}
	return doc.tokens, true
}

func (h *YsenHandler) getOrLoad(ctx *glsp.Context, uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	doc, ok := h.docs[uri]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	content, err := readDocument(uri)
	if err != nil {
		return nil, err
	}
	sendDiagnosticNotification(ctx, uri, h.update(uri, content))

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.docs[uri], nil
}

// update re-lexes content, stores the result and returns the diagnostics to publish.
func (h *YsenHandler) update(uri protocol.DocumentUri, content string) []protocol.Diagnostic {
	l := lexer.New(content, lexer.Options{Comments: true})
	tokens, err := l.Lex()

	var diagnostics []protocol.Diagnostic
	if err != nil {
		diagnostics = ConvertLexError(content, err)
	} else {
		diagnostics = ConvertSkipped(content, l.Skipped())
	}

	h.mu.Lock()
	h.docs[uri] = &document{content: content, tokens: tokens}
	h.mu.Unlock()

	return diagnostics
}

func readDocument(uri protocol.DocumentUri) (string, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return "", fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	logger().Debugf("sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
