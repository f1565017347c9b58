package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ysen/internal/errors"
	"ysen/internal/lexer"
	"ysen/internal/source"
)

// ConvertLexError transforms a failed lex into LSP diagnostics for IDE display.
func ConvertLexError(content string, err error) []protocol.Diagnostic {
	compilerErr, ok := errors.FromLexError(content, err)
	if !ok {
		return []protocol.Diagnostic{{
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("ysen-lexer"),
			Message:  err.Error(),
		}}
	}
	return ConvertDiagnostics(content, []errors.CompilerError{compilerErr})
}

// ConvertSkipped reports every skipped byte as a warning.
func ConvertSkipped(content string, skipped []lexer.Skip) []protocol.Diagnostic {
	return ConvertDiagnostics(content, errors.FromSkipped(skipped))
}

// ConvertDiagnostics transforms compiler errors into LSP diagnostics. The
// range covers Length bytes from the error position and may span lines.
func ConvertDiagnostics(content string, compilerErrs []errors.CompilerError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, compilerErr := range compilerErrs {
		severity := protocol.DiagnosticSeverityError
		if compilerErr.Level == errors.Warning {
			severity = protocol.DiagnosticSeverityWarning
		}

		start := compilerErr.Position
		end := advance(content, start, max(1, compilerErr.Length))

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: toProtocolPosition(start),
				End:   toProtocolPosition(end),
			},
			Severity: ptrSeverity(severity),
			Code:     &protocol.IntegerOrString{Value: compilerErr.Code},
			Source:   ptrString("ysen-lexer"),
			Message:  compilerErr.Message,
		})
	}

	return diagnostics
}

// advance walks n bytes of content forward from pos, stopping at the end of content.
func advance(content string, pos source.Position, n int) source.Position {
	for i := 0; i < n && pos.Offset < len(content); i++ {
		pos.Advance(content[pos.Offset])
	}
	return pos
}

// toProtocolPosition sends byte columns. LSP counts UTF-16 code units, so
// columns after a non-ASCII byte on the same line are off for such clients.
func toProtocolPosition(pos source.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Row),
		Character: uint32(pos.Col),
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
