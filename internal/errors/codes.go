package errors

// Error codes for the ysen tokenizer
// These codes are used in diagnostics printed by the CLI and published by the
// language server.
//
// Error code ranges:
// E0100-E0199: Lexer errors
// W0001-W0099: Lexer warnings

const (
	// E0101: Numeric literal with more than one decimal point
	ErrorInvalidFloat = "E0101"

	// E0102: String literal without a closing quote
	ErrorUnterminatedString = "E0102"

	// E0103: Operator table out of sync with operator classification
	ErrorInternal = "E0103"

	// W0001: Byte that starts no token, skipped
	WarningUnknownCharacter = "W0001"
)

// GetErrorDescription returns a human-readable description of an error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorInvalidFloat:
		return "Numeric literal has more than one decimal point"
	case ErrorUnterminatedString:
		return "String literal is missing its closing quote"
	case ErrorInternal:
		return "Internal lexer error"
	case WarningUnknownCharacter:
		return "Character does not start any token and was skipped"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code != "" && code[0] == 'W'
}
