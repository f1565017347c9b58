package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ysen/internal/lexer"
)

func init() {
	color.NoColor = true
}

func TestRunPrintsTokens(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, "demo.ys", "x = -2.5; // done", lexer.Options{Comments: true})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, `identifier "x"`)
	assert.Contains(t, text, `operator   "="`)
	assert.Contains(t, text, `number     "-2.5" negative float`)
	assert.Contains(t, text, `comment    "// done"`)
	assert.Contains(t, text, "Lexed 5 tokens from demo.ys")
}

func TestRunReportsLexError(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, "bad.ys", "s = 'open", lexer.Options{})
	require.Error(t, err)
	assert.Equal(t, 2, lexer.ErrorCode(err))

	text := out.String()
	assert.Contains(t, text, "error[E0102]")
	assert.Contains(t, text, "bad.ys:1:5")
	assert.Contains(t, text, "Lexing failed")
}

func TestRunReportsSkippedBytes(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, "skip.ys", "a $ b", lexer.Options{}))
	assert.Contains(t, out.String(), "warning[W0001]")
	assert.Contains(t, out.String(), "Lexed 2 tokens")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500*time.Nanosecond))
	assert.Equal(t, "1.5μs", formatDuration(1500*time.Nanosecond))
	assert.Equal(t, "2.0ms", formatDuration(2*time.Millisecond))
	assert.Equal(t, "3.00s", formatDuration(3*time.Second))
	assert.Equal(t, "2.00min", formatDuration(2*time.Minute))
}
