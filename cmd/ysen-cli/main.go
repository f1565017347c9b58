// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"ysen/internal/errors"
	"ysen/internal/lexer"
	"ysen/token"
)

func main() {
	var opts lexer.Options
	flag.BoolVar(&opts.Comments, "comments", false, "emit comment tokens")
	flag.BoolVar(&opts.Whitespace, "whitespace", false, "emit whitespace tokens")
	verbose := flag.Bool("v", false, "log lexer warnings")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: ysen [-comments] [-whitespace] [-v] <file.ys>")
		os.Exit(1)
	}
	if *verbose {
		commonlog.Configure(1, nil)
	}

	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, path, string(source), opts); err != nil {
		os.Exit(1)
	}
}

// run lexes source and prints either the token listing or the diagnostics.
func run(w io.Writer, path, source string, opts lexer.Options) error {
	startTime := time.Now()
	reporter := errors.NewErrorReporter(path, source)

	l := lexer.New(source, opts)
	tokens, err := l.Lex()
	duration := formatDuration(time.Since(startTime))

	if err != nil {
		if compilerErr, ok := errors.FromLexError(source, err); ok {
			fmt.Fprint(w, reporter.FormatError(compilerErr))
		} else {
			fmt.Fprintf(w, "error: %v\n", err)
		}
		fmt.Fprintln(w, color.RedString("Lexing failed after %s", duration))
		return fmt.Errorf("lexing %s: %w", path, err)
	}

	for _, warning := range errors.FromSkipped(l.Skipped()) {
		fmt.Fprint(w, reporter.FormatError(warning))
	}
	for _, tok := range tokens {
		fmt.Fprintln(w, FormatToken(tok))
	}

	fmt.Fprintln(w, color.GreenString("Lexed %d tokens from %s in %s", len(tokens), path, duration))
	return nil
}

// FormatToken renders one token per line: position, kind, text and flags.
func FormatToken(tok token.Token) string {
	kind := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	line := fmt.Sprintf("%-9s %-10s %q", dim(tok.Range.Start), kind(tok.KindName()), tok.Literal())
	if tok.Flags.Has(token.NegativeNumber) {
		line += " negative"
	}
	if tok.Flags.Has(token.FloatNumber) {
		line += " float"
	}
	return line
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
