// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ysen/internal/lexer"
)

const PROMPT = ">> "

// Start reads lines from in, lexes each one and writes the tokens to out. The
// commands :comments and :whitespace toggle trivia tokens. It returns when in
// is exhausted.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var opts lexer.Options

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case ":comments":
			opts.Comments = !opts.Comments
			fmt.Fprintf(out, "comments %s\n", onOff(opts.Comments))
			continue
		case ":whitespace":
			opts.Whitespace = !opts.Whitespace
			fmt.Fprintf(out, "whitespace %s\n", onOff(opts.Whitespace))
			continue
		}

		l := lexer.New(line, opts)
		tokens, err := l.Lex()
		if err != nil {
			fmt.Fprintf(out, "error %d: %v\n", lexer.ErrorCode(err), err)
			continue
		}
		for _, skip := range l.Skipped() {
			fmt.Fprintf(out, "skipped %q at %s\n", skip.Byte, skip.Pos)
		}
		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
