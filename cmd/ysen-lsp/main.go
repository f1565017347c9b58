// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"ysen/internal/lsp"
)

const lsName = "ysen" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("ysen.lsp")

	ysenHandler := lsp.NewYsenHandler()

	handler = protocol.Handler{
		Initialize:                     ysenHandler.Initialize,
		Initialized:                    ysenHandler.Initialized,
		Shutdown:                       ysenHandler.Shutdown,
		SetTrace:                       ysenHandler.SetTrace,
		TextDocumentDidOpen:            ysenHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           ysenHandler.TextDocumentDidClose,
		TextDocumentDidChange:          ysenHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: ysenHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting ysen LSP server %s", version)

	// Editors talk to the server over stdin/stdout
	if err := s.RunStdio(); err != nil {
		log.Errorf("error running ysen LSP server: %s", err)
		os.Exit(1)
	}
}
