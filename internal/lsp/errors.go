package lsp

import "errors"

const (
	jsonRPCParseError    = -32700
	jsonRPCInvalidParams = -32602
	jsonRPCInternalError = -32603
)

var (
	// ErrShutdownRequested is returned internally after exit notification is handled.
	ErrShutdownRequested = errors.New("lsp server exit requested")
	// ErrDocumentNotOpen indicates a request referenced a document that is not tracked.
	ErrDocumentNotOpen = errors.New("document is not open")
)
