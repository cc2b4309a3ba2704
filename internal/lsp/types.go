// Package lsp implements a hover-and-diagnostics LSP server over the
// parser/checker/type-engine stack: textDocument/didOpen and
// textDocument/didChange publish diagnostics, textDocument/hover reports
// a node's display type. Formatting, symbols, semantic tokens, and
// incremental sync are out of scope (spec.md §1 Non-goals) — this server
// only exposes what the checker can answer.
package lsp

import "encoding/json"

// JSONRPCVersion is the supported JSON-RPC protocol version.
const JSONRPCVersion = "2.0"

// Request identifies a JSON-RPC request or notification.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *ResponseError  `json:"error,omitempty"`
}

// ResponseError is a JSON-RPC/LSP error object.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InitializeParams is the LSP initialize request payload subset used here.
type InitializeParams struct {
	ProcessID *int64 `json:"processId,omitempty"`
}

// InitializeResult is the LSP initialize response payload.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
}

// ServerCapabilities declares the (small) supported feature set.
type ServerCapabilities struct {
	TextDocumentSync TextDocumentSyncOptions `json:"textDocumentSync"`
	HoverProvider    bool                    `json:"hoverProvider,omitempty"`
}

// TextDocumentSyncOptions declares document sync behavior. This server
// only supports full-document sync — no incremental edit application.
type TextDocumentSyncOptions struct {
	OpenClose bool `json:"openClose,omitempty"`
	Change    int  `json:"change,omitempty"`
}

const (
	TextDocumentSyncKindFull = 1
)

// TextDocumentIdentifier identifies an open document.
type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

// TextDocumentItem is an LSP didOpen document payload.
type TextDocumentItem struct {
	URI     string `json:"uri"`
	Version int32  `json:"version"`
	Text    string `json:"text"`
}

// DidOpenParams is the didOpen notification payload.
type DidOpenParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// TextDocumentContentChangeEvent is a didChange text edit. Only
// whole-document replacement (no Range) is supported.
type TextDocumentContentChangeEvent struct {
	Text string `json:"text"`
}

// VersionedTextDocumentIdentifier identifies an open document version.
type VersionedTextDocumentIdentifier struct {
	URI     string `json:"uri"`
	Version int32  `json:"version"`
}

// DidChangeParams is the didChange notification payload.
type DidChangeParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// DidCloseParams is the didClose notification payload.
type DidCloseParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// Position is an LSP UTF-16 position; this server treats columns as byte
// offsets, which is exact for the ASCII-only identifier/keyword surface
// this language's grammar accepts (spec.md §9 Open Questions, ASCII-only
// identifiers) but would need UTF-16 accounting for string literal bodies
// containing non-ASCII text.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is an LSP range.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// PublishDiagnosticsParams is the LSP publishDiagnostics notification payload.
type PublishDiagnosticsParams struct {
	URI         string       `json:"uri"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Diagnostic is a minimal LSP diagnostic payload.
type Diagnostic struct {
	Range    Range  `json:"range"`
	Severity int    `json:"severity,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message"`
}

// HoverParams is the textDocument/hover request payload.
type HoverParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// Hover is the textDocument/hover response payload.
type Hover struct {
	Contents string `json:"contents"`
	Range    *Range `json:"range,omitempty"`
}
