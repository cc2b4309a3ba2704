package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kpumuk/bagelcore/internal/diag"
	"github.com/kpumuk/bagelcore/internal/source"
)

const (
	jsonRPCInvalidRequest = -32600
	jsonRPCMethodNotFound = -32601
)

// Server is a hover-and-diagnostics LSP server with an in-memory document store.
type Server struct {
	store *Store

	mu       sync.Mutex
	shutdown bool
}

// NewServer creates a new LSP server instance.
func NewServer() *Server {
	return &Server{store: NewStore()}
}

// Store returns the backing document store (primarily for tests).
func (s *Server) Store() *Store {
	if s == nil {
		return nil
	}
	return s.store
}

// Run serves JSON-RPC/LSP messages using Content-Length framing.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if s == nil {
		return errors.New("nil Server")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	br := bufio.NewReader(in)
	bw := bufio.NewWriter(out)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		body, err := readFramedMessage(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			_ = s.writeErrorResponse(bw, nil, jsonRPCParseError, err.Error())
			_ = bw.Flush()
			continue
		}
		if len(body) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(body, &req); err != nil {
			_ = s.writeErrorResponse(bw, nil, jsonRPCParseError, err.Error())
			_ = bw.Flush()
			continue
		}
		if req.JSONRPC != "" && req.JSONRPC != JSONRPCVersion {
			_ = s.writeErrorResponse(bw, req.ID, jsonRPCInvalidRequest, "unsupported jsonrpc version")
			_ = bw.Flush()
			continue
		}
		if req.Method == "" {
			continue
		}

		if err := s.dispatch(bw, req); err != nil {
			if errors.Is(err, ErrShutdownRequested) {
				return nil
			}
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
	}
}

func (s *Server) dispatch(w *bufio.Writer, req Request) error {
	isRequest := len(req.ID) != 0
	writeResp := func(result any) error {
		if !isRequest {
			return nil
		}
		return s.writeResponse(w, Response{JSONRPC: JSONRPCVersion, ID: req.ID, Result: result})
	}
	writeErr := func(code int, msg string) error {
		if !isRequest {
			return nil
		}
		return s.writeErrorResponse(w, req.ID, code, msg)
	}

	switch req.Method {
	case "initialize":
		return writeResp(InitializeResult{Capabilities: DefaultServerCapabilities()})
	case "shutdown":
		s.mu.Lock()
		s.shutdown = true
		s.mu.Unlock()
		return writeResp(struct{}{})
	case "exit":
		return ErrShutdownRequested
	case "textDocument/didOpen":
		var p DidOpenParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return writeErr(jsonRPCInvalidParams, err.Error())
		}
		doc := s.store.Open(p.TextDocument.URI, p.TextDocument.Version, p.TextDocument.Text)
		return s.publishDiagnostics(w, doc)
	case "textDocument/didChange":
		var p DidChangeParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return writeErr(jsonRPCInvalidParams, err.Error())
		}
		if len(p.ContentChanges) == 0 {
			return nil
		}
		text := p.ContentChanges[len(p.ContentChanges)-1].Text
		doc := s.store.Open(p.TextDocument.URI, p.TextDocument.Version, text)
		return s.publishDiagnostics(w, doc)
	case "textDocument/didClose":
		var p DidCloseParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return writeErr(jsonRPCInvalidParams, err.Error())
		}
		s.store.Close(p.TextDocument.URI)
		return s.writeNotification(w, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
			URI:         p.TextDocument.URI,
			Diagnostics: []Diagnostic{},
		})
	case "textDocument/hover":
		var p HoverParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return writeErr(jsonRPCInvalidParams, err.Error())
		}
		doc, err := s.store.Get(p.TextDocument.URI)
		if err != nil {
			return writeErr(jsonRPCInvalidParams, err.Error())
		}
		hover, err := Hover(doc, p.Position)
		if err != nil {
			return writeErr(jsonRPCInternalError, err.Error())
		}
		return writeResp(hover)
	default:
		return writeErr(jsonRPCMethodNotFound, "method not found")
	}
}

func (s *Server) publishDiagnostics(w *bufio.Writer, doc *Document) error {
	li := source.NewLineIndex(doc.Code)
	out := make([]Diagnostic, 0, len(doc.Diagnostics))
	for _, d := range doc.Diagnostics {
		rng, err := lspRangeFromSpan(li, d.Span)
		if err != nil {
			continue
		}
		out = append(out, Diagnostic{
			Range:    rng,
			Severity: lspSeverity(d.Severity),
			Code:     string(d.Code),
			Message:  d.Message,
		})
	}
	return s.writeNotification(w, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: out,
	})
}

func lspRangeFromSpan(li *source.LineIndex, sp source.Span) (Range, error) {
	start, err := li.OffsetToPoint(sp.Start)
	if err != nil {
		return Range{}, err
	}
	end, err := li.OffsetToPoint(sp.End)
	if err != nil {
		return Range{}, err
	}
	return Range{
		Start: Position{Line: start.Line, Character: start.Column},
		End:   Position{Line: end.Line, Character: end.Column},
	}, nil
}

func lspSeverity(sev diag.Severity) int {
	switch sev {
	case diag.SeverityWarning:
		return 2
	case diag.SeverityInfo:
		return 3
	default:
		return 1
	}
}

func (s *Server) writeResponse(w *bufio.Writer, resp Response) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return writeFramedMessage(w, body)
}

func (s *Server) writeErrorResponse(w *bufio.Writer, id json.RawMessage, code int, msg string) error {
	return s.writeResponse(w, Response{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error:   &ResponseError{Code: code, Message: msg},
	})
}

func (s *Server) writeNotification(w *bufio.Writer, method string, params any) error {
	body, err := json.Marshal(struct {
		JSONRPC string `json:"jsonrpc"`
		Method  string `json:"method"`
		Params  any    `json:"params,omitempty"`
	}{
		JSONRPC: JSONRPCVersion,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}
	return writeFramedMessage(w, body)
}

func readFramedMessage(r *bufio.Reader) ([]byte, error) {
	contentLen := -1
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		if line == "\r\n" || line == "\n" {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header line %q", line)
		}
		if strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			var n int
			if _, err := fmt.Sscanf(strings.TrimSpace(value), "%d", &n); err != nil || n < 0 {
				return nil, fmt.Errorf("invalid Content-Length %q", value)
			}
			contentLen = n
		}
	}
	if contentLen < 0 {
		return nil, errors.New("missing Content-Length")
	}
	body := make([]byte, contentLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

func writeFramedMessage(w io.Writer, body []byte) error {
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}
