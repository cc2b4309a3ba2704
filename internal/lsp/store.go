package lsp

import (
	"sync"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/check"
	"github.com/kpumuk/bagelcore/internal/diag"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/source"
)

// Document is a parsed-and-checked open document.
type Document struct {
	URI         string
	Version     int32
	Code        *source.Code
	Module      *ast.Module
	Diagnostics []diag.Diagnostic
}

// Store tracks every open document by URI.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewStore creates an empty document store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Open parses and checks src, replacing any prior snapshot for uri.
func (s *Store) Open(uri string, version int32, src string) *Document {
	doc := parseAndCheck(uri, version, src)
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

// Close drops uri from the store.
func (s *Store) Close(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

// Get returns the current snapshot for uri, if open.
func (s *Store) Get(uri string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil, ErrDocumentNotOpen
	}
	return doc, nil
}

func parseAndCheck(uri string, version int32, src string) *Document {
	code := source.NewCode(uri, src)
	module, parseDiags := parser.ParseModule(code)
	diags := append([]diag.Diagnostic{}, parseDiags...)
	if module != nil {
		check.Module(module, func(d diag.Diagnostic) {
			diags = append(diags, d)
		})
	}
	diag.SortDiagnostics(diags)
	return &Document{URI: uri, Version: version, Code: code, Module: module, Diagnostics: diags}
}
