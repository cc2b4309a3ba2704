package lsp

// DefaultServerCapabilities returns the capability set this server
// actually implements: full-document sync plus hover.
func DefaultServerCapabilities() ServerCapabilities {
	return ServerCapabilities{
		TextDocumentSync: TextDocumentSyncOptions{
			OpenClose: true,
			Change:    TextDocumentSyncKindFull,
		},
		HoverProvider: true,
	}
}
