package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"tsgoc/internal/ast"
	"tsgoc/internal/config"
	"tsgoc/internal/fixture"
	"tsgoc/internal/pipeline"
)

// SemanticTokenTypes is the set of semantic token types this server
// advertises, per the LSP spec.
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"typeParameter",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"operator",
	"modifier",
}

// SemanticTokenModifiers is the set of semantic token modifiers this server
// advertises.
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
	"deprecated",
	"abstract",
}

// Handler implements the LSP server handlers for the source-language
// subset fixture.ParseSource understands. It parses on open/change with
// fixture, then descends each parsed module through internal/pipeline
// (non-strict, so a semantic diagnostic never blocks editing) to surface
// lowering/emission diagnostics alongside syntax errors.
type Handler struct {
	mu       sync.RWMutex
	content  map[string]string
	modules  map[string]*ast.Module
	pipeline *pipeline.Pipeline
}

// NewHandler creates and returns a new Handler instance.
func NewHandler() *Handler {
	return &Handler{
		content:  make(map[string]string),
		modules:  make(map[string]*ast.Module),
		pipeline: pipeline.New(config.Default(), nil),
	}
}

// Initialize responds to the LSP client's initialize request and advertises
// the server's capabilities.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities
// and completes initialization.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("tsgoc LSP initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("tsgoc LSP shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	diagnostics, err := h.updateModule(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update module: %w", err)
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.modules, path)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	diagnostics, err := h.updateModule(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update module: %w", err)
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion handles completion requests. tsgoc has no
// completion engine yet, so this always returns an empty, complete list.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        []protocol.CompletionItem{},
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the
// entire document.
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	mod, err := h.getOrUpdateModule(ctx, path, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(mod)
	var data []uint32
	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))
		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

func (h *Handler) getOrUpdateModule(ctx *glsp.Context, path string, rawURI protocol.DocumentUri) (*ast.Module, error) {
	h.mu.RLock()
	mod, ok := h.modules[path]
	h.mu.RUnlock()
	if ok {
		return mod, nil
	}

	diagnostics, err := h.updateModule(rawURI)
	if err != nil {
		return nil, err
	}
	sendDiagnosticNotification(ctx, rawURI, diagnostics)

	h.mu.RLock()
	mod = h.modules[path]
	h.mu.RUnlock()
	return mod, nil
}

// updateModule re-parses and re-lowers the file at rawURI, caching the
// parsed module and returning diagnostics from both the parse and the
// non-strict pipeline descent.
func (h *Handler) updateModule(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	mod, err := fixture.ParseSource(path, string(content))
	if err != nil {
		return ConvertParseError(err), nil
	}

	h.mu.Lock()
	h.content[path] = string(content)
	h.modules[path] = mod
	h.mu.Unlock()

	result, err := h.pipeline.Run(context.Background(), mod)
	if err != nil {
		return nil, fmt.Errorf("pipeline run failed for %s: %w", path, err)
	}
	return ConvertDiagnostics(result.Diagnostics), nil
}

// uriToPath converts a file:// URI to a platform-local file path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	diagnosticsJSON, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		log.Println("failed to marshal diagnostics:", err)
		return
	}
	log.Println("sending diagnostics:", string(diagnosticsJSON))

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool { return &b }

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
