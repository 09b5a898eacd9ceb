// Package server exposes the search engine as MCP tools over stdio or
// streamable HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/axsearch/internal/axsearch"
	"github.com/mj1618/axsearch/internal/model"
	"github.com/mj1618/axsearch/internal/output"
	"github.com/mj1618/axsearch/internal/platform"
	"github.com/mj1618/axsearch/internal/query"
	"github.com/mj1618/axsearch/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	Watch     bool
	Format    output.Format
	// Read holds the defaults applied to every tree read; tools set Path.
	Read platform.ReadOptions
}

// Server wraps the MCP server with the tree provider, search manager and cache.
type Server struct {
	provider   *platform.Provider
	manager    *axsearch.Manager
	cache      *TreeCache
	watcher    *Watcher
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
	cfg        Config
	logger     *slog.Logger
}

// New creates and configures an MCP server with all search tools. When
// cfg.Watch is set and caching is on, cached trees are dropped as soon as
// their file changes.
func New(provider *platform.Provider, manager *axsearch.Manager, cfg Config) (*Server, error) {
	if provider == nil || provider.Reader == nil {
		return nil, platform.ErrUnsupported
	}
	if manager == nil {
		manager = axsearch.NewManager()
	}
	if cfg.Format == "" {
		cfg.Format = output.FormatYAML
	}

	s := &Server{
		provider: provider,
		manager:  manager,
		cache:    NewTreeCache(cfg.CacheTTL),
		cfg:      cfg,
		logger:   slog.Default().With("component", "mcp"),
	}

	if cfg.Watch && cfg.CacheTTL > 0 {
		w, err := NewWatcher(s.cache.Invalidate, s.logger)
		if err != nil {
			return nil, err
		}
		s.watcher = w
	}

	s.mcp = mcpserver.NewMCPServer(
		"axsearch",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve() error {
	s.logger.Info("starting MCP server", "transport", s.cfg.Transport, "cache_ttl", s.cfg.CacheTTL, "watch", s.watcher != nil)
	switch s.cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", s.cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

// Close stops the file watcher.
func (s *Server) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

func (s *Server) registerTools() {
	// search
	s.mcp.AddTool(
		mcp.NewTool("search",
			mcp.WithDescription("Find accessibility nodes matching search keys, walking the tree in reading order from a start node. Returns matches with IDs, refs, roles and bounds."),
			mcp.WithString("tree", mcp.Description("Path to a tree file (.yaml or .json)"), mcp.Required()),
			mcp.WithString("keys", mcp.Description("Comma-separated search keys or meta-keys (e.g. 'heading', 'interactive'); see the keys tool"), mcp.Required()),
			mcp.WithString("anchor", mcp.Description("Only search inside this node (ID or ref, default: root)")),
			mcp.WithString("start", mcp.Description("Start after (or before) this node (ID or ref)")),
			mcp.WithString("direction", mcp.Description("Direction: next or previous (default: next)")),
			mcp.WithString("text", mcp.Description("Only match nodes whose text contains this string")),
			mcp.WithNumber("limit", mcp.Description("Max results (default: 10)")),
			mcp.WithBoolean("visible-only", mcp.Description("Skip nodes outside the viewport")),
			mcp.WithBoolean("immediate", mcp.Description("Only match direct children of the anchor")),
		),
		s.logged("search", s.handleSearch),
	)

	// find_range
	s.mcp.AddTool(
		mcp.NewTool("find_range",
			mcp.WithDescription("Find the next or previous misspelled word and return its text range with suggested corrections"),
			mcp.WithString("tree", mcp.Description("Path to a tree file (.yaml or .json)"), mcp.Required()),
			mcp.WithString("anchor", mcp.Description("Only search inside this node (ID or ref, default: root)")),
			mcp.WithString("start", mcp.Description("Start node (ID or ref)")),
			mcp.WithString("direction", mcp.Description("Direction: next or previous (default: next)")),
			mcp.WithString("from", mcp.Description("Continue from START:END byte offsets in the start node's text")),
		),
		s.logged("find_range", s.handleFindRange),
	)

	// keys
	s.mcp.AddTool(
		mcp.NewTool("keys",
			mcp.WithDescription("List every search key and meta-key"),
		),
		s.logged("keys", s.handleKeys),
	)

	// tree
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("List the linked tree in reading order with IDs, refs, traits and breadcrumb paths"),
			mcp.WithString("tree", mcp.Description("Path to a tree file (.yaml or .json)"), mcp.Required()),
			mcp.WithString("roles", mcp.Description("Comma-separated roles to keep")),
			mcp.WithString("text", mcp.Description("Only keep nodes whose text contains this string")),
			mcp.WithBoolean("with-ignored", mcp.Description("Include ignored nodes")),
		),
		s.logged("tree", s.handleTree),
	)
}

// logged tags each call with a request ID and logs its outcome.
func (s *Server) logged(tool string, h mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := s.logger.With("tool", tool, "request_id", uuid.NewString())
		start := time.Now()
		result, err := h(ctx, request)
		switch {
		case err != nil:
			log.Error("tool call failed", "error", err, "duration", time.Since(start))
		case result != nil && result.IsError:
			log.Info("tool call returned error", "duration", time.Since(start))
		default:
			log.Debug("tool call", "duration", time.Since(start))
		}
		return result, err
	}
}

// readTree loads the tree named by the "tree" parameter, through the cache.
func (s *Server) readTree(params map[string]interface{}) (*model.Tree, string, error) {
	path := stringParam(params, "tree", "")
	if path == "" {
		return nil, "", errors.New("tree is required")
	}
	opts := s.cfg.Read
	opts.Path = path

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	tree, err := s.cache.ReadTree(s.provider.Reader, opts)
	if err != nil {
		return nil, "", err
	}
	if s.watcher != nil {
		if err := s.watcher.Add(path); err != nil {
			s.logger.Warn("cannot watch tree file", "path", path, "error", err)
		}
	}
	return tree, path, nil
}

func (s *Server) render(v interface{}) (*mcp.CallToolResult, error) {
	text, err := output.Sprint(s.cfg.Format, v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleSearch(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	tree, path, err := s.readTree(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := query.Search(s.manager, tree, path, query.SearchRequest{
		Keys:        stringsParam(params, "keys"),
		Anchor:      stringParam(params, "anchor", ""),
		Start:       stringParam(params, "start", ""),
		Direction:   stringParam(params, "direction", ""),
		VisibleOnly: boolParam(params, "visible-only", false),
		Immediate:   boolParam(params, "immediate", false),
		Text:        stringParam(params, "text", ""),
		Limit:       intParam(params, "limit", 0),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.render(result)
}

func (s *Server) handleFindRange(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	tree, path, err := s.readTree(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := query.FindRange(s.manager, s.provider.Speller, tree, path, query.RangeRequest{
		Anchor:    stringParam(params, "anchor", ""),
		Start:     stringParam(params, "start", ""),
		Direction: stringParam(params, "direction", ""),
		From:      stringParam(params, "from", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.render(result)
}

func (s *Server) handleKeys(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.render(query.Keys())
}

func (s *Server) handleTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	tree, path, err := s.readTree(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.render(query.Tree(tree, path, query.TreeRequest{
		Roles:       stringsParam(params, "roles"),
		Text:        stringParam(params, "text", ""),
		WithIgnored: boolParam(params, "with-ignored", false),
	}))
}
