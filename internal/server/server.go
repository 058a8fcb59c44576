// Package server exposes the window-grid and clipboard operations as MCP
// tools so AI agents can drive them without shell overhead.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/modules/clipboard"
	"github.com/dbmrq/spoons/internal/modules/windowgrid"
	"github.com/dbmrq/spoons/internal/platform"
	"github.com/dbmrq/spoons/internal/sched"
	"github.com/dbmrq/spoons/internal/settings"
	"github.com/dbmrq/spoons/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the platform provider and window cache.
type Server struct {
	provider   *platform.Provider
	cache      *WindowCache
	providerMu sync.Mutex
	grid       *windowgrid.Module
	store      *settings.Store
	mcp        *mcpserver.MCPServer
}

// New creates and configures an MCP server with all spoons tools. store may
// be nil when the settings database is unavailable; the clipboard tools then
// report an error per call.
func New(cfg Config, appCfg config.Config, store *settings.Store) (*Server, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	grid, err := windowgrid.New(appCfg.Grid, windowgrid.Deps{
		Windows: provider.WindowManager,
		Screens: provider.Screens,
		Sched:   sched.New(),
	})
	if err != nil {
		return nil, err
	}

	s := &Server{
		provider: provider,
		cache:    NewWindowCache(cfg.CacheTTL),
		grid:     grid,
		store:    store,
	}

	s.mcp = mcpserver.NewMCPServer("spoons", version.Version)
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("windows",
			mcp.WithDescription("List open windows with their app name, title, PID, and frame"),
			mcp.WithString("app", mcp.Description("Filter by application name")),
			mcp.WithNumber("pid", mcp.Description("Filter by process ID")),
			mcp.WithNumber("screen", mcp.Description("Filter by screen ID")),
		),
		s.handleWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("screens",
			mcp.WithDescription("List displays with their usable frames"),
		),
		s.handleScreens,
	)

	s.mcp.AddTool(
		mcp.NewTool("grid",
			mcp.WithDescription("Run a window-grid action on the focused window: move-left/right/up/down, resize-left/right/up/down, snap, maximize, center, cascade, undo, redo, screen-next, screen-prev, screen-N"),
			mcp.WithString("action", mcp.Description("Grid action name"), mcp.Required()),
		),
		s.handleGrid,
	)

	s.mcp.AddTool(
		mcp.NewTool("clipboard_history",
			mcp.WithDescription("Read the clipboard history, most recent first"),
		),
		s.handleClipboardHistory,
	)

	s.mcp.AddTool(
		mcp.NewTool("clipboard_write",
			mcp.WithDescription("Write text to the pasteboard"),
			mcp.WithString("text", mcp.Description("Text to place on the pasteboard"), mcp.Required()),
		),
		s.handleClipboardWrite,
	)
}

func yamlResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts := platform.ListOptions{
		App:      stringParam(params, "app"),
		PID:      intParam(params, "pid"),
		ScreenID: intParam(params, "screen"),
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	windows, err := s.cache.ListWindows(s.provider.WindowManager, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(windows)
}

func (s *Server) handleScreens(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	screens, err := s.provider.Screens.ListScreens()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(screens)
}

func (s *Server) handleGrid(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringParam(request.GetArguments(), "action")
	action, err := windowgrid.ParseAction(name)
	screenIdx, isScreenIdx := windowgrid.ParseScreenIndex(name)
	if err != nil && !isScreenIdx {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.providerMu.Lock()
	if isScreenIdx {
		s.grid.MoveToScreen(screenIdx)
	} else {
		s.grid.Handle(action)
	}
	s.cache.InvalidateAll()
	s.providerMu.Unlock()

	return mcp.NewToolResultText(fmt.Sprintf("ok: %s", name)), nil
}

func (s *Server) handleClipboardHistory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.store == nil {
		return mcp.NewToolResultError("settings store unavailable"), nil
	}
	history, err := clipboard.PersistedHistory(s.store)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(history)
}

func (s *Server) handleClipboardWrite(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := stringParam(request.GetArguments(), "text")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	s.providerMu.Lock()
	err := s.provider.Pasteboard.SetText(text)
	s.providerMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("ok"), nil
}

func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func intParam(params map[string]interface{}, key string) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	return 0
}
