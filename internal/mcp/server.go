package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tickdown/tickdown/internal/config"
	"github.com/tickdown/tickdown/internal/state"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"timer_add": {
		def:     addToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAdd },
	},
	"timer_start": {
		def:     startToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleStart },
	},
	"timer_pause": {
		def:     pauseToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePause },
	},
	"timer_reset": {
		def:     resetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleReset },
	},
	"timer_complete": {
		def:     completeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleComplete },
	},
	"timer_delete": {
		def:     deleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDelete },
	},
	"timer_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"category_start": {
		def:     categoryStartToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCategoryStart },
	},
	"category_pause": {
		def:     categoryPauseToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCategoryPause },
	},
	"category_reset": {
		def:     categoryResetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCategoryReset },
	},
	"history_list": {
		def:     historyToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleHistory },
	},
	"history_export": {
		def:     exportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleExport },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// NewServer creates a new MCP server with tickdown tools registered.
func NewServer(container *state.Container, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"tickdown",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(container, cfg)

	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(container *state.Container, cfg *config.Config, version string) error {
	s := NewServer(container, cfg, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
