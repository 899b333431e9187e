package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tickdown/tickdown/internal/config"
	"github.com/tickdown/tickdown/internal/errors"
	"github.com/tickdown/tickdown/internal/ops"
	"github.com/tickdown/tickdown/internal/state"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	container *state.Container
	cfg       *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(container *state.Container, cfg *config.Config) *Handlers {
	return &Handlers{container: container, cfg: cfg}
}

// Request types for each tool

// AddRequest represents the arguments for timer_add.
type AddRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Duration     int    `json:"duration"`
	HalfwayAlert bool   `json:"halfway_alert,omitempty"`
}

// IDRequest represents the arguments for single-timer tools.
type IDRequest struct {
	ID string `json:"id"`
}

// CategoryRequest represents the arguments for bulk category tools.
type CategoryRequest struct {
	Category string `json:"category"`
}

// ListRequest represents the arguments for timer_list.
type ListRequest struct {
	Category string `json:"category,omitempty"`
}

// HistoryRequest represents the arguments for history_list.
type HistoryRequest struct {
	Category string `json:"category,omitempty"`
}

// ExportRequest represents the arguments for history_export.
type ExportRequest struct {
	Path string `json:"path,omitempty"`
}

// HandleAdd handles the timer_add tool call.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Add(h.container, ops.AddInput{
		Name:         input.Name,
		Category:     input.Category,
		Duration:     input.Duration,
		HalfwayAlert: input.HalfwayAlert,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleStart handles the timer_start tool call.
func (h *Handlers) HandleStart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Start(h.container, input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandlePause handles the timer_pause tool call.
func (h *Handlers) HandlePause(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Pause(h.container, input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleReset handles the timer_reset tool call.
func (h *Handlers) HandleReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Reset(h.container, input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleComplete handles the timer_complete tool call.
func (h *Handlers) HandleComplete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Complete(h.container, input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the timer_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(h.container, input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the timer_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(h.container, ops.ListInput{Category: input.Category})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCategoryStart handles the category_start tool call.
func (h *Handlers) HandleCategoryStart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CategoryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.StartCategory(h.container, input.Category)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCategoryPause handles the category_pause tool call.
func (h *Handlers) HandleCategoryPause(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CategoryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.PauseCategory(h.container, input.Category)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCategoryReset handles the category_reset tool call.
func (h *Handlers) HandleCategoryReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CategoryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ResetCategory(h.container, input.Category)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleHistory handles the history_list tool call.
func (h *Handlers) HandleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[HistoryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.History(h.container, ops.HistoryInput{Category: input.Category})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleExport handles the history_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(h.container, h.cfg, ops.ExportInput{Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if tickErr, ok := err.(*errors.TickError); ok {
		errorObj := map[string]any{
			"code":    tickErr.Code,
			"message": tickErr.Message,
			"status":  tickErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths
		if tickErr.Code != errors.ErrInternal && tickErr.Details != nil {
			errorObj["details"] = tickErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
