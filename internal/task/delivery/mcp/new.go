// Package mcp exposes the task use case as MCP tools over stdio.
// Handlers translate tool arguments into use case inputs and render
// results in the requested output format; no business logic lives here.
package mcp

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taskwarrior-mcp/internal/task"
	"taskwarrior-mcp/internal/task/repository"
	"taskwarrior-mcp/pkg/format"
	pkgLog "taskwarrior-mcp/pkg/log"
)

// Handler wires MCP tool calls to the task use case.
type Handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new MCP delivery handler.
func New(l pkgLog.Logger, uc task.UseCase) *Handler {
	return &Handler{l: l, uc: uc}
}

// Register adds every tool to the server.
func (h *Handler) Register(s *server.MCPServer) {
	h.registerCoreTools(s)
	h.registerIntelligenceTools(s)
}

// withFormat declares the shared output format parameter.
func withFormat() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Output format: 'concise' for minimal one-line-per-task output, 'markdown' for human-readable detail, 'json' for the complete machine-readable record"),
		mcp.Enum(string(format.Concise), string(format.Markdown), string(format.JSON)),
	)
}

// parseFormat resolves the requested output mode, defaulting to markdown.
func parseFormat(req mcp.CallToolRequest) (format.Mode, error) {
	raw := req.GetString("format", string(format.Markdown))
	mode := format.Mode(raw)
	if !format.ValidMode(mode) {
		return "", fmt.Errorf("unknown format %q: use concise, markdown or json", raw)
	}
	return mode, nil
}

// optString reads an optional argument, distinguishing "absent" from
// "present but empty". Empty means clear the field.
func optString(req mcp.CallToolRequest, key string) *string {
	args := req.GetArguments()
	v, ok := args[key]
	if !ok {
		return nil
	}
	s := fmt.Sprintf("%v", v)
	return &s
}

// errorResult renders a domain error as a tool error result. Domain errors
// come back as in-band results so the model can read them and recover; only
// transport failures propagate as protocol errors.
func (h *Handler) errorResult(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return mcp.NewToolResultError(err.Error())
	case errors.Is(err, task.ErrNothingToUndo):
		return mcp.NewToolResultError("Nothing to undo: the operation history is empty.")
	case errors.Is(err, repository.ErrBinaryNotFound):
		return mcp.NewToolResultError(err.Error())
	}

	var vErr *task.ValidationError
	if errors.As(err, &vErr) {
		return mcp.NewToolResultError(vErr.Error())
	}
	var pErr *repository.ParseError
	if errors.As(err, &pErr) {
		return mcp.NewToolResultError(pErr.Error())
	}
	var cErr *repository.CommandError
	if errors.As(err, &cErr) {
		return mcp.NewToolResultError(cErr.Error())
	}
	return mcp.NewToolResultError(err.Error())
}
