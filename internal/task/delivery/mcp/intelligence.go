package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taskwarrior-mcp/internal/task"
)

// Result-size defaults applied when the caller omits limit. Zero stays
// available as the explicit "no limit" value.
const (
	defaultListLimit    = 50
	defaultReadyLimit   = 10
	defaultBlockedLimit = 10
	defaultTriageLimit  = 20
)

func (h *Handler) registerIntelligenceTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("task_suggest",
		mcp.WithDescription("Suggest what to work on next. Scores unblocked pending tasks by priority, due-date proximity, age, activity and how many tasks they block, and explains each pick."),
		mcp.WithNumber("limit", mcp.Description("Maximum suggestions to return, default 5")),
		mcp.WithString("context", mcp.Description("Working mode: 'quick_wins' for small wins, 'blockers' for tasks holding others up, 'deadlines' for date-driven work"), mcp.Enum("quick_wins", "blockers", "deadlines")),
		mcp.WithString("project", mcp.Description("Limit suggestions to one project")),
		withFormat(),
		mcp.WithTitleAnnotation("Suggest next tasks"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleSuggest)

	s.AddTool(mcp.NewTool("task_ready",
		mcp.WithDescription("List tasks that are actionable right now: pending with no pending dependencies."),
		mcp.WithNumber("limit", mcp.Description("Maximum tasks to return, default 10, 0 for no limit")),
		mcp.WithString("project", mcp.Description("Limit to one project")),
		mcp.WithString("priority", mcp.Description("Limit to one priority"), mcp.Enum("H", "M", "L")),
		mcp.WithBoolean("include_active", mcp.Description("Include tasks already started, default true")),
		withFormat(),
		mcp.WithTitleAnnotation("Ready tasks"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleReady)

	s.AddTool(mcp.NewTool("task_blocked",
		mcp.WithDescription("List tasks waiting on other tasks, optionally with the blocking tasks spelled out."),
		mcp.WithNumber("limit", mcp.Description("Maximum tasks to return, default 10, 0 for no limit")),
		mcp.WithBoolean("show_blockers", mcp.Description("Include the blocking tasks for each entry, default true")),
		withFormat(),
		mcp.WithTitleAnnotation("Blocked tasks"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleBlocked)

	s.AddTool(mcp.NewTool("task_dependencies",
		mcp.WithDescription("Analyze the dependency graph. Without task_id: bottlenecks and the blocked/ready split. With task_id: what that task blocks and is blocked by."),
		mcp.WithString("task_id", mcp.Description("Working-set ID or UUID; empty for the graph overview")),
		mcp.WithString("direction", mcp.Description("Which relationships to show for a single task"), mcp.Enum("both", "blocks", "blocked_by")),
		withFormat(),
		mcp.WithTitleAnnotation("Dependency analysis"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleDependencies)

	s.AddTool(mcp.NewTool("task_triage",
		mcp.WithDescription("Find tasks needing attention: stale (no recent activity), missing a project, untagged, or without a due date."),
		mcp.WithNumber("stale_days", mcp.Description("Days without activity before a task counts as stale, default from config")),
		mcp.WithBoolean("include_no_project", mcp.Description("List tasks without a project, default true")),
		mcp.WithBoolean("include_untagged", mcp.Description("List tasks without tags, default true")),
		mcp.WithBoolean("include_no_due", mcp.Description("List tasks without a due date, default true")),
		mcp.WithNumber("limit", mcp.Description("Maximum tasks per category, default 20, 0 for no limit")),
		withFormat(),
		mcp.WithTitleAnnotation("Triage tasks"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleTriage)

	s.AddTool(mcp.NewTool("task_context",
		mcp.WithDescription("Everything about one task in a single call: full record, age, last activity, dependency status and related work in the same project."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Working-set ID or UUID")),
		mcp.WithBoolean("include_related", mcp.Description("Include pending tasks from the same project")),
		withFormat(),
		mcp.WithTitleAnnotation("Task context"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleContext)
}

func (h *Handler) handleSuggest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.Suggest(ctx, task.SuggestInput{
		Limit:   req.GetInt("limit", 0),
		Context: req.GetString("context", ""),
		Project: req.GetString("project", ""),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderSuggest(mode, out)), nil
}

func (h *Handler) handleReady(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.Ready(ctx, task.ReadyInput{
		Limit:         req.GetInt("limit", defaultReadyLimit),
		Project:       req.GetString("project", ""),
		Priority:      req.GetString("priority", ""),
		IncludeActive: req.GetBool("include_active", true),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderReady(mode, out)), nil
}

func (h *Handler) handleBlocked(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.Blocked(ctx, task.BlockedInput{
		Limit:        req.GetInt("limit", defaultBlockedLimit),
		ShowBlockers: req.GetBool("show_blockers", true),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderBlocked(mode, out)), nil
}

func (h *Handler) handleDependencies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.Dependencies(ctx, task.DependenciesInput{
		TaskID:    req.GetString("task_id", ""),
		Direction: req.GetString("direction", ""),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderDependencies(mode, out)), nil
}

func (h *Handler) handleTriage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.Triage(ctx, task.TriageInput{
		StaleDays:        req.GetInt("stale_days", 0),
		IncludeNoProject: req.GetBool("include_no_project", true),
		IncludeUntagged:  req.GetBool("include_untagged", true),
		IncludeNoDue:     req.GetBool("include_no_due", true),
		Limit:            req.GetInt("limit", defaultTriageLimit),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderTriage(mode, out)), nil
}

func (h *Handler) handleContext(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := req.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.Context(ctx, task.ContextInput{
		TaskID:         taskID,
		IncludeRelated: req.GetBool("include_related", true),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderContext(mode, out)), nil
}
