package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taskwarrior-mcp/internal/task"
)

func (h *Handler) registerCoreTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("task_list",
		mcp.WithDescription("List tasks with optional Taskwarrior filter, status and limit. Dependencies are resolved to readable references."),
		mcp.WithString("filter", mcp.Description("Raw Taskwarrior filter expression, e.g. 'project:work +urgent' or 'due.before:eom'")),
		mcp.WithString("status", mcp.Description("Task status to list"), mcp.Enum("pending", "completed", "deleted", "waiting", "all")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of tasks to return, default 50, 0 for no limit")),
		withFormat(),
		mcp.WithTitleAnnotation("List tasks"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleList)

	s.AddTool(mcp.NewTool("task_get",
		mcp.WithDescription("Get one task by working-set ID or UUID, with resolved dependencies and annotations."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Working-set ID (e.g. '5') or UUID")),
		withFormat(),
		mcp.WithTitleAnnotation("Get task"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleGet)

	s.AddTool(mcp.NewTool("task_bulk_get",
		mcp.WithDescription("Get several tasks at once. IDs that match nothing are reported, not fatal."),
		mcp.WithArray("task_ids", mcp.Required(), mcp.Description("Working-set IDs or UUIDs"), mcp.Items(map[string]any{"type": "string"})),
		withFormat(),
		mcp.WithTitleAnnotation("Get multiple tasks"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleBulkGet)

	s.AddTool(mcp.NewTool("task_add",
		mcp.WithDescription("Create a new task with optional project, priority, due date, tags and dependencies."),
		mcp.WithString("description", mcp.Required(), mcp.Description("What needs to be done")),
		mcp.WithString("project", mcp.Description("Project label, dotted hierarchy allowed, e.g. 'work.backend'")),
		mcp.WithString("priority", mcp.Description("Task priority"), mcp.Enum("H", "M", "L")),
		mcp.WithString("due", mcp.Description("Due date in any form Taskwarrior accepts: '2025-01-15', 'friday', 'eom'")),
		mcp.WithArray("tags", mcp.Description("Tags to attach"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("depends", mcp.Description("Comma-separated IDs or UUIDs this task depends on")),
		mcp.WithTitleAnnotation("Add task"),
	), h.handleAdd)

	s.AddTool(mcp.NewTool("task_modify",
		mcp.WithDescription("Modify an existing task. Only the provided fields change; pass an empty string to clear a field."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Working-set ID or UUID")),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithString("project", mcp.Description("New project, empty string clears it")),
		mcp.WithString("priority", mcp.Description("New priority (H, M, L), empty string clears it")),
		mcp.WithString("due", mcp.Description("New due date, empty string clears it")),
		mcp.WithArray("add_tags", mcp.Description("Tags to add"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("remove_tags", mcp.Description("Tags to remove"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithTitleAnnotation("Modify task"),
		mcp.WithIdempotentHintAnnotation(true),
	), h.handleModify)

	s.AddTool(mcp.NewTool("task_complete",
		mcp.WithDescription("Mark a task as done."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Working-set ID or UUID")),
		mcp.WithTitleAnnotation("Complete task"),
		mcp.WithIdempotentHintAnnotation(true),
	), h.handleComplete)

	s.AddTool(mcp.NewTool("task_delete",
		mcp.WithDescription("Delete a task. The task is marked deleted, not purged; task_undo can bring it back."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Working-set ID or UUID")),
		mcp.WithTitleAnnotation("Delete task"),
		mcp.WithDestructiveHintAnnotation(true),
	), h.handleDelete)

	s.AddTool(mcp.NewTool("task_annotate",
		mcp.WithDescription("Attach a timestamped note to a task."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Working-set ID or UUID")),
		mcp.WithString("annotation", mcp.Required(), mcp.Description("The note text")),
		mcp.WithTitleAnnotation("Annotate task"),
	), h.handleAnnotate)

	s.AddTool(mcp.NewTool("task_start",
		mcp.WithDescription("Mark a task as started (active)."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Working-set ID or UUID")),
		mcp.WithTitleAnnotation("Start task"),
		mcp.WithIdempotentHintAnnotation(true),
	), h.handleStart)

	s.AddTool(mcp.NewTool("task_stop",
		mcp.WithDescription("Stop working on a task (clear the active marker)."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Working-set ID or UUID")),
		mcp.WithTitleAnnotation("Stop task"),
		mcp.WithIdempotentHintAnnotation(true),
	), h.handleStop)

	s.AddTool(mcp.NewTool("task_undo",
		mcp.WithDescription("Revert the most recent change to the task store."),
		mcp.WithTitleAnnotation("Undo last change"),
		mcp.WithDestructiveHintAnnotation(true),
	), h.handleUndo)

	s.AddTool(mcp.NewTool("task_projects",
		mcp.WithDescription("List all projects with pending-task counts."),
		withFormat(),
		mcp.WithTitleAnnotation("List projects"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleProjects)

	s.AddTool(mcp.NewTool("task_tags",
		mcp.WithDescription("List all tags with usage counts."),
		withFormat(),
		mcp.WithTitleAnnotation("List tags"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleTags)

	s.AddTool(mcp.NewTool("task_summary",
		mcp.WithDescription("High-level snapshot: pending count, active count, priority breakdown, busiest projects."),
		withFormat(),
		mcp.WithTitleAnnotation("Task summary"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleSummary)

	s.AddTool(mcp.NewTool("task_overview",
		mcp.WithDescription("Combined snapshot: summary plus optional project and tag listings, in one call."),
		mcp.WithBoolean("include_projects", mcp.Description("Include the project listing")),
		mcp.WithBoolean("include_tags", mcp.Description("Include the tag listing")),
		withFormat(),
		mcp.WithTitleAnnotation("Task overview"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleOverview)

	s.AddTool(mcp.NewTool("task_project_summary",
		mcp.WithDescription("Per-project analytics: pending/completed/active counts, overdue and upcoming due dates, priority breakdown."),
		mcp.WithString("project", mcp.Description("Limit to one project and its subprojects; empty covers all")),
		mcp.WithBoolean("include_completed", mcp.Description("Also count completed tasks")),
		withFormat(),
		mcp.WithTitleAnnotation("Project summary"),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.handleProjectSummary)
}

func (h *Handler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := h.uc.List(ctx, task.ListInput{
		Filter: req.GetString("filter", ""),
		Status: req.GetString("status", ""),
		Limit:  req.GetInt("limit", defaultListLimit),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderList(mode, out)), nil
}

func (h *Handler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := req.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t, err := h.uc.Get(ctx, task.GetInput{TaskID: taskID})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderTask(mode, t)), nil
}

func (h *Handler) handleBulkGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := h.uc.BulkGet(ctx, task.BulkGetInput{TaskIDs: req.GetStringSlice("task_ids", nil)})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderBulkGet(mode, out)), nil
}

func (h *Handler) handleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	desc, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := h.uc.Add(ctx, task.AddInput{
		Description: desc,
		Project:     req.GetString("project", ""),
		Priority:    req.GetString("priority", ""),
		Due:         req.GetString("due", ""),
		Tags:        req.GetStringSlice("tags", nil),
		Depends:     req.GetString("depends", ""),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderMutation(out)), nil
}

func (h *Handler) handleModify(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := req.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := h.uc.Modify(ctx, task.ModifyInput{
		TaskID:      taskID,
		Description: optString(req, "description"),
		Project:     optString(req, "project"),
		Priority:    optString(req, "priority"),
		Due:         optString(req, "due"),
		AddTags:     req.GetStringSlice("add_tags", nil),
		RemoveTags:  req.GetStringSlice("remove_tags", nil),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderMutation(out)), nil
}

func (h *Handler) handleComplete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.simpleMutation(ctx, req, h.uc.Complete)
}

func (h *Handler) handleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.simpleMutation(ctx, req, h.uc.Delete)
}

func (h *Handler) handleStart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.simpleMutation(ctx, req, h.uc.Start)
}

func (h *Handler) handleStop(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.simpleMutation(ctx, req, h.uc.Stop)
}

func (h *Handler) simpleMutation(
	ctx context.Context,
	req mcp.CallToolRequest,
	call func(context.Context, string) (task.MutationOutput, error),
) (*mcp.CallToolResult, error) {
	taskID, err := req.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := call(ctx, taskID)
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderMutation(out)), nil
}

func (h *Handler) handleAnnotate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := req.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	annotation, err := req.RequireString("annotation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := h.uc.Annotate(ctx, task.AnnotateInput{TaskID: taskID, Annotation: annotation})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderMutation(out)), nil
}

func (h *Handler) handleUndo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := h.uc.Undo(ctx)
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderMutation(out)), nil
}

func (h *Handler) handleProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.Projects(ctx)
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderProjects(mode, out)), nil
}

func (h *Handler) handleTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.Tags(ctx)
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderTags(mode, out)), nil
}

func (h *Handler) handleSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.Summary(ctx)
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderSummary(mode, out)), nil
}

func (h *Handler) handleOverview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.Overview(ctx, task.OverviewInput{
		IncludeProjects: req.GetBool("include_projects", true),
		IncludeTags:     req.GetBool("include_tags", true),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderOverview(mode, out)), nil
}

func (h *Handler) handleProjectSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := h.uc.ProjectSummary(ctx, task.ProjectSummaryInput{
		Project:          req.GetString("project", ""),
		IncludeCompleted: req.GetBool("include_completed", false),
	})
	if err != nil {
		return h.errorResult(err), nil
	}
	return mcp.NewToolResultText(renderProjectSummary(mode, out)), nil
}
