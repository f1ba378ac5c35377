package task

import (
	"context"

	"taskwarrior-mcp/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Read operations export from Taskwarrior, enrich and analyze; write
// operations delegate to Taskwarrior's own commands and never implement
// task-state logic themselves.
type UseCase interface {
	// List exports tasks matching a filter expression and status, with
	// resolved dependencies.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Get returns one task by working-set ID or UUID, with resolved
	// dependencies.
	Get(ctx context.Context, input GetInput) (model.Task, error)

	// BulkGet returns several tasks at once and reports IDs that matched
	// nothing.
	BulkGet(ctx context.Context, input BulkGetInput) (BulkGetOutput, error)

	// Add creates a new task.
	Add(ctx context.Context, input AddInput) (MutationOutput, error)

	// Modify applies a partial update to an existing task.
	Modify(ctx context.Context, input ModifyInput) (MutationOutput, error)

	// Complete marks a task done.
	Complete(ctx context.Context, taskID string) (MutationOutput, error)

	// Delete marks a task deleted (recoverable via Undo).
	Delete(ctx context.Context, taskID string) (MutationOutput, error)

	// Annotate attaches a timestamped note.
	Annotate(ctx context.Context, input AnnotateInput) (MutationOutput, error)

	// Start and Stop toggle the active marker.
	Start(ctx context.Context, taskID string) (MutationOutput, error)
	Stop(ctx context.Context, taskID string) (MutationOutput, error)

	// Undo reverts the most recent change in the store.
	Undo(ctx context.Context) (MutationOutput, error)

	// Projects lists project labels with pending-task counts.
	Projects(ctx context.Context) (ProjectsOutput, error)

	// Tags lists tags with usage counts.
	Tags(ctx context.Context) (TagsOutput, error)

	// Summary is the high-level pending snapshot.
	Summary(ctx context.Context) (SummaryOutput, error)

	// Overview bundles summary, projects and tags in one export pass.
	Overview(ctx context.Context, input OverviewInput) (OverviewOutput, error)

	// ProjectSummary computes per-project analytics.
	ProjectSummary(ctx context.Context, input ProjectSummaryInput) (ProjectSummaryOutput, error)

	// Suggest scores and ranks ready tasks with textual reasons.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)

	// Ready lists pending tasks with no pending dependencies.
	Ready(ctx context.Context, input ReadyInput) (ReadyOutput, error)

	// Blocked lists pending tasks waiting on other tasks.
	Blocked(ctx context.Context, input BlockedInput) (BlockedOutput, error)

	// Dependencies analyzes the dependency graph, as an overview or for one
	// task.
	Dependencies(ctx context.Context, input DependenciesInput) (DependenciesOutput, error)

	// Triage finds stale, unorganized or forgotten tasks.
	Triage(ctx context.Context, input TriageInput) (TriageOutput, error)

	// Context builds the rich single-task view with computed insights.
	Context(ctx context.Context, input ContextInput) (ContextOutput, error)
}
