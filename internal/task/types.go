package task

import "taskwarrior-mcp/internal/model"

// ---- Read inputs ----

// ListInput filters the task listing.
type ListInput struct {
	Filter string // Taskwarrior filter expression, e.g. "project:work +urgent"
	Status string // pending (default), completed, deleted, waiting, all
	Limit  int    // 0 means no limit
}

// GetInput identifies a single task.
type GetInput struct {
	TaskID string // working-set ID or UUID
}

// BulkGetInput identifies several tasks at once.
type BulkGetInput struct {
	TaskIDs []string
}

// ProjectSummaryInput scopes the per-project analytics.
type ProjectSummaryInput struct {
	Project          string // empty means all projects
	IncludeCompleted bool
}

// OverviewInput toggles the overview sections.
type OverviewInput struct {
	IncludeProjects bool
	IncludeTags     bool
}

// ---- Write inputs ----

// AddInput describes a new task.
type AddInput struct {
	Description string
	Project     string
	Priority    string
	Due         string
	Tags        []string
	Depends     string // comma-separated IDs or UUIDs
}

// ModifyInput is a partial update. Nil pointer fields are untouched; a
// pointer to the empty string clears the field in Taskwarrior.
type ModifyInput struct {
	TaskID      string
	Description *string
	Project     *string
	Priority    *string
	Due         *string
	AddTags     []string
	RemoveTags  []string
}

// AnnotateInput attaches a note to a task.
type AnnotateInput struct {
	TaskID     string
	Annotation string
}

// ---- Intelligence inputs ----

// Suggestion context values.
const (
	ContextQuickWins = "quick_wins"
	ContextBlockers  = "blockers"
	ContextDeadlines = "deadlines"
)

// SuggestInput tunes the recommendation call.
type SuggestInput struct {
	Limit   int
	Context string // quick_wins, blockers, deadlines, or empty for balanced
	Project string
}

// ReadyInput filters the ready (unblocked) listing.
type ReadyInput struct {
	Limit         int
	Project       string
	Priority      string
	IncludeActive bool
}

// BlockedInput filters the blocked listing.
type BlockedInput struct {
	Limit        int
	ShowBlockers bool
}

// Dependency direction values.
const (
	DirectionBoth      = "both"
	DirectionBlocks    = "blocks"
	DirectionBlockedBy = "blocked_by"
)

// DependenciesInput selects overview mode (empty TaskID) or a per-task
// analysis.
type DependenciesInput struct {
	TaskID    string
	Direction string
}

// TriageInput tunes the neglected-task review.
type TriageInput struct {
	StaleDays        int // 0 falls back to the configured default
	IncludeUntagged  bool
	IncludeNoProject bool
	IncludeNoDue     bool
	Limit            int
}

// ContextInput selects the task to build rich context for.
type ContextInput struct {
	TaskID         string
	IncludeRelated bool
}

// ---- Outputs ----

// ListOutput is a filtered, enriched task listing.
type ListOutput struct {
	Tasks []model.Task `json:"tasks"`
	Total int          `json:"total"` // before the limit was applied
}

// BulkGetOutput carries found tasks plus the IDs that matched nothing.
type BulkGetOutput struct {
	Tasks   []model.Task `json:"tasks"`
	Missing []string     `json:"missing,omitempty"`
}

// MutationOutput reports the outcome of a store mutation.
type MutationOutput struct {
	Message string `json:"message"` // confirmation for the caller
	Output  string `json:"output,omitempty"`
}

// ProjectCount pairs a project label with its pending-task count.
type ProjectCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TagCount pairs a tag with its usage count.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProjectsOutput lists all projects with counts.
type ProjectsOutput struct {
	Projects []ProjectCount `json:"projects"`
}

// TagsOutput lists all tags with counts.
type TagsOutput struct {
	Tags []TagCount `json:"tags"`
}

// SummaryOutput is the high-level pending snapshot.
type SummaryOutput struct {
	Total       int            `json:"total"`
	Active      int            `json:"active"`
	ByPriority  map[string]int `json:"by_priority"`
	TopProjects []ProjectCount `json:"top_projects"`
}

// OverviewOutput bundles summary, projects and tags in one response.
type OverviewOutput struct {
	Summary  SummaryOutput  `json:"summary"`
	Projects []ProjectCount `json:"projects,omitempty"`
	Tags     []TagCount     `json:"tags,omitempty"`
}

// ProjectStats is the per-project analytics block.
type ProjectStats struct {
	Name        string         `json:"name"`
	Pending     int            `json:"pending"`
	Completed   int            `json:"completed"`
	Active      int            `json:"active"`
	Overdue     int            `json:"overdue"`
	DueToday    int            `json:"due_today"`
	DueThisWeek int            `json:"due_this_week"`
	ByPriority  map[string]int `json:"priority"`
	NearestDue  string         `json:"nearest_due,omitempty"`
}

// ProjectSummaryOutput carries one stats block per project.
type ProjectSummaryOutput struct {
	Projects []ProjectStats `json:"projects"`
}

// ScoredTask is a task with its suggestion score and reasoning, ephemeral to
// one analysis call.
type ScoredTask struct {
	Task    model.Task `json:"task"`
	Score   float64    `json:"score"`
	Reasons []string   `json:"reasons"`
}

// SuggestOutput is the ordered recommendation list.
type SuggestOutput struct {
	Suggestions  []ScoredTask `json:"suggestions"`
	TotalPending int          `json:"total_pending"`
}

// ReadyOutput lists unblocked pending tasks.
type ReadyOutput struct {
	Tasks        []model.Task `json:"tasks"`
	TotalPending int          `json:"total_pending"`
}

// BlockedTask pairs a blocked task with its pending blockers.
type BlockedTask struct {
	Task     model.Task   `json:"task"`
	Blockers []model.Task `json:"blockers,omitempty"`
}

// BlockedOutput lists blocked pending tasks.
type BlockedOutput struct {
	Blocked      []BlockedTask `json:"blocked"`
	TotalPending int           `json:"total_pending"`
}

// Bottleneck is a pending task together with how many tasks wait on it.
type Bottleneck struct {
	Task        model.Task `json:"task"`
	BlocksCount int        `json:"blocks_count"`
}

// DependenciesOutput is either a graph overview (TaskID empty on input) or a
// single-task analysis.
type DependenciesOutput struct {
	// Overview mode
	Bottlenecks  []Bottleneck `json:"bottlenecks,omitempty"`
	BlockedIDs   []string     `json:"blocked_ids,omitempty"`
	ReadyIDs     []string     `json:"ready_ids,omitempty"`
	TotalPending int          `json:"total_pending,omitempty"`
	BlockedCount int          `json:"blocked_count,omitempty"`
	ReadyCount   int          `json:"ready_count,omitempty"`

	// Single-task mode
	Task      *model.Task  `json:"task,omitempty"`
	Blocks    []model.Task `json:"blocks,omitempty"`
	BlockedBy []model.Task `json:"blocked_by,omitempty"`
	Ready     bool         `json:"ready,omitempty"`
}

// TriageOutput categorizes tasks needing attention.
type TriageOutput struct {
	Stale        []model.Task `json:"stale"`
	NoProject    []model.Task `json:"no_project"`
	Untagged     []model.Task `json:"untagged"`
	NoDue        []model.Task `json:"no_due"`
	StaleDays    int          `json:"stale_days"`
	TotalItems   int          `json:"total_items"`
	TotalPending int          `json:"total_pending"`
}

// Insights are computed, per-request facts about one task.
type Insights struct {
	Age              string `json:"age"`
	LastActivity     string `json:"last_activity"`
	DependencyStatus string `json:"dependency_status"`
	RelatedPending   int    `json:"related_pending"`
	AnnotationsCount int    `json:"annotations_count"`
}

// ContextOutput is the rich single-task view.
type ContextOutput struct {
	Task     model.Task   `json:"task"`
	Computed Insights     `json:"computed"`
	Related  []model.Task `json:"related_tasks,omitempty"`
}
