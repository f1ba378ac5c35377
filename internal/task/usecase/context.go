package usecase

import (
	"context"
	"fmt"
	"time"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
	"taskwarrior-mcp/pkg/taskdate"
)

func (uc *implUseCase) Context(ctx context.Context, input task.ContextInput) (task.ContextOutput, error) {
	if input.TaskID == "" {
		return task.ContextOutput{}, &task.ValidationError{Field: "task_id", Reason: "must not be empty"}
	}

	all, err := uc.exportAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Context: %v", err)
		return task.ContextOutput{}, err
	}

	t, ok := findByRef(all, input.TaskID)
	if !ok {
		return task.ContextOutput{}, fmt.Errorf("task %q: %w", input.TaskID, task.ErrTaskNotFound)
	}

	now := uc.now()
	out := task.ContextOutput{
		Task: t,
		Computed: task.Insights{
			Age:              taskdate.HumanAge(t.Entry, now),
			LastActivity:     lastActivity(t, now),
			DependencyStatus: dependencyStatus(t),
			AnnotationsCount: len(t.Annotations),
		},
	}

	if t.Project != "" {
		var related []model.Task
		for _, other := range all {
			if other.UUID == t.UUID || other.Status != model.StatusPending {
				continue
			}
			if inProject(other, t.Project) {
				related = append(related, other)
			}
		}
		out.Computed.RelatedPending = len(related)
		if input.IncludeRelated {
			sortByUrgency(related)
			out.Related = applyLimit(related, 5)
		}
	}
	return out, nil
}

// lastActivity prefers the newest annotation over the modification
// timestamp; a note is a stronger signal of attention than a field change.
func lastActivity(t model.Task, now time.Time) string {
	newest := t.Modified
	for _, a := range t.Annotations {
		if a.Entry > newest {
			newest = a.Entry
		}
	}
	if newest == "" {
		newest = t.Entry
	}
	return taskdate.HumanSince(newest, now)
}

func dependencyStatus(t model.Task) string {
	if len(t.Depends) == 0 {
		return "independent"
	}
	if t.BlockedByPending > 0 {
		return fmt.Sprintf("blocked by %d pending task(s)", t.BlockedByPending)
	}
	return "all dependencies resolved"
}
