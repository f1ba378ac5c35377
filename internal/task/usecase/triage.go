package usecase

import (
	"context"
	"time"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
	"taskwarrior-mcp/pkg/taskdate"
)

func (uc *implUseCase) Triage(ctx context.Context, input task.TriageInput) (task.TriageOutput, error) {
	staleDays := input.StaleDays
	if staleDays <= 0 {
		staleDays = uc.staleDays
	}

	pending, err := uc.exportPending(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Triage: %v", err)
		return task.TriageOutput{}, err
	}

	now := uc.now()
	out := task.TriageOutput{
		StaleDays:    staleDays,
		TotalPending: len(pending),
	}

	for _, t := range pending {
		if isStale(t, staleDays, now) {
			out.Stale = append(out.Stale, t)
		}
		if input.IncludeNoProject && t.Project == "" {
			out.NoProject = append(out.NoProject, t)
		}
		if input.IncludeUntagged && len(t.Tags) == 0 {
			out.Untagged = append(out.Untagged, t)
		}
		if input.IncludeNoDue && t.Due == "" {
			out.NoDue = append(out.NoDue, t)
		}
	}

	sortByUrgency(out.Stale)
	sortByUrgency(out.NoProject)
	sortByUrgency(out.Untagged)
	sortByUrgency(out.NoDue)

	out.Stale = applyLimit(out.Stale, input.Limit)
	out.NoProject = applyLimit(out.NoProject, input.Limit)
	out.Untagged = applyLimit(out.Untagged, input.Limit)
	out.NoDue = applyLimit(out.NoDue, input.Limit)

	out.TotalItems = len(out.Stale) + len(out.NoProject) + len(out.Untagged) + len(out.NoDue)
	return out, nil
}

// isStale reports whether the task's last activity is older than the
// threshold. Last activity is the modification timestamp, falling back to
// entry; a recent annotation also counts as activity.
func isStale(t model.Task, staleDays int, now time.Time) bool {
	last := t.Modified
	if last == "" {
		last = t.Entry
	}
	if taskdate.AgeDays(last, now) < staleDays {
		return false
	}
	for _, a := range t.Annotations {
		age := taskdate.AgeDays(a.Entry, now)
		if age >= 0 && age < staleDays {
			return false
		}
	}
	return true
}
