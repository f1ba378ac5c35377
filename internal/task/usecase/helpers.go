package usecase

import (
	"context"
	"sort"
	"strconv"
	"time"

	"taskwarrior-mcp/internal/model"
)

// exportAll exports every task in the store, including completed and
// deleted ones, with dependencies resolved against the full set.
func (uc *implUseCase) exportAll(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.Export(ctx)
	if err != nil {
		return nil, err
	}
	return enrichDependencies(tasks), nil
}

// exportPending exports pending tasks with dependencies resolved. Resolution
// needs the full set: a pending task may depend on one that is already done.
func (uc *implUseCase) exportPending(ctx context.Context, extra ...string) ([]model.Task, error) {
	filters := append([]string{"status:pending"}, extra...)
	tasks, err := uc.repo.Export(ctx, filters...)
	if err != nil {
		return nil, err
	}
	return uc.resolveAgainstFull(ctx, tasks)
}

// resolveAgainstFull enriches the given tasks, looking dependency UUIDs up
// in the complete task set when any task actually has dependencies.
func (uc *implUseCase) resolveAgainstFull(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	hasDeps := false
	for i := range tasks {
		if len(tasks[i].Depends) > 0 {
			hasDeps = true
			break
		}
	}
	if !hasDeps {
		return tasks, nil
	}

	all, err := uc.repo.Export(ctx)
	if err != nil {
		return nil, err
	}
	byUUID := indexByUUID(all)
	for i := range tasks {
		enrichTask(&tasks[i], byUUID)
	}
	return tasks, nil
}

// matchesRef reports whether ref identifies the task: a working-set number,
// the full UUID, or a UUID prefix of at least 8 characters.
func matchesRef(t model.Task, ref string) bool {
	if n, err := strconv.Atoi(ref); err == nil {
		return t.ID == n && n > 0
	}
	if t.UUID == ref {
		return true
	}
	return len(ref) >= 8 && len(t.UUID) > len(ref) && t.UUID[:len(ref)] == ref
}

func findByRef(tasks []model.Task, ref string) (model.Task, bool) {
	for _, t := range tasks {
		if matchesRef(t, ref) {
			return t, true
		}
	}
	return model.Task{}, false
}

// sortByUrgency orders tasks by Taskwarrior urgency descending, working-set
// ID ascending on ties. Stable output for identical input.
func sortByUrgency(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Urgency != tasks[j].Urgency {
			return tasks[i].Urgency > tasks[j].Urgency
		}
		if tasks[i].ID != tasks[j].ID {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].UUID < tasks[j].UUID
	})
}

func applyLimit(tasks []model.Task, limit int) []model.Task {
	if limit > 0 && len(tasks) > limit {
		return tasks[:limit]
	}
	return tasks
}

// inProject reports whether the task belongs to the project or one of its
// subprojects (Taskwarrior's dotted hierarchy).
func inProject(t model.Task, project string) bool {
	if project == "" {
		return true
	}
	if t.Project == project {
		return true
	}
	return len(t.Project) > len(project) &&
		t.Project[:len(project)+1] == project+"."
}

func (uc *implUseCase) now() time.Time {
	return time.Now().UTC()
}
