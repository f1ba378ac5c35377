package usecase

import (
	"github.com/google/uuid"

	"taskwarrior-mcp/internal/model"
)

// Dependency resolution statuses for references that cannot be looked up.
// Dangling references are reported, never fatal: a depends entry may point
// at a task that was purged from the store, or be plain garbage.
const (
	depStatusUnknown = "unknown" // well-formed UUID not present in the task set
	depStatusInvalid = "invalid" // not a UUID at all
)

// enrichDependencies populates DependsOn and BlockedByPending on every task,
// cross-referencing dependency UUIDs against the full set. The input slice
// is modified in place and returned.
func enrichDependencies(tasks []model.Task) []model.Task {
	byUUID := indexByUUID(tasks)
	for i := range tasks {
		enrichTask(&tasks[i], byUUID)
	}
	return tasks
}

func enrichTask(t *model.Task, byUUID map[string]*model.Task) {
	if len(t.Depends) == 0 {
		return
	}

	resolved := make([]model.ResolvedDependency, 0, len(t.Depends))
	pending := 0

	for _, depUUID := range t.Depends {
		dep, ok := byUUID[depUUID]
		if !ok {
			status := depStatusUnknown
			if uuid.Validate(depUUID) != nil {
				status = depStatusInvalid
			}
			resolved = append(resolved, model.ResolvedDependency{UUID: depUUID, Status: status})
			continue
		}
		resolved = append(resolved, model.ResolvedDependency{
			ID:          dep.ID,
			UUID:        depUUID,
			Description: dep.Description,
			Status:      dep.Status,
		})
		if dep.Status == model.StatusPending {
			pending++
		}
	}

	t.DependsOn = resolved
	t.BlockedByPending = pending
}

func indexByUUID(tasks []model.Task) map[string]*model.Task {
	byUUID := make(map[string]*model.Task, len(tasks))
	for i := range tasks {
		if tasks[i].UUID != "" {
			byUUID[tasks[i].UUID] = &tasks[i]
		}
	}
	return byUUID
}

// pendingUUIDSet collects the UUIDs of all pending tasks.
func pendingUUIDSet(tasks []model.Task) map[string]struct{} {
	set := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if t.Status == model.StatusPending && t.UUID != "" {
			set[t.UUID] = struct{}{}
		}
	}
	return set
}

// isBlocked reports whether a pending task has at least one pending
// dependency. Dangling references never block: only a dependency known to
// be pending holds a task back.
func isBlocked(t model.Task, pendingUUIDs map[string]struct{}) bool {
	if t.Status != model.StatusPending {
		return false
	}
	for _, dep := range t.Depends {
		if _, ok := pendingUUIDs[dep]; ok {
			return true
		}
	}
	return false
}

// readyTasks returns pending tasks with no pending dependencies. A task is
// never both ready and blocked: the two sets partition the pending tasks.
func readyTasks(tasks []model.Task) []model.Task {
	pendingUUIDs := pendingUUIDSet(tasks)
	ready := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != model.StatusPending {
			continue
		}
		if !isBlocked(t, pendingUUIDs) {
			ready = append(ready, t)
		}
	}
	return ready
}

// blockedTasks returns pending tasks with at least one pending dependency.
func blockedTasks(tasks []model.Task) []model.Task {
	pendingUUIDs := pendingUUIDSet(tasks)
	blocked := make([]model.Task, 0)
	for _, t := range tasks {
		if isBlocked(t, pendingUUIDs) {
			blocked = append(blocked, t)
		}
	}
	return blocked
}

// blocksIndex maps each task UUID to the pending tasks that depend on it
// (the inverse of the depends relation).
func blocksIndex(tasks []model.Task) map[string][]model.Task {
	blocks := make(map[string][]model.Task)
	for _, t := range tasks {
		if t.Status != model.StatusPending {
			continue
		}
		for _, dep := range t.Depends {
			blocks[dep] = append(blocks[dep], t)
		}
	}
	return blocks
}
