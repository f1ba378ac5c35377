package usecase

import (
	"context"
	"fmt"
	"sort"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
)

func (uc *implUseCase) Dependencies(ctx context.Context, input task.DependenciesInput) (task.DependenciesOutput, error) {
	direction := input.Direction
	if direction == "" {
		direction = task.DirectionBoth
	}
	if direction != task.DirectionBoth && direction != task.DirectionBlocks && direction != task.DirectionBlockedBy {
		return task.DependenciesOutput{}, &task.ValidationError{
			Field:  "direction",
			Reason: fmt.Sprintf("%q is not one of both, blocks, blocked_by", input.Direction),
		}
	}

	pending, err := uc.exportPending(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Dependencies: %v", err)
		return task.DependenciesOutput{}, err
	}

	if input.TaskID == "" {
		return dependencyOverview(pending), nil
	}
	return uc.taskDependencies(ctx, pending, input.TaskID, direction)
}

// dependencyOverview summarizes the pending graph: the worst bottlenecks
// plus the blocked/ready split.
func dependencyOverview(pending []model.Task) task.DependenciesOutput {
	blocks := blocksIndex(pending)
	byUUID := indexByUUID(pending)

	bottlenecks := make([]task.Bottleneck, 0, len(blocks))
	for uuid, dependents := range blocks {
		blocker, ok := byUUID[uuid]
		if !ok || blocker.Status != model.StatusPending {
			continue
		}
		bottlenecks = append(bottlenecks, task.Bottleneck{Task: *blocker, BlocksCount: len(dependents)})
	}
	sort.Slice(bottlenecks, func(i, j int) bool {
		if bottlenecks[i].BlocksCount != bottlenecks[j].BlocksCount {
			return bottlenecks[i].BlocksCount > bottlenecks[j].BlocksCount
		}
		return bottlenecks[i].Task.UUID < bottlenecks[j].Task.UUID
	})
	if len(bottlenecks) > 5 {
		bottlenecks = bottlenecks[:5]
	}

	blocked := blockedTasks(pending)
	ready := readyTasks(pending)

	out := task.DependenciesOutput{
		Bottlenecks:  bottlenecks,
		TotalPending: len(pending),
		BlockedCount: len(blocked),
		ReadyCount:   len(ready),
	}
	for _, t := range blocked {
		out.BlockedIDs = append(out.BlockedIDs, t.ShortRef())
	}
	for _, t := range ready {
		out.ReadyIDs = append(out.ReadyIDs, t.ShortRef())
	}
	sort.Strings(out.BlockedIDs)
	sort.Strings(out.ReadyIDs)
	return out
}

func (uc *implUseCase) taskDependencies(ctx context.Context, pending []model.Task, taskID, direction string) (task.DependenciesOutput, error) {
	t, ok := findByRef(pending, taskID)
	if !ok {
		// The task may be completed or deleted; fall back to the full set.
		all, err := uc.exportAll(ctx)
		if err != nil {
			return task.DependenciesOutput{}, err
		}
		if t, ok = findByRef(all, taskID); !ok {
			return task.DependenciesOutput{}, fmt.Errorf("task %q: %w", taskID, task.ErrTaskNotFound)
		}
	}

	out := task.DependenciesOutput{Task: &t}
	pendingUUIDs := pendingUUIDSet(pending)

	if direction == task.DirectionBoth || direction == task.DirectionBlocks {
		blocks := blocksIndex(pending)
		out.Blocks = blocks[t.UUID]
		sortByUrgency(out.Blocks)
	}
	if direction == task.DirectionBoth || direction == task.DirectionBlockedBy {
		byUUID := indexByUUID(pending)
		for _, dep := range t.Depends {
			if blocker, ok := byUUID[dep]; ok {
				out.BlockedBy = append(out.BlockedBy, *blocker)
			}
		}
		sortByUrgency(out.BlockedBy)
	}

	out.Ready = t.Status == model.StatusPending && !isBlocked(t, pendingUUIDs)
	return out, nil
}
