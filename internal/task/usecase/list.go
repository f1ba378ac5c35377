package usecase

import (
	"context"
	"fmt"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
)

func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	status := input.Status
	if status == "" {
		status = model.StatusPending
	}
	if !model.ValidStatusFilter(status) {
		return task.ListOutput{}, &task.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("%q is not one of pending, completed, deleted, waiting, all", input.Status),
		}
	}

	filters := []string{}
	if status != model.StatusAll {
		filters = append(filters, "status:"+status)
	}
	if input.Filter != "" {
		filters = append(filters, input.Filter)
	}

	tasks, err := uc.repo.Export(ctx, filters...)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListOutput{}, err
	}
	tasks, err = uc.resolveAgainstFull(ctx, tasks)
	if err != nil {
		return task.ListOutput{}, err
	}

	sortByUrgency(tasks)
	total := len(tasks)
	return task.ListOutput{Tasks: applyLimit(tasks, input.Limit), Total: total}, nil
}

func (uc *implUseCase) Get(ctx context.Context, input task.GetInput) (model.Task, error) {
	if input.TaskID == "" {
		return model.Task{}, &task.ValidationError{Field: "task_id", Reason: "must not be empty"}
	}

	all, err := uc.exportAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Get: %v", err)
		return model.Task{}, err
	}

	t, ok := findByRef(all, input.TaskID)
	if !ok {
		return model.Task{}, fmt.Errorf("task %q: %w", input.TaskID, task.ErrTaskNotFound)
	}
	return t, nil
}

func (uc *implUseCase) BulkGet(ctx context.Context, input task.BulkGetInput) (task.BulkGetOutput, error) {
	if len(input.TaskIDs) == 0 {
		return task.BulkGetOutput{}, &task.ValidationError{Field: "task_ids", Reason: "must not be empty"}
	}

	all, err := uc.exportAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.BulkGet: %v", err)
		return task.BulkGetOutput{}, err
	}

	out := task.BulkGetOutput{Tasks: make([]model.Task, 0, len(input.TaskIDs))}
	for _, id := range input.TaskIDs {
		if t, ok := findByRef(all, id); ok {
			out.Tasks = append(out.Tasks, t)
		} else {
			out.Missing = append(out.Missing, id)
		}
	}
	return out, nil
}
