package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
	"taskwarrior-mcp/internal/task/repository"
)

func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (task.MutationOutput, error) {
	desc := strings.TrimSpace(input.Description)
	if desc == "" {
		return task.MutationOutput{}, task.ErrEmptyDescription
	}
	if input.Priority != "" && !model.ValidPriority(input.Priority) {
		return task.MutationOutput{}, &task.ValidationError{
			Field:  "priority",
			Reason: fmt.Sprintf("%q is not one of H, M, L", input.Priority),
		}
	}

	args := []string{"add", desc}
	if input.Project != "" {
		args = append(args, "project:"+input.Project)
	}
	if input.Priority != "" {
		args = append(args, "priority:"+input.Priority)
	}
	if input.Due != "" {
		args = append(args, "due:"+input.Due)
	}
	for _, tag := range input.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			args = append(args, "+"+tag)
		}
	}
	if input.Depends != "" {
		args = append(args, "depends:"+input.Depends)
	}

	out, err := uc.repo.Mutate(ctx, args...)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Add: %v", err)
		return task.MutationOutput{}, err
	}
	return task.MutationOutput{Message: "Task created: " + desc, Output: out}, nil
}

func (uc *implUseCase) Modify(ctx context.Context, input task.ModifyInput) (task.MutationOutput, error) {
	if input.TaskID == "" {
		return task.MutationOutput{}, &task.ValidationError{Field: "task_id", Reason: "must not be empty"}
	}
	if input.Priority != nil && *input.Priority != "" && !model.ValidPriority(*input.Priority) {
		return task.MutationOutput{}, &task.ValidationError{
			Field:  "priority",
			Reason: fmt.Sprintf("%q is not one of H, M, L", *input.Priority),
		}
	}

	// A nil pointer leaves the field alone; a pointer to "" clears it,
	// which Taskwarrior expresses as `field:` with no value.
	args := []string{input.TaskID, "modify"}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return task.MutationOutput{}, task.ErrEmptyDescription
		}
		args = append(args, "description:"+*input.Description)
	}
	if input.Project != nil {
		args = append(args, "project:"+*input.Project)
	}
	if input.Priority != nil {
		args = append(args, "priority:"+*input.Priority)
	}
	if input.Due != nil {
		args = append(args, "due:"+*input.Due)
	}
	for _, tag := range input.AddTags {
		if tag = strings.TrimSpace(tag); tag != "" {
			args = append(args, "+"+tag)
		}
	}
	for _, tag := range input.RemoveTags {
		if tag = strings.TrimSpace(tag); tag != "" {
			args = append(args, "-"+tag)
		}
	}
	if len(args) == 2 {
		return task.MutationOutput{}, &task.ValidationError{Field: "modify", Reason: "no fields to change"}
	}

	out, err := uc.repo.Mutate(ctx, args...)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Modify: %v", err)
		return task.MutationOutput{}, mapNotFound(err, input.TaskID)
	}
	return task.MutationOutput{Message: "Task " + input.TaskID + " modified", Output: out}, nil
}

func (uc *implUseCase) Complete(ctx context.Context, taskID string) (task.MutationOutput, error) {
	return uc.simpleMutation(ctx, taskID, "done", "completed")
}

func (uc *implUseCase) Delete(ctx context.Context, taskID string) (task.MutationOutput, error) {
	return uc.simpleMutation(ctx, taskID, "delete", "deleted")
}

func (uc *implUseCase) Start(ctx context.Context, taskID string) (task.MutationOutput, error) {
	return uc.simpleMutation(ctx, taskID, "start", "started")
}

func (uc *implUseCase) Stop(ctx context.Context, taskID string) (task.MutationOutput, error) {
	return uc.simpleMutation(ctx, taskID, "stop", "stopped")
}

func (uc *implUseCase) simpleMutation(ctx context.Context, taskID, command, past string) (task.MutationOutput, error) {
	if taskID == "" {
		return task.MutationOutput{}, &task.ValidationError{Field: "task_id", Reason: "must not be empty"}
	}
	out, err := uc.repo.Mutate(ctx, taskID, command)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.%s: %v", command, err)
		return task.MutationOutput{}, mapNotFound(err, taskID)
	}
	return task.MutationOutput{Message: "Task " + taskID + " " + past, Output: out}, nil
}

func (uc *implUseCase) Annotate(ctx context.Context, input task.AnnotateInput) (task.MutationOutput, error) {
	if input.TaskID == "" {
		return task.MutationOutput{}, &task.ValidationError{Field: "task_id", Reason: "must not be empty"}
	}
	note := strings.TrimSpace(input.Annotation)
	if note == "" {
		return task.MutationOutput{}, task.ErrEmptyAnnotation
	}

	out, err := uc.repo.Mutate(ctx, input.TaskID, "annotate", note)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Annotate: %v", err)
		return task.MutationOutput{}, mapNotFound(err, input.TaskID)
	}
	return task.MutationOutput{Message: "Annotation added to task " + input.TaskID, Output: out}, nil
}

func (uc *implUseCase) Undo(ctx context.Context) (task.MutationOutput, error) {
	out, err := uc.repo.Mutate(ctx, "undo")
	if err != nil {
		if isEmptyUndo(err) {
			return task.MutationOutput{}, task.ErrNothingToUndo
		}
		uc.l.Errorf(ctx, "task.usecase.Undo: %v", err)
		return task.MutationOutput{}, err
	}
	return task.MutationOutput{Message: "Last change reverted", Output: out}, nil
}

// mapNotFound converts Taskwarrior's "No matches" failure into the domain
// not-found error so callers get a recovery hint instead of raw stderr.
func mapNotFound(err error, taskID string) error {
	var cmdErr *repository.CommandError
	if errors.As(err, &cmdErr) && strings.Contains(strings.ToLower(cmdErr.Stderr), "no matches") {
		return fmt.Errorf("task %q: %w. %s", taskID, task.ErrTaskNotFound, task.NotFoundHint)
	}
	return err
}

// isEmptyUndo detects an undo against an empty history. Taskwarrior 2.x says
// "There are no recorded transactions to undo", 3.x "No operations to undo".
func isEmptyUndo(err error) bool {
	var cmdErr *repository.CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	msg := strings.ToLower(cmdErr.Stderr)
	return strings.Contains(msg, "no recorded transactions") ||
		strings.Contains(msg, "no operations to undo")
}
