package task

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyDescription = errors.New("task description is empty")
	ErrEmptyAnnotation  = errors.New("annotation text is empty")
	ErrNothingToUndo    = errors.New("no operations to undo")
)

// ValidationError reports a rejected input field before any external
// invocation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundHint is appended to not-found errors so callers know how to
// recover.
const NotFoundHint = "Tip: use task_list to find valid task IDs, or check if the task was completed or deleted."
