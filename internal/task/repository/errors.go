package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBinaryNotFound indicates the task binary is missing from PATH or not
// executable.
var ErrBinaryNotFound = errors.New(
	"taskwarrior is not installed or not in PATH; install it with 'brew install task', 'apt install taskwarrior' or equivalent")

// CommandError reports a non-zero exit from the task binary. Stderr is
// surfaced verbatim: Taskwarrior's own messages are the most actionable
// thing we can show.
type CommandError struct {
	Args   []string
	Stderr string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "command failed"
	}
	return fmt.Sprintf("task %s: %s", strings.Join(e.Args, " "), msg)
}

// ParseError reports export output that does not match the expected JSON
// shape. Always surfaced to the caller; silently defaulting would corrupt
// every derived view built on top of the records.
type ParseError struct {
	Output string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse task export output: %v (this may indicate a taskwarrior configuration problem)", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
