package repository

import (
	"context"

	"taskwarrior-mcp/internal/model"
)

// Taskwarrior abstracts the external task store. The implementation invokes
// the `task` binary; tests substitute a fake.
type Taskwarrior interface {
	// Export runs `task <filters...> export` and decodes the JSON output.
	// Filters are raw Taskwarrior filter expressions, e.g. "status:pending"
	// or "(id:1 or id:2)".
	Export(ctx context.Context, filters ...string) ([]model.Task, error)

	// Mutate runs a state-changing command, e.g. ["5", "done"] or
	// ["add", "buy milk", "project:home"]. Returns Taskwarrior's stdout.
	Mutate(ctx context.Context, args ...string) (string, error)
}
