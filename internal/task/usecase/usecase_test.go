package usecase_test

import (
	"context"
	"time"

	"taskwarrior-mcp/config"
	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
	"taskwarrior-mcp/internal/task/usecase"
	"taskwarrior-mcp/pkg/taskdate"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeRepo substitutes the subprocess client. Export dispatches on the first
// filter so the pending view and the full set can differ.
type fakeRepo struct {
	all        []model.Task
	mutateFunc func(ctx context.Context, args ...string) (string, error)
	mutations  [][]string
}

func (f *fakeRepo) Export(ctx context.Context, filters ...string) ([]model.Task, error) {
	if len(filters) == 0 {
		return clone(f.all), nil
	}
	var out []model.Task
	switch filters[0] {
	case "status:pending":
		for _, t := range f.all {
			if t.Status == model.StatusPending {
				out = append(out, t)
			}
		}
	case "status:completed":
		for _, t := range f.all {
			if t.Status == model.StatusCompleted {
				out = append(out, t)
			}
		}
	default:
		out = f.all
	}
	return clone(out), nil
}

func (f *fakeRepo) Mutate(ctx context.Context, args ...string) (string, error) {
	f.mutations = append(f.mutations, args)
	if f.mutateFunc != nil {
		return f.mutateFunc(ctx, args...)
	}
	return "", nil
}

func clone(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}

func newUseCase(repo *fakeRepo) task.UseCase {
	classifier, _ := taskdate.NewClassifier("")
	return usecase.New(&mockLogger{}, repo, classifier, defaultWeights(), 14)
}

func defaultWeights() config.SuggestConfig {
	return config.SuggestConfig{
		PriorityHigh:   30,
		PriorityMedium: 15,
		PriorityLow:    5,
		Overdue:        100,
		DueToday:       60,
		DueThisWeek:    30,
		AgePerWeek:     1,
		AgeCap:         10,
		Active:         15,
		NextTag:        25,
		QuickTag:       10,
		PerBlocked:     20,
	}
}

// ts renders a time in Taskwarrior's export format.
func ts(t time.Time) string {
	return t.UTC().Format(taskdate.Layout)
}

func daysFromNow(d int) string {
	return ts(time.Now().UTC().Add(time.Duration(d) * 24 * time.Hour))
}
