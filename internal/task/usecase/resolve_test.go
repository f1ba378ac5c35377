package usecase_test

import (
	"context"
	"testing"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
)

const (
	uuidA = "aaaaaaaa-1111-2222-3333-444444444444"
	uuidB = "bbbbbbbb-1111-2222-3333-444444444444"
	uuidC = "cccccccc-1111-2222-3333-444444444444"
)

func TestReadyBlockedExclusive(t *testing.T) {
	// A depends on B (pending), C depends on B too but B is the only blocker.
	repo := &fakeRepo{all: []model.Task{
		{ID: 1, UUID: uuidA, Description: "ship release", Status: model.StatusPending, Depends: model.DependsList{uuidB}},
		{ID: 2, UUID: uuidB, Description: "fix tests", Status: model.StatusPending},
		{ID: 3, UUID: uuidC, Description: "write docs", Status: model.StatusPending},
	}}
	uc := newUseCase(repo)
	ctx := context.Background()

	ready, err := uc.Ready(ctx, task.ReadyInput{IncludeActive: true})
	if err != nil {
		t.Fatalf("Ready: %v", err)
	}
	blocked, err := uc.Blocked(ctx, task.BlockedInput{})
	if err != nil {
		t.Fatalf("Blocked: %v", err)
	}

	readySet := map[string]bool{}
	for _, tk := range ready.Tasks {
		readySet[tk.UUID] = true
	}
	for _, bt := range blocked.Blocked {
		if readySet[bt.Task.UUID] {
			t.Errorf("task %s is both ready and blocked", bt.Task.UUID)
		}
	}
	if len(ready.Tasks)+len(blocked.Blocked) != 3 {
		t.Errorf("ready (%d) + blocked (%d) should cover all 3 pending tasks",
			len(ready.Tasks), len(blocked.Blocked))
	}

	if !readySet[uuidB] || !readySet[uuidC] {
		t.Errorf("expected B and C ready, got %v", readySet)
	}
	if len(blocked.Blocked) != 1 || blocked.Blocked[0].Task.UUID != uuidA {
		t.Errorf("expected only A blocked, got %+v", blocked.Blocked)
	}
}

func TestCompletedDependencyDoesNotBlock(t *testing.T) {
	repo := &fakeRepo{all: []model.Task{
		{ID: 1, UUID: uuidA, Description: "deploy", Status: model.StatusPending, Depends: model.DependsList{uuidB}},
		{UUID: uuidB, Description: "build", Status: model.StatusCompleted},
	}}
	uc := newUseCase(repo)

	ready, err := uc.Ready(context.Background(), task.ReadyInput{IncludeActive: true})
	if err != nil {
		t.Fatalf("Ready: %v", err)
	}
	if len(ready.Tasks) != 1 || ready.Tasks[0].UUID != uuidA {
		t.Fatalf("task with completed dependency should be ready, got %+v", ready.Tasks)
	}
	if got := ready.Tasks[0].BlockedByPending; got != 0 {
		t.Errorf("BlockedByPending = %d, want 0", got)
	}
}

func TestDanglingDependencyIsNonFatal(t *testing.T) {
	repo := &fakeRepo{all: []model.Task{
		{ID: 1, UUID: uuidA, Description: "orphaned", Status: model.StatusPending,
			Depends: model.DependsList{"dddddddd-9999-8888-7777-666666666666", "not-a-uuid"}},
	}}
	uc := newUseCase(repo)

	got, err := uc.Get(context.Background(), task.GetInput{TaskID: "1"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.DependsOn) != 2 {
		t.Fatalf("DependsOn length = %d, want 2", len(got.DependsOn))
	}
	if got.DependsOn[0].Status != "unknown" {
		t.Errorf("dangling UUID status = %q, want unknown", got.DependsOn[0].Status)
	}
	if got.DependsOn[1].Status != "invalid" {
		t.Errorf("malformed ref status = %q, want invalid", got.DependsOn[1].Status)
	}

	// Dangling references must not block the task.
	ready, err := uc.Ready(context.Background(), task.ReadyInput{IncludeActive: true})
	if err != nil {
		t.Fatalf("Ready: %v", err)
	}
	if len(ready.Tasks) != 1 {
		t.Errorf("task with only dangling deps should be ready, got %d tasks", len(ready.Tasks))
	}
}

func TestDependenciesOverview(t *testing.T) {
	repo := &fakeRepo{all: []model.Task{
		{ID: 1, UUID: uuidA, Description: "a", Status: model.StatusPending, Depends: model.DependsList{uuidB}},
		{ID: 2, UUID: uuidB, Description: "b", Status: model.StatusPending},
		{ID: 3, UUID: uuidC, Description: "c", Status: model.StatusPending, Depends: model.DependsList{uuidB}},
	}}
	uc := newUseCase(repo)

	out, err := uc.Dependencies(context.Background(), task.DependenciesInput{})
	if err != nil {
		t.Fatalf("Dependencies: %v", err)
	}
	if out.TotalPending != 3 || out.BlockedCount != 2 || out.ReadyCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", out.TotalPending, out.BlockedCount, out.ReadyCount)
	}
	if len(out.Bottlenecks) != 1 || out.Bottlenecks[0].Task.UUID != uuidB || out.Bottlenecks[0].BlocksCount != 2 {
		t.Errorf("bottlenecks = %+v, want B blocking 2", out.Bottlenecks)
	}
}

func TestDependenciesSingleTask(t *testing.T) {
	repo := &fakeRepo{all: []model.Task{
		{ID: 1, UUID: uuidA, Description: "a", Status: model.StatusPending, Depends: model.DependsList{uuidB}},
		{ID: 2, UUID: uuidB, Description: "b", Status: model.StatusPending},
	}}
	uc := newUseCase(repo)

	out, err := uc.Dependencies(context.Background(), task.DependenciesInput{TaskID: "2"})
	if err != nil {
		t.Fatalf("Dependencies: %v", err)
	}
	if out.Task == nil || out.Task.UUID != uuidB {
		t.Fatalf("Task = %+v, want B", out.Task)
	}
	if len(out.Blocks) != 1 || out.Blocks[0].UUID != uuidA {
		t.Errorf("Blocks = %+v, want [A]", out.Blocks)
	}
	if len(out.BlockedBy) != 0 {
		t.Errorf("BlockedBy = %+v, want empty", out.BlockedBy)
	}
	if !out.Ready {
		t.Error("B has no dependencies and should be ready")
	}

	if _, err := uc.Dependencies(context.Background(), task.DependenciesInput{Direction: "sideways"}); err == nil {
		t.Error("expected validation error for bad direction")
	}
}
