package usecase_test

import (
	"context"
	"errors"
	"testing"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
)

func pendingSet() []model.Task {
	return []model.Task{
		{ID: 1, UUID: uuidA, Description: "a", Status: model.StatusPending, Project: "work", Priority: "H", Tags: []string{"next"}, Start: daysFromNow(0)},
		{ID: 2, UUID: uuidB, Description: "b", Status: model.StatusPending, Project: "work", Priority: "M", Due: daysFromNow(-1)},
		{ID: 3, UUID: uuidC, Description: "c", Status: model.StatusPending, Project: "home", Tags: []string{"next", "quick"}},
		{UUID: "dddddddd-1111-2222-3333-444444444444", Description: "d", Status: model.StatusCompleted, Project: "work"},
	}
}

func TestSummary(t *testing.T) {
	uc := newUseCase(&fakeRepo{all: pendingSet()})

	out, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if out.Total != 3 || out.Active != 1 {
		t.Errorf("Total=%d Active=%d, want 3 and 1", out.Total, out.Active)
	}
	if out.ByPriority["H"] != 1 || out.ByPriority["M"] != 1 || out.ByPriority["none"] != 1 {
		t.Errorf("ByPriority = %v", out.ByPriority)
	}
	if len(out.TopProjects) != 2 || out.TopProjects[0].Name != "work" || out.TopProjects[0].Count != 2 {
		t.Errorf("TopProjects = %v", out.TopProjects)
	}
}

func TestProjectsAndTags(t *testing.T) {
	uc := newUseCase(&fakeRepo{all: pendingSet()})
	ctx := context.Background()

	projects, err := uc.Projects(ctx)
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects.Projects) != 2 || projects.Projects[0].Name != "work" {
		t.Errorf("Projects = %v", projects.Projects)
	}

	tags, err := uc.Tags(ctx)
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	if len(tags.Tags) != 2 || tags.Tags[0].Name != "next" || tags.Tags[0].Count != 2 {
		t.Errorf("Tags = %v", tags.Tags)
	}
}

func TestOverviewSections(t *testing.T) {
	uc := newUseCase(&fakeRepo{all: pendingSet()})

	out, err := uc.Overview(context.Background(), task.OverviewInput{IncludeProjects: true})
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if out.Summary.Total != 3 {
		t.Errorf("Summary.Total = %d, want 3", out.Summary.Total)
	}
	if len(out.Projects) == 0 {
		t.Error("projects section requested but empty")
	}
	if out.Tags != nil {
		t.Error("tags section not requested but present")
	}
}

func TestProjectSummary(t *testing.T) {
	uc := newUseCase(&fakeRepo{all: pendingSet()})

	out, err := uc.ProjectSummary(context.Background(), task.ProjectSummaryInput{IncludeCompleted: true})
	if err != nil {
		t.Fatalf("ProjectSummary: %v", err)
	}
	if len(out.Projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(out.Projects))
	}

	work := out.Projects[0]
	if work.Name != "work" {
		t.Fatalf("first project = %q, want work (most pending)", work.Name)
	}
	if work.Pending != 2 || work.Completed != 1 || work.Active != 1 || work.Overdue != 1 {
		t.Errorf("work stats = %+v", work)
	}

	scoped, err := uc.ProjectSummary(context.Background(), task.ProjectSummaryInput{Project: "home"})
	if err != nil {
		t.Fatalf("ProjectSummary(home): %v", err)
	}
	if len(scoped.Projects) != 1 || scoped.Projects[0].Name != "home" {
		t.Errorf("scoped projects = %v", scoped.Projects)
	}
}

func TestListStatusValidation(t *testing.T) {
	uc := newUseCase(&fakeRepo{all: pendingSet()})

	if _, err := uc.List(context.Background(), task.ListInput{Status: "archived"}); err == nil {
		t.Error("expected validation error for unknown status")
	}

	out, err := uc.List(context.Background(), task.ListInput{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 2 || out.Total != 3 {
		t.Errorf("len=%d total=%d, want 2 and 3", len(out.Tasks), out.Total)
	}
}

func TestGetAndBulkGet(t *testing.T) {
	uc := newUseCase(&fakeRepo{all: pendingSet()})
	ctx := context.Background()

	got, err := uc.Get(ctx, task.GetInput{TaskID: uuidA[:8]})
	if err != nil {
		t.Fatalf("Get by UUID prefix: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("got task %d, want 1", got.ID)
	}

	if _, err := uc.Get(ctx, task.GetInput{TaskID: "404"}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("got %v, want ErrTaskNotFound", err)
	}

	bulk, err := uc.BulkGet(ctx, task.BulkGetInput{TaskIDs: []string{"1", "3", "404"}})
	if err != nil {
		t.Fatalf("BulkGet: %v", err)
	}
	if len(bulk.Tasks) != 2 || len(bulk.Missing) != 1 || bulk.Missing[0] != "404" {
		t.Errorf("tasks=%d missing=%v", len(bulk.Tasks), bulk.Missing)
	}
}

func TestContextInsights(t *testing.T) {
	uc := newUseCase(&fakeRepo{all: pendingSet()})

	out, err := uc.Context(context.Background(), task.ContextInput{TaskID: "1", IncludeRelated: true})
	if err != nil {
		t.Fatalf("Context: %v", err)
	}
	if out.Task.ID != 1 {
		t.Fatalf("Task.ID = %d, want 1", out.Task.ID)
	}
	if out.Computed.DependencyStatus != "independent" {
		t.Errorf("DependencyStatus = %q, want independent", out.Computed.DependencyStatus)
	}
	if out.Computed.RelatedPending != 1 {
		t.Errorf("RelatedPending = %d, want 1 (task 2 shares project work)", out.Computed.RelatedPending)
	}
	if len(out.Related) != 1 || out.Related[0].ID != 2 {
		t.Errorf("Related = %v", out.Related)
	}
}
