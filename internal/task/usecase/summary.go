package usecase

import (
	"context"
	"sort"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
	"taskwarrior-mcp/pkg/taskdate"
)

func (uc *implUseCase) Projects(ctx context.Context) (task.ProjectsOutput, error) {
	tasks, err := uc.repo.Export(ctx, "status:pending")
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Projects: %v", err)
		return task.ProjectsOutput{}, err
	}
	return task.ProjectsOutput{Projects: projectCounts(tasks, 0)}, nil
}

func (uc *implUseCase) Tags(ctx context.Context) (task.TagsOutput, error) {
	tasks, err := uc.repo.Export(ctx, "status:pending")
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Tags: %v", err)
		return task.TagsOutput{}, err
	}
	return task.TagsOutput{Tags: tagCounts(tasks)}, nil
}

func (uc *implUseCase) Summary(ctx context.Context) (task.SummaryOutput, error) {
	tasks, err := uc.repo.Export(ctx, "status:pending")
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Summary: %v", err)
		return task.SummaryOutput{}, err
	}
	return summarize(tasks), nil
}

func (uc *implUseCase) Overview(ctx context.Context, input task.OverviewInput) (task.OverviewOutput, error) {
	tasks, err := uc.repo.Export(ctx, "status:pending")
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Overview: %v", err)
		return task.OverviewOutput{}, err
	}

	out := task.OverviewOutput{Summary: summarize(tasks)}
	if input.IncludeProjects {
		out.Projects = projectCounts(tasks, 0)
	}
	if input.IncludeTags {
		out.Tags = tagCounts(tasks)
	}
	return out, nil
}

func (uc *implUseCase) ProjectSummary(ctx context.Context, input task.ProjectSummaryInput) (task.ProjectSummaryOutput, error) {
	pending, err := uc.repo.Export(ctx, "status:pending")
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ProjectSummary: %v", err)
		return task.ProjectSummaryOutput{}, err
	}

	var completed []model.Task
	if input.IncludeCompleted {
		completed, err = uc.repo.Export(ctx, "status:completed")
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.ProjectSummary: %v", err)
			return task.ProjectSummaryOutput{}, err
		}
	}

	now := uc.now()
	byProject := map[string]*task.ProjectStats{}
	nearest := map[string]string{}

	statsFor := func(name string) *task.ProjectStats {
		st, ok := byProject[name]
		if !ok {
			st = &task.ProjectStats{Name: name, ByPriority: map[string]int{}}
			byProject[name] = st
		}
		return st
	}

	for _, t := range pending {
		if !inProject(t, input.Project) {
			continue
		}
		name := t.Project
		if name == "" {
			name = "(none)"
		}
		st := statsFor(name)
		st.Pending++
		if t.IsActive() {
			st.Active++
		}
		st.ByPriority[priorityKey(t.Priority)]++
		switch uc.classifier.Proximity(t.Due, now) {
		case taskdate.ProximityOverdue:
			st.Overdue++
		case taskdate.ProximityToday:
			st.DueToday++
		case taskdate.ProximityWeek:
			st.DueThisWeek++
		}
		if t.Due != "" && (nearest[name] == "" || t.Due < nearest[name]) {
			nearest[name] = t.Due
		}
	}

	for _, t := range completed {
		if !inProject(t, input.Project) {
			continue
		}
		name := t.Project
		if name == "" {
			name = "(none)"
		}
		statsFor(name).Completed++
	}

	out := task.ProjectSummaryOutput{Projects: make([]task.ProjectStats, 0, len(byProject))}
	for name, st := range byProject {
		if due := nearest[name]; due != "" {
			if parsed, err := taskdate.Parse(due); err == nil {
				st.NearestDue = parsed.Format("2006-01-02")
			}
		}
		out.Projects = append(out.Projects, *st)
	}
	sort.Slice(out.Projects, func(i, j int) bool {
		if out.Projects[i].Pending != out.Projects[j].Pending {
			return out.Projects[i].Pending > out.Projects[j].Pending
		}
		return out.Projects[i].Name < out.Projects[j].Name
	})
	return out, nil
}

func summarize(pending []model.Task) task.SummaryOutput {
	out := task.SummaryOutput{
		Total:      len(pending),
		ByPriority: map[string]int{},
	}
	for _, t := range pending {
		if t.IsActive() {
			out.Active++
		}
		out.ByPriority[priorityKey(t.Priority)]++
	}
	out.TopProjects = projectCounts(pending, 5)
	return out
}

func priorityKey(p string) string {
	if p == "" {
		return "none"
	}
	return p
}

// projectCounts counts pending tasks per project, most loaded first, names
// ascending on ties. limit 0 keeps everything.
func projectCounts(tasks []model.Task, limit int) []task.ProjectCount {
	counts := map[string]int{}
	for _, t := range tasks {
		if t.Project != "" {
			counts[t.Project]++
		}
	}
	out := make([]task.ProjectCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, task.ProjectCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func tagCounts(tasks []model.Task) []task.TagCount {
	counts := map[string]int{}
	for _, t := range tasks {
		for _, tag := range t.Tags {
			counts[tag]++
		}
	}
	out := make([]task.TagCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, task.TagCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
