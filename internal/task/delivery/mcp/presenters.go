package mcp

import (
	"fmt"
	"strings"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
	"taskwarrior-mcp/pkg/format"
)

func renderList(mode format.Mode, out task.ListOutput) string {
	switch mode {
	case format.JSON:
		return format.MarshalIndent(out)
	case format.Concise:
		title := ""
		if out.Total > len(out.Tasks) {
			title = fmt.Sprintf("showing %d of %d", len(out.Tasks), out.Total)
		}
		return format.TasksConcise(out.Tasks, title)
	default:
		return format.TasksMarkdown(out.Tasks, "Tasks")
	}
}

func renderTask(mode format.Mode, t model.Task) string {
	switch mode {
	case format.JSON:
		return format.MarshalIndent(t)
	case format.Concise:
		return format.TaskConcise(t)
	default:
		return format.TaskMarkdown(t)
	}
}

func renderBulkGet(mode format.Mode, out task.BulkGetOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}

	var body string
	if mode == format.Concise {
		body = format.TasksConcise(out.Tasks, "")
	} else {
		body = format.TasksMarkdown(out.Tasks, "Tasks")
	}
	if len(out.Missing) > 0 {
		body += fmt.Sprintf("\n\nNot found: %s", strings.Join(out.Missing, ", "))
	}
	return body
}

func renderMutation(out task.MutationOutput) string {
	if out.Output == "" {
		return out.Message
	}
	return out.Message + "\n" + out.Output
}

func renderProjects(mode format.Mode, out task.ProjectsOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}
	if len(out.Projects) == 0 {
		return "No projects found."
	}

	lines := make([]string, 0, len(out.Projects)+1)
	if mode == format.Markdown {
		lines = append(lines, "# Projects", "")
	}
	for _, p := range out.Projects {
		lines = append(lines, fmt.Sprintf("- %s: %d task(s)", p.Name, p.Count))
	}
	return strings.Join(lines, "\n")
}

func renderTags(mode format.Mode, out task.TagsOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}
	if len(out.Tags) == 0 {
		return "No tags found."
	}

	lines := make([]string, 0, len(out.Tags)+1)
	if mode == format.Markdown {
		lines = append(lines, "# Tags", "")
	}
	for _, t := range out.Tags {
		lines = append(lines, fmt.Sprintf("- +%s: %d task(s)", t.Name, t.Count))
	}
	return strings.Join(lines, "\n")
}

func summaryLines(s task.SummaryOutput) []string {
	lines := []string{
		fmt.Sprintf("Pending: %d | Active: %d", s.Total, s.Active),
	}

	var parts []string
	for _, p := range []string{"H", "M", "L", "none"} {
		if n := s.ByPriority[p]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", format.PriorityName(p), n))
		}
	}
	if len(parts) > 0 {
		lines = append(lines, "Priorities: "+strings.Join(parts, ", "))
	}

	if len(s.TopProjects) > 0 {
		var projects []string
		for _, p := range s.TopProjects {
			projects = append(projects, fmt.Sprintf("%s (%d)", p.Name, p.Count))
		}
		lines = append(lines, "Top projects: "+strings.Join(projects, ", "))
	}
	return lines
}

func renderSummary(mode format.Mode, out task.SummaryOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}
	lines := summaryLines(out)
	if mode == format.Markdown {
		lines = append([]string{"# Summary", ""}, lines...)
	}
	return strings.Join(lines, "\n")
}

func renderOverview(mode format.Mode, out task.OverviewOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}

	lines := []string{"# Overview", ""}
	if mode == format.Concise {
		lines = nil
	}
	lines = append(lines, summaryLines(out.Summary)...)

	if len(out.Projects) > 0 {
		lines = append(lines, "", "Projects:")
		for _, p := range out.Projects {
			lines = append(lines, fmt.Sprintf("- %s: %d", p.Name, p.Count))
		}
	}
	if len(out.Tags) > 0 {
		lines = append(lines, "", "Tags:")
		for _, t := range out.Tags {
			lines = append(lines, fmt.Sprintf("- +%s: %d", t.Name, t.Count))
		}
	}
	return strings.Join(lines, "\n")
}

func renderProjectSummary(mode format.Mode, out task.ProjectSummaryOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}
	if len(out.Projects) == 0 {
		return "No projects found."
	}

	var lines []string
	if mode == format.Markdown {
		lines = append(lines, "# Project summary", "")
	}
	for _, p := range out.Projects {
		lines = append(lines, fmt.Sprintf("## %s", p.Name))
		lines = append(lines, fmt.Sprintf("Pending: %d | Completed: %d | Active: %d", p.Pending, p.Completed, p.Active))
		if p.Overdue+p.DueToday+p.DueThisWeek > 0 {
			lines = append(lines, fmt.Sprintf("Overdue: %d | Due today: %d | Due this week: %d", p.Overdue, p.DueToday, p.DueThisWeek))
		}
		if p.NearestDue != "" {
			lines = append(lines, "Nearest due date: "+p.NearestDue)
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func renderSuggest(mode format.Mode, out task.SuggestOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}
	if len(out.Suggestions) == 0 {
		return "No unblocked pending tasks to suggest."
	}

	var lines []string
	if mode == format.Markdown {
		lines = append(lines, "# Suggested next tasks", "")
	}
	for i, s := range out.Suggestions {
		if mode == format.Concise {
			lines = append(lines, fmt.Sprintf("%d. %s [%s]", i+1, format.TaskConcise(s.Task), strings.Join(s.Reasons, "; ")))
			continue
		}
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, format.TaskMarkdown(s.Task)))
		if len(s.Reasons) > 0 {
			lines = append(lines, "**Why**: "+strings.Join(s.Reasons, "; "))
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func renderReady(mode format.Mode, out task.ReadyOutput) string {
	switch mode {
	case format.JSON:
		return format.MarshalIndent(out)
	case format.Concise:
		return format.TasksConcise(out.Tasks, fmt.Sprintf("ready of %d pending", out.TotalPending))
	default:
		return format.TasksMarkdown(out.Tasks, "Ready to work on")
	}
}

func renderBlocked(mode format.Mode, out task.BlockedOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}
	if len(out.Blocked) == 0 {
		return "No blocked tasks."
	}

	var lines []string
	if mode == format.Markdown {
		lines = append(lines, "# Blocked tasks", "")
	}
	for _, b := range out.Blocked {
		if mode == format.Concise {
			lines = append(lines, format.TaskConcise(b.Task))
		} else {
			lines = append(lines, format.TaskMarkdown(b.Task))
		}
		for _, blocker := range b.Blockers {
			lines = append(lines, "  waiting on: "+format.TaskConcise(blocker))
		}
		if mode == format.Markdown {
			lines = append(lines, "")
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func renderDependencies(mode format.Mode, out task.DependenciesOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}

	// Single-task mode
	if out.Task != nil {
		var lines []string
		if mode == format.Concise {
			lines = append(lines, format.TaskConcise(*out.Task))
		} else {
			lines = append(lines, format.TaskMarkdown(*out.Task), "")
		}
		if len(out.BlockedBy) > 0 {
			lines = append(lines, "Blocked by:")
			for _, t := range out.BlockedBy {
				lines = append(lines, "- "+format.TaskConcise(t))
			}
		}
		if len(out.Blocks) > 0 {
			lines = append(lines, "Blocks:")
			for _, t := range out.Blocks {
				lines = append(lines, "- "+format.TaskConcise(t))
			}
		}
		if out.Ready {
			lines = append(lines, "This task is ready to work on.")
		}
		return strings.Join(lines, "\n")
	}

	lines := []string{
		fmt.Sprintf("%d pending task(s): %d ready, %d blocked", out.TotalPending, out.ReadyCount, out.BlockedCount),
	}
	if len(out.Bottlenecks) > 0 {
		lines = append(lines, "", "Bottlenecks (complete these to unblock the most work):")
		for _, b := range out.Bottlenecks {
			lines = append(lines, fmt.Sprintf("- %s blocks %d task(s)", format.TaskConcise(b.Task), b.BlocksCount))
		}
	}
	if len(out.ReadyIDs) > 0 {
		lines = append(lines, "", "Ready: "+strings.Join(out.ReadyIDs, ", "))
	}
	if len(out.BlockedIDs) > 0 {
		lines = append(lines, "", "Blocked: "+strings.Join(out.BlockedIDs, ", "))
	}
	return strings.Join(lines, "\n")
}

func renderTriage(mode format.Mode, out task.TriageOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}
	if out.TotalItems == 0 {
		return fmt.Sprintf("Nothing needs triage (%d pending task(s) checked).", out.TotalPending)
	}

	var lines []string
	if mode == format.Markdown {
		lines = append(lines, "# Triage", "")
	}
	section := func(title string, tasks []model.Task) {
		if len(tasks) == 0 {
			return
		}
		lines = append(lines, fmt.Sprintf("%s (%d):", title, len(tasks)))
		for _, t := range tasks {
			lines = append(lines, "- "+format.TaskConcise(t))
		}
		lines = append(lines, "")
	}
	section(fmt.Sprintf("Stale (no activity in %d days)", out.StaleDays), out.Stale)
	section("No project", out.NoProject)
	section("Untagged", out.Untagged)
	section("No due date", out.NoDue)
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func renderContext(mode format.Mode, out task.ContextOutput) string {
	if mode == format.JSON {
		return format.MarshalIndent(out)
	}

	var lines []string
	if mode == format.Concise {
		lines = append(lines, format.TaskConcise(out.Task))
	} else {
		lines = append(lines, format.TaskMarkdown(out.Task), "")
	}
	lines = append(lines,
		"Created: "+out.Computed.Age,
		"Last activity: "+out.Computed.LastActivity,
		"Dependencies: "+out.Computed.DependencyStatus,
	)
	if out.Computed.AnnotationsCount > 0 {
		lines = append(lines, fmt.Sprintf("Notes: %d", out.Computed.AnnotationsCount))
	}
	if out.Computed.RelatedPending > 0 {
		lines = append(lines, fmt.Sprintf("Related pending in %s: %d", out.Task.Project, out.Computed.RelatedPending))
	}
	if len(out.Related) > 0 {
		lines = append(lines, "", "Related tasks:")
		for _, t := range out.Related {
			lines = append(lines, "- "+format.TaskConcise(t))
		}
	}
	return strings.Join(lines, "\n")
}
