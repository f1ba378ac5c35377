// Package format renders task records into textual representations.
// All functions are pure: they never mutate their input and produce
// identical output for identical input.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"taskwarrior-mcp/internal/model"
)

// Mode selects the output representation.
type Mode string

const (
	Concise  Mode = "concise"  // one line per task, minimal token footprint
	Markdown Mode = "markdown" // human-readable (default)
	JSON     Mode = "json"     // machine-readable, complete field set
)

// ValidMode reports whether m is a recognized output mode.
func ValidMode(m Mode) bool {
	switch m {
	case Concise, Markdown, JSON:
		return true
	}
	return false
}

var priorityNames = map[string]string{
	model.PriorityHigh:   "High",
	model.PriorityMedium: "Medium",
	model.PriorityLow:    "Low",
}

// PriorityName returns the long form of a priority code, or the code itself
// when unknown.
func PriorityName(p string) string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return p
}

// MarshalIndent renders any value as indented JSON. Errors cannot occur for
// the plain structs this package is used with, so the result is returned
// directly.
func MarshalIndent(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}

// TaskConcise renders one task on one line:
// "#5: Description (H, due:2024-12-31, proj:work)".
func TaskConcise(t model.Task) string {
	desc := t.Description
	if desc == "" {
		desc = "No description"
	} else if len(desc) > 50 {
		desc = desc[:50]
	}

	var meta []string
	if t.Priority != "" {
		meta = append(meta, t.Priority)
	}
	if t.Due != "" {
		meta = append(meta, "due:"+datePart(t.Due))
	}
	if t.Project != "" {
		meta = append(meta, "proj:"+t.Project)
	}

	if len(meta) > 0 {
		return fmt.Sprintf("#%s: %s (%s)", t.ShortRef(), desc, strings.Join(meta, ", "))
	}
	return fmt.Sprintf("#%s: %s", t.ShortRef(), desc)
}

// TasksConcise renders a task list with a count header.
func TasksConcise(tasks []model.Task, title string) string {
	if len(tasks) == 0 {
		return "0 tasks"
	}

	header := fmt.Sprintf("%d task(s)", len(tasks))
	if title != "" {
		header += " | " + title
	}

	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, header)
	for _, t := range tasks {
		lines = append(lines, TaskConcise(t))
	}
	return strings.Join(lines, "\n")
}

// TaskMarkdown renders a single task with its complete field set.
func TaskMarkdown(t model.Task) string {
	desc := t.Description
	if desc == "" {
		desc = "No description"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("### [%s] %s", t.ShortRef(), desc))

	var details []string
	if t.Project != "" {
		details = append(details, "**Project**: "+t.Project)
	}
	if t.Priority != "" {
		details = append(details, "**Priority**: "+PriorityName(t.Priority))
	}
	if t.Due != "" {
		details = append(details, "**Due**: "+t.Due)
	}
	if len(t.Tags) > 0 {
		details = append(details, "**Tags**: "+strings.Join(t.Tags, ", "))
	}
	if t.Status != "" && t.Status != model.StatusPending {
		details = append(details, "**Status**: "+t.Status)
	}
	if t.Urgency != 0 {
		details = append(details, fmt.Sprintf("**Urgency**: %.2f", t.Urgency))
	}
	if len(details) > 0 {
		lines = append(lines, strings.Join(details, " | "))
	}

	if len(t.DependsOn) > 0 {
		refs := make([]string, 0, len(t.DependsOn))
		for _, d := range t.DependsOn {
			refs = append(refs, DependencyRef(d))
		}
		lines = append(lines, "**Depends on**: "+strings.Join(refs, ", "))
	}

	if len(t.Annotations) > 0 {
		lines = append(lines, "**Notes:**")
		for _, ann := range t.Annotations {
			lines = append(lines, fmt.Sprintf("  - [%s] %s", datePart(ann.Entry), ann.Description))
		}
	}

	return strings.Join(lines, "\n")
}

// TasksMarkdown renders a task list under a title heading.
func TasksMarkdown(tasks []model.Task, title string) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("# %s\n\nNo tasks found.", title)
	}

	lines := []string{fmt.Sprintf("# %s", title), fmt.Sprintf("*%d task(s)*", len(tasks)), ""}
	for _, t := range tasks {
		lines = append(lines, TaskMarkdown(t), "")
	}
	return strings.Join(lines, "\n")
}

// DependencyRef renders a resolved dependency as "short-id: description".
// Dangling references fall back to the opaque UUID marker.
func DependencyRef(d model.ResolvedDependency) string {
	if d.Description == "" {
		return fmt.Sprintf("%s (unresolved)", shortUUID(d.UUID))
	}
	ref := shortUUID(d.UUID)
	if d.ID > 0 {
		ref = fmt.Sprintf("%d", d.ID)
	}
	return fmt.Sprintf("%s: %s", ref, d.Description)
}

func shortUUID(u string) string {
	if len(u) >= 8 {
		return u[:8]
	}
	return u
}

// datePart extracts the date portion of a Taskwarrior timestamp for compact
// rendering ("20241231T120000Z" → "2024-12-31").
func datePart(ts string) string {
	if len(ts) < 8 {
		return ts
	}
	return ts[:4] + "-" + ts[4:6] + "-" + ts[6:8]
}
