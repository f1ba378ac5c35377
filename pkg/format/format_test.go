package format

import (
	"encoding/json"
	"strings"
	"testing"

	"taskwarrior-mcp/internal/model"
)

func TestTaskConcise(t *testing.T) {
	cases := []struct {
		name string
		task model.Task
		want string
	}{
		{
			"full",
			model.Task{ID: 5, Description: "Write report", Priority: "H", Due: "20241231T120000Z", Project: "work"},
			"#5: Write report (H, due:2024-12-31, proj:work)",
		},
		{
			"bare",
			model.Task{ID: 2, Description: "Buy milk"},
			"#2: Buy milk",
		},
		{
			"no description",
			model.Task{ID: 3},
			"#3: No description",
		},
		{
			"uuid fallback",
			model.Task{UUID: "abcdef12-3456-7890-abcd-ef1234567890", Description: "Done thing", Status: model.StatusCompleted},
			"#abcdef12: Done thing",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TaskConcise(tc.task); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTaskConciseTruncatesLongDescription(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := TaskConcise(model.Task{ID: 1, Description: long})
	if want := "#1: " + strings.Repeat("x", 50); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTasksConcise(t *testing.T) {
	if got := TasksConcise(nil, "anything"); got != "0 tasks" {
		t.Errorf("empty list: got %q", got)
	}

	got := TasksConcise([]model.Task{
		{ID: 1, Description: "a"},
		{ID: 2, Description: "b"},
	}, "ready")
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "2 task(s) | ready" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestTaskMarkdown(t *testing.T) {
	got := TaskMarkdown(model.Task{
		ID:          7,
		Description: "Deploy service",
		Project:     "infra",
		Priority:    "H",
		Tags:        []string{"ops"},
		DependsOn: []model.ResolvedDependency{
			{ID: 3, UUID: "abcdef12-0000-0000-0000-000000000000", Description: "Build image", Status: model.StatusPending},
			{UUID: "deadbeef-0000-0000-0000-000000000000", Status: "unknown"},
		},
		Annotations: []model.Annotation{{Entry: "20240610T100000Z", Description: "waiting on infra team"}},
	})

	for _, want := range []string{
		"### [7] Deploy service",
		"**Project**: infra",
		"**Priority**: High",
		"**Tags**: ops",
		"**Depends on**: 3: Build image, deadbeef (unresolved)",
		"- [2024-06-10] waiting on infra team",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q:\n%s", want, got)
		}
	}
}

func TestMarshalIndentRoundTrips(t *testing.T) {
	out := MarshalIndent(model.Task{ID: 1, Description: "a"})
	var back map[string]any
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if back["description"] != "a" {
		t.Errorf("description = %v", back["description"])
	}
}

func TestValidMode(t *testing.T) {
	for _, m := range []Mode{Concise, Markdown, JSON} {
		if !ValidMode(m) {
			t.Errorf("%q should be valid", m)
		}
	}
	if ValidMode("yaml") {
		t.Error("yaml should not be valid")
	}
}

func TestDependencyRef(t *testing.T) {
	cases := []struct {
		dep  model.ResolvedDependency
		want string
	}{
		{model.ResolvedDependency{ID: 4, UUID: "abcdef12-0000", Description: "thing", Status: model.StatusPending}, "4: thing"},
		{model.ResolvedDependency{UUID: "abcdef12-0000", Description: "done thing", Status: model.StatusCompleted}, "abcdef12: done thing"},
		{model.ResolvedDependency{UUID: "deadbeef-0000", Status: "unknown"}, "deadbeef (unresolved)"},
	}
	for _, tc := range cases {
		if got := DependencyRef(tc.dep); got != tc.want {
			t.Errorf("DependencyRef(%+v) = %q, want %q", tc.dep, got, tc.want)
		}
	}
}
