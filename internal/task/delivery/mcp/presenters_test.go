package mcp

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
	"taskwarrior-mcp/pkg/format"
)

func request(args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestParseFormat(t *testing.T) {
	if mode, err := parseFormat(request(nil)); err != nil || mode != format.Markdown {
		t.Errorf("default = %v/%v, want markdown", mode, err)
	}
	if mode, err := parseFormat(request(map[string]any{"format": "concise"})); err != nil || mode != format.Concise {
		t.Errorf("concise = %v/%v", mode, err)
	}
	if _, err := parseFormat(request(map[string]any{"format": "yaml"})); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestOptString(t *testing.T) {
	req := request(map[string]any{"project": "", "priority": "H"})

	if got := optString(req, "project"); got == nil || *got != "" {
		t.Errorf("present empty value should yield pointer to empty string, got %v", got)
	}
	if got := optString(req, "priority"); got == nil || *got != "H" {
		t.Errorf("priority = %v", got)
	}
	if got := optString(req, "due"); got != nil {
		t.Errorf("absent key should yield nil, got %v", got)
	}
}

func TestErrorResultNotFound(t *testing.T) {
	h := &Handler{}
	res := h.errorResult(errors.New("task \"9\": task not found. " + task.NotFoundHint))
	if res == nil || !res.IsError {
		t.Fatal("expected error result")
	}
}

func TestRenderListModes(t *testing.T) {
	out := task.ListOutput{
		Tasks: []model.Task{{ID: 1, Description: "a", Project: "work"}},
		Total: 4,
	}

	concise := renderList(format.Concise, out)
	if !strings.Contains(concise, "showing 1 of 4") {
		t.Errorf("concise should note the truncation: %q", concise)
	}
	if !strings.Contains(concise, "#1: a") {
		t.Errorf("concise missing task line: %q", concise)
	}

	md := renderList(format.Markdown, out)
	if !strings.Contains(md, "### [1] a") {
		t.Errorf("markdown missing heading: %q", md)
	}

	var decoded task.ListOutput
	if err := json.Unmarshal([]byte(renderList(format.JSON, out)), &decoded); err != nil {
		t.Fatalf("json mode output is not valid JSON: %v", err)
	}
	if decoded.Total != 4 {
		t.Errorf("decoded total = %d, want 4", decoded.Total)
	}
}

func TestRenderSuggestCarriesReasons(t *testing.T) {
	out := task.SuggestOutput{
		Suggestions: []task.ScoredTask{
			{Task: model.Task{ID: 3, Description: "fix bug"}, Score: 130, Reasons: []string{"high priority", "overdue"}},
		},
		TotalPending: 9,
	}

	got := renderSuggest(format.Concise, out)
	if !strings.Contains(got, "high priority; overdue") {
		t.Errorf("reasons missing: %q", got)
	}

	if got := renderSuggest(format.Markdown, task.SuggestOutput{}); got != "No unblocked pending tasks to suggest." {
		t.Errorf("empty rendering = %q", got)
	}
}

func TestRenderBulkGetReportsMissing(t *testing.T) {
	out := task.BulkGetOutput{
		Tasks:   []model.Task{{ID: 1, Description: "found"}},
		Missing: []string{"42", "bogus"},
	}
	got := renderBulkGet(format.Concise, out)
	if !strings.Contains(got, "Not found: 42, bogus") {
		t.Errorf("missing IDs not reported: %q", got)
	}
}

func TestRenderTriage(t *testing.T) {
	out := task.TriageOutput{
		Stale:        []model.Task{{ID: 2, Description: "old"}},
		StaleDays:    14,
		TotalItems:   1,
		TotalPending: 6,
	}
	got := renderTriage(format.Markdown, out)
	if !strings.Contains(got, "Stale (no activity in 14 days) (1):") {
		t.Errorf("stale section missing: %q", got)
	}

	clean := renderTriage(format.Markdown, task.TriageOutput{TotalPending: 6})
	if !strings.Contains(clean, "Nothing needs triage") {
		t.Errorf("clean rendering = %q", clean)
	}
}

func TestRenderDependenciesOverview(t *testing.T) {
	out := task.DependenciesOutput{
		Bottlenecks:  []task.Bottleneck{{Task: model.Task{ID: 1, Description: "root"}, BlocksCount: 3}},
		BlockedIDs:   []string{"2", "3", "4"},
		ReadyIDs:     []string{"1", "5"},
		TotalPending: 5,
		BlockedCount: 3,
		ReadyCount:   2,
	}
	got := renderDependencies(format.Markdown, out)
	if !strings.Contains(got, "5 pending task(s): 2 ready, 3 blocked") {
		t.Errorf("header missing: %q", got)
	}
	if !strings.Contains(got, "blocks 3 task(s)") {
		t.Errorf("bottleneck missing: %q", got)
	}
	if !strings.Contains(got, "Ready: 1, 5") {
		t.Errorf("ready list missing: %q", got)
	}
	if !strings.Contains(got, "Blocked: 2, 3, 4") {
		t.Errorf("blocked list missing: %q", got)
	}
}

func TestRenderContext(t *testing.T) {
	out := task.ContextOutput{
		Task: model.Task{ID: 1, Description: "main", Project: "work"},
		Computed: task.Insights{
			Age:              "3 days ago",
			LastActivity:     "Yesterday",
			DependencyStatus: "independent",
			RelatedPending:   2,
		},
		Related: []model.Task{{ID: 7, Description: "sibling"}},
	}
	got := renderContext(format.Markdown, out)
	for _, want := range []string{"Created: 3 days ago", "Last activity: Yesterday", "Dependencies: independent", "#7: sibling"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
