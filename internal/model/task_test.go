package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDependsListUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want DependsList
	}{
		{"array form", `["aaa","bbb"]`, DependsList{"aaa", "bbb"}},
		{"comma string form", `"aaa,bbb"`, DependsList{"aaa", "bbb"}},
		{"string with spaces", `"aaa, bbb , "`, DependsList{"aaa", "bbb"}},
		{"empty array", `[]`, DependsList{}},
		{"empty string", `""`, DependsList{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got DependsList
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tc.in, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTaskUnmarshalExportRecord(t *testing.T) {
	// Taskwarrior 2.x record: depends as a comma string, extra fields present.
	raw := `{
		"id": 5,
		"uuid": "3f2504e0-4f89-11d3-9a0c-0305e82c3301",
		"description": "ship it",
		"status": "pending",
		"urgency": 8.2,
		"depends": "aaa,bbb",
		"unknown_field": true,
		"annotations": [{"entry": "20240601T100000Z", "description": "note"}]
	}`
	var task Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if task.ID != 5 || task.Description != "ship it" {
		t.Errorf("basic fields wrong: %+v", task)
	}
	if !reflect.DeepEqual([]string(task.Depends), []string{"aaa", "bbb"}) {
		t.Errorf("Depends = %v", task.Depends)
	}
	if len(task.Annotations) != 1 || task.Annotations[0].Description != "note" {
		t.Errorf("Annotations = %v", task.Annotations)
	}
}

func TestShortRef(t *testing.T) {
	cases := []struct {
		task Task
		want string
	}{
		{Task{ID: 12}, "12"},
		{Task{UUID: "3f2504e0-4f89-11d3-9a0c-0305e82c3301"}, "3f2504e0"},
		{Task{}, "?"},
	}
	for _, tc := range cases {
		if got := tc.task.ShortRef(); got != tc.want {
			t.Errorf("ShortRef(%+v) = %q, want %q", tc.task, got, tc.want)
		}
	}
}

func TestHasTagAndIsActive(t *testing.T) {
	task := Task{Tags: []string{"next", "ops"}, Start: "20240601T100000Z"}
	if !task.HasTag("next") || task.HasTag("quick") {
		t.Error("HasTag misbehaves")
	}
	if !task.IsActive() {
		t.Error("task with start timestamp should be active")
	}
	if (Task{}).IsActive() {
		t.Error("task without start timestamp should not be active")
	}
}
