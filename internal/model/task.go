package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Task represents a single Taskwarrior task as produced by `task export`.
// Field names and formats follow the Taskwarrior JSON schema; timestamps are
// kept as raw `20060102T150405Z` strings and parsed on demand by pkg/taskdate.
type Task struct {
	ID          int          `json:"id,omitempty"` // working-set number, 0 for completed/deleted tasks
	UUID        string       `json:"uuid,omitempty"`
	Description string       `json:"description"`
	Status      string       `json:"status,omitempty"`
	Urgency     float64      `json:"urgency,omitempty"`
	Project     string       `json:"project,omitempty"`
	Priority    string       `json:"priority,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Due         string       `json:"due,omitempty"`
	Entry       string       `json:"entry,omitempty"`
	Modified    string       `json:"modified,omitempty"`
	Start       string       `json:"start,omitempty"`
	End         string       `json:"end,omitempty"`
	Depends     DependsList  `json:"depends,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`

	// Derived fields, populated per request by the dependency resolver.
	// Never persisted; Taskwarrior does not know about them.
	DependsOn        []ResolvedDependency `json:"depends_on,omitempty"`
	BlockedByPending int                  `json:"blocked_by_pending,omitempty"`
}

// Annotation is a timestamped note attached to a task.
type Annotation struct {
	Entry       string `json:"entry,omitempty"`
	Description string `json:"description"`
}

// ResolvedDependency is a dependency UUID cross-referenced against the full
// task set: just enough info for a caller to understand the blocking
// relationship without another lookup. A dangling UUID keeps an empty
// description and status "unknown".
type ResolvedDependency struct {
	ID          int    `json:"id,omitempty"`
	UUID        string `json:"uuid"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

// DependsList holds dependency UUIDs. Taskwarrior 2.x exports `depends` as a
// comma-separated string, 3.x as a JSON array; both decode into this type.
type DependsList []string

func (d *DependsList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*d = cleanDepends(arr)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = cleanDepends(strings.Split(s, ","))
	return nil
}

func (d DependsList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(d))
}

func cleanDepends(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, u := range raw {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// ShortRef returns the identifier used in human-readable references:
// the working-set ID when present, otherwise the first 8 UUID characters.
func (t Task) ShortRef() string {
	if t.ID > 0 {
		return strconv.Itoa(t.ID)
	}
	if len(t.UUID) >= 8 {
		return t.UUID[:8]
	}
	return "?"
}

// IsActive reports whether the task has been started and not stopped.
func (t Task) IsActive() bool {
	return t.Start != ""
}

// HasTag reports whether the task carries the given tag.
func (t Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}
