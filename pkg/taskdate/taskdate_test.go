package taskdate

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	got, err := Parse("20241231T120000Z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := Parse("2024-12-31"); err == nil {
		t.Error("expected error for non-taskwarrior layout")
	}
	if _, err := Parse(""); err == nil {
		t.Error("expected error for empty timestamp")
	}
}

func TestProximity(t *testing.T) {
	c, err := NewClassifier("")
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		due  string
		want Proximity
	}{
		{"empty", "", ProximityNone},
		{"garbage", "soon", ProximityNone},
		{"yesterday", "20240614T100000Z", ProximityOverdue},
		{"earlier today", "20240615T080000Z", ProximityToday},
		{"later today", "20240615T230000Z", ProximityToday},
		{"in three days", "20240618T100000Z", ProximityWeek},
		{"in exactly a week", "20240622T100000Z", ProximityWeek},
		{"in eight days", "20240623T100000Z", ProximityLater},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Proximity(tc.due, now); got != tc.want {
				t.Errorf("Proximity(%q) = %v, want %v", tc.due, got, tc.want)
			}
		})
	}
}

func TestProximityTimezoneBoundary(t *testing.T) {
	c, err := NewClassifier("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// 02:00 UTC on June 16 is still June 15 evening in New York.
	now := time.Date(2024, 6, 16, 2, 0, 0, 0, time.UTC)
	if got := c.Proximity("20240616T030000Z", now); got != ProximityToday {
		t.Errorf("due one hour later should be today in local time, got %v", got)
	}
}

func TestAgeDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	if got := AgeDays("20240601T120000Z", now); got != 14 {
		t.Errorf("AgeDays = %d, want 14", got)
	}
	if got := AgeDays("", now); got != -1 {
		t.Errorf("AgeDays(empty) = %d, want -1", got)
	}
	if got := AgeDays("nonsense", now); got != -1 {
		t.Errorf("AgeDays(garbage) = %d, want -1", got)
	}
}

func TestHumanAge(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ts   string
		want string
	}{
		{"", "Unknown"},
		{"20240615T080000Z", "Today"},
		{"20240614T080000Z", "Yesterday"},
		{"20240612T080000Z", "3 days ago"},
		{"20240601T080000Z", "2 week(s) ago"},
		{"20240115T080000Z", "5 month(s) ago"},
	}
	for _, tc := range cases {
		if got := HumanAge(tc.ts, now); got != tc.want {
			t.Errorf("HumanAge(%q) = %q, want %q", tc.ts, got, tc.want)
		}
	}
}

func TestHumanSince(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ts   string
		want string
	}{
		{"", "Unknown"},
		{"20240615T113000Z", "Recently"},
		{"20240615T070000Z", "5 hour(s) ago"},
		{"20240614T100000Z", "Yesterday"},
		{"20240610T100000Z", "5 days ago"},
	}
	for _, tc := range cases {
		if got := HumanSince(tc.ts, now); got != tc.want {
			t.Errorf("HumanSince(%q) = %q, want %q", tc.ts, got, tc.want)
		}
	}
}
