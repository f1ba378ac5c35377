package taskdate

import (
	"fmt"
	"time"
)

// Layout is the compact ISO 8601 form Taskwarrior uses in JSON exports,
// always UTC.
const Layout = "20060102T150405Z"

// Proximity classifies how close a due date is.
type Proximity int

const (
	ProximityNone Proximity = iota // no due date or unparseable
	ProximityLater
	ProximityWeek // due within the next 7 days
	ProximityToday
	ProximityOverdue
)

func (p Proximity) String() string {
	switch p {
	case ProximityOverdue:
		return "overdue"
	case ProximityToday:
		return "due today"
	case ProximityWeek:
		return "due this week"
	case ProximityLater:
		return "due later"
	}
	return "no due date"
}

// Parse converts a Taskwarrior timestamp string to time.Time.
func Parse(ts string) (time.Time, error) {
	t, err := time.Parse(Layout, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid taskwarrior timestamp %q: %w", ts, err)
	}
	return t, nil
}

// Classifier resolves due-date proximity using day boundaries in a given
// timezone. Taskwarrior stores UTC instants; whether one falls "today"
// depends on where the user is.
type Classifier struct {
	location *time.Location
}

// NewClassifier creates a classifier for the given IANA timezone string,
// e.g. "Europe/Berlin". An empty string means UTC.
func NewClassifier(timezone string) (*Classifier, error) {
	if timezone == "" {
		return &Classifier{location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Classifier{location: loc}, nil
}

// Proximity classifies the due timestamp relative to now.
// Unparseable or empty due strings classify as ProximityNone.
func (c *Classifier) Proximity(due string, now time.Time) Proximity {
	if due == "" {
		return ProximityNone
	}
	dueT, err := Parse(due)
	if err != nil {
		return ProximityNone
	}

	days := c.daysBetween(now, dueT)
	switch {
	case days < 0:
		return ProximityOverdue
	case days == 0:
		return ProximityToday
	case days <= 7:
		return ProximityWeek
	default:
		return ProximityLater
	}
}

// daysBetween returns the whole calendar days from now's day to t's day in
// the classifier's timezone. Negative when t is on an earlier day; a due
// instant earlier today still counts as today, not overdue.
func (c *Classifier) daysBetween(now, t time.Time) int {
	return int(c.startOfDay(t).Sub(c.startOfDay(now)).Hours() / 24)
}

func (c *Classifier) startOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// AgeDays returns full days elapsed since the timestamp, or -1 when the
// timestamp is missing or malformed.
func AgeDays(ts string, now time.Time) int {
	if ts == "" {
		return -1
	}
	t, err := Parse(ts)
	if err != nil {
		return -1
	}
	return int(now.Sub(t).Hours() / 24)
}

// HumanAge renders a creation timestamp as a coarse age string.
func HumanAge(ts string, now time.Time) string {
	days := AgeDays(ts, now)
	switch {
	case days < 0:
		return "Unknown"
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d week(s) ago", days/7)
	default:
		return fmt.Sprintf("%d month(s) ago", days/30)
	}
}

// HumanSince renders a modification timestamp as a last-activity string with
// hour resolution for the current day.
func HumanSince(ts string, now time.Time) string {
	if ts == "" {
		return "Unknown"
	}
	t, err := Parse(ts)
	if err != nil {
		return "Unknown"
	}
	delta := now.Sub(t)
	days := int(delta.Hours() / 24)
	switch {
	case days == 0:
		hours := int(delta.Hours())
		if hours > 0 {
			return fmt.Sprintf("%d hour(s) ago", hours)
		}
		return "Recently"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
