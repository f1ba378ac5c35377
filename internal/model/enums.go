package model

// Taskwarrior status values, plus StatusAll for unfiltered exports.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusDeleted   = "deleted"
	StatusWaiting   = "waiting"
	StatusAll       = "all"
)

// Taskwarrior priority values. The empty string means no priority.
const (
	PriorityHigh   = "H"
	PriorityMedium = "M"
	PriorityLow    = "L"
	PriorityNone   = ""
)

// ValidStatusFilter reports whether s is an accepted status filter value.
func ValidStatusFilter(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusDeleted, StatusWaiting, StatusAll:
		return true
	}
	return false
}

// ValidPriority reports whether p is an accepted priority value.
// The empty string is valid and clears the priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}
