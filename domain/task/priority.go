package task

import "fmt"

// Priority represents task urgency, from 1 (highest) to 4 (none).
type Priority int

// Priority values. PriorityNone is the default for new tasks.
const (
	PriorityUrgent Priority = 1
	PriorityHigh   Priority = 2
	PriorityMedium Priority = 3
	PriorityNone   Priority = 4
)

// IsValid reports whether the priority is within the supported range.
func (p Priority) IsValid() bool {
	return p >= PriorityUrgent && p <= PriorityNone
}

// String returns the short display form, "p1" through "p4".
func (p Priority) String() string {
	return fmt.Sprintf("p%d", int(p))
}

// ParsePriority parses the short form "p1" through "p4". The second
// return value reports whether the input was a priority token at all.
func ParsePriority(s string) (Priority, bool) {
	if len(s) != 2 || s[0] != 'p' {
		return 0, false
	}
	if s[1] < '1' || s[1] > '4' {
		return 0, false
	}
	return Priority(s[1] - '0'), true
}
