package filter

import (
	"strings"
	"time"
)

// DateResolver turns literal date text from "before:" / "after:"
// comparisons into an instant. The second return value reports whether
// the text was resolvable; unresolvable text makes the enclosing
// condition false, never an error.
type DateResolver interface {
	Resolve(text string, now time.Time) (time.Time, bool)
}

// dateLayouts are the accepted literal formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// LiteralDateResolver resolves "today", "tomorrow", and common literal
// date layouts. It performs no natural-language parsing.
type LiteralDateResolver struct{}

// Resolve implements DateResolver.
func (LiteralDateResolver) Resolve(text string, now time.Time) (time.Time, bool) {
	switch strings.TrimSpace(strings.ToLower(text)) {
	case "today":
		return startOfDay(now), true
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1)), true
	}
	trimmed := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// startOfDay returns midnight at the start of t's local day.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last representable instant of t's local day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// withinDay reports whether v falls inside ref's local day.
func withinDay(v, ref time.Time) bool {
	return !v.Before(startOfDay(ref)) && !v.After(endOfDay(ref))
}
