package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/hunterjackson/todoer-sub000/domain/task"
)

// predicate evaluates one atomic condition against one task. Condition
// text arrives trimmed and lowercased. Forms are checked in a fixed
// order and the first match wins; text matching no form falls back to a
// substring search over content and description.
func (ev *evaluator) predicate(text string, t task.Task) bool {
	switch text {
	case "recurring":
		return t.IsRecurring()
	case "assigned":
		return t.ProjectID() != ""
	case "unassigned":
		return t.ProjectID() == ""
	case "delegated", "delegated:*":
		return t.IsDelegated()
	}

	if name, ok := strings.CutPrefix(text, "delegated:"); ok {
		return t.IsDelegated() && strings.ToLower(t.DelegatedTo()) == strings.TrimSpace(name)
	}

	if field, ok := strings.CutPrefix(text, "has:"); ok {
		switch field {
		case "date":
			return t.HasDueDate()
		case "deadline":
			return t.HasDeadline()
		case "description":
			return t.Description() != ""
		case "labels":
			return len(t.Labels()) > 0
		case "duration":
			return t.Duration() > 0
		}
		// unknown has: forms fall through to the text search
	}

	if needle, ok := strings.CutPrefix(text, "search:"); ok {
		return ev.textSearch(strings.TrimSpace(needle), t)
	}

	switch text {
	case "today":
		return t.HasDueDate() && withinDay(t.DueDate(), ev.now)
	case "tomorrow":
		return t.HasDueDate() && withinDay(t.DueDate(), ev.now.AddDate(0, 0, 1))
	case "overdue":
		return t.HasDueDate() && t.DueDate().Before(startOfDay(ev.now))
	case "no date", "no due date":
		return !t.HasDueDate()
	case "no deadline":
		return !t.HasDeadline()
	case "deadline:today":
		return t.HasDeadline() && withinDay(t.Deadline(), ev.now)
	case "deadline:tomorrow":
		return t.HasDeadline() && withinDay(t.Deadline(), ev.now.AddDate(0, 0, 1))
	case "deadline:overdue":
		return t.HasDeadline() && t.Deadline().Before(startOfDay(ev.now))
	}

	if result, ok := ev.dateComparison(text, t); ok {
		return result
	}

	if days, ok := parseDaysWindow(text); ok {
		return t.HasDueDate() &&
			!t.DueDate().Before(startOfDay(ev.now)) &&
			!t.DueDate().After(endOfDay(ev.now.AddDate(0, 0, days)))
	}

	if p, ok := task.ParsePriority(text); ok {
		return t.Priority() == p
	}

	if name, ok := strings.CutPrefix(text, "#"); ok {
		return ev.entityMatches(name, ev.ctx.projects, t.ProjectID())
	}
	if name, ok := strings.CutPrefix(text, "@"); ok {
		return ev.labelMatches(name, t)
	}
	if name, ok := strings.CutPrefix(text, "/"); ok {
		return ev.entityMatches(name, ev.ctx.sections, t.SectionID())
	}

	return ev.textSearch(text, t)
}

// dateComparison handles the four "due/deadline before/after" forms. The
// second return value reports whether text was one of them. An
// unresolvable date makes the condition false rather than an error.
func (ev *evaluator) dateComparison(text string, t task.Task) (bool, bool) {
	forms := []struct {
		prefix string
		field  func(task.Task) time.Time
		after  bool
	}{
		{"due before:", task.Task.DueDate, false},
		{"due after:", task.Task.DueDate, true},
		{"deadline before:", task.Task.Deadline, false},
		{"deadline after:", task.Task.Deadline, true},
	}

	for _, form := range forms {
		value, matched := strings.CutPrefix(text, form.prefix)
		if !matched {
			continue
		}
		moment, resolved := ev.resolver.Resolve(strings.TrimSpace(value), ev.now)
		if !resolved {
			return false, true
		}
		fieldValue := form.field(t)
		if fieldValue.IsZero() {
			return false, true
		}
		if form.after {
			return fieldValue.After(moment), true
		}
		return fieldValue.Before(moment), true
	}
	return false, false
}

// parseDaysWindow parses the "<N> days" and "next <N> days" forms.
func parseDaysWindow(text string) (int, bool) {
	text = strings.TrimPrefix(text, "next ")
	value, ok := strings.CutSuffix(text, " days")
	if !ok {
		return 0, false
	}
	days, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || days < 0 {
		return 0, false
	}
	return days, true
}

// entityMatches implements the shared project/section membership rule.
// Wildcard patterns consult the named-entity table, known names test id
// membership, and unknown names compare against the raw id so a filter
// can reference an entity id directly. A task without the field set
// never matches.
func (ev *evaluator) entityMatches(name string, table map[string]idSet, id string) bool {
	if id == "" {
		return false
	}
	if strings.Contains(name, "*") {
		for entityName, ids := range table {
			if ev.matcher.Matches(name, entityName) && ids.contains(id) {
				return true
			}
		}
		return false
	}
	if ids, ok := table[name]; ok {
		return ids.contains(id)
	}
	return id == name
}

// labelMatches implements the label membership rule. Wildcards go
// through the label table; exact names test the task's own labels. A
// task with no labels never matches, wildcard or not.
func (ev *evaluator) labelMatches(name string, t task.Task) bool {
	labels := t.Labels()
	if len(labels) == 0 {
		return false
	}
	if strings.Contains(name, "*") {
		for labelName, ids := range ev.ctx.labels {
			if !ev.matcher.Matches(name, labelName) {
				continue
			}
			for _, l := range labels {
				if ids.contains(l.ID()) {
					return true
				}
			}
		}
		return false
	}
	for _, l := range labels {
		if strings.ToLower(l.Name()) == name {
			return true
		}
	}
	return false
}

// textSearch is the fallback condition: a case-insensitive substring
// match over content and description.
func (ev *evaluator) textSearch(needle string, t task.Task) bool {
	return strings.Contains(strings.ToLower(t.Content()), needle) ||
		strings.Contains(strings.ToLower(t.Description()), needle)
}
