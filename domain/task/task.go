// Package task provides the task entity and its value types.
package task

import (
	"time"
)

// Task represents a single to-do item. Tasks are immutable value objects;
// modifiers return copies.
type Task struct {
	id             string
	content        string
	description    string
	projectID      string
	sectionID      string
	labels         []Label
	priority       Priority
	completed      bool
	deletedAt      time.Time
	dueDate        time.Time
	deadline       time.Time
	duration       int
	recurrenceRule string
	delegatedTo    string
	createdAt      time.Time
	updatedAt      time.Time
}

// Option configures a Task at construction time.
type Option func(*Task)

// WithDescription sets the free-text description.
func WithDescription(description string) Option {
	return func(t *Task) {
		t.description = description
	}
}

// WithProject assigns the task to a project.
func WithProject(projectID string) Option {
	return func(t *Task) {
		t.projectID = projectID
	}
}

// WithSection places the task in a section.
func WithSection(sectionID string) Option {
	return func(t *Task) {
		t.sectionID = sectionID
	}
}

// WithLabels attaches labels to the task.
func WithLabels(labels ...Label) Option {
	return func(t *Task) {
		t.labels = make([]Label, len(labels))
		copy(t.labels, labels)
	}
}

// WithPriority sets the task priority. Invalid values fall back to
// PriorityNone.
func WithPriority(p Priority) Option {
	return func(t *Task) {
		if !p.IsValid() {
			p = PriorityNone
		}
		t.priority = p
	}
}

// WithDueDate sets the due date.
func WithDueDate(due time.Time) Option {
	return func(t *Task) {
		t.dueDate = due
	}
}

// WithDeadline sets the deadline.
func WithDeadline(deadline time.Time) Option {
	return func(t *Task) {
		t.deadline = deadline
	}
}

// WithDuration sets the estimated duration in minutes. Zero clears it;
// negative values are ignored.
func WithDuration(minutes int) Option {
	return func(t *Task) {
		if minutes >= 0 {
			t.duration = minutes
		}
	}
}

// WithRecurrence sets the opaque recurrence rule. A non-empty rule marks
// the task as recurring.
func WithRecurrence(rule string) Option {
	return func(t *Task) {
		t.recurrenceRule = rule
	}
}

// WithDelegation records who the task is delegated to.
func WithDelegation(name string) Option {
	return func(t *Task) {
		t.delegatedTo = name
	}
}

// NewTask creates a new Task with the given content.
func NewTask(content string, opts ...Option) Task {
	t := Task{
		content:  content,
		priority: PriorityNone,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// ReconstructTask rebuilds a Task from persistence. All fields are taken
// as-is apart from the label slice, which is copied.
func ReconstructTask(
	id, content, description string,
	projectID, sectionID string,
	labels []Label,
	priority Priority,
	completed bool,
	deletedAt, dueDate, deadline time.Time,
	duration int,
	recurrenceRule, delegatedTo string,
	createdAt, updatedAt time.Time,
) Task {
	copied := make([]Label, len(labels))
	copy(copied, labels)

	return Task{
		id:             id,
		content:        content,
		description:    description,
		projectID:      projectID,
		sectionID:      sectionID,
		labels:         copied,
		priority:       priority,
		completed:      completed,
		deletedAt:      deletedAt,
		dueDate:        dueDate,
		deadline:       deadline,
		duration:       duration,
		recurrenceRule: recurrenceRule,
		delegatedTo:    delegatedTo,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ID returns the task identifier.
func (t Task) ID() string { return t.id }

// Content returns the task content.
func (t Task) Content() string { return t.content }

// Description returns the free-text description.
func (t Task) Description() string { return t.description }

// ProjectID returns the owning project id, or "" when unassigned.
func (t Task) ProjectID() string { return t.projectID }

// SectionID returns the owning section id, or "" when none.
func (t Task) SectionID() string { return t.sectionID }

// Labels returns a copy of the attached labels.
func (t Task) Labels() []Label {
	result := make([]Label, len(t.labels))
	copy(result, t.labels)
	return result
}

// Priority returns the task priority.
func (t Task) Priority() Priority { return t.priority }

// Completed reports whether the task is done.
func (t Task) Completed() bool { return t.completed }

// DeletedAt returns when the task was soft-deleted, or the zero time.
func (t Task) DeletedAt() time.Time { return t.deletedAt }

// DueDate returns the due date, or the zero time when unset.
func (t Task) DueDate() time.Time { return t.dueDate }

// Deadline returns the deadline, or the zero time when unset.
func (t Task) Deadline() time.Time { return t.deadline }

// Duration returns the estimated duration in minutes, 0 when unset.
func (t Task) Duration() int { return t.duration }

// RecurrenceRule returns the opaque recurrence rule.
func (t Task) RecurrenceRule() string { return t.recurrenceRule }

// DelegatedTo returns who the task is delegated to, or "".
func (t Task) DelegatedTo() string { return t.delegatedTo }

// CreatedAt returns when the task was created.
func (t Task) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns when the task was last updated.
func (t Task) UpdatedAt() time.Time { return t.updatedAt }

// IsRecurring reports whether the task has a recurrence rule.
func (t Task) IsRecurring() bool { return t.recurrenceRule != "" }

// IsDelegated reports whether the task is delegated to someone.
func (t Task) IsDelegated() bool { return t.delegatedTo != "" }

// IsDeleted reports whether the task has been soft-deleted.
func (t Task) IsDeleted() bool { return !t.deletedAt.IsZero() }

// HasDueDate reports whether a due date is set.
func (t Task) HasDueDate() bool { return !t.dueDate.IsZero() }

// HasDeadline reports whether a deadline is set.
func (t Task) HasDeadline() bool { return !t.deadline.IsZero() }

// WithID returns a copy of the task with the given id.
func (t Task) WithID(id string) Task {
	t.id = id
	return t
}

// WithTimestamps returns a copy of the task with the given timestamps.
func (t Task) WithTimestamps(createdAt, updatedAt time.Time) Task {
	t.createdAt = createdAt
	t.updatedAt = updatedAt
	return t
}

// WithContent returns a copy of the task with new content.
func (t Task) WithContent(content string) Task {
	t.content = content
	return t
}

// Apply returns a copy of the task with the given options applied. The
// label slice is copied first so option mutations never leak back.
func (t Task) Apply(opts ...Option) Task {
	t.labels = t.Labels()
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Complete returns a copy of the task marked done.
func (t Task) Complete() Task {
	t.completed = true
	return t
}

// Reopen returns a copy of the task marked not done.
func (t Task) Reopen() Task {
	t.completed = false
	return t
}

// MarkDeleted returns a copy of the task soft-deleted at the given time.
func (t Task) MarkDeleted(at time.Time) Task {
	t.deletedAt = at
	return t
}
