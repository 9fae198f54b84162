package storage

import (
	"context"
	"time"

	"github.com/hunterjackson/todoer-sub000/domain/label"
	"github.com/hunterjackson/todoer-sub000/domain/project"
	"github.com/hunterjackson/todoer-sub000/domain/section"
	"github.com/hunterjackson/todoer-sub000/domain/task"
)

// Store defines the persistence operations shared by all entity stores.
type Store[T any] interface {
	Find(ctx context.Context, options ...Option) ([]T, error)
	FindOne(ctx context.Context, options ...Option) (T, error)
	Count(ctx context.Context, options ...Option) (int64, error)
	Exists(ctx context.Context, options ...Option) (bool, error)
}

// TaskStore defines operations for persisting and retrieving tasks.
type TaskStore interface {
	Store[task.Task]

	// FindByID returns the task with the given id.
	FindByID(ctx context.Context, id string) (task.Task, error)

	// Save creates or updates a task together with its label links.
	Save(ctx context.Context, t task.Task) (task.Task, error)

	// Delete removes a task permanently.
	Delete(ctx context.Context, id string) error

	// SoftDelete marks the task deleted at the given time without
	// removing the row. Soft-deleted tasks stay queryable.
	SoftDelete(ctx context.Context, id string, at time.Time) error

	// Complete marks the task done.
	Complete(ctx context.Context, id string) error

	// Reopen marks the task not done.
	Reopen(ctx context.Context, id string) error
}

// ProjectStore defines operations for persisting and retrieving projects.
type ProjectStore interface {
	Store[project.Project]
	FindByID(ctx context.Context, id string) (project.Project, error)
	Save(ctx context.Context, p project.Project) (project.Project, error)
	Delete(ctx context.Context, id string) error
}

// LabelStore defines operations for persisting and retrieving labels.
type LabelStore interface {
	Store[label.Label]
	FindByID(ctx context.Context, id string) (label.Label, error)
	Save(ctx context.Context, l label.Label) (label.Label, error)
	Delete(ctx context.Context, id string) error
}

// SectionStore defines operations for persisting and retrieving sections.
type SectionStore interface {
	Store[section.Section]
	FindByID(ctx context.Context, id string) (section.Section, error)
	Save(ctx context.Context, s section.Section) (section.Section, error)
	Delete(ctx context.Context, id string) error
}
