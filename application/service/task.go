// Package service provides application layer services that orchestrate domain operations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hunterjackson/todoer-sub000/domain/storage"
	"github.com/hunterjackson/todoer-sub000/domain/task"
)

// TaskCreateParams configures creating a new task. Content is required;
// everything else is optional.
type TaskCreateParams struct {
	Content     string
	Description string
	ProjectID   string
	SectionID   string
	LabelIDs    []string
	Priority    int
	DueDate     time.Time
	Deadline    time.Time
	Duration    int
	Recurrence  string
	DelegatedTo string
}

// TaskUpdateParams configures updating an existing task. Nil fields are
// left unchanged.
type TaskUpdateParams struct {
	Content     *string
	Description *string
	ProjectID   *string
	SectionID   *string
	LabelIDs    *[]string
	Priority    *int
	DueDate     *time.Time
	Deadline    *time.Time
	Duration    *int
	Recurrence  *string
	DelegatedTo *string
}

// Task provides task management operations.
// Embeds Collection for Find/Get; bespoke methods handle writes and lifecycle.
type Task struct {
	storage.Collection[task.Task]
	store      storage.TaskStore
	labelStore storage.LabelStore
	closed     *atomic.Bool
	logger     *slog.Logger
}

// NewTask creates a new Task service.
func NewTask(store storage.TaskStore, labelStore storage.LabelStore, closed *atomic.Bool, logger *slog.Logger) *Task {
	if logger == nil {
		logger = slog.Default()
	}
	return &Task{
		Collection: storage.NewCollection[task.Task](store),
		store:      store,
		labelStore: labelStore,
		closed:     closed,
		logger:     logger,
	}
}

// Create validates the params, mints an id, and persists the task.
func (s *Task) Create(ctx context.Context, params *TaskCreateParams) (task.Task, error) {
	if s.isClosed() {
		return task.Task{}, ErrClientClosed
	}

	content := strings.TrimSpace(params.Content)
	if content == "" {
		return task.Task{}, ErrEmptyContent
	}

	labels, err := s.resolveLabels(ctx, params.LabelIDs)
	if err != nil {
		return task.Task{}, err
	}

	opts := []task.Option{
		task.WithDescription(params.Description),
		task.WithProject(params.ProjectID),
		task.WithSection(params.SectionID),
		task.WithLabels(labels...),
		task.WithDuration(params.Duration),
		task.WithRecurrence(params.Recurrence),
		task.WithDelegation(params.DelegatedTo),
	}
	if params.Priority != 0 {
		opts = append(opts, task.WithPriority(task.Priority(params.Priority)))
	}
	if !params.DueDate.IsZero() {
		opts = append(opts, task.WithDueDate(params.DueDate))
	}
	if !params.Deadline.IsZero() {
		opts = append(opts, task.WithDeadline(params.Deadline))
	}

	now := time.Now()
	t := task.NewTask(content, opts...).
		WithID(uuid.New().String()).
		WithTimestamps(now, now)

	saved, err := s.store.Save(ctx, t)
	if err != nil {
		return task.Task{}, fmt.Errorf("save task: %w", err)
	}

	s.logger.Info("task created",
		slog.String("task_id", saved.ID()),
		slog.String("project_id", saved.ProjectID()),
	)
	return saved, nil
}

// Update applies the non-nil params to an existing task and persists it.
func (s *Task) Update(ctx context.Context, id string, params *TaskUpdateParams) (task.Task, error) {
	if s.isClosed() {
		return task.Task{}, ErrClientClosed
	}

	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return task.Task{}, fmt.Errorf("get task: %w", err)
	}

	updated := current
	if params.Content != nil {
		content := strings.TrimSpace(*params.Content)
		if content == "" {
			return task.Task{}, ErrEmptyContent
		}
		updated = updated.WithContent(content)
	}

	var opts []task.Option
	if params.Description != nil {
		opts = append(opts, task.WithDescription(*params.Description))
	}
	if params.ProjectID != nil {
		opts = append(opts, task.WithProject(*params.ProjectID))
	}
	if params.SectionID != nil {
		opts = append(opts, task.WithSection(*params.SectionID))
	}
	if params.LabelIDs != nil {
		labels, err := s.resolveLabels(ctx, *params.LabelIDs)
		if err != nil {
			return task.Task{}, err
		}
		opts = append(opts, task.WithLabels(labels...))
	}
	if params.Priority != nil {
		opts = append(opts, task.WithPriority(task.Priority(*params.Priority)))
	}
	if params.DueDate != nil {
		opts = append(opts, task.WithDueDate(*params.DueDate))
	}
	if params.Deadline != nil {
		opts = append(opts, task.WithDeadline(*params.Deadline))
	}
	if params.Duration != nil {
		opts = append(opts, task.WithDuration(*params.Duration))
	}
	if params.Recurrence != nil {
		opts = append(opts, task.WithRecurrence(*params.Recurrence))
	}
	if params.DelegatedTo != nil {
		opts = append(opts, task.WithDelegation(*params.DelegatedTo))
	}
	updated = updated.Apply(opts...)

	saved, err := s.store.Save(ctx, updated)
	if err != nil {
		return task.Task{}, fmt.Errorf("save task: %w", err)
	}

	s.logger.Info("task updated", slog.String("task_id", saved.ID()))
	return saved, nil
}

// Get returns the task with the given id.
func (s *Task) Get(ctx context.Context, id string) (task.Task, error) {
	if s.isClosed() {
		return task.Task{}, ErrClientClosed
	}
	return s.store.FindByID(ctx, id)
}

// Complete marks the task done.
func (s *Task) Complete(ctx context.Context, id string) (task.Task, error) {
	if s.isClosed() {
		return task.Task{}, ErrClientClosed
	}

	if err := s.store.Complete(ctx, id); err != nil {
		return task.Task{}, fmt.Errorf("complete task: %w", err)
	}

	s.logger.Info("task completed", slog.String("task_id", id))
	return s.store.FindByID(ctx, id)
}

// Reopen marks the task not done.
func (s *Task) Reopen(ctx context.Context, id string) (task.Task, error) {
	if s.isClosed() {
		return task.Task{}, ErrClientClosed
	}

	if err := s.store.Reopen(ctx, id); err != nil {
		return task.Task{}, fmt.Errorf("reopen task: %w", err)
	}

	s.logger.Info("task reopened", slog.String("task_id", id))
	return s.store.FindByID(ctx, id)
}

// SoftDelete marks the task deleted. The row stays queryable so the
// filter engine can keep excluding it.
func (s *Task) SoftDelete(ctx context.Context, id string) error {
	if s.isClosed() {
		return ErrClientClosed
	}

	if err := s.store.SoftDelete(ctx, id, time.Now()); err != nil {
		return fmt.Errorf("soft delete task: %w", err)
	}

	s.logger.Info("task soft-deleted", slog.String("task_id", id))
	return nil
}

// Delete removes the task permanently.
func (s *Task) Delete(ctx context.Context, id string) error {
	if s.isClosed() {
		return ErrClientClosed
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.logger.Info("task deleted", slog.String("task_id", id))
	return nil
}

// resolveLabels loads the labels for the given ids so tasks carry
// (id, name) pairs. Unknown ids are an error rather than silently dropped.
func (s *Task) resolveLabels(ctx context.Context, ids []string) ([]task.Label, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := s.labelStore.Find(ctx, storage.WithIDIn(ids))
	if err != nil {
		return nil, fmt.Errorf("find labels: %w", err)
	}

	byID := make(map[string]string, len(found))
	for _, l := range found {
		byID[l.ID()] = l.Name()
	}

	labels := make([]task.Label, 0, len(ids))
	for _, id := range ids {
		name, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrLabelNotFound, id)
		}
		labels = append(labels, task.NewLabel(id, name))
	}
	return labels, nil
}

func (s *Task) isClosed() bool {
	return s.closed != nil && s.closed.Load()
}
