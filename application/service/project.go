package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hunterjackson/todoer-sub000/domain/project"
	"github.com/hunterjackson/todoer-sub000/domain/storage"
)

// ProjectCreateParams configures creating a new project.
type ProjectCreateParams struct {
	Name     string
	Color    string
	Position int
}

// ProjectUpdateParams configures updating an existing project. Nil fields
// are left unchanged.
type ProjectUpdateParams struct {
	Name     *string
	Color    *string
	Position *int
}

// Project provides project management operations.
type Project struct {
	storage.Collection[project.Project]
	store  storage.ProjectStore
	closed *atomic.Bool
	logger *slog.Logger
}

// NewProject creates a new Project service.
func NewProject(store storage.ProjectStore, closed *atomic.Bool, logger *slog.Logger) *Project {
	if logger == nil {
		logger = slog.Default()
	}
	return &Project{
		Collection: storage.NewCollection[project.Project](store),
		store:      store,
		closed:     closed,
		logger:     logger,
	}
}

// Create validates the params, mints an id, and persists the project.
func (s *Project) Create(ctx context.Context, params *ProjectCreateParams) (project.Project, error) {
	if s.isClosed() {
		return project.Project{}, ErrClientClosed
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return project.Project{}, ErrEmptyName
	}

	now := time.Now()
	p := project.NewProject(name).
		WithID(uuid.New().String()).
		WithColor(params.Color).
		WithPosition(params.Position).
		WithTimestamps(now, now)

	saved, err := s.store.Save(ctx, p)
	if err != nil {
		return project.Project{}, fmt.Errorf("save project: %w", err)
	}

	s.logger.Info("project created",
		slog.String("project_id", saved.ID()),
		slog.String("name", saved.Name()),
	)
	return saved, nil
}

// Update applies the non-nil params to an existing project.
func (s *Project) Update(ctx context.Context, id string, params *ProjectUpdateParams) (project.Project, error) {
	if s.isClosed() {
		return project.Project{}, ErrClientClosed
	}

	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return project.Project{}, fmt.Errorf("get project: %w", err)
	}

	updated := current
	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return project.Project{}, ErrEmptyName
		}
		updated = updated.WithName(name)
	}
	if params.Color != nil {
		updated = updated.WithColor(*params.Color)
	}
	if params.Position != nil {
		updated = updated.WithPosition(*params.Position)
	}

	saved, err := s.store.Save(ctx, updated)
	if err != nil {
		return project.Project{}, fmt.Errorf("save project: %w", err)
	}

	s.logger.Info("project updated", slog.String("project_id", saved.ID()))
	return saved, nil
}

// Get returns the project with the given id.
func (s *Project) Get(ctx context.Context, id string) (project.Project, error) {
	if s.isClosed() {
		return project.Project{}, ErrClientClosed
	}
	return s.store.FindByID(ctx, id)
}

// List returns all projects ordered by position.
func (s *Project) List(ctx context.Context) ([]project.Project, error) {
	if s.isClosed() {
		return nil, ErrClientClosed
	}
	return s.store.Find(ctx, storage.WithOrderAsc("position"))
}

// Delete removes a project. Its tasks and sections are left in place.
func (s *Project) Delete(ctx context.Context, id string) error {
	if s.isClosed() {
		return ErrClientClosed
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.logger.Info("project deleted", slog.String("project_id", id))
	return nil
}

func (s *Project) isClosed() bool {
	return s.closed != nil && s.closed.Load()
}
