package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hunterjackson/todoer-sub000/domain/section"
	"github.com/hunterjackson/todoer-sub000/domain/storage"
)

// SectionCreateParams configures creating a new section.
type SectionCreateParams struct {
	Name      string
	ProjectID string
	Position  int
}

// SectionUpdateParams configures updating an existing section. Nil fields
// are left unchanged.
type SectionUpdateParams struct {
	Name     *string
	Position *int
}

// Section provides section management operations.
type Section struct {
	storage.Collection[section.Section]
	store  storage.SectionStore
	closed *atomic.Bool
	logger *slog.Logger
}

// NewSection creates a new Section service.
func NewSection(store storage.SectionStore, closed *atomic.Bool, logger *slog.Logger) *Section {
	if logger == nil {
		logger = slog.Default()
	}
	return &Section{
		Collection: storage.NewCollection[section.Section](store),
		store:      store,
		closed:     closed,
		logger:     logger,
	}
}

// Create validates the params, mints an id, and persists the section.
func (s *Section) Create(ctx context.Context, params *SectionCreateParams) (section.Section, error) {
	if s.isClosed() {
		return section.Section{}, ErrClientClosed
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return section.Section{}, ErrEmptyName
	}

	now := time.Now()
	sec := section.NewSection(name, params.ProjectID).
		WithID(uuid.New().String()).
		WithPosition(params.Position).
		WithTimestamps(now, now)

	saved, err := s.store.Save(ctx, sec)
	if err != nil {
		return section.Section{}, fmt.Errorf("save section: %w", err)
	}

	s.logger.Info("section created",
		slog.String("section_id", saved.ID()),
		slog.String("project_id", saved.ProjectID()),
	)
	return saved, nil
}

// Update applies the non-nil params to an existing section.
func (s *Section) Update(ctx context.Context, id string, params *SectionUpdateParams) (section.Section, error) {
	if s.isClosed() {
		return section.Section{}, ErrClientClosed
	}

	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return section.Section{}, fmt.Errorf("get section: %w", err)
	}

	updated := current
	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return section.Section{}, ErrEmptyName
		}
		updated = updated.WithName(name)
	}
	if params.Position != nil {
		updated = updated.WithPosition(*params.Position)
	}

	saved, err := s.store.Save(ctx, updated)
	if err != nil {
		return section.Section{}, fmt.Errorf("save section: %w", err)
	}

	s.logger.Info("section updated", slog.String("section_id", saved.ID()))
	return saved, nil
}

// Get returns the section with the given id.
func (s *Section) Get(ctx context.Context, id string) (section.Section, error) {
	if s.isClosed() {
		return section.Section{}, ErrClientClosed
	}
	return s.store.FindByID(ctx, id)
}

// List returns sections, optionally narrowed to one project, ordered by
// position.
func (s *Section) List(ctx context.Context, projectID string) ([]section.Section, error) {
	if s.isClosed() {
		return nil, ErrClientClosed
	}

	options := []storage.Option{storage.WithOrderAsc("position")}
	if projectID != "" {
		options = append(options, storage.WithProjectID(projectID))
	}
	return s.store.Find(ctx, options...)
}

// Delete removes a section. Its tasks keep their section_id.
func (s *Section) Delete(ctx context.Context, id string) error {
	if s.isClosed() {
		return ErrClientClosed
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}

	s.logger.Info("section deleted", slog.String("section_id", id))
	return nil
}

func (s *Section) isClosed() bool {
	return s.closed != nil && s.closed.Load()
}
