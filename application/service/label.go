package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hunterjackson/todoer-sub000/domain/label"
	"github.com/hunterjackson/todoer-sub000/domain/storage"
)

// LabelCreateParams configures creating a new label.
type LabelCreateParams struct {
	Name  string
	Color string
}

// LabelUpdateParams configures updating an existing label. Nil fields are
// left unchanged.
type LabelUpdateParams struct {
	Name  *string
	Color *string
}

// Label provides label management operations.
type Label struct {
	storage.Collection[label.Label]
	store  storage.LabelStore
	closed *atomic.Bool
	logger *slog.Logger
}

// NewLabel creates a new Label service.
func NewLabel(store storage.LabelStore, closed *atomic.Bool, logger *slog.Logger) *Label {
	if logger == nil {
		logger = slog.Default()
	}
	return &Label{
		Collection: storage.NewCollection[label.Label](store),
		store:      store,
		closed:     closed,
		logger:     logger,
	}
}

// Create validates the params, mints an id, and persists the label.
func (s *Label) Create(ctx context.Context, params *LabelCreateParams) (label.Label, error) {
	if s.isClosed() {
		return label.Label{}, ErrClientClosed
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return label.Label{}, ErrEmptyName
	}

	now := time.Now()
	l := label.NewLabel(name).
		WithID(uuid.New().String()).
		WithColor(params.Color).
		WithTimestamps(now, now)

	saved, err := s.store.Save(ctx, l)
	if err != nil {
		return label.Label{}, fmt.Errorf("save label: %w", err)
	}

	s.logger.Info("label created",
		slog.String("label_id", saved.ID()),
		slog.String("name", saved.Name()),
	)
	return saved, nil
}

// Update applies the non-nil params to an existing label.
func (s *Label) Update(ctx context.Context, id string, params *LabelUpdateParams) (label.Label, error) {
	if s.isClosed() {
		return label.Label{}, ErrClientClosed
	}

	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return label.Label{}, fmt.Errorf("get label: %w", err)
	}

	updated := current
	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return label.Label{}, ErrEmptyName
		}
		updated = updated.WithName(name)
	}
	if params.Color != nil {
		updated = updated.WithColor(*params.Color)
	}

	saved, err := s.store.Save(ctx, updated)
	if err != nil {
		return label.Label{}, fmt.Errorf("save label: %w", err)
	}

	s.logger.Info("label updated", slog.String("label_id", saved.ID()))
	return saved, nil
}

// Get returns the label with the given id.
func (s *Label) Get(ctx context.Context, id string) (label.Label, error) {
	if s.isClosed() {
		return label.Label{}, ErrClientClosed
	}
	return s.store.FindByID(ctx, id)
}

// List returns all labels ordered by name.
func (s *Label) List(ctx context.Context) ([]label.Label, error) {
	if s.isClosed() {
		return nil, ErrClientClosed
	}
	return s.store.Find(ctx, storage.WithOrderAsc("name"))
}

// Delete removes a label and detaches it from all tasks.
func (s *Label) Delete(ctx context.Context, id string) error {
	if s.isClosed() {
		return ErrClientClosed
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete label: %w", err)
	}

	s.logger.Info("label deleted", slog.String("label_id", id))
	return nil
}

func (s *Label) isClosed() bool {
	return s.closed != nil && s.closed.Load()
}
