package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hunterjackson/todoer-sub000/domain/filter"
	"github.com/hunterjackson/todoer-sub000/domain/label"
	"github.com/hunterjackson/todoer-sub000/domain/project"
	"github.com/hunterjackson/todoer-sub000/domain/section"
	"github.com/hunterjackson/todoer-sub000/domain/storage"
	"github.com/hunterjackson/todoer-sub000/domain/task"
)

// FilterOption configures the Filter service at construction.
type FilterOption func(*Filter)

// WithClock replaces the wall clock read by relative-date conditions.
func WithClock(c filter.Clock) FilterOption {
	return func(s *Filter) {
		s.engineOpts = append(s.engineOpts, filter.WithClock(c))
	}
}

// WithDateResolver replaces the resolver used by before:/after: comparisons.
func WithDateResolver(r filter.DateResolver) FilterOption {
	return func(s *Filter) {
		s.engineOpts = append(s.engineOpts, filter.WithDateResolver(r))
	}
}

// QueryOption configures a single filter evaluation.
type QueryOption func(*queryConfig)

// queryConfig holds per-query parameters.
type queryConfig struct {
	limit  int
	offset int
}

// WithLimit caps the number of returned tasks. Zero means no cap.
func WithLimit(n int) QueryOption {
	return func(c *queryConfig) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithOffset skips the first n matches.
func WithOffset(n int) QueryOption {
	return func(c *queryConfig) {
		if n > 0 {
			c.offset = n
		}
	}
}

// Filter is the main read path: it loads the live task collection plus the
// project/label/section name tables, builds the evaluation context, and
// runs the query engine.
type Filter struct {
	tasks      storage.TaskStore
	projects   storage.ProjectStore
	labels     storage.LabelStore
	sections   storage.SectionStore
	engine     *filter.Engine
	engineOpts []filter.EngineOption
	closed     *atomic.Bool
	logger     *slog.Logger
}

// NewFilter creates a new Filter service.
func NewFilter(
	tasks storage.TaskStore,
	projects storage.ProjectStore,
	labels storage.LabelStore,
	sections storage.SectionStore,
	closed *atomic.Bool,
	logger *slog.Logger,
	opts ...FilterOption,
) *Filter {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Filter{
		tasks:    tasks,
		projects: projects,
		labels:   labels,
		sections: sections,
		closed:   closed,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = filter.NewEngine(s.engineOpts...)
	return s
}

// Query evaluates a filter query against all stored tasks and returns the
// matches in storage order. An empty query returns every task, completed
// and soft-deleted ones included.
func (s *Filter) Query(ctx context.Context, query string, opts ...QueryOption) ([]task.Task, error) {
	if s.isClosed() {
		return nil, ErrClientClosed
	}

	cfg := &queryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	tasks, fctx, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := s.engine.Evaluate(tasks, query, fctx)

	if cfg.offset > 0 {
		if cfg.offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[cfg.offset:]
		}
	}
	if cfg.limit > 0 && len(matched) > cfg.limit {
		matched = matched[:cfg.limit]
	}

	s.logger.Debug("filter evaluated",
		slog.String("query", query),
		slog.Int("candidates", len(tasks)),
		slog.Int("matched", len(matched)),
	)
	return matched, nil
}

// Count reports how many tasks match a filter query.
func (s *Filter) Count(ctx context.Context, query string) (int64, error) {
	if s.isClosed() {
		return 0, ErrClientClosed
	}

	tasks, fctx, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	return int64(len(s.engine.Evaluate(tasks, query, fctx))), nil
}

// load fetches the task collection and the three name tables concurrently.
func (s *Filter) load(ctx context.Context) ([]task.Task, filter.Context, error) {
	var (
		tasks    []task.Task
		projects []project.Project
		labels   []label.Label
		sections []section.Section
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if tasks, err = s.tasks.Find(gctx, storage.WithOrderAsc("created_at")); err != nil {
			return fmt.Errorf("load tasks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if projects, err = s.projects.Find(gctx); err != nil {
			return fmt.Errorf("load projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if labels, err = s.labels.Find(gctx); err != nil {
			return fmt.Errorf("load labels: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if sections, err = s.sections.Find(gctx); err != nil {
			return fmt.Errorf("load sections: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, filter.Context{}, err
	}

	namedProjects := make([]filter.NamedEntity, len(projects))
	for i, p := range projects {
		namedProjects[i] = filter.NewNamedEntity(p.ID(), p.Name())
	}
	namedLabels := make([]filter.NamedEntity, len(labels))
	for i, l := range labels {
		namedLabels[i] = filter.NewNamedEntity(l.ID(), l.Name())
	}
	namedSections := make([]filter.NamedEntity, len(sections))
	for i, sec := range sections {
		namedSections[i] = filter.NewNamedEntity(sec.ID(), sec.Name())
	}

	return tasks, filter.BuildContext(namedProjects, namedLabels, namedSections), nil
}

func (s *Filter) isClosed() bool {
	return s.closed != nil && s.closed.Load()
}
