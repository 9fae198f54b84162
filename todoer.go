// Package todoer provides an embeddable personal task manager with a
// textual filter query language.
//
// Tasks carry priorities, projects, sections, labels, and dates. Filter
// queries combine those facets with boolean operators — "p1 & #work",
// "@urgent | (overdue & !assigned)" — and are evaluated in memory against
// the stored task collection.
//
// Basic usage:
//
//	client, err := todoer.New(
//	    todoer.WithSQLite(".todoer/data.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create a task
//	created, err := client.Tasks.Create(ctx, &service.TaskCreateParams{
//	    Content:  "Ship the release",
//	    Priority: 1,
//	})
//
//	// Evaluate a filter query
//	matches, err := client.Filters.Query(ctx, "p1 & #work")
//	for _, t := range matches {
//	    fmt.Println(t.Content())
//	}
package todoer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/hunterjackson/todoer-sub000/application/service"
	"github.com/hunterjackson/todoer-sub000/infrastructure/persistence"
	"github.com/hunterjackson/todoer-sub000/internal/config"
	"github.com/hunterjackson/todoer-sub000/internal/database"
)

// Client is the main entry point for the todoer library.
//
// Access resources via struct fields:
//
//	client.Tasks.Create(ctx, params)
//	client.Projects.List(ctx)
//	client.Filters.Query(ctx, "p1 & #work")
type Client struct {
	// Public resource fields (direct service access)
	Tasks    *service.Task
	Projects *service.Project
	Labels   *service.Label
	Sections *service.Section
	Filters  *service.Filter

	db      database.Database
	closers []io.Closer

	logger  *slog.Logger
	dataDir string
	apiKeys []string
	closed  atomic.Bool
	mu      sync.Mutex
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.database == databaseUnset {
		return nil, ErrNoDatabase
	}

	// Set up logger
	logger := cfg.logger
	if logger == nil {
		logger = config.DefaultLogger()
	}

	// Set up data directory
	dataDir, err := config.PrepareDataDir(cfg.dataDir)
	if err != nil {
		return nil, err
	}

	// Build database URL
	ctx := context.Background()
	dbURL, err := buildDatabaseURL(cfg)
	if err != nil {
		return nil, fmt.Errorf("build database url: %w", err)
	}

	// Open database
	db, err := database.NewDatabase(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Run auto migration
	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	// Validate schema matches GORM models
	if err := persistence.ValidateSchema(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("validate schema: %w", err), errClose)
	}

	// Create stores
	taskStore := persistence.NewTaskStore(db)
	projectStore := persistence.NewProjectStore(db)
	labelStore := persistence.NewLabelStore(db)
	sectionStore := persistence.NewSectionStore(db)

	client := &Client{
		db:      db,
		closers: cfg.closers,
		logger:  logger,
		dataDir: dataDir,
		apiKeys: cfg.apiKeys,
	}

	var filterOpts []service.FilterOption
	if cfg.clock != nil {
		filterOpts = append(filterOpts, service.WithClock(cfg.clock))
	}
	if cfg.resolver != nil {
		filterOpts = append(filterOpts, service.WithDateResolver(cfg.resolver))
	}

	// Initialize service fields directly
	client.Tasks = service.NewTask(taskStore, labelStore, &client.closed, logger)
	client.Projects = service.NewProject(projectStore, &client.closed, logger)
	client.Labels = service.NewLabel(labelStore, &client.closed, logger)
	client.Sections = service.NewSection(sectionStore, &client.closed, logger)
	client.Filters = service.NewFilter(taskStore, projectStore, labelStore, sectionStore, &client.closed, logger, filterOpts...)

	return client, nil
}

// Close releases all resources.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Close registered resources
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			c.logger.Error("failed to close resource", slog.Any("error", err))
		}
	}

	// Close the database
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("todoer client closed")
	return nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// APIKeys returns the API keys configured for HTTP write protection.
func (c *Client) APIKeys() []string {
	return c.apiKeys
}

// DataDir returns the prepared data directory.
func (c *Client) DataDir() string {
	return c.dataDir
}

// buildDatabaseURL constructs the database URL from configuration.
func buildDatabaseURL(cfg *clientConfig) (string, error) {
	switch cfg.database {
	case databaseSQLite:
		return "sqlite:///" + cfg.dbPath, nil
	case databasePostgres:
		return cfg.dbDSN, nil
	default:
		return "", ErrNoDatabase
	}
}
