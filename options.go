package todoer

import (
	"io"
	"log/slog"

	"github.com/hunterjackson/todoer-sub000/domain/filter"
	"github.com/hunterjackson/todoer-sub000/internal/config"
)

// databaseType identifies the database.
type databaseType int

const (
	databaseUnset databaseType = iota
	databaseSQLite
	databasePostgres
)

// clientConfig holds configuration for Client construction.
// Use newClientConfig() to create with defaults from internal/config.
type clientConfig struct {
	database databaseType
	dbPath   string
	dbDSN    string
	dataDir  string
	logger   *slog.Logger
	apiKeys  []string
	clock    filter.Clock
	resolver filter.DateResolver
	closers  []io.Closer
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		dataDir: config.DefaultDataDir(),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.database = databaseSQLite
		c.dbPath = path
	}
}

// WithPostgres configures PostgreSQL as the database.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.database = databasePostgres
		c.dbDSN = dsn
	}
}

// WithDataDir sets the data directory for database storage.
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.dataDir = dir
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithAPIKeys sets the API keys for HTTP API write protection.
func WithAPIKeys(keys ...string) Option {
	return func(c *clientConfig) {
		c.apiKeys = keys
	}
}

// WithClock sets the clock used to resolve relative date keywords
// (today, overdue, "no date") in filter queries. Defaults to the
// local wall clock. Useful for tests that need a fixed now.
func WithClock(clock filter.Clock) Option {
	return func(c *clientConfig) {
		c.clock = clock
	}
}

// WithDateResolver sets a custom resolver for date expressions in
// filter queries.
func WithDateResolver(r filter.DateResolver) Option {
	return func(c *clientConfig) {
		c.resolver = r
	}
}

// WithCloser registers a resource to be closed when the Client shuts down.
func WithCloser(c io.Closer) Option {
	return func(cfg *clientConfig) {
		cfg.closers = append(cfg.closers, c)
	}
}
