package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	todoer "github.com/hunterjackson/todoer-sub000"
	"github.com/hunterjackson/todoer-sub000/internal/config"
	"github.com/hunterjackson/todoer-sub000/internal/log"
)

// clientOptions returns the todoer.Option slice derived from the shared
// parts of AppConfig: data directory and database storage. Callers append
// entrypoint-specific options (logger, API keys) before passing the full
// slice to todoer.New.
func clientOptions(cfg config.AppConfig) []todoer.Option {
	opts := []todoer.Option{
		todoer.WithDataDir(cfg.DataDir()),
	}
	return append(opts, storageOptions(cfg)...)
}

// storageOptions returns the todoer.Option for the configured database backend.
func storageOptions(cfg config.AppConfig) []todoer.Option {
	dbURL := cfg.DBURL()

	if dbURL != "" && !isSQLite(dbURL) {
		return []todoer.Option{todoer.WithPostgres(dbURL)}
	}

	dbPath := filepath.Join(cfg.DataDir(), config.DefaultDBFile)
	if dbURL != "" && isSQLite(dbURL) {
		dbPath = strings.TrimPrefix(dbURL, "sqlite:///")
		if dbPath == dbURL {
			dbPath = strings.TrimPrefix(dbURL, "sqlite:")
		}
	}

	return []todoer.Option{todoer.WithSQLite(dbPath)}
}

// isSQLite checks if the database URL is for SQLite.
func isSQLite(url string) bool {
	return strings.HasPrefix(url, "sqlite:")
}

// newCLIClient builds a client for one-shot commands. Logs go to stderr so
// stdout stays clean for command output.
func newCLIClient(envFile string) (*todoer.Client, error) {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return nil, err
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	logger := log.NewLoggerWithWriter(os.Stderr, cfg.LogFormat(), cfg.LogLevel())

	opts := clientOptions(cfg)
	opts = append(opts, todoer.WithLogger(logger.Slog()))

	client, err := todoer.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create todoer client: %w", err)
	}
	return client, nil
}
