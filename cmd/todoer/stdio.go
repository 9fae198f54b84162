package main

import (
	"fmt"
	"log/slog"
	"os"

	todoer "github.com/hunterjackson/todoer-sub000"
	"github.com/hunterjackson/todoer-sub000/internal/log"
	"github.com/hunterjackson/todoer-sub000/internal/mcp"
	"github.com/spf13/cobra"
)

func stdioCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This allows AI assistants to add, complete, and query tasks with filter
expressions. Configuration is loaded from environment variables and .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")

	return cmd
}

func runStdio(envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// MCP owns stdout, so logs go to stderr
	logger := log.NewLoggerWithWriter(os.Stderr, cfg.LogFormat(), cfg.LogLevel())
	slogger := logger.Slog()

	slogger.Info("starting MCP server",
		slog.String("version", version),
		slog.String("data_dir", cfg.DataDir()),
	)

	opts := clientOptions(cfg)
	opts = append(opts, todoer.WithLogger(slogger))

	client, err := todoer.New(opts...)
	if err != nil {
		return fmt.Errorf("create todoer client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close todoer client", slog.Any("error", err))
		}
	}()

	mcpServer := mcp.NewServer(client.Filters, client.Tasks, client.Projects, version, slogger)

	return mcpServer.ServeStdio()
}
