package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hunterjackson/todoer-sub000/domain/task"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var (
		envFile string
		filter  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks matching a filter query",
		Long: `List tasks matching a filter query.

Without --filter every task is printed, completed and deleted ones
included. With a filter, completed and deleted tasks are excluded and the
query decides the rest, for example:

  todoer list --filter 'p1 & #work'
  todoer list --filter '@urgent | (overdue & !assigned)'
  todoer list --filter '#proj*'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(envFile, filter)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")
	cmd.Flags().StringVar(&filter, "filter", "", "Filter query")

	return cmd
}

func runList(envFile, filter string) error {
	client, err := newCLIClient(envFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()

	matches, err := client.Filters.Query(ctx, filter)
	if err != nil {
		return fmt.Errorf("query tasks: %w", err)
	}

	projects, err := client.Projects.List(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}
	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID()] = p.Name()
	}

	for _, t := range matches {
		fmt.Println(formatTask(t, projectNames))
	}
	return nil
}

// formatTask renders one task as a single line:
//
//	[ ] p1  3f2a9c1e  Ship the release  #Work  @urgent  due 2026-03-02
func formatTask(t task.Task, projectNames map[string]string) string {
	var b strings.Builder

	mark := " "
	if t.Completed() {
		mark = "x"
	}
	fmt.Fprintf(&b, "[%s] p%d  %s  %s", mark, t.Priority(), shortID(t.ID()), t.Content())

	if name := projectNames[t.ProjectID()]; name != "" {
		fmt.Fprintf(&b, "  #%s", name)
	}
	for _, l := range t.Labels() {
		fmt.Fprintf(&b, "  @%s", l.Name())
	}
	if t.HasDueDate() {
		fmt.Fprintf(&b, "  due %s", t.DueDate().Format("2006-01-02"))
	}
	if t.IsDeleted() {
		b.WriteString("  (deleted)")
	}

	return b.String()
}

// shortID trims UUIDs to their first group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
