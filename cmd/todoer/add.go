package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	todoer "github.com/hunterjackson/todoer-sub000"
	"github.com/hunterjackson/todoer-sub000/application/service"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		envFile     string
		description string
		projectID   string
		priority    int
		due         string
		labels      []string
	)

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Create a task",
		Long: `Create a task.

The content is the task text. Labels are matched against existing label
names; unknown names are an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(envFile, strings.Join(args, " "), description, projectID, priority, due, labels)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")
	cmd.Flags().StringVar(&description, "description", "", "Longer task description")
	cmd.Flags().StringVar(&projectID, "project-id", "", "Project to file the task under")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority 1 (urgent) to 4 (none)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (2006-01-02 or RFC3339)")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "Label name (repeatable)")

	return cmd
}

func runAdd(envFile, content, description, projectID string, priority int, due string, labelNames []string) error {
	client, err := newCLIClient(envFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()

	params := &service.TaskCreateParams{
		Content:     content,
		Description: description,
		ProjectID:   projectID,
		Priority:    priority,
	}

	if due != "" {
		dueDate, err := parseDueDate(due)
		if err != nil {
			return err
		}
		params.DueDate = dueDate
	}

	if len(labelNames) > 0 {
		ids, err := resolveLabelNames(ctx, client, labelNames)
		if err != nil {
			return err
		}
		params.LabelIDs = ids
	}

	created, err := client.Tasks.Create(ctx, params)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	fmt.Printf("%s  %s\n", created.ID(), created.Content())
	return nil
}

// parseDueDate accepts a bare date or a full RFC3339 timestamp.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: want 2006-01-02 or RFC3339", s)
	}
	return t, nil
}

// resolveLabelNames maps label names to ids, case-insensitively.
func resolveLabelNames(ctx context.Context, client *todoer.Client, names []string) ([]string, error) {
	all, err := client.Labels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}

	byName := make(map[string]string, len(all))
	for _, l := range all {
		byName[strings.ToLower(l.Name())] = l.ID()
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("label %q not found", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
