package todoer_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	todoer "github.com/hunterjackson/todoer-sub000"
	"github.com/hunterjackson/todoer-sub000/application/service"
	"github.com/hunterjackson/todoer-sub000/domain/filter"
	"github.com/hunterjackson/todoer-sub000/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, opts ...todoer.Option) *todoer.Client {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	client, err := todoer.New(append([]todoer.Option{todoer.WithSQLite(dbPath)}, opts...)...)
	require.NoError(t, err, "create client")
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNew_NoDatabase(t *testing.T) {
	_, err := todoer.New()
	require.ErrorIs(t, err, todoer.ErrNoDatabase)
}

func TestClient_Close_Twice(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	client, err := todoer.New(todoer.WithSQLite(dbPath))
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.ErrorIs(t, client.Close(), todoer.ErrClientClosed)
}

func TestClient_ClosedClientRejectsOperations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	client, err := todoer.New(todoer.WithSQLite(dbPath))
	require.NoError(t, err)
	require.NoError(t, client.Close())

	ctx := context.Background()
	_, err = client.Tasks.Create(ctx, &service.TaskCreateParams{Content: "late"})
	assert.ErrorIs(t, err, todoer.ErrClientClosed)

	_, err = client.Filters.Query(ctx, "p1")
	assert.ErrorIs(t, err, todoer.ErrClientClosed)
}

// TestClient_TaskLifecycle exercises the full write path: create a project,
// labels, and tasks, then filter, complete, and delete through the facade.
func TestClient_TaskLifecycle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	work, err := client.Projects.Create(ctx, &service.ProjectCreateParams{Name: "Work", Color: "blue"})
	require.NoError(t, err)

	urgent, err := client.Labels.Create(ctx, &service.LabelCreateParams{Name: "urgent"})
	require.NoError(t, err)

	release, err := client.Tasks.Create(ctx, &service.TaskCreateParams{
		Content:   "Ship the release",
		ProjectID: work.ID(),
		LabelIDs:  []string{urgent.ID()},
		Priority:  1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, release.ID())

	_, err = client.Tasks.Create(ctx, &service.TaskCreateParams{
		Content:  "Water the plants",
		Priority: 4,
	})
	require.NoError(t, err)

	// Priority and project intersection
	matches, err := client.Filters.Query(ctx, "p1 & #work")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, release.ID(), matches[0].ID())

	// Label queries resolve against stored label names
	matches, err = client.Filters.Query(ctx, "@urgent")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Ship the release", matches[0].Content())

	// Completing removes the task from non-empty query results
	_, err = client.Tasks.Complete(ctx, release.ID())
	require.NoError(t, err)

	matches, err = client.Filters.Query(ctx, "p1 & #work")
	require.NoError(t, err)
	assert.Empty(t, matches)

	// The empty query is the identity: completed tasks stay visible
	all, err := client.Filters.Query(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Reopening brings it back
	reopened, err := client.Tasks.Reopen(ctx, release.ID())
	require.NoError(t, err)
	assert.False(t, reopened.Completed())

	matches, err = client.Filters.Query(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestClient_SoftDeleteHidesFromQueries(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.Tasks.Create(ctx, &service.TaskCreateParams{Content: "Old chore", Priority: 2})
	require.NoError(t, err)

	require.NoError(t, client.Tasks.SoftDelete(ctx, created.ID()))

	matches, err := client.Filters.Query(ctx, "p2")
	require.NoError(t, err)
	assert.Empty(t, matches, "soft-deleted tasks are excluded from non-empty queries")

	all, err := client.Filters.Query(ctx, "  ")
	require.NoError(t, err)
	require.Len(t, all, 1, "whitespace query is the identity")
	assert.True(t, all[0].IsDeleted())
}

func TestClient_FixedClockResolvesRelativeDates(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	client := newTestClient(t, todoer.WithClock(filter.NewFixedClock(now)))
	ctx := context.Background()

	_, err := client.Tasks.Create(ctx, &service.TaskCreateParams{
		Content: "File the report",
		DueDate: now.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	_, err = client.Tasks.Create(ctx, &service.TaskCreateParams{
		Content: "Renew the passport",
		DueDate: now.AddDate(0, 0, -3),
	})
	require.NoError(t, err)

	today, err := client.Filters.Query(ctx, "today")
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "File the report", today[0].Content())

	overdue, err := client.Filters.Query(ctx, "overdue")
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "Renew the passport", overdue[0].Content())
}

// TestClient_PersistsAcrossReopen verifies tasks written by one client are
// visible to a fresh client on the same database file.
func TestClient_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	first, err := todoer.New(todoer.WithSQLite(dbPath))
	require.NoError(t, err)

	created, err := first.Tasks.Create(ctx, &service.TaskCreateParams{
		Content:  "Carry me over",
		Priority: 3,
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := todoer.New(todoer.WithSQLite(dbPath))
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	found, err := second.Tasks.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Carry me over", found.Content())
	assert.Equal(t, task.Priority(3), found.Priority())
}
