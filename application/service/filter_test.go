package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hunterjackson/todoer-sub000/domain/filter"
	"github.com/hunterjackson/todoer-sub000/domain/label"
	"github.com/hunterjackson/todoer-sub000/domain/project"
	"github.com/hunterjackson/todoer-sub000/domain/task"
)

var filterTestNow = time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

// newFilterFixture seeds one project, one label, and four tasks covering
// priorities, labels, and dates.
func newFilterFixture() (*fakeTaskStore, *fakeProjectStore, *fakeLabelStore, *fakeSectionStore) {
	tasks := &fakeTaskStore{tasks: []task.Task{
		task.NewTask("ship release", task.WithProject("proj-1"), task.WithPriority(task.PriorityUrgent)).WithID("A"),
		task.NewTask("plan offsite", task.WithPriority(task.PriorityHigh)).WithID("B"),
		task.NewTask("call dentist", task.WithLabels(task.NewLabel("lbl-1", "urgent"))).WithID("C"),
		task.NewTask("water plants", task.WithDueDate(filterTestNow)).WithID("D"),
	}}
	projects := &fakeProjectStore{projects: []project.Project{
		project.NewProject("Work").WithID("proj-1"),
	}}
	labels := &fakeLabelStore{labels: []label.Label{
		label.NewLabel("urgent").WithID("lbl-1"),
	}}
	sections := &fakeSectionStore{}
	return tasks, projects, labels, sections
}

func filterIDs(tasks []task.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID()
	}
	return ids
}

func TestFilter_Query(t *testing.T) {
	tasks, projects, labels, sections := newFilterFixture()
	svc := NewFilter(tasks, projects, labels, sections, nil, nil,
		WithClock(filter.NewFixedClock(filterTestNow)))
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"priority and project", "p1 & #work", []string{"A"}},
		{"label membership", "@urgent", []string{"C"}},
		{"priority union", "p1 | p2", []string{"A", "B"}},
		{"relative date", "today", []string{"D"}},
		{"no match", "p3", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Query(ctx, tt.query)
			if err != nil {
				t.Fatalf("Query(%q) error = %v", tt.query, err)
			}
			gotIDs := filterIDs(got)
			if len(gotIDs) != len(tt.want) {
				t.Fatalf("Query(%q) = %v, want %v", tt.query, gotIDs, tt.want)
			}
			for i := range tt.want {
				if gotIDs[i] != tt.want[i] {
					t.Errorf("Query(%q) = %v, want %v", tt.query, gotIDs, tt.want)
					break
				}
			}
		})
	}
}

func TestFilter_Query_EmptyReturnsEverything(t *testing.T) {
	tasks, projects, labels, sections := newFilterFixture()
	tasks.tasks = append(tasks.tasks, task.NewTask("done").WithID("E").Complete())
	svc := NewFilter(tasks, projects, labels, sections, nil, nil)

	got, err := svc.Query(context.Background(), "")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(got) != 5 {
		t.Errorf("Query(\"\") returned %d tasks, want all 5", len(got))
	}
}

func TestFilter_Query_ExcludesCompleted(t *testing.T) {
	tasks, projects, labels, sections := newFilterFixture()
	tasks.tasks = append(tasks.tasks,
		task.NewTask("shipped already", task.WithPriority(task.PriorityUrgent)).WithID("E").Complete())
	svc := NewFilter(tasks, projects, labels, sections, nil, nil)

	got, err := svc.Query(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	for _, tk := range got {
		if tk.ID() == "E" {
			t.Error("completed task E should be excluded from a non-empty query")
		}
	}
}

func TestFilter_Query_LimitAndOffset(t *testing.T) {
	tasks, projects, labels, sections := newFilterFixture()
	svc := NewFilter(tasks, projects, labels, sections, nil, nil)
	ctx := context.Background()

	limited, err := svc.Query(ctx, "p1 | p2", WithLimit(1))
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if ids := filterIDs(limited); len(ids) != 1 || ids[0] != "A" {
		t.Errorf("Query(limit=1) = %v, want [A]", ids)
	}

	offset, err := svc.Query(ctx, "p1 | p2", WithOffset(1))
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if ids := filterIDs(offset); len(ids) != 1 || ids[0] != "B" {
		t.Errorf("Query(offset=1) = %v, want [B]", ids)
	}

	past, err := svc.Query(ctx, "p1 | p2", WithOffset(10))
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(past) != 0 {
		t.Errorf("Query(offset=10) = %v, want empty", filterIDs(past))
	}
}

func TestFilter_Count(t *testing.T) {
	tasks, projects, labels, sections := newFilterFixture()
	svc := NewFilter(tasks, projects, labels, sections, nil, nil)
	ctx := context.Background()

	total, err := svc.Count(ctx, "p1 | p2")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if total != 2 {
		t.Errorf("Count(\"p1 | p2\") = %d, want 2", total)
	}

	all, err := svc.Count(ctx, "")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if all != 4 {
		t.Errorf("Count(\"\") = %d, want 4", all)
	}
}

func TestFilter_Query_StoreErrorPropagates(t *testing.T) {
	tasks, projects, labels, sections := newFilterFixture()
	boom := errors.New("boom")
	tasks.findErr = boom
	svc := NewFilter(tasks, projects, labels, sections, nil, nil)

	_, err := svc.Query(context.Background(), "p1")
	if !errors.Is(err, boom) {
		t.Errorf("Query() error = %v, want wrapped %v", err, boom)
	}
}

func TestFilter_Query_Closed(t *testing.T) {
	tasks, projects, labels, sections := newFilterFixture()
	closed := &atomic.Bool{}
	closed.Store(true)
	svc := NewFilter(tasks, projects, labels, sections, closed, nil)

	if _, err := svc.Query(context.Background(), "p1"); !errors.Is(err, ErrClientClosed) {
		t.Errorf("Query() error = %v, want ErrClientClosed", err)
	}
}
