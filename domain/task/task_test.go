package task

import (
	"testing"
	"time"
)

func TestNewTask_Defaults(t *testing.T) {
	tk := NewTask("Buy milk")

	if tk.Content() != "Buy milk" {
		t.Errorf("Content() = %v, want Buy milk", tk.Content())
	}
	if tk.Priority() != PriorityNone {
		t.Errorf("Priority() = %v, want %v", tk.Priority(), PriorityNone)
	}
	if tk.Completed() {
		t.Error("Completed() = true, want false")
	}
	if tk.IsDeleted() {
		t.Error("IsDeleted() = true, want false")
	}
	if tk.HasDueDate() {
		t.Error("HasDueDate() = true, want false")
	}
	if len(tk.Labels()) != 0 {
		t.Errorf("Labels() has %d entries, want 0", len(tk.Labels()))
	}
}

func TestNewTask_Options(t *testing.T) {
	due := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	tk := NewTask("Write report",
		WithDescription("quarterly numbers"),
		WithProject("proj-1"),
		WithSection("sec-1"),
		WithLabels(NewLabel("l1", "urgent"), NewLabel("l2", "work")),
		WithPriority(PriorityUrgent),
		WithDueDate(due),
		WithDuration(45),
		WithRecurrence("every monday"),
		WithDelegation("alex"),
	)

	if tk.Description() != "quarterly numbers" {
		t.Errorf("Description() = %v", tk.Description())
	}
	if tk.ProjectID() != "proj-1" {
		t.Errorf("ProjectID() = %v, want proj-1", tk.ProjectID())
	}
	if tk.SectionID() != "sec-1" {
		t.Errorf("SectionID() = %v, want sec-1", tk.SectionID())
	}
	if len(tk.Labels()) != 2 {
		t.Fatalf("Labels() has %d entries, want 2", len(tk.Labels()))
	}
	if tk.Labels()[0].Name() != "urgent" {
		t.Errorf("Labels()[0].Name() = %v, want urgent", tk.Labels()[0].Name())
	}
	if tk.Priority() != PriorityUrgent {
		t.Errorf("Priority() = %v, want %v", tk.Priority(), PriorityUrgent)
	}
	if !tk.DueDate().Equal(due) {
		t.Errorf("DueDate() = %v, want %v", tk.DueDate(), due)
	}
	if tk.Duration() != 45 {
		t.Errorf("Duration() = %v, want 45", tk.Duration())
	}
	if !tk.IsRecurring() {
		t.Error("IsRecurring() = false, want true")
	}
	if !tk.IsDelegated() {
		t.Error("IsDelegated() = false, want true")
	}
}

func TestWithPriority_InvalidFallsBackToNone(t *testing.T) {
	tk := NewTask("x", WithPriority(Priority(9)))
	if tk.Priority() != PriorityNone {
		t.Errorf("Priority() = %v, want %v", tk.Priority(), PriorityNone)
	}
}

func TestTask_Modifiers(t *testing.T) {
	tk := NewTask("original")

	completed := tk.Complete()
	if !completed.Completed() {
		t.Error("Complete(): Completed() = false, want true")
	}
	if tk.Completed() {
		t.Error("Complete() mutated the receiver")
	}

	reopened := completed.Reopen()
	if reopened.Completed() {
		t.Error("Reopen(): Completed() = true, want false")
	}

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	deleted := tk.MarkDeleted(at)
	if !deleted.IsDeleted() {
		t.Error("MarkDeleted(): IsDeleted() = false, want true")
	}
	if !deleted.DeletedAt().Equal(at) {
		t.Errorf("DeletedAt() = %v, want %v", deleted.DeletedAt(), at)
	}
	if tk.IsDeleted() {
		t.Error("MarkDeleted() mutated the receiver")
	}

	renamed := tk.WithContent("new content")
	if renamed.Content() != "new content" {
		t.Errorf("WithContent(): Content() = %v", renamed.Content())
	}

	withID := tk.WithID("t-42")
	if withID.ID() != "t-42" {
		t.Errorf("WithID(): ID() = %v, want t-42", withID.ID())
	}
}

func TestTask_Apply(t *testing.T) {
	tk := NewTask("x", WithLabels(NewLabel("l1", "a")))
	updated := tk.Apply(WithPriority(PriorityHigh), WithLabels(NewLabel("l2", "b")))

	if updated.Priority() != PriorityHigh {
		t.Errorf("Priority() = %v, want %v", updated.Priority(), PriorityHigh)
	}
	if len(updated.Labels()) != 1 || updated.Labels()[0].ID() != "l2" {
		t.Errorf("Labels() = %v, want single l2", updated.Labels())
	}
	if tk.Labels()[0].ID() != "l1" {
		t.Error("Apply() mutated the receiver labels")
	}
}

func TestTask_LabelsReturnsCopy(t *testing.T) {
	tk := NewTask("x", WithLabels(NewLabel("l1", "a")))
	got := tk.Labels()
	got[0] = NewLabel("l9", "mutated")

	if tk.Labels()[0].ID() != "l1" {
		t.Error("mutating the returned slice changed the task")
	}
}

func TestReconstructTask(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	due := created.Add(48 * time.Hour)

	tk := ReconstructTask(
		"t-1", "content", "desc",
		"p-1", "s-1",
		[]Label{NewLabel("l1", "urgent")},
		PriorityHigh,
		true,
		time.Time{}, due, time.Time{},
		30,
		"every day", "sam",
		created, updated,
	)

	if tk.ID() != "t-1" {
		t.Errorf("ID() = %v, want t-1", tk.ID())
	}
	if !tk.Completed() {
		t.Error("Completed() = false, want true")
	}
	if tk.IsDeleted() {
		t.Error("IsDeleted() = true, want false")
	}
	if !tk.DueDate().Equal(due) {
		t.Errorf("DueDate() = %v, want %v", tk.DueDate(), due)
	}
	if !tk.CreatedAt().Equal(created) {
		t.Errorf("CreatedAt() = %v, want %v", tk.CreatedAt(), created)
	}
}
