package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hunterjackson/todoer-sub000/domain/project"
)

func TestProject_Create(t *testing.T) {
	store := &fakeProjectStore{}
	svc := NewProject(store, nil, nil)

	created, err := svc.Create(context.Background(), &ProjectCreateParams{Name: " Work ", Color: "blue"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID() == "" {
		t.Error("Create() minted no id")
	}
	if created.Name() != "Work" {
		t.Errorf("Name() = %q, want %q", created.Name(), "Work")
	}
	if created.Color() != "blue" {
		t.Errorf("Color() = %q, want %q", created.Color(), "blue")
	}
}

func TestProject_Create_EmptyName(t *testing.T) {
	svc := NewProject(&fakeProjectStore{}, nil, nil)

	if _, err := svc.Create(context.Background(), &ProjectCreateParams{Name: "  "}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Create() error = %v, want ErrEmptyName", err)
	}
}

func TestProject_Update_PartialFields(t *testing.T) {
	store := &fakeProjectStore{projects: []project.Project{
		project.NewProject("Work").WithID("proj-1").WithColor("blue"),
	}}
	svc := NewProject(store, nil, nil)

	color := "green"
	updated, err := svc.Update(context.Background(), "proj-1", &ProjectUpdateParams{Color: &color})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Color() != "green" {
		t.Errorf("Color() = %q, want %q", updated.Color(), "green")
	}
	if updated.Name() != "Work" {
		t.Errorf("Name() = %q, want unchanged", updated.Name())
	}
}

func TestProject_Delete(t *testing.T) {
	store := &fakeProjectStore{projects: []project.Project{
		project.NewProject("Work").WithID("proj-1"),
	}}
	svc := NewProject(store, nil, nil)

	if err := svc.Delete(context.Background(), "proj-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "proj-1" {
		t.Errorf("deleted = %v, want [proj-1]", store.deleted)
	}
}
