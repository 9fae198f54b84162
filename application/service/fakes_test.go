package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hunterjackson/todoer-sub000/domain/label"
	"github.com/hunterjackson/todoer-sub000/domain/project"
	"github.com/hunterjackson/todoer-sub000/domain/section"
	"github.com/hunterjackson/todoer-sub000/domain/storage"
	"github.com/hunterjackson/todoer-sub000/domain/task"
	"github.com/hunterjackson/todoer-sub000/internal/database"
)

// fakeTaskStore implements storage.TaskStore for testing.
type fakeTaskStore struct {
	tasks       []task.Task
	findErr     error
	saveErr     error
	saved       []task.Task
	deleted     []string
	softDeleted []string
}

func (f *fakeTaskStore) Find(_ context.Context, _ ...storage.Option) ([]task.Task, error) {
	return f.tasks, f.findErr
}

func (f *fakeTaskStore) FindOne(_ context.Context, _ ...storage.Option) (task.Task, error) {
	if f.findErr != nil {
		return task.Task{}, f.findErr
	}
	if len(f.tasks) == 0 {
		return task.Task{}, fmt.Errorf("%w: task", database.ErrNotFound)
	}
	return f.tasks[0], nil
}

func (f *fakeTaskStore) FindByID(_ context.Context, id string) (task.Task, error) {
	if f.findErr != nil {
		return task.Task{}, f.findErr
	}
	for _, t := range f.tasks {
		if t.ID() == id {
			return t, nil
		}
	}
	return task.Task{}, fmt.Errorf("%w: task", database.ErrNotFound)
}

func (f *fakeTaskStore) Count(_ context.Context, _ ...storage.Option) (int64, error) {
	return int64(len(f.tasks)), f.findErr
}

func (f *fakeTaskStore) Exists(_ context.Context, _ ...storage.Option) (bool, error) {
	return len(f.tasks) > 0, f.findErr
}

func (f *fakeTaskStore) Save(_ context.Context, t task.Task) (task.Task, error) {
	if f.saveErr != nil {
		return task.Task{}, f.saveErr
	}
	f.saved = append(f.saved, t)
	for i, existing := range f.tasks {
		if existing.ID() == t.ID() {
			f.tasks[i] = t
			return t, nil
		}
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeTaskStore) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeTaskStore) SoftDelete(_ context.Context, id string, at time.Time) error {
	f.softDeleted = append(f.softDeleted, id)
	for i, t := range f.tasks {
		if t.ID() == id {
			f.tasks[i] = t.MarkDeleted(at)
			return nil
		}
	}
	return fmt.Errorf("%w: task", database.ErrNotFound)
}

func (f *fakeTaskStore) Complete(_ context.Context, id string) error {
	for i, t := range f.tasks {
		if t.ID() == id {
			f.tasks[i] = t.Complete()
			return nil
		}
	}
	return fmt.Errorf("%w: task", database.ErrNotFound)
}

func (f *fakeTaskStore) Reopen(_ context.Context, id string) error {
	for i, t := range f.tasks {
		if t.ID() == id {
			f.tasks[i] = t.Reopen()
			return nil
		}
	}
	return fmt.Errorf("%w: task", database.ErrNotFound)
}

// fakeProjectStore implements storage.ProjectStore for testing.
type fakeProjectStore struct {
	projects []project.Project
	findErr  error
	saved    []project.Project
	deleted  []string
}

func (f *fakeProjectStore) Find(_ context.Context, _ ...storage.Option) ([]project.Project, error) {
	return f.projects, f.findErr
}

func (f *fakeProjectStore) FindOne(_ context.Context, _ ...storage.Option) (project.Project, error) {
	if f.findErr != nil {
		return project.Project{}, f.findErr
	}
	if len(f.projects) == 0 {
		return project.Project{}, fmt.Errorf("%w: project", database.ErrNotFound)
	}
	return f.projects[0], nil
}

func (f *fakeProjectStore) FindByID(_ context.Context, id string) (project.Project, error) {
	if f.findErr != nil {
		return project.Project{}, f.findErr
	}
	for _, p := range f.projects {
		if p.ID() == id {
			return p, nil
		}
	}
	return project.Project{}, fmt.Errorf("%w: project", database.ErrNotFound)
}

func (f *fakeProjectStore) Count(_ context.Context, _ ...storage.Option) (int64, error) {
	return int64(len(f.projects)), f.findErr
}

func (f *fakeProjectStore) Exists(_ context.Context, _ ...storage.Option) (bool, error) {
	return len(f.projects) > 0, f.findErr
}

func (f *fakeProjectStore) Save(_ context.Context, p project.Project) (project.Project, error) {
	f.saved = append(f.saved, p)
	for i, existing := range f.projects {
		if existing.ID() == p.ID() {
			f.projects[i] = p
			return p, nil
		}
	}
	f.projects = append(f.projects, p)
	return p, nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeLabelStore implements storage.LabelStore for testing.
type fakeLabelStore struct {
	labels  []label.Label
	findErr error
	saved   []label.Label
	deleted []string
}

func (f *fakeLabelStore) Find(_ context.Context, options ...storage.Option) ([]label.Label, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	// Honor WithIDIn so label resolution can be tested; other options are
	// ignored.
	q := storage.Build(options...)
	for _, c := range q.Conditions() {
		if c.Field() != "id" || !c.In() {
			continue
		}
		ids, ok := c.Value().([]string)
		if !ok {
			continue
		}
		var filtered []label.Label
		for _, l := range f.labels {
			for _, id := range ids {
				if l.ID() == id {
					filtered = append(filtered, l)
					break
				}
			}
		}
		return filtered, nil
	}
	return f.labels, nil
}

func (f *fakeLabelStore) FindOne(_ context.Context, _ ...storage.Option) (label.Label, error) {
	if f.findErr != nil {
		return label.Label{}, f.findErr
	}
	if len(f.labels) == 0 {
		return label.Label{}, fmt.Errorf("%w: label", database.ErrNotFound)
	}
	return f.labels[0], nil
}

func (f *fakeLabelStore) FindByID(_ context.Context, id string) (label.Label, error) {
	if f.findErr != nil {
		return label.Label{}, f.findErr
	}
	for _, l := range f.labels {
		if l.ID() == id {
			return l, nil
		}
	}
	return label.Label{}, fmt.Errorf("%w: label", database.ErrNotFound)
}

func (f *fakeLabelStore) Count(_ context.Context, _ ...storage.Option) (int64, error) {
	return int64(len(f.labels)), f.findErr
}

func (f *fakeLabelStore) Exists(_ context.Context, _ ...storage.Option) (bool, error) {
	return len(f.labels) > 0, f.findErr
}

func (f *fakeLabelStore) Save(_ context.Context, l label.Label) (label.Label, error) {
	f.saved = append(f.saved, l)
	for i, existing := range f.labels {
		if existing.ID() == l.ID() {
			f.labels[i] = l
			return l, nil
		}
	}
	f.labels = append(f.labels, l)
	return l, nil
}

func (f *fakeLabelStore) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeSectionStore implements storage.SectionStore for testing.
type fakeSectionStore struct {
	sections []section.Section
	findErr  error
	saved    []section.Section
	deleted  []string
}

func (f *fakeSectionStore) Find(_ context.Context, _ ...storage.Option) ([]section.Section, error) {
	return f.sections, f.findErr
}

func (f *fakeSectionStore) FindOne(_ context.Context, _ ...storage.Option) (section.Section, error) {
	if f.findErr != nil {
		return section.Section{}, f.findErr
	}
	if len(f.sections) == 0 {
		return section.Section{}, fmt.Errorf("%w: section", database.ErrNotFound)
	}
	return f.sections[0], nil
}

func (f *fakeSectionStore) FindByID(_ context.Context, id string) (section.Section, error) {
	if f.findErr != nil {
		return section.Section{}, f.findErr
	}
	for _, s := range f.sections {
		if s.ID() == id {
			return s, nil
		}
	}
	return section.Section{}, fmt.Errorf("%w: section", database.ErrNotFound)
}

func (f *fakeSectionStore) Count(_ context.Context, _ ...storage.Option) (int64, error) {
	return int64(len(f.sections)), f.findErr
}

func (f *fakeSectionStore) Exists(_ context.Context, _ ...storage.Option) (bool, error) {
	return len(f.sections) > 0, f.findErr
}

func (f *fakeSectionStore) Save(_ context.Context, s section.Section) (section.Section, error) {
	f.saved = append(f.saved, s)
	for i, existing := range f.sections {
		if existing.ID() == s.ID() {
			f.sections[i] = s
			return s, nil
		}
	}
	f.sections = append(f.sections, s)
	return s, nil
}

func (f *fakeSectionStore) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}
