package persistence

import (
	"time"

	"github.com/hunterjackson/todoer-sub000/domain/label"
	"github.com/hunterjackson/todoer-sub000/domain/project"
	"github.com/hunterjackson/todoer-sub000/domain/section"
	"github.com/hunterjackson/todoer-sub000/domain/task"
)

// TaskMapper maps between domain Task and persistence TaskModel.
//
// Labels live in the task_labels join table, so ToDomain returns the task
// without them; TaskStore attaches labels after loading.
type TaskMapper struct{}

// ToDomain converts a TaskModel to a domain Task.
func (m TaskMapper) ToDomain(e TaskModel) task.Task {
	return task.ReconstructTask(
		e.ID,
		e.Content,
		e.Description,
		e.ProjectID,
		e.SectionID,
		nil,
		task.Priority(e.Priority),
		e.Completed,
		timeFromDB(e.DeletedAt),
		timeFromDB(e.DueDate),
		timeFromDB(e.Deadline),
		e.Duration,
		e.RecurrenceRule,
		e.DelegatedTo,
		e.CreatedAt,
		e.UpdatedAt,
	)
}

// ToModel converts a domain Task to a TaskModel.
func (m TaskMapper) ToModel(t task.Task) TaskModel {
	return TaskModel{
		ID:             t.ID(),
		Content:        t.Content(),
		Description:    t.Description(),
		ProjectID:      t.ProjectID(),
		SectionID:      t.SectionID(),
		Priority:       int(t.Priority()),
		Completed:      t.Completed(),
		DeletedAt:      timeToDB(t.DeletedAt()),
		DueDate:        timeToDB(t.DueDate()),
		Deadline:       timeToDB(t.Deadline()),
		Duration:       t.Duration(),
		RecurrenceRule: t.RecurrenceRule(),
		DelegatedTo:    t.DelegatedTo(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

// ProjectMapper maps between domain Project and persistence ProjectModel.
type ProjectMapper struct{}

// ToDomain converts a ProjectModel to a domain Project.
func (m ProjectMapper) ToDomain(e ProjectModel) project.Project {
	return project.ReconstructProject(e.ID, e.Name, e.Color, e.Position, e.CreatedAt, e.UpdatedAt)
}

// ToModel converts a domain Project to a ProjectModel.
func (m ProjectMapper) ToModel(p project.Project) ProjectModel {
	return ProjectModel{
		ID:        p.ID(),
		Name:      p.Name(),
		Color:     p.Color(),
		Position:  p.Position(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

// LabelMapper maps between domain Label and persistence LabelModel.
type LabelMapper struct{}

// ToDomain converts a LabelModel to a domain Label.
func (m LabelMapper) ToDomain(e LabelModel) label.Label {
	return label.ReconstructLabel(e.ID, e.Name, e.Color, e.CreatedAt, e.UpdatedAt)
}

// ToModel converts a domain Label to a LabelModel.
func (m LabelMapper) ToModel(l label.Label) LabelModel {
	return LabelModel{
		ID:        l.ID(),
		Name:      l.Name(),
		Color:     l.Color(),
		CreatedAt: l.CreatedAt(),
		UpdatedAt: l.UpdatedAt(),
	}
}

// SectionMapper maps between domain Section and persistence SectionModel.
type SectionMapper struct{}

// ToDomain converts a SectionModel to a domain Section.
func (m SectionMapper) ToDomain(e SectionModel) section.Section {
	return section.ReconstructSection(e.ID, e.Name, e.ProjectID, e.Position, e.CreatedAt, e.UpdatedAt)
}

// ToModel converts a domain Section to a SectionModel.
func (m SectionMapper) ToModel(s section.Section) SectionModel {
	return SectionModel{
		ID:        s.ID(),
		Name:      s.Name(),
		ProjectID: s.ProjectID(),
		Position:  s.Position(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func timeFromDB(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func timeToDB(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
