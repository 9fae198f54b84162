package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/hunterjackson/todoer-sub000/domain/project"
	"github.com/hunterjackson/todoer-sub000/domain/storage"
	"github.com/hunterjackson/todoer-sub000/internal/database"
)

// ProjectStore implements storage.ProjectStore using GORM.
type ProjectStore struct {
	database.Repository[project.Project, ProjectModel]
}

// NewProjectStore creates a new ProjectStore.
func NewProjectStore(db database.Database) ProjectStore {
	return ProjectStore{
		Repository: database.NewRepository[project.Project, ProjectModel](db, ProjectMapper{}, "project"),
	}
}

// FindByID returns the project with the given id.
func (s ProjectStore) FindByID(ctx context.Context, id string) (project.Project, error) {
	return s.FindOne(ctx, storage.WithID(id))
}

// Save creates or updates a project.
func (s ProjectStore) Save(ctx context.Context, p project.Project) (project.Project, error) {
	model := s.Mapper().ToModel(p)
	model.UpdatedAt = time.Now()

	result := s.DB(ctx).Save(&model)
	if result.Error != nil {
		return project.Project{}, fmt.Errorf("save project: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a project. Tasks keep their project_id; the caller
// decides whether to reassign or delete them.
func (s ProjectStore) Delete(ctx context.Context, id string) error {
	result := s.DB(ctx).Where("id = ?", id).Delete(&ProjectModel{})
	if result.Error != nil {
		return fmt.Errorf("delete project: %w", result.Error)
	}
	return nil
}
