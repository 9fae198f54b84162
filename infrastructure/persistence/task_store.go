package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/hunterjackson/todoer-sub000/domain/storage"
	"github.com/hunterjackson/todoer-sub000/domain/task"
	"github.com/hunterjackson/todoer-sub000/internal/database"
	"gorm.io/gorm"
)

// TaskStore implements storage.TaskStore using GORM.
type TaskStore struct {
	database.Repository[task.Task, TaskModel]
}

// NewTaskStore creates a new TaskStore.
func NewTaskStore(db database.Database) TaskStore {
	return TaskStore{
		Repository: database.NewRepository[task.Task, TaskModel](db, TaskMapper{}, "task"),
	}
}

// Find returns tasks matching the options, with labels attached.
func (s TaskStore) Find(ctx context.Context, options ...storage.Option) ([]task.Task, error) {
	tasks, err := s.Repository.Find(ctx, options...)
	if err != nil {
		return nil, err
	}
	return s.attachLabels(ctx, tasks)
}

// FindOne returns the first task matching the options, with labels attached.
func (s TaskStore) FindOne(ctx context.Context, options ...storage.Option) (task.Task, error) {
	t, err := s.Repository.FindOne(ctx, options...)
	if err != nil {
		return task.Task{}, err
	}

	loaded, err := s.attachLabels(ctx, []task.Task{t})
	if err != nil {
		return task.Task{}, err
	}
	return loaded[0], nil
}

// FindByID returns the task with the given id.
func (s TaskStore) FindByID(ctx context.Context, id string) (task.Task, error) {
	return s.FindOne(ctx, storage.WithID(id))
}

// Save creates or updates a task and replaces its label links.
func (s TaskStore) Save(ctx context.Context, t task.Task) (task.Task, error) {
	model := s.Mapper().ToModel(t)
	model.UpdatedAt = time.Now()

	labels := t.Labels()
	links := make([]TaskLabelModel, len(labels))
	for i, l := range labels {
		links[i] = TaskLabelModel{TaskID: t.ID(), LabelID: l.ID()}
	}

	err := database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		if err := tx.Save(&model).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", t.ID()).Delete(&TaskLabelModel{}).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return task.Task{}, fmt.Errorf("save task: %w", err)
	}

	return s.Mapper().ToDomain(model).Apply(task.WithLabels(labels...)), nil
}

// Delete removes a task and its label links.
func (s TaskStore) Delete(ctx context.Context, id string) error {
	err := database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&TaskLabelModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&TaskModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// SoftDelete marks the task deleted at the given time without removing
// the row, so it stays queryable.
func (s TaskStore) SoftDelete(ctx context.Context, id string, at time.Time) error {
	return s.updateTask(ctx, id, "soft delete task", map[string]interface{}{"deleted_at": at})
}

// Complete marks the task done.
func (s TaskStore) Complete(ctx context.Context, id string) error {
	return s.updateTask(ctx, id, "complete task", map[string]interface{}{"completed": true})
}

// Reopen marks the task not done.
func (s TaskStore) Reopen(ctx context.Context, id string) error {
	return s.updateTask(ctx, id, "reopen task", map[string]interface{}{"completed": false})
}

func (s TaskStore) updateTask(ctx context.Context, id, op string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := s.DB(ctx).Model(&TaskModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("%s: %w", op, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: task", database.ErrNotFound)
	}
	return nil
}

// attachLabels loads label links for the given tasks in one pass and
// returns copies with their labels populated.
func (s TaskStore) attachLabels(ctx context.Context, tasks []task.Task) ([]task.Task, error) {
	if len(tasks) == 0 {
		return tasks, nil
	}

	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID()
	}

	var links []TaskLabelModel
	if err := s.DB(ctx).Where("task_id IN ?", ids).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("load task labels: %w", err)
	}
	if len(links) == 0 {
		return tasks, nil
	}

	labelIDs := make([]string, 0, len(links))
	seen := make(map[string]bool, len(links))
	for _, link := range links {
		if !seen[link.LabelID] {
			seen[link.LabelID] = true
			labelIDs = append(labelIDs, link.LabelID)
		}
	}

	var labelModels []LabelModel
	if err := s.DB(ctx).Where("id IN ?", labelIDs).Find(&labelModels).Error; err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}

	names := make(map[string]string, len(labelModels))
	for _, lm := range labelModels {
		names[lm.ID] = lm.Name
	}

	byTask := make(map[string][]task.Label, len(tasks))
	for _, link := range links {
		byTask[link.TaskID] = append(byTask[link.TaskID], task.NewLabel(link.LabelID, names[link.LabelID]))
	}

	loaded := make([]task.Task, len(tasks))
	for i, t := range tasks {
		if labels := byTask[t.ID()]; len(labels) > 0 {
			loaded[i] = t.Apply(task.WithLabels(labels...))
		} else {
			loaded[i] = t
		}
	}
	return loaded, nil
}
