package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/hunterjackson/todoer-sub000/domain/label"
	"github.com/hunterjackson/todoer-sub000/domain/storage"
	"github.com/hunterjackson/todoer-sub000/internal/database"
	"gorm.io/gorm"
)

// LabelStore implements storage.LabelStore using GORM.
type LabelStore struct {
	database.Repository[label.Label, LabelModel]
}

// NewLabelStore creates a new LabelStore.
func NewLabelStore(db database.Database) LabelStore {
	return LabelStore{
		Repository: database.NewRepository[label.Label, LabelModel](db, LabelMapper{}, "label"),
	}
}

// FindByID returns the label with the given id.
func (s LabelStore) FindByID(ctx context.Context, id string) (label.Label, error) {
	return s.FindOne(ctx, storage.WithID(id))
}

// Save creates or updates a label.
func (s LabelStore) Save(ctx context.Context, l label.Label) (label.Label, error) {
	model := s.Mapper().ToModel(l)
	model.UpdatedAt = time.Now()

	result := s.DB(ctx).Save(&model)
	if result.Error != nil {
		return label.Label{}, fmt.Errorf("save label: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a label and its task links.
func (s LabelStore) Delete(ctx context.Context, id string) error {
	err := database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		if err := tx.Where("label_id = ?", id).Delete(&TaskLabelModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&LabelModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	return nil
}
