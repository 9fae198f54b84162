package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/hunterjackson/todoer-sub000/domain/section"
	"github.com/hunterjackson/todoer-sub000/domain/storage"
	"github.com/hunterjackson/todoer-sub000/internal/database"
)

// SectionStore implements storage.SectionStore using GORM.
type SectionStore struct {
	database.Repository[section.Section, SectionModel]
}

// NewSectionStore creates a new SectionStore.
func NewSectionStore(db database.Database) SectionStore {
	return SectionStore{
		Repository: database.NewRepository[section.Section, SectionModel](db, SectionMapper{}, "section"),
	}
}

// FindByID returns the section with the given id.
func (s SectionStore) FindByID(ctx context.Context, id string) (section.Section, error) {
	return s.FindOne(ctx, storage.WithID(id))
}

// Save creates or updates a section.
func (s SectionStore) Save(ctx context.Context, sec section.Section) (section.Section, error) {
	model := s.Mapper().ToModel(sec)
	model.UpdatedAt = time.Now()

	result := s.DB(ctx).Save(&model)
	if result.Error != nil {
		return section.Section{}, fmt.Errorf("save section: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a section. Tasks keep their section_id; the caller
// decides whether to reassign them.
func (s SectionStore) Delete(ctx context.Context, id string) error {
	result := s.DB(ctx).Where("id = ?", id).Delete(&SectionModel{})
	if result.Error != nil {
		return fmt.Errorf("delete section: %w", result.Error)
	}
	return nil
}
