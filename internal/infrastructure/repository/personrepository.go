package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sdc/internal/domain/content"
	"sdc/internal/infrastructure/persistence/mappers"
	"sdc/internal/infrastructure/persistence/models"
	"sdc/internal/shared/logger"
)

// PersonRepository implements content.PersonRepository
type PersonRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.PersonMapper
}

// NewPersonRepository creates a new PersonRepository
func NewPersonRepository(db *gorm.DB, logger logger.Interface) content.PersonRepository {
	return &PersonRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewPersonMapper(),
	}
}

func (r *PersonRepository) Create(ctx context.Context, p *content.Person) error {
	model := r.mapper.ToModel(p)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create person", "error", err)
		return fmt.Errorf("failed to create person: %w", err)
	}
	return nil
}

func (r *PersonRepository) GetBySID(ctx context.Context, sid string) (*content.Person, error) {
	var model models.PersonModel

	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrNotFound
		}
		r.logger.Errorw("failed to get person", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *PersonRepository) List(ctx context.Context) ([]*content.Person, error) {
	var modelList []*models.PersonModel

	err := r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list people", "error", err)
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *PersonRepository) ListByCategory(ctx context.Context, category string) ([]*content.Person, error) {
	var modelList []*models.PersonModel

	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list people by category", "category", category, "error", err)
		return nil, fmt.Errorf("failed to list people by category: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *PersonRepository) Update(ctx context.Context, p *content.Person) error {
	model := r.mapper.ToModel(p)

	result := r.db.WithContext(ctx).
		Model(&models.PersonModel{}).
		Where("sid = ?", p.SID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"category":   model.Category,
			"role":       model.Role,
			"image_url":  model.ImageURL,
			"linkedin":   model.LinkedIn,
			"github":     model.GitHub,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update person", "sid", p.SID(), "error", result.Error)
		return fmt.Errorf("failed to update person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *PersonRepository) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.PersonModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete person", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}
