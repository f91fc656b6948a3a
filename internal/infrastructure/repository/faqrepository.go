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

// FAQRepository implements content.FAQRepository
type FAQRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.FAQMapper
}

// NewFAQRepository creates a new FAQRepository
func NewFAQRepository(db *gorm.DB, logger logger.Interface) content.FAQRepository {
	return &FAQRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewFAQMapper(),
	}
}

func (r *FAQRepository) Create(ctx context.Context, f *content.FAQ) error {
	model := r.mapper.ToModel(f)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create faq", "error", err)
		return fmt.Errorf("failed to create faq: %w", err)
	}
	return nil
}

func (r *FAQRepository) GetBySID(ctx context.Context, sid string) (*content.FAQ, error) {
	var model models.FAQModel

	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrNotFound
		}
		r.logger.Errorw("failed to get faq", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *FAQRepository) List(ctx context.Context) ([]*content.FAQ, error) {
	var modelList []*models.FAQModel

	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list faqs", "error", err)
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *FAQRepository) Update(ctx context.Context, f *content.FAQ) error {
	model := r.mapper.ToModel(f)

	result := r.db.WithContext(ctx).
		Model(&models.FAQModel{}).
		Where("sid = ?", f.SID()).
		Updates(map[string]interface{}{
			"question":   model.Question,
			"answer":     model.Answer,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update faq", "sid", f.SID(), "error", result.Error)
		return fmt.Errorf("failed to update faq: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *FAQRepository) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.FAQModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete faq", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete faq: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}
