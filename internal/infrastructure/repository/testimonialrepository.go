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

// TestimonialRepository implements content.TestimonialRepository
type TestimonialRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.TestimonialMapper
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(db *gorm.DB, logger logger.Interface) content.TestimonialRepository {
	return &TestimonialRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewTestimonialMapper(),
	}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *content.Testimonial) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create testimonial", "error", err)
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) GetBySID(ctx context.Context, sid string) (*content.Testimonial, error) {
	var model models.TestimonialModel

	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrNotFound
		}
		r.logger.Errorw("failed to get testimonial", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *TestimonialRepository) List(ctx context.Context) ([]*content.Testimonial, error) {
	var modelList []*models.TestimonialModel

	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list testimonials", "error", err)
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t *content.Testimonial) error {
	model := r.mapper.ToModel(t)

	result := r.db.WithContext(ctx).
		Model(&models.TestimonialModel{}).
		Where("sid = ?", t.SID()).
		Updates(map[string]interface{}{
			"client_name": model.ClientName,
			"quote":       model.Quote,
			"image_url":   model.ImageURL,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update testimonial", "sid", t.SID(), "error", result.Error)
		return fmt.Errorf("failed to update testimonial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.TestimonialModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete testimonial", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete testimonial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}
