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

// GalleryRepository implements content.GalleryRepository
type GalleryRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.GalleryImageMapper
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *gorm.DB, logger logger.Interface) content.GalleryRepository {
	return &GalleryRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewGalleryImageMapper(),
	}
}

func (r *GalleryRepository) Create(ctx context.Context, g *content.GalleryImage) error {
	model := r.mapper.ToModel(g)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create gallery image", "error", err)
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) GetBySID(ctx context.Context, sid string) (*content.GalleryImage, error) {
	var model models.GalleryImageModel

	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrNotFound
		}
		r.logger.Errorw("failed to get gallery image", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get gallery image: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*content.GalleryImage, error) {
	var modelList []*models.GalleryImageModel

	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list gallery images", "error", err)
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *GalleryRepository) Update(ctx context.Context, g *content.GalleryImage) error {
	model := r.mapper.ToModel(g)

	result := r.db.WithContext(ctx).
		Model(&models.GalleryImageModel{}).
		Where("sid = ?", g.SID()).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"image_url":  model.ImageURL,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update gallery image", "sid", g.SID(), "error", result.Error)
		return fmt.Errorf("failed to update gallery image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.GalleryImageModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete gallery image", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete gallery image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}
