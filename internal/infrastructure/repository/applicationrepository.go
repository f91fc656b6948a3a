package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sdc/internal/domain/intake"
	"sdc/internal/infrastructure/persistence/mappers"
	"sdc/internal/infrastructure/persistence/models"
	"sdc/internal/shared/logger"
)

// ApplicationRepository implements intake.ApplicationRepository
type ApplicationRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ApplicationMapper
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB, logger logger.Interface) intake.ApplicationRepository {
	return &ApplicationRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewApplicationMapper(),
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *intake.Application) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create application", "error", err)
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) GetBySID(ctx context.Context, sid string) (*intake.Application, error) {
	var model models.ApplicationModel

	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, intake.ErrApplicationNotFound
		}
		r.logger.Errorw("failed to get application", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ApplicationRepository) List(ctx context.Context, offset, limit int) ([]*intake.Application, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ApplicationModel{}).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count applications", "error", err)
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	var modelList []*models.ApplicationModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list applications", "error", err)
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	domains, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return domains, total, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, a *intake.Application) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&models.ApplicationModel{}).
		Where("sid = ?", a.SID()).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update application", "sid", a.SID(), "error", result.Error)
		return fmt.Errorf("failed to update application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return intake.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.ApplicationModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete application", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return intake.ErrApplicationNotFound
	}
	return nil
}
