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

// ContactMessageRepository implements intake.ContactRepository
type ContactMessageRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ContactMessageMapper
}

// NewContactMessageRepository creates a new ContactMessageRepository
func NewContactMessageRepository(db *gorm.DB, logger logger.Interface) intake.ContactRepository {
	return &ContactMessageRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewContactMessageMapper(),
	}
}

func (r *ContactMessageRepository) Create(ctx context.Context, m *intake.ContactMessage) error {
	model := r.mapper.ToModel(m)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create contact message", "error", err)
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *ContactMessageRepository) GetBySID(ctx context.Context, sid string) (*intake.ContactMessage, error) {
	var model models.ContactMessageModel

	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, intake.ErrMessageNotFound
		}
		r.logger.Errorw("failed to get contact message", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *ContactMessageRepository) List(ctx context.Context, offset, limit int) ([]*intake.ContactMessage, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ContactMessageModel{}).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count contact messages", "error", err)
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	var modelList []*models.ContactMessageModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list contact messages", "error", err)
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}

	return r.mapper.ToDomainList(modelList), total, nil
}

func (r *ContactMessageRepository) Update(ctx context.Context, m *intake.ContactMessage) error {
	model := r.mapper.ToModel(m)

	result := r.db.WithContext(ctx).
		Model(&models.ContactMessageModel{}).
		Where("sid = ?", m.SID()).
		Updates(map[string]interface{}{
			"read": model.Read,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update contact message", "sid", m.SID(), "error", result.Error)
		return fmt.Errorf("failed to update contact message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return intake.ErrMessageNotFound
	}
	return nil
}

func (r *ContactMessageRepository) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.ContactMessageModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete contact message", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete contact message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return intake.ErrMessageNotFound
	}
	return nil
}
