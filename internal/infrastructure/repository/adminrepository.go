package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sdc/internal/domain/admin"
	"sdc/internal/infrastructure/persistence/mappers"
	"sdc/internal/infrastructure/persistence/models"
	"sdc/internal/shared/logger"
)

// AdminRepository implements admin.Repository
type AdminRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.AdminMapper
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *gorm.DB, logger logger.Interface) admin.Repository {
	return &AdminRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewAdminMapper(),
	}
}

// Create persists a new admin account
func (r *AdminRepository) Create(ctx context.Context, adm *admin.Admin) error {
	model := r.mapper.ToModel(adm)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return admin.ErrEmailTaken
		}
		r.logger.Errorw("failed to create admin", "email", adm.Email(), "error", err)
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// GetBySID retrieves an admin by short ID
func (r *AdminRepository) GetBySID(ctx context.Context, sid string) (*admin.Admin, error) {
	var model models.AdminModel

	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admin.ErrAdminNotFound
		}
		r.logger.Errorw("failed to get admin by sid", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get admin by sid: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var model models.AdminModel

	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admin.ErrAdminNotFound
		}
		r.logger.Errorw("failed to get admin by email", "error", err)
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// Update persists changes to an existing admin
func (r *AdminRepository) Update(ctx context.Context, adm *admin.Admin) error {
	model := r.mapper.ToModel(adm)

	result := r.db.WithContext(ctx).
		Model(&models.AdminModel{}).
		Where("sid = ?", adm.SID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"contact_no":    model.ContactNo,
			"password_hash": model.PasswordHash,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update admin", "sid", adm.SID(), "error", result.Error)
		return fmt.Errorf("failed to update admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return admin.ErrAdminNotFound
	}
	return nil
}
