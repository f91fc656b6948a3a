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

// ProjectRepository implements content.ProjectRepository
type ProjectRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ProjectMapper
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB, logger logger.Interface) content.ProjectRepository {
	return &ProjectRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *content.Project) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create project", "error", err)
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetBySID(ctx context.Context, sid string) (*content.Project, error) {
	var model models.ProjectModel

	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrNotFound
		}
		r.logger.Errorw("failed to get project", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) List(ctx context.Context) ([]*content.Project, error) {
	var modelList []*models.ProjectModel

	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list projects", "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

func (r *ProjectRepository) Update(ctx context.Context, p *content.Project) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("sid = ?", p.SID()).
		Updates(map[string]interface{}{
			"title":        model.Title,
			"description":  model.Description,
			"link":         model.Link,
			"image_url":    model.ImageURL,
			"team_members": model.TeamMembers,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update project", "sid", p.SID(), "error", result.Error)
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.ProjectModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete project", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}
