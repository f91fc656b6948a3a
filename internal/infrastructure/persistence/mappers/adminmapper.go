package mappers

import (
	"sdc/internal/domain/admin"
	"sdc/internal/infrastructure/persistence/models"
)

// AdminMapper provides methods for converting between domain and model
type AdminMapper interface {
	ToDomain(model *models.AdminModel) *admin.Admin
	ToModel(domain *admin.Admin) *models.AdminModel
}

// AdminMapperImpl implements AdminMapper
type AdminMapperImpl struct{}

// NewAdminMapper creates a new AdminMapper
func NewAdminMapper() AdminMapper {
	return &AdminMapperImpl{}
}

// ToDomain converts an AdminModel to an Admin domain entity
func (m *AdminMapperImpl) ToDomain(model *models.AdminModel) *admin.Admin {
	if model == nil {
		return nil
	}

	return admin.ReconstructAdmin(
		model.ID,
		model.SID,
		model.Name,
		model.Email,
		model.ContactNo,
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts an Admin domain entity to an AdminModel
func (m *AdminMapperImpl) ToModel(domain *admin.Admin) *models.AdminModel {
	if domain == nil {
		return nil
	}

	return &models.AdminModel{
		ID:           domain.ID(),
		SID:          domain.SID(),
		Name:         domain.Name(),
		Email:        domain.Email(),
		ContactNo:    domain.ContactNo(),
		PasswordHash: domain.PasswordHash(),
		CreatedAt:    domain.CreatedAt(),
		UpdatedAt:    domain.UpdatedAt(),
	}
}
