package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"sdc/internal/domain/intake"
	"sdc/internal/infrastructure/persistence/models"
)

// ContactMessageMapper provides methods for converting between domain and model
type ContactMessageMapper interface {
	ToDomain(model *models.ContactMessageModel) *intake.ContactMessage
	ToModel(domain *intake.ContactMessage) *models.ContactMessageModel
	ToDomainList(modelList []*models.ContactMessageModel) []*intake.ContactMessage
}

type ContactMessageMapperImpl struct{}

func NewContactMessageMapper() ContactMessageMapper {
	return &ContactMessageMapperImpl{}
}

func (m *ContactMessageMapperImpl) ToDomain(model *models.ContactMessageModel) *intake.ContactMessage {
	if model == nil {
		return nil
	}

	return intake.ReconstructContactMessage(
		model.ID,
		model.SID,
		model.Name,
		model.Email,
		model.Message,
		model.Read,
		model.CreatedAt,
	)
}

func (m *ContactMessageMapperImpl) ToModel(domain *intake.ContactMessage) *models.ContactMessageModel {
	if domain == nil {
		return nil
	}

	return &models.ContactMessageModel{
		ID:        domain.ID(),
		SID:       domain.SID(),
		Name:      domain.Name(),
		Email:     domain.Email(),
		Message:   domain.Message(),
		Read:      domain.Read(),
		CreatedAt: domain.CreatedAt(),
	}
}

func (m *ContactMessageMapperImpl) ToDomainList(modelList []*models.ContactMessageModel) []*intake.ContactMessage {
	if modelList == nil {
		return nil
	}

	domains := make([]*intake.ContactMessage, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}

// ApplicationMapper provides methods for converting between domain and model
type ApplicationMapper interface {
	ToDomain(model *models.ApplicationModel) (*intake.Application, error)
	ToModel(domain *intake.Application) (*models.ApplicationModel, error)
	ToDomainList(modelList []*models.ApplicationModel) ([]*intake.Application, error)
}

type ApplicationMapperImpl struct{}

func NewApplicationMapper() ApplicationMapper {
	return &ApplicationMapperImpl{}
}

func (m *ApplicationMapperImpl) ToDomain(model *models.ApplicationModel) (*intake.Application, error) {
	if model == nil {
		return nil, nil
	}

	var answers map[string]string
	if len(model.Answers) > 0 {
		if err := json.Unmarshal(model.Answers, &answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
	}

	return intake.ReconstructApplication(
		model.ID,
		model.SID,
		model.Name,
		model.Email,
		answers,
		intake.ApplicationStatus(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *ApplicationMapperImpl) ToModel(domain *intake.Application) (*models.ApplicationModel, error) {
	if domain == nil {
		return nil, nil
	}

	var answersJSON datatypes.JSON
	if answers := domain.Answers(); len(answers) > 0 {
		answersBytes, err := json.Marshal(answers)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal answers: %w", err)
		}
		answersJSON = answersBytes
	}

	return &models.ApplicationModel{
		ID:        domain.ID(),
		SID:       domain.SID(),
		Name:      domain.Name(),
		Email:     domain.Email(),
		Answers:   answersJSON,
		Status:    string(domain.Status()),
		CreatedAt: domain.CreatedAt(),
		UpdatedAt: domain.UpdatedAt(),
	}, nil
}

func (m *ApplicationMapperImpl) ToDomainList(modelList []*models.ApplicationModel) ([]*intake.Application, error) {
	if modelList == nil {
		return nil, nil
	}

	domains := make([]*intake.Application, 0, len(modelList))
	for _, model := range modelList {
		domain, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		if domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains, nil
}
