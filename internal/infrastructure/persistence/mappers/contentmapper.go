package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"sdc/internal/domain/content"
	"sdc/internal/infrastructure/persistence/models"
)

// TestimonialMapper provides methods for converting between domain and model
type TestimonialMapper interface {
	ToDomain(model *models.TestimonialModel) *content.Testimonial
	ToModel(domain *content.Testimonial) *models.TestimonialModel
	ToDomainList(modelList []*models.TestimonialModel) []*content.Testimonial
}

type TestimonialMapperImpl struct{}

func NewTestimonialMapper() TestimonialMapper {
	return &TestimonialMapperImpl{}
}

func (m *TestimonialMapperImpl) ToDomain(model *models.TestimonialModel) *content.Testimonial {
	if model == nil {
		return nil
	}

	return content.ReconstructTestimonial(
		model.ID,
		model.SID,
		model.ClientName,
		model.Quote,
		model.ImageURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TestimonialMapperImpl) ToModel(domain *content.Testimonial) *models.TestimonialModel {
	if domain == nil {
		return nil
	}

	return &models.TestimonialModel{
		ID:         domain.ID(),
		SID:        domain.SID(),
		ClientName: domain.ClientName(),
		Quote:      domain.Quote(),
		ImageURL:   domain.ImageURL(),
		CreatedAt:  domain.CreatedAt(),
		UpdatedAt:  domain.UpdatedAt(),
	}
}

func (m *TestimonialMapperImpl) ToDomainList(modelList []*models.TestimonialModel) []*content.Testimonial {
	if modelList == nil {
		return nil
	}

	domains := make([]*content.Testimonial, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}

// PersonMapper provides methods for converting between domain and model
type PersonMapper interface {
	ToDomain(model *models.PersonModel) *content.Person
	ToModel(domain *content.Person) *models.PersonModel
	ToDomainList(modelList []*models.PersonModel) []*content.Person
}

type PersonMapperImpl struct{}

func NewPersonMapper() PersonMapper {
	return &PersonMapperImpl{}
}

func (m *PersonMapperImpl) ToDomain(model *models.PersonModel) *content.Person {
	if model == nil {
		return nil
	}

	return content.ReconstructPerson(
		model.ID,
		model.SID,
		model.Name,
		model.Category,
		model.Role,
		model.ImageURL,
		model.LinkedIn,
		model.GitHub,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *PersonMapperImpl) ToModel(domain *content.Person) *models.PersonModel {
	if domain == nil {
		return nil
	}

	return &models.PersonModel{
		ID:        domain.ID(),
		SID:       domain.SID(),
		Name:      domain.Name(),
		Category:  domain.Category(),
		Role:      domain.Role(),
		ImageURL:  domain.ImageURL(),
		LinkedIn:  domain.LinkedIn(),
		GitHub:    domain.GitHub(),
		CreatedAt: domain.CreatedAt(),
		UpdatedAt: domain.UpdatedAt(),
	}
}

func (m *PersonMapperImpl) ToDomainList(modelList []*models.PersonModel) []*content.Person {
	if modelList == nil {
		return nil
	}

	domains := make([]*content.Person, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}

// ProjectMapper provides methods for converting between domain and model
type ProjectMapper interface {
	ToDomain(model *models.ProjectModel) (*content.Project, error)
	ToModel(domain *content.Project) (*models.ProjectModel, error)
	ToDomainList(modelList []*models.ProjectModel) ([]*content.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*content.Project, error) {
	if model == nil {
		return nil, nil
	}

	var teamMembers []string
	if len(model.TeamMembers) > 0 {
		if err := json.Unmarshal(model.TeamMembers, &teamMembers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal team_members: %w", err)
		}
	}

	return content.ReconstructProject(
		model.ID,
		model.SID,
		model.Title,
		model.Description,
		model.Link,
		model.ImageURL,
		teamMembers,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *ProjectMapperImpl) ToModel(domain *content.Project) (*models.ProjectModel, error) {
	if domain == nil {
		return nil, nil
	}

	var teamMembersJSON datatypes.JSON
	if members := domain.TeamMembers(); len(members) > 0 {
		membersBytes, err := json.Marshal(members)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal team_members: %w", err)
		}
		teamMembersJSON = membersBytes
	}

	return &models.ProjectModel{
		ID:          domain.ID(),
		SID:         domain.SID(),
		Title:       domain.Title(),
		Description: domain.Description(),
		Link:        domain.Link(),
		ImageURL:    domain.ImageURL(),
		TeamMembers: teamMembersJSON,
		CreatedAt:   domain.CreatedAt(),
		UpdatedAt:   domain.UpdatedAt(),
	}, nil
}

func (m *ProjectMapperImpl) ToDomainList(modelList []*models.ProjectModel) ([]*content.Project, error) {
	if modelList == nil {
		return nil, nil
	}

	domains := make([]*content.Project, 0, len(modelList))
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

// FAQMapper provides methods for converting between domain and model
type FAQMapper interface {
	ToDomain(model *models.FAQModel) *content.FAQ
	ToModel(domain *content.FAQ) *models.FAQModel
	ToDomainList(modelList []*models.FAQModel) []*content.FAQ
}

type FAQMapperImpl struct{}

func NewFAQMapper() FAQMapper {
	return &FAQMapperImpl{}
}

func (m *FAQMapperImpl) ToDomain(model *models.FAQModel) *content.FAQ {
	if model == nil {
		return nil
	}

	return content.ReconstructFAQ(
		model.ID,
		model.SID,
		model.Question,
		model.Answer,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *FAQMapperImpl) ToModel(domain *content.FAQ) *models.FAQModel {
	if domain == nil {
		return nil
	}

	return &models.FAQModel{
		ID:        domain.ID(),
		SID:       domain.SID(),
		Question:  domain.Question(),
		Answer:    domain.Answer(),
		CreatedAt: domain.CreatedAt(),
		UpdatedAt: domain.UpdatedAt(),
	}
}

func (m *FAQMapperImpl) ToDomainList(modelList []*models.FAQModel) []*content.FAQ {
	if modelList == nil {
		return nil
	}

	domains := make([]*content.FAQ, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}

// GalleryImageMapper provides methods for converting between domain and model
type GalleryImageMapper interface {
	ToDomain(model *models.GalleryImageModel) *content.GalleryImage
	ToModel(domain *content.GalleryImage) *models.GalleryImageModel
	ToDomainList(modelList []*models.GalleryImageModel) []*content.GalleryImage
}

type GalleryImageMapperImpl struct{}

func NewGalleryImageMapper() GalleryImageMapper {
	return &GalleryImageMapperImpl{}
}

func (m *GalleryImageMapperImpl) ToDomain(model *models.GalleryImageModel) *content.GalleryImage {
	if model == nil {
		return nil
	}

	return content.ReconstructGalleryImage(
		model.ID,
		model.SID,
		model.Title,
		model.ImageURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *GalleryImageMapperImpl) ToModel(domain *content.GalleryImage) *models.GalleryImageModel {
	if domain == nil {
		return nil
	}

	return &models.GalleryImageModel{
		ID:        domain.ID(),
		SID:       domain.SID(),
		Title:     domain.Title(),
		ImageURL:  domain.ImageURL(),
		CreatedAt: domain.CreatedAt(),
		UpdatedAt: domain.UpdatedAt(),
	}
}

func (m *GalleryImageMapperImpl) ToDomainList(modelList []*models.GalleryImageModel) []*content.GalleryImage {
	if modelList == nil {
		return nil
	}

	domains := make([]*content.GalleryImage, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}
