// Package content implements the CMS operations for the public site:
// testimonials, people, projects, FAQs and gallery images.
package content

import (
	"bytes"
	"context"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"sdc/internal/domain/content"
	"sdc/internal/shared/biztime"
	"sdc/internal/shared/logger"
)

// Service coordinates content CRUD across the five content repositories.
type Service struct {
	testimonials content.TestimonialRepository
	people       content.PersonRepository
	projects     content.ProjectRepository
	faqs         content.FAQRepository
	gallery      content.GalleryRepository
	markdown     goldmark.Markdown
	sanitizer    *bluemonday.Policy
	logger       logger.Interface
}

func NewService(
	testimonials content.TestimonialRepository,
	people content.PersonRepository,
	projects content.ProjectRepository,
	faqs content.FAQRepository,
	gallery content.GalleryRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		testimonials: testimonials,
		people:       people,
		projects:     projects,
		faqs:         faqs,
		gallery:      gallery,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger,
	}
}

// --- Testimonials ---

func (s *Service) CreateTestimonial(ctx context.Context, cmd CreateTestimonialCommand) (*TestimonialDTO, error) {
	t, err := content.NewTestimonial(cmd.ClientName, cmd.Quote, cmd.ImageURL)
	if err != nil {
		return nil, err
	}
	if err := s.testimonials.Create(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Infow("testimonial created", "sid", t.SID())
	return s.testimonialToDTO(t), nil
}

func (s *Service) UpdateTestimonial(ctx context.Context, sid string, cmd UpdateTestimonialCommand) (*TestimonialDTO, error) {
	t, err := s.testimonials.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := t.Update(cmd.ClientName, cmd.Quote, cmd.ImageURL); err != nil {
		return nil, err
	}
	if err := s.testimonials.Update(ctx, t); err != nil {
		return nil, err
	}
	return s.testimonialToDTO(t), nil
}

func (s *Service) DeleteTestimonial(ctx context.Context, sid string) error {
	return s.testimonials.Delete(ctx, sid)
}

func (s *Service) ListTestimonials(ctx context.Context) ([]*TestimonialDTO, error) {
	list, err := s.testimonials.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*TestimonialDTO, 0, len(list))
	for _, t := range list {
		out = append(out, s.testimonialToDTO(t))
	}
	return out, nil
}

func (s *Service) testimonialToDTO(t *content.Testimonial) *TestimonialDTO {
	return &TestimonialDTO{
		ID:         t.SID(),
		ClientName: t.ClientName(),
		Quote:      t.Quote(),
		ImageURL:   t.ImageURL(),
		CreatedAt:  biztime.FormatMetadataTime(t.CreatedAt()),
		UpdatedAt:  biztime.FormatMetadataTime(t.UpdatedAt()),
	}
}

// --- People ---

func (s *Service) CreatePerson(ctx context.Context, cmd CreatePersonCommand) (*PersonDTO, error) {
	p, err := content.NewPerson(cmd.Name, cmd.Category, cmd.Role, cmd.ImageURL, cmd.LinkedIn, cmd.GitHub)
	if err != nil {
		return nil, err
	}
	if err := s.people.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Infow("person created", "sid", p.SID(), "category", p.Category())
	return s.personToDTO(p), nil
}

func (s *Service) UpdatePerson(ctx context.Context, sid string, cmd UpdatePersonCommand) (*PersonDTO, error) {
	p, err := s.people.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := p.Update(cmd.Name, cmd.Category, cmd.Role, cmd.ImageURL, cmd.LinkedIn, cmd.GitHub); err != nil {
		return nil, err
	}
	if err := s.people.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.personToDTO(p), nil
}

func (s *Service) DeletePerson(ctx context.Context, sid string) error {
	return s.people.Delete(ctx, sid)
}

func (s *Service) ListPeople(ctx context.Context, category string) ([]*PersonDTO, error) {
	var (
		list []*content.Person
		err  error
	)
	if category != "" {
		list, err = s.people.ListByCategory(ctx, category)
	} else {
		list, err = s.people.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*PersonDTO, 0, len(list))
	for _, p := range list {
		out = append(out, s.personToDTO(p))
	}
	return out, nil
}

func (s *Service) personToDTO(p *content.Person) *PersonDTO {
	return &PersonDTO{
		ID:        p.SID(),
		Name:      p.Name(),
		Category:  p.Category(),
		Role:      p.Role(),
		ImageURL:  p.ImageURL(),
		LinkedIn:  p.LinkedIn(),
		GitHub:    p.GitHub(),
		CreatedAt: biztime.FormatMetadataTime(p.CreatedAt()),
		UpdatedAt: biztime.FormatMetadataTime(p.UpdatedAt()),
	}
}

// --- Projects ---

func (s *Service) CreateProject(ctx context.Context, cmd CreateProjectCommand) (*ProjectDTO, error) {
	p, err := content.NewProject(cmd.Title, cmd.Description, cmd.Link, cmd.ImageURL, cmd.TeamMembers)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Infow("project created", "sid", p.SID())
	return s.projectToDTO(p), nil
}

func (s *Service) UpdateProject(ctx context.Context, sid string, cmd UpdateProjectCommand) (*ProjectDTO, error) {
	p, err := s.projects.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := p.Update(cmd.Title, cmd.Description, cmd.Link, cmd.ImageURL, cmd.TeamMembers); err != nil {
		return nil, err
	}
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.projectToDTO(p), nil
}

func (s *Service) DeleteProject(ctx context.Context, sid string) error {
	return s.projects.Delete(ctx, sid)
}

func (s *Service) GetProject(ctx context.Context, sid string) (*ProjectDTO, error) {
	p, err := s.projects.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	return s.projectToDTO(p), nil
}

func (s *Service) ListProjects(ctx context.Context) ([]*ProjectDTO, error) {
	list, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ProjectDTO, 0, len(list))
	for _, p := range list {
		out = append(out, s.projectToDTO(p))
	}
	return out, nil
}

func (s *Service) projectToDTO(p *content.Project) *ProjectDTO {
	return &ProjectDTO{
		ID:              p.SID(),
		Title:           p.Title(),
		Description:     p.Description(),
		DescriptionHTML: s.renderMarkdown(p.Description()),
		Link:            p.Link(),
		ImageURL:        p.ImageURL(),
		TeamMembers:     p.TeamMembers(),
		CreatedAt:       biztime.FormatMetadataTime(p.CreatedAt()),
		UpdatedAt:       biztime.FormatMetadataTime(p.UpdatedAt()),
	}
}

// renderMarkdown converts a Markdown description to sanitized HTML. On a
// render failure the raw description is dropped from the HTML field rather
// than served unsanitized.
func (s *Service) renderMarkdown(source string) string {
	if source == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(source), &buf); err != nil {
		s.logger.Warnw("failed to render project markdown", "error", err)
		return ""
	}
	return s.sanitizer.Sanitize(buf.String())
}

// --- FAQs ---

func (s *Service) CreateFAQ(ctx context.Context, cmd CreateFAQCommand) (*FAQDTO, error) {
	f, err := content.NewFAQ(cmd.Question, cmd.Answer)
	if err != nil {
		return nil, err
	}
	if err := s.faqs.Create(ctx, f); err != nil {
		return nil, err
	}
	s.logger.Infow("faq created", "sid", f.SID())
	return s.faqToDTO(f), nil
}

func (s *Service) UpdateFAQ(ctx context.Context, sid string, cmd UpdateFAQCommand) (*FAQDTO, error) {
	f, err := s.faqs.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := f.Update(cmd.Question, cmd.Answer); err != nil {
		return nil, err
	}
	if err := s.faqs.Update(ctx, f); err != nil {
		return nil, err
	}
	return s.faqToDTO(f), nil
}

func (s *Service) DeleteFAQ(ctx context.Context, sid string) error {
	return s.faqs.Delete(ctx, sid)
}

func (s *Service) ListFAQs(ctx context.Context) ([]*FAQDTO, error) {
	list, err := s.faqs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*FAQDTO, 0, len(list))
	for _, f := range list {
		out = append(out, s.faqToDTO(f))
	}
	return out, nil
}

func (s *Service) faqToDTO(f *content.FAQ) *FAQDTO {
	return &FAQDTO{
		ID:        f.SID(),
		Question:  f.Question(),
		Answer:    f.Answer(),
		CreatedAt: biztime.FormatMetadataTime(f.CreatedAt()),
		UpdatedAt: biztime.FormatMetadataTime(f.UpdatedAt()),
	}
}

// --- Gallery ---

func (s *Service) CreateGalleryImage(ctx context.Context, cmd CreateGalleryImageCommand) (*GalleryImageDTO, error) {
	g, err := content.NewGalleryImage(cmd.Title, cmd.ImageURL)
	if err != nil {
		return nil, err
	}
	if err := s.gallery.Create(ctx, g); err != nil {
		return nil, err
	}
	s.logger.Infow("gallery image created", "sid", g.SID())
	return s.galleryToDTO(g), nil
}

func (s *Service) UpdateGalleryImage(ctx context.Context, sid string, cmd UpdateGalleryImageCommand) (*GalleryImageDTO, error) {
	g, err := s.gallery.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := g.Update(cmd.Title, cmd.ImageURL); err != nil {
		return nil, err
	}
	if err := s.gallery.Update(ctx, g); err != nil {
		return nil, err
	}
	return s.galleryToDTO(g), nil
}

func (s *Service) DeleteGalleryImage(ctx context.Context, sid string) error {
	return s.gallery.Delete(ctx, sid)
}

func (s *Service) ListGalleryImages(ctx context.Context) ([]*GalleryImageDTO, error) {
	list, err := s.gallery.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*GalleryImageDTO, 0, len(list))
	for _, g := range list {
		out = append(out, s.galleryToDTO(g))
	}
	return out, nil
}

func (s *Service) galleryToDTO(g *content.GalleryImage) *GalleryImageDTO {
	return &GalleryImageDTO{
		ID:        g.SID(),
		Title:     g.Title(),
		ImageURL:  g.ImageURL(),
		CreatedAt: biztime.FormatMetadataTime(g.CreatedAt()),
		UpdatedAt: biztime.FormatMetadataTime(g.UpdatedAt()),
	}
}

