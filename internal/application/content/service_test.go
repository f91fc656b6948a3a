package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc/internal/domain/content"
	"sdc/internal/shared/logger"
)

type mockTestimonialRepo struct {
	createFunc   func(ctx context.Context, t *content.Testimonial) error
	getBySIDFunc func(ctx context.Context, sid string) (*content.Testimonial, error)
	listFunc     func(ctx context.Context) ([]*content.Testimonial, error)
	updateFunc   func(ctx context.Context, t *content.Testimonial) error
	deleteFunc   func(ctx context.Context, sid string) error
}

func (m *mockTestimonialRepo) Create(ctx context.Context, t *content.Testimonial) error {
	return m.createFunc(ctx, t)
}
func (m *mockTestimonialRepo) GetBySID(ctx context.Context, sid string) (*content.Testimonial, error) {
	return m.getBySIDFunc(ctx, sid)
}
func (m *mockTestimonialRepo) List(ctx context.Context) ([]*content.Testimonial, error) {
	return m.listFunc(ctx)
}
func (m *mockTestimonialRepo) Update(ctx context.Context, t *content.Testimonial) error {
	return m.updateFunc(ctx, t)
}
func (m *mockTestimonialRepo) Delete(ctx context.Context, sid string) error {
	return m.deleteFunc(ctx, sid)
}

type mockProjectRepo struct {
	createFunc   func(ctx context.Context, p *content.Project) error
	getBySIDFunc func(ctx context.Context, sid string) (*content.Project, error)
	listFunc     func(ctx context.Context) ([]*content.Project, error)
	updateFunc   func(ctx context.Context, p *content.Project) error
	deleteFunc   func(ctx context.Context, sid string) error
}

func (m *mockProjectRepo) Create(ctx context.Context, p *content.Project) error {
	return m.createFunc(ctx, p)
}
func (m *mockProjectRepo) GetBySID(ctx context.Context, sid string) (*content.Project, error) {
	return m.getBySIDFunc(ctx, sid)
}
func (m *mockProjectRepo) List(ctx context.Context) ([]*content.Project, error) {
	return m.listFunc(ctx)
}
func (m *mockProjectRepo) Update(ctx context.Context, p *content.Project) error {
	return m.updateFunc(ctx, p)
}
func (m *mockProjectRepo) Delete(ctx context.Context, sid string) error {
	return m.deleteFunc(ctx, sid)
}

func newTestService(testimonials content.TestimonialRepository, projects content.ProjectRepository) *Service {
	return NewService(testimonials, nil, projects, nil, nil, logger.NewLogger())
}

func TestCreateTestimonial(t *testing.T) {
	var saved *content.Testimonial
	repo := &mockTestimonialRepo{
		createFunc: func(_ context.Context, tm *content.Testimonial) error {
			saved = tm
			return nil
		},
	}
	svc := newTestService(repo, nil)

	dto, err := svc.CreateTestimonial(context.Background(), CreateTestimonialCommand{
		ClientName: "  Ravi  ",
		Quote:      "Great community to learn in.",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Ravi", dto.ClientName)
	assert.Contains(t, dto.ID, "tm_")
	assert.Equal(t, saved.SID(), dto.ID)
}

func TestCreateTestimonialValidation(t *testing.T) {
	svc := newTestService(&mockTestimonialRepo{}, nil)

	_, err := svc.CreateTestimonial(context.Background(), CreateTestimonialCommand{
		ClientName: "",
		Quote:      "quote",
	})

	assert.Error(t, err)
}

func TestProjectMarkdownRendering(t *testing.T) {
	prj, err := content.NewProject(
		"Campus Portal",
		"# Overview\n\nA portal with **markdown** docs.\n\n<script>alert(1)</script>",
		"", "", nil,
	)
	require.NoError(t, err)

	repo := &mockProjectRepo{
		getBySIDFunc: func(_ context.Context, _ string) (*content.Project, error) {
			return prj, nil
		},
	}
	svc := newTestService(nil, repo)

	dto, err := svc.GetProject(context.Background(), prj.SID())

	require.NoError(t, err)
	assert.Contains(t, dto.DescriptionHTML, "<h1")
	assert.Contains(t, dto.DescriptionHTML, "<strong>markdown</strong>")
	// Script tags never survive sanitization.
	assert.NotContains(t, dto.DescriptionHTML, "<script>")
	// The raw source stays untouched for editing.
	assert.Contains(t, dto.Description, "<script>")
}

func TestListTestimonialsPropagatesRepoError(t *testing.T) {
	repo := &mockTestimonialRepo{
		listFunc: func(_ context.Context) ([]*content.Testimonial, error) {
			return nil, content.ErrNotFound
		},
	}
	svc := newTestService(repo, nil)

	_, err := svc.ListTestimonials(context.Background())

	assert.ErrorIs(t, err, content.ErrNotFound)
}
