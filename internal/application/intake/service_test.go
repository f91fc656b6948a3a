package intake

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc/internal/domain/intake"
	"sdc/internal/shared/logger"
)

type mockContactRepo struct {
	createFunc   func(ctx context.Context, m *intake.ContactMessage) error
	getBySIDFunc func(ctx context.Context, sid string) (*intake.ContactMessage, error)
	listFunc     func(ctx context.Context, offset, limit int) ([]*intake.ContactMessage, int64, error)
	updateFunc   func(ctx context.Context, m *intake.ContactMessage) error
	deleteFunc   func(ctx context.Context, sid string) error
}

func (m *mockContactRepo) Create(ctx context.Context, msg *intake.ContactMessage) error {
	return m.createFunc(ctx, msg)
}
func (m *mockContactRepo) GetBySID(ctx context.Context, sid string) (*intake.ContactMessage, error) {
	return m.getBySIDFunc(ctx, sid)
}
func (m *mockContactRepo) List(ctx context.Context, offset, limit int) ([]*intake.ContactMessage, int64, error) {
	return m.listFunc(ctx, offset, limit)
}
func (m *mockContactRepo) Update(ctx context.Context, msg *intake.ContactMessage) error {
	return m.updateFunc(ctx, msg)
}
func (m *mockContactRepo) Delete(ctx context.Context, sid string) error {
	return m.deleteFunc(ctx, sid)
}

type mockApplicationRepo struct {
	createFunc   func(ctx context.Context, a *intake.Application) error
	getBySIDFunc func(ctx context.Context, sid string) (*intake.Application, error)
	listFunc     func(ctx context.Context, offset, limit int) ([]*intake.Application, int64, error)
	updateFunc   func(ctx context.Context, a *intake.Application) error
	deleteFunc   func(ctx context.Context, sid string) error
}

func (m *mockApplicationRepo) Create(ctx context.Context, a *intake.Application) error {
	return m.createFunc(ctx, a)
}
func (m *mockApplicationRepo) GetBySID(ctx context.Context, sid string) (*intake.Application, error) {
	return m.getBySIDFunc(ctx, sid)
}
func (m *mockApplicationRepo) List(ctx context.Context, offset, limit int) ([]*intake.Application, int64, error) {
	return m.listFunc(ctx, offset, limit)
}
func (m *mockApplicationRepo) Update(ctx context.Context, a *intake.Application) error {
	return m.updateFunc(ctx, a)
}
func (m *mockApplicationRepo) Delete(ctx context.Context, sid string) error {
	return m.deleteFunc(ctx, sid)
}

type mockEmail struct {
	mu           sync.Mutex
	contactCalls int
	appCalls     int
	err          error
}

func (m *mockEmail) SendContactNotification(_, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contactCalls++
	return m.err
}

func (m *mockEmail) SendApplicationReceivedEmail(_, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appCalls++
	return m.err
}

func (m *mockEmail) calls() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contactCalls, m.appCalls
}

func TestSubmitContactSanitizesAndNotifies(t *testing.T) {
	var saved *intake.ContactMessage
	repo := &mockContactRepo{
		createFunc: func(_ context.Context, msg *intake.ContactMessage) error {
			saved = msg
			return nil
		},
	}
	email := &mockEmail{}
	svc := NewService(repo, nil, email, logger.NewLogger())

	dto, err := svc.SubmitContact(context.Background(), SubmitContactCommand{
		Name:    "Priya",
		Email:   "Priya@Example.com",
		Message: "Hello <script>alert(1)</script> team",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Contains(t, dto.ID, "msg_")
	assert.Equal(t, "priya@example.com", dto.Email)
	assert.NotContains(t, dto.Message, "<script>")

	// Notification is fired asynchronously.
	assert.Eventually(t, func() bool {
		contact, _ := email.calls()
		return contact == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSubmitContactSurvivesEmailFailure(t *testing.T) {
	repo := &mockContactRepo{
		createFunc: func(_ context.Context, _ *intake.ContactMessage) error { return nil },
	}
	email := &mockEmail{err: assert.AnError}
	svc := NewService(repo, nil, email, logger.NewLogger())

	_, err := svc.SubmitContact(context.Background(), SubmitContactCommand{
		Name:    "Priya",
		Email:   "priya@example.com",
		Message: "hi",
	})

	assert.NoError(t, err)
}

func TestSubmitApplication(t *testing.T) {
	var saved *intake.Application
	repo := &mockApplicationRepo{
		createFunc: func(_ context.Context, a *intake.Application) error {
			saved = a
			return nil
		},
	}
	svc := NewService(nil, repo, nil, logger.NewLogger())

	dto, err := svc.SubmitApplication(context.Background(), SubmitApplicationCommand{
		Name:  "Dev",
		Email: "dev@example.com",
		Answers: map[string]string{
			"Why do you want to join?": "To build things",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Contains(t, dto.ID, "app_")
	assert.Equal(t, string(intake.ApplicationStatusPending), dto.Status)
	assert.Equal(t, "To build things", dto.Answers["Why do you want to join?"])
}

func TestUpdateApplicationStatus(t *testing.T) {
	app, err := intake.NewApplication("Dev", "dev@example.com", nil)
	require.NoError(t, err)

	repo := &mockApplicationRepo{
		getBySIDFunc: func(_ context.Context, _ string) (*intake.Application, error) {
			return app, nil
		},
		updateFunc: func(_ context.Context, _ *intake.Application) error { return nil },
	}
	svc := NewService(nil, repo, nil, logger.NewLogger())

	dto, err := svc.UpdateApplicationStatus(context.Background(), app.SID(), UpdateApplicationStatusCommand{
		Status: "accepted",
	})

	require.NoError(t, err)
	assert.Equal(t, "accepted", dto.Status)

	_, err = svc.UpdateApplicationStatus(context.Background(), app.SID(), UpdateApplicationStatusCommand{
		Status: "bogus",
	})
	assert.Error(t, err)
}
