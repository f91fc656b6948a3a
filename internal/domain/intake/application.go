package intake

import (
	"fmt"
	"strings"
	"time"

	"sdc/internal/shared/biztime"
	"sdc/internal/shared/id"
)

// ApplicationStatus tracks where a membership application is in review
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application represents a membership application submitted through the
// public application form. Answers are free-form question/answer pairs so
// the form can change without a schema migration.
type Application struct {
	id        uint
	sid       string // Stripe-style ID: app_xxx
	name      string
	email     string
	answers   map[string]string
	status    ApplicationStatus
	createdAt time.Time
	updatedAt time.Time
}

func NewApplication(name, email string, answers map[string]string) (*Application, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixApplication, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Application{
		sid:       sid,
		name:      name,
		email:     email,
		answers:   answers,
		status:    ApplicationStatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructApplication reconstructs an Application from the persistence layer
func ReconstructApplication(
	id uint,
	sid string,
	name string,
	email string,
	answers map[string]string,
	status ApplicationStatus,
	createdAt, updatedAt time.Time,
) *Application {
	return &Application{
		id:        id,
		sid:       sid,
		name:      name,
		email:     email,
		answers:   answers,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Application) ID() uint                  { return a.id }
func (a *Application) SID() string               { return a.sid }
func (a *Application) Name() string              { return a.name }
func (a *Application) Email() string             { return a.email }
func (a *Application) Answers() map[string]string { return a.answers }
func (a *Application) Status() ApplicationStatus { return a.status }
func (a *Application) CreatedAt() time.Time      { return a.createdAt }
func (a *Application) UpdatedAt() time.Time      { return a.updatedAt }

// SetStatus moves the application to a new review status.
func (a *Application) SetStatus(status ApplicationStatus) error {
	switch status {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
	default:
		return fmt.Errorf("invalid application status: %s", status)
	}
	a.status = status
	a.updatedAt = biztime.NowUTC()
	return nil
}
