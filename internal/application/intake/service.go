// Package intake handles visitor submissions from the public site and their
// review by admins.
package intake

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"sdc/internal/domain/intake"
	"sdc/internal/shared/biztime"
	"sdc/internal/shared/logger"
)

// EmailService sends notifications for new submissions.
type EmailService interface {
	SendContactNotification(name, fromEmail, message string) error
	SendApplicationReceivedEmail(to, applicantName string) error
}

// ContactMessageDTO is the transport shape for a contact message
type ContactMessageDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// ApplicationDTO is the transport shape for a membership application
type ApplicationDTO struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Answers   map[string]string `json:"answers,omitempty"`
	Status    string            `json:"status"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

// SubmitContactCommand carries a public contact-form submission
type SubmitContactCommand struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

// SubmitApplicationCommand carries a public membership application
type SubmitApplicationCommand struct {
	Name    string            `json:"name" validate:"required,max=100"`
	Email   string            `json:"email" validate:"required,email,max=255"`
	Answers map[string]string `json:"answers" validate:"max=50"`
}

// UpdateApplicationStatusCommand moves an application through review
type UpdateApplicationStatusCommand struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}

// Service coordinates intake submissions, storage and notifications.
// Submitted text is sanitized before storage since it is later rendered in
// the admin panel.
type Service struct {
	contacts     intake.ContactRepository
	applications intake.ApplicationRepository
	email        EmailService
	sanitizer    *bluemonday.Policy
	logger       logger.Interface
}

func NewService(
	contacts intake.ContactRepository,
	applications intake.ApplicationRepository,
	email EmailService,
	logger logger.Interface,
) *Service {
	return &Service{
		contacts:     contacts,
		applications: applications,
		email:        email,
		sanitizer:    bluemonday.StrictPolicy(),
		logger:       logger,
	}
}

// SubmitContact stores a contact message and notifies the intake inbox. A
// failed notification does not fail the submission.
func (s *Service) SubmitContact(ctx context.Context, cmd SubmitContactCommand) (*ContactMessageDTO, error) {
	msg, err := intake.NewContactMessage(
		s.sanitizer.Sanitize(cmd.Name),
		cmd.Email,
		s.sanitizer.Sanitize(cmd.Message),
	)
	if err != nil {
		return nil, err
	}

	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Infow("contact message received", "sid", msg.SID())

	if s.email != nil {
		go func() {
			if err := s.email.SendContactNotification(msg.Name(), msg.Email(), msg.Message()); err != nil {
				s.logger.Warnw("failed to send contact notification", "error", err)
			}
		}()
	}

	return s.contactToDTO(msg), nil
}

func (s *Service) ListContacts(ctx context.Context, offset, limit int) ([]*ContactMessageDTO, int64, error) {
	list, total, err := s.contacts.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*ContactMessageDTO, 0, len(list))
	for _, m := range list {
		out = append(out, s.contactToDTO(m))
	}
	return out, total, nil
}

func (s *Service) MarkContactRead(ctx context.Context, sid string) (*ContactMessageDTO, error) {
	msg, err := s.contacts.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	msg.MarkRead()
	if err := s.contacts.Update(ctx, msg); err != nil {
		return nil, err
	}
	return s.contactToDTO(msg), nil
}

func (s *Service) DeleteContact(ctx context.Context, sid string) error {
	return s.contacts.Delete(ctx, sid)
}

func (s *Service) contactToDTO(m *intake.ContactMessage) *ContactMessageDTO {
	return &ContactMessageDTO{
		ID:        m.SID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Message:   m.Message(),
		Read:      m.Read(),
		CreatedAt: biztime.FormatMetadataTime(m.CreatedAt()),
	}
}

// SubmitApplication stores a membership application and acknowledges it to
// the applicant.
func (s *Service) SubmitApplication(ctx context.Context, cmd SubmitApplicationCommand) (*ApplicationDTO, error) {
	answers := make(map[string]string, len(cmd.Answers))
	for q, a := range cmd.Answers {
		answers[s.sanitizer.Sanitize(q)] = s.sanitizer.Sanitize(a)
	}

	app, err := intake.NewApplication(s.sanitizer.Sanitize(cmd.Name), cmd.Email, answers)
	if err != nil {
		return nil, err
	}

	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Infow("application received", "sid", app.SID())

	if s.email != nil {
		go func() {
			if err := s.email.SendApplicationReceivedEmail(app.Email(), app.Name()); err != nil {
				s.logger.Warnw("failed to send application acknowledgement", "error", err)
			}
		}()
	}

	return s.applicationToDTO(app), nil
}

func (s *Service) ListApplications(ctx context.Context, offset, limit int) ([]*ApplicationDTO, int64, error) {
	list, total, err := s.applications.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*ApplicationDTO, 0, len(list))
	for _, a := range list {
		out = append(out, s.applicationToDTO(a))
	}
	return out, total, nil
}

func (s *Service) GetApplication(ctx context.Context, sid string) (*ApplicationDTO, error) {
	app, err := s.applications.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	return s.applicationToDTO(app), nil
}

func (s *Service) UpdateApplicationStatus(ctx context.Context, sid string, cmd UpdateApplicationStatusCommand) (*ApplicationDTO, error) {
	app, err := s.applications.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := app.SetStatus(intake.ApplicationStatus(cmd.Status)); err != nil {
		return nil, err
	}
	if err := s.applications.Update(ctx, app); err != nil {
		return nil, err
	}
	s.logger.Infow("application status updated", "sid", sid, "status", cmd.Status)
	return s.applicationToDTO(app), nil
}

func (s *Service) DeleteApplication(ctx context.Context, sid string) error {
	return s.applications.Delete(ctx, sid)
}

func (s *Service) applicationToDTO(a *intake.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ID:        a.SID(),
		Name:      a.Name(),
		Email:     a.Email(),
		Answers:   a.Answers(),
		Status:    string(a.Status()),
		CreatedAt: biztime.FormatMetadataTime(a.CreatedAt()),
		UpdatedAt: biztime.FormatMetadataTime(a.UpdatedAt()),
	}
}
