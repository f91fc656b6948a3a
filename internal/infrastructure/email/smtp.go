package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	IntakeInbox string // Inbox that receives contact and application notifications
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendContactNotification forwards a contact-form submission to the intake
// inbox so messages are seen even when nobody checks the admin panel.
func (s *SMTPEmailService) SendContactNotification(name, fromEmail, message string) error {
	subject := fmt.Sprintf("New contact message from %s", name)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Contact Message</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p>%s</p>
		</body>
		</html>
	`, html.EscapeString(name), html.EscapeString(fromEmail), html.EscapeString(message))

	plainBody := fmt.Sprintf(`
New contact message

From: %s <%s>

%s
	`, name, fromEmail, message)

	return s.sendEmail(s.config.IntakeInbox, subject, htmlBody, plainBody)
}

// SendApplicationReceivedEmail acknowledges a membership application to the
// applicant.
func (s *SMTPEmailService) SendApplicationReceivedEmail(to, applicantName string) error {
	subject := "We received your application"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Application Received</h2>
			<p>Hi %s,</p>
			<p>Thanks for applying to the Software Development Community. We have received your application and will get back to you after review.</p>
			<p>If you didn't submit an application, please ignore this email.</p>
		</body>
		</html>
	`, html.EscapeString(applicantName))

	plainBody := fmt.Sprintf(`
Application Received

Hi %s,

Thanks for applying to the Software Development Community. We have received your application and will get back to you after review.

If you didn't submit an application, please ignore this email.
	`, applicantName)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
