// Package intake holds visitor-submitted data: contact messages and
// membership applications. Both arrive through public endpoints and are read
// by admins.
package intake

import (
	"fmt"
	"strings"
	"time"

	"sdc/internal/shared/biztime"
	"sdc/internal/shared/id"
)

// ContactMessage represents a message sent through the public contact form
type ContactMessage struct {
	id        uint
	sid       string // Stripe-style ID: msg_xxx
	name      string
	email     string
	message   string
	read      bool
	createdAt time.Time
}

func NewContactMessage(name, email, message string) (*ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	message = strings.TrimSpace(message)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixContactMsg, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	return &ContactMessage{
		sid:       sid,
		name:      name,
		email:     email,
		message:   message,
		createdAt: biztime.NowUTC(),
	}, nil
}

// ReconstructContactMessage reconstructs a ContactMessage from the persistence layer
func ReconstructContactMessage(
	id uint,
	sid string,
	name string,
	email string,
	message string,
	read bool,
	createdAt time.Time,
) *ContactMessage {
	return &ContactMessage{
		id:        id,
		sid:       sid,
		name:      name,
		email:     email,
		message:   message,
		read:      read,
		createdAt: createdAt,
	}
}

func (m *ContactMessage) ID() uint             { return m.id }
func (m *ContactMessage) SID() string          { return m.sid }
func (m *ContactMessage) Name() string         { return m.name }
func (m *ContactMessage) Email() string        { return m.email }
func (m *ContactMessage) Message() string      { return m.message }
func (m *ContactMessage) Read() bool           { return m.read }
func (m *ContactMessage) CreatedAt() time.Time { return m.createdAt }

// MarkRead flags the message as read by an admin.
func (m *ContactMessage) MarkRead() {
	m.read = true
}
