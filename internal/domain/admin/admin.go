// Package admin holds the admin account aggregate. Admins are the only
// authenticated principals in the system; there are no roles beyond "is an
// admin".
package admin

import (
	"fmt"
	"strings"
	"time"

	"sdc/internal/shared/biztime"
	"sdc/internal/shared/id"
)

// Admin represents an administrator account
type Admin struct {
	id           uint
	sid          string // Stripe-style ID: adm_xxx
	name         string
	email        string
	contactNo    string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAdmin creates a new admin account with an already-hashed password.
func NewAdmin(name, email, contactNo, passwordHash string) (*Admin, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixAdmin, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Admin{
		sid:          sid,
		name:         name,
		email:        email,
		contactNo:    contactNo,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAdmin reconstructs an Admin from the persistence layer
func ReconstructAdmin(
	id uint,
	sid string,
	name string,
	email string,
	contactNo string,
	passwordHash string,
	createdAt, updatedAt time.Time,
) *Admin {
	return &Admin{
		id:           id,
		sid:          sid,
		name:         name,
		email:        email,
		contactNo:    contactNo,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Admin) ID() uint             { return a.id }
func (a *Admin) SID() string          { return a.sid }
func (a *Admin) Name() string         { return a.name }
func (a *Admin) Email() string        { return a.email }
func (a *Admin) ContactNo() string    { return a.contactNo }
func (a *Admin) PasswordHash() string { return a.passwordHash }
func (a *Admin) CreatedAt() time.Time { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time { return a.updatedAt }

// UpdateProfile updates the mutable profile fields.
func (a *Admin) UpdateProfile(name, email, contactNo string) error {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return fmt.Errorf("name is required")
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	a.name = name
	a.email = email
	a.contactNo = contactNo
	a.updatedAt = biztime.NowUTC()
	return nil
}

// ChangePassword replaces the stored hash.
func (a *Admin) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	a.passwordHash = passwordHash
	a.updatedAt = biztime.NowUTC()
	return nil
}

// SessionProfile returns the profile map persisted alongside the session
// token at login.
func (a *Admin) SessionProfile() map[string]string {
	return map[string]string{
		"id":    a.sid,
		"name":  a.name,
		"email": a.email,
	}
}
