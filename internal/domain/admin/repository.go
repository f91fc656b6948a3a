package admin

import "context"

// Repository defines the interface for admin account persistence
type Repository interface {
	// Create persists a new admin account
	Create(ctx context.Context, adm *Admin) error

	// GetBySID retrieves an admin by short ID
	GetBySID(ctx context.Context, sid string) (*Admin, error)

	// GetByEmail retrieves an admin by email
	GetByEmail(ctx context.Context, email string) (*Admin, error)

	// Update persists changes to an existing admin
	Update(ctx context.Context, adm *Admin) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
