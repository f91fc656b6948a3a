// Package usecases implements the admin session lifecycle: login, logout,
// verification, status reporting, extension and expiry-warning dismissal.
package usecases

import (
	"context"
	"time"
)

// TokenService mints and verifies session tokens. Verify returns the admin
// SID embedded in the token.
type TokenService interface {
	Generate(adminSID string) (string, error)
	Verify(tokenString string) (string, error)
}

// WarningStateStore tracks dismissed expiry warnings per session token.
type WarningStateStore interface {
	Dismiss(ctx context.Context, token string, ttl time.Duration) error
	IsDismissed(ctx context.Context, token string) (bool, error)
	Reset(ctx context.Context, token string) error
}
