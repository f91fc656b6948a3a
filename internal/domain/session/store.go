package session

import (
	"context"
	"time"
)

// Carrier transports the cookie half of a session record for one request.
// The HTTP layer adapts its request/response pair to this interface so the
// store stays independent of the web framework.
type Carrier interface {
	GetCookie(name string) (string, bool)
	SetCookie(name, value string, maxAge int)
	ClearCookie(name string)
}

// Mirror is the fallback key-value backend. Records are keyed by token and
// carry no backend-level expiry: staleness is enforced by the Store at read
// time, so a mirror entry may outlive its session until the next read or
// monitor sweep.
type Mirror interface {
	Save(ctx context.Context, rec Record) error
	// Get returns (nil, nil) when no record exists for the token.
	Get(ctx context.Context, token string) (*Record, error)
	Delete(ctx context.Context, token string) error
	// List returns all live mirror entries, expired or not.
	List(ctx context.Context) ([]Record, error)
}

// Store is the dual-backend session facade. Writes go to the cookie backend
// and the mirror in the same call; reads prefer cookies and fall back to the
// mirror. Reads check expiry first and clear the record when the window has
// elapsed, so an expired session is indistinguishable from no session.
//
// Store methods never fail observably: backend errors are logged and
// swallowed, degrading reads to absent. Callers treat absent as logged out,
// never as a hard error.
type Store interface {
	Write(ctx context.Context, car Carrier, profile map[string]string, token string)
	ReadToken(ctx context.Context, car Carrier) (string, bool)
	ReadProfile(ctx context.Context, car Carrier) (map[string]string, bool)
	ReadLoginTime(ctx context.Context, car Carrier) (time.Time, bool)
	RemainingMinutes(ctx context.Context, car Carrier) int
	Remaining(ctx context.Context, car Carrier) time.Duration
	IsExpired(ctx context.Context, car Carrier) bool
	IsExpiringSoon(ctx context.Context, car Carrier) bool
	Clear(ctx context.Context, car Carrier)

	// Load is the prune-then-read convenience used by the route guard:
	// it returns the full record iff one exists and is unexpired.
	Load(ctx context.Context, car Carrier) (*Record, bool)
}
