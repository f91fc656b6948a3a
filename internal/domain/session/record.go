// Package session defines the admin session record and the contracts for its
// redundant persistence. A session is a fixed one-hour window starting at
// login; expiry is always computed from the stored login time, never stored.
package session

import (
	"time"
)

const (
	// Duration is the fixed session window. This is an absolute window from
	// login, not an idle timeout.
	Duration = time.Hour

	// WarningWindow is how long before expiry the admin UI starts warning.
	WarningWindow = 5 * time.Minute
)

// Record is the persisted session tuple. Token is an opaque marker of a
// logged-in session; Profile is the last known snapshot of the admin's
// attributes and is not guaranteed fresh; LoginAt is set exactly once per
// login or explicit extension.
type Record struct {
	Token   string
	Profile map[string]string
	LoginAt time.Time
}

// NewRecord builds a record stamped with the current login time.
func NewRecord(profile map[string]string, token string, now time.Time) Record {
	return Record{
		Token:   token,
		Profile: profile,
		LoginAt: now.UTC(),
	}
}

// ExpiresAt returns the absolute expiry time.
func (r Record) ExpiresAt() time.Time {
	return r.LoginAt.Add(Duration)
}

// Remaining returns the time left before expiry, never negative.
func (r Record) Remaining(now time.Time) time.Duration {
	rem := r.ExpiresAt().Sub(now)
	if rem < 0 {
		return 0
	}
	return rem
}

// RemainingMinutes returns whole minutes left before expiry, clamped to 0.
func (r Record) RemainingMinutes(now time.Time) int {
	return int(r.Remaining(now) / time.Minute)
}

// IsExpired reports whether the session window has elapsed.
func (r Record) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt())
}

// IsExpiringSoon reports whether the session is inside the warning window:
// still alive, with five or fewer whole minutes remaining.
func (r Record) IsExpiringSoon(now time.Time) bool {
	m := r.RemainingMinutes(now)
	return m > 0 && m <= int(WarningWindow/time.Minute)
}
