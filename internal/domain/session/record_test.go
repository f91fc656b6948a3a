package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordDerivations(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		loginAgo      time.Duration
		wantExpired   bool
		wantSoon      bool
		wantRemaining int
	}{
		{"fresh login", 0, false, false, 60},
		{"half way", 30 * time.Minute, false, false, 30},
		{"four minutes left", 56 * time.Minute, false, true, 4},
		{"exactly five minutes left", 55 * time.Minute, false, true, 5},
		{"under a minute left", 59*time.Minute + 30*time.Second, false, false, 0},
		{"exactly expired", 60 * time.Minute, true, false, 0},
		{"expired an hour ago", 121 * time.Minute, true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord(map[string]string{"name": "Admin"}, "tok", now.Add(-tt.loginAgo))

			assert.Equal(t, tt.wantExpired, rec.IsExpired(now))
			assert.Equal(t, tt.wantSoon, rec.IsExpiringSoon(now))
			assert.Equal(t, tt.wantRemaining, rec.RemainingMinutes(now))
		})
	}
}

func TestRemainingMonotonic(t *testing.T) {
	login := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := NewRecord(nil, "tok", login)

	prev := rec.RemainingMinutes(login)
	for _, step := range []time.Duration{time.Second, time.Minute, 10 * time.Minute, time.Hour, 2 * time.Hour} {
		cur := rec.RemainingMinutes(login.Add(step))
		assert.LessOrEqual(t, cur, prev, "remaining minutes must not increase at +%s", step)
		prev = cur
	}
	assert.Equal(t, 0, rec.RemainingMinutes(login.Add(Duration)))
}

func TestExpiresAt(t *testing.T) {
	login := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := NewRecord(nil, "tok", login)
	assert.Equal(t, login.Add(time.Hour), rec.ExpiresAt())
}
