package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharederrors "sdc/internal/shared/errors"
	"sdc/internal/shared/logger"
)

func TestSessionStatusUseCase(t *testing.T) {
	loginAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	profile := map[string]string{"id": "adm_1", "name": "Asha"}

	t.Run("no session reports inactive", func(t *testing.T) {
		uc := NewSessionStatusUseCase(newFakeStore(loginAt), newFakeWarningStore(), logger.NewLogger())

		result := uc.Execute(context.Background(), nil)

		assert.False(t, result.Active)
		assert.Zero(t, result.RemainingMinutes)
	})

	t.Run("fresh session has no warning", func(t *testing.T) {
		store := newFakeStore(loginAt)
		store.Write(context.Background(), nil, profile, "tok-1")
		uc := NewSessionStatusUseCase(store, newFakeWarningStore(), logger.NewLogger())

		result := uc.Execute(context.Background(), nil)

		assert.True(t, result.Active)
		assert.Equal(t, 60, result.RemainingMinutes)
		assert.False(t, result.ShowWarning)
		assert.Equal(t, loginAt.Add(time.Hour), result.ExpiresAt)
	})

	t.Run("warning shows inside the window", func(t *testing.T) {
		store := newFakeStore(loginAt)
		store.Write(context.Background(), nil, profile, "tok-1")
		store.now = loginAt.Add(56 * time.Minute)
		uc := NewSessionStatusUseCase(store, newFakeWarningStore(), logger.NewLogger())

		result := uc.Execute(context.Background(), nil)

		assert.True(t, result.Active)
		assert.Equal(t, 4, result.RemainingMinutes)
		assert.True(t, result.ShowWarning)
	})

	t.Run("derivations follow the store clock", func(t *testing.T) {
		// Records far in the past still report their remaining window
		// relative to the store's clock, not the wall clock.
		oldLogin := time.Date(2001, 6, 15, 9, 0, 0, 0, time.UTC)
		store := newFakeStore(oldLogin)
		store.Write(context.Background(), nil, profile, "tok-1")
		store.now = oldLogin.Add(30 * time.Minute)
		uc := NewSessionStatusUseCase(store, newFakeWarningStore(), logger.NewLogger())

		result := uc.Execute(context.Background(), nil)

		assert.True(t, result.Active)
		assert.Equal(t, 30, result.RemainingMinutes)
		assert.False(t, result.ShowWarning)
	})

	t.Run("dismissed warning stays hidden", func(t *testing.T) {
		store := newFakeStore(loginAt)
		store.Write(context.Background(), nil, profile, "tok-1")
		store.now = loginAt.Add(56 * time.Minute)
		warnings := newFakeWarningStore()
		warnings.dismissed["tok-1"] = true
		uc := NewSessionStatusUseCase(store, warnings, logger.NewLogger())

		result := uc.Execute(context.Background(), nil)

		assert.True(t, result.Active)
		assert.False(t, result.ShowWarning)
	})
}

func TestExtendSessionUseCase(t *testing.T) {
	loginAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	profile := map[string]string{"id": "adm_1"}

	t.Run("extension restarts the clock and re-arms the warning", func(t *testing.T) {
		store := newFakeStore(loginAt)
		store.Write(context.Background(), nil, profile, "tok-1")
		store.now = loginAt.Add(56 * time.Minute)
		warnings := newFakeWarningStore()
		warnings.dismissed["tok-1"] = true

		uc := NewExtendSessionUseCase(store, warnings, logger.NewLogger())
		result, err := uc.Execute(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 60, result.RemainingMinutes)
		assert.Equal(t, store.now, store.rec.LoginAt)
		assert.Equal(t, "tok-1", store.rec.Token)
		assert.False(t, warnings.dismissed["tok-1"])
	})

	t.Run("expired session cannot be extended", func(t *testing.T) {
		store := newFakeStore(loginAt)
		store.Write(context.Background(), nil, profile, "tok-1")
		store.now = loginAt.Add(61 * time.Minute)

		uc := NewExtendSessionUseCase(store, newFakeWarningStore(), logger.NewLogger())
		_, err := uc.Execute(context.Background(), nil)

		require.Error(t, err)
		assert.True(t, sharederrors.IsAuthRejection(err))
	})
}

func TestDismissWarningUseCase(t *testing.T) {
	loginAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("dismissal is recorded for the session token", func(t *testing.T) {
		store := newFakeStore(loginAt)
		store.Write(context.Background(), nil, map[string]string{"id": "adm_1"}, "tok-1")
		store.now = loginAt.Add(56 * time.Minute)
		warnings := newFakeWarningStore()

		uc := NewDismissWarningUseCase(store, warnings, logger.NewLogger())
		err := uc.Execute(context.Background(), nil)

		require.NoError(t, err)
		assert.True(t, warnings.dismissed["tok-1"])
		// TTL is sized by the store clock: 4 minutes of session left.
		assert.Equal(t, 4*time.Minute, warnings.ttls["tok-1"])
	})

	t.Run("no session rejects", func(t *testing.T) {
		uc := NewDismissWarningUseCase(newFakeStore(loginAt), newFakeWarningStore(), logger.NewLogger())

		err := uc.Execute(context.Background(), nil)

		require.Error(t, err)
		assert.True(t, sharederrors.IsAuthRejection(err))
	})
}
