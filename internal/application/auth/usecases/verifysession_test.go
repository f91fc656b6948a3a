package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc/internal/domain/admin"
	sharederrors "sdc/internal/shared/errors"
	"sdc/internal/shared/logger"
)

func TestVerifySessionUseCase(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	adm := mustAdmin("Asha", "asha@example.com", "hashed")

	okRepo := &mockAdminRepo{
		getBySIDFunc: func(_ context.Context, _ string) (*admin.Admin, error) {
			return adm, nil
		},
	}
	okToken := &mockTokenService{
		verifyFunc: func(_ string) (string, error) { return adm.SID(), nil },
	}

	t.Run("no session fails with expiry rejection", func(t *testing.T) {
		store := newFakeStore(now)
		uc := NewVerifySessionUseCase(okRepo, okToken, store, logger.NewLogger())

		_, err := uc.Execute(context.Background(), nil, VerifySessionCommand{})

		require.Error(t, err)
		assert.True(t, sharederrors.IsAuthRejection(err))
	})

	t.Run("valid session verifies against server", func(t *testing.T) {
		store := newFakeStore(now)
		store.Write(context.Background(), nil, adm.SessionProfile(), "tok-1")
		uc := NewVerifySessionUseCase(okRepo, okToken, store, logger.NewLogger())

		result, err := uc.Execute(context.Background(), nil, VerifySessionCommand{})

		require.NoError(t, err)
		assert.True(t, result.ServerVerified)
		assert.Equal(t, adm.SessionProfile(), result.Profile)
		assert.Equal(t, 60, result.RemainingMinutes)
	})

	t.Run("skip server verification stays local", func(t *testing.T) {
		repo := &mockAdminRepo{
			getBySIDFunc: func(_ context.Context, _ string) (*admin.Admin, error) {
				t.Fatal("admin lookup must not run when verification is skipped")
				return nil, nil
			},
		}
		store := newFakeStore(now)
		store.Write(context.Background(), nil, adm.SessionProfile(), "tok-1")
		uc := NewVerifySessionUseCase(repo, okToken, store, logger.NewLogger())

		result, err := uc.Execute(context.Background(), nil, VerifySessionCommand{SkipServerVerification: true})

		require.NoError(t, err)
		assert.False(t, result.ServerVerified)
	})

	t.Run("forged token fails closed and clears session", func(t *testing.T) {
		badToken := &mockTokenService{
			verifyFunc: func(_ string) (string, error) { return "", errors.New("signature mismatch") },
		}
		store := newFakeStore(now)
		store.Write(context.Background(), nil, adm.SessionProfile(), "tok-forged")
		uc := NewVerifySessionUseCase(okRepo, badToken, store, logger.NewLogger())

		_, err := uc.Execute(context.Background(), nil, VerifySessionCommand{})

		require.Error(t, err)
		assert.True(t, sharederrors.IsAuthRejection(err))
		assert.Nil(t, store.rec)
	})

	t.Run("deleted admin fails closed and clears session", func(t *testing.T) {
		repo := &mockAdminRepo{
			getBySIDFunc: func(_ context.Context, _ string) (*admin.Admin, error) {
				return nil, admin.ErrAdminNotFound
			},
		}
		store := newFakeStore(now)
		store.Write(context.Background(), nil, adm.SessionProfile(), "tok-1")
		uc := NewVerifySessionUseCase(repo, okToken, store, logger.NewLogger())

		_, err := uc.Execute(context.Background(), nil, VerifySessionCommand{})

		require.Error(t, err)
		assert.True(t, sharederrors.IsAuthRejection(err))
		assert.Nil(t, store.rec)
	})

	t.Run("database outage fails open and keeps session", func(t *testing.T) {
		repo := &mockAdminRepo{
			getBySIDFunc: func(_ context.Context, _ string) (*admin.Admin, error) {
				return nil, errors.New("connection refused")
			},
		}
		store := newFakeStore(now)
		store.Write(context.Background(), nil, adm.SessionProfile(), "tok-1")
		uc := NewVerifySessionUseCase(repo, okToken, store, logger.NewLogger())

		result, err := uc.Execute(context.Background(), nil, VerifySessionCommand{})

		require.NoError(t, err)
		assert.False(t, result.ServerVerified)
		assert.NotNil(t, store.rec)
	})

	t.Run("expired session reads absent and rejects", func(t *testing.T) {
		store := newFakeStore(now)
		store.Write(context.Background(), nil, adm.SessionProfile(), "tok-1")
		store.now = now.Add(61 * time.Minute)
		uc := NewVerifySessionUseCase(okRepo, okToken, store, logger.NewLogger())

		_, err := uc.Execute(context.Background(), nil, VerifySessionCommand{})

		require.Error(t, err)
		assert.True(t, sharederrors.IsAuthRejection(err))
		assert.Nil(t, store.rec)
	})
}
