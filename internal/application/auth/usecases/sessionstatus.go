package usecases

import (
	"context"
	"time"

	"sdc/internal/domain/session"
	"sdc/internal/shared/logger"
)

type SessionStatusResult struct {
	Active           bool
	Profile          map[string]string
	LoginAt          time.Time
	ExpiresAt        time.Time
	RemainingMinutes int
	// ShowWarning is set inside the warning window unless the admin has
	// dismissed the warning for this session.
	ShowWarning bool
}

type SessionStatusUseCase struct {
	store        session.Store
	warningStore WarningStateStore
	logger       logger.Interface
}

func NewSessionStatusUseCase(store session.Store, warningStore WarningStateStore, logger logger.Interface) *SessionStatusUseCase {
	return &SessionStatusUseCase{
		store:        store,
		warningStore: warningStore,
		logger:       logger,
	}
}

func (uc *SessionStatusUseCase) Execute(ctx context.Context, car session.Carrier) *SessionStatusResult {
	rec, ok := uc.store.Load(ctx, car)
	if !ok {
		return &SessionStatusResult{Active: false}
	}

	// Derivations go through the store so the same clock that pruned the
	// record on Load also computes the remaining window.
	result := &SessionStatusResult{
		Active:           true,
		Profile:          rec.Profile,
		LoginAt:          rec.LoginAt,
		ExpiresAt:        rec.ExpiresAt(),
		RemainingMinutes: uc.store.RemainingMinutes(ctx, car),
	}

	if uc.store.IsExpiringSoon(ctx, car) {
		dismissed, err := uc.warningStore.IsDismissed(ctx, rec.Token)
		if err != nil {
			// Show the warning when the dismissal state is unreadable.
			uc.logger.Warnw("failed to read warning state", "error", err)
		}
		result.ShowWarning = !dismissed
	}

	return result
}
