package usecases

import (
	"context"

	"sdc/internal/domain/session"
	sharederrors "sdc/internal/shared/errors"
	"sdc/internal/shared/logger"
)

type ExtendSessionResult struct {
	RemainingMinutes int
}

// ExtendSessionUseCase restarts the session clock: the stored login time is
// reset to now, giving the full session duration again. The token itself is
// unchanged.
type ExtendSessionUseCase struct {
	store        session.Store
	warningStore WarningStateStore
	logger       logger.Interface
}

func NewExtendSessionUseCase(store session.Store, warningStore WarningStateStore, logger logger.Interface) *ExtendSessionUseCase {
	return &ExtendSessionUseCase{
		store:        store,
		warningStore: warningStore,
		logger:       logger,
	}
}

func (uc *ExtendSessionUseCase) Execute(ctx context.Context, car session.Carrier) (*ExtendSessionResult, error) {
	rec, ok := uc.store.Load(ctx, car)
	if !ok {
		// An expired session cannot be extended; it must be re-established
		// through login.
		return nil, sharederrors.NewSessionExpiredError()
	}

	uc.store.Write(ctx, car, rec.Profile, rec.Token)

	// Re-arm the warning so the next approach to expiry shows it again.
	if err := uc.warningStore.Reset(ctx, rec.Token); err != nil {
		uc.logger.Warnw("failed to reset warning state on extension", "error", err)
	}

	uc.logger.Infow("session extended")

	return &ExtendSessionResult{
		RemainingMinutes: int(session.Duration.Minutes()),
	}, nil
}
