package usecases

import (
	"context"

	"sdc/internal/domain/session"
	sharederrors "sdc/internal/shared/errors"
	"sdc/internal/shared/logger"
)

// DismissWarningUseCase suppresses the expiry warning for the rest of the
// current session. The dismissal dies with the session.
type DismissWarningUseCase struct {
	store        session.Store
	warningStore WarningStateStore
	logger       logger.Interface
}

func NewDismissWarningUseCase(store session.Store, warningStore WarningStateStore, logger logger.Interface) *DismissWarningUseCase {
	return &DismissWarningUseCase{
		store:        store,
		warningStore: warningStore,
		logger:       logger,
	}
}

func (uc *DismissWarningUseCase) Execute(ctx context.Context, car session.Carrier) error {
	rec, ok := uc.store.Load(ctx, car)
	if !ok {
		return sharederrors.NewSessionExpiredError()
	}

	// The dismissal lives exactly as long as the session; the store clock
	// that validated the record also sizes the TTL.
	ttl := uc.store.Remaining(ctx, car)
	if err := uc.warningStore.Dismiss(ctx, rec.Token, ttl); err != nil {
		uc.logger.Warnw("failed to store warning dismissal", "error", err)
		// Non-fatal: worst case the warning shows again.
	}
	return nil
}
