package usecases

import (
	"context"

	"sdc/internal/domain/session"
	"sdc/internal/shared/logger"
)

type LogoutUseCase struct {
	store        session.Store
	warningStore WarningStateStore
	logger       logger.Interface
}

func NewLogoutUseCase(store session.Store, warningStore WarningStateStore, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		store:        store,
		warningStore: warningStore,
		logger:       logger,
	}
}

// Execute clears the session from both backends. It never fails: logging
// out with no session is a no-op.
func (uc *LogoutUseCase) Execute(ctx context.Context, car session.Carrier) {
	token, ok := uc.store.ReadToken(ctx, car)
	if ok {
		if err := uc.warningStore.Reset(ctx, token); err != nil {
			uc.logger.Warnw("failed to reset warning state on logout", "error", err)
		}
	}

	uc.store.Clear(ctx, car)
	uc.logger.Infow("admin logged out")
}
