package usecases

import (
	"context"
	"errors"

	"sdc/internal/domain/admin"
	"sdc/internal/domain/session"
	sharederrors "sdc/internal/shared/errors"
	"sdc/internal/shared/logger"
)

type VerifySessionCommand struct {
	// SkipServerVerification limits the check to locally stored state:
	// presence and expiry only. Used on paths where a round trip to the
	// admin table per request would be wasteful.
	SkipServerVerification bool
}

type VerifySessionResult struct {
	Profile          map[string]string
	Token            string
	RemainingMinutes int
	ExpiringSoon     bool
	// ServerVerified is false when verification was skipped or the admin
	// lookup could not be completed.
	ServerVerified bool
}

// VerifySessionUseCase checks whether a valid session exists. Rejections
// (bad token signature, admin deleted) clear the session and fail closed;
// infrastructure errors keep a locally valid session and fail open.
type VerifySessionUseCase struct {
	adminRepo    admin.Repository
	tokenService TokenService
	store        session.Store
	logger       logger.Interface
}

func NewVerifySessionUseCase(
	adminRepo admin.Repository,
	tokenService TokenService,
	store session.Store,
	logger logger.Interface,
) *VerifySessionUseCase {
	return &VerifySessionUseCase{
		adminRepo:    adminRepo,
		tokenService: tokenService,
		store:        store,
		logger:       logger,
	}
}

func (uc *VerifySessionUseCase) Execute(ctx context.Context, car session.Carrier, cmd VerifySessionCommand) (*VerifySessionResult, error) {
	rec, ok := uc.store.Load(ctx, car)
	if !ok {
		return nil, sharederrors.NewSessionExpiredError()
	}

	result := &VerifySessionResult{
		Profile:          rec.Profile,
		Token:            rec.Token,
		RemainingMinutes: uc.store.RemainingMinutes(ctx, car),
		ExpiringSoon:     uc.store.IsExpiringSoon(ctx, car),
	}

	if cmd.SkipServerVerification {
		return result, nil
	}

	adminSID, err := uc.tokenService.Verify(rec.Token)
	if err != nil {
		// A token we did not mint: reject and clear.
		uc.store.Clear(ctx, car)
		uc.logger.Warnw("session token failed verification", "error", err)
		return nil, sharederrors.NewTokenInvalidError()
	}

	if _, err := uc.adminRepo.GetBySID(ctx, adminSID); err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			// The account is gone; the session cannot stand.
			uc.store.Clear(ctx, car)
			return nil, sharederrors.NewSessionInvalidError("admin account no longer exists")
		}
		// Lookup failed for operational reasons: keep the session and
		// report it as locally valid but unverified.
		uc.logger.Warnw("admin lookup failed during session verification, keeping session", "error", err)
		return result, nil
	}

	result.ServerVerified = true
	return result, nil
}
