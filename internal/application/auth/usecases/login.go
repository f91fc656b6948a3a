package usecases

import (
	"context"
	"errors"
	"fmt"

	"sdc/internal/domain/admin"
	"sdc/internal/domain/session"
	sharederrors "sdc/internal/shared/errors"
	"sdc/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Profile          map[string]string
	ExpiresInMinutes int
}

type LoginUseCase struct {
	adminRepo    admin.Repository
	hasher       admin.PasswordHasher
	tokenService TokenService
	store        session.Store
	warningStore WarningStateStore
	logger       logger.Interface
}

func NewLoginUseCase(
	adminRepo admin.Repository,
	hasher admin.PasswordHasher,
	tokenService TokenService,
	store session.Store,
	warningStore WarningStateStore,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
		store:        store,
		warningStore: warningStore,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, car session.Carrier, cmd LoginCommand) (*LoginResult, error) {
	adm, err := uc.adminRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			// Same error as a wrong password so the response does not
			// reveal whether the email exists.
			return nil, sharederrors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get admin by email", "error", err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if err := uc.hasher.Verify(cmd.Password, adm.PasswordHash()); err != nil {
		return nil, sharederrors.NewInvalidCredentialsError()
	}

	token, err := uc.tokenService.Generate(adm.SID())
	if err != nil {
		uc.logger.Errorw("failed to generate session token", "error", err)
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	profile := adm.SessionProfile()
	uc.store.Write(ctx, car, profile, token)

	// Fresh sessions start with the warning armed.
	if err := uc.warningStore.Reset(ctx, token); err != nil {
		uc.logger.Warnw("failed to reset warning state", "error", err)
	}

	uc.logger.Infow("admin logged in", "admin_sid", adm.SID())

	return &LoginResult{
		Profile:          profile,
		ExpiresInMinutes: int(session.Duration.Minutes()),
	}, nil
}
