package usecases

import (
	"context"
	"errors"
	"fmt"

	"sdc/internal/domain/admin"
	sharederrors "sdc/internal/shared/errors"
	"sdc/internal/shared/logger"
)

type ProfileResult struct {
	SID       string
	Name      string
	Email     string
	ContactNo string
}

type GetProfileUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewGetProfileUseCase(adminRepo admin.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{adminRepo: adminRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, adminSID string) (*ProfileResult, error) {
	adm, err := uc.adminRepo.GetBySID(ctx, adminSID)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return nil, sharederrors.NewSessionInvalidError("admin account no longer exists")
		}
		uc.logger.Errorw("failed to get admin profile", "error", err)
		return nil, fmt.Errorf("failed to get admin profile: %w", err)
	}

	return &ProfileResult{
		SID:       adm.SID(),
		Name:      adm.Name(),
		Email:     adm.Email(),
		ContactNo: adm.ContactNo(),
	}, nil
}

type UpdateProfileCommand struct {
	Name      string
	Email     string
	ContactNo string
}

// UpdateProfileUseCase updates the stored admin profile. The session copy
// of the profile is not rewritten: writing the store would restamp the
// login time and silently extend the session. The session copy catches up
// at the next login.
type UpdateProfileUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewUpdateProfileUseCase(adminRepo admin.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, adminSID string, cmd UpdateProfileCommand) (*ProfileResult, error) {
	adm, err := uc.adminRepo.GetBySID(ctx, adminSID)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return nil, sharederrors.NewSessionInvalidError("admin account no longer exists")
		}
		uc.logger.Errorw("failed to get admin for profile update", "error", err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if err := adm.UpdateProfile(cmd.Name, cmd.Email, cmd.ContactNo); err != nil {
		return nil, sharederrors.NewValidationError(err.Error())
	}

	if err := uc.adminRepo.Update(ctx, adm); err != nil {
		uc.logger.Errorw("failed to update admin profile", "error", err)
		return nil, fmt.Errorf("failed to update admin profile: %w", err)
	}

	uc.logger.Infow("admin profile updated", "admin_sid", adm.SID())

	return &ProfileResult{
		SID:       adm.SID(),
		Name:      adm.Name(),
		Email:     adm.Email(),
		ContactNo: adm.ContactNo(),
	}, nil
}
