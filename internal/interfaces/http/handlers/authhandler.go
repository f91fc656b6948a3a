package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sdc/internal/application/auth/usecases"
	"sdc/internal/infrastructure/sessionstore"
	"sdc/internal/shared/biztime"
	"sdc/internal/shared/config"
	"sdc/internal/shared/constants"
	sharederrors "sdc/internal/shared/errors"
	"sdc/internal/shared/logger"
	"sdc/internal/shared/utils"
)

type AuthHandler struct {
	loginUseCase         *usecases.LoginUseCase
	logoutUseCase        *usecases.LogoutUseCase
	verifyUseCase        *usecases.VerifySessionUseCase
	statusUseCase        *usecases.SessionStatusUseCase
	extendUseCase        *usecases.ExtendSessionUseCase
	dismissUseCase       *usecases.DismissWarningUseCase
	getProfileUseCase    *usecases.GetProfileUseCase
	updateProfileUseCase *usecases.UpdateProfileUseCase
	cookieConfig         config.CookieConfig
	loginPath            string
	logger               logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	logoutUC *usecases.LogoutUseCase,
	verifyUC *usecases.VerifySessionUseCase,
	statusUC *usecases.SessionStatusUseCase,
	extendUC *usecases.ExtendSessionUseCase,
	dismissUC *usecases.DismissWarningUseCase,
	getProfileUC *usecases.GetProfileUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	cookieConfig config.CookieConfig,
	loginPath string,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:         loginUC,
		logoutUseCase:        logoutUC,
		verifyUseCase:        verifyUC,
		statusUseCase:        statusUC,
		extendUseCase:        extendUC,
		dismissUseCase:       dismissUC,
		getProfileUseCase:    getProfileUC,
		updateProfileUseCase: updateProfileUC,
		cookieConfig:         cookieConfig,
		loginPath:            loginPath,
		logger:               logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
	ContactNo string `json:"contact_no"`
}

func (h *AuthHandler) carrier(c *gin.Context) *sessionstore.GinCarrier {
	return sessionstore.NewGinCarrier(c, h.cookieConfig)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), h.carrier(c), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "email", req.Email, "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"profile":            result.Profile,
		"expires_in_minutes": result.ExpiresInMinutes,
	})
}

// Logout always succeeds, even without an active session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.logoutUseCase.Execute(c.Request.Context(), h.carrier(c))
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

// Verify performs a full session check including the server round trip.
// Rejections clear the session and carry the login redirect hint.
func (h *AuthHandler) Verify(c *gin.Context) {
	result, err := h.verifyUseCase.Execute(c.Request.Context(), h.carrier(c), usecases.VerifySessionCommand{})
	if err != nil {
		h.respondUnauthorized(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "session valid", gin.H{
		"profile":           result.Profile,
		"remaining_minutes": result.RemainingMinutes,
		"expiring_soon":     result.ExpiringSoon,
		"server_verified":   result.ServerVerified,
	})
}

func (h *AuthHandler) Status(c *gin.Context) {
	result := h.statusUseCase.Execute(c.Request.Context(), h.carrier(c))

	if !result.Active {
		utils.SuccessResponse(c, http.StatusOK, "no active session", gin.H{
			"active": false,
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "session active", gin.H{
		"active":            true,
		"profile":           result.Profile,
		"login_at":          biztime.FormatMetadataTime(result.LoginAt),
		"expires_at":        biztime.FormatMetadataTime(result.ExpiresAt),
		"remaining_minutes": result.RemainingMinutes,
		"show_warning":      result.ShowWarning,
	})
}

func (h *AuthHandler) Extend(c *gin.Context) {
	result, err := h.extendUseCase.Execute(c.Request.Context(), h.carrier(c))
	if err != nil {
		h.respondUnauthorized(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "session extended", gin.H{
		"remaining_minutes": result.RemainingMinutes,
	})
}

func (h *AuthHandler) DismissWarning(c *gin.Context) {
	if err := h.dismissUseCase.Execute(c.Request.Context(), h.carrier(c)); err != nil {
		h.respondUnauthorized(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "warning dismissed", nil)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	adminSID := c.GetString(constants.ContextKeyAdminSID)
	if adminSID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.getProfileUseCase.Execute(c.Request.Context(), adminSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profileData(result))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	adminSID := c.GetString(constants.ContextKeyAdminSID)
	if adminSID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateProfileCommand{
		Name:      req.Name,
		Email:     req.Email,
		ContactNo: req.ContactNo,
	}

	result, err := h.updateProfileUseCase.Execute(c.Request.Context(), adminSID, cmd)
	if err != nil {
		h.logger.Errorw("profile update failed", "error", err, "admin_sid", adminSID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", profileData(result))
}

func profileData(r *usecases.ProfileResult) gin.H {
	return gin.H{
		"id":         r.SID,
		"name":       r.Name,
		"email":      r.Email,
		"contact_no": r.ContactNo,
	}
}

func (h *AuthHandler) respondUnauthorized(c *gin.Context, err error) {
	if sharederrors.IsAuthRejection(err) {
		utils.UnauthorizedRedirectResponse(c, http.StatusUnauthorized, err.Error(), h.loginPath)
		return
	}
	utils.ErrorResponseWithError(c, err)
}
