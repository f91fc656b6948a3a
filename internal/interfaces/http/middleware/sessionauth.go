package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sdc/internal/application/auth/usecases"
	"sdc/internal/infrastructure/sessionstore"
	"sdc/internal/shared/config"
	"sdc/internal/shared/constants"
	sharederrors "sdc/internal/shared/errors"
	"sdc/internal/shared/utils"
)

// SessionAuth guards admin routes. Each request gets its own cookie carrier,
// so concurrent requests never share mutable session state.
type SessionAuth struct {
	verify    *usecases.VerifySessionUseCase
	cookieCfg config.CookieConfig
	loginPath string
}

func NewSessionAuth(verify *usecases.VerifySessionUseCase, cookieCfg config.CookieConfig, loginPath string) *SessionAuth {
	return &SessionAuth{
		verify:    verify,
		cookieCfg: cookieCfg,
		loginPath: loginPath,
	}
}

// RequireSession rejects requests without a locally valid session. The check
// is local only (presence and expiry); full server-side verification runs on
// the dedicated verify endpoint to keep per-request cost down.
func (m *SessionAuth) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.verify == nil {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "Session layer is not ready")
			c.Abort()
			return
		}

		carrier := sessionstore.NewGinCarrier(c, m.cookieCfg)
		result, err := m.verify.Execute(c.Request.Context(), carrier, usecases.VerifySessionCommand{
			SkipServerVerification: true,
		})
		if err != nil {
			status := http.StatusUnauthorized
			if appErr := sharederrors.GetAppError(err); appErr != nil && appErr.Code == http.StatusForbidden {
				status = http.StatusForbidden
			}
			utils.UnauthorizedRedirectResponse(c, status, "Session expired, please log in again", m.loginPath)
			c.Abort()
			return
		}

		if sid, ok := result.Profile["id"]; ok {
			c.Set(constants.ContextKeyAdminSID, sid)
		}
		c.Set(constants.ContextKeyAdminProfile, result.Profile)
		c.Set(constants.ContextKeySessionToken, result.Token)

		c.Next()
	}
}
