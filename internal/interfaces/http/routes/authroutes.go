package routes

import (
	"github.com/gin-gonic/gin"

	"sdc/internal/interfaces/http/handlers"
	"sdc/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for the session lifecycle routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	SessionAuth *middleware.SessionAuth
	RateLimiter *middleware.RateLimiter // nil when Redis is disabled
}

// SetupAuthRoutes configures login and session lifecycle routes. Apart from
// the profile pair these sit outside the session guard: they must respond
// meaningfully to requests without a valid session.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login", limited(cfg.RateLimiter, cfg.AuthHandler.Login)...)
		auth.POST("/logout", cfg.AuthHandler.Logout)

		auth.GET("/verify", cfg.AuthHandler.Verify)
		auth.GET("/session", cfg.AuthHandler.Status)
		auth.POST("/extend", cfg.AuthHandler.Extend)
		auth.POST("/warning/dismiss", cfg.AuthHandler.DismissWarning)

		auth.GET("/profile", cfg.SessionAuth.RequireSession(), cfg.AuthHandler.GetProfile)
		auth.PUT("/profile", cfg.SessionAuth.RequireSession(), cfg.AuthHandler.UpdateProfile)
	}
}

// limited prepends the rate limiter when one is configured.
func limited(rl *middleware.RateLimiter, handler gin.HandlerFunc) []gin.HandlerFunc {
	if rl == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{rl.Limit(), handler}
}
