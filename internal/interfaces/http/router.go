package http

import (
	"github.com/gin-gonic/gin"

	"sdc/internal/infrastructure/config"
	"sdc/internal/interfaces/http/middleware"
	"sdc/internal/interfaces/http/routes"
	"sdc/internal/shared/logger"
	"sdc/internal/shared/utils"
)

// Router owns the Gin engine and attaches the route groups built from the
// container's handlers.
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	return &Router{
		engine:    engine,
		container: container,
	}
}

// SetupRoutes registers all route groups.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "ok", nil)
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.container.authHandler,
		SessionAuth: r.container.sessionAuth,
		RateLimiter: r.container.rateLimiter,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		ContentHandler: r.container.contentHandler,
		IntakeHandler:  r.container.intakeHandler,
		SessionAuth:    r.container.sessionAuth,
	})

	routes.SetupPublicRoutes(r.engine, &routes.PublicRouteConfig{
		ContentHandler: r.container.contentHandler,
		IntakeHandler:  r.container.intakeHandler,
		RateLimiter:    r.container.rateLimiter,
	})
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
