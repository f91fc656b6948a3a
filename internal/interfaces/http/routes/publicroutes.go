package routes

import (
	"github.com/gin-gonic/gin"

	"sdc/internal/interfaces/http/handlers"
	"sdc/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for the unauthenticated site routes.
type PublicRouteConfig struct {
	ContentHandler *handlers.ContentHandler
	IntakeHandler  *handlers.IntakeHandler
	RateLimiter    *middleware.RateLimiter // nil when Redis is disabled
}

// SetupPublicRoutes configures the read-only content routes and the two
// public submission endpoints consumed by the site frontend.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	public := engine.Group("/api/public")
	{
		public.GET("/testimonials", cfg.ContentHandler.ListTestimonials)
		public.GET("/people", cfg.ContentHandler.ListPeople)
		public.GET("/projects", cfg.ContentHandler.ListProjects)
		public.GET("/projects/:id", cfg.ContentHandler.GetProject)
		public.GET("/faq", cfg.ContentHandler.ListFAQs)
		public.GET("/gallery", cfg.ContentHandler.ListGalleryImages)

		public.POST("/contact", limited(cfg.RateLimiter, cfg.IntakeHandler.SubmitContact)...)
		public.POST("/applications", limited(cfg.RateLimiter, cfg.IntakeHandler.SubmitApplication)...)
	}
}
