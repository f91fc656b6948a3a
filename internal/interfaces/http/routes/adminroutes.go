package routes

import (
	"github.com/gin-gonic/gin"

	"sdc/internal/interfaces/http/handlers"
	"sdc/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the guarded admin panel routes.
type AdminRouteConfig struct {
	ContentHandler *handlers.ContentHandler
	IntakeHandler  *handlers.IntakeHandler
	SessionAuth    *middleware.SessionAuth
}

// SetupAdminRoutes configures the admin panel routes. Every route in this
// group requires an active session.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin", cfg.SessionAuth.RequireSession())

	testimonials := admin.Group("/testimonials")
	{
		testimonials.GET("", cfg.ContentHandler.ListTestimonials)
		testimonials.POST("", cfg.ContentHandler.CreateTestimonial)
		testimonials.PUT("/:id", cfg.ContentHandler.UpdateTestimonial)
		testimonials.DELETE("/:id", cfg.ContentHandler.DeleteTestimonial)
	}

	people := admin.Group("/people")
	{
		people.GET("", cfg.ContentHandler.ListPeople)
		people.POST("", cfg.ContentHandler.CreatePerson)
		people.PUT("/:id", cfg.ContentHandler.UpdatePerson)
		people.DELETE("/:id", cfg.ContentHandler.DeletePerson)
	}

	projects := admin.Group("/projects")
	{
		projects.GET("", cfg.ContentHandler.ListProjects)
		projects.GET("/:id", cfg.ContentHandler.GetProject)
		projects.POST("", cfg.ContentHandler.CreateProject)
		projects.PUT("/:id", cfg.ContentHandler.UpdateProject)
		projects.DELETE("/:id", cfg.ContentHandler.DeleteProject)
	}

	faq := admin.Group("/faq")
	{
		faq.GET("", cfg.ContentHandler.ListFAQs)
		faq.POST("", cfg.ContentHandler.CreateFAQ)
		faq.PUT("/:id", cfg.ContentHandler.UpdateFAQ)
		faq.DELETE("/:id", cfg.ContentHandler.DeleteFAQ)
	}

	gallery := admin.Group("/gallery")
	{
		gallery.GET("", cfg.ContentHandler.ListGalleryImages)
		gallery.POST("", cfg.ContentHandler.CreateGalleryImage)
		gallery.PUT("/:id", cfg.ContentHandler.UpdateGalleryImage)
		gallery.DELETE("/:id", cfg.ContentHandler.DeleteGalleryImage)
	}

	contacts := admin.Group("/contacts")
	{
		contacts.GET("", cfg.IntakeHandler.ListContacts)
		contacts.PATCH("/:id/read", cfg.IntakeHandler.MarkContactRead)
		contacts.DELETE("/:id", cfg.IntakeHandler.DeleteContact)
	}

	applications := admin.Group("/applications")
	{
		applications.GET("", cfg.IntakeHandler.ListApplications)
		applications.GET("/:id", cfg.IntakeHandler.GetApplication)
		applications.PATCH("/:id/status", cfg.IntakeHandler.UpdateApplicationStatus)
		applications.DELETE("/:id", cfg.IntakeHandler.DeleteApplication)
	}
}
