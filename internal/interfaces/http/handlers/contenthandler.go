package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sdc/internal/application/content"
	contentdomain "sdc/internal/domain/content"
	"sdc/internal/shared/id"
	"sdc/internal/shared/logger"
	"sdc/internal/shared/utils"
)

// ContentHandler exposes CRUD endpoints for the site's managed content:
// testimonials, people, projects, FAQs and the photo gallery. Admin routes
// mutate; the public routes only read.
type ContentHandler struct {
	service *content.Service
	logger  logger.Interface
}

func NewContentHandler(service *content.Service, logger logger.Interface) *ContentHandler {
	return &ContentHandler{service: service, logger: logger}
}

func (h *ContentHandler) respondContentError(c *gin.Context, err error) {
	if err == contentdomain.ErrNotFound {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	utils.ErrorResponseWithError(c, err)
}

// sidParam validates the :id path parameter against the expected prefix
// and responds with a validation error on mismatch.
func sidParam(c *gin.Context, prefix, entityName string) (string, bool) {
	sid, err := utils.ParseSIDParam(c, "id", prefix, entityName)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return "", false
	}
	return sid, true
}

// --- Testimonials ---

func (h *ContentHandler) CreateTestimonial(c *gin.Context) {
	var cmd content.CreateTestimonialCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.service.CreateTestimonial(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("create testimonial failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto)
}

func (h *ContentHandler) UpdateTestimonial(c *gin.Context) {
	var cmd content.UpdateTestimonialCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sid, ok := sidParam(c, id.PrefixTestimonial, "testimonial")
	if !ok {
		return
	}

	dto, err := h.service.UpdateTestimonial(c.Request.Context(), sid, cmd)
	if err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "testimonial updated", dto)
}

func (h *ContentHandler) DeleteTestimonial(c *gin.Context) {
	sid, ok := sidParam(c, id.PrefixTestimonial, "testimonial")
	if !ok {
		return
	}

	if err := h.service.DeleteTestimonial(c.Request.Context(), sid); err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "testimonial deleted", nil)
}

func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	list, err := h.service.ListTestimonials(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", list)
}

// --- People ---

func (h *ContentHandler) CreatePerson(c *gin.Context) {
	var cmd content.CreatePersonCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.service.CreatePerson(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("create person failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto)
}

func (h *ContentHandler) UpdatePerson(c *gin.Context) {
	var cmd content.UpdatePersonCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sid, ok := sidParam(c, id.PrefixPerson, "person")
	if !ok {
		return
	}

	dto, err := h.service.UpdatePerson(c.Request.Context(), sid, cmd)
	if err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "person updated", dto)
}

func (h *ContentHandler) DeletePerson(c *gin.Context) {
	sid, ok := sidParam(c, id.PrefixPerson, "person")
	if !ok {
		return
	}

	if err := h.service.DeletePerson(c.Request.Context(), sid); err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "person deleted", nil)
}

// ListPeople filters by the optional category query parameter.
func (h *ContentHandler) ListPeople(c *gin.Context) {
	list, err := h.service.ListPeople(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", list)
}

// --- Projects ---

func (h *ContentHandler) CreateProject(c *gin.Context) {
	var cmd content.CreateProjectCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.service.CreateProject(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("create project failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto)
}

func (h *ContentHandler) UpdateProject(c *gin.Context) {
	var cmd content.UpdateProjectCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sid, ok := sidParam(c, id.PrefixProject, "project")
	if !ok {
		return
	}

	dto, err := h.service.UpdateProject(c.Request.Context(), sid, cmd)
	if err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "project updated", dto)
}

func (h *ContentHandler) DeleteProject(c *gin.Context) {
	sid, ok := sidParam(c, id.PrefixProject, "project")
	if !ok {
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), sid); err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "project deleted", nil)
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	sid, ok := sidParam(c, id.PrefixProject, "project")
	if !ok {
		return
	}

	dto, err := h.service.GetProject(c.Request.Context(), sid)
	if err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	list, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", list)
}

// --- FAQs ---

func (h *ContentHandler) CreateFAQ(c *gin.Context) {
	var cmd content.CreateFAQCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.service.CreateFAQ(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("create faq failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto)
}

func (h *ContentHandler) UpdateFAQ(c *gin.Context) {
	var cmd content.UpdateFAQCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sid, ok := sidParam(c, id.PrefixFAQ, "faq")
	if !ok {
		return
	}

	dto, err := h.service.UpdateFAQ(c.Request.Context(), sid, cmd)
	if err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "faq updated", dto)
}

func (h *ContentHandler) DeleteFAQ(c *gin.Context) {
	sid, ok := sidParam(c, id.PrefixFAQ, "faq")
	if !ok {
		return
	}

	if err := h.service.DeleteFAQ(c.Request.Context(), sid); err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "faq deleted", nil)
}

func (h *ContentHandler) ListFAQs(c *gin.Context) {
	list, err := h.service.ListFAQs(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", list)
}

// --- Gallery ---

func (h *ContentHandler) CreateGalleryImage(c *gin.Context) {
	var cmd content.CreateGalleryImageCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.service.CreateGalleryImage(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("create gallery image failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto)
}

func (h *ContentHandler) UpdateGalleryImage(c *gin.Context) {
	var cmd content.UpdateGalleryImageCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sid, ok := sidParam(c, id.PrefixGalleryImg, "gallery image")
	if !ok {
		return
	}

	dto, err := h.service.UpdateGalleryImage(c.Request.Context(), sid, cmd)
	if err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "gallery image updated", dto)
}

func (h *ContentHandler) DeleteGalleryImage(c *gin.Context) {
	sid, ok := sidParam(c, id.PrefixGalleryImg, "gallery image")
	if !ok {
		return
	}

	if err := h.service.DeleteGalleryImage(c.Request.Context(), sid); err != nil {
		h.respondContentError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "gallery image deleted", nil)
}

func (h *ContentHandler) ListGalleryImages(c *gin.Context) {
	list, err := h.service.ListGalleryImages(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", list)
}
