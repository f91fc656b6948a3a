package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sdc/internal/application/intake"
	intakedomain "sdc/internal/domain/intake"
	"sdc/internal/shared/id"
	"sdc/internal/shared/logger"
	"sdc/internal/shared/utils"
)

// IntakeHandler exposes the public submission endpoints and the admin-side
// review endpoints for contact messages and membership applications.
type IntakeHandler struct {
	service *intake.Service
	logger  logger.Interface
}

func NewIntakeHandler(service *intake.Service, logger logger.Interface) *IntakeHandler {
	return &IntakeHandler{service: service, logger: logger}
}

func (h *IntakeHandler) respondIntakeError(c *gin.Context, err error) {
	if errors.Is(err, intakedomain.ErrMessageNotFound) || errors.Is(err, intakedomain.ErrApplicationNotFound) {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	utils.ErrorResponseWithError(c, err)
}

// SubmitContact receives a contact-form message from the public site.
func (h *IntakeHandler) SubmitContact(c *gin.Context) {
	var cmd intake.SubmitContactCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.service.SubmitContact(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("contact submission failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{"id": dto.ID}, "message received, we will get back to you soon")
}

func (h *IntakeHandler) ListContacts(c *gin.Context) {
	p := utils.ParsePagination(c)
	list, total, err := h.service.ListContacts(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"messages":  list,
		"total":     total,
		"page":      p.Page,
		"page_size": p.PageSize,
	})
}

func (h *IntakeHandler) MarkContactRead(c *gin.Context) {
	sid, ok := sidParam(c, id.PrefixContactMsg, "contact message")
	if !ok {
		return
	}

	dto, err := h.service.MarkContactRead(c.Request.Context(), sid)
	if err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "message marked as read", dto)
}

func (h *IntakeHandler) DeleteContact(c *gin.Context) {
	sid, ok := sidParam(c, id.PrefixContactMsg, "contact message")
	if !ok {
		return
	}

	if err := h.service.DeleteContact(c.Request.Context(), sid); err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "message deleted", nil)
}

// SubmitApplication receives a membership application from the public site.
func (h *IntakeHandler) SubmitApplication(c *gin.Context) {
	var cmd intake.SubmitApplicationCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.service.SubmitApplication(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("application submission failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{"id": dto.ID}, "application received")
}

func (h *IntakeHandler) ListApplications(c *gin.Context) {
	p := utils.ParsePagination(c)
	list, total, err := h.service.ListApplications(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"applications": list,
		"total":        total,
		"page":         p.Page,
		"page_size":    p.PageSize,
	})
}

func (h *IntakeHandler) GetApplication(c *gin.Context) {
	sid, ok := sidParam(c, id.PrefixApplication, "application")
	if !ok {
		return
	}

	dto, err := h.service.GetApplication(c.Request.Context(), sid)
	if err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *IntakeHandler) UpdateApplicationStatus(c *gin.Context) {
	var cmd intake.UpdateApplicationStatusCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sid, ok := sidParam(c, id.PrefixApplication, "application")
	if !ok {
		return
	}

	dto, err := h.service.UpdateApplicationStatus(c.Request.Context(), sid, cmd)
	if err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "application status updated", dto)
}

func (h *IntakeHandler) DeleteApplication(c *gin.Context) {
	sid, ok := sidParam(c, id.PrefixApplication, "application")
	if !ok {
		return
	}

	if err := h.service.DeleteApplication(c.Request.Context(), sid); err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "application deleted", nil)
}
