package handlers

import (
	"errors"
	"net/http"

	request "major_home/internal/adapter/http/dto/request"
	response "major_home/internal/adapter/http/dto/response"
	"major_home/internal/domain/entities"
	"major_home/internal/usecase"
	"major_home/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_PAYLOAD", "Invalid lead payload", http.StatusBadRequest)

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) CaptureLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.CaptureLead(c.Request.Context(), usecase.CaptureLeadCommand{
		Name:            payload.Name,
		Email:           payload.Email,
		Phone:           payload.Phone,
		Address:         payload.Address,
		ServiceInterest: payload.Service,
		Source:          payload.Source,
		Notes:           payload.Message,
		QuoteData:       payload.QuoteData,
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead, "Lead captured successfully"))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead, "Lead retrieved"))
}

func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var payload request.LeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.LeadStatus(payload.Status))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead, "Lead status updated"))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadContact):
		return pkg.NewDomainErrorSimple("MISSING_CONTACT_FIELDS", "Name and email are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_LEAD_STATUS", "Invalid lead status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
