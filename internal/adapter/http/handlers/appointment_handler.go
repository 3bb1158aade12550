package handlers

import (
	"errors"
	"net/http"

	request "major_home/internal/adapter/http/dto/request"
	response "major_home/internal/adapter/http/dto/response"
	"major_home/internal/usecase"
	"major_home/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_PAYLOAD", "Invalid appointment payload", http.StatusBadRequest)

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) ScheduleAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	appointment, err := h.usecase.Schedule(c.Request.Context(), usecase.ScheduleAppointmentCommand{
		LeadID:        payload.LeadID,
		Name:          payload.Name,
		Email:         payload.Email,
		Phone:         payload.Phone,
		Service:       payload.Service,
		PreferredDate: payload.PreferredDate,
		PreferredTime: payload.PreferredTime,
		Notes:         payload.Notes,
	})
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(appointment, "Appointment scheduled successfully"))
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appointment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(appointment, "Appointment retrieved"))
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidScheduleRequest):
		return pkg.NewDomainErrorSimple("MISSING_APPOINTMENT_FIELDS", "Name, email and preferred date are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAppointmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
