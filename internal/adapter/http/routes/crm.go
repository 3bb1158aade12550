package routes

import (
	"major_home/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads        = "/leads"
	PathAppointments = "/appointments"
)

func addCRMRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler, appointmentHandler *handlers.AppointmentHandler, quoteHandler *handlers.QuoteHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CaptureLead)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PATCH("/:id/status", leadHandler.UpdateLeadStatus)
		leads.GET("/:id/quotes", quoteHandler.ListQuotesByLead)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", appointmentHandler.ScheduleAppointment)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
	}
}
