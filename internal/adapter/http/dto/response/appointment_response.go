package response

import (
	"time"

	"major_home/internal/domain/entities"
)

type AppointmentResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	ID            string    `json:"id"`
	LeadID        string    `json:"lead_id,omitempty"`
	Service       string    `json:"service_type,omitempty"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromAppointment(a entities.Appointment, message string) AppointmentResponse {
	return AppointmentResponse{
		Success:       true,
		Message:       message,
		ID:            a.ID,
		LeadID:        a.LeadID,
		Service:       a.Service,
		PreferredDate: a.PreferredDate,
		PreferredTime: a.PreferredTime,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}
}
