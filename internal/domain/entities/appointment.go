package entities

import "time"

// AppointmentStatus is the scheduling state of a site-visit request.

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a requested site visit persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id

type Appointment struct {
	ID            string            `json:"id"`
	LeadID        string            `json:"lead_id,omitempty"`
	Service       string            `json:"service_type,omitempty"`
	PreferredDate string            `json:"preferred_date"`
	PreferredTime string            `json:"preferred_time,omitempty"`
	Status        AppointmentStatus `json:"status"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
