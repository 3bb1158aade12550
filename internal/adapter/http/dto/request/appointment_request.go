package request

// AppointmentRequest is the site-visit booking payload.
type AppointmentRequest struct {
	LeadID        string `json:"lead_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Notes         string `json:"notes"`
}
