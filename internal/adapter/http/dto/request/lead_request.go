package request

import "encoding/json"

// LeadRequest is the contact-form payload. QuoteData is whatever breakdown
// the wizard attached; it is stored verbatim.
type LeadRequest struct {
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Service   string          `json:"service"`
	Source    string          `json:"source"`
	Message   string          `json:"message"`
	QuoteData json.RawMessage `json:"quote_data"`
}

// LeadStatusRequest updates a lead's funnel status.
type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
