package response

import (
	"time"

	"major_home/internal/domain/entities"
	"major_home/internal/domain/pricing"
)

// QuoteResponse wraps a computed quote with the success envelope the wizard
// expects. PriceDisplay is the pre-formatted range shown to the visitor.
type QuoteResponse struct {
	Success      bool           `json:"success"`
	Message      string         `json:"message"`
	ID           string         `json:"id"`
	LeadID       string         `json:"lead_id,omitempty"`
	Quote        pricing.Result `json:"quote"`
	PriceDisplay string         `json:"price_display"`
	CreatedAt    time.Time      `json:"created_at"`
}

func FromQuote(q entities.Quote, message string) QuoteResponse {
	return QuoteResponse{
		Success:      true,
		Message:      message,
		ID:           q.ID,
		LeadID:       q.LeadID,
		Quote:        q.Result,
		PriceDisplay: pricing.FormatCurrency(q.PriceLow) + " - " + pricing.FormatCurrency(q.PriceHigh),
		CreatedAt:    q.CreatedAt,
	}
}

// QuoteListResponse wraps the quotes attached to a lead.
type QuoteListResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Quotes  []QuoteResponse `json:"quotes"`
}

func FromQuotes(quotes []entities.Quote, message string) QuoteListResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q, ""))
	}
	return QuoteListResponse{Success: true, Message: message, Quotes: out}
}
