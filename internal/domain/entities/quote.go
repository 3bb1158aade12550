package entities

import (
	"time"

	"major_home/internal/domain/pricing"
)

// Quote is a calculated price estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
//
// The full pricing result is stored alongside the flattened low/high columns
// so the wizard can re-render a saved breakdown without recomputing.

type Quote struct {
	ID            string               `json:"id"`
	LeadID        string               `json:"lead_id,omitempty"`
	Service       pricing.ServiceType  `json:"service_type"`
	Tier          pricing.MaterialTier `json:"tier"`
	SquareFootage int                  `json:"square_footage"`
	Stories       int                  `json:"stories"`
	Addons        []string             `json:"addons,omitempty"`
	PriceLow      float64              `json:"price_low"`
	PriceHigh     float64              `json:"price_high"`
	Result        pricing.Result       `json:"result"`
	CreatedAt     time.Time            `json:"created_at"`
}
