package entities

import (
	"encoding/json"
	"time"
)

// LeadStatus tracks a lead through the sales funnel.

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQuoted    LeadStatus = "quoted"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQuoted, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// Lead is a captured prospect persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// QuoteData keeps whatever breakdown the form attached at capture time (raw
// JSON) for traceability; it is never interpreted server-side.

type Lead struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	Address         string          `json:"address,omitempty"`
	ServiceInterest string          `json:"service_interest,omitempty"`
	Source          string          `json:"source"`
	Notes           string          `json:"notes,omitempty"`
	QuoteData       json.RawMessage `json:"quote_data,omitempty"`
	Status          LeadStatus      `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
