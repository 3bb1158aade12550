package request

import (
	"errors"
	"strings"

	"major_home/internal/domain/pricing"
)

var ErrMissingQuoteFields = errors.New("service, tier and square footage are required")

// QuoteRequest is the wizard's quote-submission payload. Besides the three
// required fields everything is optional and defaulted, so a partially
// filled wizard can still get a number.
type QuoteRequest struct {
	LeadID           string   `json:"lead_id"`
	Service          string   `json:"service"`
	Tier             string   `json:"tier"`
	SquareFootage    int      `json:"squareFootage"`
	Stories          int      `json:"stories"`
	PropertyType     string   `json:"propertyType"`
	CurrentCondition string   `json:"currentCondition"`
	NeedsRemoval     bool     `json:"needsRemoval"`
	Addons           []string `json:"addons"`
}

func (r QuoteRequest) ResolveLeadID() string {
	return strings.TrimSpace(r.LeadID)
}

// ResolveInput checks the required fields and applies the documented
// defaults (1 story, residential, good condition) before the engine runs.
func (r QuoteRequest) ResolveInput() (pricing.Input, error) {
	service := strings.TrimSpace(r.Service)
	tier := strings.TrimSpace(r.Tier)
	if service == "" || tier == "" || r.SquareFootage <= 0 {
		return pricing.Input{}, ErrMissingQuoteFields
	}

	stories := r.Stories
	if stories < 1 {
		stories = 1
	}
	propertyType := pricing.PropertyType(strings.TrimSpace(r.PropertyType))
	if propertyType == "" {
		propertyType = pricing.PropertyResidential
	}
	condition := pricing.Condition(strings.TrimSpace(r.CurrentCondition))
	if condition == "" {
		condition = pricing.ConditionGood
	}

	return pricing.Input{
		Service:          pricing.ServiceType(service),
		PropertyType:     propertyType,
		SquareFootage:    r.SquareFootage,
		Stories:          stories,
		MaterialTier:     pricing.MaterialTier(tier),
		CurrentCondition: condition,
		NeedsRemoval:     r.NeedsRemoval,
		Addons:           r.Addons,
	}, nil
}
