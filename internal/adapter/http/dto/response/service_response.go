package response

import "major_home/internal/domain/pricing"

// ServiceResponse is a catalog entry as served to the wizard and the
// services page.
type ServiceResponse struct {
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	ShortTitle  string             `json:"shortTitle"`
	Description string             `json:"description"`
	PriceRange  string             `json:"priceRange"`
	Unit        string             `json:"unit"`
	BaseRate    map[string]float64 `json:"baseRate"`
	Addons      []pricing.Addon    `json:"addons"`
}

func FromService(def pricing.ServiceDefinition) ServiceResponse {
	rates := make(map[string]float64, len(def.BaseRate))
	for tier, rate := range def.BaseRate {
		rates[string(tier)] = rate
	}
	return ServiceResponse{
		Slug:        string(def.Slug),
		Title:       def.Title,
		ShortTitle:  def.ShortTitle,
		Description: def.Description,
		PriceRange:  def.PriceRange,
		Unit:        def.Unit,
		BaseRate:    rates,
		Addons:      def.Addons,
	}
}

func FromServices(defs []pricing.ServiceDefinition) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(defs))
	for _, def := range defs {
		out = append(out, FromService(def))
	}
	return out
}
