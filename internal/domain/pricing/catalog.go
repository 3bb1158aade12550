package pricing

// ServiceType identifies one of the offered exterior services.
type ServiceType string

const (
	ServiceRoofing ServiceType = "roofing"
	ServiceWindows ServiceType = "windows"
	ServiceSiding  ServiceType = "siding"
	ServiceGutters ServiceType = "gutters"
)

// MaterialTier is the quality/price level of materials.
type MaterialTier string

const (
	TierGood   MaterialTier = "good"
	TierBetter MaterialTier = "better"
	TierBest   MaterialTier = "best"
)

func (t MaterialTier) Valid() bool {
	switch t {
	case TierGood, TierBetter, TierBest:
		return true
	}
	return false
}

// PropertyType is carried through the calculation untouched. It does not
// affect pricing today; it is a reserved dimension.
type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
)

func (p PropertyType) Valid() bool {
	return p == PropertyResidential || p == PropertyCommercial
}

// Condition describes the state of the existing installation.
type Condition string

const (
	ConditionGood Condition = "good"
	ConditionFair Condition = "fair"
	ConditionPoor Condition = "poor"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// PriceMode tells how an add-on price is applied: once, or per computed unit.
type PriceMode string

const (
	PriceModeFlat    PriceMode = "flat"
	PriceModePerUnit PriceMode = "per_unit"
)

// Addon is an optional extra selectable per service.
type Addon struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	PriceType PriceMode `json:"priceType"`
}

// Mode resolves the effective pricing mode. The explicit PriceType is
// authoritative; older catalog data without it falls back to the historical
// convention that prices under 10 are per-unit rates.
func (a Addon) Mode() PriceMode {
	if a.PriceType != "" {
		return a.PriceType
	}
	if a.Price < 10 {
		return PriceModePerUnit
	}
	return PriceModeFlat
}

// ServiceDefinition is the canonical pricing and presentation record for one
// service. Instances live in the catalog and are never mutated.
type ServiceDefinition struct {
	Slug        ServiceType              `json:"slug"`
	Title       string                   `json:"title"`
	ShortTitle  string                   `json:"shortTitle"`
	Description string                   `json:"description"`
	PriceRange  string                   `json:"priceRange"`
	Unit        string                   `json:"unit"`
	BaseRate    map[MaterialTier]float64 `json:"baseRate"`
	Addons      []Addon                  `json:"addons"`
}

// catalog is built once and only ever read, so concurrent lookups from
// parallel requests need no synchronization.
var catalog = map[ServiceType]ServiceDefinition{
	ServiceRoofing: {
		Slug:        ServiceRoofing,
		Title:       "Roofing Installation & Replacement",
		ShortTitle:  "Roofing",
		Description: "Complete roof replacement and installation services with premium materials and expert craftsmanship.",
		PriceRange:  "$8,000 - $25,000",
		Unit:        "sq ft",
		BaseRate:    map[MaterialTier]float64{TierGood: 4.50, TierBetter: 6.50, TierBest: 9.00},
		Addons: []Addon{
			{ID: "ventilation", Name: "Ridge Ventilation", Price: 800, PriceType: PriceModeFlat},
			{ID: "skylights", Name: "Skylight Installation", Price: 1500, PriceType: PriceModeFlat},
			{ID: "gutters", Name: "New Gutters", Price: 1200, PriceType: PriceModeFlat},
			{ID: "insulation", Name: "Attic Insulation", Price: 1000, PriceType: PriceModeFlat},
			{ID: "ice_dam", Name: "Ice Dam Protection", Price: 600, PriceType: PriceModeFlat},
		},
	},
	ServiceWindows: {
		Slug:        ServiceWindows,
		Title:       "Window Replacement",
		ShortTitle:  "Windows",
		Description: "Energy-efficient window installation to modernize your home and reduce energy costs.",
		PriceRange:  "$300 - $1,200 per window",
		Unit:        "window",
		BaseRate:    map[MaterialTier]float64{TierGood: 350, TierBetter: 550, TierBest: 850},
		Addons: []Addon{
			{ID: "triple_pane", Name: "Triple Pane Upgrade", Price: 150, PriceType: PriceModeFlat},
			{ID: "low_e", Name: "Low-E Coating", Price: 75, PriceType: PriceModeFlat},
			{ID: "argon", Name: "Argon Gas Fill", Price: 50, PriceType: PriceModeFlat},
			{ID: "grids", Name: "Decorative Grids", Price: 60, PriceType: PriceModeFlat},
			{ID: "trim", Name: "Interior Trim", Price: 100, PriceType: PriceModeFlat},
		},
	},
	ServiceSiding: {
		Slug:        ServiceSiding,
		Title:       "Siding Installation",
		ShortTitle:  "Siding",
		Description: "Premium vinyl and fiber cement siding to protect and beautify your home's exterior.",
		PriceRange:  "$6,000 - $20,000",
		Unit:        "sq ft",
		BaseRate:    map[MaterialTier]float64{TierGood: 5.00, TierBetter: 7.50, TierBest: 12.00},
		Addons: []Addon{
			{ID: "insulation", Name: "Insulated Backing", Price: 1.50, PriceType: PriceModePerUnit},
			{ID: "trim_wrap", Name: "Aluminum Trim Wrap", Price: 800, PriceType: PriceModeFlat},
			{ID: "soffit", Name: "Soffit & Fascia", Price: 1200, PriceType: PriceModeFlat},
			{ID: "house_wrap", Name: "House Wrap", Price: 500, PriceType: PriceModeFlat},
			{ID: "shutters", Name: "Decorative Shutters", Price: 400, PriceType: PriceModeFlat},
		},
	},
	ServiceGutters: {
		Slug:        ServiceGutters,
		Title:       "Gutter Installation & Guards",
		ShortTitle:  "Gutters",
		Description: "Seamless gutter installation and guard systems to protect your home from water damage.",
		PriceRange:  "$1,500 - $5,000",
		Unit:        "linear ft",
		BaseRate:    map[MaterialTier]float64{TierGood: 8.00, TierBetter: 12.00, TierBest: 18.00},
		Addons: []Addon{
			{ID: "guards", Name: "Gutter Guards", Price: 5.00, PriceType: PriceModePerUnit},
			{ID: "downspout_ext", Name: "Downspout Extensions", Price: 200, PriceType: PriceModeFlat},
			{ID: "rain_barrel", Name: "Rain Barrel System", Price: 350, PriceType: PriceModeFlat},
			{ID: "heat_cable", Name: "Heat Cable System", Price: 600, PriceType: PriceModeFlat},
			{ID: "splash_blocks", Name: "Splash Blocks", Price: 100, PriceType: PriceModeFlat},
		},
	},
}

// serviceOrder fixes the listing order for API consumers; map iteration
// order would shuffle the wizard's service cards between requests.
var serviceOrder = []ServiceType{ServiceRoofing, ServiceWindows, ServiceSiding, ServiceGutters}

// LookupService returns the catalog entry for slug.
func LookupService(slug ServiceType) (ServiceDefinition, bool) {
	def, ok := catalog[slug]
	return def, ok
}

// Services returns all catalog entries in display order.
func Services() []ServiceDefinition {
	out := make([]ServiceDefinition, 0, len(serviceOrder))
	for _, slug := range serviceOrder {
		out = append(out, catalog[slug])
	}
	return out
}
