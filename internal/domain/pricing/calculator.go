package pricing

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidInput    = errors.New("invalid quote input")
)

// Input is a fully resolved project description. Callers are expected to
// apply defaults and run Validate before calculating; the engine itself only
// rejects unknown services.
type Input struct {
	Service          ServiceType
	PropertyType     PropertyType
	SquareFootage    int
	Stories          int
	MaterialTier     MaterialTier
	CurrentCondition Condition
	NeedsRemoval     bool
	Addons           []string
}

// Validate enforces the boundary invariants. Unknown story counts are
// deliberately not rejected here; CalculateQuote clamps them.
func (in Input) Validate() error {
	if _, ok := LookupService(in.Service); !ok {
		return fmt.Errorf("%w: %s", ErrServiceNotFound, in.Service)
	}
	if in.SquareFootage <= 0 {
		return fmt.Errorf("%w: square footage must be positive", ErrInvalidInput)
	}
	if !in.MaterialTier.Valid() {
		return fmt.Errorf("%w: unknown material tier %q", ErrInvalidInput, in.MaterialTier)
	}
	if !in.PropertyType.Valid() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidInput, in.PropertyType)
	}
	if !in.CurrentCondition.Valid() {
		return fmt.Errorf("%w: unknown condition %q", ErrInvalidInput, in.CurrentCondition)
	}
	if in.Stories < 1 {
		return fmt.Errorf("%w: stories must be at least 1", ErrInvalidInput)
	}
	return nil
}

// Breakdown is the computed price decomposition. Every field is rounded to
// the nearest whole dollar independently.
//
// MaterialCost + LaborCost equals BasePrice (a 40/60 split); the split is
// informational and is not added into Subtotal again.
type Breakdown struct {
	BasePrice           float64 `json:"basePrice"`
	MaterialCost        float64 `json:"materialCost"`
	LaborCost           float64 `json:"laborCost"`
	RemovalCost         float64 `json:"removalCost"`
	StoryAdjustment     float64 `json:"storyAdjustment"`
	ConditionAdjustment float64 `json:"conditionAdjustment"`
	AddonsCost          float64 `json:"addonsCost"`
	Subtotal            float64 `json:"subtotal"`
	LowEstimate         float64 `json:"lowEstimate"`
	HighEstimate        float64 `json:"highEstimate"`
}

// Result wraps the breakdown with the unit actually priced. Unit may differ
// from the catalog's declared unit when the quantity was derived (windows,
// gutters).
type Result struct {
	Service      ServiceType  `json:"service"`
	MaterialTier MaterialTier `json:"materialTier"`
	Breakdown    Breakdown    `json:"breakdown"`
	Unit         string       `json:"unit"`
	Quantity     int          `json:"quantity"`
}

var storyMultipliers = map[int]float64{
	1: 1.00,
	2: 1.15,
	3: 1.30,
	4: 1.50,
}

// fallbackStoryMultiplier applies to any story count missing from the table
// (5+). It intentionally does not scale with height; changing it would shift
// every historical quote for tall buildings.
const fallbackStoryMultiplier = 1.30

var conditionMultipliers = map[Condition]float64{
	ConditionGood: 1.00,
	ConditionFair: 1.10,
	ConditionPoor: 1.25,
}

const (
	removalRatePerUnit = 1.5
	materialShare      = 0.40
	laborShare         = 0.60
	lowBandFactor      = 0.85
	highBandFactor     = 1.15
)

// CalculateQuote computes a deterministic price estimate for in. It is pure:
// no shared state, no I/O, identical inputs always produce identical results.
// The only failure mode is an unknown service slug.
func CalculateQuote(in Input) (Result, error) {
	service, ok := LookupService(in.Service)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrServiceNotFound, in.Service)
	}

	baseRate := service.BaseRate[in.MaterialTier]
	storyMultiplier, ok := storyMultipliers[in.Stories]
	if !ok {
		storyMultiplier = fallbackStoryMultiplier
	}
	conditionMultiplier, ok := conditionMultipliers[in.CurrentCondition]
	if !ok {
		conditionMultiplier = 1.0
	}

	// The wizard collects square footage for every service; translate it
	// into the measure that actually drives this service's pricing. These
	// conversions are estimation heuristics, not architectural takeoffs:
	// one window per 80 sq ft of living space, and a square building's
	// perimeter approximated from its floor area.
	quantity := float64(in.SquareFootage)
	unit := service.Unit
	switch in.Service {
	case ServiceWindows:
		quantity = math.Ceil(float64(in.SquareFootage) / 80)
		unit = "windows"
	case ServiceGutters:
		quantity = math.Ceil(math.Sqrt(float64(in.SquareFootage)) * 4)
		unit = "linear ft"
	}

	basePrice := quantity * baseRate
	materialCost := basePrice * materialShare
	laborCost := basePrice * laborShare

	removalCost := 0.0
	if in.NeedsRemoval {
		removalCost = quantity * removalRatePerUnit
	}

	storyAdjustment := basePrice * (storyMultiplier - 1)
	conditionAdjustment := basePrice * (conditionMultiplier - 1)

	addonsCost := 0.0
	for _, addonID := range in.Addons {
		addon, ok := findAddon(service.Addons, addonID)
		if !ok {
			// Stale client-side selections must never break a quote.
			continue
		}
		switch addon.Mode() {
		case PriceModePerUnit:
			addonsCost += addon.Price * quantity
		default:
			addonsCost += addon.Price
		}
	}

	subtotal := basePrice + removalCost + storyAdjustment + conditionAdjustment + addonsCost

	return Result{
		Service:      in.Service,
		MaterialTier: in.MaterialTier,
		Unit:         unit,
		Quantity:     int(math.Round(quantity)),
		Breakdown: Breakdown{
			BasePrice:           math.Round(basePrice),
			MaterialCost:        math.Round(materialCost),
			LaborCost:           math.Round(laborCost),
			RemovalCost:         math.Round(removalCost),
			StoryAdjustment:     math.Round(storyAdjustment),
			ConditionAdjustment: math.Round(conditionAdjustment),
			AddonsCost:          math.Round(addonsCost),
			Subtotal:            math.Round(subtotal),
			LowEstimate:         math.Round(subtotal * lowBandFactor),
			HighEstimate:        math.Round(subtotal * highBandFactor),
		},
	}, nil
}

func findAddon(addons []Addon, id string) (Addon, bool) {
	for _, a := range addons {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}
