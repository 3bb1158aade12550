package pricing

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func baseInput() Input {
	return Input{
		Service:          ServiceRoofing,
		PropertyType:     PropertyResidential,
		SquareFootage:    2000,
		Stories:          1,
		MaterialTier:     TierBetter,
		CurrentCondition: ConditionGood,
		NeedsRemoval:     false,
		Addons:           nil,
	}
}

func TestCalculateQuote_KnownScenario(t *testing.T) {
	in := baseInput()
	in.CurrentCondition = ConditionFair
	in.NeedsRemoval = true

	res, err := CalculateQuote(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := res.Breakdown
	if b.BasePrice != 13000 {
		t.Fatalf("base price: expected 13000, got %v", b.BasePrice)
	}
	if b.MaterialCost != 5200 || b.LaborCost != 7800 {
		t.Fatalf("cost split: expected 5200/7800, got %v/%v", b.MaterialCost, b.LaborCost)
	}
	if b.RemovalCost != 3000 {
		t.Fatalf("removal cost: expected 3000, got %v", b.RemovalCost)
	}
	if b.StoryAdjustment != 0 {
		t.Fatalf("story adjustment: expected 0, got %v", b.StoryAdjustment)
	}
	if b.ConditionAdjustment != 1300 {
		t.Fatalf("condition adjustment: expected 1300, got %v", b.ConditionAdjustment)
	}
	if b.AddonsCost != 0 {
		t.Fatalf("addons cost: expected 0, got %v", b.AddonsCost)
	}
	if b.Subtotal != 17300 {
		t.Fatalf("subtotal: expected 17300, got %v", b.Subtotal)
	}
	if b.LowEstimate != 14705 || b.HighEstimate != 19895 {
		t.Fatalf("band: expected 14705/19895, got %v/%v", b.LowEstimate, b.HighEstimate)
	}
	if res.Unit != "sq ft" || res.Quantity != 2000 {
		t.Fatalf("unit/quantity: expected sq ft/2000, got %s/%d", res.Unit, res.Quantity)
	}
}

func TestCalculateQuote_UnitConversion(t *testing.T) {
	// The square-footage-to-unit conversions are deliberate estimation
	// heuristics (one window per 80 sq ft, perimeter from floor area).
	cases := []struct {
		name     string
		service  ServiceType
		sqft     int
		quantity int
		unit     string
	}{
		{name: "roofing passes through", service: ServiceRoofing, sqft: 2000, quantity: 2000, unit: "sq ft"},
		{name: "siding passes through", service: ServiceSiding, sqft: 1750, quantity: 1750, unit: "sq ft"},
		{name: "windows per 80 sq ft", service: ServiceWindows, sqft: 2000, quantity: 25, unit: "windows"},
		{name: "windows rounds up", service: ServiceWindows, sqft: 81, quantity: 2, unit: "windows"},
		{name: "gutters perimeter estimate", service: ServiceGutters, sqft: 2000, quantity: 179, unit: "linear ft"},
		{name: "gutters exact square", service: ServiceGutters, sqft: 2500, quantity: 200, unit: "linear ft"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			in.Service = tc.service
			in.SquareFootage = tc.sqft
			res, err := CalculateQuote(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Quantity != tc.quantity {
				t.Fatalf("expected quantity %d, got %d", tc.quantity, res.Quantity)
			}
			if res.Unit != tc.unit {
				t.Fatalf("expected unit %q, got %q", tc.unit, res.Unit)
			}
		})
	}
}

func TestCalculateQuote_UnknownService(t *testing.T) {
	in := baseInput()
	in.Service = "plumbing"

	res, err := CalculateQuote(in)
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
	if !reflect.DeepEqual(res, Result{}) {
		t.Fatalf("expected zero result, got %+v", res)
	}
}

func TestCalculateQuote_Deterministic(t *testing.T) {
	in := baseInput()
	in.Service = ServiceGutters
	in.Stories = 2
	in.NeedsRemoval = true
	in.Addons = []string{"guards", "heat_cable"}

	first, err := CalculateQuote(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CalculateQuote(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestCalculateQuote_TierMonotonic(t *testing.T) {
	for _, service := range []ServiceType{ServiceRoofing, ServiceWindows, ServiceSiding, ServiceGutters} {
		t.Run(string(service), func(t *testing.T) {
			prices := make([]float64, 0, 3)
			for _, tier := range []MaterialTier{TierGood, TierBetter, TierBest} {
				in := baseInput()
				in.Service = service
				in.MaterialTier = tier
				res, err := CalculateQuote(in)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				prices = append(prices, res.Breakdown.BasePrice)
			}
			if !(prices[0] <= prices[1] && prices[1] <= prices[2]) {
				t.Fatalf("base price not monotonic across tiers: %v", prices)
			}
		})
	}
}

func TestCalculateQuote_SubtotalIdentity(t *testing.T) {
	inputs := []Input{
		{Service: ServiceRoofing, PropertyType: PropertyResidential, SquareFootage: 1234, Stories: 2, MaterialTier: TierBest, CurrentCondition: ConditionPoor, NeedsRemoval: true, Addons: []string{"skylights", "ice_dam"}},
		{Service: ServiceWindows, PropertyType: PropertyCommercial, SquareFootage: 3100, Stories: 3, MaterialTier: TierGood, CurrentCondition: ConditionFair, NeedsRemoval: false, Addons: []string{"low_e"}},
		{Service: ServiceSiding, PropertyType: PropertyResidential, SquareFootage: 2450, Stories: 1, MaterialTier: TierBetter, CurrentCondition: ConditionGood, NeedsRemoval: true, Addons: []string{"insulation", "soffit"}},
		{Service: ServiceGutters, PropertyType: PropertyResidential, SquareFootage: 1800, Stories: 4, MaterialTier: TierBest, CurrentCondition: ConditionPoor, NeedsRemoval: true, Addons: []string{"guards", "rain_barrel"}},
	}

	for _, in := range inputs {
		res, err := CalculateQuote(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := res.Breakdown

		// Each field is rounded independently, so the recomposed sum may
		// drift from the rounded subtotal by a fraction per term.
		sum := b.BasePrice + b.RemovalCost + b.StoryAdjustment + b.ConditionAdjustment + b.AddonsCost
		if math.Abs(sum-b.Subtotal) > 3 {
			t.Fatalf("%s: subtotal %v does not match component sum %v", in.Service, b.Subtotal, sum)
		}

		if b.MaterialCost+b.LaborCost < b.BasePrice-1 || b.MaterialCost+b.LaborCost > b.BasePrice+1 {
			t.Fatalf("%s: material+labor %v does not recompose base price %v", in.Service, b.MaterialCost+b.LaborCost, b.BasePrice)
		}

		if b.LowEstimate > b.HighEstimate {
			t.Fatalf("%s: low estimate %v above high estimate %v", in.Service, b.LowEstimate, b.HighEstimate)
		}
		if math.Abs(b.LowEstimate-math.Round(b.Subtotal*0.85)) > 1 {
			t.Fatalf("%s: low estimate %v off band", in.Service, b.LowEstimate)
		}
		if math.Abs(b.HighEstimate-math.Round(b.Subtotal*1.15)) > 1 {
			t.Fatalf("%s: high estimate %v off band", in.Service, b.HighEstimate)
		}
	}
}

func TestCalculateQuote_StoryFallback(t *testing.T) {
	three := baseInput()
	three.Stories = 3
	seven := baseInput()
	seven.Stories = 7

	resThree, err := CalculateQuote(three)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resSeven, err := CalculateQuote(seven)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Out-of-table story counts clamp to the 3-story multiplier.
	if resSeven.Breakdown.StoryAdjustment != resThree.Breakdown.StoryAdjustment {
		t.Fatalf("expected 7 stories to price like 3, got %v vs %v",
			resSeven.Breakdown.StoryAdjustment, resThree.Breakdown.StoryAdjustment)
	}
}

func TestCalculateQuote_Addons(t *testing.T) {
	t.Run("flat addon added once", func(t *testing.T) {
		in := baseInput()
		in.Addons = []string{"ventilation"}
		res, err := CalculateQuote(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Breakdown.AddonsCost != 800 {
			t.Fatalf("expected 800, got %v", res.Breakdown.AddonsCost)
		}
	})

	t.Run("per unit addon scales with quantity", func(t *testing.T) {
		in := baseInput()
		in.Service = ServiceSiding
		in.SquareFootage = 1000
		in.Addons = []string{"insulation"}
		res, err := CalculateQuote(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Breakdown.AddonsCost != 1500 {
			t.Fatalf("expected 1500, got %v", res.Breakdown.AddonsCost)
		}
	})

	t.Run("unknown addon ignored", func(t *testing.T) {
		plain := baseInput()
		stale := baseInput()
		stale.Addons = []string{"jacuzzi", "moat"}

		expected, err := CalculateQuote(plain)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := CalculateQuote(stale)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Breakdown != expected.Breakdown {
			t.Fatalf("stale addon ids changed the quote: %+v vs %+v", got.Breakdown, expected.Breakdown)
		}
	})
}

func TestAddonMode_ThresholdFallback(t *testing.T) {
	// Legacy catalog records carry no explicit price type; the historical
	// convention treats prices under 10 as per-unit rates.
	cases := []struct {
		name  string
		addon Addon
		want  PriceMode
	}{
		{name: "exactly 10 is flat", addon: Addon{ID: "x", Price: 10}, want: PriceModeFlat},
		{name: "just under 10 is per unit", addon: Addon{ID: "x", Price: 9.99}, want: PriceModePerUnit},
		{name: "explicit flat wins over threshold", addon: Addon{ID: "x", Price: 5, PriceType: PriceModeFlat}, want: PriceModeFlat},
		{name: "explicit per unit wins over threshold", addon: Addon{ID: "x", Price: 500, PriceType: PriceModePerUnit}, want: PriceModePerUnit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.addon.Mode(); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCalculateQuote_PropertyTypeReserved(t *testing.T) {
	res := baseInput()
	com := baseInput()
	com.PropertyType = PropertyCommercial

	a, err := CalculateQuote(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := CalculateQuote(com)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Breakdown != b.Breakdown {
		t.Fatalf("property type changed pricing: %+v vs %+v", a.Breakdown, b.Breakdown)
	}
}

func TestInput_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{name: "valid", mutate: func(in *Input) {}, wantErr: nil},
		{name: "unknown service", mutate: func(in *Input) { in.Service = "plumbing" }, wantErr: ErrServiceNotFound},
		{name: "zero square footage", mutate: func(in *Input) { in.SquareFootage = 0 }, wantErr: ErrInvalidInput},
		{name: "negative square footage", mutate: func(in *Input) { in.SquareFootage = -10 }, wantErr: ErrInvalidInput},
		{name: "unknown tier", mutate: func(in *Input) { in.MaterialTier = "platinum" }, wantErr: ErrInvalidInput},
		{name: "unknown property type", mutate: func(in *Input) { in.PropertyType = "houseboat" }, wantErr: ErrInvalidInput},
		{name: "unknown condition", mutate: func(in *Input) { in.CurrentCondition = "ruined" }, wantErr: ErrInvalidInput},
		{name: "zero stories", mutate: func(in *Input) { in.Stories = 0 }, wantErr: ErrInvalidInput},
		{name: "many stories allowed", mutate: func(in *Input) { in.Stories = 9 }, wantErr: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			tc.mutate(&in)
			err := in.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
