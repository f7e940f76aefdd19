package tax

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"gopkg.in/yaml.v3"
)

var ErrInvalidRules = errors.New("invalid tax rules")

// Unbounded marks the open upper end of the top bracket or band.
const Unbounded = -1

type Rate struct {
	Min        float64 `yaml:"min" json:"min"`
	Max        float64 `yaml:"max" json:"max"` // Unbounded for the top bracket
	Percentage float64 `yaml:"rate" json:"rate"`
	Label      string  `yaml:"label" json:"label"`
}

func (r Rate) upper() float64 {
	if r.Max == Unbounded {
		return math.Inf(1)
	}
	return r.Max
}

type Band struct {
	Name       string  `yaml:"name" json:"name"`
	Min        float64 `yaml:"min" json:"min"`
	Max        float64 `yaml:"max" json:"max"`
	Percentage float64 `yaml:"rate" json:"rate"`
	Label      string  `yaml:"label" json:"label"`
}

func (b Band) upper() float64 {
	if b.Max == Unbounded {
		return math.Inf(1)
	}
	return b.Max
}

type AllowanceRate struct {
	Initial float64 `yaml:"initial"`
	Annual  float64 `yaml:"annual"`
}

// WHTRates holds one payment type's row of the withholding matrix.
type WHTRates struct {
	Corporate   float64 `yaml:"corporate"`
	Individual  float64 `yaml:"individual"`
	NonResident float64 `yaml:"non_resident"`
}

func (w WHTRates) For(recipient RecipientType) (float64, bool) {
	switch recipient {
	case RecipientCorporate:
		return w.Corporate, true
	case RecipientIndividual:
		return w.Individual, true
	case RecipientNonResident:
		return w.NonResident, true
	}
	return 0, false
}

// Rules is the full set of statutory tables for one tax regime. A Rules value
// is never mutated after construction; a new regime is a new value.
type Rules struct {
	PITBrackets       []Rate
	CITBands          []Band
	CapitalAllowances map[AssetCategory]AllowanceRate
	WHT               map[PaymentType]WHTRates

	RentReliefRate           float64
	RentReliefCap            float64
	CompensationExemptionCap float64
	AllowanceRestriction     float64
	VATRate                  float64
	WHTFallbackRate          float64
	VATFilingDay             int
	WHTRemittanceDays        int
}

// clone copies the tables so the result shares no memory with r.
func (r Rules) clone() Rules {
	r.PITBrackets = slices.Clone(r.PITBrackets)
	r.CITBands = slices.Clone(r.CITBands)
	r.CapitalAllowances = maps.Clone(r.CapitalAllowances)
	r.WHT = maps.Clone(r.WHT)
	return r
}

// ExemptionThreshold is the upper bound of the zero-rated first bracket.
func (r Rules) ExemptionThreshold() float64 {
	if len(r.PITBrackets) == 0 || r.PITBrackets[0].Percentage != 0 {
		return 0
	}
	return r.PITBrackets[0].upper()
}

func (r Rules) AllowanceRateFor(category AssetCategory) AllowanceRate {
	if rate, ok := r.CapitalAllowances[category]; ok {
		return rate
	}
	return r.CapitalAllowances[AssetOther]
}

func DefaultRules() Rules {
	return Rules{
		PITBrackets: []Rate{
			{Min: 0, Max: 800_000, Percentage: 0, Label: "First ₦800,000"},
			{Min: 800_000, Max: 3_000_000, Percentage: 0.15, Label: "Next ₦2,200,000"},
			{Min: 3_000_000, Max: 12_000_000, Percentage: 0.18, Label: "Next ₦9,000,000"},
			{Min: 12_000_000, Max: 25_000_000, Percentage: 0.21, Label: "Next ₦13,000,000"},
			{Min: 25_000_000, Max: 50_000_000, Percentage: 0.23, Label: "Next ₦25,000,000"},
			{Min: 50_000_000, Max: Unbounded, Percentage: 0.25, Label: "Above ₦50,000,000"},
		},
		CITBands: []Band{
			{Name: "small", Min: 0, Max: 25_000_000, Percentage: 0, Label: "Small company (≤ ₦25m)"},
			{Name: "medium", Min: 25_000_000, Max: 100_000_000, Percentage: 0.20, Label: "Medium company (₦25m - ₦100m)"},
			{Name: "large", Min: 100_000_000, Max: 20_000_000_000, Percentage: 0.30, Label: "Large company (₦100m - ₦20bn)"},
			{Name: "very_large", Min: 20_000_000_000, Max: Unbounded, Percentage: 0.30, Label: "Very large company (> ₦20bn)"},
		},
		CapitalAllowances: map[AssetCategory]AllowanceRate{
			AssetPlantMachinery:        {Initial: 0.50, Annual: 0.25},
			AssetMotorVehicles:         {Initial: 0.50, Annual: 0.25},
			AssetFurnitureFittings:     {Initial: 0.25, Annual: 0.20},
			AssetBuildings:             {Initial: 0.15, Annual: 0.10},
			AssetComputersEquipment:    {Initial: 0.50, Annual: 0.25},
			AssetAgriculturalEquipment: {Initial: 0.95, Annual: 0},
			AssetOther:                 {Initial: 0.25, Annual: 0.20},
		},
		WHT: map[PaymentType]WHTRates{
			PaymentDividend:          {Corporate: 0.10, Individual: 0.10, NonResident: 0.10},
			PaymentInterest:          {Corporate: 0.10, Individual: 0.10, NonResident: 0.10},
			PaymentRent:              {Corporate: 0.10, Individual: 0.10, NonResident: 0.10},
			PaymentRoyalty:           {Corporate: 0.10, Individual: 0.05, NonResident: 0.15},
			PaymentProfessionalFees:  {Corporate: 0.10, Individual: 0.05, NonResident: 0.10},
			PaymentConsultancy:       {Corporate: 0.10, Individual: 0.05, NonResident: 0.10},
			PaymentManagementFees:    {Corporate: 0.10, Individual: 0.05, NonResident: 0.10},
			PaymentTechnicalServices: {Corporate: 0.10, Individual: 0.05, NonResident: 0.10},
			PaymentCommission:        {Corporate: 0.10, Individual: 0.05, NonResident: 0.10},
			PaymentDirectorsFees:     {Corporate: 0.10, Individual: 0.10, NonResident: 0.10},
			PaymentConstruction:      {Corporate: 0.05, Individual: 0.05, NonResident: 0.05},
			PaymentContractSupply:    {Corporate: 0.05, Individual: 0.05, NonResident: 0.05},
		},
		RentReliefRate:           0.20,
		RentReliefCap:            500_000,
		CompensationExemptionCap: 50_000_000,
		AllowanceRestriction:     2.0 / 3.0,
		VATRate:                  0.075,
		WHTFallbackRate:          0.10,
		VATFilingDay:             21,
		WHTRemittanceDays:        21,
	}
}

// rulesDocument is the YAML shape of a rules override. Scalars are pointers so
// an explicit zero is told apart from an omitted key.
type rulesDocument struct {
	PITBrackets       []Rate                          `yaml:"pit_brackets"`
	CITBands          []Band                          `yaml:"cit_bands"`
	CapitalAllowances map[AssetCategory]AllowanceRate `yaml:"capital_allowances"`
	WHT               map[PaymentType]WHTRates        `yaml:"wht"`

	RentReliefRate           *float64 `yaml:"rent_relief_rate"`
	RentReliefCap            *float64 `yaml:"rent_relief_cap"`
	CompensationExemptionCap *float64 `yaml:"compensation_exemption_cap"`
	AllowanceRestriction     *float64 `yaml:"allowance_restriction"`
	VATRate                  *float64 `yaml:"vat_rate"`
	WHTFallbackRate          *float64 `yaml:"wht_fallback_rate"`
	VATFilingDay             *int     `yaml:"vat_filing_day"`
	WHTRemittanceDays        *int     `yaml:"wht_remittance_days"`
}

// ParseRules reads a YAML rules document. Tables and values the document
// omits keep their DefaultRules values.
func ParseRules(data []byte) (Rules, error) {
	rules := DefaultRules()

	var doc rulesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Rules{}, fmt.Errorf("parse tax rules: %w", err)
	}

	if len(doc.PITBrackets) > 0 {
		rules.PITBrackets = doc.PITBrackets
	}
	if len(doc.CITBands) > 0 {
		rules.CITBands = doc.CITBands
	}
	if len(doc.CapitalAllowances) > 0 {
		rules.CapitalAllowances = doc.CapitalAllowances
	}
	if len(doc.WHT) > 0 {
		rules.WHT = doc.WHT
	}

	override(&rules.RentReliefRate, doc.RentReliefRate)
	override(&rules.RentReliefCap, doc.RentReliefCap)
	override(&rules.CompensationExemptionCap, doc.CompensationExemptionCap)
	override(&rules.AllowanceRestriction, doc.AllowanceRestriction)
	override(&rules.VATRate, doc.VATRate)
	override(&rules.WHTFallbackRate, doc.WHTFallbackRate)
	override(&rules.VATFilingDay, doc.VATFilingDay)
	override(&rules.WHTRemittanceDays, doc.WHTRemittanceDays)

	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}

	return rules, nil
}

func override[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks that brackets and bands start at zero, are contiguous and
// ascending, and end unbounded. Rates must lie in [0, 1].
func (r Rules) Validate() error {
	if len(r.PITBrackets) == 0 {
		return fmt.Errorf("%w: no pit brackets", ErrInvalidRules)
	}
	if r.PITBrackets[0].Min != 0 {
		return fmt.Errorf("%w: first pit bracket must start at 0", ErrInvalidRules)
	}
	for i, b := range r.PITBrackets {
		if i > 0 && b.Min != r.PITBrackets[i-1].Max {
			return fmt.Errorf("%w: pit bracket %q does not start where %q ends", ErrInvalidRules, b.Label, r.PITBrackets[i-1].Label)
		}
		if b.Max != Unbounded && b.Max <= b.Min {
			return fmt.Errorf("%w: pit bracket %q is empty", ErrInvalidRules, b.Label)
		}
		if b.Max == Unbounded && i != len(r.PITBrackets)-1 {
			return fmt.Errorf("%w: only the top pit bracket may be unbounded", ErrInvalidRules)
		}
	}
	if r.PITBrackets[len(r.PITBrackets)-1].Max != Unbounded {
		return fmt.Errorf("%w: top pit bracket must be unbounded", ErrInvalidRules)
	}

	if len(r.CITBands) == 0 {
		return fmt.Errorf("%w: no cit bands", ErrInvalidRules)
	}
	if r.CITBands[0].Min != 0 {
		return fmt.Errorf("%w: first cit band must start at 0", ErrInvalidRules)
	}
	for i, b := range r.CITBands {
		if i > 0 && b.Min != r.CITBands[i-1].Max {
			return fmt.Errorf("%w: cit band %q does not start where %q ends", ErrInvalidRules, b.Name, r.CITBands[i-1].Name)
		}
		if b.Max != Unbounded && b.Max <= b.Min {
			return fmt.Errorf("%w: cit band %q is empty", ErrInvalidRules, b.Name)
		}
		if b.Max == Unbounded && i != len(r.CITBands)-1 {
			return fmt.Errorf("%w: only the top cit band may be unbounded", ErrInvalidRules)
		}
	}
	if r.CITBands[len(r.CITBands)-1].Max != Unbounded {
		return fmt.Errorf("%w: top cit band must be unbounded", ErrInvalidRules)
	}

	if _, ok := r.CapitalAllowances[AssetOther]; !ok {
		return fmt.Errorf("%w: missing capital allowance rate for %q", ErrInvalidRules, AssetOther)
	}

	rates := map[string]float64{
		"rent_relief_rate":      r.RentReliefRate,
		"allowance_restriction": r.AllowanceRestriction,
		"vat_rate":              r.VATRate,
		"wht_fallback_rate":     r.WHTFallbackRate,
	}
	for _, name := range slices.Sorted(maps.Keys(rates)) {
		if v := rates[name]; v < 0 || v > 1 {
			return fmt.Errorf("%w: %s %v is outside [0, 1]", ErrInvalidRules, name, v)
		}
	}
	if r.RentReliefCap < 0 || r.CompensationExemptionCap < 0 {
		return fmt.Errorf("%w: caps must not be negative", ErrInvalidRules)
	}
	if r.VATFilingDay < 1 || r.VATFilingDay > 28 {
		return fmt.Errorf("%w: vat filing day %d is outside 1-28", ErrInvalidRules, r.VATFilingDay)
	}
	if r.WHTRemittanceDays < 0 {
		return fmt.Errorf("%w: wht remittance days must not be negative", ErrInvalidRules)
	}

	return nil
}
