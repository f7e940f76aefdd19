package tax

import (
	"math"

	"github.com/google/uuid"
)

type AssetAllowance struct {
	AssetID          uuid.UUID     `json:"assetId"`
	Name             string        `json:"name"`
	Category         AssetCategory `json:"category"`
	YearsHeld        int           `json:"yearsHeld"`
	InitialRate      float64       `json:"initialRate"`
	AnnualRate       float64       `json:"annualRate"`
	InitialAllowance float64       `json:"initialAllowance"`
	AnnualAllowance  float64       `json:"annualAllowance"`
	TotalAllowance   float64       `json:"totalAllowance"`
	WrittenDownValue float64       `json:"writtenDownValue"`
}

// CapitalAllowance derives an asset's allowance for year. Nothing is stored
// between years: the schedule from acquisition is replayed on every call,
// which costs O(yearsHeld).
//
// In the acquisition year only the initial allowance is claimed. In every
// later year the annual allowance is a fixed share of the post-initial
// balance, limited to whatever written-down value remains. An asset acquired
// after year has no allowance yet.
func (c *Calculator) CapitalAllowance(asset CapitalAsset, year int) AssetAllowance {
	rate := c.rules.AllowanceRateFor(asset.Category)

	a := AssetAllowance{
		AssetID:     asset.ID,
		Name:        asset.Name,
		Category:    asset.Category,
		YearsHeld:   year - asset.AcquisitionYear,
		InitialRate: rate.Initial,
		AnnualRate:  rate.Annual,
	}

	switch {
	case a.YearsHeld < 0:
		a.YearsHeld = 0
		a.WrittenDownValue = asset.Cost

		return a
	case a.YearsHeld == 0:
		a.InitialAllowance = asset.Cost * rate.Initial
		a.TotalAllowance = a.InitialAllowance
		a.WrittenDownValue = asset.Cost - a.InitialAllowance

		return a
	}

	initialClaimed := asset.Cost * rate.Initial
	yearly := (asset.Cost - initialClaimed) * rate.Annual
	wdv := asset.Cost - initialClaimed

	// claims of the years before this one
	for y := 1; y < a.YearsHeld; y++ {
		if wdv-yearly <= 0 {
			wdv = 0
			break
		}
		wdv -= yearly
	}

	a.AnnualAllowance = math.Max(math.Min(yearly, wdv), 0)
	a.TotalAllowance = a.AnnualAllowance
	a.WrittenDownValue = wdv - a.AnnualAllowance

	return a
}

type CapitalAllowanceSummary struct {
	Assets            []AssetAllowance `json:"assets"`
	InitialAllowance  float64          `json:"initialAllowance"`
	AnnualAllowance   float64          `json:"annualAllowance"`
	TotalAllowance    float64          `json:"totalAllowance"`
	MaxAllowable      float64          `json:"maxAllowable"`
	AllowedAmount     float64          `json:"allowedAmount"`
	CarryForward      float64          `json:"carryForward"`
	RestrictedAgainst float64          `json:"restrictedAgainst"`
}

// CapitalAllowances aggregates the allowances of all assets for year and
// restricts the total against profit.
func (c *Calculator) CapitalAllowances(assets []CapitalAsset, year int, profit float64) CapitalAllowanceSummary {
	s := CapitalAllowanceSummary{
		Assets: make([]AssetAllowance, 0, len(assets)),
	}

	for _, asset := range assets {
		a := c.CapitalAllowance(asset, year)

		s.InitialAllowance += a.InitialAllowance
		s.AnnualAllowance += a.AnnualAllowance
		s.TotalAllowance += a.TotalAllowance
		s.Assets = append(s.Assets, a)
	}

	r := c.RestrictAllowance(s.TotalAllowance, profit)
	s.MaxAllowable = r.MaxAllowable
	s.AllowedAmount = r.AllowedAmount
	s.CarryForward = r.CarryForward
	s.RestrictedAgainst = profit

	return s
}

type AllowanceRestriction struct {
	MaxAllowable  float64 `json:"maxAllowable"`
	AllowedAmount float64 `json:"allowedAmount"`
	CarryForward  float64 `json:"carryForward"`
}

// RestrictAllowance limits a year's claim to two-thirds of a positive profit.
// Against a nil or negative profit nothing is allowed and the whole allowance
// carries forward.
func (c *Calculator) RestrictAllowance(totalAllowance, profit float64) AllowanceRestriction {
	var maxAllowable float64
	if profit > 0 {
		maxAllowable = profit * c.rules.AllowanceRestriction
	}

	allowed := math.Min(totalAllowance, maxAllowable)

	return AllowanceRestriction{
		MaxAllowable:  maxAllowable,
		AllowedAmount: allowed,
		CarryForward:  totalAllowance - allowed,
	}
}
