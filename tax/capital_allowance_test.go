package tax

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() Rules {
	rules := DefaultRules()
	rules.CapitalAllowances = map[AssetCategory]AllowanceRate{
		AssetPlantMachinery: {Initial: 0.5, Annual: 0.25},
		AssetMotorVehicles:  {Initial: 0.5, Annual: 0.3},
		AssetOther:          {Initial: 0.25, Annual: 0.2},
	}
	return rules
}

func TestCapitalAllowanceAcquisitionYear(t *testing.T) {
	calc := NewCalculator(testRules())
	asset := CapitalAsset{ID: uuid.New(), Name: "Lathe", Category: AssetPlantMachinery, Cost: 1_000_000, AcquisitionYear: 2023}

	got := calc.CapitalAllowance(asset, 2023)

	assert.Equal(t, asset.ID, got.AssetID)
	assert.Equal(t, 0, got.YearsHeld)
	assert.Equal(t, 500_000.0, got.InitialAllowance)
	assert.Equal(t, 0.0, got.AnnualAllowance)
	assert.Equal(t, 500_000.0, got.TotalAllowance)
	assert.Equal(t, 500_000.0, got.WrittenDownValue)
}

func TestCapitalAllowanceFollowingYear(t *testing.T) {
	calc := NewCalculator(testRules())
	asset := CapitalAsset{Category: AssetPlantMachinery, Cost: 1_000_000, AcquisitionYear: 2023}

	got := calc.CapitalAllowance(asset, 2024)

	// one year of 25% on the 500,000 left after the initial allowance
	assert.Equal(t, 0.0, got.InitialAllowance)
	assert.Equal(t, 125_000.0, got.AnnualAllowance)
	assert.Equal(t, 125_000.0, got.TotalAllowance)
	assert.Equal(t, 375_000.0, got.WrittenDownValue)
}

func TestCapitalAllowanceSchedule(t *testing.T) {
	type TC struct {
		year        int
		annual      float64
		writtenDown float64
	}

	asset := CapitalAsset{Category: AssetMotorVehicles, Cost: 1_000_000, AcquisitionYear: 2020}

	// 500,000 post-initial balance relieved at 150,000 a year
	tcs := []TC{
		{year: 2021, annual: 150_000, writtenDown: 350_000},
		{year: 2022, annual: 150_000, writtenDown: 200_000},
		{year: 2023, annual: 150_000, writtenDown: 50_000},
		{year: 2024, annual: 50_000, writtenDown: 0},
		{year: 2025, annual: 0, writtenDown: 0},
		{year: 2040, annual: 0, writtenDown: 0},
	}

	calc := NewCalculator(testRules())

	for _, tc := range tcs {
		got := calc.CapitalAllowance(asset, tc.year)

		assert.InDelta(t, tc.annual, got.AnnualAllowance, 1e-6, "year %d", tc.year)
		assert.InDelta(t, tc.writtenDown, got.WrittenDownValue, 1e-6, "year %d", tc.year)
	}
}

// Replaying the schedule from scratch must agree with a ledger that claims
// one year at a time and carries the written-down value forward.
func TestCapitalAllowanceReplayMatchesLedger(t *testing.T) {
	calc := NewCalculator(DefaultRules())

	categories := []AssetCategory{
		AssetPlantMachinery, AssetMotorVehicles, AssetFurnitureFittings, AssetBuildings,
		AssetComputersEquipment, AssetAgriculturalEquipment, AssetOther,
	}

	for _, category := range categories {
		for _, cost := range []float64{1, 999_999.99, 3_333_333, 125_000_000} {
			asset := CapitalAsset{Category: category, Cost: cost, AcquisitionYear: 2000}
			rate := calc.Rules().AllowanceRateFor(category)

			first := calc.CapitalAllowance(asset, 2000)
			wdv := first.WrittenDownValue
			yearly := (cost - cost*rate.Initial) * rate.Annual

			for year := 2001; year <= 2030; year++ {
				claim := math.Min(yearly, wdv)
				wdv -= claim

				got := calc.CapitalAllowance(asset, year)

				require.Equal(t, claim, got.AnnualAllowance, "%s cost %v year %d", category, cost, year)
				require.Equal(t, wdv, got.WrittenDownValue, "%s cost %v year %d", category, cost, year)
				require.GreaterOrEqual(t, got.WrittenDownValue, 0.0)
				require.Equal(t, got.InitialAllowance+got.AnnualAllowance, got.TotalAllowance)
			}
		}
	}
}

func TestCapitalAllowanceNotYetAcquired(t *testing.T) {
	calc := NewCalculator(testRules())

	got := calc.CapitalAllowance(CapitalAsset{Category: AssetPlantMachinery, Cost: 400_000, AcquisitionYear: 2026}, 2025)

	assert.Equal(t, 0.0, got.TotalAllowance)
	assert.Equal(t, 400_000.0, got.WrittenDownValue)
}

func TestCapitalAllowanceUnknownCategoryUsesOther(t *testing.T) {
	calc := NewCalculator(testRules())

	got := calc.CapitalAllowance(CapitalAsset{Category: "spaceship", Cost: 100_000, AcquisitionYear: 2025}, 2025)

	assert.Equal(t, 0.25, got.InitialRate)
	assert.Equal(t, 25_000.0, got.InitialAllowance)
}

func TestRestrictAllowance(t *testing.T) {
	type TC struct {
		name         string
		total        float64
		profit       float64
		allowed      float64
		carryForward float64
		maxAllowable float64
	}

	tcs := []TC{
		{name: "allowance under two-thirds", total: 100_000, profit: 900_000, allowed: 100_000, carryForward: 0, maxAllowable: 600_000},
		{name: "allowance over two-thirds", total: 900_000, profit: 900_000, allowed: 600_000, carryForward: 300_000, maxAllowable: 600_000},
		{name: "zero profit", total: 500_000, profit: 0, allowed: 0, carryForward: 500_000, maxAllowable: 0},
		{name: "loss", total: 500_000, profit: -250_000, allowed: 0, carryForward: 500_000, maxAllowable: 0},
	}

	calc := NewCalculator(DefaultRules())

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.RestrictAllowance(tc.total, tc.profit)

			assert.InDelta(t, tc.allowed, got.AllowedAmount, 1e-6)
			assert.InDelta(t, tc.carryForward, got.CarryForward, 1e-6)
			assert.InDelta(t, tc.maxAllowable, got.MaxAllowable, 1e-6)
			assert.InDelta(t, tc.total, got.AllowedAmount+got.CarryForward, 1e-6)
		})
	}
}

func TestRestrictAllowanceNeverExceedsTwoThirds(t *testing.T) {
	calc := NewCalculator(DefaultRules())

	for profit := -1_000_000.0; profit <= 5_000_000; profit += 333_333 {
		for _, total := range []float64{0, 10_000, 1_000_000, 10_000_000} {
			got := calc.RestrictAllowance(total, profit)

			if profit > 0 {
				assert.LessOrEqual(t, got.AllowedAmount, profit*2/3+1e-6)
			} else {
				assert.Equal(t, 0.0, got.AllowedAmount)
				assert.Equal(t, total, got.CarryForward)
			}
		}
	}
}

func TestCapitalAllowancesAggregate(t *testing.T) {
	calc := NewCalculator(testRules())

	assets := []CapitalAsset{
		{Category: AssetPlantMachinery, Cost: 1_000_000, AcquisitionYear: 2025},
		{Category: AssetPlantMachinery, Cost: 1_000_000, AcquisitionYear: 2024},
		{Category: AssetOther, Cost: 400_000, AcquisitionYear: 2030},
	}

	got := calc.CapitalAllowances(assets, 2025, 600_000)

	require.Len(t, got.Assets, 3)
	assert.Equal(t, 500_000.0, got.InitialAllowance)
	assert.Equal(t, 125_000.0, got.AnnualAllowance)
	assert.Equal(t, 625_000.0, got.TotalAllowance)
	assert.InDelta(t, 400_000, got.MaxAllowable, 1e-6)
	assert.InDelta(t, 400_000, got.AllowedAmount, 1e-6)
	assert.InDelta(t, 225_000, got.CarryForward, 1e-6)
	assert.Equal(t, 600_000.0, got.RestrictedAgainst)
}
