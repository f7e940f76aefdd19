package tax

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSumByCategory(t *testing.T) {
	records := []Record{
		{Date: date(2025, time.January, 4), Amount: 100_000, Category: "Sales"},
		{Date: date(2025, time.June, 30), Amount: 50_000, Category: "sales"},
		{Date: date(2025, time.July, 1), Amount: 20_000, Category: "Cost of Sales"},
		{Date: date(2025, time.August, 9), Amount: 5_000, Category: "cost-of-sales"},
		{Date: date(2024, time.December, 31), Amount: 999_999, Category: "Sales"},
		{Date: date(2026, time.January, 1), Amount: 999_999, Category: "Sales"},
	}

	got := SumByCategory(records, 2025)

	assert.Equal(t, map[string]float64{"sales": 150_000, "cost_of_sales": 25_000}, got)
	assert.Equal(t, 175_000.0, Total(got))
}

func TestSumByCategoryNoRecords(t *testing.T) {
	got := SumByCategory(nil, 2025)

	assert.Empty(t, got)
	assert.Equal(t, 0.0, Total(got))
}

func TestNormalizeCategory(t *testing.T) {
	type TC struct {
		category string
		expected string
	}

	tcs := []TC{
		{category: "Cost of Sales", expected: "cost_of_sales"},
		{category: "cost-of-sales", expected: "cost_of_sales"},
		{category: "  Repairs / Maintenance ", expected: "repairs_maintenance"},
		{category: "RENT", expected: "rent"},
		{category: "", expected: ""},
	}

	for _, tc := range tcs {
		assert.Equal(t, tc.expected, NormalizeCategory(tc.category))
	}
}

func TestBusinessIncomeFrom(t *testing.T) {
	got := BusinessIncomeFrom(map[string]float64{
		"sales":          1_000_000,
		"Service Income": 200_000,
		"commissions":    30_000,
		"rental_income":  40_000,
		"interest":       5_000,
		"grants":         7_000,
	})

	assert.Equal(t, BusinessIncome{
		Sales:      1_000_000,
		Services:   200_000,
		Commission: 30_000,
		Rental:     40_000,
		Interest:   5_000,
		Other:      7_000,
	}, got)
	assert.Equal(t, 1_282_000.0, got.Total())
}

func TestBusinessExpensesFrom(t *testing.T) {
	got := BusinessExpensesFrom(map[string]float64{
		"cogs":          300_000,
		"wages":         120_000,
		"rent":          60_000,
		"fuel":          10_000,
		"depreciation":  25_000,
		"penalties":     2_000,
		"drawings":      15_000,
		"subscriptions": 4_000,
	})

	assert.Equal(t, 300_000.0, got.CostOfSales)
	assert.Equal(t, 120_000.0, got.Salaries)
	assert.Equal(t, 60_000.0, got.Rent)
	assert.Equal(t, 10_000.0, got.Transport)
	assert.Equal(t, 4_000.0, got.OtherAllowable)
	assert.Equal(t, 494_000.0, got.Allowable())
	assert.Equal(t, 42_000.0, got.Disallowed())
}
