package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTurnover(t *testing.T) {
	type TC struct {
		turnover float64
		expected string
	}

	tcs := []TC{
		{turnover: 1, expected: "small"},
		{turnover: 20_000_000, expected: "small"},
		{turnover: 25_000_000, expected: "small"},
		{turnover: 25_000_000.01, expected: "medium"},
		{turnover: 100_000_000, expected: "medium"},
		{turnover: 100_000_001, expected: "large"},
		{turnover: 20_000_000_000, expected: "large"},
		{turnover: 20_000_000_001, expected: "very_large"},
		{turnover: 1e15, expected: "very_large"},
		// no interval holds these; the lowest band is the fallback
		{turnover: 0, expected: "small"},
		{turnover: -5_000_000, expected: "small"},
	}

	calc := NewCalculator(DefaultRules())

	for _, tc := range tcs {
		assert.Equal(t, tc.expected, calc.ClassifyTurnover(tc.turnover).Name, "turnover %v", tc.turnover)
	}
}
