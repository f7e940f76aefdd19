package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func summaryMap(lines []SummaryLine) map[string]string {
	m := make(map[string]string, len(lines))
	for _, l := range lines {
		m[l.Key] = l.Value
	}
	return m
}

func TestSummarizePersonal(t *testing.T) {
	calc := NewCalculator(DefaultRules())

	lines := Summarize(calc.ComputePersonalTax(PersonalTaxInput{Year: 2026, GrossIncome: 5_000_000, Deductions: StatutoryDeductions{Pension: 400_000}}))

	assert.Equal(t, SummaryLine{Key: "taxationType", Value: "PIT"}, lines[0])

	got := summaryMap(lines)
	assert.Equal(t, "personal", got["scope"])
	assert.Equal(t, "2026", got["year"])
	assert.Equal(t, "4600000.00", got["taxableIncome"])
	assert.Equal(t, "618000.00", got["taxPayable"])
	assert.Equal(t, "false", got["isExempt"])
	assert.Equal(t, "2027-03-31", got["filingDeadline"])
}

func TestSummarizeCIT(t *testing.T) {
	calc := NewCalculator(DefaultRules())
	turnover := 20_000_000.0

	lines := Summarize(calc.ComputeCIT(BusinessTaxInput{
		EntityType:     EntityLimitedCompany,
		Year:           2025,
		AnnualTurnover: &turnover,
		Income:         BusinessIncome{Sales: 20_000_000},
	}))

	got := summaryMap(lines)
	assert.Equal(t, "CIT", got["taxationType"])
	assert.Equal(t, "small", got["band"])
	assert.Equal(t, "0.00", got["citPayable"])
	assert.Equal(t, "true", got["isExempt"])
	assert.Equal(t, "true", got["filingRequired"])
	assert.Equal(t, "2026-06-30", got["filingDeadline"])
	assert.NotContains(t, got, "scope")
}
