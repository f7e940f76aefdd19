package tax

import (
	"fmt"
	"strconv"
)

type SummaryLine struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Summarize flattens a result into ordered key/value lines for consumers that
// only take plain text context.
func Summarize(result Result) []SummaryLine {
	var lines []SummaryLine

	add := func(key string, v any) {
		var value string
		switch v := v.(type) {
		case float64:
			value = strconv.FormatFloat(v, 'f', 2, 64)
		case bool:
			value = strconv.FormatBool(v)
		default:
			value = fmt.Sprint(v)
		}
		lines = append(lines, SummaryLine{Key: key, Value: value})
	}

	switch r := result.(type) {
	case *PITPersonalResult:
		add("taxationType", r.Type)
		add("scope", r.Scope)
		add("year", r.Year)
		add("grossIncome", r.GrossIncome)
		add("exemptIncome", r.ExemptIncome.Total)
		add("deductions", r.Deductions.Total)
		add("taxableIncome", r.TaxableIncome)
		add("taxPayable", r.TaxPayable)
		add("isExempt", r.IsExempt)
		add("effectiveRate", r.EffectiveRate)
		add("filingDeadline", r.FilingDeadline.Format("2006-01-02"))
	case *PITBusinessResult:
		add("taxationType", r.Type)
		add("scope", r.Scope)
		add("year", r.Year)
		add("entityType", r.EntityType)
		add("grossIncome", r.GrossIncome)
		add("allowableExpenses", r.AllowableExpenses)
		add("capitalAllowanceClaimed", r.CapitalAllowances.AllowedAmount)
		add("capitalAllowanceCarriedForward", r.CapitalAllowances.CarryForward)
		add("adjustedProfit", r.AdjustedProfit)
		add("personalReliefs", r.PersonalReliefs.Total)
		add("taxableIncome", r.TaxableIncome)
		add("taxPayable", r.TaxPayable)
		add("isExempt", r.IsExempt)
		add("effectiveRate", r.EffectiveRate)
		add("filingDeadline", r.FilingDeadline.Format("2006-01-02"))
	case *CITResult:
		add("taxationType", r.Type)
		add("year", r.Year)
		add("entityType", r.EntityType)
		add("turnover", r.Turnover)
		add("band", r.Band.Name)
		add("accountingProfit", r.AccountingProfit)
		add("assessableProfit", r.AssessableProfit)
		add("capitalAllowanceClaimed", r.CapitalAllowances.AllowedAmount)
		add("capitalAllowanceCarriedForward", r.CapitalAllowances.CarryForward)
		add("taxableProfit", r.TaxableProfit)
		add("citPayable", r.CITPayable)
		add("isExempt", r.IsExempt)
		add("filingRequired", r.FilingRequired)
		add("effectiveRate", r.EffectiveRate)
		add("filingDeadline", r.FilingDeadline.Format("2006-01-02"))
	}

	return lines
}
