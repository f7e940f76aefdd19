package tax

import (
	"fmt"
	"math"
)

// ComputePersonalTax runs the individual PIT pipeline: exempt income comes
// off gross income first, statutory deductions second, and the remainder is
// taxed through the brackets.
func (c *Calculator) ComputePersonalTax(in PersonalTaxInput) *PITPersonalResult {
	exempt := c.ExemptIncome(in.Deductions)
	netIncome := math.Max(in.GrossIncome-exempt.Total, 0)

	deductions := c.Deductions(in.Deductions)
	taxable := math.Max(netIncome-deductions.Total, 0)

	brackets := c.CalculateBrackets(taxable)

	r := &PITPersonalResult{
		Type:           TaxationPIT,
		Scope:          ScopePersonal,
		Year:           in.Year,
		GrossIncome:    in.GrossIncome,
		ExemptIncome:   exempt,
		NetIncome:      netIncome,
		Deductions:     deductions,
		TaxableIncome:  taxable,
		Brackets:       brackets.Brackets,
		TotalTax:       brackets.TotalTax,
		TaxPayable:     brackets.TotalTax,
		FilingDeadline: pitFilingDeadline(in.Year),
		Inputs:         in.Deductions,
	}

	if threshold := c.rules.ExemptionThreshold(); taxable <= threshold {
		r.IsExempt = true
		r.ExemptionReason = exemptionReason(threshold)
		r.TaxPayable = 0
	}

	r.EffectiveRate = effectiveRate(r.TaxPayable, in.GrossIncome)

	return r
}

func exemptionReason(threshold float64) string {
	return fmt.Sprintf("taxable income does not exceed the ₦%.0f exemption threshold", threshold)
}
