package tax

import (
	"fmt"
	"math"
)

// ComputeBusinessTax routes a business to its pipeline: a limited company is
// assessed for CIT, every other entity for PIT.
func (c *Calculator) ComputeBusinessTax(in BusinessTaxInput) Result {
	if in.EntityType == EntityLimitedCompany {
		return c.ComputeCIT(in)
	}
	return c.ComputeBusinessPIT(in)
}

// ComputeBusinessPIT assesses a sole proprietorship or partnership. Capital
// allowances are restricted against profit before the allowance itself.
func (c *Calculator) ComputeBusinessPIT(in BusinessTaxInput) *PITBusinessResult {
	gross := in.Income.Total()
	allowable := in.Expenses.Allowable()
	preliminary := gross - allowable

	allowances := c.CapitalAllowances(in.Assets, in.Year, preliminary)
	adjusted := math.Max(preliminary-allowances.AllowedAmount, 0)

	var reliefs PersonalReliefs
	if in.PersonalReliefs != nil {
		reliefs = *in.PersonalReliefs
	}
	relief := c.ReliefsFor(reliefs)

	taxable := math.Max(adjusted-relief.Total, 0)
	brackets := c.CalculateBrackets(taxable)

	r := &PITBusinessResult{
		Type:               TaxationPIT,
		Scope:              ScopeBusiness,
		Year:               in.Year,
		EntityType:         in.EntityType,
		Income:             in.Income,
		GrossIncome:        gross,
		Expenses:           in.Expenses,
		AllowableExpenses:  allowable,
		DisallowedExpenses: in.Expenses.Disallowed(),
		PreliminaryProfit:  preliminary,
		CapitalAllowances:  allowances,
		AdjustedProfit:     adjusted,
		PersonalReliefs:    relief,
		TaxableIncome:      taxable,
		Brackets:           brackets.Brackets,
		TotalTax:           brackets.TotalTax,
		TaxPayable:         brackets.TotalTax,
		FilingDeadline:     pitFilingDeadline(in.Year),
	}

	if threshold := c.rules.ExemptionThreshold(); taxable <= threshold {
		r.IsExempt = true
		r.ExemptionReason = exemptionReason(threshold)
		r.TaxPayable = 0
	}

	r.EffectiveRate = effectiveRate(r.TaxPayable, gross)

	return r
}

// ComputeCIT assesses a limited company. A zero-rate band exempts the company
// from payment but never from filing.
func (c *Calculator) ComputeCIT(in BusinessTaxInput) *CITResult {
	revenue := in.Income.Total()

	turnover := revenue
	if in.AnnualTurnover != nil {
		turnover = *in.AnnualTurnover
	}
	band := c.ClassifyTurnover(turnover)

	var adj CompanyAdjustments
	if in.Adjustments != nil {
		adj = *in.Adjustments
	}

	costOfSales := in.Expenses.CostOfSales
	operating := in.Expenses.Allowable() - costOfSales
	accounting := revenue - costOfSales - operating

	assessable := math.Max(accounting+
		adj.Depreciation+
		adj.NonDeductibleExpenses+
		adj.Provisions+
		adj.UnapprovedDonations-
		adj.ExemptIncome, 0)

	allowances := c.CapitalAllowances(in.Assets, in.Year, assessable)
	taxable := math.Max(assessable-allowances.AllowedAmount, 0)

	r := &CITResult{
		Type:               TaxationCIT,
		Year:               in.Year,
		EntityType:         in.EntityType,
		Turnover:           turnover,
		Band:               band,
		Revenue:            revenue,
		CostOfSales:        costOfSales,
		OperatingExpenses:  operating,
		DisallowedExpenses: in.Expenses.Disallowed(),
		AccountingProfit:   accounting,
		Adjustments:        adj,
		AssessableProfit:   assessable,
		CapitalAllowances:  allowances,
		TaxableProfit:      taxable,
		FilingRequired:     true,
		FilingDeadline:     citFilingDeadline(in.Year),
	}

	if band.Percentage == 0 {
		r.IsExempt = true
		r.ExemptionReason = fmt.Sprintf("turnover falls in the zero-rate %s band", band.Name)
	}

	bandTax := BandTax{
		Name:          band.Name,
		Label:         band.Label,
		Rate:          band.Percentage * 100,
		TaxableProfit: taxable,
	}
	if !r.IsExempt {
		bandTax.Tax = taxable * band.Percentage
	}

	r.Bands = []BandTax{bandTax}
	r.TotalTax = bandTax.Tax
	r.CITPayable = bandTax.Tax
	r.EffectiveRate = effectiveRate(r.CITPayable, revenue)

	return r
}
