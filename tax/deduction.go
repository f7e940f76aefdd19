package tax

import "math"

type DeductionBreakdown struct {
	Pension             float64 `json:"pension"`
	HealthInsurance     float64 `json:"healthInsurance"`
	HousingFund         float64 `json:"housingFund"`
	HousingLoanInterest float64 `json:"housingLoanInterest"`
	LifeInsurance       float64 `json:"lifeInsurance"`
	RentRelief          float64 `json:"rentRelief"`
	Total               float64 `json:"total"`
}

// RentRelief is 20% of rent paid, capped.
func (c *Calculator) RentRelief(rentPaid float64) float64 {
	return math.Min(rentPaid*c.rules.RentReliefRate, c.rules.RentReliefCap)
}

// Deductions reshapes the statutory record into its deductible amounts. Only
// rent is transformed; everything else passes through.
func (c *Calculator) Deductions(d StatutoryDeductions) DeductionBreakdown {
	b := DeductionBreakdown{
		Pension:             d.Pension,
		HealthInsurance:     d.HealthInsurance,
		HousingFund:         d.HousingFund,
		HousingLoanInterest: d.HousingLoanInterest,
		LifeInsurance:       d.LifeInsurance,
		RentRelief:          c.RentRelief(d.RentPaid),
	}
	b.Total = b.Pension + b.HealthInsurance + b.HousingFund +
		b.HousingLoanInterest + b.LifeInsurance + b.RentRelief

	return b
}

type ExemptIncome struct {
	Gifts                  float64 `json:"gifts"`
	PensionBenefits        float64 `json:"pensionBenefits"`
	EmploymentCompensation float64 `json:"employmentCompensation"`
	Total                  float64 `json:"total"`
}

// ExemptIncome totals the receipts removed from gross income before any
// deduction. Compensation for loss of employment is exempt only up to the cap.
func (c *Calculator) ExemptIncome(d StatutoryDeductions) ExemptIncome {
	e := ExemptIncome{
		Gifts:                  d.GiftsReceived,
		PensionBenefits:        d.PensionBenefitsReceived,
		EmploymentCompensation: math.Min(d.EmploymentCompensation, c.rules.CompensationExemptionCap),
	}
	e.Total = e.Gifts + e.PensionBenefits + e.EmploymentCompensation

	return e
}

// ReliefsFor builds the personal relief breakdown of an unincorporated
// business owner. Annual rent is relieved separately through RentRelief.
func (c *Calculator) ReliefsFor(r PersonalReliefs) DeductionBreakdown {
	b := c.Deductions(StatutoryDeductions{
		Pension:             r.Pension,
		HealthInsurance:     r.HealthInsurance,
		HousingFund:         r.HousingFund,
		HousingLoanInterest: r.HousingLoanInterest,
		LifeInsurance:       r.LifeInsurance,
	})
	b.RentRelief = c.RentRelief(r.AnnualRent)
	b.Total += b.RentRelief

	return b
}
