package tax

import "time"

// Result is one of *PITPersonalResult, *PITBusinessResult or *CITResult.
type Result interface {
	TaxationType() TaxationType
	Payable() float64
	isResult()
}

type PITPersonalResult struct {
	Type            TaxationType        `json:"taxationType"`
	Scope           Scope               `json:"scope"`
	Year            int                 `json:"year"`
	GrossIncome     float64             `json:"grossIncome"`
	ExemptIncome    ExemptIncome        `json:"exemptIncome"`
	NetIncome       float64             `json:"netIncome"`
	Deductions      DeductionBreakdown  `json:"deductions"`
	TaxableIncome   float64             `json:"taxableIncome"`
	Brackets        []BracketTax        `json:"brackets"`
	TotalTax        float64             `json:"totalTax"`
	TaxPayable      float64             `json:"taxPayable"`
	IsExempt        bool                `json:"isExempt"`
	ExemptionReason string              `json:"exemptionReason,omitempty"`
	EffectiveRate   float64             `json:"effectiveRate"`
	FilingDeadline  time.Time           `json:"filingDeadline"`
	Inputs          StatutoryDeductions `json:"inputs"`
}

type PITBusinessResult struct {
	Type               TaxationType            `json:"taxationType"`
	Scope              Scope                   `json:"scope"`
	Year               int                     `json:"year"`
	EntityType         EntityType              `json:"entityType"`
	Income             BusinessIncome          `json:"income"`
	GrossIncome        float64                 `json:"grossIncome"`
	Expenses           BusinessExpenses        `json:"expenses"`
	AllowableExpenses  float64                 `json:"allowableExpenses"`
	DisallowedExpenses float64                 `json:"disallowedExpenses"`
	PreliminaryProfit  float64                 `json:"preliminaryProfit"`
	CapitalAllowances  CapitalAllowanceSummary `json:"capitalAllowances"`
	AdjustedProfit     float64                 `json:"adjustedProfit"`
	PersonalReliefs    DeductionBreakdown      `json:"personalReliefs"`
	TaxableIncome      float64                 `json:"taxableIncome"`
	Brackets           []BracketTax            `json:"brackets"`
	TotalTax           float64                 `json:"totalTax"`
	TaxPayable         float64                 `json:"taxPayable"`
	IsExempt           bool                    `json:"isExempt"`
	ExemptionReason    string                  `json:"exemptionReason,omitempty"`
	EffectiveRate      float64                 `json:"effectiveRate"`
	FilingDeadline     time.Time               `json:"filingDeadline"`
}

type BandTax struct {
	Name          string  `json:"name"`
	Label         string  `json:"label"`
	Rate          float64 `json:"rate"` // percent
	TaxableProfit float64 `json:"taxableProfit"`
	Tax           float64 `json:"tax"`
}

type CITResult struct {
	Type               TaxationType            `json:"taxationType"`
	Year               int                     `json:"year"`
	EntityType         EntityType              `json:"entityType"`
	Turnover           float64                 `json:"turnover"`
	Band               Band                    `json:"band"`
	Revenue            float64                 `json:"revenue"`
	CostOfSales        float64                 `json:"costOfSales"`
	OperatingExpenses  float64                 `json:"operatingExpenses"`
	DisallowedExpenses float64                 `json:"disallowedExpenses"`
	AccountingProfit   float64                 `json:"accountingProfit"`
	Adjustments        CompanyAdjustments      `json:"adjustments"`
	AssessableProfit   float64                 `json:"assessableProfit"`
	CapitalAllowances  CapitalAllowanceSummary `json:"capitalAllowances"`
	TaxableProfit      float64                 `json:"taxableProfit"`
	Bands              []BandTax               `json:"bands"`
	TotalTax           float64                 `json:"totalTax"`
	CITPayable         float64                 `json:"citPayable"`
	IsExempt           bool                    `json:"isExempt"`
	ExemptionReason    string                  `json:"exemptionReason,omitempty"`
	FilingRequired     bool                    `json:"filingRequired"`
	EffectiveRate      float64                 `json:"effectiveRate"`
	FilingDeadline     time.Time               `json:"filingDeadline"`
}

func (r *PITPersonalResult) TaxationType() TaxationType { return r.Type }
func (r *PITBusinessResult) TaxationType() TaxationType { return r.Type }
func (r *CITResult) TaxationType() TaxationType         { return r.Type }

func (r *PITPersonalResult) Payable() float64 { return r.TaxPayable }
func (r *PITBusinessResult) Payable() float64 { return r.TaxPayable }
func (r *CITResult) Payable() float64         { return r.CITPayable }

func (*PITPersonalResult) isResult() {}
func (*PITBusinessResult) isResult() {}
func (*CITResult) isResult()         {}

// PIT returns are due by 31 March and CIT returns by 30 June of the year
// after the assessment year.
func pitFilingDeadline(year int) time.Time {
	return time.Date(year+1, time.March, 31, 0, 0, 0, 0, time.UTC)
}

func citFilingDeadline(year int) time.Time {
	return time.Date(year+1, time.June, 30, 0, 0, 0, 0, time.UTC)
}

func effectiveRate(tax, base float64) float64 {
	if base == 0 {
		return 0
	}
	return tax / base * 100
}
