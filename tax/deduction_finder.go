package tax

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

type DeductionCategory string

const (
	DeductionPension             DeductionCategory = "pension"
	DeductionHealthInsurance     DeductionCategory = "health_insurance"
	DeductionHousingFund         DeductionCategory = "housing_fund"
	DeductionHousingLoanInterest DeductionCategory = "housing_loan_interest"
	DeductionLifeInsurance       DeductionCategory = "life_insurance"
	DeductionRent                DeductionCategory = "rent"
	DeductionBusinessExpense     DeductionCategory = "business_expense"
)

// Expense is a free-text expense the user has not claimed anywhere yet.
type Expense struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Claimed     bool      `json:"claimed"`
}

type DeductionSuggestion struct {
	ExpenseID         uuid.UUID         `json:"expenseId"`
	Description       string            `json:"description"`
	Amount            float64           `json:"amount"`
	Category          DeductionCategory `json:"category"`
	Confidence        float64           `json:"confidence"`
	DeductiblePercent float64           `json:"deductiblePercent"`
	PotentialSavings  float64           `json:"potentialSavings"`
	Reasoning         string            `json:"reasoning"`
}

type DeductionFindings struct {
	Suggestions           []DeductionSuggestion `json:"suggestions"`
	TotalPotentialSavings float64               `json:"totalPotentialSavings"`
	ScannedCount          int                   `json:"scannedCount"`
}

type deductionRule struct {
	phrases       []string
	category      DeductionCategory
	deductiblePct float64
	confidence    float64
	reasoning     string
}

// Phrases that mark an expense as personal consumption. Checked first.
var personalPhrases = []string{
	"groceries", "supermarket", "restaurant", "fast food", "netflix", "dstv",
	"showmax", "spotify", "cinema", "betting", "vacation", "birthday",
}

// Checked in order; the first matching rule wins.
var deductionRules = []deductionRule{
	{
		phrases:       []string{"national housing fund", "nhf"},
		category:      DeductionHousingFund,
		deductiblePct: 1,
		confidence:    0.90,
		reasoning:     "National Housing Fund contribution",
	},
	{
		phrases:       []string{"pension", "rsa", "pfa", "retirement savings"},
		category:      DeductionPension,
		deductiblePct: 1,
		confidence:    0.85,
		reasoning:     "Pension contribution under the contributory pension scheme",
	},
	{
		phrases:       []string{"nhis", "hmo", "health insurance", "medical insurance"},
		category:      DeductionHealthInsurance,
		deductiblePct: 1,
		confidence:    0.85,
		reasoning:     "Health insurance premium",
	},
	{
		phrases:       []string{"life insurance", "life assurance", "annuity premium"},
		category:      DeductionLifeInsurance,
		deductiblePct: 1,
		confidence:    0.80,
		reasoning:     "Life insurance or annuity premium",
	},
	{
		phrases:       []string{"mortgage interest", "housing loan", "mortgage"},
		category:      DeductionHousingLoanInterest,
		deductiblePct: 1,
		confidence:    0.70,
		reasoning:     "Interest on a loan for an owner-occupied home may be deductible",
	},
	{
		phrases:    []string{"house rent", "rent", "landlord", "tenancy"},
		category:   DeductionRent,
		confidence: 0.60,
		reasoning:  "Rent paid qualifies for rent relief",
	},
	{
		phrases: []string{
			"office supplies", "stationery", "internet", "data subscription",
			"diesel", "generator", "advertising", "accountant", "audit",
			"legal fee", "repairs", "maintenance", "business",
		},
		category:      DeductionBusinessExpense,
		deductiblePct: 1,
		confidence:    0.50,
		reasoning:     "Looks like a business running cost; allowable if wholly incurred for the business",
	},
}

// MarginalRate is the rate of the bracket that taxable income reaches.
func (c *Calculator) MarginalRate(taxable float64) float64 {
	for _, b := range c.rules.PITBrackets {
		if taxable <= b.upper() {
			return b.Percentage
		}
	}
	return c.rules.PITBrackets[len(c.rules.PITBrackets)-1].Percentage
}

// FindPotentialDeductions scans unclaimed expenses for likely deductions and
// estimates the tax each would save at marginalRate. Suggestions are advisory
// and never change a computed result.
func (c *Calculator) FindPotentialDeductions(expenses []Expense, marginalRate, minConfidence float64) DeductionFindings {
	findings := DeductionFindings{
		Suggestions:  []DeductionSuggestion{},
		ScannedCount: len(expenses),
	}

	for _, e := range expenses {
		if e.Claimed || e.Amount <= 0 {
			continue
		}

		rule, ok := classifyExpense(e)
		if !ok || rule.confidence < minConfidence {
			continue
		}

		deductible := e.Amount * rule.deductiblePct
		if rule.category == DeductionRent {
			deductible = c.RentRelief(e.Amount)
		}
		pct := deductible / e.Amount

		savings := round2(deductible * marginalRate)
		findings.TotalPotentialSavings = round2(findings.TotalPotentialSavings + savings)

		findings.Suggestions = append(findings.Suggestions, DeductionSuggestion{
			ExpenseID:         e.ID,
			Description:       e.Description,
			Amount:            e.Amount,
			Category:          rule.category,
			Confidence:        rule.confidence,
			DeductiblePercent: pct,
			PotentialSavings:  savings,
			Reasoning:         rule.reasoning,
		})
	}

	return findings
}

func classifyExpense(e Expense) (deductionRule, bool) {
	words := tokenize(e.Description + " " + e.Category)

	for _, p := range personalPhrases {
		if containsPhrase(words, p) {
			return deductionRule{}, false
		}
	}

	for _, rule := range deductionRules {
		for _, p := range rule.phrases {
			if containsPhrase(words, p) {
				return rule, true
			}
		}
	}

	return deductionRule{}, false
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsPhrase matches whole words, so "rent" does not match "current".
func containsPhrase(words []string, phrase string) bool {
	target := strings.Fields(phrase)
	if len(target) == 0 || len(target) > len(words) {
		return false
	}

	for i := 0; i+len(target) <= len(words); i++ {
		match := true
		for j, t := range target {
			if words[i+j] != t {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}
