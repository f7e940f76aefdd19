package tax

// Calculator applies one set of Rules. It holds no mutable state and is safe
// for concurrent use.
type Calculator struct {
	rules Rules
}

func NewCalculator(rules Rules) *Calculator {
	return &Calculator{rules: rules.clone()}
}

// Rules returns a copy; changing it does not affect the calculator.
func (c *Calculator) Rules() Rules {
	return c.rules.clone()
}

type BracketTax struct {
	Label           string  `json:"label"`
	IncomeInBracket float64 `json:"incomeInBracket"`
	Rate            float64 `json:"rate"` // percent
	Tax             float64 `json:"tax"`
}

type BracketResult struct {
	Brackets []BracketTax `json:"brackets"`
	TotalTax float64      `json:"totalTax"`
}

// CalculateBrackets applies the progressive PIT brackets to a taxable amount.
// Every bracket is always reported so the breakdown keeps the same shape.
func (c *Calculator) CalculateBrackets(taxable float64) BracketResult {
	brackets := c.rules.PITBrackets
	statements := make([]BracketTax, 0, len(brackets))

	if taxable <= c.rules.ExemptionThreshold() {
		for _, b := range brackets {
			statements = append(statements, BracketTax{
				Label: b.Label,
				Rate:  b.Percentage * 100,
			})
		}

		return BracketResult{Brackets: statements}
	}

	var totalTax float64

	remain := taxable

	for _, b := range brackets {
		if remain <= 0 {
			statements = append(statements, BracketTax{
				Label: b.Label,
				Rate:  b.Percentage * 100,
			})

			continue
		}

		income := remain
		if width := b.upper() - b.Min; income > width {
			income = width
		}

		tax := income * b.Percentage
		totalTax += tax
		remain -= income

		statements = append(statements, BracketTax{
			Label:           b.Label,
			IncomeInBracket: income,
			Rate:            b.Percentage * 100,
			Tax:             tax,
		})
	}

	return BracketResult{
		Brackets: statements,
		TotalTax: totalTax,
	}
}
