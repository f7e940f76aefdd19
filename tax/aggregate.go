package tax

import (
	"maps"
	"slices"
	"strings"
)

// SumByCategory keeps only the records dated in year and sums them per
// normalized category.
func SumByCategory(records []Record, year int) map[string]float64 {
	sums := make(map[string]float64)

	for _, r := range records {
		if r.Date.Year() != year {
			continue
		}
		sums[NormalizeCategory(r.Category)] += r.Amount
	}

	return sums
}

// Total adds the sums in key order so identical inputs round identically.
func Total(sums map[string]float64) float64 {
	var total float64
	for _, k := range slices.Sorted(maps.Keys(sums)) {
		total += sums[k]
	}
	return total
}

// NormalizeCategory lowercases a category and joins its words with
// underscores, so "Cost of Sales" and "cost-of-sales" agree.
func NormalizeCategory(category string) string {
	fields := strings.FieldsFunc(strings.ToLower(category), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/'
	})
	return strings.Join(fields, "_")
}

// BusinessIncomeFrom maps per-category income onto the structured income
// lines. Unrecognised categories count as other income.
func BusinessIncomeFrom(sums map[string]float64) BusinessIncome {
	var in BusinessIncome

	for _, category := range slices.Sorted(maps.Keys(sums)) {
		amount := sums[category]

		switch NormalizeCategory(category) {
		case "sales", "sales_revenue", "revenue":
			in.Sales += amount
		case "services", "service_income", "service_revenue":
			in.Services += amount
		case "commission", "commissions":
			in.Commission += amount
		case "rental", "rental_income", "rent_income":
			in.Rental += amount
		case "interest", "interest_income":
			in.Interest += amount
		default:
			in.Other += amount
		}
	}

	return in
}

// BusinessExpensesFrom maps per-category expenses onto the structured expense
// lines. Unrecognised categories count as other allowable expenses.
func BusinessExpensesFrom(sums map[string]float64) BusinessExpenses {
	var ex BusinessExpenses

	for _, category := range slices.Sorted(maps.Keys(sums)) {
		amount := sums[category]

		switch NormalizeCategory(category) {
		case "cost_of_sales", "cost_of_goods_sold", "cogs", "purchases":
			ex.CostOfSales += amount
		case "salaries", "wages", "salaries_wages", "payroll":
			ex.Salaries += amount
		case "rent", "rent_rates":
			ex.Rent += amount
		case "utilities", "electricity", "power":
			ex.Utilities += amount
		case "transport", "travel", "fuel":
			ex.Transport += amount
		case "marketing", "advertising":
			ex.Marketing += amount
		case "professional_fees", "legal", "accounting", "audit_fees":
			ex.ProfessionalFees += amount
		case "repairs", "repairs_maintenance", "maintenance":
			ex.Repairs += amount
		case "insurance":
			ex.Insurance += amount
		case "depreciation":
			ex.Depreciation += amount
		case "fines", "penalties", "fines_penalties":
			ex.FinesPenalties += amount
		case "personal", "personal_expenses", "drawings":
			ex.PersonalExpenses += amount
		case "donations", "unapproved_donations":
			ex.UnapprovedDonations += amount
		default:
			ex.OtherAllowable += amount
		}
	}

	return ex
}
