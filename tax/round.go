package tax

import "github.com/shopspring/decimal"

// round2 rounds a Naira amount half away from zero to kobo.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
