package tax

// ClassifyTurnover returns the first band whose (min, max] interval holds
// turnover. Turnover of zero or below matches no interval and falls back to
// the lowest band.
func (c *Calculator) ClassifyTurnover(turnover float64) Band {
	for _, b := range c.rules.CITBands {
		if turnover > b.Min && turnover <= b.upper() {
			return b
		}
	}

	return c.rules.CITBands[0]
}
