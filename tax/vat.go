package tax

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type VATDirection string

const (
	VATOutput VATDirection = "output"
	VATInput  VATDirection = "input"
)

type VATTransaction struct {
	ID        uuid.UUID    `json:"id"`
	Date      time.Time    `json:"date"`
	Direction VATDirection `json:"direction"`
	Category  string       `json:"category"`
	Amount    float64      `json:"amount"`
	VATAmount float64      `json:"vatAmount"`
	IsExempt  bool         `json:"isExempt"`
}

// VATPeriod is a calendar month, or the whole year when Month is zero.
type VATPeriod struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (p VATPeriod) Annual() bool {
	return p.Month == 0
}

// DueDate is the 21st of the month after the period, or 31 January of the
// next year for an annual period.
func (p VATPeriod) DueDate(filingDay int) time.Time {
	if p.Annual() {
		return time.Date(p.Year+1, time.January, 31, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(p.Year, time.Month(p.Month)+1, filingDay, 0, 0, 0, 0, time.UTC)
}

type VATSummary struct {
	TaxableAmount float64            `json:"taxableAmount"`
	ExemptAmount  float64            `json:"exemptAmount"`
	VAT           float64            `json:"vat"`
	ByCategory    map[string]float64 `json:"byCategory"`
	Count         int                `json:"count"`
}

type VATReturn struct {
	Period        VATPeriod  `json:"period"`
	Output        VATSummary `json:"output"`
	Input         VATSummary `json:"input"`
	NetVATPayable float64    `json:"netVATPayable"`
	IsRefundDue   bool       `json:"isRefundDue"`
	DueDate       time.Time  `json:"dueDate"`
}

// VATFor is the standard-rate VAT on an amount.
func (c *Calculator) VATFor(amount float64) float64 {
	return round2(amount * c.rules.VATRate)
}

// ComputeVATReturn nets output VAT against input VAT for a period. The net
// figure is always reported as a magnitude; IsRefundDue tells the direction.
func (c *Calculator) ComputeVATReturn(period VATPeriod, output, input []VATTransaction) VATReturn {
	out := summarizeVAT(output)
	in := summarizeVAT(input)

	return VATReturn{
		Period:        period,
		Output:        out,
		Input:         in,
		NetVATPayable: round2(math.Abs(out.VAT - in.VAT)),
		IsRefundDue:   out.VAT < in.VAT,
		DueDate:       period.DueDate(c.rules.VATFilingDay),
	}
}

func summarizeVAT(txs []VATTransaction) VATSummary {
	s := VATSummary{
		ByCategory: make(map[string]float64),
		Count:      len(txs),
	}

	for _, tx := range txs {
		if tx.IsExempt {
			s.ExemptAmount += tx.Amount
			continue
		}

		s.TaxableAmount += tx.Amount
		s.VAT += tx.VATAmount
		s.ByCategory[tx.Category] += tx.Amount
	}

	return s
}
