package tax

import (
	"time"

	"github.com/google/uuid"
)

type PaymentType string

const (
	PaymentDividend          PaymentType = "dividend"
	PaymentInterest          PaymentType = "interest"
	PaymentRent              PaymentType = "rent"
	PaymentRoyalty           PaymentType = "royalty"
	PaymentProfessionalFees  PaymentType = "professional_fees"
	PaymentConsultancy       PaymentType = "consultancy"
	PaymentManagementFees    PaymentType = "management_fees"
	PaymentTechnicalServices PaymentType = "technical_services"
	PaymentCommission        PaymentType = "commission"
	PaymentDirectorsFees     PaymentType = "directors_fees"
	PaymentConstruction      PaymentType = "construction"
	PaymentContractSupply    PaymentType = "contract_supply"
)

type RecipientType string

const (
	RecipientCorporate   RecipientType = "corporate"
	RecipientIndividual  RecipientType = "individual"
	RecipientNonResident RecipientType = "non_resident"
)

type WHTTransaction struct {
	ID            uuid.UUID     `json:"id"`
	Date          time.Time     `json:"date"`
	PaymentType   PaymentType   `json:"paymentType"`
	RecipientType RecipientType `json:"recipientType"`
	RecipientName string        `json:"recipientName,omitempty"`
	GrossAmount   float64       `json:"grossAmount"`
}

type WHTCalculation struct {
	PaymentType       PaymentType   `json:"paymentType"`
	RecipientType     RecipientType `json:"recipientType"`
	GrossAmount       float64       `json:"grossAmount"`
	Rate              float64       `json:"rate"`
	WHTAmount         float64       `json:"whtAmount"`
	NetAmount         float64       `json:"netAmount"`
	RemittanceDueDate time.Time     `json:"remittanceDueDate"`
}

// WHTRate looks the rate up in the payment × recipient matrix. An unknown
// payment or recipient type gets the flat fallback rate.
func (c *Calculator) WHTRate(payment PaymentType, recipient RecipientType) float64 {
	row, ok := c.rules.WHT[payment]
	if !ok {
		return c.rules.WHTFallbackRate
	}

	rate, ok := row.For(recipient)
	if !ok {
		return c.rules.WHTFallbackRate
	}

	return rate
}

func (c *Calculator) CalculateWHT(payment PaymentType, recipient RecipientType, gross float64) WHTCalculation {
	rate := c.WHTRate(payment, recipient)
	wht := round2(gross * rate)

	return WHTCalculation{
		PaymentType:   payment,
		RecipientType: recipient,
		GrossAmount:   gross,
		Rate:          rate,
		WHTAmount:     wht,
		NetAmount:     round2(gross - wht),
	}
}

// RemittanceDueDate is the deadline for paying over tax withheld on date.
func (c *Calculator) RemittanceDueDate(date time.Time) time.Time {
	return date.AddDate(0, 0, c.rules.WHTRemittanceDays)
}

type WHTGroup struct {
	Count       int     `json:"count"`
	GrossAmount float64 `json:"grossAmount"`
	WHTAmount   float64 `json:"whtAmount"`
}

func (g *WHTGroup) add(calc WHTCalculation) {
	g.Count++
	g.GrossAmount = round2(g.GrossAmount + calc.GrossAmount)
	g.WHTAmount = round2(g.WHTAmount + calc.WHTAmount)
}

type WHTSummary struct {
	Transactions    []WHTCalculation            `json:"transactions"`
	ByPaymentType   map[PaymentType]*WHTGroup   `json:"byPaymentType"`
	ByRecipientType map[RecipientType]*WHTGroup `json:"byRecipientType"`
	TotalGross      float64                     `json:"totalGross"`
	TotalWHT        float64                     `json:"totalWHT"`
	TotalNet        float64                     `json:"totalNet"`
}

func (c *Calculator) SummarizeWHT(txs []WHTTransaction) WHTSummary {
	s := WHTSummary{
		Transactions:    make([]WHTCalculation, 0, len(txs)),
		ByPaymentType:   make(map[PaymentType]*WHTGroup),
		ByRecipientType: make(map[RecipientType]*WHTGroup),
	}

	for _, tx := range txs {
		calc := c.CalculateWHT(tx.PaymentType, tx.RecipientType, tx.GrossAmount)
		if !tx.Date.IsZero() {
			calc.RemittanceDueDate = c.RemittanceDueDate(tx.Date)
		}

		group, ok := s.ByPaymentType[tx.PaymentType]
		if !ok {
			group = &WHTGroup{}
			s.ByPaymentType[tx.PaymentType] = group
		}
		group.add(calc)

		group, ok = s.ByRecipientType[tx.RecipientType]
		if !ok {
			group = &WHTGroup{}
			s.ByRecipientType[tx.RecipientType] = group
		}
		group.add(calc)

		s.TotalGross = round2(s.TotalGross + calc.GrossAmount)
		s.TotalWHT = round2(s.TotalWHT + calc.WHTAmount)
		s.TotalNet = round2(s.TotalNet + calc.NetAmount)
		s.Transactions = append(s.Transactions, calc)
	}

	return s
}
