package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/AnnaCarter465/naija-tax/tax"
)

type DeductionsRequest struct {
	Pension                 float64 `json:"pension" validate:"gte=0"`
	HealthInsurance         float64 `json:"healthInsurance" validate:"gte=0"`
	HousingFund             float64 `json:"housingFund" validate:"gte=0"`
	HousingLoanInterest     float64 `json:"housingLoanInterest" validate:"gte=0"`
	LifeInsurance           float64 `json:"lifeInsurance" validate:"gte=0"`
	RentPaid                float64 `json:"rentPaid" validate:"gte=0"`
	EmploymentCompensation  float64 `json:"employmentCompensation" validate:"gte=0"`
	GiftsReceived           float64 `json:"giftsReceived" validate:"gte=0"`
	PensionBenefitsReceived float64 `json:"pensionBenefitsReceived" validate:"gte=0"`
}

func (r DeductionsRequest) toStatutory() tax.StatutoryDeductions {
	return tax.StatutoryDeductions(r)
}

type PersonalTaxRequest struct {
	Year        int               `json:"year" validate:"required,gte=2000,lte=2100"`
	GrossIncome float64           `json:"grossIncome" validate:"gte=0"`
	Deductions  DeductionsRequest `json:"deductions"`
}

type IncomeRequest struct {
	Sales      float64 `json:"sales" validate:"gte=0"`
	Services   float64 `json:"services" validate:"gte=0"`
	Commission float64 `json:"commission" validate:"gte=0"`
	Rental     float64 `json:"rental" validate:"gte=0"`
	Interest   float64 `json:"interest" validate:"gte=0"`
	Other      float64 `json:"other" validate:"gte=0"`
}

type ExpensesRequest struct {
	CostOfSales         float64 `json:"costOfSales" validate:"gte=0"`
	Salaries            float64 `json:"salaries" validate:"gte=0"`
	Rent                float64 `json:"rent" validate:"gte=0"`
	Utilities           float64 `json:"utilities" validate:"gte=0"`
	Transport           float64 `json:"transport" validate:"gte=0"`
	Marketing           float64 `json:"marketing" validate:"gte=0"`
	ProfessionalFees    float64 `json:"professionalFees" validate:"gte=0"`
	Repairs             float64 `json:"repairs" validate:"gte=0"`
	Insurance           float64 `json:"insurance" validate:"gte=0"`
	OtherAllowable      float64 `json:"otherAllowable" validate:"gte=0"`
	Depreciation        float64 `json:"depreciation" validate:"gte=0"`
	FinesPenalties      float64 `json:"finesPenalties" validate:"gte=0"`
	PersonalExpenses    float64 `json:"personalExpenses" validate:"gte=0"`
	UnapprovedDonations float64 `json:"unapprovedDonations" validate:"gte=0"`
}

type AssetRequest struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name" validate:"required"`
	Category        string    `json:"category" validate:"required"`
	Cost            float64   `json:"cost" validate:"gt=0"`
	AcquisitionYear int       `json:"acquisitionYear" validate:"required,gte=1900,lte=2100"`
}

func (r AssetRequest) toAsset() tax.CapitalAsset {
	return tax.CapitalAsset{
		ID:              r.ID,
		Name:            r.Name,
		Category:        tax.AssetCategory(r.Category),
		Cost:            r.Cost,
		AcquisitionYear: r.AcquisitionYear,
	}
}

type ReliefsRequest struct {
	Pension             float64 `json:"pension" validate:"gte=0"`
	HealthInsurance     float64 `json:"healthInsurance" validate:"gte=0"`
	HousingFund         float64 `json:"housingFund" validate:"gte=0"`
	HousingLoanInterest float64 `json:"housingLoanInterest" validate:"gte=0"`
	LifeInsurance       float64 `json:"lifeInsurance" validate:"gte=0"`
	AnnualRent          float64 `json:"annualRent" validate:"gte=0"`
}

type AdjustmentsRequest struct {
	Depreciation          float64 `json:"depreciation" validate:"gte=0"`
	NonDeductibleExpenses float64 `json:"nonDeductibleExpenses" validate:"gte=0"`
	Provisions            float64 `json:"provisions" validate:"gte=0"`
	UnapprovedDonations   float64 `json:"unapprovedDonations" validate:"gte=0"`
	ExemptIncome          float64 `json:"exemptIncome" validate:"gte=0"`
}

// BusinessProfileRequest is the part of a business computation the caller
// always supplies; income, expenses and assets may come from the store.
type BusinessProfileRequest struct {
	EntityType      string              `json:"entityType" validate:"required,oneof=sole_proprietorship partnership limited_company"`
	AnnualTurnover  *float64            `json:"annualTurnover" validate:"omitempty,gte=0"`
	PersonalReliefs *ReliefsRequest     `json:"personalReliefs" validate:"omitempty"`
	Adjustments     *AdjustmentsRequest `json:"adjustments" validate:"omitempty"`
}

type BusinessTaxRequest struct {
	BusinessProfileRequest
	Year     int             `json:"year" validate:"required,gte=2000,lte=2100"`
	Income   IncomeRequest   `json:"income"`
	Expenses ExpensesRequest `json:"expenses"`
	Assets   []AssetRequest  `json:"assets" validate:"dive"`
}

func (r BusinessProfileRequest) toInput(year int) tax.BusinessTaxInput {
	in := tax.BusinessTaxInput{
		EntityType:     tax.EntityType(r.EntityType),
		Year:           year,
		AnnualTurnover: r.AnnualTurnover,
	}
	if r.PersonalReliefs != nil {
		reliefs := tax.PersonalReliefs(*r.PersonalReliefs)
		in.PersonalReliefs = &reliefs
	}
	if r.Adjustments != nil {
		adj := tax.CompanyAdjustments(*r.Adjustments)
		in.Adjustments = &adj
	}
	return in
}

func (r BusinessTaxRequest) toInput() tax.BusinessTaxInput {
	in := r.BusinessProfileRequest.toInput(r.Year)
	in.Income = tax.BusinessIncome(r.Income)
	in.Expenses = tax.BusinessExpenses(r.Expenses)
	for _, a := range r.Assets {
		in.Assets = append(in.Assets, a.toAsset())
	}
	return in
}

type VATTransactionRequest struct {
	Date      time.Time `json:"date"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount" validate:"gte=0"`
	VATAmount *float64  `json:"vatAmount" validate:"omitempty,gte=0"`
	IsExempt  bool      `json:"isExempt"`
}

type VATReturnRequest struct {
	Year   int                     `json:"year" validate:"required,gte=2000,lte=2100"`
	Month  int                     `json:"month" validate:"gte=0,lte=12"`
	Output []VATTransactionRequest `json:"output" validate:"dive"`
	Input  []VATTransactionRequest `json:"input" validate:"dive"`
}

type WHTRequest struct {
	Date          time.Time `json:"date"`
	PaymentType   string    `json:"paymentType" validate:"required"`
	RecipientType string    `json:"recipientType" validate:"required"`
	RecipientName string    `json:"recipientName"`
	GrossAmount   float64   `json:"grossAmount" validate:"gte=0"`
}

func (r WHTRequest) toTransaction() tax.WHTTransaction {
	return tax.WHTTransaction{
		Date:          r.Date,
		PaymentType:   tax.PaymentType(r.PaymentType),
		RecipientType: tax.RecipientType(r.RecipientType),
		RecipientName: r.RecipientName,
		GrossAmount:   r.GrossAmount,
	}
}

type WHTSummaryRequest struct {
	Transactions []WHTRequest `json:"transactions" validate:"required,dive"`
}

type ExpenseRequest struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	Claimed     bool      `json:"claimed"`
}

type DeductionSuggestionsRequest struct {
	TaxableIncome float64          `json:"taxableIncome" validate:"gte=0"`
	MinConfidence float64          `json:"minConfidence" validate:"gte=0,lte=1"`
	Expenses      []ExpenseRequest `json:"expenses" validate:"required,dive"`
}

func (r DeductionSuggestionsRequest) expenses() []tax.Expense {
	out := make([]tax.Expense, 0, len(r.Expenses))
	for _, e := range r.Expenses {
		out = append(out, tax.Expense(e))
	}
	return out
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ResponseMsg{
		Message: "Bad request",
	})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ResponseMsg{
		Message: "Internal server error",
	})
}

func yearParam(c echo.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, false
	}
	return year, true
}
