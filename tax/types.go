package tax

import (
	"time"

	"github.com/google/uuid"
)

type TaxationType string

const (
	TaxationPIT TaxationType = "PIT"
	TaxationCIT TaxationType = "CIT"
)

type Scope string

const (
	ScopePersonal Scope = "personal"
	ScopeBusiness Scope = "business"
)

type EntityType string

const (
	EntitySoleProprietorship EntityType = "sole_proprietorship"
	EntityPartnership        EntityType = "partnership"
	EntityLimitedCompany     EntityType = "limited_company"
)

type AssetCategory string

const (
	AssetPlantMachinery        AssetCategory = "plant_machinery"
	AssetMotorVehicles         AssetCategory = "motor_vehicles"
	AssetFurnitureFittings     AssetCategory = "furniture_fittings"
	AssetBuildings             AssetCategory = "buildings"
	AssetComputersEquipment    AssetCategory = "computers_equipment"
	AssetAgriculturalEquipment AssetCategory = "agricultural_equipment"
	AssetOther                 AssetCategory = "other"
)

// Record is a dated income or expense entry.
type Record struct {
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
}

// StatutoryDeductions is the per-year record of contributions, payments and
// exempt receipts an individual declares.
type StatutoryDeductions struct {
	Pension                 float64 `json:"pension"`
	HealthInsurance         float64 `json:"healthInsurance"`
	HousingFund             float64 `json:"housingFund"`
	HousingLoanInterest     float64 `json:"housingLoanInterest"`
	LifeInsurance           float64 `json:"lifeInsurance"`
	RentPaid                float64 `json:"rentPaid"`
	EmploymentCompensation  float64 `json:"employmentCompensation"`
	GiftsReceived           float64 `json:"giftsReceived"`
	PensionBenefitsReceived float64 `json:"pensionBenefitsReceived"`
}

type CapitalAsset struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Category        AssetCategory `json:"category"`
	Cost            float64       `json:"cost"`
	AcquisitionYear int           `json:"acquisitionYear"`
}

type BusinessIncome struct {
	Sales      float64 `json:"sales"`
	Services   float64 `json:"services"`
	Commission float64 `json:"commission"`
	Rental     float64 `json:"rental"`
	Interest   float64 `json:"interest"`
	Other      float64 `json:"other"`
}

func (i BusinessIncome) Total() float64 {
	return i.Sales + i.Services + i.Commission + i.Rental + i.Interest + i.Other
}

type BusinessExpenses struct {
	CostOfSales      float64 `json:"costOfSales"`
	Salaries         float64 `json:"salaries"`
	Rent             float64 `json:"rent"`
	Utilities        float64 `json:"utilities"`
	Transport        float64 `json:"transport"`
	Marketing        float64 `json:"marketing"`
	ProfessionalFees float64 `json:"professionalFees"`
	Repairs          float64 `json:"repairs"`
	Insurance        float64 `json:"insurance"`
	OtherAllowable   float64 `json:"otherAllowable"`

	// not deductible; carried for transparency only
	Depreciation        float64 `json:"depreciation"`
	FinesPenalties      float64 `json:"finesPenalties"`
	PersonalExpenses    float64 `json:"personalExpenses"`
	UnapprovedDonations float64 `json:"unapprovedDonations"`
}

func (e BusinessExpenses) Allowable() float64 {
	return e.CostOfSales + e.Salaries + e.Rent + e.Utilities + e.Transport +
		e.Marketing + e.ProfessionalFees + e.Repairs + e.Insurance + e.OtherAllowable
}

func (e BusinessExpenses) Disallowed() float64 {
	return e.Depreciation + e.FinesPenalties + e.PersonalExpenses + e.UnapprovedDonations
}

// PersonalReliefs are the reliefs a sole proprietor or partner claims
// against business profit.
type PersonalReliefs struct {
	Pension             float64 `json:"pension"`
	HealthInsurance     float64 `json:"healthInsurance"`
	HousingFund         float64 `json:"housingFund"`
	HousingLoanInterest float64 `json:"housingLoanInterest"`
	LifeInsurance       float64 `json:"lifeInsurance"`
	AnnualRent          float64 `json:"annualRent"`
}

// CompanyAdjustments convert accounting profit into assessable profit.
type CompanyAdjustments struct {
	Depreciation          float64 `json:"depreciation"`
	NonDeductibleExpenses float64 `json:"nonDeductibleExpenses"`
	Provisions            float64 `json:"provisions"`
	UnapprovedDonations   float64 `json:"unapprovedDonations"`
	ExemptIncome          float64 `json:"exemptIncome"`
}

type BusinessTaxInput struct {
	EntityType      EntityType          `json:"entityType"`
	Year            int                 `json:"year"`
	AnnualTurnover  *float64            `json:"annualTurnover,omitempty"`
	Income          BusinessIncome      `json:"income"`
	Expenses        BusinessExpenses    `json:"expenses"`
	Assets          []CapitalAsset      `json:"assets"`
	PersonalReliefs *PersonalReliefs    `json:"personalReliefs,omitempty"`
	Adjustments     *CompanyAdjustments `json:"adjustments,omitempty"`
}

type PersonalTaxInput struct {
	Year        int                 `json:"year"`
	GrossIncome float64             `json:"grossIncome"`
	Deductions  StatutoryDeductions `json:"deductions"`
}
