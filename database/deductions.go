package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/AnnaCarter465/naija-tax/tax"
)

func (db *DB) FindStatutoryDeductions(ctx context.Context, userID string, year int) (tax.StatutoryDeductions, error) {
	var d tax.StatutoryDeductions

	err := db.GetSQLDB().QueryRowContext(
		ctx,
		`
		SELECT pension, health_insurance, housing_fund, housing_loan_interest,
		       life_insurance, rent_paid, employment_compensation,
		       gifts_received, pension_benefits_received
		FROM statutory_deductions
		WHERE user_id = $1 AND tax_year = $2
		`,
		userID, year,
	).Scan(
		&d.Pension, &d.HealthInsurance, &d.HousingFund, &d.HousingLoanInterest,
		&d.LifeInsurance, &d.RentPaid, &d.EmploymentCompensation,
		&d.GiftsReceived, &d.PensionBenefitsReceived,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return tax.StatutoryDeductions{}, ErrNotFound
	}
	if err != nil {
		return tax.StatutoryDeductions{}, fmt.Errorf("find statutory deductions: %w", err)
	}

	return d, nil
}

func (db *DB) UpsertStatutoryDeductions(ctx context.Context, userID string, year int, d tax.StatutoryDeductions) (tax.StatutoryDeductions, error) {
	_, err := db.GetSQLDB().ExecContext(
		ctx,
		`
		INSERT INTO statutory_deductions (
			user_id, tax_year, pension, health_insurance, housing_fund,
			housing_loan_interest, life_insurance, rent_paid,
			employment_compensation, gifts_received, pension_benefits_received
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id, tax_year) DO UPDATE SET
			pension = EXCLUDED.pension,
			health_insurance = EXCLUDED.health_insurance,
			housing_fund = EXCLUDED.housing_fund,
			housing_loan_interest = EXCLUDED.housing_loan_interest,
			life_insurance = EXCLUDED.life_insurance,
			rent_paid = EXCLUDED.rent_paid,
			employment_compensation = EXCLUDED.employment_compensation,
			gifts_received = EXCLUDED.gifts_received,
			pension_benefits_received = EXCLUDED.pension_benefits_received,
			updated_at = now()
		`,
		userID, year, d.Pension, d.HealthInsurance, d.HousingFund,
		d.HousingLoanInterest, d.LifeInsurance, d.RentPaid,
		d.EmploymentCompensation, d.GiftsReceived, d.PensionBenefitsReceived,
	)
	if err != nil {
		return tax.StatutoryDeductions{}, fmt.Errorf("upsert statutory deductions: %w", err)
	}

	db.log.Debug("statutory deductions saved", zap.String("user_id", userID), zap.Int("year", year))

	return d, nil
}
