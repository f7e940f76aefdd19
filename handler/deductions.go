package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/AnnaCarter465/naija-tax/tax"
)

type DeductionStore interface {
	UpsertStatutoryDeductions(ctx context.Context, userID string, year int, d tax.StatutoryDeductions) (tax.StatutoryDeductions, error)
}

type DeductionHandler struct {
	vl    *validator.Validate
	calc  *tax.Calculator
	store DeductionStore
	log   *zap.Logger
}

func NewDeductionHandler(vl *validator.Validate, calc *tax.Calculator, store DeductionStore, log *zap.Logger) *DeductionHandler {
	return &DeductionHandler{vl, calc, store, log}
}

func (d *DeductionHandler) UpdateDeductions(c echo.Context) error {
	userID := c.Param("userID")
	year, ok := yearParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Invalid year",
		})
	}

	var req DeductionsRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := d.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	saved, err := d.store.UpsertStatutoryDeductions(c.Request().Context(), userID, year, req.toStatutory())
	if err != nil {
		d.log.Error("failed to save statutory deductions", zap.String("user_id", userID), zap.Int("year", year), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ResponseMsg{
			Message: "Failed to update deductions",
		})
	}

	return c.JSON(http.StatusOK, saved)
}

// SuggestDeductions looks for likely unclaimed deductions, pricing each at
// the marginal rate of the posted taxable income.
func (d *DeductionHandler) SuggestDeductions(c echo.Context) error {
	var req DeductionSuggestionsRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := d.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	marginal := d.calc.MarginalRate(req.TaxableIncome)

	return c.JSON(http.StatusOK, d.calc.FindPotentialDeductions(req.expenses(), marginal, req.MinConfidence))
}
