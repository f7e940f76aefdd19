package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/AnnaCarter465/naija-tax/database"
	"github.com/AnnaCarter465/naija-tax/tax"
)

type TaxStore interface {
	FindStatutoryDeductions(ctx context.Context, userID string, year int) (tax.StatutoryDeductions, error)
	FindIncomeRecords(ctx context.Context, userID string, year int) ([]tax.Record, error)
	FindExpenseRecords(ctx context.Context, userID string, year int) ([]tax.Record, error)
	FindCapitalAssets(ctx context.Context, userID string) ([]tax.CapitalAsset, error)
}

type TaxHandler struct {
	vl    *validator.Validate
	calc  *tax.Calculator
	store TaxStore
	log   *zap.Logger
}

func NewTaxHandler(vl *validator.Validate, calc *tax.Calculator, store TaxStore, log *zap.Logger) *TaxHandler {
	return &TaxHandler{vl, calc, store, log}
}

// respond writes a result, or its flattened summary when ?view=summary.
func respond(c echo.Context, result tax.Result) error {
	if c.QueryParam("view") == "summary" {
		return c.JSON(http.StatusOK, tax.Summarize(result))
	}
	return c.JSON(http.StatusOK, result)
}

func (t *TaxHandler) CalculatePersonalTax(c echo.Context) error {
	var req PersonalTaxRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := t.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	result := t.calc.ComputePersonalTax(tax.PersonalTaxInput{
		Year:        req.Year,
		GrossIncome: req.GrossIncome,
		Deductions:  req.Deductions.toStatutory(),
	})

	return respond(c, result)
}

func (t *TaxHandler) CalculateBusinessTax(c echo.Context) error {
	var req BusinessTaxRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := t.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	return respond(c, t.calc.ComputeBusinessTax(req.toInput()))
}

// CalculateUserTax computes personal income tax from the user's stored income
// records and statutory deductions for the year.
func (t *TaxHandler) CalculateUserTax(c echo.Context) error {
	userID := c.Param("userID")
	year, ok := yearParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Invalid year",
		})
	}

	ctx := c.Request().Context()

	records, err := t.store.FindIncomeRecords(ctx, userID, year)
	if err != nil {
		t.log.Error("failed to find income records", zap.String("user_id", userID), zap.Int("year", year), zap.Error(err))
		return internalError(c)
	}

	deductions, err := t.store.FindStatutoryDeductions(ctx, userID, year)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		t.log.Error("failed to find statutory deductions", zap.String("user_id", userID), zap.Int("year", year), zap.Error(err))
		return internalError(c)
	}

	result := t.calc.ComputePersonalTax(tax.PersonalTaxInput{
		Year:        year,
		GrossIncome: tax.Total(tax.SumByCategory(records, year)),
		Deductions:  deductions,
	})

	return respond(c, result)
}

// CalculateUserBusinessTax computes business tax from stored income, expense
// and asset data. The body carries the entity profile.
func (t *TaxHandler) CalculateUserBusinessTax(c echo.Context) error {
	userID := c.Param("userID")
	year, ok := yearParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Invalid year",
		})
	}

	var req BusinessProfileRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := t.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	ctx := c.Request().Context()

	income, err := t.store.FindIncomeRecords(ctx, userID, year)
	if err != nil {
		t.log.Error("failed to find income records", zap.String("user_id", userID), zap.Int("year", year), zap.Error(err))
		return internalError(c)
	}

	expenses, err := t.store.FindExpenseRecords(ctx, userID, year)
	if err != nil {
		t.log.Error("failed to find expense records", zap.String("user_id", userID), zap.Int("year", year), zap.Error(err))
		return internalError(c)
	}

	assets, err := t.store.FindCapitalAssets(ctx, userID)
	if err != nil {
		t.log.Error("failed to find capital assets", zap.String("user_id", userID), zap.Error(err))
		return internalError(c)
	}

	in := req.toInput(year)
	in.Income = tax.BusinessIncomeFrom(tax.SumByCategory(income, year))
	in.Expenses = tax.BusinessExpensesFrom(tax.SumByCategory(expenses, year))
	in.Assets = assets

	return respond(c, t.calc.ComputeBusinessTax(in))
}
