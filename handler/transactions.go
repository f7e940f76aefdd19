package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/AnnaCarter465/naija-tax/database"
	"github.com/AnnaCarter465/naija-tax/tax"
)

type TransactionStore interface {
	FindVATTransactions(ctx context.Context, userID string, from, to time.Time) (output, input []tax.VATTransaction, err error)
	FindWHTTransactions(ctx context.Context, userID string, from, to time.Time) ([]tax.WHTTransaction, error)
}

type TransactionHandler struct {
	vl    *validator.Validate
	calc  *tax.Calculator
	store TransactionStore
	log   *zap.Logger
}

func NewTransactionHandler(vl *validator.Validate, calc *tax.Calculator, store TransactionStore, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{vl, calc, store, log}
}

// vatTransactions fills in standard-rate VAT where the caller left it out.
func (h *TransactionHandler) vatTransactions(reqs []VATTransactionRequest, direction tax.VATDirection) []tax.VATTransaction {
	txs := make([]tax.VATTransaction, 0, len(reqs))

	for _, r := range reqs {
		tx := tax.VATTransaction{
			Date:      r.Date,
			Direction: direction,
			Category:  r.Category,
			Amount:    r.Amount,
			IsExempt:  r.IsExempt,
		}

		switch {
		case r.IsExempt:
		case r.VATAmount != nil:
			tx.VATAmount = *r.VATAmount
		default:
			tx.VATAmount = h.calc.VATFor(r.Amount)
		}

		txs = append(txs, tx)
	}

	return txs
}

func (h *TransactionHandler) CalculateVATReturn(c echo.Context) error {
	var req VATReturnRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := h.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	period := tax.VATPeriod{Year: req.Year, Month: req.Month}
	output := h.vatTransactions(req.Output, tax.VATOutput)
	input := h.vatTransactions(req.Input, tax.VATInput)

	return c.JSON(http.StatusOK, h.calc.ComputeVATReturn(period, output, input))
}

func (h *TransactionHandler) CalculateWHT(c echo.Context) error {
	var req WHTRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := h.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	calc := h.calc.CalculateWHT(tax.PaymentType(req.PaymentType), tax.RecipientType(req.RecipientType), req.GrossAmount)
	if !req.Date.IsZero() {
		calc.RemittanceDueDate = h.calc.RemittanceDueDate(req.Date)
	}

	return c.JSON(http.StatusOK, calc)
}

func (h *TransactionHandler) SummarizeWHT(c echo.Context) error {
	var req WHTSummaryRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := h.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	txs := make([]tax.WHTTransaction, 0, len(req.Transactions))
	for _, r := range req.Transactions {
		txs = append(txs, r.toTransaction())
	}

	return c.JSON(http.StatusOK, h.calc.SummarizeWHT(txs))
}

// UserVATReturn nets the user's stored VAT transactions for a month, or for
// the whole year when no month is given.
func (h *TransactionHandler) UserVATReturn(c echo.Context) error {
	userID := c.Param("userID")
	year, ok := yearParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Invalid year",
		})
	}

	period := tax.VATPeriod{Year: year}
	if m := c.QueryParam("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid month",
			})
		}
		period.Month = month
	}

	from, to := database.PeriodRange(period)

	output, input, err := h.store.FindVATTransactions(c.Request().Context(), userID, from, to)
	if err != nil {
		h.log.Error("failed to find vat transactions", zap.String("user_id", userID), zap.Int("year", year), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(http.StatusOK, h.calc.ComputeVATReturn(period, output, input))
}

func (h *TransactionHandler) UserWHTSummary(c echo.Context) error {
	userID := c.Param("userID")
	year, ok := yearParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Invalid year",
		})
	}

	from, to := database.PeriodRange(tax.VATPeriod{Year: year})

	txs, err := h.store.FindWHTTransactions(c.Request().Context(), userID, from, to)
	if err != nil {
		h.log.Error("failed to find wht transactions", zap.String("user_id", userID), zap.Int("year", year), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(http.StatusOK, h.calc.SummarizeWHT(txs))
}
