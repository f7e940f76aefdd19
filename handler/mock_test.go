package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/AnnaCarter465/naija-tax/tax"
)

type MockSetting struct {
	Args    []interface{}
	Returns []interface{}
}

type StoreMock struct {
	mock.Mock
}

func (o *StoreMock) Ping(ctx context.Context) error {
	args := o.Called(ctx)
	return args.Error(0)
}

func (o *StoreMock) FindStatutoryDeductions(ctx context.Context, userID string, year int) (tax.StatutoryDeductions, error) {
	args := o.Called(ctx, userID, year)
	return args.Get(0).(tax.StatutoryDeductions), args.Error(1)
}

func (o *StoreMock) UpsertStatutoryDeductions(ctx context.Context, userID string, year int, d tax.StatutoryDeductions) (tax.StatutoryDeductions, error) {
	args := o.Called(ctx, userID, year, d)
	return args.Get(0).(tax.StatutoryDeductions), args.Error(1)
}

func (o *StoreMock) FindIncomeRecords(ctx context.Context, userID string, year int) ([]tax.Record, error) {
	args := o.Called(ctx, userID, year)
	return args.Get(0).([]tax.Record), args.Error(1)
}

func (o *StoreMock) FindExpenseRecords(ctx context.Context, userID string, year int) ([]tax.Record, error) {
	args := o.Called(ctx, userID, year)
	return args.Get(0).([]tax.Record), args.Error(1)
}

func (o *StoreMock) FindCapitalAssets(ctx context.Context, userID string) ([]tax.CapitalAsset, error) {
	args := o.Called(ctx, userID)
	return args.Get(0).([]tax.CapitalAsset), args.Error(1)
}

func (o *StoreMock) CreateCapitalAsset(ctx context.Context, userID string, a tax.CapitalAsset) (tax.CapitalAsset, error) {
	args := o.Called(ctx, userID, a)
	return args.Get(0).(tax.CapitalAsset), args.Error(1)
}

func (o *StoreMock) FindVATTransactions(ctx context.Context, userID string, from, to time.Time) ([]tax.VATTransaction, []tax.VATTransaction, error) {
	args := o.Called(ctx, userID, from, to)
	return args.Get(0).([]tax.VATTransaction), args.Get(1).([]tax.VATTransaction), args.Error(2)
}

func (o *StoreMock) FindWHTTransactions(ctx context.Context, userID string, from, to time.Time) ([]tax.WHTTransaction, error) {
	args := o.Called(ctx, userID, from, to)
	return args.Get(0).([]tax.WHTTransaction), args.Error(1)
}

// on registers the mock settings that are present.
func (o *StoreMock) on(settings map[string]*MockSetting) {
	for method, s := range settings {
		if s != nil {
			o.On(method, s.Args...).Return(s.Returns...)
		}
	}
}

// newContext builds an echo context for method and path with optional JSON
// body and route params given as name/value pairs.
func newContext(method, target string, body interface{}, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var payload string
	if body != nil {
		val, _ := json.Marshal(body)
		payload = string(val)
	}

	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

func testCalculator() *tax.Calculator {
	return tax.NewCalculator(tax.DefaultRules())
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
