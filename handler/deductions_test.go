package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AnnaCarter465/naija-tax/tax"
)

func TestUpdateDeductions(t *testing.T) {
	type TC struct {
		name       string
		year       string
		reqbody    map[string]interface{}
		want       *tax.StatutoryDeductions
		mockUpsert *MockSetting
		errresp    *ResponseMsg
	}

	saved := tax.StatutoryDeductions{Pension: 400_000, RentPaid: 1_200_000}

	tcs := []TC{
		{
			name:    "saves deductions",
			year:    "2026",
			reqbody: map[string]interface{}{"pension": float64(400_000), "rentPaid": float64(1_200_000)},
			want:    &saved,
			mockUpsert: &MockSetting{
				Args:    []interface{}{mock.Anything, "u-1", 2026, saved},
				Returns: []interface{}{saved, nil},
			},
		},
		{
			name:    "negative amount",
			year:    "2026",
			reqbody: map[string]interface{}{"pension": float64(-1)},
			errresp: &ResponseMsg{Message: "Bad request"},
		},
		{
			name:    "wrong type",
			year:    "2026",
			reqbody: map[string]interface{}{"pension": "lots"},
			errresp: &ResponseMsg{Message: "Bad request"},
		},
		{
			name:    "year out of range",
			year:    "1850",
			reqbody: map[string]interface{}{},
			errresp: &ResponseMsg{Message: "Invalid year"},
		},
		{
			name:    "store fails",
			year:    "2026",
			reqbody: map[string]interface{}{"pension": float64(400_000), "rentPaid": float64(1_200_000)},
			mockUpsert: &MockSetting{
				Args:    []interface{}{mock.Anything, "u-1", 2026, saved},
				Returns: []interface{}{tax.StatutoryDeductions{}, errors.New("an error")},
			},
			errresp: &ResponseMsg{Message: "Failed to update deductions"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			mockObj := new(StoreMock)
			mockObj.on(map[string]*MockSetting{"UpsertStatutoryDeductions": tc.mockUpsert})

			h := NewDeductionHandler(validator.New(), testCalculator(), mockObj, testLogger())

			c, rec := newContext(http.MethodPut, "/", tc.reqbody, "userID", "u-1", "year", tc.year)

			assert.NoError(t, h.UpdateDeductions(c))

			if tc.errresp != nil {
				var errresp ResponseMsg

				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errresp))
				assert.NotEqual(t, http.StatusOK, rec.Code)
				assert.Equal(t, *tc.errresp, errresp)
				return
			}

			var got tax.StatutoryDeductions

			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, *tc.want, got)
			mockObj.AssertExpectations(t)
		})
	}
}

func TestSuggestDeductions(t *testing.T) {
	h := NewDeductionHandler(validator.New(), testCalculator(), new(StoreMock), testLogger())

	reqbody := map[string]interface{}{
		"taxableIncome": float64(4_600_000),
		"minConfidence": 0.6,
		"expenses": []map[string]interface{}{
			{"description": "Monthly RSA top-up", "amount": float64(100_000)},
			{"description": "Restaurant dinner", "amount": float64(30_000)},
		},
	}

	c, rec := newContext(http.MethodPost, "/deductions/suggestions", reqbody)

	assert.NoError(t, h.SuggestDeductions(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got tax.DeductionFindings
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.ScannedCount)
	require.Len(t, got.Suggestions, 1)
	assert.Equal(t, tax.DeductionPension, got.Suggestions[0].Category)
	// priced at the 18% marginal rate
	assert.Equal(t, 18_000.0, got.Suggestions[0].PotentialSavings)
}

func TestSuggestDeductionsRequiresExpenses(t *testing.T) {
	h := NewDeductionHandler(validator.New(), testCalculator(), new(StoreMock), testLogger())

	c, rec := newContext(http.MethodPost, "/deductions/suggestions", map[string]interface{}{"taxableIncome": float64(1)})

	assert.NoError(t, h.SuggestDeductions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
