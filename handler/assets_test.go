package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AnnaCarter465/naija-tax/tax"
)

func TestCreateAsset(t *testing.T) {
	type TC struct {
		name       string
		reqbody    map[string]interface{}
		status     int
		mockCreate *MockSetting
	}

	id := uuid.New()
	asset := tax.CapitalAsset{Name: "Delivery van", Category: tax.AssetMotorVehicles, Cost: 12_000_000, AcquisitionYear: 2025}
	created := asset
	created.ID = id

	tcs := []TC{
		{
			name:    "created",
			reqbody: map[string]interface{}{"name": "Delivery van", "category": "motor_vehicles", "cost": float64(12_000_000), "acquisitionYear": 2025},
			status:  http.StatusCreated,
			mockCreate: &MockSetting{
				Args:    []interface{}{mock.Anything, "u-1", asset},
				Returns: []interface{}{created, nil},
			},
		},
		{
			name:    "missing name",
			reqbody: map[string]interface{}{"category": "motor_vehicles", "cost": float64(12_000_000), "acquisitionYear": 2025},
			status:  http.StatusBadRequest,
		},
		{
			name:    "store fails",
			reqbody: map[string]interface{}{"name": "Delivery van", "category": "motor_vehicles", "cost": float64(12_000_000), "acquisitionYear": 2025},
			status:  http.StatusInternalServerError,
			mockCreate: &MockSetting{
				Args:    []interface{}{mock.Anything, "u-1", asset},
				Returns: []interface{}{tax.CapitalAsset{}, errors.New("an error")},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			mockObj := new(StoreMock)
			mockObj.on(map[string]*MockSetting{"CreateCapitalAsset": tc.mockCreate})

			h := NewAssetHandler(validator.New(), mockObj, testLogger())

			c, rec := newContext(http.MethodPost, "/", tc.reqbody, "userID", "u-1")

			assert.NoError(t, h.CreateAsset(c))
			assert.Equal(t, tc.status, rec.Code)

			if tc.status == http.StatusCreated {
				var got tax.CapitalAsset
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, created, got)
			}

			mockObj.AssertExpectations(t)
		})
	}
}

func TestListAssets(t *testing.T) {
	assets := []tax.CapitalAsset{
		{ID: uuid.New(), Name: "Lathe", Category: tax.AssetPlantMachinery, Cost: 3_000_000, AcquisitionYear: 2024},
	}

	mockObj := new(StoreMock)
	mockObj.On("FindCapitalAssets", mock.Anything, "u-1").Return(assets, nil)

	c, rec := newContext(http.MethodGet, "/", nil, "userID", "u-1")

	assert.NoError(t, NewAssetHandler(validator.New(), mockObj, testLogger()).ListAssets(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []tax.CapitalAsset
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, assets, got)
}
