package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"garagelink/internal/errors"
	"garagelink/internal/model"
	"garagelink/internal/service"
)

// MockVehicleService is a mock implementation of VehicleService.
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) CreateVehicle(ctx context.Context, ownerID uint, vehicle *model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, ownerID, vehicle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleService) ListMyVehicles(ctx context.Context, ownerID uint) ([]model.Vehicle, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func TestVehicleHandler_CreateVehicle(t *testing.T) {
	t.Run("successful creation parses year", func(t *testing.T) {
		mockSvc := new(MockVehicleService)
		mockSvc.On("CreateVehicle", mock.Anything, uint(4), mock.MatchedBy(func(v *model.Vehicle) bool {
			return v.Year == 2020 && v.Make == "Toyota"
		})).Return(&model.Vehicle{ID: 2, Year: 2020}, nil)
		h := NewVehicleHandler(mockSvc)

		c, rec := newTestContext(http.MethodPost, "/api/vehicles",
			`{"make":"Toyota","model":"Corolla","year":"2020","registration":"AA-12-BB","transmission":"auto","fuel_type":"petrol"}`)
		withPrincipal(c, 4)

		err := h.CreateVehicle(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-numeric year rejected", func(t *testing.T) {
		mockSvc := new(MockVehicleService)
		h := NewVehicleHandler(mockSvc)

		c, _ := newTestContext(http.MethodPost, "/api/vehicles",
			`{"make":"Toyota","model":"Corolla","year":"twenty twenty","registration":"AA-12-BB","transmission":"auto","fuel_type":"petrol"}`)
		withPrincipal(c, 4)

		err := h.CreateVehicle(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		resp, ok := httpErr.Message.(errors.ErrorResponse)
		assert.True(t, ok)
		assert.Equal(t, "INVALID_YEAR", resp.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		mockSvc := new(MockVehicleService)
		h := NewVehicleHandler(mockSvc)

		c, _ := newTestContext(http.MethodPost, "/api/vehicles", `{"make":"Toyota"}`)
		withPrincipal(c, 4)

		err := h.CreateVehicle(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestVehicleHandler_ListMyVehicles_EmptyList(t *testing.T) {
	mockSvc := new(MockVehicleService)
	mockSvc.On("ListMyVehicles", mock.Anything, uint(4)).Return([]model.Vehicle(nil), nil)
	h := NewVehicleHandler(mockSvc)

	c, rec := newTestContext(http.MethodGet, "/api/vehicles", "")
	withPrincipal(c, 4)

	err := h.ListMyVehicles(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// A nil slice still serializes as an empty array, never null.
	assert.Contains(t, rec.Body.String(), `"vehicles":[]`)
	mockSvc.AssertExpectations(t)
}

var _ service.VehicleService = (*MockVehicleService)(nil)
