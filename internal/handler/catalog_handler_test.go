package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"garagelink/internal/errors"
	"garagelink/internal/model"
	"garagelink/internal/service"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) AddService(ctx context.Context, publisherID uint, name string, cost decimal.Decimal) (*model.Service, error) {
	args := m.Called(ctx, publisherID, name, cost)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockCatalogService) ListMyServices(ctx context.Context, publisherID uint) ([]model.Service, error) {
	args := m.Called(ctx, publisherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockCatalogService) ListAllServices(ctx context.Context) ([]model.ServiceListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceListing), args.Error(1)
}

func TestCatalogHandler_AddService(t *testing.T) {
	t.Run("successful publish parses cost", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		mockSvc.On("AddService", mock.Anything, uint(5), "Oil Change", mock.MatchedBy(func(cost decimal.Decimal) bool {
			return cost.Equal(decimal.RequireFromString("50.00"))
		})).Return(&model.Service{ID: 1, Name: "Oil Change"}, nil)
		h := NewCatalogHandler(mockSvc)

		c, rec := newTestContext(http.MethodPost, "/api/services", `{"name":"Oil Change","cost":"50.00"}`)
		withPrincipal(c, 5)

		err := h.AddService(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-decimal cost rejected", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		h := NewCatalogHandler(mockSvc)

		c, _ := newTestContext(http.MethodPost, "/api/services", `{"name":"Oil Change","cost":"fifty"}`)
		withPrincipal(c, 5)

		err := h.AddService(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		resp, ok := httpErr.Message.(errors.ErrorResponse)
		assert.True(t, ok)
		assert.Equal(t, "INVALID_COST", resp.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		h := NewCatalogHandler(mockSvc)

		c, _ := newTestContext(http.MethodPost, "/api/services", `{"cost":"50.00"}`)
		withPrincipal(c, 5)

		err := h.AddService(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockSvc.AssertExpectations(t)
	})
}

var _ service.CatalogService = (*MockCatalogService)(nil)
