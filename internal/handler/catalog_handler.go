package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"garagelink/internal/errors"
	"garagelink/internal/model"
	"garagelink/internal/service"
)

// CatalogHandler handles service catalog endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// AddServiceRequest represents a service publication request.
type AddServiceRequest struct {
	Name string `json:"name" validate:"required"`
	Cost string `json:"cost" validate:"required"`
}

// AddServiceResponse confirms a published service.
type AddServiceResponse struct {
	Message   string `json:"message"`
	ServiceID uint   `json:"service_id"`
}

// AddService godoc
// @Summary Publish a service offered by the current user
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddServiceRequest true "Service data"
// @Success 201 {object} AddServiceResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /services [post]
func (h *CatalogHandler) AddService(c echo.Context) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}

	var req AddServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cost, err := decimal.NewFromString(req.Cost)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid cost",
			Code:  "INVALID_COST",
		})
	}

	created, err := h.catalogService.AddService(c.Request().Context(), uid, req.Name, cost)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, AddServiceResponse{
		Message:   "service added successfully",
		ServiceID: created.ID,
	})
}

// ListMyServices godoc
// @Summary List services published by the current user
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Service
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /services [get]
func (h *CatalogHandler) ListMyServices(c echo.Context) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}

	services, err := h.catalogService.ListMyServices(c.Request().Context(), uid)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if services == nil {
		services = []model.Service{}
	}

	return c.JSON(http.StatusOK, services)
}

// ListAllServices godoc
// @Summary List every service with its publisher
// @Tags services
// @Produce json
// @Success 200 {array} model.ServiceListing
// @Failure 500 {object} errors.ErrorResponse
// @Router /services/all [get]
func (h *CatalogHandler) ListAllServices(c echo.Context) error {
	listings, err := h.catalogService.ListAllServices(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if listings == nil {
		listings = []model.ServiceListing{}
	}

	return c.JSON(http.StatusOK, listings)
}
