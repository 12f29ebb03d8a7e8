package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"garagelink/internal/errors"
	"garagelink/internal/model"
	"garagelink/internal/service"
)

// VehicleHandler handles vehicle registry endpoints.
type VehicleHandler struct {
	vehicleService service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// CreateVehicleRequest represents a vehicle creation request. Year is
// accepted as a string and must parse as an integer.
type CreateVehicleRequest struct {
	Make         string `json:"make" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Year         string `json:"year" validate:"required"`
	Registration string `json:"registration" validate:"required"`
	Transmission string `json:"transmission" validate:"required"`
	FuelType     string `json:"fuel_type" validate:"required"`
}

// CreateVehicleResponse confirms a created vehicle.
type CreateVehicleResponse struct {
	Message   string `json:"message"`
	VehicleID uint   `json:"vehicle_id"`
}

// VehiclesResponse wraps the principal's vehicle list.
type VehiclesResponse struct {
	Vehicles []model.Vehicle `json:"vehicles"`
}

// CreateVehicle godoc
// @Summary Register a vehicle owned by the current user
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateVehicleRequest true "Vehicle data"
// @Success 201 {object} CreateVehicleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}

	var req CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	year, err := strconv.Atoi(req.Year)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid year",
			Code:  "INVALID_YEAR",
		})
	}

	vehicle := &model.Vehicle{
		Make:         req.Make,
		Model:        req.Model,
		Year:         year,
		Registration: req.Registration,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
	}

	created, err := h.vehicleService.CreateVehicle(c.Request().Context(), uid, vehicle)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreateVehicleResponse{
		Message:   "vehicle created successfully",
		VehicleID: created.ID,
	})
}

// ListMyVehicles godoc
// @Summary List vehicles owned by the current user
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VehiclesResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /vehicles [get]
func (h *VehicleHandler) ListMyVehicles(c echo.Context) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}

	vehicles, err := h.vehicleService.ListMyVehicles(c.Request().Context(), uid)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}

	return c.JSON(http.StatusOK, VehiclesResponse{Vehicles: vehicles})
}
