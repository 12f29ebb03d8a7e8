package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"garagelink/internal/errors"
	"garagelink/internal/model"
	"garagelink/internal/service"
)

// BookingHandler handles booking ledger endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest represents a booking request.
type CreateBookingRequest struct {
	ServiceID uint `json:"service_id" validate:"required"`
	VehicleID uint `json:"vehicle_id" validate:"required"`
}

// CreateBookingResponse confirms a created booking.
type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID uint   `json:"booking_id"`
}

// CreateBooking godoc
// @Summary Book a service for a vehicle
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBookingRequest true "Booking data"
// @Success 201 {object} CreateBookingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingService.CreateBooking(c.Request().Context(), uid, req.ServiceID, req.VehicleID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreateBookingResponse{
		Message:   "booking created successfully",
		BookingID: booking.ID,
	})
}

// ListMyBookings godoc
// @Summary List the current user's bookings with service, vehicle, and mechanic details
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CustomerBooking
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingService.ListMyBookings(c.Request().Context(), uid)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if bookings == nil {
		bookings = []model.CustomerBooking{}
	}

	return c.JSON(http.StatusOK, bookings)
}

// ListIncomingRequests godoc
// @Summary List bookings against the current mechanic's services
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MechanicRequest
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/requests [get]
func (h *BookingHandler) ListIncomingRequests(c echo.Context) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}

	requests, err := h.bookingService.ListIncomingRequests(c.Request().Context(), uid)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if requests == nil {
		requests = []model.MechanicRequest{}
	}

	return c.JSON(http.StatusOK, requests)
}
