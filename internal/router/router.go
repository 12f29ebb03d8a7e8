package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"garagelink/internal/config"
	"garagelink/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	vehicleHandler *handler.VehicleHandler,
	catalogHandler *handler.CatalogHandler,
	bookingHandler *handler.BookingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/services/all", catalogHandler.ListAllServices)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Profile routes
	secured.GET("/users/me", userHandler.GetMe)
	secured.PATCH("/users/:id", userHandler.UpdateProfile)

	// Vehicle registry routes
	secured.POST("/vehicles", vehicleHandler.CreateVehicle)
	secured.GET("/vehicles", vehicleHandler.ListMyVehicles)

	// Service catalog routes
	secured.POST("/services", catalogHandler.AddService)
	secured.GET("/services", catalogHandler.ListMyServices)

	// Booking ledger routes. The historical /all route is kept as an
	// alias of the caller-scoped listing.
	secured.POST("/bookings", bookingHandler.CreateBooking)
	secured.GET("/bookings", bookingHandler.ListMyBookings)
	secured.GET("/bookings/all", bookingHandler.ListMyBookings)
	secured.GET("/bookings/requests", bookingHandler.ListIncomingRequests)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
