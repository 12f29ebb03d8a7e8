package repository

import (
	"context"

	"gorm.io/gorm"

	"garagelink/internal/model"
)

// BookingRepository defines booking persistence and joined read operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	ListByRequesterID(ctx context.Context, requesterID uint) ([]model.CustomerBooking, error)
	ListByServiceIDs(ctx context.Context, serviceIDs []uint) ([]model.MechanicRequest, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo BookingRepository) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts a booking. A duplicate (service, vehicle, requester)
// triple violates the uniq_booking_triple index and surfaces as the
// driver's duplicate-key error.
func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// ListByRequesterID joins bookings with their service, vehicle, and the
// service's publishing user, filtered to the requesting customer.
func (r *bookingRepository) ListByRequesterID(ctx context.Context, requesterID uint) ([]model.CustomerBooking, error) {
	var rows []model.CustomerBooking
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.service_id AS service_id, services.name AS service_name, services.cost AS service_cost,
			bookings.vehicle_id AS vehicle_id, vehicles.model AS vehicle_model, vehicles.year AS vehicle_year,
			users.name AS mechanic_name, users.email AS mechanic_email, users.location AS mechanic_location`).
		Joins("JOIN services ON services.id = bookings.service_id").
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Joins("JOIN users ON users.id = services.user_id").
		Where("bookings.user_id = ?", requesterID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByServiceIDs joins bookings referencing any of the given services
// with the requesting user and the vehicle.
func (r *bookingRepository) ListByServiceIDs(ctx context.Context, serviceIDs []uint) ([]model.MechanicRequest, error) {
	var rows []model.MechanicRequest
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id AS booking_id, services.name AS service_name, services.cost AS service_cost,
			vehicles.model AS vehicle_model, vehicles.year AS vehicle_year, vehicles.registration AS vehicle_registration,
			users.name AS customer_name, users.email AS customer_email, bookings.created_at AS created_at`).
		Joins("JOIN services ON services.id = bookings.service_id").
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.service_id IN ?", serviceIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// WithTransaction executes a function within a database transaction.
func (r *bookingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo BookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &bookingRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
