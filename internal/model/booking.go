package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking links a service, a vehicle, and the requesting customer.
// The composite unique index is the duplicate guard: two concurrent
// requests for the same triple race on the constraint, not on an
// application-level existence check.
type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ServiceID uint      `json:"service_id" gorm:"not null;uniqueIndex:uniq_booking_triple,priority:1"`
	VehicleID uint      `json:"vehicle_id" gorm:"not null;uniqueIndex:uniq_booking_triple,priority:2"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uniq_booking_triple,priority:3;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Service   Service `json:"-" gorm:"foreignKey:ServiceID"`
	Vehicle   Vehicle `json:"-" gorm:"foreignKey:VehicleID"`
	Requester User    `json:"-" gorm:"foreignKey:UserID"`
}

// CustomerBooking is the customer-facing joined view of a booking. The
// contact fields identify the mechanic who will perform the service,
// not the customer who booked it.
type CustomerBooking struct {
	ServiceID        uint            `json:"service_id"`
	ServiceName      string          `json:"service_name"`
	ServiceCost      decimal.Decimal `json:"service_cost"`
	VehicleID        uint            `json:"vehicle_id"`
	VehicleModel     string          `json:"vehicle_model"`
	VehicleYear      int             `json:"vehicle_year"`
	MechanicName     string          `json:"mechanic_name"`
	MechanicEmail    string          `json:"mechanic_email"`
	MechanicLocation string          `json:"mechanic_location"`
}

// MechanicRequest is the mechanic-facing joined view: an incoming booking
// against one of the mechanic's services, with the requesting customer.
type MechanicRequest struct {
	BookingID           uint            `json:"booking_id"`
	ServiceName         string          `json:"service_name"`
	ServiceCost         decimal.Decimal `json:"service_cost"`
	VehicleModel        string          `json:"vehicle_model"`
	VehicleYear         int             `json:"vehicle_year"`
	VehicleRegistration string          `json:"vehicle_registration"`
	CustomerName        string          `json:"customer_name"`
	CustomerEmail       string          `json:"customer_email"`
	CreatedAt           time.Time       `json:"created_at"`
}
