package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"garagelink/internal/errors"
	"garagelink/internal/model"
	"garagelink/internal/repository"
)

// mysqlDuplicateEntry is the server error for a violated unique index.
const mysqlDuplicateEntry = 1062

// BookingService handles the booking ledger.
type BookingService interface {
	CreateBooking(ctx context.Context, requesterID, serviceID, vehicleID uint) (*model.Booking, error)
	ListMyBookings(ctx context.Context, requesterID uint) ([]model.CustomerBooking, error)
	ListIncomingRequests(ctx context.Context, mechanicID uint) ([]model.MechanicRequest, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	serviceRepo repository.ServiceRepository
	vehicleRepo repository.VehicleRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	vehicleRepo repository.VehicleRepository,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		vehicleRepo: vehicleRepo,
	}
}

// CreateBooking records a booking after verifying both referenced
// entities exist, service first. The insert runs in a transaction and
// relies on the unique triple index for duplicate rejection, so two
// concurrent identical requests cannot both persist.
func (s *bookingService) CreateBooking(ctx context.Context, requesterID, serviceID, vehicleID uint) (*model.Booking, error) {
	if _, err := s.serviceRepo.FindByID(ctx, serviceID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}

	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}

	booking := &model.Booking{
		ServiceID: serviceID,
		VehicleID: vehicleID,
		UserID:    requesterID,
	}

	err := s.bookingRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.BookingRepository) error {
		return txRepo.Create(ctx, booking)
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, errors.ErrBookingExists
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	return booking, nil
}

// ListMyBookings returns the customer's bookings joined with service,
// vehicle, and the mechanic who published the service.
func (s *bookingService) ListMyBookings(ctx context.Context, requesterID uint) ([]model.CustomerBooking, error) {
	return s.bookingRepo.ListByRequesterID(ctx, requesterID)
}

// ListIncomingRequests returns bookings against any of the mechanic's
// services. A mechanic with zero published services gets
// ErrNoServicesForMechanic; published services with zero bookings get
// an empty list.
func (s *bookingService) ListIncomingRequests(ctx context.Context, mechanicID uint) ([]model.MechanicRequest, error) {
	services, err := s.serviceRepo.FindByPublisherID(ctx, mechanicID)
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	if len(services) == 0 {
		return nil, errors.ErrNoServicesForMechanic
	}

	serviceIDs := make([]uint, 0, len(services))
	for _, svc := range services {
		serviceIDs = append(serviceIDs, svc.ID)
	}

	return s.bookingRepo.ListByServiceIDs(ctx, serviceIDs)
}

// isDuplicateKey reports whether err is a violated unique constraint.
func isDuplicateKey(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return stderrors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
