package service

import (
	"context"
	"fmt"

	"garagelink/internal/model"
	"garagelink/internal/repository"
)

// VehicleService handles the vehicle registry.
type VehicleService interface {
	CreateVehicle(ctx context.Context, ownerID uint, vehicle *model.Vehicle) (*model.Vehicle, error)
	ListMyVehicles(ctx context.Context, ownerID uint) ([]model.Vehicle, error)
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

// CreateVehicle stores a vehicle owned by the principal.
func (s *vehicleService) CreateVehicle(ctx context.Context, ownerID uint, vehicle *model.Vehicle) (*model.Vehicle, error) {
	vehicle.UserID = ownerID
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

// ListMyVehicles returns all vehicles owned by the principal. An owner
// with no vehicles gets an empty list, never an error.
func (s *vehicleService) ListMyVehicles(ctx context.Context, ownerID uint) ([]model.Vehicle, error) {
	return s.vehicleRepo.FindByOwnerID(ctx, ownerID)
}
