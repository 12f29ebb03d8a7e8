package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"garagelink/internal/model"
)

func TestVehicleService_CreateVehicle(t *testing.T) {
	mockRepo := new(MockVehicleRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Vehicle")).Return(nil)

	service := NewVehicleService(mockRepo)
	created, err := service.CreateVehicle(context.Background(), 4, &model.Vehicle{
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2020,
		Registration: "AA-12-BB",
		Transmission: "auto",
		FuelType:     "petrol",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	// Ownership always comes from the principal, never from the body.
	assert.Equal(t, uint(4), created.UserID)
	mockRepo.AssertExpectations(t)
}

func TestVehicleService_ListMyVehicles(t *testing.T) {
	mockRepo := new(MockVehicleRepository)
	mockRepo.On("FindByOwnerID", mock.Anything, uint(4)).Return([]model.Vehicle{
		{ID: 2, Make: "Toyota", Model: "Corolla", Year: 2020, UserID: 4},
	}, nil)

	service := NewVehicleService(mockRepo)
	vehicles, err := service.ListMyVehicles(context.Background(), 4)

	assert.NoError(t, err)
	assert.Len(t, vehicles, 1)
	assert.Equal(t, uint(4), vehicles[0].UserID)
	mockRepo.AssertExpectations(t)
}

func TestVehicleService_ListMyVehicles_Empty(t *testing.T) {
	mockRepo := new(MockVehicleRepository)
	mockRepo.On("FindByOwnerID", mock.Anything, uint(8)).Return([]model.Vehicle{}, nil)

	service := NewVehicleService(mockRepo)
	vehicles, err := service.ListMyVehicles(context.Background(), 8)

	assert.NoError(t, err)
	assert.Empty(t, vehicles)
	mockRepo.AssertExpectations(t)
}
