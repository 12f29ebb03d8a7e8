package repository

import (
	"context"

	"gorm.io/gorm"

	"garagelink/internal/model"
)

// ServiceRepository defines service-offering persistence operations.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	FindByID(ctx context.Context, id uint) (*model.Service, error)
	FindByPublisherID(ctx context.Context, publisherID uint) ([]model.Service, error)
	ListWithPublisher(ctx context.Context) ([]model.ServiceListing, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ServiceRepository) error) error
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

// Create creates a new service offering.
func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

// FindByID finds a service by ID.
func (r *serviceRepository) FindByID(ctx context.Context, id uint) (*model.Service, error) {
	var service model.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// FindByPublisherID finds all services published by a user.
func (r *serviceRepository) FindByPublisherID(ctx context.Context, publisherID uint) ([]model.Service, error) {
	var services []model.Service
	if err := r.db.WithContext(ctx).Where("user_id = ?", publisherID).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// ListWithPublisher joins every service with its publishing user.
func (r *serviceRepository) ListWithPublisher(ctx context.Context) ([]model.ServiceListing, error) {
	var listings []model.ServiceListing
	err := r.db.WithContext(ctx).
		Table("services").
		Select(`services.id AS service_id, services.name AS service_name, services.cost AS service_cost,
			users.id AS user_id, users.name AS user_name, users.email AS user_email, users.location AS user_location`).
		Joins("JOIN users ON users.id = services.user_id").
		Scan(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// WithTransaction executes a function within a database transaction.
func (r *serviceRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ServiceRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &serviceRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
