package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"garagelink/internal/cache"
	"garagelink/internal/model"
	"garagelink/internal/repository"
)

const (
	catalogCacheKey = "services:all"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogService handles the service catalog.
type CatalogService interface {
	AddService(ctx context.Context, publisherID uint, name string, cost decimal.Decimal) (*model.Service, error)
	ListMyServices(ctx context.Context, publisherID uint) ([]model.Service, error)
	ListAllServices(ctx context.Context) ([]model.ServiceListing, error)
}

type catalogService struct {
	serviceRepo repository.ServiceRepository
	cache       *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(serviceRepo repository.ServiceRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		serviceRepo: serviceRepo,
		cache:       cache,
	}
}

// AddService persists a service published by the principal. The insert
// runs inside a transaction so a storage failure leaves no partial row.
func (s *catalogService) AddService(ctx context.Context, publisherID uint, name string, cost decimal.Decimal) (*model.Service, error) {
	service := &model.Service{
		Name:   name,
		Cost:   cost,
		UserID: publisherID,
	}

	err := s.serviceRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.ServiceRepository) error {
		return txRepo.Create(ctx, service)
	})
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	// Invalidate the public listing
	_ = s.cache.Delete(ctx, catalogCacheKey)

	return service, nil
}

// ListMyServices returns services published by the principal.
func (s *catalogService) ListMyServices(ctx context.Context, publisherID uint) ([]model.Service, error) {
	return s.serviceRepo.FindByPublisherID(ctx, publisherID)
}

// ListAllServices returns every service joined with its publisher, with
// caching. Unauthenticated; the full result set is returned unpaginated.
func (s *catalogService) ListAllServices(ctx context.Context) ([]model.ServiceListing, error) {
	if data, _ := s.cache.Get(ctx, catalogCacheKey); data != nil {
		var cached []model.ServiceListing
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	listings, err := s.serviceRepo.ListWithPublisher(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	if payload, err := json.Marshal(listings); err == nil {
		_ = s.cache.Set(ctx, catalogCacheKey, payload, catalogCacheTTL)
	}

	return listings, nil
}
