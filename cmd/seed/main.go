package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"garagelink/internal/config"
	"garagelink/internal/db"
	"garagelink/internal/model"
	"garagelink/internal/repository"
)

const seedPassword = "password123"

type seedUser struct {
	user     model.User
	vehicles []model.Vehicle
	services []seedService
}

type seedService struct {
	name string
	cost string
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.Service{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	ctx := context.Background()

	created, skipped, err := seedDemoData(ctx, userRepo, vehicleRepo, serviceRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", skipped)
}

// demoUsers returns the fixture set: two mechanics with services and two
// customers with vehicles. All share the same demo password.
func demoUsers() []seedUser {
	return []seedUser{
		{
			user: model.User{Name: "Marta Silva", Email: "marta@garagelink.dev", Role: "mechanic", Location: "Lisbon"},
			services: []seedService{
				{name: "Oil Change", cost: "50.00"},
				{name: "Brake Inspection", cost: "35.00"},
			},
		},
		{
			user: model.User{Name: "Deniz Kaya", Email: "deniz@garagelink.dev", Role: "mechanic", Location: "Porto"},
			services: []seedService{
				{name: "Full Service", cost: "180.00"},
			},
		},
		{
			user: model.User{Name: "Ana Costa", Email: "ana@garagelink.dev", Role: "customer", Location: "Lisbon"},
			vehicles: []model.Vehicle{
				{Make: "Toyota", Model: "Corolla", Year: 2020, Registration: "AA-12-BB", Transmission: "auto", FuelType: "petrol"},
			},
		},
		{
			user: model.User{Name: "Rui Mendes", Email: "rui@garagelink.dev", Role: "customer", Location: "Braga"},
			vehicles: []model.Vehicle{
				{Make: "Renault", Model: "Clio", Year: 2017, Registration: "CC-34-DD", Transmission: "manual", FuelType: "diesel"},
				{Make: "Nissan", Model: "Leaf", Year: 2022, Registration: "EE-56-FF", Transmission: "auto", FuelType: "electric"},
			},
		},
	}
}

// seedDemoData inserts the demo users with their vehicles and services.
// Users already present (by email) are skipped rather than overwritten.
func seedDemoData(
	ctx context.Context,
	userRepo repository.UserRepository,
	vehicleRepo repository.VehicleRepository,
	serviceRepo repository.ServiceRepository,
) (created int, skipped int, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		return 0, 0, fmt.Errorf("hash demo password: %w", err)
	}

	for _, entry := range demoUsers() {
		existing, err := userRepo.FindByEmail(ctx, entry.user.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, skipped, fmt.Errorf("check user %s: %w", entry.user.Email, err)
		}
		if existing != nil && err == nil {
			skipped++
			continue
		}

		user := entry.user
		user.PasswordHash = string(hash)
		if err := userRepo.Create(ctx, &user); err != nil {
			return created, skipped, fmt.Errorf("create user %s: %w", user.Email, err)
		}

		for _, vehicle := range entry.vehicles {
			vehicle.UserID = user.ID
			if err := vehicleRepo.Create(ctx, &vehicle); err != nil {
				return created, skipped, fmt.Errorf("create vehicle %s for %s: %w", vehicle.Registration, user.Email, err)
			}
		}

		for _, svc := range entry.services {
			cost, err := decimal.NewFromString(svc.cost)
			if err != nil {
				return created, skipped, fmt.Errorf("parse cost for %s: %w", svc.name, err)
			}
			service := model.Service{Name: svc.name, Cost: cost, UserID: user.ID}
			if err := serviceRepo.Create(ctx, &service); err != nil {
				return created, skipped, fmt.Errorf("create service %s for %s: %w", svc.name, user.Email, err)
			}
		}

		created++
	}

	return created, skipped, nil
}
