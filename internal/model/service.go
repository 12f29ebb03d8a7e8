package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is an offering published by a mechanic.
type Service struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Cost      decimal.Decimal `json:"cost" gorm:"type:decimal(10,2);not null"`
	UserID    uint            `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relations
	Publisher User `json:"-" gorm:"foreignKey:UserID"`
}

// ServiceListing is the flattened services-with-publisher row returned by
// the public catalog listing.
type ServiceListing struct {
	ServiceID    uint            `json:"service_id"`
	ServiceName  string          `json:"service_name"`
	ServiceCost  decimal.Decimal `json:"service_cost"`
	UserID       uint            `json:"user_id"`
	UserName     string          `json:"user_name"`
	UserEmail    string          `json:"user_email"`
	UserLocation string          `json:"user_location"`
}
