package model

import "time"

// Vehicle is owned by exactly one user. Vehicles are created once and
// read-only afterward; all reads are scoped to the owner.
type Vehicle struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Make         string    `json:"make" gorm:"size:100;not null"`
	Model        string    `json:"model" gorm:"size:100;not null"`
	Year         int       `json:"year" gorm:"not null"`
	Registration string    `json:"registration" gorm:"size:50;not null"`
	Transmission string    `json:"transmission" gorm:"size:50;not null"`
	FuelType     string    `json:"fuel_type" gorm:"size:50;not null"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Owner User `json:"-" gorm:"foreignKey:UserID"`
}
