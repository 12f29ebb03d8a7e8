package model

import "time"

// User is anyone registered on the platform. Role is an open string
// ("customer", "mechanic") and is stored as provided.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;not null"`
	Location     string    `json:"location" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:UserID"`
	Services []Service `json:"services,omitempty" gorm:"foreignKey:UserID"`
}

// Profile is the user projection returned by auth and profile endpoints.
// The credential hash never leaves the model layer.
type Profile struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// ToProfile projects a user onto its public shape.
func (u *User) ToProfile() Profile {
	return Profile{
		ID:       u.ID,
		Name:     u.Name,
		Role:     u.Role,
		Email:    u.Email,
		Location: u.Location,
	}
}
