package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`              // Primary key
	Email        string    `json:"email" db:"email"`             // Unique, lowercased email
	PasswordHash string    `json:"-" db:"password_hash"`         // Hashed password, never serialized
	FirstName    *string   `json:"firstName" db:"first_name"`    // Optional first name
	LastName     *string   `json:"lastName" db:"last_name"`      // Optional last name
	IsActive     bool      `json:"isActive" db:"is_active"`      // Soft-delete flag
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`    // Last update timestamp
}
