// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role enumerates the access levels a user can hold.
type Role string

const (
	// RoleUser is the default role assigned on signup.
	RoleUser Role = "USER"

	// RoleAdmin grants access to job management and enquiry administration.
	RoleAdmin Role = "ADMIN"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display name shown in the dashboard.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the user's email address used for authentication.
	// It is stored trimmed and lowercased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// It is never serialized in API responses.
	Password string `gorm:"size:255;not null" json:"-"`

	// Role is the user's access level (USER or ADMIN).
	Role Role `gorm:"size:16;not null;default:'USER'" json:"role"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
