package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`             // Primary key
	Username     string     `json:"username" db:"username"`           // Unique username
	Email        string     `json:"email" db:"email"`                 // Unique, lowercase-normalized email
	PasswordHash string     `json:"-" db:"password_hash"`             // Bcrypt hash, never serialized
	Role         string     `json:"role" db:"role"`                   // "user" or "admin"
	Suspended    bool       `json:"suspended" db:"suspended"`         // Suspended users cannot log in
	Verified     bool       `json:"verified" db:"verified"`           // Email verification flag
	Bio          string     `json:"bio" db:"bio"`                     // Free-form profile text
	ImageURL     string     `json:"image_url" db:"image_url"`         // Avatar reference
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`       // Registration timestamp
	LastLogin    *time.Time `json:"last_login,omitempty" db:"last_login"` // Nil until first login
}
