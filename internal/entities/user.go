package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// PortalUser authenticates against the API.
type PortalUser struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CompanyID    uuid.UUID `json:"company_id" db:"company_id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AppUser is assignable staff (a technician); never deleted, only deactivated.
type AppUser struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	CompanyID uuid.UUID   `json:"company_id" db:"company_id"`
	FullName  string      `json:"full_name" db:"full_name"`
	Email     null.String `json:"email" db:"email"`
	AvatarURL null.String `json:"avatar_url" db:"avatar_url"`
	IsActive  bool        `json:"is_active" db:"is_active"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}
