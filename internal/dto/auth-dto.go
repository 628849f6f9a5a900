package dto

import (
	"time"

	"github.com/google/uuid"
)

type SignupDTO struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthUserDTO struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type AuthResponseDTO struct {
	Message string      `json:"message"`
	User    AuthUserDTO `json:"user"`
	Token   string      `json:"token"`
}

type ValidateResponseDTO struct {
	Valid bool        `json:"valid"`
	User  AuthUserDTO `json:"user"`
}
