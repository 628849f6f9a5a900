package dto

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateCategoryDTO struct {
	Name          string  `json:"name" validate:"required"`
	ResponsibleID *string `json:"responsible_id" validate:"omitempty,uuid"`
}

type UpdateCategoryDTO struct {
	Name          string  `json:"name" validate:"required"`
	ResponsibleID *string `json:"responsible_id" validate:"omitempty,uuid"`
}

// CategoryDTO carries the responsible user's display name resolved via a
// LEFT JOIN, with "-" standing in when nobody is assigned.
type CategoryDTO struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	ResponsibleID null.String `json:"responsible_id"`
	Responsible   string      `json:"responsible"`
	Company       string      `json:"company"`
	CreatedAt     time.Time   `json:"created_at"`
}

// CategoryOptionDTO is the slim shape of GET /api/maintenance/categories.
type CategoryOptionDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// UserOptionDTO backs the assignee pickers (GET /api/categories/users).
type UserOptionDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
