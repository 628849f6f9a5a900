package dto

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"gearguard/internal/entities"
)

type CreateTeamDTO struct {
	Name      string   `json:"name" validate:"required"`
	MemberIDs []string `json:"member_ids" validate:"omitempty,dive,uuid"`
}

type UpdateTeamDTO struct {
	Name      string   `json:"name" validate:"required"`
	MemberIDs []string `json:"member_ids" validate:"omitempty,dive,uuid"`
}

// TeamDTO is the shape of the /api/teams routes: members come back as
// {id, name} pairs aggregated per team.
type TeamDTO struct {
	ID      uuid.UUID             `json:"id"`
	Name    string                `json:"name"`
	Members []entities.TeamMember `json:"members"`
	Company string                `json:"company"`
}

// TeamSummaryDTO is a row of GET /api/maintenance/teams.
type TeamSummaryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type TeamMemberDetailDTO struct {
	ID       uuid.UUID   `json:"id"`
	FullName string      `json:"full_name"`
	Email    null.String `json:"email"`
}

type TeamDetailDTO struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	CompanyName string                `json:"company_name"`
	Members     []TeamMemberDetailDTO `json:"members"`
	CreatedAt   time.Time             `json:"created_at"`
}
