package entities

import "github.com/google/uuid"

// TeamMember is a row of the maintenance_team_member join relation projected
// with the member's name for list responses.
type TeamMember struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}
