package dto

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type StageCountsDTO struct {
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	Repaired   int `json:"repaired"`
	Scrap      int `json:"scrap"`
}

type DashboardStatsDTO struct {
	CriticalEquipment int            `json:"criticalEquipment"`
	TechnicianLoad    int            `json:"technicianLoad"`
	OpenRequests      int            `json:"openRequests"`
	OverdueCount      int            `json:"overdueCount"`
	StageCounts       StageCountsDTO `json:"stageCounts"`
	TotalEquipment    int            `json:"totalEquipment"`
	TotalTeams        int            `json:"totalTeams"`
	TotalTechnicians  int            `json:"totalTechnicians"`
}

// DashboardRequestDTO is a Kanban card of GET /api/dashboard/requests; stage
// and priority are lowercased for the board UI.
type DashboardRequestDTO struct {
	ID               uuid.UUID   `json:"id"`
	Subject          string      `json:"subject"`
	Description      null.String `json:"description"`
	Equipment        string      `json:"equipment"`
	EquipmentCode    null.String `json:"equipmentCode"`
	Technician       string      `json:"technician"`
	TechnicianAvatar string      `json:"technicianAvatar"`
	Category         string      `json:"category"`
	Stage            string      `json:"stage"`
	Priority         string      `json:"priority"`
	Company          string      `json:"company"`
	IsOverdue        bool        `json:"isOverdue"`
	DueAt            null.Time   `json:"dueAt"`
	CreatedAt        time.Time   `json:"createdAt"`
}

type TechnicianDTO struct {
	ID             uuid.UUID   `json:"id"`
	FullName       string      `json:"full_name"`
	Email          null.String `json:"email"`
	Avatar         string      `json:"avatar"`
	IsActive       bool        `json:"is_active"`
	ActiveRequests int         `json:"active_requests"`
}

type DashboardEquipmentDTO struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serial_number"`
	Status       string      `json:"status"`
	Location     null.String `json:"location"`
	Category     null.String `json:"category"`
	Department   null.String `json:"department"`
	TeamName     null.String `json:"team_name"`
}

type CalendarEventDTO struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Priority   string    `json:"priority"`
	Stage      string    `json:"stage"`
	Equipment  string    `json:"equipment"`
	Technician string    `json:"technician"`
}
