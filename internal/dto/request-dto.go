package dto

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateRequestDTO struct {
	Subject         string     `json:"subject" validate:"required"`
	Description     *string    `json:"description"`
	EquipmentID     *string    `json:"equipment_id" validate:"omitempty,uuid"`
	TeamID          *string    `json:"team_id" validate:"omitempty,uuid"`
	TechnicianID    *string    `json:"technician_id" validate:"omitempty,uuid"`
	MaintenanceType *string    `json:"maintenance_type" validate:"omitempty,maintenance_type"`
	Priority        *string    `json:"priority" validate:"omitempty,request_priority"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,min=0"`
	DueAt           *time.Time `json:"due_at"`
}

// UpdateRequestDTO follows the coalesce-on-write contract: every field is
// optional and nil keeps the stored value.
type UpdateRequestDTO struct {
	Subject         *string    `json:"subject"`
	Description     *string    `json:"description"`
	EquipmentID     *string    `json:"equipment_id" validate:"omitempty,uuid"`
	TeamID          *string    `json:"team_id" validate:"omitempty,uuid"`
	TechnicianID    *string    `json:"technician_id" validate:"omitempty,uuid"`
	MaintenanceType *string    `json:"maintenance_type" validate:"omitempty,maintenance_type"`
	Priority        *string    `json:"priority" validate:"omitempty,request_priority"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,min=0"`
	Stage           *string    `json:"stage" validate:"omitempty,request_stage"`
	DueAt           *time.Time `json:"due_at"`
}

type UpdateStageDTO struct {
	Stage string `json:"stage" validate:"required,request_stage"`
}

// RequestListItemDTO is a row of GET /api/requests.
type RequestListItemDTO struct {
	ID              uuid.UUID   `json:"id"`
	Subject         string      `json:"subject"`
	Description     null.String `json:"description"`
	Type            string      `json:"type"`
	Priority        string      `json:"priority"`
	Stage           string      `json:"stage"`
	RequestDate     time.Time   `json:"request_date"`
	ScheduledAt     null.Time   `json:"scheduled_at"`
	DueAt           null.Time   `json:"due_at"`
	IsOverdue       bool        `json:"is_overdue"`
	DurationMinutes int         `json:"duration_minutes"`
	RepairedAt      null.Time   `json:"repaired_at"`
	EquipmentName   null.String `json:"equipment_name"`
	EquipmentSerial null.String `json:"equipment_serial"`
	TeamName        null.String `json:"team_name"`
	CreatedBy       null.String `json:"created_by"`
	AssignedTo      null.String `json:"assigned_to"`
}

type KanbanCardDTO struct {
	ID            uuid.UUID   `json:"id"`
	Subject       string      `json:"subject"`
	Priority      string      `json:"priority"`
	IsOverdue     bool        `json:"is_overdue"`
	EquipmentName null.String `json:"equipment_name"`
	AssignedTo    null.String `json:"assigned_to"`
	DueAt         null.Time   `json:"due_at"`
}

type KanbanColumnDTO struct {
	Stage    string          `json:"stage"`
	Requests []KanbanCardDTO `json:"requests"`
}

// CalendarRequestDTO is a row of GET /api/requests/calendar (PREVENTIVE only).
type CalendarRequestDTO struct {
	ID              uuid.UUID   `json:"id"`
	Subject         string      `json:"subject"`
	ScheduledAt     time.Time   `json:"scheduled_at"`
	DurationMinutes int         `json:"duration_minutes"`
	EquipmentID     null.String `json:"equipment_id"`
	AssignedToID    null.String `json:"assigned_to_id"`
	EquipmentName   null.String `json:"equipment_name"`
	AssignedToName  null.String `json:"assigned_to_name"`
}

// RequestDetailDTO is the denormalized shape of GET /api/maintenance/requests/:id.
type RequestDetailDTO struct {
	ID              uuid.UUID   `json:"id"`
	Subject         string      `json:"subject"`
	Description     null.String `json:"description"`
	Stage           string      `json:"stage"`
	Priority        string      `json:"priority"`
	MaintenanceType string      `json:"maintenance_type"`
	IsOverdue       bool        `json:"is_overdue"`
	DueAt           null.Time   `json:"due_at"`
	RequestDate     time.Time   `json:"request_date"`
	ScheduledDate   null.Time   `json:"scheduled_date"`
	DurationMinutes int         `json:"duration_minutes"`
	CreatedAt       time.Time   `json:"created_at"`
	EquipmentID     null.String `json:"equipment_id"`
	EquipmentName   null.String `json:"equipment_name"`
	EquipmentSerial null.String `json:"equipment_serial"`
	Category        null.String `json:"category"`
	TeamID          null.String `json:"team_id"`
	TeamName        null.String `json:"team_name"`
	TechnicianID    null.String `json:"technician_id"`
	TechnicianName  null.String `json:"technician_name"`
	CreatedBy       null.String `json:"created_by"`
	CompanyName     null.String `json:"company_name"`
}

type CreatedDTO struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type MessageDTO struct {
	Message string `json:"message"`
}

type StageUpdatedDTO struct {
	Message string          `json:"message"`
	Request StagePatchedDTO `json:"request"`
}

type StagePatchedDTO struct {
	ID    uuid.UUID `json:"id"`
	Stage string    `json:"stage"`
}
