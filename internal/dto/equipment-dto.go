package dto

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateEquipmentDTO struct {
	Name                string     `json:"name" validate:"required"`
	SerialNumber        string     `json:"serial_number" validate:"required"`
	CategoryID          *string    `json:"category_id" validate:"omitempty,uuid"`
	DepartmentID        *string    `json:"department_id" validate:"omitempty,uuid"`
	MaintenanceTeamID   *string    `json:"maintenance_team_id" validate:"omitempty,uuid"`
	DefaultTechnicianID *string    `json:"default_technician_id" validate:"omitempty,uuid"`
	Location            *string    `json:"location"`
	PurchaseDate        *time.Time `json:"purchase_date"`
	WarrantyEndDate     *time.Time `json:"warranty_end_date"`
}

type UpdateEquipmentDTO struct {
	Name                *string    `json:"name"`
	SerialNumber        *string    `json:"serial_number"`
	CategoryID          *string    `json:"category_id" validate:"omitempty,uuid"`
	DepartmentID        *string    `json:"department_id" validate:"omitempty,uuid"`
	MaintenanceTeamID   *string    `json:"maintenance_team_id" validate:"omitempty,uuid"`
	DefaultTechnicianID *string    `json:"default_technician_id" validate:"omitempty,uuid"`
	Location            *string    `json:"location"`
	PurchaseDate        *time.Time `json:"purchase_date"`
	WarrantyEndDate     *time.Time `json:"warranty_end_date"`
	Status              *string    `json:"status" validate:"omitempty,oneof=ACTIVE SCRAPPED active scrapped"`
}

// EquipmentDetailDTO joins the display names next to the raw foreign keys so
// the edit form can render without extra lookups.
type EquipmentDetailDTO struct {
	ID                    uuid.UUID   `json:"id"`
	Name                  string      `json:"name"`
	SerialNumber          string      `json:"serial_number"`
	CategoryID            null.String `json:"category_id"`
	DepartmentID          null.String `json:"department_id"`
	MaintenanceTeamID     null.String `json:"maintenance_team_id"`
	DefaultTechnicianID   null.String `json:"default_technician_id"`
	Location              null.String `json:"location"`
	PurchaseDate          null.Time   `json:"purchase_date"`
	WarrantyEndDate       null.Time   `json:"warranty_end_date"`
	Status                string      `json:"status"`
	CreatedAt             time.Time   `json:"created_at"`
	CategoryName          null.String `json:"category_name"`
	DepartmentName        null.String `json:"department_name"`
	MaintenanceTeamName   null.String `json:"maintenance_team_name"`
	DefaultTechnicianName null.String `json:"default_technician_name"`
}
