package entities

import "strings"

// RequestStage is the four-value lifecycle of a maintenance request. The
// intended order is NEW → IN_PROGRESS → REPAIRED → SCRAP, but any
// authenticated caller may set any stage at any time; only membership in the
// enum is enforced.
type RequestStage string

const (
	StageNew        RequestStage = "NEW"
	StageInProgress RequestStage = "IN_PROGRESS"
	StageRepaired   RequestStage = "REPAIRED"
	StageScrap      RequestStage = "SCRAP"
)

// ParseRequestStage accepts any casing; ok is false for values outside the enum.
func ParseRequestStage(s string) (RequestStage, bool) {
	switch stage := RequestStage(strings.ToUpper(s)); stage {
	case StageNew, StageInProgress, StageRepaired, StageScrap:
		return stage, true
	default:
		return "", false
	}
}

func (s RequestStage) Lower() string { return strings.ToLower(string(s)) }

type RequestPriority string

const (
	PriorityLow    RequestPriority = "LOW"
	PriorityMedium RequestPriority = "MEDIUM"
	PriorityHigh   RequestPriority = "HIGH"
	PriorityUrgent RequestPriority = "URGENT"
)

func (p RequestPriority) Lower() string { return strings.ToLower(string(p)) }

type MaintenanceType string

const (
	TypeCorrective MaintenanceType = "CORRECTIVE"
	TypePreventive MaintenanceType = "PREVENTIVE"
)

type EquipmentStatus string

const (
	EquipmentActive   EquipmentStatus = "ACTIVE"
	EquipmentScrapped EquipmentStatus = "SCRAPPED"
)
