package seeders

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var equipment = []struct {
	Name       string
	Serial     string
	Category   string
	Department string
	Team       string
	Technician string
	Location   string
}{
	{"CNC Lathe #1", "CNC-001", "CNC Machines", "Production", "Mechanical", "Anvar Rahimov", "Hall A"},
	{"CNC Mill #2", "CNC-002", "CNC Machines", "Production", "Mechanical", "Jasur Toshev", "Hall A"},
	{"Belt Conveyor North", "CONV-010", "Conveyors", "Logistics", "Electrical", "Dilnoza Karimova", "Warehouse"},
	{"Forklift FL-3", "FL-003", "Forklifts", "Logistics", "General Maintenance", "Rustam Nazarov", "Yard"},
	{"Rooftop HVAC Unit", "HVAC-001", "HVAC", "Facilities", "Electrical", "Madina Usmonova", "Roof"},
}

func (s *Seeder) seedEquipment(
	ctx context.Context,
	companyID uuid.UUID,
	categoryIDs, departmentIDs, teamIDs, userIDs map[string]uuid.UUID,
) error {
	optional := func(ids map[string]uuid.UUID, key string) *uuid.UUID {
		if id, ok := ids[key]; ok {
			return &id
		}
		return nil
	}

	for _, e := range equipment {
		_, err := s.findOrInsert(ctx,
			`SELECT id FROM app.equipment WHERE company_id = $1 AND serial_number = $2`,
			[]any{companyID, e.Serial},
			`INSERT INTO app.equipment
				(company_id, name, serial_number, category_id, department_id,
				 maintenance_team_id, default_technician_id, location)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			[]any{companyID, e.Name, e.Serial,
				optional(categoryIDs, e.Category), optional(departmentIDs, e.Department),
				optional(teamIDs, e.Team), optional(userIDs, e.Technician), e.Location})
		if err != nil {
			return err
		}
	}
	s.logger.Info("equipment ready", zap.Int("count", len(equipment)))
	return nil
}
