package seeders

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var categories = []struct {
	Name        string
	Responsible string
}{
	{"CNC Machines", "Anvar Rahimov"},
	{"Conveyors", "Jasur Toshev"},
	{"Forklifts", "Rustam Nazarov"},
	{"HVAC", ""},
}

func (s *Seeder) seedCategories(ctx context.Context, companyID uuid.UUID, userIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(categories))
	for _, c := range categories {
		var responsible *uuid.UUID
		if id, ok := userIDs[c.Responsible]; ok {
			responsible = &id
		}
		id, err := s.findOrInsert(ctx,
			`SELECT id FROM app.equipment_category WHERE company_id = $1 AND name = $2`,
			[]any{companyID, c.Name},
			`INSERT INTO app.equipment_category (company_id, name, responsible_id) VALUES ($1, $2, $3) RETURNING id`,
			[]any{companyID, c.Name, responsible})
		if err != nil {
			return nil, err
		}
		ids[c.Name] = id
	}
	s.logger.Info("categories ready", zap.Int("count", len(ids)))
	return ids, nil
}
