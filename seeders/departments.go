package seeders

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var departments = []string{"Production", "Logistics", "Quality Control", "Facilities"}

func (s *Seeder) seedDepartments(ctx context.Context, companyID uuid.UUID) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(departments))
	for _, name := range departments {
		id, err := s.findOrInsert(ctx,
			`SELECT id FROM app.department WHERE company_id = $1 AND name = $2`,
			[]any{companyID, name},
			`INSERT INTO app.department (company_id, name) VALUES ($1, $2) RETURNING id`,
			[]any{companyID, name})
		if err != nil {
			return nil, err
		}
		ids[name] = id
	}
	s.logger.Info("departments ready", zap.Int("count", len(ids)))
	return ids, nil
}
