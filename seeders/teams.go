package seeders

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var teams = []struct {
	Name    string
	Members []string
}{
	{"Mechanical", []string{"Anvar Rahimov", "Jasur Toshev"}},
	{"Electrical", []string{"Dilnoza Karimova", "Madina Usmonova"}},
	{"General Maintenance", []string{"Rustam Nazarov"}},
}

func (s *Seeder) seedTeams(ctx context.Context, companyID uuid.UUID, userIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(teams))
	for _, t := range teams {
		id, err := s.findOrInsert(ctx,
			`SELECT id FROM app.maintenance_team WHERE company_id = $1 AND name = $2`,
			[]any{companyID, t.Name},
			`INSERT INTO app.maintenance_team (company_id, name) VALUES ($1, $2) RETURNING id`,
			[]any{companyID, t.Name})
		if err != nil {
			return nil, err
		}
		ids[t.Name] = id

		for _, member := range t.Members {
			userID, ok := userIDs[member]
			if !ok {
				continue
			}
			_, err := s.pool.Exec(ctx, `
				INSERT INTO app.maintenance_team_member (team_id, user_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING`, id, userID)
			if err != nil {
				return nil, err
			}
		}
	}
	s.logger.Info("teams ready", zap.Int("count", len(ids)))
	return ids, nil
}
