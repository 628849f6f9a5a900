package seeders

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var appUsers = []struct {
	FullName string
	Email    string
}{
	{"Anvar Rahimov", "anvar.rahimov@gearguard.local"},
	{"Dilnoza Karimova", "dilnoza.karimova@gearguard.local"},
	{"Jasur Toshev", "jasur.toshev@gearguard.local"},
	{"Madina Usmonova", "madina.usmonova@gearguard.local"},
	{"Rustam Nazarov", "rustam.nazarov@gearguard.local"},
}

// seedAppUsers creates the technicians shown on the dashboard and returns
// their ids keyed by full name.
func (s *Seeder) seedAppUsers(ctx context.Context, companyID uuid.UUID) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(appUsers))
	for _, u := range appUsers {
		id, err := s.findOrInsert(ctx,
			`SELECT id FROM app.app_user WHERE company_id = $1 AND email = $2`,
			[]any{companyID, u.Email},
			`INSERT INTO app.app_user (company_id, full_name, email) VALUES ($1, $2, $3) RETURNING id`,
			[]any{companyID, u.FullName, u.Email})
		if err != nil {
			return nil, err
		}
		ids[u.FullName] = id
	}
	s.logger.Info("app users ready", zap.Int("count", len(ids)))
	return ids, nil
}
