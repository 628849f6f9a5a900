package seeders

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *Seeder) seedCompany(ctx context.Context, name string) (uuid.UUID, error) {
	id, err := s.findOrInsert(ctx,
		`SELECT id FROM app.company WHERE name = $1`, []any{name},
		`INSERT INTO app.company (name) VALUES ($1) RETURNING id`, []any{name})
	if err != nil {
		return uuid.Nil, err
	}
	s.logger.Info("company ready", zap.String("name", name))
	return id, nil
}
