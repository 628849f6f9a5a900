package seeders

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Seeder fills an empty database with a workable demo data set. Every step is
// idempotent: rows are looked up by their natural key before being inserted,
// so reruns never duplicate data.
type Seeder struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func New(pool *pgxpool.Pool, logger *zap.Logger) *Seeder {
	return &Seeder{pool: pool, logger: logger}
}

func (s *Seeder) Run(ctx context.Context, companyName string) error {
	companyID, err := s.seedCompany(ctx, companyName)
	if err != nil {
		return err
	}

	userIDs, err := s.seedAppUsers(ctx, companyID)
	if err != nil {
		return err
	}

	departmentIDs, err := s.seedDepartments(ctx, companyID)
	if err != nil {
		return err
	}

	categoryIDs, err := s.seedCategories(ctx, companyID, userIDs)
	if err != nil {
		return err
	}

	teamIDs, err := s.seedTeams(ctx, companyID, userIDs)
	if err != nil {
		return err
	}

	if err := s.seedEquipment(ctx, companyID, categoryIDs, departmentIDs, teamIDs, userIDs); err != nil {
		return err
	}

	s.logger.Info("seeding complete", zap.String("company", companyName))
	return nil
}

// findOrInsert runs the lookup query and falls back to the insert when no row
// exists. Both queries must return a single uuid column.
func (s *Seeder) findOrInsert(ctx context.Context, lookup string, lookupArgs []any, insert string, insertArgs []any) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx, lookup, lookupArgs...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, err
	}
	if err := s.pool.QueryRow(ctx, insert, insertArgs...).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
