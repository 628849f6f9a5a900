package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type CompanyRepositoryInterface interface {
	FindByName(ctx context.Context, name string) (entities.Company, error)
	First(ctx context.Context) (entities.Company, error)
}

type CompanyRepository struct {
	storage *pgxpool.Pool
}

func NewCompanyRepository(storage *pgxpool.Pool) CompanyRepositoryInterface {
	return &CompanyRepository{storage: storage}
}

const companyColumns = `id, name, created_at, updated_at`

func (r *CompanyRepository) FindByName(ctx context.Context, name string) (entities.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM app.company WHERE name = $1`

	var c entities.Company
	err := r.storage.QueryRow(ctx, query, name).
		Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Company{}, apperrors.ErrNotFound
		}
		return entities.Company{}, err
	}
	return c, nil
}

func (r *CompanyRepository) First(ctx context.Context) (entities.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM app.company ORDER BY created_at LIMIT 1`

	var c entities.Company
	err := r.storage.QueryRow(ctx, query).
		Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Company{}, apperrors.ErrNotFound
		}
		return entities.Company{}, err
	}
	return c, nil
}
