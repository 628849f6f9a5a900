package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type UserRepositoryInterface interface {
	FindPortalUserByEmail(ctx context.Context, email string) (entities.PortalUser, error)
	FindPortalUserByID(ctx context.Context, id uuid.UUID) (entities.PortalUser, error)
	CreatePortalUser(ctx context.Context, companyID uuid.UUID, fullName, email, passwordHash string) (entities.PortalUser, error)
	ListActiveAppUsers(ctx context.Context, companyID uuid.UUID) ([]entities.AppUser, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

const portalUserColumns = `id, company_id, full_name, email, password_hash, is_active, created_at, updated_at`

func scanPortalUser(row pgx.Row) (entities.PortalUser, error) {
	var u entities.PortalUser
	err := row.Scan(&u.ID, &u.CompanyID, &u.FullName, &u.Email,
		&u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.PortalUser{}, apperrors.ErrNotFound
		}
		return entities.PortalUser{}, err
	}
	return u, nil
}

func (r *UserRepository) FindPortalUserByEmail(ctx context.Context, email string) (entities.PortalUser, error) {
	query := `SELECT ` + portalUserColumns + ` FROM app.portal_user WHERE email = $1`
	return scanPortalUser(r.storage.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindPortalUserByID(ctx context.Context, id uuid.UUID) (entities.PortalUser, error) {
	query := `SELECT ` + portalUserColumns + ` FROM app.portal_user WHERE id = $1`
	return scanPortalUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) CreatePortalUser(ctx context.Context, companyID uuid.UUID, fullName, email, passwordHash string) (entities.PortalUser, error) {
	query := `
		INSERT INTO app.portal_user (company_id, full_name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + portalUserColumns

	u, err := scanPortalUser(r.storage.QueryRow(ctx, query, companyID, fullName, email, passwordHash))
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return entities.PortalUser{}, apperrors.NewConflictError("Email already registered", "email")
		}
		return entities.PortalUser{}, err
	}
	return u, nil
}

func (r *UserRepository) ListActiveAppUsers(ctx context.Context, companyID uuid.UUID) ([]entities.AppUser, error) {
	query := `
		SELECT id, company_id, full_name, email, avatar_url, is_active, created_at, updated_at
		FROM app.app_user
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY full_name`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entities.AppUser, 0)
	for rows.Next() {
		var u entities.AppUser
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.FullName, &u.Email,
			&u.AvatarURL, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
