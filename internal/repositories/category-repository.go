package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	apperrors "gearguard/pkg/errors"
)

type CategoryRepositoryInterface interface {
	List(ctx context.Context, companyID uuid.UUID) ([]dto.CategoryDTO, error)
	ListOptions(ctx context.Context, companyID uuid.UUID) ([]dto.CategoryOptionDTO, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.CategoryDTO, error)
	Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateCategoryDTO) (dto.CategoryDTO, error)
	Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateCategoryDTO) (dto.CategoryDTO, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type CategoryRepository struct {
	storage *pgxpool.Pool
}

func NewCategoryRepository(storage *pgxpool.Pool) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage}
}

// categorySelect resolves the responsible user's name, "-" when unassigned.
const categorySelect = `
	SELECT ec.id, ec.name, ec.responsible_id::text,
	       COALESCE(u.full_name, '-') AS responsible,
	       c.name AS company, ec.created_at
	FROM app.equipment_category ec
	JOIN app.company c ON c.id = ec.company_id
	LEFT JOIN app.app_user u ON u.id = ec.responsible_id`

func scanCategory(row pgx.Row) (dto.CategoryDTO, error) {
	var cat dto.CategoryDTO
	err := row.Scan(&cat.ID, &cat.Name, &cat.ResponsibleID,
		&cat.Responsible, &cat.Company, &cat.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.CategoryDTO{}, apperrors.ErrNotFound
		}
		return dto.CategoryDTO{}, err
	}
	return cat, nil
}

func (r *CategoryRepository) List(ctx context.Context, companyID uuid.UUID) ([]dto.CategoryDTO, error) {
	query := categorySelect + ` WHERE ec.company_id = $1 ORDER BY ec.name`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]dto.CategoryDTO, 0)
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) ListOptions(ctx context.Context, companyID uuid.UUID) ([]dto.CategoryOptionDTO, error) {
	query := `SELECT id, name FROM app.equipment_category WHERE company_id = $1 ORDER BY name`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]dto.CategoryOptionDTO, 0)
	for rows.Next() {
		var opt dto.CategoryOptionDTO
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.CategoryDTO, error) {
	query := categorySelect + ` WHERE ec.company_id = $1 AND ec.id = $2`
	return scanCategory(r.storage.QueryRow(ctx, query, companyID, id))
}

func (r *CategoryRepository) Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateCategoryDTO) (dto.CategoryDTO, error) {
	query := `
		INSERT INTO app.equipment_category (company_id, name, responsible_id)
		VALUES ($1, $2, $3::uuid)
		RETURNING id`

	var id uuid.UUID
	err := r.storage.QueryRow(ctx, query, companyID, payload.Name, payload.ResponsibleID).Scan(&id)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return dto.CategoryDTO{}, apperrors.NewConflictError("Category with this name already exists", "name")
		}
		return dto.CategoryDTO{}, err
	}
	return r.FindByID(ctx, companyID, id)
}

func (r *CategoryRepository) Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateCategoryDTO) (dto.CategoryDTO, error) {
	query := `
		UPDATE app.equipment_category
		SET name = $3, responsible_id = $4::uuid, updated_at = NOW()
		WHERE company_id = $1 AND id = $2
		RETURNING id`

	var updated uuid.UUID
	err := r.storage.QueryRow(ctx, query, companyID, id, payload.Name, payload.ResponsibleID).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.CategoryDTO{}, apperrors.ErrNotFound
		}
		if apperrors.IsUniqueViolation(err) {
			return dto.CategoryDTO{}, apperrors.NewConflictError("Category with this name already exists", "name")
		}
		return dto.CategoryDTO{}, err
	}
	return r.FindByID(ctx, companyID, updated)
}

func (r *CategoryRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	tag, err := r.storage.Exec(ctx,
		`DELETE FROM app.equipment_category WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
