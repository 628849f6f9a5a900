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

type EquipmentRepositoryInterface interface {
	List(ctx context.Context, companyID uuid.UUID) ([]dto.EquipmentDetailDTO, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.EquipmentDetailDTO, error)
	Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateEquipmentDTO) (dto.EquipmentDetailDTO, error)
	Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateEquipmentDTO, status *string) (dto.EquipmentDetailDTO, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

const equipmentSelect = `
	SELECT e.id, e.name, e.serial_number,
	       e.category_id::text, e.department_id::text,
	       e.maintenance_team_id::text, e.default_technician_id::text,
	       e.location, e.purchase_date, e.warranty_end_date,
	       e.status::text, e.created_at,
	       ec.name AS category_name, d.name AS department_name,
	       mt.name AS maintenance_team_name, u.full_name AS default_technician_name
	FROM app.equipment e
	LEFT JOIN app.equipment_category ec ON ec.id = e.category_id
	LEFT JOIN app.department d ON d.id = e.department_id
	LEFT JOIN app.maintenance_team mt ON mt.id = e.maintenance_team_id
	LEFT JOIN app.app_user u ON u.id = e.default_technician_id`

func scanEquipment(row pgx.Row) (dto.EquipmentDetailDTO, error) {
	var e dto.EquipmentDetailDTO
	err := row.Scan(&e.ID, &e.Name, &e.SerialNumber,
		&e.CategoryID, &e.DepartmentID, &e.MaintenanceTeamID, &e.DefaultTechnicianID,
		&e.Location, &e.PurchaseDate, &e.WarrantyEndDate, &e.Status, &e.CreatedAt,
		&e.CategoryName, &e.DepartmentName, &e.MaintenanceTeamName, &e.DefaultTechnicianName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.EquipmentDetailDTO{}, apperrors.ErrNotFound
		}
		return dto.EquipmentDetailDTO{}, err
	}
	return e, nil
}

func (r *EquipmentRepository) List(ctx context.Context, companyID uuid.UUID) ([]dto.EquipmentDetailDTO, error) {
	query := equipmentSelect + ` WHERE e.company_id = $1 AND e.status = 'ACTIVE' ORDER BY e.name`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.EquipmentDetailDTO, 0)
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.EquipmentDetailDTO, error) {
	query := equipmentSelect + ` WHERE e.company_id = $1 AND e.id = $2`
	return scanEquipment(r.storage.QueryRow(ctx, query, companyID, id))
}

func (r *EquipmentRepository) Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateEquipmentDTO) (dto.EquipmentDetailDTO, error) {
	query := `
		INSERT INTO app.equipment
			(company_id, name, serial_number, category_id, department_id,
			 maintenance_team_id, default_technician_id, location, purchase_date, warranty_end_date)
		VALUES ($1, $2, $3, $4::uuid, $5::uuid, $6::uuid, $7::uuid, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := r.storage.QueryRow(ctx, query, companyID, payload.Name, payload.SerialNumber,
		payload.CategoryID, payload.DepartmentID, payload.MaintenanceTeamID,
		payload.DefaultTechnicianID, payload.Location, payload.PurchaseDate,
		payload.WarrantyEndDate).Scan(&id)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return dto.EquipmentDetailDTO{}, apperrors.NewConflictError("Serial number already in use", "serial_number")
		}
		return dto.EquipmentDetailDTO{}, err
	}
	return r.FindByID(ctx, companyID, id)
}

// Update coalesces nil fields against the stored row. The status transition
// also maintains scrapped_at so SCRAPPED equipment keeps a timestamp.
func (r *EquipmentRepository) Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateEquipmentDTO, status *string) (dto.EquipmentDetailDTO, error) {
	query := `
		UPDATE app.equipment
		SET name = COALESCE($3, name),
		    serial_number = COALESCE($4, serial_number),
		    category_id = COALESCE($5::uuid, category_id),
		    department_id = COALESCE($6::uuid, department_id),
		    maintenance_team_id = COALESCE($7::uuid, maintenance_team_id),
		    default_technician_id = COALESCE($8::uuid, default_technician_id),
		    location = COALESCE($9, location),
		    purchase_date = COALESCE($10, purchase_date),
		    warranty_end_date = COALESCE($11, warranty_end_date),
		    status = COALESCE($12::app.equipment_status, status),
		    scrapped_at = CASE
		        WHEN COALESCE($12::app.equipment_status, status) = 'SCRAPPED' AND scrapped_at IS NULL THEN NOW()
		        WHEN COALESCE($12::app.equipment_status, status) = 'ACTIVE' THEN NULL
		        ELSE scrapped_at
		    END,
		    updated_at = NOW()
		WHERE company_id = $1 AND id = $2
		RETURNING id`

	var updated uuid.UUID
	err := r.storage.QueryRow(ctx, query, companyID, id,
		payload.Name, payload.SerialNumber, payload.CategoryID, payload.DepartmentID,
		payload.MaintenanceTeamID, payload.DefaultTechnicianID, payload.Location,
		payload.PurchaseDate, payload.WarrantyEndDate, status).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.EquipmentDetailDTO{}, apperrors.ErrNotFound
		}
		if apperrors.IsUniqueViolation(err) {
			return dto.EquipmentDetailDTO{}, apperrors.NewConflictError("Serial number already in use", "serial_number")
		}
		return dto.EquipmentDetailDTO{}, err
	}
	return r.FindByID(ctx, companyID, updated)
}

func (r *EquipmentRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	tag, err := r.storage.Exec(ctx,
		`DELETE FROM app.equipment WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
