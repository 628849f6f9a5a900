package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/infrastructure/db"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

// KanbanRow is a board card together with the column it belongs to; the
// service groups rows into columns.
type KanbanRow struct {
	Stage string
	Card  dto.KanbanCardDTO
}

type RequestRepositoryInterface interface {
	List(ctx context.Context, companyID uuid.UUID, filter types.Filter) ([]dto.RequestListItemDTO, error)
	Kanban(ctx context.Context, companyID uuid.UUID) ([]KanbanRow, error)
	Calendar(ctx context.Context, companyID uuid.UUID) ([]dto.CalendarRequestDTO, error)
	FindDetail(ctx context.Context, companyID, id uuid.UUID) (dto.RequestDetailDTO, error)
	Create(ctx context.Context, companyID, createdBy uuid.UUID, payload dto.CreateRequestDTO) (uuid.UUID, error)
	Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateRequestDTO) error
	UpdateStage(ctx context.Context, companyID, id uuid.UUID, stage string) (dto.StagePatchedDTO, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type RequestRepository struct {
	storage   *pgxpool.Pool
	txManager TransactionManagerInterface
}

func NewRequestRepository(storage *pgxpool.Pool, txManager TransactionManagerInterface) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, txManager: txManager}
}

// requestFilterColumns whitelists the query-string filters of GET /api/requests.
// Enum columns are compared through ::text so the parameters stay plain text.
var requestFilterColumns = map[string]string{
	"stage":        "mr.stage::text",
	"priority":     "mr.priority::text",
	"type":         "mr.type::text",
	"team_id":      "mr.team_id::text",
	"equipment_id": "mr.equipment_id::text",
}

const priorityRank = `CASE mr.priority
	WHEN 'URGENT' THEN 1
	WHEN 'HIGH' THEN 2
	WHEN 'MEDIUM' THEN 3
	ELSE 4
END`

func (r *RequestRepository) List(ctx context.Context, companyID uuid.UUID, filter types.Filter) ([]dto.RequestListItemDTO, error) {
	builder := sq.Select(
		"mr.id", "mr.subject", "mr.description",
		"mr.type::text", "mr.priority::text", "mr.stage::text",
		"mr.request_date", "mr.scheduled_at", "mr.due_at",
		"mr.is_overdue", "mr.duration_minutes", "mr.repaired_at",
		"e.name AS equipment_name", "e.serial_number AS equipment_serial",
		"mt.name AS team_name", "pu.full_name AS created_by", "au.full_name AS assigned_to",
	).
		From("app.maintenance_request mr").
		LeftJoin("app.equipment e ON e.id = mr.equipment_id").
		LeftJoin("app.maintenance_team mt ON mt.id = mr.team_id").
		LeftJoin("app.portal_user pu ON pu.id = mr.created_by_id").
		LeftJoin("app.app_user au ON au.id = mr.assigned_to_id").
		Where(sq.Eq{"mr.company_id": companyID}).
		OrderBy("mr.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	builder = db.ApplyListParams(builder, filter, requestFilterColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.RequestListItemDTO, 0)
	for rows.Next() {
		var item dto.RequestListItemDTO
		if err := rows.Scan(&item.ID, &item.Subject, &item.Description,
			&item.Type, &item.Priority, &item.Stage,
			&item.RequestDate, &item.ScheduledAt, &item.DueAt,
			&item.IsOverdue, &item.DurationMinutes, &item.RepairedAt,
			&item.EquipmentName, &item.EquipmentSerial, &item.TeamName,
			&item.CreatedBy, &item.AssignedTo); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *RequestRepository) Kanban(ctx context.Context, companyID uuid.UUID) ([]KanbanRow, error) {
	// Cards need an equipment row; requests without one never reach the board.
	query := `
		SELECT mr.stage::text, mr.id, mr.subject, mr.priority::text, mr.is_overdue,
		       e.name AS equipment_name, au.full_name AS assigned_to, mr.due_at
		FROM app.maintenance_request mr
		JOIN app.equipment e ON e.id = mr.equipment_id
		LEFT JOIN app.app_user au ON au.id = mr.assigned_to_id
		WHERE mr.company_id = $1
		ORDER BY mr.stage, mr.created_at DESC`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := make([]KanbanRow, 0)
	for rows.Next() {
		var row KanbanRow
		if err := rows.Scan(&row.Stage, &row.Card.ID, &row.Card.Subject,
			&row.Card.Priority, &row.Card.IsOverdue,
			&row.Card.EquipmentName, &row.Card.AssignedTo, &row.Card.DueAt); err != nil {
			return nil, err
		}
		board = append(board, row)
	}
	return board, rows.Err()
}

func (r *RequestRepository) Calendar(ctx context.Context, companyID uuid.UUID) ([]dto.CalendarRequestDTO, error) {
	query := `
		SELECT mr.id, mr.subject, mr.scheduled_at, mr.duration_minutes,
		       mr.equipment_id::text, mr.assigned_to_id::text,
		       e.name AS equipment_name, au.full_name AS assigned_to_name
		FROM app.maintenance_request mr
		LEFT JOIN app.equipment e ON e.id = mr.equipment_id
		LEFT JOIN app.app_user au ON au.id = mr.assigned_to_id
		WHERE mr.company_id = $1
		  AND mr.type = 'PREVENTIVE'
		  AND mr.scheduled_at IS NOT NULL
		ORDER BY mr.scheduled_at`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.CalendarRequestDTO, 0)
	for rows.Next() {
		var item dto.CalendarRequestDTO
		if err := rows.Scan(&item.ID, &item.Subject, &item.ScheduledAt,
			&item.DurationMinutes, &item.EquipmentID, &item.AssignedToID,
			&item.EquipmentName, &item.AssignedToName); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *RequestRepository) FindDetail(ctx context.Context, companyID, id uuid.UUID) (dto.RequestDetailDTO, error) {
	query := `
		SELECT mr.id, mr.subject, mr.description, mr.stage::text, mr.priority::text,
		       mr.type::text, mr.is_overdue, mr.due_at, mr.request_date,
		       mr.scheduled_at, mr.duration_minutes, mr.created_at,
		       mr.equipment_id::text, e.name AS equipment_name, e.serial_number AS equipment_serial,
		       ec.name AS category,
		       mr.team_id::text, mt.name AS team_name,
		       mr.assigned_to_id::text, au.full_name AS technician_name,
		       pu.full_name AS created_by, c.name AS company_name
		FROM app.maintenance_request mr
		LEFT JOIN app.equipment e ON e.id = mr.equipment_id
		LEFT JOIN app.equipment_category ec ON ec.id = mr.equipment_category_id
		LEFT JOIN app.maintenance_team mt ON mt.id = mr.team_id
		LEFT JOIN app.app_user au ON au.id = mr.assigned_to_id
		LEFT JOIN app.portal_user pu ON pu.id = mr.created_by_id
		LEFT JOIN app.company c ON c.id = mr.company_id
		WHERE mr.company_id = $1 AND mr.id = $2`

	var detail dto.RequestDetailDTO
	err := r.storage.QueryRow(ctx, query, companyID, id).Scan(
		&detail.ID, &detail.Subject, &detail.Description, &detail.Stage, &detail.Priority,
		&detail.MaintenanceType, &detail.IsOverdue, &detail.DueAt, &detail.RequestDate,
		&detail.ScheduledDate, &detail.DurationMinutes, &detail.CreatedAt,
		&detail.EquipmentID, &detail.EquipmentName, &detail.EquipmentSerial,
		&detail.Category,
		&detail.TeamID, &detail.TeamName,
		&detail.TechnicianID, &detail.TechnicianName,
		&detail.CreatedBy, &detail.CompanyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.RequestDetailDTO{}, apperrors.ErrNotFound
		}
		return dto.RequestDetailDTO{}, err
	}
	return detail, nil
}

// Create inserts a NEW request. The equipment category, team and technician
// fall back to the equipment's defaults when the caller leaves them blank.
func (r *RequestRepository) Create(ctx context.Context, companyID, createdBy uuid.UUID, payload dto.CreateRequestDTO) (uuid.UUID, error) {
	query := `
		INSERT INTO app.maintenance_request
			(company_id, subject, description, equipment_id, equipment_category_id,
			 team_id, created_by_id, assigned_to_id, type, priority, stage,
			 scheduled_at, duration_minutes, due_at)
		VALUES ($1, $2, $3, $4::uuid,
			(SELECT e.category_id FROM app.equipment e WHERE e.id = $4::uuid),
			COALESCE($5::uuid, (SELECT e.maintenance_team_id FROM app.equipment e WHERE e.id = $4::uuid)),
			$6,
			COALESCE($7::uuid, (SELECT e.default_technician_id FROM app.equipment e WHERE e.id = $4::uuid)),
			COALESCE($8::app.maintenance_type, 'CORRECTIVE'),
			COALESCE($9::app.request_priority, 'MEDIUM'),
			'NEW',
			$10, COALESCE($11, 0), $12)
		RETURNING id`

	var id uuid.UUID
	err := r.storage.QueryRow(ctx, query, companyID, payload.Subject, payload.Description,
		payload.EquipmentID, payload.TeamID, createdBy, payload.TechnicianID,
		payload.MaintenanceType, payload.Priority,
		payload.ScheduledDate, payload.DurationMinutes, payload.DueAt).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *RequestRepository) Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateRequestDTO) error {
	return r.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE app.maintenance_request
			SET subject = COALESCE($3, subject),
			    description = COALESCE($4, description),
			    equipment_id = COALESCE($5::uuid, equipment_id),
			    team_id = COALESCE($6::uuid, team_id),
			    assigned_to_id = COALESCE($7::uuid, assigned_to_id),
			    type = COALESCE($8::app.maintenance_type, type),
			    priority = COALESCE($9::app.request_priority, priority),
			    scheduled_at = COALESCE($10, scheduled_at),
			    duration_minutes = COALESCE($11, duration_minutes),
			    due_at = COALESCE($12, due_at),
			    repaired_at = CASE
			        WHEN $13::app.request_stage = 'REPAIRED' AND stage <> 'REPAIRED' THEN NOW()
			        ELSE repaired_at
			    END,
			    scrapped_at = CASE
			        WHEN $13::app.request_stage = 'SCRAP' AND stage <> 'SCRAP' THEN NOW()
			        ELSE scrapped_at
			    END,
			    stage = COALESCE($13::app.request_stage, stage),
			    updated_at = NOW()
			WHERE company_id = $1 AND id = $2
			RETURNING stage::text, equipment_id`

		var stage string
		var equipmentID *uuid.UUID
		err := tx.QueryRow(ctx, query, companyID, id,
			payload.Subject, payload.Description, payload.EquipmentID,
			payload.TeamID, payload.TechnicianID, payload.MaintenanceType,
			payload.Priority, payload.ScheduledDate, payload.DurationMinutes,
			payload.DueAt, payload.Stage).Scan(&stage, &equipmentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if stage == "SCRAP" {
			return scrapEquipment(ctx, tx, equipmentID)
		}
		return nil
	})
}

// UpdateStage moves a request between board columns. Moving into SCRAP also
// scraps the attached equipment in the same transaction.
func (r *RequestRepository) UpdateStage(ctx context.Context, companyID, id uuid.UUID, stage string) (dto.StagePatchedDTO, error) {
	var patched dto.StagePatchedDTO
	err := r.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE app.maintenance_request
			SET repaired_at = CASE
			        WHEN $3::app.request_stage = 'REPAIRED' AND stage <> 'REPAIRED' THEN NOW()
			        ELSE repaired_at
			    END,
			    scrapped_at = CASE
			        WHEN $3::app.request_stage = 'SCRAP' AND stage <> 'SCRAP' THEN NOW()
			        ELSE scrapped_at
			    END,
			    stage = $3::app.request_stage,
			    updated_at = NOW()
			WHERE company_id = $1 AND id = $2
			RETURNING id, stage::text, equipment_id`

		var equipmentID *uuid.UUID
		err := tx.QueryRow(ctx, query, companyID, id, stage).
			Scan(&patched.ID, &patched.Stage, &equipmentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if patched.Stage == "SCRAP" {
			return scrapEquipment(ctx, tx, equipmentID)
		}
		return nil
	})
	return patched, err
}

func scrapEquipment(ctx context.Context, tx pgx.Tx, equipmentID *uuid.UUID) error {
	if equipmentID == nil {
		return nil
	}
	_, err := tx.Exec(ctx, `
		UPDATE app.equipment
		SET status = 'SCRAPPED', scrapped_at = COALESCE(scrapped_at, NOW()), updated_at = NOW()
		WHERE id = $1 AND status <> 'SCRAPPED'`, *equipmentID)
	return err
}

func (r *RequestRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	tag, err := r.storage.Exec(ctx,
		`DELETE FROM app.maintenance_request WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
