package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
)

type DashboardRepositoryInterface interface {
	Stats(ctx context.Context, companyID uuid.UUID) (dto.DashboardStatsDTO, error)
	BoardRequests(ctx context.Context, companyID uuid.UUID) ([]dto.DashboardRequestDTO, error)
	Technicians(ctx context.Context, companyID uuid.UUID) ([]dto.TechnicianDTO, error)
	Equipment(ctx context.Context, companyID uuid.UUID) ([]dto.DashboardEquipmentDTO, error)
	CalendarEvents(ctx context.Context, companyID uuid.UUID) ([]dto.CalendarEventDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

// Stats runs one batched query of independent scalar subqueries. The
// criticalEquipment figure mirrors openRequests on purpose; the board header
// treats every open request as equipment at risk.
func (r *DashboardRepository) Stats(ctx context.Context, companyID uuid.UUID) (dto.DashboardStatsDTO, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM app.equipment WHERE company_id = $1 AND status = 'ACTIVE') AS total_equipment,
			(SELECT COUNT(*) FROM app.maintenance_request WHERE company_id = $1 AND stage IN ('NEW', 'IN_PROGRESS')) AS open_requests,
			(SELECT COUNT(*) FROM app.maintenance_request WHERE company_id = $1 AND is_overdue = TRUE AND stage IN ('NEW', 'IN_PROGRESS')) AS overdue_count,
			(SELECT COUNT(*) FROM app.maintenance_request WHERE company_id = $1 AND stage = 'NEW') AS new_count,
			(SELECT COUNT(*) FROM app.maintenance_request WHERE company_id = $1 AND stage = 'IN_PROGRESS') AS in_progress_count,
			(SELECT COUNT(*) FROM app.maintenance_request WHERE company_id = $1 AND stage = 'REPAIRED') AS repaired_count,
			(SELECT COUNT(*) FROM app.maintenance_request WHERE company_id = $1 AND stage = 'SCRAP') AS scrap_count,
			(SELECT COUNT(*) FROM app.maintenance_team WHERE company_id = $1) AS total_teams,
			(SELECT COUNT(*) FROM app.app_user WHERE company_id = $1 AND is_active = TRUE) AS total_technicians`

	var stats dto.DashboardStatsDTO
	err := r.storage.QueryRow(ctx, query, companyID).Scan(
		&stats.TotalEquipment, &stats.OpenRequests, &stats.OverdueCount,
		&stats.StageCounts.New, &stats.StageCounts.InProgress,
		&stats.StageCounts.Repaired, &stats.StageCounts.Scrap,
		&stats.TotalTeams, &stats.TotalTechnicians)
	if err != nil {
		return dto.DashboardStatsDTO{}, err
	}
	stats.CriticalEquipment = stats.OpenRequests
	return stats, nil
}

func (r *DashboardRepository) BoardRequests(ctx context.Context, companyID uuid.UUID) ([]dto.DashboardRequestDTO, error) {
	query := `
		SELECT mr.id, mr.subject, mr.description,
		       COALESCE(e.name, 'Unknown Equipment') AS equipment,
		       e.serial_number AS equipment_code,
		       COALESCE(au.full_name, 'Unassigned') AS technician,
		       COALESCE(UPPER(LEFT(au.full_name, 1)), 'U') AS technician_avatar,
		       COALESCE(ec.name, 'General') AS category,
		       LOWER(mr.stage::text) AS stage,
		       LOWER(mr.priority::text) AS priority,
		       COALESCE(c.name, 'Unknown') AS company,
		       mr.is_overdue, mr.due_at, mr.created_at
		FROM app.maintenance_request mr
		LEFT JOIN app.equipment e ON e.id = mr.equipment_id
		LEFT JOIN app.equipment_category ec ON ec.id = mr.equipment_category_id
		LEFT JOIN app.app_user au ON au.id = mr.assigned_to_id
		LEFT JOIN app.company c ON c.id = mr.company_id
		WHERE mr.company_id = $1
		ORDER BY ` + priorityRank + `, mr.created_at DESC`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]dto.DashboardRequestDTO, 0)
	for rows.Next() {
		var req dto.DashboardRequestDTO
		if err := rows.Scan(&req.ID, &req.Subject, &req.Description,
			&req.Equipment, &req.EquipmentCode, &req.Technician, &req.TechnicianAvatar,
			&req.Category, &req.Stage, &req.Priority, &req.Company,
			&req.IsOverdue, &req.DueAt, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *DashboardRepository) Technicians(ctx context.Context, companyID uuid.UUID) ([]dto.TechnicianDTO, error) {
	query := `
		SELECT au.id, au.full_name, au.email,
		       UPPER(LEFT(au.full_name, 1)) AS avatar,
		       au.is_active,
		       (SELECT COUNT(*) FROM app.maintenance_request mr
		        WHERE mr.assigned_to_id = au.id
		          AND mr.stage IN ('NEW', 'IN_PROGRESS')) AS active_requests
		FROM app.app_user au
		WHERE au.company_id = $1 AND au.is_active = TRUE
		ORDER BY au.full_name`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	technicians := make([]dto.TechnicianDTO, 0)
	for rows.Next() {
		var t dto.TechnicianDTO
		if err := rows.Scan(&t.ID, &t.FullName, &t.Email, &t.Avatar,
			&t.IsActive, &t.ActiveRequests); err != nil {
			return nil, err
		}
		technicians = append(technicians, t)
	}
	return technicians, rows.Err()
}

func (r *DashboardRepository) Equipment(ctx context.Context, companyID uuid.UUID) ([]dto.DashboardEquipmentDTO, error) {
	query := `
		SELECT e.id, e.name, e.serial_number, e.status::text, e.location,
		       ec.name AS category, d.name AS department, mt.name AS team_name
		FROM app.equipment e
		LEFT JOIN app.equipment_category ec ON ec.id = e.category_id
		LEFT JOIN app.department d ON d.id = e.department_id
		LEFT JOIN app.maintenance_team mt ON mt.id = e.maintenance_team_id
		WHERE e.company_id = $1
		ORDER BY e.name`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.DashboardEquipmentDTO, 0)
	for rows.Next() {
		var item dto.DashboardEquipmentDTO
		if err := rows.Scan(&item.ID, &item.Name, &item.SerialNumber, &item.Status,
			&item.Location, &item.Category, &item.Department, &item.TeamName); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CalendarEvents returns every scheduled request as a calendar block whose end
// is derived from the duration, defaulting to an hour when none was recorded.
func (r *DashboardRepository) CalendarEvents(ctx context.Context, companyID uuid.UUID) ([]dto.CalendarEventDTO, error) {
	query := `
		SELECT mr.id, mr.subject, mr.scheduled_at,
		       mr.scheduled_at + make_interval(mins => CASE
		           WHEN mr.duration_minutes > 0 THEN mr.duration_minutes
		           ELSE 60
		       END) AS event_end,
		       mr.priority::text, mr.stage::text,
		       COALESCE(e.name, '') AS equipment,
		       COALESCE(au.full_name, '') AS technician
		FROM app.maintenance_request mr
		LEFT JOIN app.equipment e ON e.id = mr.equipment_id
		LEFT JOIN app.app_user au ON au.id = mr.assigned_to_id
		WHERE mr.company_id = $1 AND mr.scheduled_at IS NOT NULL
		ORDER BY mr.scheduled_at`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]dto.CalendarEventDTO, 0)
	for rows.Next() {
		var event dto.CalendarEventDTO
		if err := rows.Scan(&event.ID, &event.Title, &event.Start, &event.End,
			&event.Priority, &event.Stage, &event.Equipment, &event.Technician); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
