package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type TeamRepositoryInterface interface {
	List(ctx context.Context, companyID uuid.UUID) ([]dto.TeamDTO, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.TeamDTO, error)
	Summaries(ctx context.Context, companyID uuid.UUID) ([]dto.TeamSummaryDTO, error)
	FindDetail(ctx context.Context, companyID, id uuid.UUID) (dto.TeamDetailDTO, error)
	Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateTeamDTO) (uuid.UUID, error)
	Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateTeamDTO) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type TeamRepository struct {
	storage   *pgxpool.Pool
	txManager TransactionManagerInterface
}

func NewTeamRepository(storage *pgxpool.Pool, txManager TransactionManagerInterface) TeamRepositoryInterface {
	return &TeamRepository{storage: storage, txManager: txManager}
}

func (r *TeamRepository) List(ctx context.Context, companyID uuid.UUID) ([]dto.TeamDTO, error) {
	query := `
		SELECT mt.id, mt.name, c.name AS company
		FROM app.maintenance_team mt
		JOIN app.company c ON c.id = mt.company_id
		WHERE mt.company_id = $1
		ORDER BY mt.name`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]dto.TeamDTO, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var t dto.TeamDTO
		if err := rows.Scan(&t.ID, &t.Name, &t.Company); err != nil {
			return nil, err
		}
		t.Members = make([]entities.TeamMember, 0)
		index[t.ID] = len(teams)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	memberQuery := `
		SELECT tm.team_id, u.id, u.full_name
		FROM app.maintenance_team_member tm
		JOIN app.maintenance_team mt ON mt.id = tm.team_id
		JOIN app.app_user u ON u.id = tm.user_id
		WHERE mt.company_id = $1
		ORDER BY u.full_name`

	memberRows, err := r.storage.Query(ctx, memberQuery, companyID)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var teamID uuid.UUID
		var m entities.TeamMember
		if err := memberRows.Scan(&teamID, &m.ID, &m.Name); err != nil {
			return nil, err
		}
		if i, ok := index[teamID]; ok {
			teams[i].Members = append(teams[i].Members, m)
		}
	}
	return teams, memberRows.Err()
}

func (r *TeamRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.TeamDTO, error) {
	query := `
		SELECT mt.id, mt.name, c.name AS company
		FROM app.maintenance_team mt
		JOIN app.company c ON c.id = mt.company_id
		WHERE mt.company_id = $1 AND mt.id = $2`

	var t dto.TeamDTO
	err := r.storage.QueryRow(ctx, query, companyID, id).Scan(&t.ID, &t.Name, &t.Company)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.TeamDTO{}, apperrors.ErrNotFound
		}
		return dto.TeamDTO{}, err
	}

	t.Members, err = teamMembers(ctx, r.storage, id)
	if err != nil {
		return dto.TeamDTO{}, err
	}
	return t, nil
}

// teamMembers lists a team's members ordered by name. Takes a Querier so it
// works against the pool and inside an open transaction alike.
func teamMembers(ctx context.Context, q Querier, teamID uuid.UUID) ([]entities.TeamMember, error) {
	rows, err := q.Query(ctx, `
		SELECT u.id, u.full_name
		FROM app.maintenance_team_member tm
		JOIN app.app_user u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY u.full_name`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func insertTeamMembers(ctx context.Context, q Querier, teamID uuid.UUID, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	_, err := q.Exec(ctx, `
		INSERT INTO app.maintenance_team_member (team_id, user_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`, teamID, userIDs)
	return err
}

func (r *TeamRepository) Summaries(ctx context.Context, companyID uuid.UUID) ([]dto.TeamSummaryDTO, error) {
	query := `
		SELECT mt.id, mt.name, c.name AS company_name,
		       (SELECT COUNT(*) FROM app.maintenance_team_member tm WHERE tm.team_id = mt.id) AS member_count,
		       mt.created_at
		FROM app.maintenance_team mt
		JOIN app.company c ON c.id = mt.company_id
		WHERE mt.company_id = $1
		ORDER BY mt.name`

	rows, err := r.storage.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]dto.TeamSummaryDTO, 0)
	for rows.Next() {
		var s dto.TeamSummaryDTO
		if err := rows.Scan(&s.ID, &s.Name, &s.CompanyName, &s.MemberCount, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *TeamRepository) FindDetail(ctx context.Context, companyID, id uuid.UUID) (dto.TeamDetailDTO, error) {
	query := `
		SELECT mt.id, mt.name, c.name AS company_name, mt.created_at
		FROM app.maintenance_team mt
		JOIN app.company c ON c.id = mt.company_id
		WHERE mt.company_id = $1 AND mt.id = $2`

	var detail dto.TeamDetailDTO
	err := r.storage.QueryRow(ctx, query, companyID, id).
		Scan(&detail.ID, &detail.Name, &detail.CompanyName, &detail.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.TeamDetailDTO{}, apperrors.ErrNotFound
		}
		return dto.TeamDetailDTO{}, err
	}

	memberQuery := `
		SELECT u.id, u.full_name, u.email
		FROM app.maintenance_team_member tm
		JOIN app.app_user u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY u.full_name`

	rows, err := r.storage.Query(ctx, memberQuery, id)
	if err != nil {
		return dto.TeamDetailDTO{}, err
	}
	defer rows.Close()

	detail.Members = make([]dto.TeamMemberDetailDTO, 0)
	for rows.Next() {
		var m dto.TeamMemberDetailDTO
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email); err != nil {
			return dto.TeamDetailDTO{}, err
		}
		detail.Members = append(detail.Members, m)
	}
	return detail, rows.Err()
}

func (r *TeamRepository) Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateTeamDTO) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO app.maintenance_team (company_id, name) VALUES ($1, $2) RETURNING id`,
			companyID, payload.Name).Scan(&id)
		if err != nil {
			if apperrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("Team with this name already exists", "name")
			}
			return err
		}
		return insertTeamMembers(ctx, tx, id, payload.MemberIDs)
	})
	return id, err
}

// Update renames the team and reconciles membership against the desired set
// inside one transaction. Members already in place are left untouched, so
// concurrent readers never see the team emptied out mid-update.
func (r *TeamRepository) Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateTeamDTO) error {
	return r.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE app.maintenance_team
			SET name = $3, updated_at = NOW()
			WHERE company_id = $1 AND id = $2`, companyID, id, payload.Name)
		if err != nil {
			if apperrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("Team with this name already exists", "name")
			}
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		current := make(map[string]bool)
		rows, err := tx.Query(ctx,
			`SELECT user_id::text FROM app.maintenance_team_member WHERE team_id = $1`, id)
		if err != nil {
			return err
		}
		for rows.Next() {
			var userID string
			if err := rows.Scan(&userID); err != nil {
				rows.Close()
				return err
			}
			current[userID] = true
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		desired := make(map[string]bool, len(payload.MemberIDs))
		toAdd := make([]string, 0)
		for _, userID := range payload.MemberIDs {
			desired[userID] = true
			if !current[userID] {
				toAdd = append(toAdd, userID)
			}
		}
		toRemove := make([]string, 0)
		for userID := range current {
			if !desired[userID] {
				toRemove = append(toRemove, userID)
			}
		}

		if len(toRemove) > 0 {
			_, err = tx.Exec(ctx, `
				DELETE FROM app.maintenance_team_member
				WHERE team_id = $1 AND user_id = ANY($2::uuid[])`, id, toRemove)
			if err != nil {
				return err
			}
		}
		return insertTeamMembers(ctx, tx, id, toAdd)
	})
}

func (r *TeamRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	tag, err := r.storage.Exec(ctx,
		`DELETE FROM app.maintenance_team WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
