package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	apperrors "gearguard/pkg/errors"
)

// integrationPool connects to the database named by TEST_DATABASE_URL and
// applies migrations. Without the variable the whole file is skipped, so these
// tests only run against a disposable database.
func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, postgresql.Migrate(dsn))

	pool, err := postgresql.Connect(context.Background(), config.PostgresConfig{
		DSN:            dsn,
		MaxConns:       4,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func createCompany(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO app.company (name) VALUES ($1) RETURNING id`,
		"itest-"+uuid.NewString()).Scan(&id)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM app.company WHERE id = $1`, id)
	})
	return id
}

func TestUserRepositoryRoundtrip(t *testing.T) {
	pool := integrationPool(t)
	repo := NewUserRepository(pool)
	companyID := createCompany(t, pool)

	email := uuid.NewString() + "@itest.local"
	created, err := repo.CreatePortalUser(context.Background(), companyID, "Itest User", email, "hash")
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	found, err := repo.FindPortalUserByEmail(context.Background(), email)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, companyID, found.CompanyID)

	_, err = repo.FindPortalUserByEmail(context.Background(), "missing@itest.local")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.CreatePortalUser(context.Background(), companyID, "Dup User", email, "hash")
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Code)
}

func TestEquipmentRepositoryScoping(t *testing.T) {
	pool := integrationPool(t)
	repo := NewEquipmentRepository(pool)
	companyA := createCompany(t, pool)
	companyB := createCompany(t, pool)

	created, err := repo.Create(context.Background(), companyA, dto.CreateEquipmentDTO{
		Name:         "Itest Lathe",
		SerialNumber: "itest-" + uuid.NewString(),
	})
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), companyA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Itest Lathe", found.Name)
	assert.Equal(t, string(entities.EquipmentActive), found.Status)

	_, err = repo.FindByID(context.Background(), companyB, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "equipment must not leak across companies")
}

func createAppUser(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID, fullName string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO app.app_user (company_id, full_name) VALUES ($1, $2) RETURNING id`,
		companyID, fullName).Scan(&id)
	require.NoError(t, err)
	return id
}

func memberIDs(members []entities.TeamMember) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestTeamRepositoryMembershipReconciliation(t *testing.T) {
	pool := integrationPool(t)
	repo := NewTeamRepository(pool, NewTxManager(pool, zap.NewNop()))
	companyID := createCompany(t, pool)

	alice := createAppUser(t, pool, companyID, "Alice Itest")
	bob := createAppUser(t, pool, companyID, "Bob Itest")
	cara := createAppUser(t, pool, companyID, "Cara Itest")

	teamID, err := repo.Create(context.Background(), companyID, dto.CreateTeamDTO{
		Name:      "itest-mechanical-" + uuid.NewString(),
		MemberIDs: []string{alice.String(), bob.String()},
	})
	require.NoError(t, err)

	team, err := repo.FindByID(context.Background(), companyID, teamID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{alice, bob}, memberIDs(team.Members))

	// Overlapping update: bob stays, alice leaves, cara joins. The duplicate
	// id in the payload must not produce a duplicate membership row.
	err = repo.Update(context.Background(), companyID, teamID, dto.UpdateTeamDTO{
		Name:      team.Name,
		MemberIDs: []string{bob.String(), cara.String(), cara.String()},
	})
	require.NoError(t, err)

	team, err = repo.FindByID(context.Background(), companyID, teamID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{bob, cara}, memberIDs(team.Members))

	// Empty list clears the membership entirely.
	err = repo.Update(context.Background(), companyID, teamID, dto.UpdateTeamDTO{
		Name:      team.Name,
		MemberIDs: []string{},
	})
	require.NoError(t, err)

	team, err = repo.FindByID(context.Background(), companyID, teamID)
	require.NoError(t, err)
	assert.Empty(t, team.Members)
}

func TestTeamRepositoryDuplicateName(t *testing.T) {
	pool := integrationPool(t)
	repo := NewTeamRepository(pool, NewTxManager(pool, zap.NewNop()))
	companyID := createCompany(t, pool)

	name := "itest-electrical-" + uuid.NewString()
	_, err := repo.Create(context.Background(), companyID, dto.CreateTeamDTO{Name: name})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), companyID, dto.CreateTeamDTO{Name: name})
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Code)
	assert.Equal(t, "Team with this name already exists", httpErr.Message)

	otherID, err := repo.Create(context.Background(), companyID, dto.CreateTeamDTO{
		Name: "itest-general-" + uuid.NewString(),
	})
	require.NoError(t, err)

	err = repo.Update(context.Background(), companyID, otherID, dto.UpdateTeamDTO{Name: name})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Code)
}

func TestTeamRepositoryMissingTeam(t *testing.T) {
	pool := integrationPool(t)
	repo := NewTeamRepository(pool, NewTxManager(pool, zap.NewNop()))
	companyID := createCompany(t, pool)

	err := repo.Delete(context.Background(), companyID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.Update(context.Background(), companyID, uuid.New(), dto.UpdateTeamDTO{Name: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.FindByID(context.Background(), companyID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRequestRepositoryStageLifecycle(t *testing.T) {
	pool := integrationPool(t)
	txManager := NewTxManager(pool, zap.NewNop())
	equipmentRepo := NewEquipmentRepository(pool)
	requestRepo := NewRequestRepository(pool, txManager)
	userRepo := NewUserRepository(pool)
	companyID := createCompany(t, pool)

	creator, err := userRepo.CreatePortalUser(context.Background(), companyID,
		"Itest Creator", uuid.NewString()+"@itest.local", "hash")
	require.NoError(t, err)

	equipment, err := equipmentRepo.Create(context.Background(), companyID, dto.CreateEquipmentDTO{
		Name:         "Itest Press",
		SerialNumber: "itest-" + uuid.NewString(),
	})
	require.NoError(t, err)

	equipmentID := equipment.ID.String()
	requestID, err := requestRepo.Create(context.Background(), companyID, creator.ID, dto.CreateRequestDTO{
		Subject:     "Itest press jammed",
		EquipmentID: &equipmentID,
	})
	require.NoError(t, err)

	detail, err := requestRepo.FindDetail(context.Background(), companyID, requestID)
	require.NoError(t, err)
	assert.Equal(t, string(entities.StageNew), detail.Stage)
	assert.Equal(t, string(entities.TypeCorrective), detail.MaintenanceType)
	assert.Equal(t, string(entities.PriorityMedium), detail.Priority)

	patched, err := requestRepo.UpdateStage(context.Background(), companyID, requestID, string(entities.StageScrap))
	require.NoError(t, err)
	assert.Equal(t, string(entities.StageScrap), patched.Stage)

	// Scrapping the request scraps the attached equipment in the same tx, so
	// the equipment drops out of the ACTIVE-only listing.
	_, err = equipmentRepo.FindByID(context.Background(), companyID, equipment.ID)
	if err != nil {
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	} else {
		scoped, listErr := equipmentRepo.List(context.Background(), companyID)
		require.NoError(t, listErr)
		for _, item := range scoped {
			assert.NotEqual(t, equipment.ID, item.ID)
		}
	}
}
