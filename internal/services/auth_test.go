package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type fakeUserRepo struct {
	usersByEmail map[string]entities.PortalUser
	created      []entities.PortalUser
}

func newFakeUserRepo(users ...entities.PortalUser) *fakeUserRepo {
	repo := &fakeUserRepo{usersByEmail: make(map[string]entities.PortalUser)}
	for _, u := range users {
		repo.usersByEmail[u.Email] = u
	}
	return repo
}

func (r *fakeUserRepo) FindPortalUserByEmail(_ context.Context, email string) (entities.PortalUser, error) {
	u, ok := r.usersByEmail[email]
	if !ok {
		return entities.PortalUser{}, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindPortalUserByID(_ context.Context, id uuid.UUID) (entities.PortalUser, error) {
	for _, u := range r.usersByEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return entities.PortalUser{}, apperrors.ErrNotFound
}

func (r *fakeUserRepo) CreatePortalUser(_ context.Context, companyID uuid.UUID, fullName, email, passwordHash string) (entities.PortalUser, error) {
	user := entities.PortalUser{
		ID:           uuid.New(),
		CompanyID:    companyID,
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	r.usersByEmail[email] = user
	r.created = append(r.created, user)
	return user, nil
}

func (r *fakeUserRepo) ListActiveAppUsers(context.Context, uuid.UUID) ([]entities.AppUser, error) {
	return nil, nil
}

type fakeCompanyRepo struct {
	company entities.Company
}

func (r *fakeCompanyRepo) FindByName(_ context.Context, name string) (entities.Company, error) {
	if name != r.company.Name {
		return entities.Company{}, apperrors.ErrNotFound
	}
	return r.company, nil
}

func (r *fakeCompanyRepo) First(context.Context) (entities.Company, error) {
	return r.company, nil
}

func authFixture(t *testing.T) (AuthServiceInterface, *fakeUserRepo, service.JWTService) {
	t.Helper()
	userRepo := newFakeUserRepo()
	companyRepo := &fakeCompanyRepo{company: entities.Company{ID: uuid.New(), Name: "GearGuard"}}
	jwtSvc := service.NewJWTService("test-secret", time.Hour, zap.NewNop())
	return NewAuthService(userRepo, companyRepo, jwtSvc, "GearGuard", zap.NewNop()), userRepo, jwtSvc
}

func TestSignupCreatesUserAndToken(t *testing.T) {
	svc, userRepo, jwtSvc := authFixture(t)

	resp, err := svc.Signup(context.Background(), dto.SignupDTO{
		FullName: "Mika Tanaka",
		Email:    "  Mika@Example.COM ",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "User created successfully", resp.Message)
	assert.Equal(t, "mika@example.com", resp.User.Email)
	require.NotNil(t, resp.User.CreatedAt)

	require.Len(t, userRepo.created, 1)
	stored := userRepo.created[0]
	assert.NotEqual(t, "Str0ng!pass", stored.PasswordHash)
	require.NoError(t, utils.CheckPassword(stored.PasswordHash, "Str0ng!pass"))

	claims, err := jwtSvc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, stored.CompanyID, claims.CompanyID)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := authFixture(t)

	payload := dto.SignupDTO{FullName: "Mika Tanaka", Email: "mika@example.com", Password: "Str0ng!pass"}
	_, err := svc.Signup(context.Background(), payload)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), payload)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Code)
	assert.Equal(t, "Email already registered", httpErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := authFixture(t)

	_, err := svc.Signup(context.Background(), dto.SignupDTO{
		FullName: "Mika Tanaka", Email: "mika@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginDTO{Email: "mika@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := authFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	hash, err := utils.HashPassword("Str0ng!pass")
	require.NoError(t, err)

	userRepo := newFakeUserRepo(entities.PortalUser{
		ID:           uuid.New(),
		Email:        "mika@example.com",
		PasswordHash: hash,
		IsActive:     false,
	})
	companyRepo := &fakeCompanyRepo{company: entities.Company{ID: uuid.New(), Name: "GearGuard"}}
	jwtSvc := service.NewJWTService("test-secret", time.Hour, zap.NewNop())
	svc := NewAuthService(userRepo, companyRepo, jwtSvc, "GearGuard", zap.NewNop())

	_, err = svc.Login(context.Background(), dto.LoginDTO{Email: "mika@example.com", Password: "Str0ng!pass"})
	assert.ErrorIs(t, err, apperrors.ErrAccountInactive)
}

func TestValidateDeactivatedUser(t *testing.T) {
	svc, userRepo, _ := authFixture(t)

	resp, err := svc.Signup(context.Background(), dto.SignupDTO{
		FullName: "Mika Tanaka", Email: "mika@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	user := userRepo.usersByEmail["mika@example.com"]
	user.IsActive = false
	userRepo.usersByEmail["mika@example.com"] = user

	_, err = svc.Validate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestValidateGoodToken(t *testing.T) {
	svc, _, _ := authFixture(t)

	signed, err := svc.Signup(context.Background(), dto.SignupDTO{
		FullName: "Mika Tanaka", Email: "mika@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	resp, err := svc.Validate(context.Background(), signed.Token)
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, "mika@example.com", resp.User.Email)
}
