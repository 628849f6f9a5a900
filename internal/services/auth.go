package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, payload dto.SignupDTO) (dto.AuthResponseDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (dto.AuthResponseDTO, error)
	Validate(ctx context.Context, token string) (dto.ValidateResponseDTO, error)
}

type AuthService struct {
	userRepo       repositories.UserRepositoryInterface
	companyRepo    repositories.CompanyRepositoryInterface
	jwtService     service.JWTService
	defaultCompany string
	logger         *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	jwtService service.JWTService,
	defaultCompany string,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		jwtService:     jwtService,
		defaultCompany: defaultCompany,
		logger:         logger,
	}
}

// Signup registers a portal user under the default company. Emails are stored
// lower case so the uniqueness constraint is case insensitive in practice.
func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) (dto.AuthResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	_, err := s.userRepo.FindPortalUserByEmail(ctx, email)
	if err == nil {
		return dto.AuthResponseDTO{}, apperrors.NewConflictError("Email already registered", "email")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return dto.AuthResponseDTO{}, err
	}

	company, err := s.companyRepo.FindByName(ctx, s.defaultCompany)
	if err != nil {
		return dto.AuthResponseDTO{}, apperrors.NewInternalError("Company not found", err)
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return dto.AuthResponseDTO{}, err
	}

	user, err := s.userRepo.CreatePortalUser(ctx, company.ID, payload.FullName, email, hash)
	if err != nil {
		return dto.AuthResponseDTO{}, err
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.CompanyID)
	if err != nil {
		return dto.AuthResponseDTO{}, err
	}

	createdAt := user.CreatedAt
	return dto.AuthResponseDTO{
		Message: "User created successfully",
		User: dto.AuthUserDTO{
			ID:        user.ID,
			FullName:  user.FullName,
			Email:     user.Email,
			CreatedAt: &createdAt,
		},
		Token: token,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (dto.AuthResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	user, err := s.userRepo.FindPortalUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return dto.AuthResponseDTO{}, apperrors.ErrInvalidCredentials
		}
		return dto.AuthResponseDTO{}, err
	}

	if !user.IsActive {
		return dto.AuthResponseDTO{}, apperrors.ErrAccountInactive
	}

	if err := utils.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		return dto.AuthResponseDTO{}, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.CompanyID)
	if err != nil {
		return dto.AuthResponseDTO{}, err
	}

	return dto.AuthResponseDTO{
		Message: "Login successful",
		User: dto.AuthUserDTO{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		},
		Token: token,
	}, nil
}

// Validate re-checks the token holder against the database so a deactivated
// account stops validating even before the token expires. Every failure mode
// collapses to a plain unauthorized.
func (s *AuthService) Validate(ctx context.Context, token string) (dto.ValidateResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return dto.ValidateResponseDTO{}, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindPortalUserByID(ctx, claims.UserID)
	if err != nil || !user.IsActive {
		return dto.ValidateResponseDTO{}, apperrors.ErrUnauthorized
	}

	return dto.ValidateResponseDTO{
		Valid: true,
		User: dto.AuthUserDTO{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		},
	}, nil
}
