package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type TeamServiceInterface interface {
	List(ctx context.Context, companyID uuid.UUID) ([]dto.TeamDTO, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.TeamDTO, error)
	Summaries(ctx context.Context, companyID uuid.UUID) ([]dto.TeamSummaryDTO, error)
	FindDetail(ctx context.Context, companyID, id uuid.UUID) (dto.TeamDetailDTO, error)
	Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateTeamDTO) (dto.TeamDTO, error)
	Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateTeamDTO) (dto.TeamDTO, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type TeamService struct {
	repo   repositories.TeamRepositoryInterface
	logger *zap.Logger
}

func NewTeamService(repo repositories.TeamRepositoryInterface, logger *zap.Logger) TeamServiceInterface {
	return &TeamService{repo: repo, logger: logger}
}

func (s *TeamService) List(ctx context.Context, companyID uuid.UUID) ([]dto.TeamDTO, error) {
	return s.repo.List(ctx, companyID)
}

func (s *TeamService) FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.TeamDTO, error) {
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *TeamService) Summaries(ctx context.Context, companyID uuid.UUID) ([]dto.TeamSummaryDTO, error) {
	return s.repo.Summaries(ctx, companyID)
}

func (s *TeamService) FindDetail(ctx context.Context, companyID, id uuid.UUID) (dto.TeamDetailDTO, error) {
	return s.repo.FindDetail(ctx, companyID, id)
}

func (s *TeamService) Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateTeamDTO) (dto.TeamDTO, error) {
	id, err := s.repo.Create(ctx, companyID, payload)
	if err != nil {
		return dto.TeamDTO{}, err
	}
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *TeamService) Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateTeamDTO) (dto.TeamDTO, error) {
	if err := s.repo.Update(ctx, companyID, id, payload); err != nil {
		return dto.TeamDTO{}, err
	}
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *TeamService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.Delete(ctx, companyID, id)
}
