package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
)

type RequestServiceInterface interface {
	List(ctx context.Context, companyID uuid.UUID, filter types.Filter) ([]dto.RequestListItemDTO, error)
	Kanban(ctx context.Context, companyID uuid.UUID) ([]dto.KanbanColumnDTO, error)
	Calendar(ctx context.Context, companyID uuid.UUID) ([]dto.CalendarRequestDTO, error)
	FindDetail(ctx context.Context, companyID, id uuid.UUID) (dto.RequestDetailDTO, error)
	Create(ctx context.Context, companyID, createdBy uuid.UUID, payload dto.CreateRequestDTO) (dto.CreatedDTO, error)
	Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateRequestDTO) error
	UpdateStage(ctx context.Context, companyID, id uuid.UUID, stage entities.RequestStage) (dto.StagePatchedDTO, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type RequestService struct {
	repo   repositories.RequestRepositoryInterface
	cache  repositories.CacheRepositoryInterface
	logger *zap.Logger
}

func NewRequestService(
	repo repositories.RequestRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{repo: repo, cache: cache, logger: logger}
}

func (s *RequestService) List(ctx context.Context, companyID uuid.UUID, filter types.Filter) ([]dto.RequestListItemDTO, error) {
	return s.repo.List(ctx, companyID, filter)
}

// Kanban groups board cards into per-stage columns. Only stages that actually
// hold requests produce a column.
func (s *RequestService) Kanban(ctx context.Context, companyID uuid.UUID) ([]dto.KanbanColumnDTO, error) {
	rows, err := s.repo.Kanban(ctx, companyID)
	if err != nil {
		return nil, err
	}

	columns := make([]dto.KanbanColumnDTO, 0, 4)
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Stage]
		if !ok {
			i = len(columns)
			index[row.Stage] = i
			columns = append(columns, dto.KanbanColumnDTO{
				Stage:    row.Stage,
				Requests: make([]dto.KanbanCardDTO, 0),
			})
		}
		columns[i].Requests = append(columns[i].Requests, row.Card)
	}
	return columns, nil
}

func (s *RequestService) Calendar(ctx context.Context, companyID uuid.UUID) ([]dto.CalendarRequestDTO, error) {
	return s.repo.Calendar(ctx, companyID)
}

func (s *RequestService) FindDetail(ctx context.Context, companyID, id uuid.UUID) (dto.RequestDetailDTO, error) {
	return s.repo.FindDetail(ctx, companyID, id)
}

func (s *RequestService) Create(ctx context.Context, companyID, createdBy uuid.UUID, payload dto.CreateRequestDTO) (dto.CreatedDTO, error) {
	id, err := s.repo.Create(ctx, companyID, createdBy, payload)
	if err != nil {
		return dto.CreatedDTO{}, err
	}
	s.invalidateStats(ctx, companyID)
	return dto.CreatedDTO{Message: "Request created successfully", ID: id}, nil
}

func (s *RequestService) Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateRequestDTO) error {
	if err := s.repo.Update(ctx, companyID, id, payload); err != nil {
		return err
	}
	s.invalidateStats(ctx, companyID)
	return nil
}

func (s *RequestService) UpdateStage(ctx context.Context, companyID, id uuid.UUID, stage entities.RequestStage) (dto.StagePatchedDTO, error) {
	patched, err := s.repo.UpdateStage(ctx, companyID, id, string(stage))
	if err != nil {
		return dto.StagePatchedDTO{}, err
	}
	s.invalidateStats(ctx, companyID)
	return patched, nil
}

func (s *RequestService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		return err
	}
	s.invalidateStats(ctx, companyID)
	return nil
}

// invalidateStats drops the cached dashboard counters after any request
// mutation. A failed delete only costs staleness until the TTL fires.
func (s *RequestService) invalidateStats(ctx context.Context, companyID uuid.UUID) {
	if err := s.cache.Delete(ctx, statsCacheKey(companyID)); err != nil {
		s.logger.Warn("failed to invalidate dashboard stats cache", zap.Error(err))
	}
}
