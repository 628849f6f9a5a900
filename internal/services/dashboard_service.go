package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

// statsCacheKey scopes the cached counters per company.
func statsCacheKey(companyID uuid.UUID) string {
	return "dashboard:stats:" + companyID.String()
}

// technicianLoadStub is a placeholder until load is computed from actual
// assignments; the dashboard has always shown this fixed figure.
const technicianLoadStub = 85

type DashboardServiceInterface interface {
	Stats(ctx context.Context, companyID uuid.UUID) (dto.DashboardStatsDTO, error)
	BoardRequests(ctx context.Context, companyID uuid.UUID) ([]dto.DashboardRequestDTO, error)
	Technicians(ctx context.Context, companyID uuid.UUID) ([]dto.TechnicianDTO, error)
	Equipment(ctx context.Context, companyID uuid.UUID) ([]dto.DashboardEquipmentDTO, error)
	CalendarEvents(ctx context.Context, companyID uuid.UUID) ([]dto.CalendarEventDTO, error)
}

type DashboardService struct {
	repo     repositories.DashboardRepositoryInterface
	cache    repositories.CacheRepositoryInterface
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewDashboardService(
	repo repositories.DashboardRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Stats serves the counters from redis when a fresh copy exists; cache
// failures fall through to the database.
func (s *DashboardService) Stats(ctx context.Context, companyID uuid.UUID) (dto.DashboardStatsDTO, error) {
	if cached, err := s.cache.Get(ctx, statsCacheKey(companyID)); err == nil {
		var stats dto.DashboardStatsDTO
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return stats, nil
		}
		s.logger.Warn("discarding malformed cached dashboard stats")
	}

	stats, err := s.repo.Stats(ctx, companyID)
	if err != nil {
		return dto.DashboardStatsDTO{}, err
	}
	stats.TechnicianLoad = technicianLoadStub

	if encoded, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, statsCacheKey(companyID), string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *DashboardService) BoardRequests(ctx context.Context, companyID uuid.UUID) ([]dto.DashboardRequestDTO, error) {
	return s.repo.BoardRequests(ctx, companyID)
}

func (s *DashboardService) Technicians(ctx context.Context, companyID uuid.UUID) ([]dto.TechnicianDTO, error) {
	return s.repo.Technicians(ctx, companyID)
}

func (s *DashboardService) Equipment(ctx context.Context, companyID uuid.UUID) ([]dto.DashboardEquipmentDTO, error) {
	return s.repo.Equipment(ctx, companyID)
}

func (s *DashboardService) CalendarEvents(ctx context.Context, companyID uuid.UUID) ([]dto.CalendarEventDTO, error) {
	return s.repo.CalendarEvents(ctx, companyID)
}
