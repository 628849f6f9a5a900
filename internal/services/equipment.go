package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type EquipmentServiceInterface interface {
	List(ctx context.Context, companyID uuid.UUID) ([]dto.EquipmentDetailDTO, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.EquipmentDetailDTO, error)
	Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateEquipmentDTO) (dto.EquipmentDetailDTO, error)
	Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateEquipmentDTO) (dto.EquipmentDetailDTO, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type EquipmentService struct {
	repo   repositories.EquipmentRepositoryInterface
	logger *zap.Logger
}

func NewEquipmentService(repo repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{repo: repo, logger: logger}
}

func (s *EquipmentService) List(ctx context.Context, companyID uuid.UUID) ([]dto.EquipmentDetailDTO, error) {
	return s.repo.List(ctx, companyID)
}

func (s *EquipmentService) FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.EquipmentDetailDTO, error) {
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *EquipmentService) Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateEquipmentDTO) (dto.EquipmentDetailDTO, error) {
	return s.repo.Create(ctx, companyID, payload)
}

func (s *EquipmentService) Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateEquipmentDTO) (dto.EquipmentDetailDTO, error) {
	var status *string
	if payload.Status != nil {
		normalized := strings.ToUpper(*payload.Status)
		status = &normalized
	}
	return s.repo.Update(ctx, companyID, id, payload, status)
}

func (s *EquipmentService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.Delete(ctx, companyID, id)
}
