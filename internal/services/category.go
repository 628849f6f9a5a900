package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type CategoryServiceInterface interface {
	List(ctx context.Context, companyID uuid.UUID) ([]dto.CategoryDTO, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.CategoryDTO, error)
	Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateCategoryDTO) (dto.CategoryDTO, error)
	Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateCategoryDTO) (dto.CategoryDTO, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
	ListUsers(ctx context.Context, companyID uuid.UUID) ([]dto.UserOptionDTO, error)
	ListOptions(ctx context.Context, companyID uuid.UUID) ([]dto.CategoryOptionDTO, error)
}

type CategoryService struct {
	repo     repositories.CategoryRepositoryInterface
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewCategoryService(
	repo repositories.CategoryRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) CategoryServiceInterface {
	return &CategoryService{repo: repo, userRepo: userRepo, logger: logger}
}

func (s *CategoryService) List(ctx context.Context, companyID uuid.UUID) ([]dto.CategoryDTO, error) {
	return s.repo.List(ctx, companyID)
}

func (s *CategoryService) FindByID(ctx context.Context, companyID, id uuid.UUID) (dto.CategoryDTO, error) {
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *CategoryService) Create(ctx context.Context, companyID uuid.UUID, payload dto.CreateCategoryDTO) (dto.CategoryDTO, error) {
	return s.repo.Create(ctx, companyID, payload)
}

func (s *CategoryService) Update(ctx context.Context, companyID, id uuid.UUID, payload dto.UpdateCategoryDTO) (dto.CategoryDTO, error) {
	return s.repo.Update(ctx, companyID, id, payload)
}

func (s *CategoryService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.Delete(ctx, companyID, id)
}

// ListOptions backs the category dropdown on the request form.
func (s *CategoryService) ListOptions(ctx context.Context, companyID uuid.UUID) ([]dto.CategoryOptionDTO, error) {
	return s.repo.ListOptions(ctx, companyID)
}

// ListUsers backs the "responsible" picker on the category form.
func (s *CategoryService) ListUsers(ctx context.Context, companyID uuid.UUID) ([]dto.UserOptionDTO, error) {
	users, err := s.userRepo.ListActiveAppUsers(ctx, companyID)
	if err != nil {
		return nil, err
	}

	options := make([]dto.UserOptionDTO, 0, len(users))
	for _, u := range users {
		options = append(options, dto.UserOptionDTO{ID: u.ID, Name: u.FullName})
	}
	return options, nil
}
