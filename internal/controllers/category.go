package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type CategoryController struct {
	service services.CategoryServiceInterface
	logger  *zap.Logger
}

func NewCategoryController(service services.CategoryServiceInterface, logger *zap.Logger) *CategoryController {
	return &CategoryController{service: service, logger: logger}
}

func (c *CategoryController) List(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	categories, err := c.service.List(ctx.Request().Context(), companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, categories)
}

// ListUsers returns the active app users for the responsible picker.
func (c *CategoryController) ListUsers(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	users, err := c.service.ListUsers(ctx.Request().Context(), companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, users)
}

func (c *CategoryController) ListOptions(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	options, err := c.service.ListOptions(ctx.Request().Context(), companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, options)
}

func (c *CategoryController) GetByID(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	category, err := c.service.FindByID(ctx.Request().Context(), companyID, id)
	if err != nil {
		return utils.ErrorResponse(ctx, notFound(err, "Category not found"), c.logger)
	}
	return ctx.JSON(http.StatusOK, category)
}

func (c *CategoryController) Create(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body", ""), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	category, err := c.service.Create(ctx.Request().Context(), companyID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, category)
}

func (c *CategoryController) Update(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body", ""), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	category, err := c.service.Update(ctx.Request().Context(), companyID, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, notFound(err, "Category not found"), c.logger)
	}
	return ctx.JSON(http.StatusOK, category)
}

func (c *CategoryController) Delete(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.Delete(ctx.Request().Context(), companyID, id); err != nil {
		return utils.ErrorResponse(ctx, notFound(err, "Category not found"), c.logger)
	}
	return ctx.JSON(http.StatusOK, dto.MessageDTO{Message: "Category deleted successfully"})
}
