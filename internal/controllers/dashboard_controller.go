package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type DashboardController struct {
	service        services.DashboardServiceInterface
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewDashboardController(
	service services.DashboardServiceInterface,
	requestService services.RequestServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{service: service, requestService: requestService, logger: logger}
}

func (c *DashboardController) Stats(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	stats, err := c.service.Stats(ctx.Request().Context(), companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (c *DashboardController) Requests(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	requests, err := c.service.BoardRequests(ctx.Request().Context(), companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, requests)
}

// UpdateStage backs the board's drag and drop; the stage value is accepted in
// any case and validated against the four known columns.
func (c *DashboardController) UpdateStage(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateStageDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body", ""), c.logger)
	}

	stage, ok := entities.ParseRequestStage(payload.Stage)
	if !ok {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid stage", "stage"), c.logger)
	}

	patched, err := c.requestService.UpdateStage(ctx.Request().Context(), companyID, id, stage)
	if err != nil {
		return utils.ErrorResponse(ctx, notFound(err, "Request not found"), c.logger)
	}
	return ctx.JSON(http.StatusOK, dto.StageUpdatedDTO{
		Message: "Stage updated successfully",
		Request: patched,
	})
}

func (c *DashboardController) Technicians(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	technicians, err := c.service.Technicians(ctx.Request().Context(), companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, technicians)
}

func (c *DashboardController) Equipment(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	items, err := c.service.Equipment(ctx.Request().Context(), companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, items)
}

func (c *DashboardController) Calendar(ctx echo.Context) error {
	companyID, err := utils.GetCompanyIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	events, err := c.service.CalendarEvents(ctx.Request().Context(), companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, events)
}
