package controllers

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/repositories"
	"gearguard/pkg/utils"
)

type HealthController struct {
	pool        *pgxpool.Pool
	companyRepo repositories.CompanyRepositoryInterface
	logger      *zap.Logger
}

func NewHealthController(pool *pgxpool.Pool, companyRepo repositories.CompanyRepositoryInterface, logger *zap.Logger) *HealthController {
	return &HealthController{pool: pool, companyRepo: companyRepo, logger: logger}
}

// Health pings the database so load balancers see a dead pool as unhealthy.
func (c *HealthController) Health(ctx echo.Context) error {
	if err := c.pool.Ping(ctx.Request().Context()); err != nil {
		c.logger.Error("health check failed", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, echo.Map{
			"status":   "error",
			"database": "disconnected",
			"error":    err.Error(),
		})
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// TestCompany exposes the seeded company for connectivity smoke tests.
func (c *HealthController) TestCompany(ctx echo.Context) error {
	company, err := c.companyRepo.First(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, notFound(err, "Company not found"), c.logger)
	}
	return ctx.JSON(http.StatusOK, company)
}
