package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"
)

// InitRouter wires every API route. Signup, login, validate and the two
// diagnostic endpoints stay public; everything else sits behind the JWT
// middleware.
func InitRouter(
	e *echo.Echo,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	equipmentController *controllers.EquipmentController,
	categoryController *controllers.CategoryController,
	teamController *controllers.TeamController,
	requestController *controllers.RequestController,
	dashboardController *controllers.DashboardController,
	reportController *controllers.ReportController,
	authMW *middleware.AuthMiddleware,
) {
	api := e.Group("/api")

	api.GET("/health", healthController.Health)
	api.GET("/test/company", healthController.TestCompany)

	runAuthRouter(api, authController)

	protected := api.Group("", authMW.Auth)
	runEquipmentRouter(protected, equipmentController)
	runCategoryRouter(protected, categoryController)
	runTeamRouter(protected, teamController)
	runRequestRouter(protected, requestController)
	runMaintenanceRouter(protected, requestController, teamController, categoryController)
	runDashboardRouter(protected, dashboardController)
	runReportRouter(protected, reportController)
}
