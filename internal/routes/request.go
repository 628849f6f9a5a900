package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(api *echo.Group, controller *controllers.RequestController) {
	requests := api.Group("/requests")

	requests.GET("", controller.List)
	requests.GET("/kanban", controller.Kanban)
	requests.GET("/calendar", controller.Calendar)
}

// runMaintenanceRouter covers the /maintenance module: request CRUD plus the
// flat team and category lookups its screens need.
func runMaintenanceRouter(
	api *echo.Group,
	requestController *controllers.RequestController,
	teamController *controllers.TeamController,
	categoryController *controllers.CategoryController,
) {
	maintenance := api.Group("/maintenance")

	maintenance.GET("/teams", teamController.Summaries)
	maintenance.GET("/teams/:id", teamController.Detail)
	maintenance.GET("/categories", categoryController.ListOptions)

	maintenance.GET("/requests/:id", requestController.GetByID)
	maintenance.POST("/requests", requestController.Create)
	maintenance.PUT("/requests/:id", requestController.Update)
	maintenance.DELETE("/requests/:id", requestController.Delete)
}
