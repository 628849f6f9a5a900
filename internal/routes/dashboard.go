package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runDashboardRouter(api *echo.Group, controller *controllers.DashboardController) {
	dashboard := api.Group("/dashboard")

	dashboard.GET("/stats", controller.Stats)
	dashboard.GET("/requests", controller.Requests)
	dashboard.PATCH("/requests/:id/stage", controller.UpdateStage)
	dashboard.GET("/technicians", controller.Technicians)
	dashboard.GET("/equipment", controller.Equipment)
	dashboard.GET("/calendar", controller.Calendar)
}
