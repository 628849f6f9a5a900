package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runReportRouter(api *echo.Group, controller *controllers.ReportController) {
	reports := api.Group("/reports")

	reports.GET("/requests", controller.Requests)
}
