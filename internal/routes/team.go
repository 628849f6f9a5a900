package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runTeamRouter(api *echo.Group, controller *controllers.TeamController) {
	teams := api.Group("/teams")

	teams.GET("", controller.List)
	teams.GET("/:id", controller.GetByID)
	teams.POST("", controller.Create)
	teams.PUT("/:id", controller.Update)
	teams.DELETE("/:id", controller.Delete)
}
