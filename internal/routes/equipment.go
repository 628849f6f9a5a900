package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runEquipmentRouter(api *echo.Group, controller *controllers.EquipmentController) {
	equipment := api.Group("/equipment")

	equipment.GET("", controller.List)
	equipment.GET("/:id", controller.GetByID)
	equipment.POST("", controller.Create)
	equipment.PUT("/:id", controller.Update)
	equipment.DELETE("/:id", controller.Delete)
}
