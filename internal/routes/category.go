package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runCategoryRouter(api *echo.Group, controller *controllers.CategoryController) {
	categories := api.Group("/categories")

	categories.GET("", controller.List)
	categories.GET("/users", controller.ListUsers)
	categories.GET("/:id", controller.GetByID)
	categories.POST("", controller.Create)
	categories.PUT("/:id", controller.Update)
	categories.DELETE("/:id", controller.Delete)
}
