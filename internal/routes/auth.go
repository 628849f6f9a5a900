package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runAuthRouter(api *echo.Group, controller *controllers.AuthController) {
	auth := api.Group("/auth")

	auth.POST("/signup", controller.Signup)
	auth.POST("/login", controller.Login)
	auth.GET("/validate", controller.Validate)
}
