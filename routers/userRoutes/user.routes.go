package userRoutes

import (
	"lms/controllers/userControllers"
	"lms/middleware"
	userValidator "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Patch("/profile", middleware.JWTMiddleware, userValidator.UpdateProfile(), userControllers.UpdateProfile)
}
