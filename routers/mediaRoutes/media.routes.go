package mediaRoutes

import (
	mediaController "lms/controllers/media"
	"lms/middleware"
	mediaValidator "lms/validators/media"

	"github.com/gofiber/fiber/v2"
)

// SetupMediaRoutes sets up instructor file management routes
func SetupMediaRoutes(app *fiber.App) {
	mediaGroup := app.Group("/media", middleware.JWTMiddleware, middleware.InstructorOnly)

	mediaGroup.Post("/upload", mediaController.UploadMedia)
	mediaGroup.Get("/list", mediaController.GetMediaList)
	mediaGroup.Delete("/:id", mediaValidator.MediaID(), mediaController.DeleteMedia)
}
