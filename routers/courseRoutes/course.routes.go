package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course catalog
	userGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Progress tracking
	userGroup.Post("/progress", middleware.JWTMiddleware, validators.UpdateProgress(), controllers.UpdateProgress)
	userGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)

	// Module based content
	moduleGroup := app.Group("/module")
	moduleGroup.Get("/:id", middleware.JWTMiddleware, validators.ModuleID(), controllers.GetModule)
	moduleGroup.Post("/lesson/:lessonId/complete", middleware.JWTMiddleware, validators.LessonID(), controllers.CompleteLesson)

	// AI study aids per lecture
	lectureGroup := app.Group("/lecture")
	lectureGroup.Get("/:lectureId/summary", middleware.JWTMiddleware, validators.LectureID(), controllers.SummarizeLecture)
	lectureGroup.Get("/:lectureId/notes", middleware.JWTMiddleware, validators.LectureID(), controllers.GenerateLectureNotes)

	// User enrollments
	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
}
