package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up instructor course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.InstructorOnly)

	// Course management
	adminGroup.Post("/", validators.CreateCourse(), controllers.CreateCourse)
	adminGroup.Get("/list", controllers.GetInstructorCourses)
	adminGroup.Get("/dashboard", controllers.GetInstructorDashboard)
	adminGroup.Patch("/:id", validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	adminGroup.Patch("/:id/publish", validators.CourseID(), validators.PublishCourse(), controllers.PublishCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.DeleteCourse)

	// Section management
	adminGroup.Post("/:id/section", validators.CourseID(), validators.SectionBody(true), controllers.CreateSection)
	adminGroup.Patch("/section/:sectionId", validators.SectionID(), validators.SectionBody(false), controllers.UpdateSection)
	adminGroup.Delete("/section/:sectionId", validators.SectionID(), controllers.DeleteSection)
	adminGroup.Patch("/:id/sections/reorder", validators.CourseID(), validators.Reorder(), controllers.ReorderSections)

	// Lecture management
	adminGroup.Post("/section/:sectionId/lecture", validators.SectionID(), validators.LectureBody(true), controllers.CreateLecture)
	adminGroup.Patch("/lecture/:lectureId", validators.LectureID(), validators.LectureBody(false), controllers.UpdateLecture)
	adminGroup.Delete("/lecture/:lectureId", validators.LectureID(), controllers.DeleteLecture)
	adminGroup.Patch("/section/:sectionId/lectures/reorder", validators.SectionID(), validators.Reorder(), controllers.ReorderLectures)

	// Module and lesson management
	adminGroup.Post("/:id/module", validators.CourseID(), validators.ModuleBody(true), controllers.CreateModule)
	adminGroup.Patch("/module/:id", validators.ModuleID(), validators.ModuleBody(false), controllers.UpdateModule)
	adminGroup.Post("/module/:id/lesson", validators.ModuleID(), validators.LessonBody(true), controllers.CreateLesson)
	adminGroup.Patch("/lesson/:lessonId", validators.LessonID(), validators.LessonBody(false), controllers.UpdateLesson)

	// Playlist import
	adminGroup.Get("/import/preview", validators.PreviewPlaylist(), controllers.PreviewPlaylist)
	adminGroup.Post("/import", validators.ImportPlaylist(), controllers.ImportPlaylist)
}
