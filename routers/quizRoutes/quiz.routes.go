package quizRoutes

import (
	quizController "lms/controllers/quiz"
	"lms/middleware"
	quizValidator "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz generation, taking and management routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz")

	// Generation and taking
	quizGroup.Post("/lecture/:lectureId/generate", middleware.JWTMiddleware, quizValidator.LectureID(), quizValidator.GenerateQuiz(), quizController.GenerateQuizForLecture)
	quizGroup.Get("/:id", middleware.JWTMiddleware, quizValidator.QuizID(), quizController.GetQuiz)
	quizGroup.Post("/:id/submit", middleware.JWTMiddleware, quizValidator.QuizID(), quizValidator.SubmitQuiz(), quizController.SubmitQuiz)
	quizGroup.Get("/:id/attempts", middleware.JWTMiddleware, quizValidator.QuizID(), quizController.GetQuizAttempts)

	// Manual authoring by instructors
	quizGroup.Patch("/:id", middleware.JWTMiddleware, middleware.InstructorOnly, quizValidator.QuizID(), quizValidator.UpdateQuiz(), quizController.UpdateQuiz)
	quizGroup.Post("/:id/question", middleware.JWTMiddleware, middleware.InstructorOnly, quizValidator.QuizID(), quizValidator.AddQuestion(), quizController.AddQuizQuestion)
	quizGroup.Delete("/question/:questionId", middleware.JWTMiddleware, middleware.InstructorOnly, quizValidator.QuestionID(), quizController.DeleteQuizQuestion)
}
