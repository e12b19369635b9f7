package quizController

import (
	"log"

	courseControllers "lms/controllers/course"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// lectureCourseID resolves the course a lecture belongs to
func lectureCourseID(db *gorm.DB, lectureID uint) (uint, error) {
	var lecture courseModels.Lecture
	if err := db.Where("id = ? AND is_deleted = ?", lectureID, false).First(&lecture).Error; err != nil {
		return 0, err
	}
	var section courseModels.Section
	if err := db.First(&section, lecture.SectionID).Error; err != nil {
		return 0, err
	}
	return section.CourseID, nil
}

// GenerateQuizForLecture creates a quiz for a lecture from its content
// via the AI generation chain. An existing quiz is returned as-is
// unless regeneration is requested, in which case it is replaced.
func GenerateQuizForLecture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lectureID := c.Locals("lectureID").(int)

	reqData := c.Locals("validatedGenerate").(*struct {
		NumQuestions int  `json:"num_questions"`
		Regenerate   bool `json:"regenerate"`
	})

	db := database.Database.Db

	var lecture courseModels.Lecture
	if err := db.Where("id = ? AND is_deleted = ?", lectureID, false).First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	courseID, err := lectureCourseID(db, uint(lectureID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	if err := requireEnrollmentOrOwnership(db, userID, courseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in the course to access quizzes!", nil)
	}

	// Reuse an existing quiz unless regeneration was requested
	var existing courseModels.Quiz
	if err := db.Where("lecture_id = ? AND is_deleted = ?", lectureID, false).First(&existing).Error; err == nil {
		if !reqData.Regenerate {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quizWithQuestions(db, &existing))
		}
		if err := deleteQuiz(db, &existing); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to regenerate quiz!", nil)
		}
	}

	source := lecture.Content
	if source == "" {
		source = lecture.Description
	}
	if len(source) < 50 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Not enough content to generate a quiz!", nil)
	}

	numQuestions := reqData.NumQuestions
	if numQuestions <= 0 {
		numQuestions = 5
	}

	quizData := utils.GenerateQuiz(source, numQuestions)

	quiz, err := persistGeneratedQuiz(db, userID, uint(lectureID), lecture.Title, quizData)
	if err != nil {
		log.Printf("Error persisting generated quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz generated successfully!", quizWithQuestions(db, quiz))
}

// persistGeneratedQuiz stores a generated quiz with its questions and
// options in one transaction
func persistGeneratedQuiz(db *gorm.DB, userID, lectureID uint, lectureTitle string, quizData *utils.QuizData) (*courseModels.Quiz, error) {
	var quiz courseModels.Quiz

	err := db.Transaction(func(tx *gorm.DB) error {
		id := lectureID
		quiz = courseModels.Quiz{
			Title:     "Quiz: " + lectureTitle,
			LectureID: &id,
			CreatedBy: userID,
		}
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}

		for qi, q := range quizData.Questions {
			question := courseModels.QuizQuestion{
				QuizID:     quiz.ID,
				Question:   q.Question,
				OrderIndex: qi + 1,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}

			for oi, opt := range q.Options {
				option := courseModels.QuizOption{
					QuestionID: question.ID,
					OptionText: opt.Text,
					IsCorrect:  opt.IsCorrect,
					OrderIndex: oi + 1,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func deleteQuiz(db *gorm.DB, quiz *courseModels.Quiz) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		tx.Model(&courseModels.QuizQuestion{}).Where("quiz_id = ?", quiz.ID).Pluck("id", &questionIDs)
		if len(questionIDs) > 0 {
			if err := tx.Model(&courseModels.QuizOption{}).Where("question_id IN ?", questionIDs).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&courseModels.QuizQuestion{}).Where("quiz_id = ?", quiz.ID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(quiz).Update("is_deleted", true).Error
	})
}

// quizWithQuestions loads the full question/option graph for a quiz
func quizWithQuestions(db *gorm.DB, quiz *courseModels.Quiz) fiber.Map {
	var questions []courseModels.QuizQuestion
	db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("order_index asc").Find(&questions)

	type questionView struct {
		courseModels.QuizQuestion
		Options []courseModels.QuizOption `json:"options"`
	}

	views := make([]questionView, len(questions))
	for i, question := range questions {
		var options []courseModels.QuizOption
		db.Where("question_id = ? AND is_deleted = ?", question.ID, false).
			Order("order_index asc").Find(&options)
		views[i] = questionView{QuizQuestion: question, Options: options}
	}

	return fiber.Map{"quiz": quiz, "questions": views}
}

// requireEnrollmentOrOwnership allows enrolled students and the course
// owner through
func requireEnrollmentOrOwnership(db *gorm.DB, userID, courseID uint) error {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return err
	}
	if course.CreatorID == userID {
		return nil
	}

	var enrollment courseModels.Enrollment
	return db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error
}

// GetQuiz returns a quiz with its questions and options
func GetQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if quiz.LectureID != nil {
		courseID, err := lectureCourseID(db, *quiz.LectureID)
		if err != nil || requireEnrollmentOrOwnership(db, userID, courseID) != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in the course to access quizzes!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quizWithQuestions(db, &quiz))
}

// SubmitQuiz scores submitted answers and records a new attempt
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	reqData := c.Locals("validatedSubmit").(*struct {
		Answers []struct {
			QuestionID uint `json:"question_id"`
			OptionID   uint `json:"option_id"`
		} `json:"answers"`
	})

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if quiz.LectureID != nil {
		courseID, err := lectureCourseID(db, *quiz.LectureID)
		if err != nil || requireEnrollmentOrOwnership(db, userID, courseID) != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in the course to submit quizzes!", nil)
		}
	}

	answers := make(map[uint]uint, len(reqData.Answers))
	for _, answer := range reqData.Answers {
		answers[answer.QuestionID] = answer.OptionID
	}

	attempt, results, err := ScoreQuiz(db, userID, uint(quizID), answers)
	if err != nil {
		log.Printf("Error scoring quiz %d: %v", quizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	// A good score marks the lecture as completed
	if quiz.LectureID != nil && attempt.Percentage >= 70 {
		if _, err := courseControllers.RecordLectureProgress(db, userID, *quiz.LectureID, 0, true); err != nil {
			log.Printf("Error marking lecture complete after quiz: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"attempt": attempt,
		"results": results,
	})
}

// GetQuizAttempts lists the user's attempts for a quiz, newest first
func GetQuizAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.
		Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quizID, false).
		Order("created_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}
