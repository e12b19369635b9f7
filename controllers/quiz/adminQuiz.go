package quizController

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// quizOwnedBy checks that the quiz was created by the instructor
func quizOwnedBy(db *gorm.DB, quizID int, userID uint) (*courseModels.Quiz, bool) {
	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return nil, false
	}
	return &quiz, quiz.CreatedBy == userID
}

// AddQuizQuestion appends a question with its options to a quiz.
// Exactly one option must be flagged correct.
func AddQuizQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	quiz, owned := quizOwnedBy(database.Database.Db, quizID, userID)
	if quiz == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}
	if !owned {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not manage this quiz!", nil)
	}

	reqData := c.Locals("validatedQuestion").(*struct {
		Question string `json:"question"`
		Options  []struct {
			Text      string `json:"text"`
			IsCorrect bool   `json:"is_correct"`
		} `json:"options"`
	})

	var maxOrder int
	database.Database.Db.Model(&courseModels.QuizQuestion{}).
		Where("quiz_id = ? AND is_deleted = ?", quizID, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	var question courseModels.QuizQuestion
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		question = courseModels.QuizQuestion{
			QuizID:     uint(quizID),
			Question:   reqData.Question,
			OrderIndex: maxOrder + 1,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}

		for i, opt := range reqData.Options {
			option := courseModels.QuizOption{
				QuestionID: question.ID,
				OptionText: opt.Text,
				IsCorrect:  opt.IsCorrect,
				OrderIndex: i + 1,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}

// UpdateQuiz updates quiz title/description
func UpdateQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	quiz, owned := quizOwnedBy(database.Database.Db, quizID, userID)
	if quiz == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}
	if !owned {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not manage this quiz!", nil)
	}

	reqData := c.Locals("validatedQuizMeta").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})

	if reqData.Title != "" {
		quiz.Title = reqData.Title
	}
	if reqData.Description != "" {
		quiz.Description = reqData.Description
	}

	if err := database.Database.Db.Save(quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// DeleteQuizQuestion soft deletes a question with its options
func DeleteQuizQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	questionID := c.Locals("questionID").(int)

	db := database.Database.Db

	var question courseModels.QuizQuestion
	if err := db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	quiz, owned := quizOwnedBy(db, int(question.QuizID), userID)
	if quiz == nil || !owned {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not manage this quiz!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&courseModels.QuizOption{}).Where("question_id = ?", question.ID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&question).Update("is_deleted", true).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
