package controllers

import (
	"errors"
	"time"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetModule returns a module with its ordered lessons and quizzes
func GetModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var lessons []courseModels.Lesson
	database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Order("order_index asc").Find(&lessons)

	var quizzes []courseModels.Quiz
	database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Find(&quizzes)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", fiber.Map{
		"module":  module,
		"lessons": lessons,
		"quizzes": quizzes,
	})
}

// RecordLessonProgress upserts lesson completion for (user, lesson)
// with the same sticky rule as lecture progress. Requires enrollment in
// the owning course.
func RecordLessonProgress(db *gorm.DB, userID, lessonID uint, completed bool) (*courseModels.UserProgress, error) {
	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return nil, err
	}

	var module courseModels.Module
	if err := db.First(&module, lesson.ModuleID).Error; err != nil {
		return nil, err
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, module.CourseID, false).First(&enrollment).Error; err != nil {
		return nil, ErrNotEnrolled
	}

	var progress courseModels.UserProgress
	err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = courseModels.UserProgress{
			UserID:   userID,
			ModuleID: lesson.ModuleID,
			LessonID: lessonID,
		}
	} else if err != nil {
		return nil, err
	}

	if completed {
		progress.Completed = true
	}
	progress.LastAccessed = time.Now()

	if err := db.Save(&progress).Error; err != nil {
		return nil, err
	}

	return &progress, nil
}

// ModuleProgressPercent returns the user's completion percentage across
// a module's lessons, 0 when the module has no lessons
func ModuleProgressPercent(db *gorm.DB, userID, moduleID uint) (float64, error) {
	var total int64
	if err := db.Model(&courseModels.Lesson{}).
		Where("module_id = ? AND is_deleted = ?", moduleID, false).Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	var completed int64
	err := db.Model(&courseModels.UserProgress{}).
		Joins("JOIN lessons ON lessons.id = user_progresses.lesson_id").
		Where("user_progresses.module_id = ? AND user_progresses.user_id = ? AND user_progresses.completed = ? AND lessons.is_deleted = ?",
			moduleID, userID, true, false).
		Count(&completed).Error
	if err != nil {
		return 0, err
	}

	return float64(completed) / float64(total) * 100, nil
}

// CompleteLesson marks a lesson complete for the authenticated user
func CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	progress, err := RecordLessonProgress(database.Database.Db, userID, uint(lessonID), true)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	moduleProgress, _ := ModuleProgressPercent(database.Database.Db, userID, progress.ModuleID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed!", fiber.Map{
		"progress":        progress,
		"module_progress": moduleProgress,
	})
}
