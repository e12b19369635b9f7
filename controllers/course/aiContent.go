package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadAccessibleLecture returns a lecture the user may read, meaning
// they are enrolled in its course or they own the course.
func loadAccessibleLecture(db *gorm.DB, userID uint, lectureID int) (*courseModels.Lecture, error) {
	var lecture courseModels.Lecture
	if err := db.Where("id = ? AND is_deleted = ?", lectureID, false).First(&lecture).Error; err != nil {
		return nil, err
	}

	var section courseModels.Section
	if err := db.First(&section, lecture.SectionID).Error; err != nil {
		return nil, err
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", section.CourseID, false).First(&course).Error; err != nil {
		return nil, err
	}
	if course.CreatorID == userID {
		return &lecture, nil
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).
		First(&enrollment).Error; err != nil {
		return nil, ErrNotEnrolled
	}
	return &lecture, nil
}

// lectureSourceText picks the text the generators work from
func lectureSourceText(lecture *courseModels.Lecture) string {
	if lecture.Content != "" {
		return lecture.Content
	}
	return lecture.Description
}

// SummarizeLecture returns an AI generated summary of the lecture
// content. The generation chain always produces output, falling back
// to the offline summarizer when no backend is reachable.
func SummarizeLecture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lectureID := c.Locals("lectureID").(int)

	lecture, err := loadAccessibleLecture(database.Database.Db, userID, lectureID)
	if err == ErrNotEnrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in the course!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	source := lectureSourceText(lecture)
	if source == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lecture has no content to summarize!", nil)
	}

	summary := utils.SummarizeContent(source)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary generated successfully!", fiber.Map{
		"lecture_id": lecture.ID,
		"title":      lecture.Title,
		"summary":    summary,
	})
}

// GenerateLectureNotes returns AI generated study notes for a lecture
func GenerateLectureNotes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lectureID := c.Locals("lectureID").(int)

	lecture, err := loadAccessibleLecture(database.Database.Db, userID, lectureID)
	if err == ErrNotEnrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in the course!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	source := lectureSourceText(lecture)
	if source == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lecture has no content for notes!", nil)
	}

	notes := utils.GenerateStudyNotes(source)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study notes generated successfully!", fiber.Map{
		"lecture_id": lecture.ID,
		"title":      lecture.Title,
		"notes":      notes,
	})
}
