package controllers

import (
	"errors"
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RecordLectureProgress upserts the watch state for (user, lecture).
// The stored position is max(existing, incoming) and completion is
// true-sticky: once marked complete it never reverts. Requires an
// enrollment in the owning course.
func RecordLectureProgress(db *gorm.DB, userID, lectureID uint, position int, completed bool) (*courseModels.LectureProgress, error) {
	var lecture courseModels.Lecture
	if err := db.Where("id = ? AND is_deleted = ?", lectureID, false).First(&lecture).Error; err != nil {
		return nil, err
	}

	var section courseModels.Section
	if err := db.First(&section, lecture.SectionID).Error; err != nil {
		return nil, err
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, section.CourseID, false).First(&enrollment).Error; err != nil {
		return nil, ErrNotEnrolled
	}

	var progress courseModels.LectureProgress
	err := db.Where("user_id = ? AND lecture_id = ?", userID, lectureID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = courseModels.LectureProgress{
			UserID:    userID,
			LectureID: lectureID,
		}
	} else if err != nil {
		return nil, err
	}

	// Watch position only ever grows
	if position > progress.CurrentPosition {
		progress.CurrentPosition = position
	}
	// Completion is sticky
	if completed {
		progress.Completed = true
	}
	progress.LastWatched = time.Now()

	if err := db.Save(&progress).Error; err != nil {
		return nil, err
	}

	// Keep enrollment access time fresh
	db.Model(&enrollment).Update("last_accessed", time.Now())

	return &progress, nil
}

// CourseProgressPercent returns the user's completion percentage across
// all lectures of a course, 0 when the course has no lectures
func CourseProgressPercent(db *gorm.DB, userID, courseID uint) (float64, error) {
	var total int64
	err := db.Model(&courseModels.Lecture{}).
		Joins("JOIN sections ON sections.id = lectures.section_id").
		Where("sections.course_id = ? AND sections.is_deleted = ? AND lectures.is_deleted = ?", courseID, false, false).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	var completed int64
	err = db.Model(&courseModels.LectureProgress{}).
		Joins("JOIN lectures ON lectures.id = lecture_progresses.lecture_id").
		Joins("JOIN sections ON sections.id = lectures.section_id").
		Where("sections.course_id = ? AND lecture_progresses.user_id = ? AND lecture_progresses.completed = ? AND lectures.is_deleted = ?",
			courseID, userID, true, false).
		Count(&completed).Error
	if err != nil {
		return 0, err
	}

	return float64(completed) / float64(total) * 100, nil
}

// UpdateProgress records the authenticated user's watch position for a lecture
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedProgress").(*struct {
		LectureID       uint `json:"lecture_id"`
		CurrentPosition int  `json:"current_position"`
		Completed       bool `json:"completed"`
	})

	progress, err := RecordLectureProgress(database.Database.Db, userID, reqData.LectureID, reqData.CurrentPosition, reqData.Completed)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
		default:
			log.Printf("Error updating progress: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	// Completing the last lecture completes the course
	if progress.Completed {
		notifyIfCourseCompleted(userID, reqData.LectureID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", progress)
}

// notifyIfCourseCompleted sends a completion email when every lecture
// of the lecture's course is now complete
func notifyIfCourseCompleted(userID, lectureID uint) {
	db := database.Database.Db

	var lecture courseModels.Lecture
	if err := db.First(&lecture, lectureID).Error; err != nil {
		return
	}
	var section courseModels.Section
	if err := db.First(&section, lecture.SectionID).Error; err != nil {
		return
	}

	progress, err := CourseProgressPercent(db, userID, section.CourseID)
	if err != nil || progress < 100 {
		return
	}

	var user models.User
	var course courseModels.Course
	if db.First(&user, userID).Error == nil && db.First(&course, section.CourseID).Error == nil {
		go utils.SendCompletionEmail(user.Email, user.Name, course.Title)
	}
}

// GetCourseProgress returns the user's progress breakdown for a course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	progress, err := CourseProgressPercent(database.Database.Db, userID, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	// Per-section breakdown
	var sections []courseModels.Section
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&sections)

	type sectionProgress struct {
		SectionID         uint    `json:"section_id"`
		SectionTitle      string  `json:"section_title"`
		TotalLectures     int64   `json:"total_lectures"`
		CompletedLectures int64   `json:"completed_lectures"`
		Progress          float64 `json:"progress"`
	}

	breakdown := make([]sectionProgress, len(sections))
	for i, section := range sections {
		var total, completed int64

		database.Database.Db.Model(&courseModels.Lecture{}).
			Where("section_id = ? AND is_deleted = ?", section.ID, false).Count(&total)
		database.Database.Db.Model(&courseModels.LectureProgress{}).
			Joins("JOIN lectures ON lectures.id = lecture_progresses.lecture_id").
			Where("lectures.section_id = ? AND lecture_progresses.user_id = ? AND lecture_progresses.completed = ?", section.ID, userID, true).
			Count(&completed)

		pct := float64(0)
		if total > 0 {
			pct = float64(completed) / float64(total) * 100
		}

		breakdown[i] = sectionProgress{
			SectionID:         section.ID,
			SectionTitle:      section.Title,
			TotalLectures:     total,
			CompletedLectures: completed,
			Progress:          pct,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":         progress,
		"section_progress": breakdown,
	})
}
