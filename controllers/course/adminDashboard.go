package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetInstructorDashboard returns aggregate stats for the instructor's
// courses: totals plus enrollments in the current month and week
func GetInstructorDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courseIDs []uint
	db.Model(&courseModels.Course{}).
		Where("creator_id = ? AND is_deleted = ?", userID, false).
		Pluck("id", &courseIDs)

	var totalCourses, publishedCourses int64
	db.Model(&courseModels.Course{}).
		Where("creator_id = ? AND is_deleted = ?", userID, false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).
		Where("creator_id = ? AND is_deleted = ? AND is_published = ?", userID, false, true).Count(&publishedCourses)

	var totalEnrollments, monthEnrollments, weekEnrollments int64
	if len(courseIDs) > 0 {
		db.Model(&courseModels.Enrollment{}).
			Where("course_id IN ? AND is_deleted = ?", courseIDs, false).
			Count(&totalEnrollments)
		db.Model(&courseModels.Enrollment{}).
			Where("course_id IN ? AND is_deleted = ? AND created_at >= ?", courseIDs, false, now.BeginningOfMonth()).
			Count(&monthEnrollments)
		db.Model(&courseModels.Enrollment{}).
			Where("course_id IN ? AND is_deleted = ? AND created_at >= ?", courseIDs, false, now.BeginningOfWeek()).
			Count(&weekEnrollments)
	}

	// Completion counts: enrolled students who finished every lecture
	completedStudents := 0
	for _, courseID := range courseIDs {
		var enrollments []courseModels.Enrollment
		db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&enrollments)
		for _, enrollment := range enrollments {
			progress, err := CourseProgressPercent(db, enrollment.UserID, courseID)
			if err == nil && progress >= 100 {
				completedStudents++
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_courses":      totalCourses,
		"published_courses":  publishedCourses,
		"total_enrollments":  totalEnrollments,
		"month_enrollments":  monthEnrollments,
		"week_enrollments":   weekEnrollments,
		"completed_students": completedStudents,
	})
}
