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

// EnrollUser creates an enrollment for the user in the course. The
// course must exist, be published and not soft-deleted; a duplicate
// enrollment is a conflict.
func EnrollUser(db *gorm.DB, userID, courseID uint) (*courseModels.Enrollment, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, err
	}

	if !course.IsPublished {
		return nil, ErrCourseNotPublished
	}

	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := courseModels.Enrollment{
		UserID:       userID,
		CourseID:     courseID,
		EnrolledAt:   time.Now(),
		LastAccessed: time.Now(),
	}

	if err := db.Create(&enrollment).Error; err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// EnrollInCourse enrolls the authenticated user in a published course
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	enrollment, err := EnrollUser(database.Database.Db, userID, uint(courseID))
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
		case errors.Is(err, ErrCourseNotPublished):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is not available for enrollment!", nil)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		default:
			log.Printf("Error enrolling user %d in course %d: %v", userID, courseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}
	}

	// Notification mail is best-effort
	var course courseModels.Course
	if err := database.Database.Db.First(&course, enrollment.CourseID).Error; err == nil {
		go utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the user's enrollments with their progress
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type enrollmentView struct {
		courseModels.Enrollment
		Course   courseModels.Course `json:"course"`
		Progress float64             `json:"progress"`
	}

	views := make([]enrollmentView, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).First(&course).Error; err != nil {
			continue
		}

		progress, err := CourseProgressPercent(database.Database.Db, userID, course.ID)
		if err != nil {
			progress = 0
		}

		views = append(views, enrollmentView{Enrollment: enrollment, Course: course, Progress: progress})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", views)
}
