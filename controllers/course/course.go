package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses with pagination
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page, limit := 1, 20
	if ok {
		page = *reqData.Page
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_published = ? AND is_deleted = ?", true, false)

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns a course with its ordered sections and
// lectures, the caller's enrollment state and progress
func GetCourseDetails(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Unpublished courses are only visible to their owner
	if !course.IsPublished && course.CreatorID != userID {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var sections []courseModels.Section
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&sections)

	type sectionView struct {
		courseModels.Section
		Lectures []courseModels.Lecture `json:"lectures"`
	}

	sectionViews := make([]sectionView, len(sections))
	for i, section := range sections {
		var lectures []courseModels.Lecture
		database.Database.Db.Where("section_id = ? AND is_deleted = ?", section.ID, false).
			Order("order_index asc").Find(&lectures)
		sectionViews[i] = sectionView{Section: section, Lectures: lectures}
	}

	isEnrolled := false
	progress := float64(0)
	if userID != 0 {
		var enrollment courseModels.Enrollment
		if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err == nil {
			isEnrolled = true
			progress, _ = CourseProgressPercent(database.Database.Db, userID, uint(courseID))
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"sections":    sectionViews,
		"is_enrolled": isEnrolled,
		"progress":    progress,
	})
}
