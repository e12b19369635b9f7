package middleware

import (
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// InstructorOnly ensures the authenticated user holds the instructor role
func InstructorOnly(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !user.IsInstructor() {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Instructor only.", nil)
	}

	return c.Next()
}

// CanManageCourse is the authorization predicate for instructor-scoped
// course operations: the user must be an instructor and own the course.
func CanManageCourse(user *models.User, course *courseModels.Course) bool {
	if user == nil || course == nil {
		return false
	}
	return user.IsInstructor() && course.CreatorID == user.ID
}
