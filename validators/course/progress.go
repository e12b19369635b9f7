package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress validates a lecture progress report
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LectureID       uint `json:"lecture_id"`
			CurrentPosition int  `json:"current_position"`
			Completed       bool `json:"completed"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LectureID == 0 {
			errors["lecture_id"] = "Lecture ID is required!"
		}
		if reqData.CurrentPosition < 0 {
			errors["current_position"] = "Position cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
