package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SectionBody validates section create and update payloads
func SectionBody(requireTitle bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		title := strings.TrimSpace(reqData.Title)
		if requireTitle && title == "" {
			errors["title"] = "Title is required!"
		}
		if title != "" && len(title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// LectureBody validates lecture create and update payloads
func LectureBody(requireTitle bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			VideoURL    string `json:"video_url"`
			Content     string `json:"content"`
			Duration    *int   `json:"duration"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		title := strings.TrimSpace(reqData.Title)
		if requireTitle && title == "" {
			errors["title"] = "Title is required!"
		}
		if title != "" && len(title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Duration != nil && *reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLecture", reqData)
		return c.Next()
	}
}

// Reorder validates a full ordering list for sections or lectures
func Reorder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OrderedIDs []uint `json:"ordered_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.OrderedIDs) == 0 {
			errors["ordered_ids"] = "Ordered ID list is required!"
		}

		// Reject duplicate IDs
		seen := make(map[uint]bool, len(reqData.OrderedIDs))
		for _, id := range reqData.OrderedIDs {
			if seen[id] {
				errors["ordered_ids"] = "Ordered ID list contains duplicates!"
				break
			}
			seen[id] = true
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}
