package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// idParam parses a positive integer route parameter into c.Locals
func idParam(param, localKey, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		}

		c.Locals(localKey, id)
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return idParam("id", "courseID", "Course ID")
}

func SectionID() fiber.Handler {
	return idParam("sectionId", "sectionID", "Section ID")
}

func LectureID() fiber.Handler {
	return idParam("lectureId", "lectureID", "Lecture ID")
}

func ModuleID() fiber.Handler {
	return idParam("id", "moduleID", "Module ID")
}

func LessonID() fiber.Handler {
	return idParam("lessonId", "lessonID", "Lesson ID")
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			CategoryID   *uint  `json:"category_id"`
			ThumbnailURL string `json:"thumbnail_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware; all fields optional
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			CategoryID   *uint  `json:"category_id"`
			ThumbnailURL string `json:"thumbnail_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != "" && len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// PublishCourse validator middleware
func PublishCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Publish bool `json:"publish"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedPublish", reqData)
		return c.Next()
	}
}

// CourseList validator middleware for paginated listings
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		// Apply defaults
		if reqData.Page == nil || *reqData.Page < 1 {
			page := 1
			reqData.Page = &page
		}
		if reqData.Limit == nil || *reqData.Limit < 1 || *reqData.Limit > 100 {
			limit := 20
			reqData.Limit = &limit
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
