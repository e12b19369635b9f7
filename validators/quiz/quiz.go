package quizValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

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

func QuizID() fiber.Handler {
	return idParam("id", "quizID", "Quiz ID")
}

func QuestionID() fiber.Handler {
	return idParam("questionId", "questionID", "Question ID")
}

func LectureID() fiber.Handler {
	return idParam("lectureId", "lectureID", "Lecture ID")
}

// GenerateQuiz validates quiz generation requests
func GenerateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			NumQuestions int  `json:"num_questions"`
			Regenerate   bool `json:"regenerate"`
		})
		if err := c.BodyParser(reqData); err != nil {
			// Empty body is fine; defaults apply
			reqData.NumQuestions = 0
			reqData.Regenerate = false
		}

		if reqData.NumQuestions < 0 || reqData.NumQuestions > 20 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Number of questions cannot exceed 20!", nil)
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

// UpdateQuiz validates quiz metadata edits
func UpdateQuiz() fiber.Handler {
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
		if title != "" && len(title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizMeta", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates quiz answer submissions
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers []struct {
				QuestionID uint `json:"question_id"`
				OptionID   uint `json:"option_id"`
			} `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		for _, answer := range reqData.Answers {
			if answer.QuestionID == 0 || answer.OptionID == 0 {
				errors["answers"] = "Each answer needs a question ID and an option ID!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmit", reqData)
		return c.Next()
	}
}

// AddQuestion validates a manually authored quiz question
func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Question string `json:"question"`
			Options  []struct {
				Text      string `json:"text"`
				IsCorrect bool   `json:"is_correct"`
			} `json:"options"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question text is required!"
		}

		if len(reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		} else {
			correct := 0
			for _, opt := range reqData.Options {
				if strings.TrimSpace(opt.Text) == "" {
					errors["options"] = "Option text cannot be empty!"
				}
				if opt.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				errors["options"] = "Exactly one option must be marked correct!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}
