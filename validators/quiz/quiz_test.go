package quizValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuizBounds(t *testing.T) {
	app := fiber.New()
	app.Post("/generate", GenerateQuiz(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"zero falls through to the default", `{"num_questions":0}`, fiber.StatusOK},
		{"upper bound accepted", `{"num_questions":20}`, fiber.StatusOK},
		{"over the limit rejected", `{"num_questions":25}`, fiber.StatusBadRequest},
		{"negative rejected", `{"num_questions":-1}`, fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/generate", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
