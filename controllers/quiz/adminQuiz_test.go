package quizController

import (
	"net/http/httptest"
	"strings"
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	quizValidator "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedInstructor(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := models.User{
		Name:     "Quiz Owner",
		Email:    "owner@example.com",
		Password: "hashed",
		Role:     models.RoleInstructor,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// quizAuthoringApp wires UpdateQuiz behind a stub auth middleware
// acting as the given user
func quizAuthoringApp(db *gorm.DB, userID uint) *fiber.App {
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	auth := func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}

	app.Patch("/quiz/:id", auth, quizValidator.QuizID(), quizValidator.UpdateQuiz(), UpdateQuiz)
	return app
}

func TestUpdateQuizMetadata(t *testing.T) {
	db := newTestDB(t)
	owner := seedInstructor(t, db)
	quiz, _, _, _ := seedQuiz(t, db, 1)

	app := quizAuthoringApp(db, owner.ID)

	req := httptest.NewRequest("PATCH", "/quiz/1", strings.NewReader(`{"title":"Renamed Quiz","description":"Updated description"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated courseModels.Quiz
	require.NoError(t, db.First(&updated, quiz.ID).Error)
	assert.Equal(t, "Renamed Quiz", updated.Title)
	assert.Equal(t, "Updated description", updated.Description)
}

func TestUpdateQuizRejectsNonOwner(t *testing.T) {
	db := newTestDB(t)
	seedInstructor(t, db)
	quiz, _, _, _ := seedQuiz(t, db, 1)
	intruder := seedUser(t, db)

	app := quizAuthoringApp(db, intruder.ID)

	req := httptest.NewRequest("PATCH", "/quiz/1", strings.NewReader(`{"title":"Hijacked"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var unchanged courseModels.Quiz
	require.NoError(t, db.First(&unchanged, quiz.ID).Error)
	assert.Equal(t, "Test Quiz", unchanged.Title)
}
