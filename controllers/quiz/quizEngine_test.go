package quizController

import (
	"fmt"
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := models.User{
		Name:     "Quiz Taker",
		Email:    "taker@example.com",
		Password: "hashed",
		Role:     models.RoleStudent,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// seedQuiz creates a quiz of n questions, each with one correct and
// one incorrect option. Returns the quiz and, per question, the
// correct and wrong option IDs.
func seedQuiz(t *testing.T, db *gorm.DB, n int) (*courseModels.Quiz, []courseModels.QuizQuestion, map[uint]uint, map[uint]uint) {
	t.Helper()

	quiz := courseModels.Quiz{Title: "Test Quiz", CreatedBy: 1}
	require.NoError(t, db.Create(&quiz).Error)

	questions := make([]courseModels.QuizQuestion, 0, n)
	correctByQuestion := make(map[uint]uint, n)
	wrongByQuestion := make(map[uint]uint, n)

	for i := 0; i < n; i++ {
		question := courseModels.QuizQuestion{
			QuizID:     quiz.ID,
			Question:   fmt.Sprintf("Question %d", i+1),
			OrderIndex: i + 1,
		}
		require.NoError(t, db.Create(&question).Error)

		correct := courseModels.QuizOption{QuestionID: question.ID, OptionText: "right", IsCorrect: true, OrderIndex: 1}
		wrong := courseModels.QuizOption{QuestionID: question.ID, OptionText: "wrong", OrderIndex: 2}
		require.NoError(t, db.Create(&correct).Error)
		require.NoError(t, db.Create(&wrong).Error)

		questions = append(questions, question)
		correctByQuestion[question.ID] = correct.ID
		wrongByQuestion[question.ID] = wrong.ID
	}

	return &quiz, questions, correctByQuestion, wrongByQuestion
}

func TestScoreQuizAllCorrect(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	quiz, _, correct, _ := seedQuiz(t, db, 4)

	attempt, results, err := ScoreQuiz(db, user.ID, quiz.ID, correct)
	require.NoError(t, err)

	assert.Equal(t, 4, attempt.Score)
	assert.Equal(t, 4, attempt.TotalCount)
	assert.InDelta(t, 100.0, attempt.Percentage, 0.001)
	assert.Equal(t, 1, attempt.AttemptNumber)

	require.Len(t, results, 4)
	for _, r := range results {
		assert.True(t, r.Correct)
		assert.NotNil(t, r.SelectedOptionID)
	}
}

func TestScoreQuizUnansweredCountsAsIncorrect(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	quiz, questions, correct, _ := seedQuiz(t, db, 3)

	// Answer only the first question
	answers := map[uint]uint{questions[0].ID: correct[questions[0].ID]}

	attempt, results, err := ScoreQuiz(db, user.ID, quiz.ID, answers)
	require.NoError(t, err)

	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 3, attempt.TotalCount)
	assert.InDelta(t, 100.0/3, attempt.Percentage, 0.001)

	require.Len(t, results, 3)
	assert.True(t, results[0].Correct)
	assert.False(t, results[1].Correct)
	assert.Nil(t, results[1].SelectedOptionID)
}

func TestScoreQuizWrongOptions(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	quiz, _, _, wrong := seedQuiz(t, db, 2)

	attempt, _, err := ScoreQuiz(db, user.ID, quiz.ID, wrong)
	require.NoError(t, err)

	assert.Equal(t, 0, attempt.Score)
	assert.InDelta(t, 0.0, attempt.Percentage, 0.001)
}

func TestScoreQuizForeignOptionRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	quiz, questions, correct, _ := seedQuiz(t, db, 2)

	// Answer question one with question two's correct option
	answers := map[uint]uint{questions[0].ID: correct[questions[1].ID]}

	attempt, results, err := ScoreQuiz(db, user.ID, quiz.ID, answers)
	require.NoError(t, err)

	assert.Equal(t, 0, attempt.Score)
	assert.False(t, results[0].Correct)
}

func TestScoreQuizAttemptsAppendOnly(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	quiz, _, correct, wrong := seedQuiz(t, db, 2)

	first, _, err := ScoreQuiz(db, user.ID, quiz.ID, wrong)
	require.NoError(t, err)
	second, _, err := ScoreQuiz(db, user.ID, quiz.ID, correct)
	require.NoError(t, err)

	assert.Equal(t, 1, first.AttemptNumber)
	assert.Equal(t, 2, second.AttemptNumber)

	// The first attempt is untouched
	var stored courseModels.QuizAttempt
	require.NoError(t, db.First(&stored, first.ID).Error)
	assert.Equal(t, 0, stored.Score)

	var count int64
	db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).
		Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestScoreQuizEmptyQuiz(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	quiz := courseModels.Quiz{Title: "Empty", CreatedBy: 1}
	require.NoError(t, db.Create(&quiz).Error)

	attempt, results, err := ScoreQuiz(db, user.ID, quiz.ID, map[uint]uint{})
	require.NoError(t, err)

	assert.Equal(t, 0, attempt.TotalCount)
	assert.InDelta(t, 0.0, attempt.Percentage, 0.001)
	assert.Empty(t, results)
}
