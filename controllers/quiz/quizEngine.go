package quizController

import (
	"encoding/json"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// QuestionResult is the per-question correctness entry of an attempt
type QuestionResult struct {
	QuestionID       uint  `json:"question_id"`
	SelectedOptionID *uint `json:"selected_option_id"`
	Correct          bool  `json:"correct"`
}

// ScoreQuiz scores submitted answers against the quiz's current
// questions and appends a new attempt. Every live question counts:
// an unanswered question is incorrect, never excluded. Prior attempts
// are never modified.
func ScoreQuiz(db *gorm.DB, userID, quizID uint, answers map[uint]uint) (*courseModels.QuizAttempt, []QuestionResult, error) {
	var questions []courseModels.QuizQuestion
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).
		Order("order_index asc").Find(&questions).Error; err != nil {
		return nil, nil, err
	}

	score := 0
	results := make([]QuestionResult, 0, len(questions))

	for _, question := range questions {
		result := QuestionResult{QuestionID: question.ID}

		if optionID, answered := answers[question.ID]; answered {
			id := optionID
			result.SelectedOptionID = &id

			// The chosen option must belong to this question and be
			// the one flagged correct
			var option courseModels.QuizOption
			err := db.Where("id = ? AND question_id = ? AND is_deleted = ?", optionID, question.ID, false).
				First(&option).Error
			if err == nil && option.IsCorrect {
				result.Correct = true
				score++
			}
		}

		results = append(results, result)
	}

	total := len(questions)
	percentage := float64(0)
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	var attemptCount int64
	db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quizID, false).
		Count(&attemptCount)

	breakdown, err := json.Marshal(results)
	if err != nil {
		return nil, nil, err
	}

	attempt := courseModels.QuizAttempt{
		UserID:        userID,
		QuizID:        quizID,
		Score:         score,
		TotalCount:    total,
		Percentage:    percentage,
		Breakdown:     breakdown,
		AttemptNumber: int(attemptCount) + 1,
	}

	if err := db.Create(&attempt).Error; err != nil {
		return nil, nil, err
	}

	return &attempt, results, nil
}
