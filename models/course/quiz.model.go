package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz belongs to either a lecture or a module (exactly one of the two)
type Quiz struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	LectureID   *uint  `json:"lecture_id" gorm:"index"`
	ModuleID    *uint  `json:"module_id" gorm:"index"`
	CreatedBy   uint   `json:"created_by" gorm:"index"`
	IsDeleted   bool   `gorm:"default:false"`
}

// QuizQuestion owns ordered options; exactly one option per question
// is marked correct.
type QuizQuestion struct {
	gorm.Model
	QuizID     uint   `json:"quiz_id" gorm:"index;not null"`
	Question   string `json:"question" gorm:"type:text;not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

type QuizOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text" gorm:"type:text;not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizAttempt is append-only: prior attempts for the same (user, quiz)
// are never overwritten. Breakdown holds the per-question correctness
// list as JSON.
type QuizAttempt struct {
	gorm.Model
	UserID        uint           `json:"user_id" gorm:"index;not null"`
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	Score         int            `json:"score"`
	TotalCount    int            `json:"total_count"`
	Percentage    float64        `json:"percentage"`
	Breakdown     datatypes.JSON `json:"breakdown"`
	AttemptNumber int            `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool           `gorm:"default:false"`
}
