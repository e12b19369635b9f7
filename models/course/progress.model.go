package course

import (
	"time"

	"gorm.io/gorm"
)

// LectureProgress records per-user watch state for a lecture.
// CurrentPosition only ever grows and Completed is true-sticky.
type LectureProgress struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	LectureID       uint      `json:"lecture_id" gorm:"index;not null"`
	CurrentPosition int       `json:"current_position" gorm:"default:0"` // seconds watched
	Completed       bool      `json:"completed" gorm:"default:false"`
	LastWatched     time.Time `json:"last_watched"`
	IsDeleted       bool      `gorm:"default:false"`
}

// UserProgress records per-user completion for a lesson in the
// module/lesson hierarchy. Same sticky-completion rule as
// LectureProgress; the two tables are kept separate on purpose.
type UserProgress struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	ModuleID     uint      `json:"module_id" gorm:"index;not null"`
	LessonID     uint      `json:"lesson_id" gorm:"index;not null"`
	Completed    bool      `json:"completed" gorm:"default:false"`
	LastAccessed time.Time `json:"last_accessed"`
	IsDeleted    bool      `gorm:"default:false"`
}
