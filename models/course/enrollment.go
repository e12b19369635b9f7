package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course. The (user, course)
// pair is unique among non-deleted rows.
type Enrollment struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	EnrolledAt   time.Time `json:"enrolled_at"`
	LastAccessed time.Time `json:"last_accessed"`
	IsDeleted    bool      `gorm:"default:false"`
}
