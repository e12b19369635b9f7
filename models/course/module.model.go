package course

import "gorm.io/gorm"

// Module is the alternate content hierarchy: an ordered container of
// lessons within a course. It exists alongside Section/Lecture and the
// two are tracked by separate progress tables (UserProgress vs
// LectureProgress).
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // 1-based, unique within course
	IsDeleted   bool   `gorm:"default:false"`
}

// Lesson is a text content unit within a module
type Lesson struct {
	gorm.Model
	ModuleID   uint   `json:"module_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // 1-based, unique within module
	IsDeleted  bool   `gorm:"default:false"`
}
