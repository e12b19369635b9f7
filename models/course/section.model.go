package course

import "gorm.io/gorm"

// Section is an ordered container of lectures within a course
type Section struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // 1-based, unique within course
	IsDeleted   bool   `gorm:"default:false"`
}

// Lecture is a single video/text unit within a section
type Lecture struct {
	gorm.Model
	SectionID   uint   `json:"section_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	VideoURL    string `json:"video_url"`
	VideoType   string `json:"video_type"` // youtube, vimeo, upload
	VideoID     string `json:"video_id"`   // external id for embedded videos
	Content     string `json:"content" gorm:"type:text"`
	Duration    *int   `json:"duration"` // seconds, nil when the source did not report one
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // 1-based, unique within section
	IsDeleted   bool   `gorm:"default:false"`
}
