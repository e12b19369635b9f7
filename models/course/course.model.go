package course

import "gorm.io/gorm"

// Course represents a learning course owned by an instructor
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description" gorm:"type:text"`
	CreatorID    uint   `json:"creator_id" gorm:"index;not null"`
	CategoryID   *uint  `json:"category_id" gorm:"index"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     int64  `json:"duration" gorm:"default:0"` // total duration in seconds, aggregated from lectures
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
