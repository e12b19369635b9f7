package models

import "gorm.io/gorm"

// Media represents a file uploaded by an instructor
type Media struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	FileName  string `json:"file_name" gorm:"not null"`
	FilePath  string `json:"file_path" gorm:"not null"`
	FileType  string `json:"file_type"` // image, video, document
	FileSize  int64  `json:"file_size"` // size in bytes
	IsDeleted bool   `gorm:"default:false"`
}
