package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
)

type User struct {
	gorm.Model
	Name         string `gorm:"default:''"`
	Email        string `gorm:"unique;not null"`
	Password     string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:'STUDENT'"` // STUDENT or INSTRUCTOR
	ProfileImage string `gorm:"default:''"`
	Bio          string `gorm:"type:text"`
	LastLogin    *time.Time
	IsDeleted    bool `gorm:"default:false"`
}

// IsInstructor reports whether the user holds the instructor role
func (u *User) IsInstructor() bool {
	return u.Role == RoleInstructor
}
