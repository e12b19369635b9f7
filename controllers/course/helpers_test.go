package controllers

import (
	"fmt"
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

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

var userSeq int

func createUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	userSeq++
	user := models.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCourse(t *testing.T, db *gorm.DB, creatorID uint, published bool) *courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:       "Test Course",
		Description: "A course used in tests",
		CreatorID:   creatorID,
		IsPublished: published,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

// createSectionWithLectures seeds one section holding n lectures
func createSectionWithLectures(t *testing.T, db *gorm.DB, courseID uint, n int) (*courseModels.Section, []courseModels.Lecture) {
	t.Helper()

	section := courseModels.Section{
		CourseID:   courseID,
		Title:      "Section",
		OrderIndex: 1,
	}
	require.NoError(t, db.Create(&section).Error)

	lectures := make([]courseModels.Lecture, 0, n)
	for i := 0; i < n; i++ {
		lecture := courseModels.Lecture{
			SectionID:  section.ID,
			Title:      "Lecture",
			OrderIndex: i + 1,
		}
		require.NoError(t, db.Create(&lecture).Error)
		lectures = append(lectures, lecture)
	}
	return &section, lectures
}

func enroll(t *testing.T, db *gorm.DB, userID, courseID uint) {
	t.Helper()
	_, err := EnrollUser(db, userID, courseID)
	require.NoError(t, err)
}
