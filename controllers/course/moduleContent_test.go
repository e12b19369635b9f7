package controllers

import (
	"testing"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createModuleWithLessons(t *testing.T, db *gorm.DB, courseID uint, n int) (*courseModels.Module, []courseModels.Lesson) {
	t.Helper()

	module := courseModels.Module{
		CourseID:   courseID,
		Title:      "Module",
		OrderIndex: 1,
	}
	require.NoError(t, db.Create(&module).Error)

	lessons := make([]courseModels.Lesson, 0, n)
	for i := 0; i < n; i++ {
		lesson := courseModels.Lesson{
			ModuleID:   module.ID,
			Title:      "Lesson",
			Content:    "lesson text",
			OrderIndex: i + 1,
		}
		require.NoError(t, db.Create(&lesson).Error)
		lessons = append(lessons, lesson)
	}
	return &module, lessons
}

func TestRecordLessonProgressRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, true)
	_, lessons := createModuleWithLessons(t, db, course.ID, 1)

	_, err := RecordLessonProgress(db, student.ID, lessons[0].ID, true)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestRecordLessonProgressSticky(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, true)
	_, lessons := createModuleWithLessons(t, db, course.ID, 1)
	enroll(t, db, student.ID, course.ID)

	progress, err := RecordLessonProgress(db, student.ID, lessons[0].ID, true)
	require.NoError(t, err)
	assert.True(t, progress.Completed)

	progress, err = RecordLessonProgress(db, student.ID, lessons[0].ID, false)
	require.NoError(t, err)
	assert.True(t, progress.Completed)
}

func TestModuleProgressPercent(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, true)
	module, lessons := createModuleWithLessons(t, db, course.ID, 2)
	enroll(t, db, student.ID, course.ID)

	percent, err := ModuleProgressPercent(db, student.ID, module.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, percent)

	_, err = RecordLessonProgress(db, student.ID, lessons[0].ID, true)
	require.NoError(t, err)

	percent, err = ModuleProgressPercent(db, student.ID, module.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, percent, 0.001)

	_, err = RecordLessonProgress(db, student.ID, lessons[1].ID, true)
	require.NoError(t, err)

	percent, err = ModuleProgressPercent(db, student.ID, module.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, percent, 0.001)
}
