package controllers

import (
	"testing"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEnrollUser(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, true)

	enrollment, err := EnrollUser(db, student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, enrollment.UserID)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.False(t, enrollment.EnrolledAt.IsZero())
}

func TestEnrollUserDuplicate(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, true)

	_, err := EnrollUser(db, student.ID, course.ID)
	require.NoError(t, err)

	_, err = EnrollUser(db, student.ID, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// Only the first enrollment was stored
	var count int64
	db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollUserUnpublishedCourse(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, false)

	_, err := EnrollUser(db, student.ID, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotPublished)
}

func TestEnrollUserMissingCourse(t *testing.T) {
	db := newTestDB(t)
	student := createUser(t, db, models.RoleStudent)

	_, err := EnrollUser(db, student.ID, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
