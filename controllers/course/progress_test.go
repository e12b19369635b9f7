package controllers

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLectureProgressRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, true)
	_, lectures := createSectionWithLectures(t, db, course.ID, 1)

	_, err := RecordLectureProgress(db, student.ID, lectures[0].ID, 30, false)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestRecordLectureProgressPositionMonotonic(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, true)
	_, lectures := createSectionWithLectures(t, db, course.ID, 1)
	enroll(t, db, student.ID, course.ID)

	// Forward then backward: position keeps the maximum
	progress, err := RecordLectureProgress(db, student.ID, lectures[0].ID, 120, false)
	require.NoError(t, err)
	assert.Equal(t, 120, progress.CurrentPosition)

	progress, err = RecordLectureProgress(db, student.ID, lectures[0].ID, 45, false)
	require.NoError(t, err)
	assert.Equal(t, 120, progress.CurrentPosition)

	// Backward then forward still lands on the maximum
	progress, err = RecordLectureProgress(db, student.ID, lectures[0].ID, 300, false)
	require.NoError(t, err)
	assert.Equal(t, 300, progress.CurrentPosition)
}

func TestRecordLectureProgressCompletionSticky(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, true)
	_, lectures := createSectionWithLectures(t, db, course.ID, 1)
	enroll(t, db, student.ID, course.ID)

	progress, err := RecordLectureProgress(db, student.ID, lectures[0].ID, 100, true)
	require.NoError(t, err)
	assert.True(t, progress.Completed)

	// A later report without the completed flag does not revert it
	progress, err = RecordLectureProgress(db, student.ID, lectures[0].ID, 10, false)
	require.NoError(t, err)
	assert.True(t, progress.Completed)
}

func TestCourseProgressPercent(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, true)
	_, lectures := createSectionWithLectures(t, db, course.ID, 4)
	enroll(t, db, student.ID, course.ID)

	percent, err := CourseProgressPercent(db, student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, percent)

	_, err = RecordLectureProgress(db, student.ID, lectures[0].ID, 0, true)
	require.NoError(t, err)

	percent, err = CourseProgressPercent(db, student.ID, course.ID)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, percent, 0.001)

	for _, lecture := range lectures[1:] {
		_, err = RecordLectureProgress(db, student.ID, lecture.ID, 0, true)
		require.NoError(t, err)
	}

	percent, err = CourseProgressPercent(db, student.ID, course.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, percent, 0.001)
}

func TestCourseProgressPercentNoLectures(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	course := createCourse(t, db, instructor.ID, true)
	enroll(t, db, student.ID, course.ID)

	percent, err := CourseProgressPercent(db, student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, percent)
}
