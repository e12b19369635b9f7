package controllers

import (
	"testing"

	courseModels "lms/models/course"
	"lms/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playlistItems(n int) []utils.PlaylistItem {
	items := make([]utils.PlaylistItem, 0, n)
	for i := 0; i < n; i++ {
		d := 60 * (i + 1)
		items = append(items, utils.PlaylistItem{
			VideoID:     string(rune('a'+i)) + "0000000000",
			Title:       "Video " + string(rune('A'+i)),
			Description: "About video " + string(rune('A'+i)),
			Duration:    &d,
		})
	}
	return items
}

func TestMaterializeCourseCreatesOrderedSections(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "INSTRUCTOR")

	course, err := MaterializeCourse(db, owner.ID, "Go Basics", playlistItems(3))
	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "Go Basics", course.Title)
	assert.Equal(t, owner.ID, course.CreatorID)
	assert.False(t, course.IsPublished)

	var sections []courseModels.Section
	require.NoError(t, db.Where("course_id = ?", course.ID).Order("order_index ASC").Find(&sections).Error)
	require.Len(t, sections, 3)

	for i, section := range sections {
		assert.Equal(t, i+1, section.OrderIndex)

		var lectures []courseModels.Lecture
		require.NoError(t, db.Where("section_id = ?", section.ID).Find(&lectures).Error)
		require.Len(t, lectures, 1)
		assert.Equal(t, "youtube", lectures[0].VideoType)
		assert.Contains(t, lectures[0].VideoURL, "youtube.com/watch?v=")
		require.NotNil(t, lectures[0].Duration)
		assert.Equal(t, 60*(i+1), *lectures[0].Duration)
	}

	// Course duration aggregates the lecture durations
	var persisted courseModels.Course
	require.NoError(t, db.First(&persisted, course.ID).Error)
	assert.Equal(t, int64(60+120+180), persisted.Duration)
}

func TestMaterializeCourseEmptySelection(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "INSTRUCTOR")

	course, err := MaterializeCourse(db, owner.ID, "Empty", nil)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Nil(t, course)

	// Nothing persisted
	var count int64
	db.Model(&courseModels.Course{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestMaterializeCourseMissingDurations(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "INSTRUCTOR")

	items := playlistItems(2)
	items[1].Duration = nil

	course, err := MaterializeCourse(db, owner.ID, "Partial", items)
	require.NoError(t, err)

	// Only the known duration counts toward the total
	var persisted courseModels.Course
	require.NoError(t, db.First(&persisted, course.ID).Error)
	assert.Equal(t, int64(60), persisted.Duration)
}

func TestFilterSelectedItemsPreservesPlaylistOrder(t *testing.T) {
	items := playlistItems(4)

	// Submission order is scrambled; playlist order must win
	chosen := filterSelectedItems(items, []string{
		items[3].VideoID,
		items[1].VideoID,
	})

	require.Len(t, chosen, 2)
	assert.Equal(t, items[1].VideoID, chosen[0].VideoID)
	assert.Equal(t, items[3].VideoID, chosen[1].VideoID)

	// Unknown IDs are ignored
	chosen = filterSelectedItems(items, []string{"nope0000000"})
	assert.Empty(t, chosen)
}

func TestMaterializeCourseRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "INSTRUCTOR")

	// Sabotage lecture persistence so the transaction fails after the
	// course and first section were already created
	require.NoError(t, db.Migrator().DropTable(&courseModels.Lecture{}))

	course, err := MaterializeCourse(db, owner.ID, "Broken", playlistItems(2))
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Nil(t, course)

	// Nothing survives the rollback
	var courses, sections int64
	db.Model(&courseModels.Course{}).Count(&courses)
	db.Model(&courseModels.Section{}).Count(&sections)
	assert.Equal(t, int64(0), courses)
	assert.Equal(t, int64(0), sections)
}
